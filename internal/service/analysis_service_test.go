package service

import (
	"context"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/y-inoue-koma/club-activity-manager/config"
	"github.com/y-inoue-koma/club-activity-manager/internal/model"
)

type analysisFixture struct {
	members  *mockMemberRepo
	batting  *mockBattingRepo
	pitching *mockPitchingRepo
	velocity *mockVelocityRepo
	physical *mockPhysicalRepo
}

func newAnalysisFixture(chat ChatCompleter) (*AnalysisService, *analysisFixture) {
	f := &analysisFixture{
		members:  newMockMemberRepo(),
		batting:  &mockBattingRepo{},
		pitching: &mockPitchingRepo{},
		velocity: &mockVelocityRepo{},
		physical: &mockPhysicalRepo{},
	}
	cfg := &config.AIConfig{Model: "gpt-4o-mini"}
	svc := NewAnalysisService(f.members, f.batting, f.pitching, f.velocity, f.physical, chat, cfg, zap.NewNop())
	return svc, f
}

func TestAnalyzeNoDataSkipsModel(t *testing.T) {
	chat := &mockChat{reply: "should not be called"}
	svc, f := newAnalysisFixture(chat)
	f.members.add(model.Member{ID: 1, Name: "新人", Grade: 1})

	result, err := svc.Analyze(context.Background(), 1)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if !strings.Contains(result.Analysis, "分析できません") {
		t.Errorf("expected fixed no-data message, got %q", result.Analysis)
	}
	if len(chat.prompts) != 0 {
		t.Error("model must not be called without stat data")
	}
}

func TestAnalyzeReturnsCompletionVerbatim(t *testing.T) {
	chat := &mockChat{reply: "打撃は安定しています。"}
	svc, f := newAnalysisFixture(chat)
	f.members.add(model.Member{ID: 1, Name: "主砲", Grade: 3, Position: ptrStr("一塁手")})
	f.batting.stats = []model.BattingStat{
		{MemberID: 1, Games: 12, AtBats: 40, Hits: 16, BattingAvg: ptrFloat(0.400)},
	}

	result, err := svc.Analyze(context.Background(), 1)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if result.Analysis != "打撃は安定しています。" {
		t.Errorf("analysis = %q, want model reply verbatim", result.Analysis)
	}

	joined := strings.Join(chat.prompts, "\n")
	for _, want := range []string{"主砲", "打率0.400", "一塁手"} {
		if !strings.Contains(joined, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestAnalyzePromptIncludesVelocityAndPhysical(t *testing.T) {
	chat := &mockChat{reply: "総合力が高い。"}
	svc, f := newAnalysisFixture(chat)
	f.members.add(model.Member{ID: 1, Name: "二刀流", Grade: 3})
	f.batting.stats = []model.BattingStat{{MemberID: 1, Games: 10, AtBats: 30, Hits: 12}}
	f.velocity.pitch = []model.PitchVelocity{
		{MemberID: 1, AvgFastball: ptrFloat(138.5), AvgBreaking: ptrFloat(118.0)},
	}
	f.velocity.exit = []model.ExitVelocity{
		{MemberID: 1, AvgSpeed: ptrFloat(142.0), MaxSpeed: ptrFloat(155.5), AvgRank: ptrInt(2)},
	}
	f.velocity.pulldown = []model.PulldownVelocity{
		{MemberID: 1, AvgSpeed: ptrFloat(128.0), MaxSpeed: ptrFloat(134.0)},
	}
	f.physical.measurements = []model.PhysicalMeasurement{
		{MemberID: 1, Category: model.PhysicalBenchPress, MeasureDate: "2026-04-01", Value: ptrFloat(70)},
		{MemberID: 1, Category: model.PhysicalBenchPress, MeasureDate: "2026-06-01", Value: ptrFloat(80)},
		{MemberID: 1, Category: model.PhysicalSprint27m, MeasureDate: "2026-05-01", Value: ptrFloat(3.6)},
	}

	if _, err := svc.Analyze(context.Background(), 1); err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	joined := strings.Join(chat.prompts, "\n")
	for _, want := range []string{
		"ストレート平均138.5km/h",
		"変化球平均118.0km/h",
		"打球速度: 平均142.0km/h 最大155.5km/h(チーム2位)",
		"プルダウン球速: 平均128.0km/h",
		"27m走: 3.6(2026-05-01)",
		"ベンチプレス: 80(2026-06-01)",
		"推移: 70(2026-04-01) → 80(2026-06-01)",
	} {
		if !strings.Contains(joined, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestAnalyzeVelocityOnlyMemberGetsNoDataMessage(t *testing.T) {
	chat := &mockChat{reply: "should not be called"}
	svc, f := newAnalysisFixture(chat)
	f.members.add(model.Member{ID: 1, Name: "投手", Grade: 2})
	f.velocity.pitch = []model.PitchVelocity{{MemberID: 1, AvgFastball: ptrFloat(135)}}

	result, err := svc.Analyze(context.Background(), 1)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if !strings.Contains(result.Analysis, "分析できません") {
		t.Errorf("expected fixed no-data message, got %q", result.Analysis)
	}
	if len(chat.prompts) != 0 {
		t.Error("model must not be called without batting or pitching data")
	}
}

func TestAnalyzeWithoutBackend(t *testing.T) {
	svc, f := newAnalysisFixture(nil)
	f.members.add(model.Member{ID: 1, Name: "選手", Grade: 2})
	f.batting.stats = []model.BattingStat{{MemberID: 1, Games: 1}}

	if _, err := svc.Analyze(context.Background(), 1); err != ErrAnalysisUnavailable {
		t.Errorf("err = %v, want ErrAnalysisUnavailable", err)
	}
}

func TestAnalyzeModelFailurePropagates(t *testing.T) {
	chat := &mockChat{fail: true}
	svc, f := newAnalysisFixture(chat)
	f.members.add(model.Member{ID: 1, Name: "選手", Grade: 2})
	f.batting.stats = []model.BattingStat{{MemberID: 1, Games: 1}}

	if _, err := svc.Analyze(context.Background(), 1); err == nil {
		t.Fatal("expected completion failure to surface")
	}
}
