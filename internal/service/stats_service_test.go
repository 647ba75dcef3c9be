package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/y-inoue-koma/club-activity-manager/internal/dto"
	"github.com/y-inoue-koma/club-activity-manager/internal/model"
)

func newStatsFixture() (*StatsService, *mockGameRepo, *mockBattingRepo, *mockTeamRepo) {
	batting := &mockBattingRepo{}
	pitching := &mockPitchingRepo{}
	team := &mockTeamRepo{}
	games := newMockGameRepo()
	svc := NewStatsService(batting, pitching, team, &mockVelocityRepo{}, &mockPhysicalRepo{}, games, nil, zap.NewNop())
	return svc, games, batting, team
}

func TestMonthlyTrendBucketsAndOrder(t *testing.T) {
	svc, games, _, _ := newStatsFixture()
	ctx := context.Background()

	seed := []model.GameResult{
		{GameDate: "2025-05-03", Opponent: "A", Result: model.GameResultWin, TeamScore: ptrInt(5), OpponentScore: ptrInt(2)},
		{GameDate: "2025-05-10", Opponent: "B", Result: model.GameResultLoss, TeamScore: ptrInt(1), OpponentScore: ptrInt(4)},
		{GameDate: "2025-05-17", Opponent: "C", Result: model.GameResultDraw, TeamScore: ptrInt(3), OpponentScore: ptrInt(3)},
		{GameDate: "2025-04-06", Opponent: "D", Result: model.GameResultWin, TeamScore: ptrInt(7), OpponentScore: ptrInt(0)},
	}
	for i := range seed {
		games.Create(ctx, &seed[i])
	}

	entries, err := svc.MonthlyTrend(ctx)
	if err != nil {
		t.Fatalf("MonthlyTrend: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("months = %d, want 2", len(entries))
	}
	if entries[0].Month != "2025-04" || entries[1].Month != "2025-05" {
		t.Errorf("order = [%s %s], want chronological", entries[0].Month, entries[1].Month)
	}

	may := entries[1]
	if may.Games != 3 || may.Wins != 1 || may.Losses != 1 || may.Draws != 1 {
		t.Errorf("may tally = %+v", may)
	}
	if may.WinRate == nil || *may.WinRate != 0.5 {
		t.Errorf("may win rate = %v, want 0.5 (draws excluded from denominator)", may.WinRate)
	}
	if may.AvgRunsScored == nil || *may.AvgRunsScored != 3.0 {
		t.Errorf("may avg runs scored = %v, want 3.0", may.AvgRunsScored)
	}
}

func TestMonthlyTrendExcludesCancelled(t *testing.T) {
	svc, games, _, _ := newStatsFixture()
	ctx := context.Background()

	games.Create(ctx, &model.GameResult{GameDate: "2025-07-05", Opponent: "A", Result: model.GameResultWin})
	games.Create(ctx, &model.GameResult{GameDate: "2025-07-12", Opponent: "B", Result: model.GameResultCancelled})

	entries, err := svc.MonthlyTrend(ctx)
	if err != nil {
		t.Fatalf("MonthlyTrend: %v", err)
	}
	if len(entries) != 1 || entries[0].Games != 1 {
		t.Fatalf("entries = %+v, cancelled game leaked into tally", entries)
	}
}

func TestMonthlyTrendCancelledOnlyMonthOmitted(t *testing.T) {
	svc, games, _, _ := newStatsFixture()
	ctx := context.Background()

	games.Create(ctx, &model.GameResult{GameDate: "2025-08-02", Opponent: "A", Result: model.GameResultCancelled})

	entries, err := svc.MonthlyTrend(ctx)
	if err != nil {
		t.Fatalf("MonthlyTrend: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("entries = %+v, want none", entries)
	}
}

func TestMonthlyTrendWinRateNilWithoutDecisions(t *testing.T) {
	svc, games, _, _ := newStatsFixture()
	ctx := context.Background()

	games.Create(ctx, &model.GameResult{GameDate: "2025-09-01", Opponent: "A", Result: model.GameResultDraw})

	entries, err := svc.MonthlyTrend(ctx)
	if err != nil {
		t.Fatalf("MonthlyTrend: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("months = %d, want 1", len(entries))
	}
	if entries[0].WinRate != nil {
		t.Errorf("win rate = %v, want nil for a draws-only month", *entries[0].WinRate)
	}
}

func TestTeamStatNotRecorded(t *testing.T) {
	svc, _, _, _ := newStatsFixture()

	if _, err := svc.TeamStat(context.Background()); !errors.Is(err, ErrTeamStatNotFound) {
		t.Errorf("err = %v, want ErrTeamStatNotFound", err)
	}
}

func TestBattingListFlattensMemberColumns(t *testing.T) {
	svc, _, batting, _ := newStatsFixture()
	batting.stats = []model.BattingStat{
		{
			MemberID:   1,
			BattingAvg: ptrFloat(0.321),
			Member:     &model.Member{ID: 1, Name: "鈴木", Grade: 3, UniformNumber: ptrInt(7)},
		},
	}

	rows, err := svc.BattingList(context.Background())
	if err != nil {
		t.Fatalf("BattingList: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
	row := rows[0]
	if row.MemberName != "鈴木" || row.Grade != 3 || *row.UniformNumber != 7 {
		t.Errorf("member columns not flattened: %+v", row)
	}
	if row.Member != nil {
		t.Error("nested member should be stripped from list rows")
	}
}

func TestPhysicalListOrdersSameDayRowsByName(t *testing.T) {
	physical := &mockPhysicalRepo{measurements: []model.PhysicalMeasurement{
		{MemberID: 2, Category: model.PhysicalBenchPress, MeasureDate: "2025-06-01", Value: ptrFloat(75),
			Member: &model.Member{ID: 2, Name: "田中", Grade: 2}},
		{MemberID: 1, Category: model.PhysicalBenchPress, MeasureDate: "2025-06-01", Value: ptrFloat(80),
			Member: &model.Member{ID: 1, Name: "佐藤", Grade: 3}},
		{MemberID: 2, Category: model.PhysicalBenchPress, MeasureDate: "2025-04-01", Value: ptrFloat(70),
			Member: &model.Member{ID: 2, Name: "田中", Grade: 2}},
	}}
	svc := NewStatsService(&mockBattingRepo{}, &mockPitchingRepo{}, &mockTeamRepo{}, &mockVelocityRepo{}, physical, newMockGameRepo(), nil, zap.NewNop())

	rows, err := svc.PhysicalList(context.Background(), model.PhysicalBenchPress)
	if err != nil {
		t.Fatalf("PhysicalList: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(rows))
	}
	got := []string{rows[0].MemberName, rows[1].MemberName, rows[2].MemberName}
	want := []string{"田中", "佐藤", "田中"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row order = %v, want %v", got, want)
		}
	}
}

func TestGameUpdateUnknown(t *testing.T) {
	svc, _, _, _ := newStatsFixture()

	_, err := svc.UpdateGame(context.Background(), 5, &dto.UpdateGameResultRequest{Result: ptrStr(model.GameResultWin)})
	if !errors.Is(err, ErrGameNotFound) {
		t.Errorf("err = %v, want ErrGameNotFound", err)
	}
}
