package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/y-inoue-koma/club-activity-manager/config"
	"github.com/y-inoue-koma/club-activity-manager/internal/dto"
	"github.com/y-inoue-koma/club-activity-manager/internal/model"
	"github.com/y-inoue-koma/club-activity-manager/internal/repository"
)

var ErrAnalysisUnavailable = errors.New("analysis backend not configured")

// noDataAnalysis is returned without calling the model when the member
// has no stat snapshots at all.
const noDataAnalysis = "成績データがまだ登録されていないため、分析できません。打撃成績または投手成績を登録してください。"

// physicalLabels maps measurement categories to their display names.
var physicalLabels = map[string]string{
	model.PhysicalSprint27m:  "27m走",
	model.PhysicalBenchPress: "ベンチプレス",
	model.PhysicalClean:      "クリーン",
	model.PhysicalDeadlift:   "デッドリフト",
}

// ChatCompleter is the slice of the OpenAI client the analysis needs.
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// AnalysisService turns a member's stat snapshots, velocity boards and
// physical measurements into a short coaching narrative via an
// OpenAI-compatible completion endpoint.
type AnalysisService struct {
	members  repository.MemberRepository
	batting  repository.BattingStatRepository
	pitching repository.PitchingStatRepository
	velocity repository.VelocityRepository
	physical repository.PhysicalRepository
	chat     ChatCompleter
	model    string
	logger   *zap.Logger
}

func NewAnalysisService(members repository.MemberRepository, batting repository.BattingStatRepository, pitching repository.PitchingStatRepository, velocity repository.VelocityRepository, physical repository.PhysicalRepository, chat ChatCompleter, cfg *config.AIConfig, logger *zap.Logger) *AnalysisService {
	modelName := ""
	if cfg != nil {
		modelName = cfg.Model
	}
	return &AnalysisService{
		members:  members,
		batting:  batting,
		pitching: pitching,
		velocity: velocity,
		physical: physical,
		chat:     chat,
		model:    modelName,
		logger:   logger,
	}
}

// analysisData is everything the prompt is built from.
type analysisData struct {
	member   *model.Member
	batting  []model.BattingStat
	pitching []model.PitchingStat
	pitch    *model.PitchVelocity
	exit     *model.ExitVelocity
	pulldown *model.PulldownVelocity
	physical []model.PhysicalMeasurement
}

// Analyze generates a narrative for one member. Members without batting
// or pitching snapshots get a fixed message instead of a model call.
func (s *AnalysisService) Analyze(ctx context.Context, memberID uint) (*dto.AnalysisResponse, error) {
	member, err := s.members.GetByID(ctx, memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}

	batting, err := s.batting.ListByMember(ctx, memberID)
	if err != nil {
		return nil, err
	}
	pitching, err := s.pitching.ListByMember(ctx, memberID)
	if err != nil {
		return nil, err
	}

	if len(batting) == 0 && len(pitching) == 0 {
		return &dto.AnalysisResponse{Analysis: noDataAnalysis}, nil
	}

	if s.chat == nil {
		return nil, ErrAnalysisUnavailable
	}

	data := &analysisData{member: member, batting: batting, pitching: pitching}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		pitch, err := s.velocity.PitchByMember(gctx, memberID)
		if err == nil && len(pitch) > 0 {
			data.pitch = &pitch[0]
		}
		return err
	})
	g.Go(func() error {
		exit, err := s.velocity.ExitByMember(gctx, memberID)
		if err == nil && len(exit) > 0 {
			data.exit = &exit[0]
		}
		return err
	})
	g.Go(func() error {
		pulldown, err := s.velocity.PulldownByMember(gctx, memberID)
		if err == nil && len(pulldown) > 0 {
			data.pulldown = &pulldown[0]
		}
		return err
	})
	g.Go(func() error {
		measurements, err := s.physical.ListByMember(gctx, memberID, "")
		if err == nil {
			data.physical = measurements
		}
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	prompt := buildAnalysisPrompt(data)
	resp, err := s.chat.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "あなたは高校野球の経験豊富なコーチです。選手の成績データをもとに、強み・課題・練習のアドバイスを日本語で簡潔にまとめてください。",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	})
	if err != nil {
		s.logger.Error("analysis completion failed", zap.Uint("member_id", memberID), zap.Error(err))
		return nil, fmt.Errorf("analysis completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("analysis completion: empty response")
	}

	return &dto.AnalysisResponse{Analysis: resp.Choices[0].Message.Content}, nil
}

func buildAnalysisPrompt(data *analysisData) string {
	member := data.member

	var b strings.Builder
	fmt.Fprintf(&b, "選手: %s(%d年", member.Name, member.Grade)
	if member.Position != nil {
		fmt.Fprintf(&b, "・%s", *member.Position)
	}
	b.WriteString(")\n")

	for _, bs := range data.batting {
		b.WriteString("\n打撃成績")
		if bs.Period != nil {
			fmt.Fprintf(&b, "(%s)", *bs.Period)
		}
		fmt.Fprintf(&b, ": 試合%d 打数%d 安打%d 本塁打%d 打点%d 四球%d 三振%d 盗塁%d",
			bs.Games, bs.AtBats, bs.Hits, bs.HomeRuns, bs.RBIs, bs.Walks, bs.Strikeouts, bs.StolenBases)
		if bs.BattingAvg != nil {
			fmt.Fprintf(&b, " 打率%.3f", *bs.BattingAvg)
		}
		if bs.OPS != nil {
			fmt.Fprintf(&b, " OPS%.3f", *bs.OPS)
		}
		b.WriteString("\n")
	}

	for _, ps := range data.pitching {
		b.WriteString("\n投手成績")
		if ps.Period != nil {
			fmt.Fprintf(&b, "(%s)", *ps.Period)
		}
		fmt.Fprintf(&b, ": 試合%d 被安打%d 与四球%d 奪三振%d 自責点%d",
			ps.Games, ps.HitsAllowed, ps.Walks, ps.Strikeouts, ps.EarnedRuns)
		if ps.InningsPitched != nil {
			fmt.Fprintf(&b, " 投球回%s", *ps.InningsPitched)
		}
		if ps.ERA != nil {
			fmt.Fprintf(&b, " 防御率%.2f", *ps.ERA)
		}
		if ps.WHIP != nil {
			fmt.Fprintf(&b, " WHIP%.3f", *ps.WHIP)
		}
		b.WriteString("\n")
	}

	if v := data.pitch; v != nil {
		b.WriteString("\n球速:")
		if v.AvgFastball != nil {
			fmt.Fprintf(&b, " ストレート平均%.1fkm/h", *v.AvgFastball)
		}
		if v.AvgBreaking != nil {
			fmt.Fprintf(&b, " 変化球平均%.1fkm/h", *v.AvgBreaking)
		}
		b.WriteString("\n")
	}
	if v := data.exit; v != nil {
		b.WriteString("\n打球速度:")
		if v.AvgSpeed != nil {
			fmt.Fprintf(&b, " 平均%.1fkm/h", *v.AvgSpeed)
		}
		if v.MaxSpeed != nil {
			fmt.Fprintf(&b, " 最大%.1fkm/h", *v.MaxSpeed)
		}
		if v.AvgRank != nil {
			fmt.Fprintf(&b, "(チーム%d位)", *v.AvgRank)
		}
		b.WriteString("\n")
	}
	if v := data.pulldown; v != nil {
		b.WriteString("\nプルダウン球速:")
		if v.AvgSpeed != nil {
			fmt.Fprintf(&b, " 平均%.1fkm/h", *v.AvgSpeed)
		}
		if v.MaxSpeed != nil {
			fmt.Fprintf(&b, " 最大%.1fkm/h", *v.MaxSpeed)
		}
		if v.AvgRank != nil {
			fmt.Fprintf(&b, "(チーム%d位)", *v.AvgRank)
		}
		b.WriteString("\n")
	}

	writePhysicalSection(&b, data.physical)

	b.WriteString("\nこの選手の強みと課題、今後の練習方針を300字程度でまとめてください。")
	return b.String()
}

// writePhysicalSection prints the latest value per category, with the
// dated history when more than one measurement exists.
func writePhysicalSection(b *strings.Builder, measurements []model.PhysicalMeasurement) {
	if len(measurements) == 0 {
		return
	}
	b.WriteString("\nフィジカル測定:\n")
	for _, cat := range model.PhysicalCategories {
		var recs []model.PhysicalMeasurement
		for _, m := range measurements {
			if m.Category == cat && m.Value != nil {
				recs = append(recs, m)
			}
		}
		if len(recs) == 0 {
			continue
		}
		latest := recs[len(recs)-1]
		fmt.Fprintf(b, "%s: %g(%s)", physicalLabels[cat], *latest.Value, latest.MeasureDate)
		if len(recs) > 1 {
			points := make([]string, 0, len(recs))
			for _, r := range recs {
				points = append(points, fmt.Sprintf("%g(%s)", *r.Value, r.MeasureDate))
			}
			fmt.Fprintf(b, " 推移: %s", strings.Join(points, " → "))
		}
		b.WriteString("\n")
	}
}
