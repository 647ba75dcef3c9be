package service

import (
	"context"
	"errors"
	"math"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/y-inoue-koma/club-activity-manager/internal/dto"
	"github.com/y-inoue-koma/club-activity-manager/internal/model"
	"github.com/y-inoue-koma/club-activity-manager/internal/repository"
)

var ErrCompareCardinality = errors.New("compare needs between 2 and 6 members")

// physicalBaselines are the team reference values each measurement is
// scored against. Sprint is seconds, lifts are kg.
var physicalBaselines = map[string]float64{
	model.PhysicalSprint27m:  3.8,
	model.PhysicalBenchPress: 60,
	model.PhysicalClean:      55,
	model.PhysicalDeadlift:   120,
}

// CompareService assembles the side-by-side member view. Each member's
// sections are fetched in parallel and returned in request order.
type CompareService struct {
	members  repository.MemberRepository
	batting  repository.BattingStatRepository
	pitching repository.PitchingStatRepository
	velocity repository.VelocityRepository
	physical repository.PhysicalRepository
	records  *RecordService
	logger   *zap.Logger
}

func NewCompareService(members repository.MemberRepository, batting repository.BattingStatRepository, pitching repository.PitchingStatRepository, velocity repository.VelocityRepository, physical repository.PhysicalRepository, records *RecordService, logger *zap.Logger) *CompareService {
	return &CompareService{
		members:  members,
		batting:  batting,
		pitching: pitching,
		velocity: velocity,
		physical: physical,
		records:  records,
		logger:   logger,
	}
}

// Compare builds one comparison block per requested member. Unknown
// member IDs fail the whole request.
func (s *CompareService) Compare(ctx context.Context, memberIDs []uint) ([]dto.MemberComparison, error) {
	if len(memberIDs) < 2 || len(memberIDs) > 6 {
		return nil, ErrCompareCardinality
	}

	results := make([]dto.MemberComparison, len(memberIDs))
	g, gctx := errgroup.WithContext(ctx)

	for i, id := range memberIDs {
		i, id := i, id
		g.Go(func() error {
			block, err := s.MemberDetail(gctx, id)
			if err != nil {
				return err
			}
			results[i] = *block
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// MemberDetail assembles one member's full stat picture. The sections
// are independent reads and run in parallel; any failed read fails the
// whole aggregate.
func (s *CompareService) MemberDetail(ctx context.Context, memberID uint) (*dto.MemberComparison, error) {
	member, err := s.members.GetByID(ctx, memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}

	block := &dto.MemberComparison{
		Member:   member,
		Physical: []dto.PhysicalScore{},
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		batting, err := s.batting.ListByMember(gctx, memberID)
		if err == nil && len(batting) > 0 {
			block.Batting = &batting[0]
		}
		return err
	})
	g.Go(func() error {
		pitching, err := s.pitching.ListByMember(gctx, memberID)
		if err == nil && len(pitching) > 0 {
			block.Pitching = &pitching[0]
		}
		return err
	})
	g.Go(func() error {
		pitch, err := s.velocity.PitchByMember(gctx, memberID)
		if err == nil && len(pitch) > 0 {
			block.Velocity = &pitch[0]
		}
		return err
	})
	g.Go(func() error {
		exit, err := s.velocity.ExitByMember(gctx, memberID)
		if err == nil && len(exit) > 0 {
			block.ExitVelocity = &exit[0]
		}
		return err
	})
	g.Go(func() error {
		pulldown, err := s.velocity.PulldownByMember(gctx, memberID)
		if err == nil && len(pulldown) > 0 {
			block.Pulldown = &pulldown[0]
		}
		return err
	})
	g.Go(func() error {
		measurements, err := s.physical.ListByMember(gctx, memberID, "")
		if err == nil {
			block.Physical = scorePhysical(measurements)
		}
		return err
	})
	g.Go(func() error {
		summary, err := s.records.Summary(gctx, memberID)
		if err == nil && summary.GamesCount > 0 {
			block.Records = summary
		}
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return block, nil
}

// scorePhysical keeps each member's latest measurement per category and
// scores it against the team baseline. Sprint times invert: faster than
// baseline scores above 100.
func scorePhysical(measurements []model.PhysicalMeasurement) []dto.PhysicalScore {
	latest := make(map[string]*model.PhysicalMeasurement)
	for i := range measurements {
		m := &measurements[i]
		cur, ok := latest[m.Category]
		if !ok || m.MeasureDate > cur.MeasureDate {
			latest[m.Category] = m
		}
	}

	scores := make([]dto.PhysicalScore, 0, len(latest))
	for _, category := range model.PhysicalCategories {
		m, ok := latest[category]
		if !ok {
			continue
		}
		scores = append(scores, dto.PhysicalScore{
			Category:    category,
			MeasureDate: m.MeasureDate,
			Value:       m.Value,
			Score:       physicalScore(category, m.Value),
		})
	}
	return scores
}

func physicalScore(category string, value *float64) int {
	baseline, ok := physicalBaselines[category]
	if !ok || value == nil || *value <= 0 {
		return 0
	}
	if category == model.PhysicalSprint27m {
		return int(math.Round(baseline / *value * 100))
	}
	return int(math.Round(*value / baseline * 100))
}
