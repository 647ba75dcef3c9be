package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/y-inoue-koma/club-activity-manager/internal/dto"
	"github.com/y-inoue-koma/club-activity-manager/internal/model"
	"github.com/y-inoue-koma/club-activity-manager/internal/repository"
)

var ErrRecordNotFound = errors.New("player record not found")

// RecordService manages raw per-date stat rows and the derived career
// summary. Rates are computed here, never stored.
type RecordService struct {
	records repository.PlayerRecordRepository
	members repository.MemberRepository
	logger  *zap.Logger
}

func NewRecordService(records repository.PlayerRecordRepository, members repository.MemberRepository, logger *zap.Logger) *RecordService {
	return &RecordService{records: records, members: members, logger: logger}
}

func (s *RecordService) List(ctx context.Context, req *dto.RecordListRequest) ([]model.PlayerRecord, error) {
	if _, err := s.members.GetByID(ctx, req.MemberID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	return s.records.ListByMember(ctx, req.MemberID, req.From, req.To)
}

func (s *RecordService) Create(ctx context.Context, req *dto.CreateRecordRequest) (*model.PlayerRecord, error) {
	if _, err := s.members.GetByID(ctx, req.MemberID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}

	record := &model.PlayerRecord{
		MemberID:   req.MemberID,
		RecordDate: req.RecordDate,
		Notes:      req.Notes,
	}
	applyInts(req, record)
	if err := s.records.Create(ctx, record); err != nil {
		return nil, err
	}
	s.logger.Info("player record created",
		zap.Uint("record_id", record.ID),
		zap.Uint("member_id", record.MemberID))
	return record, nil
}

func (s *RecordService) Update(ctx context.Context, id uint, req *dto.UpdateRecordRequest) (*model.PlayerRecord, error) {
	record, err := s.records.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}

	if req.RecordDate != nil {
		record.RecordDate = *req.RecordDate
	}
	if req.Notes != nil {
		record.Notes = req.Notes
	}
	patchInts(req, record)

	if err := s.records.Update(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *RecordService) Delete(ctx context.Context, id uint) error {
	if _, err := s.records.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRecordNotFound
		}
		return err
	}
	return s.records.Delete(ctx, id)
}

// Summary sums a member's rows and derives the rate stats. Every rate
// is nil when its denominator is zero.
func (s *RecordService) Summary(ctx context.Context, memberID uint) (*dto.RecordSummaryResponse, error) {
	if _, err := s.members.GetByID(ctx, memberID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}

	sum, err := s.records.Summarize(ctx, memberID)
	if err != nil {
		return nil, err
	}

	resp := &dto.RecordSummaryResponse{
		GamesCount:           sum.GamesCount,
		TotalAtBats:          sum.TotalAtBats,
		TotalHits:            sum.TotalHits,
		TotalDoubles:         sum.TotalDoubles,
		TotalTriples:         sum.TotalTriples,
		TotalHomeRuns:        sum.TotalHomeRuns,
		TotalRBIs:            sum.TotalRBIs,
		TotalRuns:            sum.TotalRuns,
		TotalStrikeouts:      sum.TotalStrikeouts,
		TotalWalks:           sum.TotalWalks,
		TotalStolenBases:     sum.TotalStolenBases,
		TotalInningsPitched:  sum.TotalInningsPitched,
		TotalEarnedRuns:      sum.TotalEarnedRuns,
		TotalPitchStrikeouts: sum.TotalPitchStrikeouts,
		TotalPitchWalks:      sum.TotalPitchWalks,
		TotalHitsAllowed:     sum.TotalHitsAllowed,
		TotalWins:            sum.TotalWins,
		TotalLosses:          sum.TotalLosses,
	}
	deriveRates(sum, resp)
	return resp, nil
}

func deriveRates(sum *model.RecordSummary, resp *dto.RecordSummaryResponse) {
	if sum.TotalAtBats > 0 {
		avg := float64(sum.TotalHits) / float64(sum.TotalAtBats)
		resp.BattingAvg = &avg

		singles := sum.TotalHits - sum.TotalDoubles - sum.TotalTriples - sum.TotalHomeRuns
		slg := float64(singles+2*sum.TotalDoubles+3*sum.TotalTriples+4*sum.TotalHomeRuns) / float64(sum.TotalAtBats)
		resp.SluggingPercentage = &slg
	}
	if pa := sum.TotalAtBats + sum.TotalWalks; pa > 0 {
		obp := float64(sum.TotalHits+sum.TotalWalks) / float64(pa)
		resp.OnBasePercentage = &obp
	}
	if resp.OnBasePercentage != nil && resp.SluggingPercentage != nil {
		ops := *resp.OnBasePercentage + *resp.SluggingPercentage
		resp.OPS = &ops
	}
	if sum.TotalInningsPitched > 0 {
		era := 9 * float64(sum.TotalEarnedRuns) / sum.TotalInningsPitched
		resp.ERA = &era
		whip := float64(sum.TotalPitchWalks+sum.TotalHitsAllowed) / sum.TotalInningsPitched
		resp.WHIP = &whip
	}
}

func applyInts(req *dto.CreateRecordRequest, record *model.PlayerRecord) {
	setInt := func(dst *int, src *int) {
		if src != nil {
			*dst = *src
		}
	}
	setInt(&record.AtBats, req.AtBats)
	setInt(&record.Hits, req.Hits)
	setInt(&record.Doubles, req.Doubles)
	setInt(&record.Triples, req.Triples)
	setInt(&record.HomeRuns, req.HomeRuns)
	setInt(&record.RBIs, req.RBIs)
	setInt(&record.Runs, req.Runs)
	setInt(&record.Strikeouts, req.Strikeouts)
	setInt(&record.Walks, req.Walks)
	setInt(&record.StolenBases, req.StolenBases)
	setInt(&record.EarnedRuns, req.EarnedRuns)
	setInt(&record.PitchStrikeouts, req.PitchStrikeouts)
	setInt(&record.PitchWalks, req.PitchWalks)
	setInt(&record.HitsAllowed, req.HitsAllowed)
	setInt(&record.Wins, req.Wins)
	setInt(&record.Losses, req.Losses)
	if req.InningsPitched != nil {
		record.InningsPitched = *req.InningsPitched
	}
}

func patchInts(req *dto.UpdateRecordRequest, record *model.PlayerRecord) {
	setInt := func(dst *int, src *int) {
		if src != nil {
			*dst = *src
		}
	}
	setInt(&record.AtBats, req.AtBats)
	setInt(&record.Hits, req.Hits)
	setInt(&record.Doubles, req.Doubles)
	setInt(&record.Triples, req.Triples)
	setInt(&record.HomeRuns, req.HomeRuns)
	setInt(&record.RBIs, req.RBIs)
	setInt(&record.Runs, req.Runs)
	setInt(&record.Strikeouts, req.Strikeouts)
	setInt(&record.Walks, req.Walks)
	setInt(&record.StolenBases, req.StolenBases)
	setInt(&record.EarnedRuns, req.EarnedRuns)
	setInt(&record.PitchStrikeouts, req.PitchStrikeouts)
	setInt(&record.PitchWalks, req.PitchWalks)
	setInt(&record.HitsAllowed, req.HitsAllowed)
	setInt(&record.Wins, req.Wins)
	setInt(&record.Losses, req.Losses)
	if req.InningsPitched != nil {
		record.InningsPitched = *req.InningsPitched
	}
}
