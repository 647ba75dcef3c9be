package service

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"sort"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/y-inoue-koma/club-activity-manager/internal/dto"
	"github.com/y-inoue-koma/club-activity-manager/internal/model"
	"github.com/y-inoue-koma/club-activity-manager/internal/repository"
	"github.com/y-inoue-koma/club-activity-manager/pkg/redis"
)

var (
	ErrTeamStatNotFound = errors.New("team stats not recorded yet")
	ErrGameNotFound     = errors.New("game result not found")
)

const monthlyTrendCacheKey = "cache:stats:monthly_trend"

// StatsService serves the read-side stat boards and manages game
// results with their derived monthly trend.
type StatsService struct {
	batting  repository.BattingStatRepository
	pitching repository.PitchingStatRepository
	team     repository.TeamStatRepository
	velocity repository.VelocityRepository
	physical repository.PhysicalRepository
	games    repository.GameResultRepository
	redis    *redis.Client
	logger   *zap.Logger
}

func NewStatsService(batting repository.BattingStatRepository, pitching repository.PitchingStatRepository, team repository.TeamStatRepository, velocity repository.VelocityRepository, physical repository.PhysicalRepository, games repository.GameResultRepository, rc *redis.Client, logger *zap.Logger) *StatsService {
	return &StatsService{
		batting:  batting,
		pitching: pitching,
		team:     team,
		velocity: velocity,
		physical: physical,
		games:    games,
		redis:    rc,
		logger:   logger,
	}
}

// ── Snapshot boards ──

func (s *StatsService) BattingList(ctx context.Context) ([]dto.BattingStatRow, error) {
	stats, err := s.batting.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	rows := make([]dto.BattingStatRow, 0, len(stats))
	for _, st := range stats {
		row := dto.BattingStatRow{BattingStat: st}
		if st.Member != nil {
			row.MemberName = st.Member.Name
			row.Grade = st.Member.Grade
			row.Position = st.Member.Position
			row.UniformNumber = st.Member.UniformNumber
		}
		row.Member = nil
		rows = append(rows, row)
	}
	return rows, nil
}

func (s *StatsService) BattingByMember(ctx context.Context, memberID uint) ([]model.BattingStat, error) {
	return s.batting.ListByMember(ctx, memberID)
}

func (s *StatsService) PitchingList(ctx context.Context) ([]dto.PitchingStatRow, error) {
	stats, err := s.pitching.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	rows := make([]dto.PitchingStatRow, 0, len(stats))
	for _, st := range stats {
		row := dto.PitchingStatRow{PitchingStat: st}
		if st.Member != nil {
			row.MemberName = st.Member.Name
			row.Grade = st.Member.Grade
			row.Position = st.Member.Position
		}
		row.Member = nil
		rows = append(rows, row)
	}
	return rows, nil
}

func (s *StatsService) PitchingByMember(ctx context.Context, memberID uint) ([]model.PitchingStat, error) {
	return s.pitching.ListByMember(ctx, memberID)
}

func (s *StatsService) TeamStat(ctx context.Context) (*model.TeamStat, error) {
	stat, err := s.team.Get(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeamStatNotFound
		}
		return nil, err
	}
	return stat, nil
}

// ── Velocity boards ──

func (s *StatsService) PitchVelocityList(ctx context.Context) ([]dto.PitchVelocityRow, error) {
	list, err := s.velocity.ListPitch(ctx)
	if err != nil {
		return nil, err
	}
	rows := make([]dto.PitchVelocityRow, 0, len(list))
	for _, v := range list {
		row := dto.PitchVelocityRow{PitchVelocity: v}
		if v.Member != nil {
			row.MemberName = v.Member.Name
			row.Grade = v.Member.Grade
		}
		row.Member = nil
		rows = append(rows, row)
	}
	return rows, nil
}

func (s *StatsService) ExitVelocityList(ctx context.Context) ([]dto.ExitVelocityRow, error) {
	list, err := s.velocity.ListExit(ctx)
	if err != nil {
		return nil, err
	}
	rows := make([]dto.ExitVelocityRow, 0, len(list))
	for _, v := range list {
		row := dto.ExitVelocityRow{ExitVelocity: v}
		if v.Member != nil {
			row.MemberName = v.Member.Name
			row.Grade = v.Member.Grade
		}
		row.Member = nil
		rows = append(rows, row)
	}
	return rows, nil
}

func (s *StatsService) PulldownVelocityList(ctx context.Context) ([]dto.PulldownVelocityRow, error) {
	list, err := s.velocity.ListPulldown(ctx)
	if err != nil {
		return nil, err
	}
	rows := make([]dto.PulldownVelocityRow, 0, len(list))
	for _, v := range list {
		row := dto.PulldownVelocityRow{PulldownVelocity: v}
		if v.Member != nil {
			row.MemberName = v.Member.Name
			row.Grade = v.Member.Grade
		}
		row.Member = nil
		rows = append(rows, row)
	}
	return rows, nil
}

func (s *StatsService) PitchVelocityByMember(ctx context.Context, memberID uint) ([]model.PitchVelocity, error) {
	return s.velocity.PitchByMember(ctx, memberID)
}

func (s *StatsService) ExitVelocityByMember(ctx context.Context, memberID uint) ([]model.ExitVelocity, error) {
	return s.velocity.ExitByMember(ctx, memberID)
}

func (s *StatsService) PulldownVelocityByMember(ctx context.Context, memberID uint) ([]model.PulldownVelocity, error) {
	return s.velocity.PulldownByMember(ctx, memberID)
}

func (s *StatsService) CreatePitchVelocity(ctx context.Context, req *dto.CreatePitchVelocityRequest) (*model.PitchVelocity, error) {
	v := &model.PitchVelocity{
		MemberID:    req.MemberID,
		AvgFastball: req.AvgFastball,
		AvgBreaking: req.AvgBreaking,
		MaxFastball: req.MaxFastball,
		MaxBreaking: req.MaxBreaking,
	}
	if err := s.velocity.CreatePitch(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *StatsService) CreateExitVelocity(ctx context.Context, req *dto.CreateMeasuredVelocityRequest) (*model.ExitVelocity, error) {
	v := &model.ExitVelocity{
		MemberID:    req.MemberID,
		MeasureDate: req.MeasureDate,
		AvgSpeed:    req.AvgSpeed,
		MaxSpeed:    req.MaxSpeed,
		AvgRank:     req.AvgRank,
		MaxRank:     req.MaxRank,
	}
	if err := s.velocity.CreateExit(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *StatsService) CreatePulldownVelocity(ctx context.Context, req *dto.CreateMeasuredVelocityRequest) (*model.PulldownVelocity, error) {
	v := &model.PulldownVelocity{
		MemberID:    req.MemberID,
		MeasureDate: req.MeasureDate,
		AvgSpeed:    req.AvgSpeed,
		MaxSpeed:    req.MaxSpeed,
		AvgRank:     req.AvgRank,
		MaxRank:     req.MaxRank,
	}
	if err := s.velocity.CreatePulldown(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

// ── Physical boards ──

func (s *StatsService) PhysicalList(ctx context.Context, category string) ([]dto.PhysicalRow, error) {
	list, err := s.physical.ListByCategory(ctx, category)
	if err != nil {
		return nil, err
	}
	rows := make([]dto.PhysicalRow, 0, len(list))
	for _, m := range list {
		row := dto.PhysicalRow{PhysicalMeasurement: m}
		if m.Member != nil {
			row.MemberName = m.Member.Name
			row.Grade = m.Member.Grade
		}
		row.Member = nil
		rows = append(rows, row)
	}
	return rows, nil
}

func (s *StatsService) PhysicalByMember(ctx context.Context, memberID uint, category string) ([]model.PhysicalMeasurement, error) {
	return s.physical.ListByMember(ctx, memberID, category)
}

func (s *StatsService) CreatePhysical(ctx context.Context, req *dto.CreatePhysicalRequest) (*model.PhysicalMeasurement, error) {
	m := &model.PhysicalMeasurement{
		MemberID:    req.MemberID,
		MeasureDate: req.MeasureDate,
		Category:    req.Category,
		Value:       req.Value,
	}
	if err := s.physical.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// ── Game results ──

func (s *StatsService) GameList(ctx context.Context) ([]model.GameResult, error) {
	return s.games.List(ctx)
}

func (s *StatsService) CreateGame(ctx context.Context, req *dto.CreateGameResultRequest) (*model.GameResult, error) {
	game := &model.GameResult{
		GameNumber:    req.GameNumber,
		GameDate:      req.GameDate,
		Opponent:      req.Opponent,
		Result:        req.Result,
		HomeAway:      req.HomeAway,
		TeamScore:     req.TeamScore,
		OpponentScore: req.OpponentScore,
		Innings:       req.Innings,
		Notes:         req.Notes,
	}
	if err := s.games.Create(ctx, game); err != nil {
		return nil, err
	}
	s.invalidateTrend(ctx)
	return game, nil
}

func (s *StatsService) UpdateGame(ctx context.Context, id uint, req *dto.UpdateGameResultRequest) (*model.GameResult, error) {
	game, err := s.games.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}

	if req.GameNumber != nil {
		game.GameNumber = req.GameNumber
	}
	if req.GameDate != nil {
		game.GameDate = *req.GameDate
	}
	if req.Opponent != nil {
		game.Opponent = *req.Opponent
	}
	if req.Result != nil {
		game.Result = *req.Result
	}
	if req.HomeAway != nil {
		game.HomeAway = req.HomeAway
	}
	if req.TeamScore != nil {
		game.TeamScore = req.TeamScore
	}
	if req.OpponentScore != nil {
		game.OpponentScore = req.OpponentScore
	}
	if req.Innings != nil {
		game.Innings = req.Innings
	}
	if req.Notes != nil {
		game.Notes = req.Notes
	}

	if err := s.games.Update(ctx, game); err != nil {
		return nil, err
	}
	s.invalidateTrend(ctx)
	return game, nil
}

func (s *StatsService) DeleteGame(ctx context.Context, id uint) error {
	if _, err := s.games.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrGameNotFound
		}
		return err
	}
	if err := s.games.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateTrend(ctx)
	return nil
}

// ── Monthly trend ──

// MonthlyTrend buckets game results by calendar month, oldest first.
// Cancelled games are excluded entirely. The result is cached in Redis
// and invalidated whenever a game row changes.
func (s *StatsService) MonthlyTrend(ctx context.Context) ([]dto.MonthlyTrendEntry, error) {
	if s.redis != nil {
		if cached, ok, err := s.redis.GetCache(ctx, monthlyTrendCacheKey); err != nil {
			s.logger.Warn("trend cache read failed", zap.Error(err))
		} else if ok {
			var entries []dto.MonthlyTrendEntry
			if err := json.Unmarshal([]byte(cached), &entries); err == nil {
				return entries, nil
			}
		}
	}

	games, err := s.games.List(ctx)
	if err != nil {
		return nil, err
	}
	entries := buildMonthlyTrend(games)

	if s.redis != nil {
		if raw, err := json.Marshal(entries); err == nil {
			if err := s.redis.SetCache(ctx, monthlyTrendCacheKey, string(raw), redis.DefaultCacheTTL); err != nil {
				s.logger.Warn("trend cache write failed", zap.Error(err))
			}
		}
	}
	return entries, nil
}

func buildMonthlyTrend(games []model.GameResult) []dto.MonthlyTrendEntry {
	type bucket struct {
		entry      dto.MonthlyTrendEntry
		scoredSum  int
		scoredN    int
		allowedSum int
		allowedN   int
	}
	byMonth := make(map[string]*bucket)

	for _, g := range games {
		if g.Result == model.GameResultCancelled || len(g.GameDate) < 7 {
			continue
		}
		month := g.GameDate[:7]
		b, ok := byMonth[month]
		if !ok {
			b = &bucket{entry: dto.MonthlyTrendEntry{Month: month}}
			byMonth[month] = b
		}

		b.entry.Games++
		switch g.Result {
		case model.GameResultWin:
			b.entry.Wins++
		case model.GameResultLoss:
			b.entry.Losses++
		case model.GameResultDraw:
			b.entry.Draws++
		}
		if g.TeamScore != nil {
			b.scoredSum += *g.TeamScore
			b.scoredN++
		}
		if g.OpponentScore != nil {
			b.allowedSum += *g.OpponentScore
			b.allowedN++
		}
	}

	months := make([]string, 0, len(byMonth))
	for m := range byMonth {
		months = append(months, m)
	}
	sort.Strings(months)

	entries := make([]dto.MonthlyTrendEntry, 0, len(months))
	for _, m := range months {
		b := byMonth[m]
		if decided := b.entry.Wins + b.entry.Losses; decided > 0 {
			rate := round3(float64(b.entry.Wins) / float64(decided))
			b.entry.WinRate = &rate
		}
		if b.scoredN > 0 {
			avg := round1(float64(b.scoredSum) / float64(b.scoredN))
			b.entry.AvgRunsScored = &avg
		}
		if b.allowedN > 0 {
			avg := round1(float64(b.allowedSum) / float64(b.allowedN))
			b.entry.AvgRunsAllowed = &avg
		}
		entries = append(entries, b.entry)
	}
	return entries
}

func (s *StatsService) invalidateTrend(ctx context.Context) {
	if s.redis == nil {
		return
	}
	if err := s.redis.DeleteCache(ctx, monthlyTrendCacheKey); err != nil {
		s.logger.Warn("trend cache invalidation failed", zap.Error(err))
	}
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round3(v float64) float64 { return math.Round(v*1000) / 1000 }
