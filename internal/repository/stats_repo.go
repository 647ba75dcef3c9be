package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/y-inoue-koma/club-activity-manager/internal/model"
)

// BattingStatRepository reads the imported batting snapshots.
type BattingStatRepository interface {
	ListAll(ctx context.Context) ([]model.BattingStat, error)
	ListByMember(ctx context.Context, memberID uint) ([]model.BattingStat, error)
}

// PitchingStatRepository reads the imported pitching snapshots.
type PitchingStatRepository interface {
	ListAll(ctx context.Context) ([]model.PitchingStat, error)
	ListByMember(ctx context.Context, memberID uint) ([]model.PitchingStat, error)
}

// TeamStatRepository reads the team-wide rollup snapshot.
type TeamStatRepository interface {
	Get(ctx context.Context) (*model.TeamStat, error)
}

// ── BattingStat ──

type battingStatRepo struct {
	db *gorm.DB
}

func NewBattingStatRepo(db *gorm.DB) BattingStatRepository {
	return &battingStatRepo{db: db}
}

func (r *battingStatRepo) ListAll(ctx context.Context) ([]model.BattingStat, error) {
	var stats []model.BattingStat
	err := r.db.WithContext(ctx).
		Preload("Member").
		Order("batting_avg DESC NULLS LAST").
		Find(&stats).Error
	return stats, err
}

func (r *battingStatRepo) ListByMember(ctx context.Context, memberID uint) ([]model.BattingStat, error) {
	var stats []model.BattingStat
	err := r.db.WithContext(ctx).
		Where("member_id = ?", memberID).
		Find(&stats).Error
	return stats, err
}

// ── PitchingStat ──

type pitchingStatRepo struct {
	db *gorm.DB
}

func NewPitchingStatRepo(db *gorm.DB) PitchingStatRepository {
	return &pitchingStatRepo{db: db}
}

func (r *pitchingStatRepo) ListAll(ctx context.Context) ([]model.PitchingStat, error) {
	var stats []model.PitchingStat
	err := r.db.WithContext(ctx).
		Preload("Member").
		Order("era ASC NULLS LAST").
		Find(&stats).Error
	return stats, err
}

func (r *pitchingStatRepo) ListByMember(ctx context.Context, memberID uint) ([]model.PitchingStat, error) {
	var stats []model.PitchingStat
	err := r.db.WithContext(ctx).
		Where("member_id = ?", memberID).
		Find(&stats).Error
	return stats, err
}

// ── TeamStat ──

type teamStatRepo struct {
	db *gorm.DB
}

func NewTeamStatRepo(db *gorm.DB) TeamStatRepository {
	return &teamStatRepo{db: db}
}

func (r *teamStatRepo) Get(ctx context.Context) (*model.TeamStat, error) {
	var stat model.TeamStat
	if err := r.db.WithContext(ctx).First(&stat).Error; err != nil {
		return nil, err
	}
	return &stat, nil
}
