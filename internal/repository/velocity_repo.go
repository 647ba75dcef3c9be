package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/y-inoue-koma/club-activity-manager/internal/model"
)

// VelocityRepository covers the three speed-measurement tables.
type VelocityRepository interface {
	CreatePitch(ctx context.Context, v *model.PitchVelocity) error
	CreateExit(ctx context.Context, v *model.ExitVelocity) error
	CreatePulldown(ctx context.Context, v *model.PulldownVelocity) error

	ListPitch(ctx context.Context) ([]model.PitchVelocity, error)
	ListExit(ctx context.Context) ([]model.ExitVelocity, error)
	ListPulldown(ctx context.Context) ([]model.PulldownVelocity, error)

	PitchByMember(ctx context.Context, memberID uint) ([]model.PitchVelocity, error)
	ExitByMember(ctx context.Context, memberID uint) ([]model.ExitVelocity, error)
	PulldownByMember(ctx context.Context, memberID uint) ([]model.PulldownVelocity, error)
}

type velocityRepo struct {
	db *gorm.DB
}

func NewVelocityRepo(db *gorm.DB) VelocityRepository {
	return &velocityRepo{db: db}
}

func (r *velocityRepo) CreatePitch(ctx context.Context, v *model.PitchVelocity) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *velocityRepo) CreateExit(ctx context.Context, v *model.ExitVelocity) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *velocityRepo) CreatePulldown(ctx context.Context, v *model.PulldownVelocity) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *velocityRepo) ListPitch(ctx context.Context) ([]model.PitchVelocity, error) {
	var vs []model.PitchVelocity
	err := r.db.WithContext(ctx).
		Preload("Member").
		Order("avg_fastball DESC NULLS LAST").
		Find(&vs).Error
	return vs, err
}

func (r *velocityRepo) ListExit(ctx context.Context) ([]model.ExitVelocity, error) {
	var vs []model.ExitVelocity
	err := r.db.WithContext(ctx).
		Preload("Member").
		Order("avg_rank ASC NULLS LAST").
		Find(&vs).Error
	return vs, err
}

func (r *velocityRepo) ListPulldown(ctx context.Context) ([]model.PulldownVelocity, error) {
	var vs []model.PulldownVelocity
	err := r.db.WithContext(ctx).
		Preload("Member").
		Order("avg_rank ASC NULLS LAST").
		Find(&vs).Error
	return vs, err
}

func (r *velocityRepo) PitchByMember(ctx context.Context, memberID uint) ([]model.PitchVelocity, error) {
	var vs []model.PitchVelocity
	err := r.db.WithContext(ctx).Where("member_id = ?", memberID).Find(&vs).Error
	return vs, err
}

func (r *velocityRepo) ExitByMember(ctx context.Context, memberID uint) ([]model.ExitVelocity, error) {
	var vs []model.ExitVelocity
	err := r.db.WithContext(ctx).Where("member_id = ?", memberID).Find(&vs).Error
	return vs, err
}

func (r *velocityRepo) PulldownByMember(ctx context.Context, memberID uint) ([]model.PulldownVelocity, error) {
	var vs []model.PulldownVelocity
	err := r.db.WithContext(ctx).Where("member_id = ?", memberID).Find(&vs).Error
	return vs, err
}
