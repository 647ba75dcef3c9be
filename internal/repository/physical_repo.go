package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/y-inoue-koma/club-activity-manager/internal/model"
)

// PhysicalRepository is the physical-measurement data-access interface.
type PhysicalRepository interface {
	Create(ctx context.Context, m *model.PhysicalMeasurement) error
	ListByCategory(ctx context.Context, category string) ([]model.PhysicalMeasurement, error)
	ListByMember(ctx context.Context, memberID uint, category string) ([]model.PhysicalMeasurement, error)
}

type physicalRepo struct {
	db *gorm.DB
}

func NewPhysicalRepo(db *gorm.DB) PhysicalRepository {
	return &physicalRepo{db: db}
}

func (r *physicalRepo) Create(ctx context.Context, m *model.PhysicalMeasurement) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *physicalRepo) ListByCategory(ctx context.Context, category string) ([]model.PhysicalMeasurement, error) {
	var ms []model.PhysicalMeasurement
	err := r.db.WithContext(ctx).
		Preload("Member").
		Joins("JOIN members ON members.id = physical_measurements.member_id").
		Where("physical_measurements.category = ?", category).
		Order("physical_measurements.measure_date ASC, members.name ASC").
		Find(&ms).Error
	return ms, err
}

func (r *physicalRepo) ListByMember(ctx context.Context, memberID uint, category string) ([]model.PhysicalMeasurement, error) {
	var ms []model.PhysicalMeasurement
	q := r.db.WithContext(ctx).
		Where("member_id = ?", memberID).
		Order("measure_date ASC")
	if category != "" {
		q = q.Where("category = ?", category)
	}
	err := q.Find(&ms).Error
	return ms, err
}
