package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/y-inoue-koma/club-activity-manager/internal/model"
)

// AbsenceRepository is the absence-report data-access interface.
type AbsenceRepository interface {
	Create(ctx context.Context, absence *model.Absence) error
	GetByID(ctx context.Context, id uint) (*model.Absence, error)
	List(ctx context.Context, scheduleID, memberID *uint) ([]model.Absence, error)
	UpdateStatus(ctx context.Context, id uint, status string) error
}

type absenceRepo struct {
	db *gorm.DB
}

func NewAbsenceRepo(db *gorm.DB) AbsenceRepository {
	return &absenceRepo{db: db}
}

func (r *absenceRepo) Create(ctx context.Context, absence *model.Absence) error {
	return r.db.WithContext(ctx).Create(absence).Error
}

func (r *absenceRepo) GetByID(ctx context.Context, id uint) (*model.Absence, error) {
	var absence model.Absence
	if err := r.db.WithContext(ctx).First(&absence, id).Error; err != nil {
		return nil, err
	}
	return &absence, nil
}

func (r *absenceRepo) List(ctx context.Context, scheduleID, memberID *uint) ([]model.Absence, error) {
	var absences []model.Absence
	q := r.db.WithContext(ctx).
		Preload("Member").
		Order("created_at DESC")
	if scheduleID != nil {
		q = q.Where("schedule_id = ?", *scheduleID)
	}
	if memberID != nil {
		q = q.Where("member_id = ?", *memberID)
	}
	err := q.Find(&absences).Error
	return absences, err
}

func (r *absenceRepo) UpdateStatus(ctx context.Context, id uint, status string) error {
	return r.db.WithContext(ctx).
		Model(&model.Absence{}).
		Where("id = ?", id).
		Update("status", status).Error
}
