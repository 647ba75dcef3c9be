package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/y-inoue-koma/club-activity-manager/internal/model"
)

// PracticeMenuRepository is the drill-menu data-access interface.
type PracticeMenuRepository interface {
	Create(ctx context.Context, menu *model.PracticeMenu) error
	GetByID(ctx context.Context, id uint) (*model.PracticeMenu, error)
	List(ctx context.Context, scheduleID *uint) ([]model.PracticeMenu, error)
	Update(ctx context.Context, menu *model.PracticeMenu) error
	Delete(ctx context.Context, id uint) error
}

type practiceMenuRepo struct {
	db *gorm.DB
}

func NewPracticeMenuRepo(db *gorm.DB) PracticeMenuRepository {
	return &practiceMenuRepo{db: db}
}

func (r *practiceMenuRepo) Create(ctx context.Context, menu *model.PracticeMenu) error {
	return r.db.WithContext(ctx).Create(menu).Error
}

func (r *practiceMenuRepo) GetByID(ctx context.Context, id uint) (*model.PracticeMenu, error) {
	var menu model.PracticeMenu
	if err := r.db.WithContext(ctx).First(&menu, id).Error; err != nil {
		return nil, err
	}
	return &menu, nil
}

func (r *practiceMenuRepo) List(ctx context.Context, scheduleID *uint) ([]model.PracticeMenu, error) {
	var menus []model.PracticeMenu
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if scheduleID != nil {
		q = q.Where("schedule_id = ?", *scheduleID)
	}
	err := q.Find(&menus).Error
	return menus, err
}

func (r *practiceMenuRepo) Update(ctx context.Context, menu *model.PracticeMenu) error {
	return r.db.WithContext(ctx).Save(menu).Error
}

func (r *practiceMenuRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.PracticeMenu{}, id).Error
}
