package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/y-inoue-koma/club-activity-manager/internal/model"
)

// MemberRepository is the roster data-access interface.
type MemberRepository interface {
	Create(ctx context.Context, member *model.Member) error
	GetByID(ctx context.Context, id uint) (*model.Member, error)
	GetByUserID(ctx context.Context, userID uint) (*model.Member, error)
	List(ctx context.Context, activeOnly bool) ([]model.Member, error)
	Update(ctx context.Context, member *model.Member) error
	Retire(ctx context.Context, id uint) error
}

type memberRepo struct {
	db *gorm.DB
}

func NewMemberRepo(db *gorm.DB) MemberRepository {
	return &memberRepo{db: db}
}

func (r *memberRepo) Create(ctx context.Context, member *model.Member) error {
	return r.db.WithContext(ctx).Create(member).Error
}

func (r *memberRepo) GetByID(ctx context.Context, id uint) (*model.Member, error) {
	var member model.Member
	if err := r.db.WithContext(ctx).First(&member, id).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *memberRepo) GetByUserID(ctx context.Context, userID uint) (*model.Member, error) {
	var member model.Member
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *memberRepo) List(ctx context.Context, activeOnly bool) ([]model.Member, error) {
	var members []model.Member
	q := r.db.WithContext(ctx).Order("grade ASC, name ASC")
	if activeOnly {
		q = q.Where("status = ?", model.MemberStatusActive)
	}
	err := q.Find(&members).Error
	return members, err
}

func (r *memberRepo) Update(ctx context.Context, member *model.Member) error {
	return r.db.WithContext(ctx).Save(member).Error
}

// Retire marks a member retired. Rows are never hard-deleted so historical
// stat rows keep a valid reference.
func (r *memberRepo) Retire(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Model(&model.Member{}).
		Where("id = ?", id).
		Update("status", model.MemberStatusRetired).Error
}
