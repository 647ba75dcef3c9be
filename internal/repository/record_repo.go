package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/y-inoue-koma/club-activity-manager/internal/model"
)

// PlayerRecordRepository is the per-game raw-stat data-access interface.
type PlayerRecordRepository interface {
	Create(ctx context.Context, record *model.PlayerRecord) error
	GetByID(ctx context.Context, id uint) (*model.PlayerRecord, error)
	ListByMember(ctx context.Context, memberID uint, from, to string) ([]model.PlayerRecord, error)
	Update(ctx context.Context, record *model.PlayerRecord) error
	Delete(ctx context.Context, id uint) error
	Summarize(ctx context.Context, memberID uint) (*model.RecordSummary, error)
}

type playerRecordRepo struct {
	db *gorm.DB
}

func NewPlayerRecordRepo(db *gorm.DB) PlayerRecordRepository {
	return &playerRecordRepo{db: db}
}

func (r *playerRecordRepo) Create(ctx context.Context, record *model.PlayerRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *playerRecordRepo) GetByID(ctx context.Context, id uint) (*model.PlayerRecord, error) {
	var record model.PlayerRecord
	if err := r.db.WithContext(ctx).First(&record, id).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *playerRecordRepo) ListByMember(ctx context.Context, memberID uint, from, to string) ([]model.PlayerRecord, error) {
	var records []model.PlayerRecord
	q := r.db.WithContext(ctx).
		Where("member_id = ?", memberID).
		Order("record_date ASC")
	if from != "" {
		q = q.Where("record_date >= ?", from)
	}
	if to != "" {
		q = q.Where("record_date <= ?", to)
	}
	err := q.Find(&records).Error
	return records, err
}

func (r *playerRecordRepo) Update(ctx context.Context, record *model.PlayerRecord) error {
	return r.db.WithContext(ctx).Save(record).Error
}

func (r *playerRecordRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.PlayerRecord{}, id).Error
}

// Summarize sums every counting column in one aggregation query. A member
// with no rows yields all zeroes, never an error.
func (r *playerRecordRepo) Summarize(ctx context.Context, memberID uint) (*model.RecordSummary, error) {
	var summary model.RecordSummary
	err := r.db.WithContext(ctx).
		Model(&model.PlayerRecord{}).
		Select(`
			COALESCE(SUM(at_bats), 0)          AS total_at_bats,
			COALESCE(SUM(hits), 0)             AS total_hits,
			COALESCE(SUM(doubles), 0)          AS total_doubles,
			COALESCE(SUM(triples), 0)          AS total_triples,
			COALESCE(SUM(home_runs), 0)        AS total_home_runs,
			COALESCE(SUM(rbis), 0)             AS total_rbis,
			COALESCE(SUM(runs), 0)             AS total_runs,
			COALESCE(SUM(strikeouts), 0)       AS total_strikeouts,
			COALESCE(SUM(walks), 0)            AS total_walks,
			COALESCE(SUM(stolen_bases), 0)     AS total_stolen_bases,
			COALESCE(SUM(innings_pitched), 0)  AS total_innings_pitched,
			COALESCE(SUM(earned_runs), 0)      AS total_earned_runs,
			COALESCE(SUM(pitch_strikeouts), 0) AS total_pitch_strikeouts,
			COALESCE(SUM(pitch_walks), 0)      AS total_pitch_walks,
			COALESCE(SUM(hits_allowed), 0)     AS total_hits_allowed,
			COALESCE(SUM(wins), 0)             AS total_wins,
			COALESCE(SUM(losses), 0)           AS total_losses,
			COUNT(*)                           AS games_count`).
		Where("member_id = ?", memberID).
		Scan(&summary).Error
	if err != nil {
		return nil, err
	}
	return &summary, nil
}
