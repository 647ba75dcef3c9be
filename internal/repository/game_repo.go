package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/y-inoue-koma/club-activity-manager/internal/model"
)

// GameResultRepository is the game-result data-access interface.
type GameResultRepository interface {
	Create(ctx context.Context, game *model.GameResult) error
	GetByID(ctx context.Context, id uint) (*model.GameResult, error)
	List(ctx context.Context) ([]model.GameResult, error)
	Update(ctx context.Context, game *model.GameResult) error
	Delete(ctx context.Context, id uint) error
}

type gameResultRepo struct {
	db *gorm.DB
}

func NewGameResultRepo(db *gorm.DB) GameResultRepository {
	return &gameResultRepo{db: db}
}

func (r *gameResultRepo) Create(ctx context.Context, game *model.GameResult) error {
	return r.db.WithContext(ctx).Create(game).Error
}

func (r *gameResultRepo) GetByID(ctx context.Context, id uint) (*model.GameResult, error) {
	var game model.GameResult
	if err := r.db.WithContext(ctx).First(&game, id).Error; err != nil {
		return nil, err
	}
	return &game, nil
}

func (r *gameResultRepo) List(ctx context.Context) ([]model.GameResult, error) {
	var games []model.GameResult
	err := r.db.WithContext(ctx).
		Order("game_date ASC, game_number ASC").
		Find(&games).Error
	return games, err
}

func (r *gameResultRepo) Update(ctx context.Context, game *model.GameResult) error {
	return r.db.WithContext(ctx).Save(game).Error
}

func (r *gameResultRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.GameResult{}, id).Error
}
