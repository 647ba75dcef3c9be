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

var ErrMenuNotFound = errors.New("practice menu not found")

// MenuService manages practice drills, optionally attached to a schedule.
type MenuService struct {
	menus     repository.PracticeMenuRepository
	schedules repository.ScheduleRepository
	logger    *zap.Logger
}

func NewMenuService(menus repository.PracticeMenuRepository, schedules repository.ScheduleRepository, logger *zap.Logger) *MenuService {
	return &MenuService{menus: menus, schedules: schedules, logger: logger}
}

func (s *MenuService) List(ctx context.Context, scheduleID *uint) ([]model.PracticeMenu, error) {
	return s.menus.List(ctx, scheduleID)
}

func (s *MenuService) Get(ctx context.Context, id uint) (*model.PracticeMenu, error) {
	menu, err := s.menus.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenuNotFound
		}
		return nil, err
	}
	return menu, nil
}

func (s *MenuService) Create(ctx context.Context, req *dto.CreateMenuRequest) (*model.PracticeMenu, error) {
	if req.ScheduleID != nil {
		if _, err := s.schedules.GetByID(ctx, *req.ScheduleID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrScheduleNotFound
			}
			return nil, err
		}
	}

	menu := &model.PracticeMenu{
		ScheduleID:  req.ScheduleID,
		Category:    req.Category,
		Title:       req.Title,
		Description: req.Description,
		Duration:    req.Duration,
		TargetGroup: req.TargetGroup,
	}
	if err := s.menus.Create(ctx, menu); err != nil {
		return nil, err
	}
	s.logger.Info("practice menu created", zap.Uint("menu_id", menu.ID), zap.String("category", menu.Category))
	return menu, nil
}

func (s *MenuService) Update(ctx context.Context, id uint, req *dto.UpdateMenuRequest) (*model.PracticeMenu, error) {
	menu, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.ScheduleID != nil {
		if _, err := s.schedules.GetByID(ctx, *req.ScheduleID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrScheduleNotFound
			}
			return nil, err
		}
		menu.ScheduleID = req.ScheduleID
	}
	if req.Category != nil {
		menu.Category = *req.Category
	}
	if req.Title != nil {
		menu.Title = *req.Title
	}
	if req.Description != nil {
		menu.Description = req.Description
	}
	if req.Duration != nil {
		menu.Duration = req.Duration
	}
	if req.TargetGroup != nil {
		menu.TargetGroup = req.TargetGroup
	}

	if err := s.menus.Update(ctx, menu); err != nil {
		return nil, err
	}
	return menu, nil
}

func (s *MenuService) Delete(ctx context.Context, id uint) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.menus.Delete(ctx, id)
}
