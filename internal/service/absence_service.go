package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/y-inoue-koma/club-activity-manager/internal/dto"
	"github.com/y-inoue-koma/club-activity-manager/internal/model"
	"github.com/y-inoue-koma/club-activity-manager/internal/notify"
	"github.com/y-inoue-koma/club-activity-manager/internal/repository"
)

var (
	ErrAbsenceNotFound        = errors.New("absence not found")
	ErrAbsenceAlreadyResolved = errors.New("absence already resolved")
	ErrInvalidTransition      = errors.New("invalid absence status transition")
)

// AbsenceService manages non-attendance declarations. Creation pushes a
// best-effort notification to the coaching staff; delivery failures never
// fail the create.
type AbsenceService struct {
	absences  repository.AbsenceRepository
	members   repository.MemberRepository
	schedules repository.ScheduleRepository
	notifier  notify.Notifier
	logger    *zap.Logger
}

func NewAbsenceService(absences repository.AbsenceRepository, members repository.MemberRepository, schedules repository.ScheduleRepository, notifier notify.Notifier, logger *zap.Logger) *AbsenceService {
	return &AbsenceService{
		absences:  absences,
		members:   members,
		schedules: schedules,
		notifier:  notifier,
		logger:    logger,
	}
}

func (s *AbsenceService) List(ctx context.Context, req *dto.AbsenceListRequest) ([]model.Absence, error) {
	return s.absences.List(ctx, req.ScheduleID, req.MemberID)
}

func (s *AbsenceService) Get(ctx context.Context, id uint) (*model.Absence, error) {
	absence, err := s.absences.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAbsenceNotFound
		}
		return nil, err
	}
	return absence, nil
}

// Create files an absence in the pending state and notifies the staff
// channel. The notification is fire-and-forget.
func (s *AbsenceService) Create(ctx context.Context, req *dto.CreateAbsenceRequest) (*model.Absence, error) {
	member, err := s.members.GetByID(ctx, req.MemberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	if req.ScheduleID != nil {
		if _, err := s.schedules.GetByID(ctx, *req.ScheduleID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrScheduleNotFound
			}
			return nil, err
		}
	}

	absence := &model.Absence{
		MemberID:    req.MemberID,
		ScheduleID:  req.ScheduleID,
		AbsenceDate: req.AbsenceDate,
		Reason:      req.Reason,
		Status:      model.AbsenceStatusPending,
	}
	if err := s.absences.Create(ctx, absence); err != nil {
		return nil, err
	}

	body := fmt.Sprintf("%s (%d年) が %s の欠席を届け出ました。", member.Name, member.Grade, absence.AbsenceDate)
	if absence.Reason != nil && *absence.Reason != "" {
		body += "\n理由: " + *absence.Reason
	}
	if err := s.notifier.Notify(ctx, "欠席連絡", body); err != nil {
		s.logger.Warn("absence notification failed",
			zap.Uint("absence_id", absence.ID), zap.Error(err))
	}

	return absence, nil
}

// UpdateStatus moves an absence out of pending. Only pending rows can
// move, and only to approved or noted.
func (s *AbsenceService) UpdateStatus(ctx context.Context, id uint, status string) (*model.Absence, error) {
	absence, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if status != model.AbsenceStatusApproved && status != model.AbsenceStatusNoted {
		return nil, ErrInvalidTransition
	}
	if absence.Status != model.AbsenceStatusPending {
		return nil, ErrAbsenceAlreadyResolved
	}

	if err := s.absences.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	absence.Status = status
	s.logger.Info("absence resolved", zap.Uint("absence_id", id), zap.String("status", status))
	return absence, nil
}
