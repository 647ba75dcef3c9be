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

var (
	ErrMemberNotFound  = errors.New("member not found")
	ErrMemberRetired   = errors.New("member already retired")
	ErrProfileNotFound = errors.New("no roster entry linked to this account")
)

// MemberService manages the club roster.
type MemberService struct {
	members repository.MemberRepository
	logger  *zap.Logger
}

func NewMemberService(members repository.MemberRepository, logger *zap.Logger) *MemberService {
	return &MemberService{members: members, logger: logger}
}

// List returns active members by default, everyone when all is set.
func (s *MemberService) List(ctx context.Context, all bool) ([]model.Member, error) {
	return s.members.List(ctx, !all)
}

func (s *MemberService) Get(ctx context.Context, id uint) (*model.Member, error) {
	member, err := s.members.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	return member, nil
}

// MyProfile resolves the roster entry linked to a login account.
func (s *MemberService) MyProfile(ctx context.Context, userID uint) (*model.Member, error) {
	member, err := s.members.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return member, nil
}

func (s *MemberService) Create(ctx context.Context, req *dto.CreateMemberRequest) (*model.Member, error) {
	member := &model.Member{
		UserID:        req.UserID,
		Name:          req.Name,
		Kana:          req.Kana,
		Grade:         req.Grade,
		Position:      req.Position,
		UniformNumber: req.UniformNumber,
		ClassNumber:   req.ClassNumber,
		StudentNumber: req.StudentNumber,
		Role:          model.MemberRolePlayer,
		Status:        model.MemberStatusActive,
	}
	if req.Role != nil {
		member.Role = *req.Role
	}
	if err := s.members.Create(ctx, member); err != nil {
		return nil, err
	}
	s.logger.Info("member created", zap.Uint("member_id", member.ID), zap.String("name", member.Name))
	return member, nil
}

func (s *MemberService) Update(ctx context.Context, id uint, req *dto.UpdateMemberRequest) (*model.Member, error) {
	member, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		member.Name = *req.Name
	}
	if req.Kana != nil {
		member.Kana = req.Kana
	}
	if req.Grade != nil {
		member.Grade = *req.Grade
	}
	if req.Position != nil {
		member.Position = req.Position
	}
	if req.UniformNumber != nil {
		member.UniformNumber = req.UniformNumber
	}
	if req.ClassNumber != nil {
		member.ClassNumber = req.ClassNumber
	}
	if req.StudentNumber != nil {
		member.StudentNumber = req.StudentNumber
	}
	if req.Role != nil {
		member.Role = *req.Role
	}
	if req.Status != nil {
		member.Status = *req.Status
	}
	if req.UserID != nil {
		member.UserID = req.UserID
	}

	if err := s.members.Update(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

// Retire marks a member retired. Stat history stays intact; the member
// just leaves the default roster listing.
func (s *MemberService) Retire(ctx context.Context, id uint) error {
	member, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if member.Status == model.MemberStatusRetired {
		return ErrMemberRetired
	}
	if err := s.members.Retire(ctx, id); err != nil {
		return err
	}
	s.logger.Info("member retired", zap.Uint("member_id", id))
	return nil
}
