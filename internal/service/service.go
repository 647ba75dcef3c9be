// Package service holds the business rules between the HTTP handlers
// and the repositories.
package service

import (
	"go.uber.org/zap"

	"github.com/y-inoue-koma/club-activity-manager/config"
	"github.com/y-inoue-koma/club-activity-manager/internal/notify"
	"github.com/y-inoue-koma/club-activity-manager/internal/repository"
	"github.com/y-inoue-koma/club-activity-manager/pkg/jwt"
	"github.com/y-inoue-koma/club-activity-manager/pkg/redis"
)

// Service aggregates every business-layer component.
type Service struct {
	Auth     *AuthService
	Member   *MemberService
	Schedule *ScheduleService
	Menu     *MenuService
	Record   *RecordService
	Absence  *AbsenceService
	Stats    *StatsService
	Compare  *CompareService
	Analysis *AnalysisService
	Reminder *ReminderService
	Export   *ExportService
}

// Deps carries the shared infrastructure the services are built from.
// Redis and Notifier may be nil; the services degrade gracefully.
type Deps struct {
	Repo     *repository.Repository
	JWT      *jwt.Manager
	Redis    *redis.Client
	Notifier notify.Notifier
	Chat     ChatCompleter
	AI       *config.AIConfig
	Logger   *zap.Logger
}

// NewService wires the full business layer.
func NewService(d Deps) *Service {
	if d.Notifier == nil {
		d.Notifier = notify.Noop{}
	}
	recordSvc := NewRecordService(d.Repo.Record, d.Repo.Member, d.Logger)
	return &Service{
		Auth:     NewAuthService(d.Repo.User, d.JWT, d.Redis, d.Logger),
		Member:   NewMemberService(d.Repo.Member, d.Logger),
		Schedule: NewScheduleService(d.Repo.Schedule, d.Logger),
		Menu:     NewMenuService(d.Repo.Menu, d.Repo.Schedule, d.Logger),
		Record:   recordSvc,
		Absence:  NewAbsenceService(d.Repo.Absence, d.Repo.Member, d.Repo.Schedule, d.Notifier, d.Logger),
		Stats:    NewStatsService(d.Repo.Batting, d.Repo.Pitching, d.Repo.Team, d.Repo.Velocity, d.Repo.Physical, d.Repo.Game, d.Redis, d.Logger),
		Compare:  NewCompareService(d.Repo.Member, d.Repo.Batting, d.Repo.Pitching, d.Repo.Velocity, d.Repo.Physical, recordSvc, d.Logger),
		Analysis: NewAnalysisService(d.Repo.Member, d.Repo.Batting, d.Repo.Pitching, d.Repo.Velocity, d.Repo.Physical, d.Chat, d.AI, d.Logger),
		Reminder: NewReminderService(d.Repo.Schedule, d.Notifier, d.Logger),
		Export:   NewExportService(d.Repo.Batting, d.Logger),
	}
}
