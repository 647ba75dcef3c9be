package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/y-inoue-koma/club-activity-manager/internal/model"
	"github.com/y-inoue-koma/club-activity-manager/internal/notify"
	"github.com/y-inoue-koma/club-activity-manager/internal/repository"
)

// ReminderResult reports what a reminder run did.
type ReminderResult struct {
	Date      string `json:"date"`
	Schedules int    `json:"schedules"`
	Sent      bool   `json:"sent"`
}

// ReminderService pushes a day-before digest of tomorrow's events to
// the staff channel. The clock is injectable for tests.
type ReminderService struct {
	schedules repository.ScheduleRepository
	notifier  notify.Notifier
	now       func() time.Time
	logger    *zap.Logger
}

func NewReminderService(schedules repository.ScheduleRepository, notifier notify.Notifier, logger *zap.Logger) *ReminderService {
	return &ReminderService{
		schedules: schedules,
		notifier:  notifier,
		now:       time.Now,
		logger:    logger,
	}
}

// Run sends the digest for tomorrow's schedule entries. A day with no
// events sends nothing and reports Sent=false.
func (s *ReminderService) Run(ctx context.Context) (*ReminderResult, error) {
	tomorrow := s.now().In(jst).AddDate(0, 0, 1).Format("2006-01-02")

	schedules, err := s.schedules.ListByDate(ctx, tomorrow)
	if err != nil {
		return nil, err
	}

	result := &ReminderResult{Date: tomorrow, Schedules: len(schedules)}
	if len(schedules) == 0 {
		return result, nil
	}

	if err := s.notifier.Notify(ctx, "明日の予定", digestBody(tomorrow, schedules)); err != nil {
		return nil, fmt.Errorf("reminder notify: %w", err)
	}

	result.Sent = true
	s.logger.Info("reminder sent", zap.String("date", tomorrow), zap.Int("schedules", len(schedules)))
	return result, nil
}

func digestBody(date string, schedules []model.Schedule) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s の予定 (%d件)\n", date, len(schedules))
	for _, sc := range schedules {
		b.WriteString("・")
		if sc.StartTime != nil {
			b.WriteString(*sc.StartTime)
			if sc.EndTime != nil {
				b.WriteString("-" + *sc.EndTime)
			}
			b.WriteString(" ")
		}
		b.WriteString(sc.Title)
		if sc.Location != nil {
			b.WriteString(" @" + *sc.Location)
		}
		if sc.Uniform != nil {
			b.WriteString(" [" + *sc.Uniform + "]")
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
