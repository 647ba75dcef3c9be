package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/y-inoue-koma/club-activity-manager/internal/dto"
	"github.com/y-inoue-koma/club-activity-manager/internal/model"
	"github.com/y-inoue-koma/club-activity-manager/internal/repository"
)

var ErrScheduleNotFound = errors.New("schedule not found")

// jst is the zone all event times are entered in.
var jst = time.FixedZone("JST", 9*60*60)

// ScheduleService manages calendar events and renders the iCalendar feed.
type ScheduleService struct {
	schedules repository.ScheduleRepository
	logger    *zap.Logger
}

func NewScheduleService(schedules repository.ScheduleRepository, logger *zap.Logger) *ScheduleService {
	return &ScheduleService{schedules: schedules, logger: logger}
}

func (s *ScheduleService) List(ctx context.Context, from, to string) ([]model.Schedule, error) {
	return s.schedules.List(ctx, from, to)
}

func (s *ScheduleService) Get(ctx context.Context, id uint) (*model.Schedule, error) {
	schedule, err := s.schedules.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrScheduleNotFound
		}
		return nil, err
	}
	return schedule, nil
}

func (s *ScheduleService) Create(ctx context.Context, req *dto.CreateScheduleRequest, createdBy uint) (*model.Schedule, error) {
	schedule := &model.Schedule{
		Title:       req.Title,
		Description: req.Description,
		EventType:   model.EventTypePractice,
		EventDate:   req.EventDate,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Location:    req.Location,
		Uniform:     req.Uniform,
		CreatedBy:   &createdBy,
	}
	if req.EventType != nil {
		schedule.EventType = *req.EventType
	}
	if err := s.schedules.Create(ctx, schedule); err != nil {
		return nil, err
	}
	s.logger.Info("schedule created",
		zap.Uint("schedule_id", schedule.ID),
		zap.String("event_date", schedule.EventDate))
	return schedule, nil
}

func (s *ScheduleService) Update(ctx context.Context, id uint, req *dto.UpdateScheduleRequest) (*model.Schedule, error) {
	schedule, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		schedule.Title = *req.Title
	}
	if req.Description != nil {
		schedule.Description = req.Description
	}
	if req.EventType != nil {
		schedule.EventType = *req.EventType
	}
	if req.EventDate != nil {
		schedule.EventDate = *req.EventDate
	}
	if req.StartTime != nil {
		schedule.StartTime = req.StartTime
	}
	if req.EndTime != nil {
		schedule.EndTime = req.EndTime
	}
	if req.Location != nil {
		schedule.Location = req.Location
	}
	if req.Uniform != nil {
		schedule.Uniform = req.Uniform
	}

	if err := s.schedules.Update(ctx, schedule); err != nil {
		return nil, err
	}
	return schedule, nil
}

func (s *ScheduleService) Delete(ctx context.Context, id uint) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.schedules.Delete(ctx, id)
}

// Calendar renders every event in the given range as an iCalendar feed
// that members subscribe to from their phone calendars. Events without
// a start time become all-day entries.
func (s *ScheduleService) Calendar(ctx context.Context, from, to string) (string, error) {
	schedules, err := s.schedules.List(ctx, from, to)
	if err != nil {
		return "", err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//club-activity-manager//calendar//JA")
	cal.SetName("部活動カレンダー")

	for i := range schedules {
		sc := &schedules[i]
		event := cal.AddEvent(fmt.Sprintf("schedule-%d@club-activity-manager", sc.ID))
		event.SetCreatedTime(sc.CreatedAt)
		event.SetDtStampTime(sc.UpdatedAt)
		event.SetSummary(sc.Title)
		if sc.Description != nil {
			event.SetDescription(*sc.Description)
		}
		if sc.Location != nil {
			event.SetLocation(*sc.Location)
		}

		start, end, allDay := eventTimes(sc)
		if allDay {
			event.SetAllDayStartAt(start)
			event.SetAllDayEndAt(end)
		} else {
			event.SetStartAt(start)
			event.SetEndAt(end)
		}
	}

	return cal.Serialize(), nil
}

// eventTimes resolves an event's wall-clock window. Missing end times
// default to one hour after the start.
func eventTimes(sc *model.Schedule) (start, end time.Time, allDay bool) {
	day, err := time.ParseInLocation("2006-01-02", sc.EventDate, jst)
	if err != nil {
		day = time.Now().In(jst).Truncate(24 * time.Hour)
	}

	if sc.StartTime == nil {
		return day, day.AddDate(0, 0, 1), true
	}

	startClock, err := time.Parse("15:04", *sc.StartTime)
	if err != nil {
		return day, day.AddDate(0, 0, 1), true
	}
	start = day.Add(time.Duration(startClock.Hour())*time.Hour + time.Duration(startClock.Minute())*time.Minute)

	end = start.Add(time.Hour)
	if sc.EndTime != nil {
		if endClock, err := time.Parse("15:04", *sc.EndTime); err == nil {
			candidate := day.Add(time.Duration(endClock.Hour())*time.Hour + time.Duration(endClock.Minute())*time.Minute)
			if candidate.After(start) {
				end = candidate
			}
		}
	}
	return start, end, false
}
