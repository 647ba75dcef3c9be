package service

import (
	"context"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/y-inoue-koma/club-activity-manager/internal/dto"
	"github.com/y-inoue-koma/club-activity-manager/internal/model"
)

func newScheduleFixture() (*ScheduleService, *mockScheduleRepo) {
	schedules := newMockScheduleRepo()
	return NewScheduleService(schedules, zap.NewNop()), schedules
}

func TestScheduleCreateDefaultsEventType(t *testing.T) {
	svc, _ := newScheduleFixture()

	schedule, err := svc.Create(context.Background(), &dto.CreateScheduleRequest{
		Title:     "朝練",
		EventDate: "2025-04-15",
	}, 1)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if schedule.EventType != model.EventTypePractice {
		t.Errorf("event_type = %q, want practice", schedule.EventType)
	}
	if schedule.CreatedBy == nil || *schedule.CreatedBy != 1 {
		t.Error("created_by not recorded")
	}
}

func TestCalendarFeed(t *testing.T) {
	svc, schedules := newScheduleFixture()
	ctx := context.Background()

	schedules.Create(ctx, &model.Schedule{
		Title: "練習試合 vs 北高", EventDate: "2025-04-20",
		StartTime: ptrStr("13:00"), EndTime: ptrStr("16:00"), Location: ptrStr("北高グラウンド"),
	})
	schedules.Create(ctx, &model.Schedule{Title: "休養日", EventDate: "2025-04-21"})

	feed, err := svc.Calendar(ctx, "", "")
	if err != nil {
		t.Fatalf("Calendar: %v", err)
	}
	for _, want := range []string{
		"BEGIN:VCALENDAR",
		"END:VCALENDAR",
		"SUMMARY:練習試合 vs 北高",
		"LOCATION:北高グラウンド",
		"SUMMARY:休養日",
	} {
		if !strings.Contains(feed, want) {
			t.Errorf("feed missing %q", want)
		}
	}
	if got := strings.Count(feed, "BEGIN:VEVENT"); got != 2 {
		t.Errorf("events = %d, want 2", got)
	}
}

func TestEventTimesWindow(t *testing.T) {
	sc := &model.Schedule{
		EventDate: "2025-04-20",
		StartTime: ptrStr("13:00"),
		EndTime:   ptrStr("16:30"),
	}
	start, end, allDay := eventTimes(sc)
	if allDay {
		t.Fatal("timed event reported all-day")
	}
	if start.Hour() != 13 || start.Minute() != 0 {
		t.Errorf("start = %v", start)
	}
	if end.Sub(start).Hours() != 3.5 {
		t.Errorf("window = %v", end.Sub(start))
	}
}

func TestEventTimesAllDayWithoutStart(t *testing.T) {
	sc := &model.Schedule{EventDate: "2025-04-21"}
	start, end, allDay := eventTimes(sc)
	if !allDay {
		t.Fatal("dateless event should be all-day")
	}
	if end.Sub(start).Hours() != 24 {
		t.Errorf("all-day window = %v", end.Sub(start))
	}
}

func TestEventTimesEndBeforeStartFallsBack(t *testing.T) {
	sc := &model.Schedule{
		EventDate: "2025-04-20",
		StartTime: ptrStr("15:00"),
		EndTime:   ptrStr("09:00"),
	}
	start, end, _ := eventTimes(sc)
	if end.Sub(start).Hours() != 1 {
		t.Errorf("inverted end time should fall back to one hour, got %v", end.Sub(start))
	}
}
