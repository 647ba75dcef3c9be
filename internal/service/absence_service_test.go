package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/y-inoue-koma/club-activity-manager/internal/dto"
	"github.com/y-inoue-koma/club-activity-manager/internal/model"
)

func newAbsenceFixture() (*AbsenceService, *mockAbsenceRepo, *mockNotifier) {
	absences := newMockAbsenceRepo()
	members := newMockMemberRepo()
	members.add(model.Member{ID: 1, Name: "佐藤", Grade: 3})
	schedules := newMockScheduleRepo()
	notifier := &mockNotifier{}
	svc := NewAbsenceService(absences, members, schedules, notifier, zap.NewNop())
	return svc, absences, notifier
}

func TestAbsenceCreateStartsPendingAndNotifies(t *testing.T) {
	svc, _, notifier := newAbsenceFixture()

	absence, err := svc.Create(context.Background(), &dto.CreateAbsenceRequest{
		MemberID:    1,
		AbsenceDate: "2025-06-10",
		Reason:      ptrStr("通院"),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if absence.Status != model.AbsenceStatusPending {
		t.Errorf("status = %q, want pending", absence.Status)
	}
	if len(notifier.bodies) != 1 {
		t.Fatalf("notifications sent = %d, want 1", len(notifier.bodies))
	}
	if !strings.Contains(notifier.bodies[0], "佐藤") || !strings.Contains(notifier.bodies[0], "通院") {
		t.Errorf("notification body missing member or reason: %q", notifier.bodies[0])
	}
}

func TestAbsenceCreateSurvivesNotifyFailure(t *testing.T) {
	svc, absences, notifier := newAbsenceFixture()
	notifier.fail = true

	absence, err := svc.Create(context.Background(), &dto.CreateAbsenceRequest{
		MemberID:    1,
		AbsenceDate: "2025-06-10",
	})
	if err != nil {
		t.Fatalf("Create should swallow notify errors, got %v", err)
	}
	if _, err := absences.GetByID(context.Background(), absence.ID); err != nil {
		t.Errorf("absence not persisted: %v", err)
	}
}

func TestAbsenceCreateUnknownMember(t *testing.T) {
	svc, _, _ := newAbsenceFixture()

	_, err := svc.Create(context.Background(), &dto.CreateAbsenceRequest{
		MemberID:    42,
		AbsenceDate: "2025-06-10",
	})
	if !errors.Is(err, ErrMemberNotFound) {
		t.Errorf("err = %v, want ErrMemberNotFound", err)
	}
}

func TestAbsenceStatusTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    string
		to      string
		wantErr error
	}{
		{"pending to approved", model.AbsenceStatusPending, model.AbsenceStatusApproved, nil},
		{"pending to noted", model.AbsenceStatusPending, model.AbsenceStatusNoted, nil},
		{"pending back to pending", model.AbsenceStatusPending, model.AbsenceStatusPending, ErrInvalidTransition},
		{"approved to noted", model.AbsenceStatusApproved, model.AbsenceStatusNoted, ErrAbsenceAlreadyResolved},
		{"noted to approved", model.AbsenceStatusNoted, model.AbsenceStatusApproved, ErrAbsenceAlreadyResolved},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, absences, _ := newAbsenceFixture()
			ctx := context.Background()
			absences.Create(ctx, &model.Absence{MemberID: 1, AbsenceDate: "2025-06-10", Status: tt.from})

			updated, err := svc.UpdateStatus(ctx, 1, tt.to)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && updated.Status != tt.to {
				t.Errorf("status = %q, want %q", updated.Status, tt.to)
			}
		})
	}
}

func TestAbsenceTerminalStatesStick(t *testing.T) {
	svc, absences, _ := newAbsenceFixture()
	ctx := context.Background()
	absences.Create(ctx, &model.Absence{MemberID: 1, AbsenceDate: "2025-06-10", Status: model.AbsenceStatusApproved})

	if _, err := svc.UpdateStatus(ctx, 1, model.AbsenceStatusNoted); err == nil {
		t.Fatal("expected error moving a resolved absence")
	}
	stored, _ := absences.GetByID(ctx, 1)
	if stored.Status != model.AbsenceStatusApproved {
		t.Errorf("status mutated to %q", stored.Status)
	}
}

func TestAbsenceListFilters(t *testing.T) {
	svc, absences, _ := newAbsenceFixture()
	ctx := context.Background()
	absences.Create(ctx, &model.Absence{MemberID: 1, ScheduleID: ptrUint(7), AbsenceDate: "2025-06-10"})
	absences.Create(ctx, &model.Absence{MemberID: 1, AbsenceDate: "2025-06-11"})

	bySchedule, err := svc.List(ctx, &dto.AbsenceListRequest{ScheduleID: ptrUint(7)})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(bySchedule) != 1 {
		t.Errorf("filtered by schedule: got %d rows, want 1", len(bySchedule))
	}
}
