package dto

// ── Absence requests ──

// CreateAbsenceRequest declares a member's non-attendance.
type CreateAbsenceRequest struct {
	MemberID    uint    `json:"member_id"    binding:"required"`
	ScheduleID  *uint   `json:"schedule_id"`
	AbsenceDate string  `json:"absence_date" binding:"required,datetime=2006-01-02"`
	Reason      *string `json:"reason"`
}

// UpdateAbsenceStatusRequest moves an absence out of pending.
// Validation admits the full enum; the service enforces the transition rules.
type UpdateAbsenceStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending approved noted"`
}

// AbsenceListRequest filters absence listings.
type AbsenceListRequest struct {
	ScheduleID *uint `form:"schedule_id"`
	MemberID   *uint `form:"member_id"`
}
