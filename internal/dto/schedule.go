package dto

// ── Schedule requests ──

// CreateScheduleRequest adds a calendar event.
type CreateScheduleRequest struct {
	Title       string  `json:"title"       binding:"required,min=1,max=200"`
	Description *string `json:"description"`
	EventType   *string `json:"event_type"  binding:"omitempty,oneof=practice game meeting other"`
	EventDate   string  `json:"event_date"  binding:"required,datetime=2006-01-02"`
	StartTime   *string `json:"start_time"  binding:"omitempty,max=20"`
	EndTime     *string `json:"end_time"    binding:"omitempty,max=20"`
	Location    *string `json:"location"    binding:"omitempty,max=200"`
	Uniform     *string `json:"uniform"     binding:"omitempty,max=50"`
}

// UpdateScheduleRequest patches a calendar event.
type UpdateScheduleRequest struct {
	Title       *string `json:"title"       binding:"omitempty,min=1,max=200"`
	Description *string `json:"description"`
	EventType   *string `json:"event_type"  binding:"omitempty,oneof=practice game meeting other"`
	EventDate   *string `json:"event_date"  binding:"omitempty,datetime=2006-01-02"`
	StartTime   *string `json:"start_time"  binding:"omitempty,max=20"`
	EndTime     *string `json:"end_time"    binding:"omitempty,max=20"`
	Location    *string `json:"location"    binding:"omitempty,max=200"`
	Uniform     *string `json:"uniform"     binding:"omitempty,max=50"`
}

// ScheduleListRequest filters listings by date range.
type ScheduleListRequest struct {
	From string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To   string `form:"to"   binding:"omitempty,datetime=2006-01-02"`
}
