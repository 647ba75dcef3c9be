package model

// Schedule event types.
const (
	EventTypePractice = "practice"
	EventTypeGame     = "game"
	EventTypeMeeting  = "meeting"
	EventTypeOther    = "other"
)

// Schedule is a calendar event (practice, game, meeting, other).
// EventDate is a DATE stored as "2006-01-02"; start/end times are free-form
// "HH:MM" strings as entered by coaches.
type Schedule struct {
	ID          uint    `gorm:"primaryKey"                 json:"id"`
	Title       string  `gorm:"type:varchar(200);not null" json:"title"`
	Description *string `gorm:"type:text"                  json:"description,omitempty"`
	EventType   string  `gorm:"type:varchar(20);not null;default:'practice'" json:"event_type"`
	EventDate   string  `gorm:"type:date;not null"         json:"event_date"`
	StartTime   *string `gorm:"type:varchar(20)"           json:"start_time,omitempty"`
	EndTime     *string `gorm:"type:varchar(20)"           json:"end_time,omitempty"`
	Location    *string `gorm:"type:varchar(200)"          json:"location,omitempty"`
	Uniform     *string `gorm:"type:varchar(50)"           json:"uniform,omitempty"`
	CreatedBy   *uint   `json:"created_by,omitempty"`
	BaseModel
}

func (Schedule) TableName() string { return "schedules" }

// Practice menu categories.
const (
	MenuCategoryBatting      = "batting"
	MenuCategoryFielding     = "fielding"
	MenuCategoryPitching     = "pitching"
	MenuCategoryRunning      = "running"
	MenuCategoryConditioning = "conditioning"
	MenuCategoryOther        = "other"
)

// PracticeMenu is a named drill, optionally attached to a schedule entry.
type PracticeMenu struct {
	ID          uint    `gorm:"primaryKey"                 json:"id"`
	ScheduleID  *uint   `json:"schedule_id,omitempty"`
	Category    string  `gorm:"type:varchar(20);not null"  json:"category"`
	Title       string  `gorm:"type:varchar(200);not null" json:"title"`
	Description *string `gorm:"type:text"                  json:"description,omitempty"`
	Duration    *int    `json:"duration,omitempty"` // minutes
	TargetGroup *string `gorm:"type:varchar(100)"          json:"target_group,omitempty"`
	BaseModel
}

func (PracticeMenu) TableName() string { return "practice_menus" }
