package model

// Absence statuses. pending is the initial state; approved and noted are
// terminal. There is no reversal path.
const (
	AbsenceStatusPending  = "pending"
	AbsenceStatusApproved = "approved"
	AbsenceStatusNoted    = "noted"
)

// Absence is a member's declared non-attendance for a date.
type Absence struct {
	ID          uint    `gorm:"primaryKey"         json:"id"`
	MemberID    uint    `gorm:"not null;index"     json:"member_id"`
	ScheduleID  *uint   `json:"schedule_id,omitempty"`
	AbsenceDate string  `gorm:"type:date;not null" json:"absence_date"`
	Reason      *string `gorm:"type:text"          json:"reason,omitempty"`
	Status      string  `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	BaseModel

	Member *Member `gorm:"foreignKey:MemberID" json:"member,omitempty"`
}

func (Absence) TableName() string { return "absences" }
