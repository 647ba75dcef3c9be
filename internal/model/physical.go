package model

import "time"

// Physical measurement categories.
const (
	PhysicalSprint27m  = "sprint_27m"
	PhysicalBenchPress = "bench_press"
	PhysicalClean      = "clean"
	PhysicalDeadlift   = "deadlift"
)

// PhysicalCategories lists the valid categories in display order.
var PhysicalCategories = []string{
	PhysicalSprint27m,
	PhysicalBenchPress,
	PhysicalClean,
	PhysicalDeadlift,
}

// PhysicalMeasurement is a single scalar measurement for one member on one
// date. Sprint values are seconds (lower is better); lift values are kg.
type PhysicalMeasurement struct {
	ID          uint      `gorm:"primaryKey"               json:"id"`
	MemberID    uint      `gorm:"not null;index"           json:"member_id"`
	MeasureDate string    `gorm:"type:date;not null"       json:"measure_date"`
	Category    string    `gorm:"type:varchar(30);not null" json:"category"`
	Value       *float64  `gorm:"type:numeric(8,2)"        json:"value,omitempty"`
	CreatedAt   time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`

	Member *Member `gorm:"foreignKey:MemberID" json:"member,omitempty"`
}

func (PhysicalMeasurement) TableName() string { return "physical_measurements" }
