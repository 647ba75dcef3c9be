package model

import "time"

// PitchVelocity is a pitcher's standing-velocity measurement snapshot (km/h).
type PitchVelocity struct {
	ID          uint      `gorm:"primaryKey"        json:"id"`
	MemberID    uint      `gorm:"not null;index"    json:"member_id"`
	AvgFastball *float64  `gorm:"type:numeric(5,1)" json:"avg_fastball,omitempty"`
	AvgBreaking *float64  `gorm:"type:numeric(5,1)" json:"avg_breaking,omitempty"`
	MaxFastball *float64  `gorm:"type:numeric(5,1)" json:"max_fastball,omitempty"`
	MaxBreaking *float64  `gorm:"type:numeric(5,1)" json:"max_breaking,omitempty"`
	CreatedAt   time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`

	Member *Member `gorm:"foreignKey:MemberID" json:"member,omitempty"`
}

func (PitchVelocity) TableName() string { return "pitch_velocities" }

// ExitVelocity is a batted-ball speed measurement with team rank fields.
type ExitVelocity struct {
	ID          uint      `gorm:"primaryKey"        json:"id"`
	MemberID    uint      `gorm:"not null;index"    json:"member_id"`
	MeasureDate *string   `gorm:"type:date"         json:"measure_date,omitempty"`
	AvgSpeed    *float64  `gorm:"type:numeric(5,1)" json:"avg_speed,omitempty"`
	MaxSpeed    *float64  `gorm:"type:numeric(5,1)" json:"max_speed,omitempty"`
	AvgRank     *int      `json:"avg_rank,omitempty"`
	MaxRank     *int      `json:"max_rank,omitempty"`
	CreatedAt   time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`

	Member *Member `gorm:"foreignKey:MemberID" json:"member,omitempty"`
}

func (ExitVelocity) TableName() string { return "exit_velocities" }

// PulldownVelocity is a run-up throwing drill measurement, distinct from the
// standing pitch velocity.
type PulldownVelocity struct {
	ID          uint      `gorm:"primaryKey"        json:"id"`
	MemberID    uint      `gorm:"not null;index"    json:"member_id"`
	MeasureDate *string   `gorm:"type:date"         json:"measure_date,omitempty"`
	AvgSpeed    *float64  `gorm:"type:numeric(5,1)" json:"avg_speed,omitempty"`
	MaxSpeed    *float64  `gorm:"type:numeric(5,1)" json:"max_speed,omitempty"`
	AvgRank     *int      `json:"avg_rank,omitempty"`
	MaxRank     *int      `json:"max_rank,omitempty"`
	CreatedAt   time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`

	Member *Member `gorm:"foreignKey:MemberID" json:"member,omitempty"`
}

func (PulldownVelocity) TableName() string { return "pulldown_velocities" }
