package dto

import "github.com/y-inoue-koma/club-activity-manager/internal/model"

// ── Leaderboard rows ──
// List endpoints flatten the joined member columns the way the dashboard
// tables consume them.

// BattingStatRow is one leaderboard entry.
type BattingStatRow struct {
	model.BattingStat
	MemberName    string  `json:"member_name"`
	Grade         int     `json:"grade"`
	Position      *string `json:"position,omitempty"`
	UniformNumber *int    `json:"uniform_number,omitempty"`
}

// PitchingStatRow is one leaderboard entry.
type PitchingStatRow struct {
	model.PitchingStat
	MemberName string  `json:"member_name"`
	Grade      int     `json:"grade"`
	Position   *string `json:"position,omitempty"`
}

// PitchVelocityRow is one velocity-board entry.
type PitchVelocityRow struct {
	model.PitchVelocity
	MemberName string `json:"member_name"`
	Grade      int    `json:"grade"`
}

// ExitVelocityRow is one velocity-board entry.
type ExitVelocityRow struct {
	model.ExitVelocity
	MemberName string `json:"member_name"`
	Grade      int    `json:"grade"`
}

// PulldownVelocityRow is one velocity-board entry.
type PulldownVelocityRow struct {
	model.PulldownVelocity
	MemberName string `json:"member_name"`
	Grade      int    `json:"grade"`
}

// PhysicalRow is one measurement-board entry.
type PhysicalRow struct {
	model.PhysicalMeasurement
	MemberName string `json:"member_name"`
	Grade      int    `json:"grade"`
}

// ── Velocity / physical import requests ──

// CreatePitchVelocityRequest records a standing-velocity measurement.
type CreatePitchVelocityRequest struct {
	MemberID    uint     `json:"member_id" binding:"required"`
	AvgFastball *float64 `json:"avg_fastball" binding:"omitempty,min=0,max=200"`
	AvgBreaking *float64 `json:"avg_breaking" binding:"omitempty,min=0,max=200"`
	MaxFastball *float64 `json:"max_fastball" binding:"omitempty,min=0,max=200"`
	MaxBreaking *float64 `json:"max_breaking" binding:"omitempty,min=0,max=200"`
}

// CreateMeasuredVelocityRequest records an exit or pulldown measurement.
type CreateMeasuredVelocityRequest struct {
	MemberID    uint     `json:"member_id" binding:"required"`
	MeasureDate *string  `json:"measure_date" binding:"omitempty,datetime=2006-01-02"`
	AvgSpeed    *float64 `json:"avg_speed" binding:"omitempty,min=0,max=250"`
	MaxSpeed    *float64 `json:"max_speed" binding:"omitempty,min=0,max=250"`
	AvgRank     *int     `json:"avg_rank"  binding:"omitempty,min=1"`
	MaxRank     *int     `json:"max_rank"  binding:"omitempty,min=1"`
}

// CreatePhysicalRequest records a physical measurement.
type CreatePhysicalRequest struct {
	MemberID    uint     `json:"member_id"    binding:"required"`
	MeasureDate string   `json:"measure_date" binding:"required,datetime=2006-01-02"`
	Category    string   `json:"category"     binding:"required,oneof=sprint_27m bench_press clean deadlift"`
	Value       *float64 `json:"value"        binding:"omitempty,min=0"`
}

// PhysicalListRequest selects a measurement board.
type PhysicalListRequest struct {
	Category string `form:"category" binding:"required,oneof=sprint_27m bench_press clean deadlift"`
}

// PhysicalByMemberRequest filters one member's measurements.
type PhysicalByMemberRequest struct {
	Category string `form:"category" binding:"omitempty,oneof=sprint_27m bench_press clean deadlift"`
}

// ── Game result requests ──

// CreateGameResultRequest records a game.
type CreateGameResultRequest struct {
	GameNumber    *int    `json:"game_number"`
	GameDate      string  `json:"game_date" binding:"required,datetime=2006-01-02"`
	Opponent      string  `json:"opponent"  binding:"required,min=1,max=200"`
	Result        string  `json:"result"    binding:"required,oneof=win loss draw cancelled"`
	HomeAway      *string `json:"home_away" binding:"omitempty,max=10"`
	TeamScore     *int    `json:"team_score"     binding:"omitempty,min=0"`
	OpponentScore *int    `json:"opponent_score" binding:"omitempty,min=0"`
	Innings       *string `json:"innings" binding:"omitempty,max=20"`
	Notes         *string `json:"notes"`
}

// UpdateGameResultRequest patches a game row.
type UpdateGameResultRequest struct {
	GameNumber    *int    `json:"game_number"`
	GameDate      *string `json:"game_date" binding:"omitempty,datetime=2006-01-02"`
	Opponent      *string `json:"opponent"  binding:"omitempty,min=1,max=200"`
	Result        *string `json:"result"    binding:"omitempty,oneof=win loss draw cancelled"`
	HomeAway      *string `json:"home_away" binding:"omitempty,max=10"`
	TeamScore     *int    `json:"team_score"     binding:"omitempty,min=0"`
	OpponentScore *int    `json:"opponent_score" binding:"omitempty,min=0"`
	Innings       *string `json:"innings" binding:"omitempty,max=20"`
	Notes         *string `json:"notes"`
}

// ── Monthly trend ──

// MonthlyTrendEntry is one calendar month's rollup of game results.
// Cancelled games are excluded from every tally.
type MonthlyTrendEntry struct {
	Month          string   `json:"month"` // "2006-01"
	Games          int      `json:"games"`
	Wins           int      `json:"wins"`
	Losses         int      `json:"losses"`
	Draws          int      `json:"draws"`
	WinRate        *float64 `json:"win_rate,omitempty"`
	AvgRunsScored  *float64 `json:"avg_runs_scored,omitempty"`
	AvgRunsAllowed *float64 `json:"avg_runs_allowed,omitempty"`
}
