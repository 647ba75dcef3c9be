package model

import "time"

// Game outcomes.
const (
	GameResultWin       = "win"
	GameResultLoss      = "loss"
	GameResultDraw      = "draw"
	GameResultCancelled = "cancelled"
)

// GameResult is one row per game played (or cancelled).
type GameResult struct {
	ID            uint      `gorm:"primaryKey"                 json:"id"`
	GameNumber    *int      `json:"game_number,omitempty"`
	GameDate      string    `gorm:"type:date;not null;index"   json:"game_date"`
	Opponent      string    `gorm:"type:varchar(200);not null" json:"opponent"`
	Result        string    `gorm:"type:varchar(20);not null"  json:"result"` // win | loss | draw | cancelled
	HomeAway      *string   `gorm:"type:varchar(10)"           json:"home_away,omitempty"`
	TeamScore     *int      `json:"team_score,omitempty"`
	OpponentScore *int      `json:"opponent_score,omitempty"`
	Innings       *string   `gorm:"type:varchar(20)"           json:"innings,omitempty"`
	Notes         *string   `gorm:"type:text"                  json:"notes,omitempty"`
	CreatedAt     time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (GameResult) TableName() string { return "game_results" }
