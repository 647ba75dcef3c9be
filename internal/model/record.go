package model

// PlayerRecord is one member's raw counting stats for a single date.
// Career totals are produced by summing rows; derived rates are never stored.
type PlayerRecord struct {
	ID              uint    `gorm:"primaryKey"         json:"id"`
	MemberID        uint    `gorm:"not null;index"     json:"member_id"`
	RecordDate      string  `gorm:"type:date;not null" json:"record_date"`
	AtBats          int     `gorm:"not null;default:0" json:"at_bats"`
	Hits            int     `gorm:"not null;default:0" json:"hits"`
	Doubles         int     `gorm:"not null;default:0" json:"doubles"`
	Triples         int     `gorm:"not null;default:0" json:"triples"`
	HomeRuns        int     `gorm:"not null;default:0" json:"home_runs"`
	RBIs            int     `gorm:"column:rbis;not null;default:0" json:"rbis"`
	Runs            int     `gorm:"not null;default:0" json:"runs"`
	Strikeouts      int     `gorm:"not null;default:0" json:"strikeouts"`
	Walks           int     `gorm:"not null;default:0" json:"walks"`
	StolenBases     int     `gorm:"not null;default:0" json:"stolen_bases"`
	InningsPitched  float64 `gorm:"type:numeric(5,1);not null;default:0" json:"innings_pitched"`
	EarnedRuns      int     `gorm:"not null;default:0" json:"earned_runs"`
	PitchStrikeouts int     `gorm:"not null;default:0" json:"pitch_strikeouts"`
	PitchWalks      int     `gorm:"not null;default:0" json:"pitch_walks"`
	HitsAllowed     int     `gorm:"not null;default:0" json:"hits_allowed"`
	Wins            int     `gorm:"not null;default:0" json:"wins"`
	Losses          int     `gorm:"not null;default:0" json:"losses"`
	Notes           *string `gorm:"type:text"          json:"notes,omitempty"`
	BaseModel

	Member *Member `gorm:"foreignKey:MemberID" json:"member,omitempty"`
}

func (PlayerRecord) TableName() string { return "player_records" }

// RecordSummary is the column-wise sum of a member's PlayerRecord rows.
type RecordSummary struct {
	TotalAtBats          int     `json:"total_at_bats"`
	TotalHits            int     `json:"total_hits"`
	TotalDoubles         int     `json:"total_doubles"`
	TotalTriples         int     `json:"total_triples"`
	TotalHomeRuns        int     `json:"total_home_runs"`
	TotalRBIs            int     `gorm:"column:total_rbis" json:"total_rbis"`
	TotalRuns            int     `json:"total_runs"`
	TotalStrikeouts      int     `json:"total_strikeouts"`
	TotalWalks           int     `json:"total_walks"`
	TotalStolenBases     int     `json:"total_stolen_bases"`
	TotalInningsPitched  float64 `json:"total_innings_pitched"`
	TotalEarnedRuns      int     `json:"total_earned_runs"`
	TotalPitchStrikeouts int     `json:"total_pitch_strikeouts"`
	TotalPitchWalks      int     `json:"total_pitch_walks"`
	TotalHitsAllowed     int     `json:"total_hits_allowed"`
	TotalWins            int     `json:"total_wins"`
	TotalLosses          int     `json:"total_losses"`
	GamesCount           int     `json:"games_count"`
}
