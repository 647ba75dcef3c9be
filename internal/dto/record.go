package dto

// ── Player record requests ──

// CreateRecordRequest adds one member's raw stats for a date.
type CreateRecordRequest struct {
	MemberID        uint     `json:"member_id"   binding:"required"`
	RecordDate      string   `json:"record_date" binding:"required,datetime=2006-01-02"`
	AtBats          *int     `json:"at_bats"          binding:"omitempty,min=0"`
	Hits            *int     `json:"hits"             binding:"omitempty,min=0"`
	Doubles         *int     `json:"doubles"          binding:"omitempty,min=0"`
	Triples         *int     `json:"triples"          binding:"omitempty,min=0"`
	HomeRuns        *int     `json:"home_runs"        binding:"omitempty,min=0"`
	RBIs            *int     `json:"rbis"             binding:"omitempty,min=0"`
	Runs            *int     `json:"runs"             binding:"omitempty,min=0"`
	Strikeouts      *int     `json:"strikeouts"       binding:"omitempty,min=0"`
	Walks           *int     `json:"walks"            binding:"omitempty,min=0"`
	StolenBases     *int     `json:"stolen_bases"     binding:"omitempty,min=0"`
	InningsPitched  *float64 `json:"innings_pitched"  binding:"omitempty,min=0"`
	EarnedRuns      *int     `json:"earned_runs"      binding:"omitempty,min=0"`
	PitchStrikeouts *int     `json:"pitch_strikeouts" binding:"omitempty,min=0"`
	PitchWalks      *int     `json:"pitch_walks"      binding:"omitempty,min=0"`
	HitsAllowed     *int     `json:"hits_allowed"     binding:"omitempty,min=0"`
	Wins            *int     `json:"wins"             binding:"omitempty,min=0"`
	Losses          *int     `json:"losses"           binding:"omitempty,min=0"`
	Notes           *string  `json:"notes"`
}

// UpdateRecordRequest patches a raw-stat row.
type UpdateRecordRequest struct {
	RecordDate      *string  `json:"record_date" binding:"omitempty,datetime=2006-01-02"`
	AtBats          *int     `json:"at_bats"          binding:"omitempty,min=0"`
	Hits            *int     `json:"hits"             binding:"omitempty,min=0"`
	Doubles         *int     `json:"doubles"          binding:"omitempty,min=0"`
	Triples         *int     `json:"triples"          binding:"omitempty,min=0"`
	HomeRuns        *int     `json:"home_runs"        binding:"omitempty,min=0"`
	RBIs            *int     `json:"rbis"             binding:"omitempty,min=0"`
	Runs            *int     `json:"runs"             binding:"omitempty,min=0"`
	Strikeouts      *int     `json:"strikeouts"       binding:"omitempty,min=0"`
	Walks           *int     `json:"walks"            binding:"omitempty,min=0"`
	StolenBases     *int     `json:"stolen_bases"     binding:"omitempty,min=0"`
	InningsPitched  *float64 `json:"innings_pitched"  binding:"omitempty,min=0"`
	EarnedRuns      *int     `json:"earned_runs"      binding:"omitempty,min=0"`
	PitchStrikeouts *int     `json:"pitch_strikeouts" binding:"omitempty,min=0"`
	PitchWalks      *int     `json:"pitch_walks"      binding:"omitempty,min=0"`
	HitsAllowed     *int     `json:"hits_allowed"     binding:"omitempty,min=0"`
	Wins            *int     `json:"wins"             binding:"omitempty,min=0"`
	Losses          *int     `json:"losses"           binding:"omitempty,min=0"`
	Notes           *string  `json:"notes"`
}

// RecordListRequest filters a member's raw-stat rows.
type RecordListRequest struct {
	MemberID uint   `form:"member_id" binding:"required"`
	From     string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To       string `form:"to"   binding:"omitempty,datetime=2006-01-02"`
}

// ── Record summary response ──

// RecordSummaryResponse returns career totals plus derived rates. Rate
// pointers are nil when the denominator is zero so clients render a
// placeholder instead of NaN.
type RecordSummaryResponse struct {
	GamesCount           int      `json:"games_count"`
	TotalAtBats          int      `json:"total_at_bats"`
	TotalHits            int      `json:"total_hits"`
	TotalDoubles         int      `json:"total_doubles"`
	TotalTriples         int      `json:"total_triples"`
	TotalHomeRuns        int      `json:"total_home_runs"`
	TotalRBIs            int      `json:"total_rbis"`
	TotalRuns            int      `json:"total_runs"`
	TotalStrikeouts      int      `json:"total_strikeouts"`
	TotalWalks           int      `json:"total_walks"`
	TotalStolenBases     int      `json:"total_stolen_bases"`
	TotalInningsPitched  float64  `json:"total_innings_pitched"`
	TotalEarnedRuns      int      `json:"total_earned_runs"`
	TotalPitchStrikeouts int      `json:"total_pitch_strikeouts"`
	TotalPitchWalks      int      `json:"total_pitch_walks"`
	TotalHitsAllowed     int      `json:"total_hits_allowed"`
	TotalWins            int      `json:"total_wins"`
	TotalLosses          int      `json:"total_losses"`
	BattingAvg           *float64 `json:"batting_avg,omitempty"`
	OnBasePercentage     *float64 `json:"on_base_percentage,omitempty"`
	SluggingPercentage   *float64 `json:"slugging_percentage,omitempty"`
	OPS                  *float64 `json:"ops,omitempty"`
	ERA                  *float64 `json:"era,omitempty"`
	WHIP                 *float64 `json:"whip,omitempty"`
}

// AnalysisResponse carries the generated coaching narrative verbatim.
type AnalysisResponse struct {
	Analysis string `json:"analysis"`
}
