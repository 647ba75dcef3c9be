package model

import "time"

// BattingStat is a pre-aggregated per-member batting snapshot for a period.
// Snapshots are imported by seed scripts, not recomputed from player_records.
type BattingStat struct {
	ID                 uint     `gorm:"primaryKey"        json:"id"`
	MemberID           uint     `gorm:"not null;index"    json:"member_id"`
	Period             *string  `gorm:"type:varchar(100)" json:"period,omitempty"`
	Games              int      `gorm:"not null;default:0" json:"games"`
	PlateAppearances   int      `gorm:"not null;default:0" json:"plate_appearances"`
	AtBats             int      `gorm:"not null;default:0" json:"at_bats"`
	Runs               int      `gorm:"not null;default:0" json:"runs"`
	Hits               int      `gorm:"not null;default:0" json:"hits"`
	Singles            int      `gorm:"not null;default:0" json:"singles"`
	Doubles            int      `gorm:"not null;default:0" json:"doubles"`
	Triples            int      `gorm:"not null;default:0" json:"triples"`
	HomeRuns           int      `gorm:"not null;default:0" json:"home_runs"`
	TotalBases         int      `gorm:"not null;default:0" json:"total_bases"`
	RBIs               int      `gorm:"column:rbis;not null;default:0" json:"rbis"`
	StolenBasesTotal   int      `gorm:"not null;default:0" json:"stolen_bases_total"` // attempts
	StolenBases        int      `gorm:"not null;default:0" json:"stolen_bases"`
	SacrificeBunts     int      `gorm:"not null;default:0" json:"sacrifice_bunts"`
	SacrificeFlies     int      `gorm:"not null;default:0" json:"sacrifice_flies"`
	Walks              int      `gorm:"not null;default:0" json:"walks"`
	Strikeouts         int      `gorm:"not null;default:0" json:"strikeouts"`
	Errors             int      `gorm:"not null;default:0" json:"errors"`
	BattingAvg         *float64 `gorm:"type:numeric(4,3)" json:"batting_avg,omitempty"`
	OnBasePercentage   *float64 `gorm:"type:numeric(4,3)" json:"on_base_percentage,omitempty"`
	SluggingPercentage *float64 `gorm:"type:numeric(4,3)" json:"slugging_percentage,omitempty"`
	OPS                *float64 `gorm:"column:ops;type:numeric(5,3)" json:"ops,omitempty"`
	VsLeftAtBats       int      `gorm:"not null;default:0" json:"vs_left_at_bats"`
	VsLeftHits         int      `gorm:"not null;default:0" json:"vs_left_hits"`
	VsLeftAvg          *float64 `gorm:"type:numeric(4,3)" json:"vs_left_avg,omitempty"`
	VsRightAtBats      int      `gorm:"not null;default:0" json:"vs_right_at_bats"`
	VsRightHits        int      `gorm:"not null;default:0" json:"vs_right_hits"`
	VsRightAvg         *float64 `gorm:"type:numeric(4,3)" json:"vs_right_avg,omitempty"`
	BaseModel

	Member *Member `gorm:"foreignKey:MemberID" json:"member,omitempty"`
}

func (BattingStat) TableName() string { return "batting_stats" }

// PitchingStat is a pre-aggregated per-member pitching snapshot for a period.
// InningsPitched keeps the scorebook notation ("65 1/3") verbatim.
type PitchingStat struct {
	ID                    uint     `gorm:"primaryKey"        json:"id"`
	MemberID              uint     `gorm:"not null;index"    json:"member_id"`
	Period                *string  `gorm:"type:varchar(100)" json:"period,omitempty"`
	Games                 int      `gorm:"not null;default:0" json:"games"`
	InningsPitched        *string  `gorm:"type:varchar(20)"  json:"innings_pitched,omitempty"`
	BattersFaced          int      `gorm:"not null;default:0" json:"batters_faced"`
	HitsAllowed           int      `gorm:"not null;default:0" json:"hits_allowed"`
	HomeRunsAllowed       int      `gorm:"not null;default:0" json:"home_runs_allowed"`
	Walks                 int      `gorm:"not null;default:0" json:"walks"`
	Strikeouts            int      `gorm:"not null;default:0" json:"strikeouts"`
	EarnedRuns            int      `gorm:"not null;default:0" json:"earned_runs"`
	RunsAllowed           int      `gorm:"not null;default:0" json:"runs_allowed"`
	StrikeoutRate         *float64 `gorm:"type:numeric(5,3)" json:"strikeout_rate,omitempty"`
	ERA                   *float64 `gorm:"column:era;type:numeric(5,2)" json:"era,omitempty"`
	WHIP                  *float64 `gorm:"column:whip;type:numeric(5,3)" json:"whip,omitempty"`
	KPercentage           *float64 `gorm:"type:numeric(5,1)" json:"k_percentage,omitempty"`
	BBPercentage          *float64 `gorm:"column:bb_percentage;type:numeric(5,1)" json:"bb_percentage,omitempty"`
	FirstStrikePercentage *float64 `gorm:"type:numeric(5,2)" json:"first_strike_percentage,omitempty"`
	BaseModel

	Member *Member `gorm:"foreignKey:MemberID" json:"member,omitempty"`
}

func (PitchingStat) TableName() string { return "pitching_stats" }

// TeamStat is a team-wide rollup snapshot.
type TeamStat struct {
	ID             uint      `gorm:"primaryKey"        json:"id"`
	Period         *string   `gorm:"type:varchar(100)" json:"period,omitempty"`
	TotalGames     int       `gorm:"not null;default:0" json:"total_games"`
	Wins           int       `gorm:"not null;default:0" json:"wins"`
	Losses         int       `gorm:"not null;default:0" json:"losses"`
	Draws          int       `gorm:"not null;default:0" json:"draws"`
	WinRate        *float64  `gorm:"type:numeric(4,2)" json:"win_rate,omitempty"`
	TeamBattingAvg *float64  `gorm:"type:numeric(4,3)" json:"team_batting_avg,omitempty"`
	TeamSlugging   *float64  `gorm:"type:numeric(4,3)" json:"team_slugging,omitempty"`
	TeamOPS        *float64  `gorm:"column:team_ops;type:numeric(5,3)" json:"team_ops,omitempty"`
	TeamERA        *float64  `gorm:"column:team_era;type:numeric(5,2)" json:"team_era,omitempty"`
	TeamWHIP       *float64  `gorm:"column:team_whip;type:numeric(5,3)" json:"team_whip,omitempty"`
	AvgRunsScored  *float64  `gorm:"type:numeric(4,1)" json:"avg_runs_scored,omitempty"`
	AvgRunsAllowed *float64  `gorm:"type:numeric(4,1)" json:"avg_runs_allowed,omitempty"`
	CreatedAt      time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (TeamStat) TableName() string { return "team_stats" }
