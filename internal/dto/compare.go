package dto

import "github.com/y-inoue-koma/club-activity-manager/internal/model"

// CompareRequest names the members to line up side by side.
type CompareRequest struct {
	MemberIDs []uint `json:"member_ids" binding:"required,min=2,max=6,dive,required"`
}

// PhysicalScore is one measurement with its percentile against the
// team baseline for the category.
type PhysicalScore struct {
	Category    string   `json:"category"`
	MeasureDate string   `json:"measure_date"`
	Value       *float64 `json:"value,omitempty"`
	Score       int      `json:"score"`
}

// MemberComparison bundles everything the compare view shows for one
// member. Entries come back in request order.
type MemberComparison struct {
	Member       *model.Member           `json:"member"`
	Batting      *model.BattingStat      `json:"batting,omitempty"`
	Pitching     *model.PitchingStat     `json:"pitching,omitempty"`
	Velocity     *model.PitchVelocity    `json:"velocity,omitempty"`
	ExitVelocity *model.ExitVelocity     `json:"exit_velocity,omitempty"`
	Pulldown     *model.PulldownVelocity `json:"pulldown,omitempty"`
	Physical     []PhysicalScore         `json:"physical"`
	Records      *RecordSummaryResponse  `json:"records,omitempty"`
}
