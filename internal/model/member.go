package model

// Member lifecycle states. Retired members keep their historical stat rows
// but drop out of default listings.
const (
	MemberStatusActive  = "active"
	MemberStatusRetired = "retired"
)

// Member roles within the club.
const (
	MemberRolePlayer  = "player"
	MemberRoleManager = "manager"
	MemberRoleCoach   = "coach"
)

// Member is a club roster entry, optionally linked to a login account.
type Member struct {
	ID            uint    `gorm:"primaryKey"                 json:"id"`
	UserID        *uint   `json:"user_id,omitempty"`
	Name          string  `gorm:"type:varchar(100);not null" json:"name"`
	Kana          *string `gorm:"type:varchar(100)"          json:"kana,omitempty"`
	Grade         int     `gorm:"type:smallint;not null"     json:"grade"` // 1 | 2 | 3
	Position      *string `gorm:"type:varchar(50)"           json:"position,omitempty"`
	UniformNumber *int    `json:"uniform_number,omitempty"`
	ClassNumber   *string `gorm:"type:varchar(10)"           json:"class_number,omitempty"`
	StudentNumber *int    `json:"student_number,omitempty"`
	Role          string  `gorm:"type:varchar(20);not null;default:'player'" json:"role"`
	Status        string  `gorm:"type:varchar(20);not null;default:'active'" json:"status"` // active | retired
	BaseModel

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Member) TableName() string { return "members" }
