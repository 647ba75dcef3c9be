package dto

// ── Member requests ──

// CreateMemberRequest adds a roster entry.
type CreateMemberRequest struct {
	Name          string  `json:"name"   binding:"required,min=1,max=100"`
	Kana          *string `json:"kana"   binding:"omitempty,max=100"`
	Grade         int     `json:"grade"  binding:"required,oneof=1 2 3"`
	Position      *string `json:"position" binding:"omitempty,max=50"`
	UniformNumber *int    `json:"uniform_number" binding:"omitempty,min=0,max=999"`
	ClassNumber   *string `json:"class_number"   binding:"omitempty,max=10"`
	StudentNumber *int    `json:"student_number"`
	Role          *string `json:"role"   binding:"omitempty,oneof=player manager coach"`
	UserID        *uint   `json:"user_id"`
}

// UpdateMemberRequest patches a roster entry; nil fields are untouched.
type UpdateMemberRequest struct {
	Name          *string `json:"name"   binding:"omitempty,min=1,max=100"`
	Kana          *string `json:"kana"   binding:"omitempty,max=100"`
	Grade         *int    `json:"grade"  binding:"omitempty,oneof=1 2 3"`
	Position      *string `json:"position" binding:"omitempty,max=50"`
	UniformNumber *int    `json:"uniform_number" binding:"omitempty,min=0,max=999"`
	ClassNumber   *string `json:"class_number"   binding:"omitempty,max=10"`
	StudentNumber *int    `json:"student_number"`
	Role          *string `json:"role"   binding:"omitempty,oneof=player manager coach"`
	Status        *string `json:"status" binding:"omitempty,oneof=active retired"`
	UserID        *uint   `json:"user_id"`
}

// MemberListRequest filters the roster listing.
type MemberListRequest struct {
	All bool `form:"all"` // include retired members
}
