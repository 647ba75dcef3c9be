package dto

// ── Practice menu requests ──

// CreateMenuRequest adds a drill.
type CreateMenuRequest struct {
	ScheduleID  *uint   `json:"schedule_id"`
	Category    string  `json:"category" binding:"required,oneof=batting fielding pitching running conditioning other"`
	Title       string  `json:"title"    binding:"required,min=1,max=200"`
	Description *string `json:"description"`
	Duration    *int    `json:"duration" binding:"omitempty,min=1,max=600"`
	TargetGroup *string `json:"target_group" binding:"omitempty,max=100"`
}

// UpdateMenuRequest patches a drill.
type UpdateMenuRequest struct {
	ScheduleID  *uint   `json:"schedule_id"`
	Category    *string `json:"category" binding:"omitempty,oneof=batting fielding pitching running conditioning other"`
	Title       *string `json:"title"    binding:"omitempty,min=1,max=200"`
	Description *string `json:"description"`
	Duration    *int    `json:"duration" binding:"omitempty,min=1,max=600"`
	TargetGroup *string `json:"target_group" binding:"omitempty,max=100"`
}

// MenuListRequest filters by schedule.
type MenuListRequest struct {
	ScheduleID *uint `form:"schedule_id"`
}
