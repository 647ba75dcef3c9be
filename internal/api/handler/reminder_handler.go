package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/y-inoue-koma/club-activity-manager/internal/service"
	"github.com/y-inoue-koma/club-activity-manager/pkg/response"
)

// ReminderHandler serves /reminders.
type ReminderHandler struct {
	svc    *service.ReminderService
	logger *zap.Logger
}

// CheckTomorrow runs the day-before digest once. Safe to call again;
// it simply resends.
func (h *ReminderHandler) CheckTomorrow(c *gin.Context) {
	result, err := h.svc.Run(c.Request.Context())
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	response.OK(c, result)
}
