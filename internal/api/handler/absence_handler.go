package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/y-inoue-koma/club-activity-manager/internal/dto"
	"github.com/y-inoue-koma/club-activity-manager/internal/service"
	"github.com/y-inoue-koma/club-activity-manager/pkg/response"
)

// AbsenceHandler serves /absences.
type AbsenceHandler struct {
	svc    *service.AbsenceService
	logger *zap.Logger
}

func (h *AbsenceHandler) List(c *gin.Context) {
	var req dto.AbsenceListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, response.CodeInvalidParams, err.Error())
		return
	}

	absences, err := h.svc.List(c.Request.Context(), &req)
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	response.OK(c, absences)
}

func (h *AbsenceHandler) Create(c *gin.Context) {
	var req dto.CreateAbsenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, response.CodeInvalidParams, err.Error())
		return
	}

	absence, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	response.Created(c, absence)
}

func (h *AbsenceHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.UpdateAbsenceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, response.CodeInvalidParams, err.Error())
		return
	}

	absence, err := h.svc.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	response.OK(c, absence)
}
