package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/y-inoue-koma/club-activity-manager/internal/dto"
	"github.com/y-inoue-koma/club-activity-manager/internal/service"
	"github.com/y-inoue-koma/club-activity-manager/pkg/response"
)

// CompareHandler serves /compare.
type CompareHandler struct {
	svc    *service.CompareService
	logger *zap.Logger
}

func (h *CompareHandler) Compare(c *gin.Context) {
	var req dto.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, response.CodeInvalidParams, err.Error())
		return
	}

	results, err := h.svc.Compare(c.Request.Context(), req.MemberIDs)
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	response.OK(c, results)
}
