package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/y-inoue-koma/club-activity-manager/internal/dto"
	"github.com/y-inoue-koma/club-activity-manager/internal/service"
	"github.com/y-inoue-koma/club-activity-manager/pkg/response"
)

// StatsHandler serves the stat boards, velocity and physical
// measurements, game results and the team trend.
type StatsHandler struct {
	svc    *service.StatsService
	logger *zap.Logger
}

// ── Batting / pitching snapshots ──

func (h *StatsHandler) BattingList(c *gin.Context) {
	rows, err := h.svc.BattingList(c.Request.Context())
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	response.OK(c, rows)
}

func (h *StatsHandler) BattingByMember(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	stats, err := h.svc.BattingByMember(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	response.OK(c, stats)
}

func (h *StatsHandler) PitchingList(c *gin.Context) {
	rows, err := h.svc.PitchingList(c.Request.Context())
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	response.OK(c, rows)
}

func (h *StatsHandler) PitchingByMember(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	stats, err := h.svc.PitchingByMember(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	response.OK(c, stats)
}

// ── Velocity boards ──

func (h *StatsHandler) PitchVelocityList(c *gin.Context) {
	rows, err := h.svc.PitchVelocityList(c.Request.Context())
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	response.OK(c, rows)
}

func (h *StatsHandler) ExitVelocityList(c *gin.Context) {
	rows, err := h.svc.ExitVelocityList(c.Request.Context())
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	response.OK(c, rows)
}

func (h *StatsHandler) PulldownVelocityList(c *gin.Context) {
	rows, err := h.svc.PulldownVelocityList(c.Request.Context())
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	response.OK(c, rows)
}

func (h *StatsHandler) PitchVelocityByMember(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	rows, err := h.svc.PitchVelocityByMember(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	response.OK(c, rows)
}

func (h *StatsHandler) ExitVelocityByMember(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	rows, err := h.svc.ExitVelocityByMember(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	response.OK(c, rows)
}

func (h *StatsHandler) PulldownVelocityByMember(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	rows, err := h.svc.PulldownVelocityByMember(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	response.OK(c, rows)
}

func (h *StatsHandler) CreatePitchVelocity(c *gin.Context) {
	var req dto.CreatePitchVelocityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, response.CodeInvalidParams, err.Error())
		return
	}
	v, err := h.svc.CreatePitchVelocity(c.Request.Context(), &req)
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	response.Created(c, v)
}

func (h *StatsHandler) CreateExitVelocity(c *gin.Context) {
	var req dto.CreateMeasuredVelocityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, response.CodeInvalidParams, err.Error())
		return
	}
	v, err := h.svc.CreateExitVelocity(c.Request.Context(), &req)
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	response.Created(c, v)
}

func (h *StatsHandler) CreatePulldownVelocity(c *gin.Context) {
	var req dto.CreateMeasuredVelocityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, response.CodeInvalidParams, err.Error())
		return
	}
	v, err := h.svc.CreatePulldownVelocity(c.Request.Context(), &req)
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	response.Created(c, v)
}

// ── Physical measurements ──

func (h *StatsHandler) PhysicalList(c *gin.Context) {
	var req dto.PhysicalListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, response.CodeInvalidParams, err.Error())
		return
	}
	rows, err := h.svc.PhysicalList(c.Request.Context(), req.Category)
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	response.OK(c, rows)
}

func (h *StatsHandler) PhysicalByMember(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.PhysicalByMemberRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, response.CodeInvalidParams, err.Error())
		return
	}
	rows, err := h.svc.PhysicalByMember(c.Request.Context(), id, req.Category)
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	response.OK(c, rows)
}

func (h *StatsHandler) CreatePhysical(c *gin.Context) {
	var req dto.CreatePhysicalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, response.CodeInvalidParams, err.Error())
		return
	}
	m, err := h.svc.CreatePhysical(c.Request.Context(), &req)
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	response.Created(c, m)
}

// ── Game results and team stats ──

func (h *StatsHandler) GameList(c *gin.Context) {
	games, err := h.svc.GameList(c.Request.Context())
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	response.OK(c, games)
}

func (h *StatsHandler) CreateGame(c *gin.Context) {
	var req dto.CreateGameResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, response.CodeInvalidParams, err.Error())
		return
	}
	game, err := h.svc.CreateGame(c.Request.Context(), &req)
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	response.Created(c, game)
}

func (h *StatsHandler) UpdateGame(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.UpdateGameResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, response.CodeInvalidParams, err.Error())
		return
	}
	game, err := h.svc.UpdateGame(c.Request.Context(), id, &req)
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	response.OK(c, game)
}

func (h *StatsHandler) DeleteGame(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.DeleteGame(c.Request.Context(), id); err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	response.OK(c, nil)
}

func (h *StatsHandler) TeamStat(c *gin.Context) {
	stat, err := h.svc.TeamStat(c.Request.Context())
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	response.OK(c, stat)
}

func (h *StatsHandler) MonthlyTrend(c *gin.Context) {
	entries, err := h.svc.MonthlyTrend(c.Request.Context())
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	response.OK(c, entries)
}
