// Package handler holds the thin HTTP layer: bind, call the service,
// map errors into the response envelope.
package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/y-inoue-koma/club-activity-manager/internal/api/middleware"
	"github.com/y-inoue-koma/club-activity-manager/internal/service"
	"github.com/y-inoue-koma/club-activity-manager/pkg/response"
)

// Handler aggregates every endpoint group.
type Handler struct {
	Auth     *AuthHandler
	Member   *MemberHandler
	Schedule *ScheduleHandler
	Menu     *MenuHandler
	Record   *RecordHandler
	Absence  *AbsenceHandler
	Stats    *StatsHandler
	Compare  *CompareHandler
	Reminder *ReminderHandler
	Export   *ExportHandler
}

// NewHandler wires handlers onto the service layer.
func NewHandler(svc *service.Service, logger *zap.Logger) *Handler {
	return &Handler{
		Auth:     &AuthHandler{svc: svc.Auth, logger: logger},
		Member:   &MemberHandler{svc: svc.Member, compare: svc.Compare, logger: logger},
		Schedule: &ScheduleHandler{svc: svc.Schedule, logger: logger},
		Menu:     &MenuHandler{svc: svc.Menu, logger: logger},
		Record:   &RecordHandler{svc: svc.Record, analysis: svc.Analysis, logger: logger},
		Absence:  &AbsenceHandler{svc: svc.Absence, logger: logger},
		Stats:    &StatsHandler{svc: svc.Stats, logger: logger},
		Compare:  &CompareHandler{svc: svc.Compare, logger: logger},
		Reminder: &ReminderHandler{svc: svc.Reminder, logger: logger},
		Export:   &ExportHandler{svc: svc.Export, logger: logger},
	}
}

// pathID parses the :id path segment. Writes the 400 itself on failure.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		response.BadRequest(c, response.CodeInvalidParams, "invalid id")
		return 0, false
	}
	return uint(id), true
}

// currentUserID reads the authenticated user id set by JWTAuth.
func currentUserID(c *gin.Context) uint {
	v, _ := c.Get(middleware.CtxUserID)
	id, _ := v.(uint)
	return id
}

// writeServiceError maps the service sentinel errors onto the envelope.
func writeServiceError(c *gin.Context, logger *zap.Logger, err error) {
	switch {
	case errors.Is(err, service.ErrMemberNotFound),
		errors.Is(err, service.ErrProfileNotFound),
		errors.Is(err, service.ErrScheduleNotFound),
		errors.Is(err, service.ErrMenuNotFound),
		errors.Is(err, service.ErrRecordNotFound),
		errors.Is(err, service.ErrAbsenceNotFound),
		errors.Is(err, service.ErrGameNotFound),
		errors.Is(err, service.ErrTeamStatNotFound):
		response.NotFound(c, response.CodeNotFound, err.Error())
	case errors.Is(err, service.ErrEmailTaken):
		response.Error(c, 409, response.CodeEmailTaken, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		response.Unauthorized(c, response.CodeBadCredentials, err.Error())
	case errors.Is(err, service.ErrInvalidToken):
		response.Unauthorized(c, response.CodeTokenInvalid, err.Error())
	case errors.Is(err, service.ErrMemberRetired),
		errors.Is(err, service.ErrAbsenceAlreadyResolved),
		errors.Is(err, service.ErrInvalidTransition):
		response.Error(c, 409, response.CodeConflict, err.Error())
	case errors.Is(err, service.ErrCompareCardinality):
		response.BadRequest(c, response.CodeInvalidParams, err.Error())
	case errors.Is(err, service.ErrAnalysisUnavailable):
		response.Error(c, 503, response.CodeInternal, err.Error())
	default:
		logger.Error("unhandled service error", zap.Error(err))
		response.InternalError(c)
	}
}
