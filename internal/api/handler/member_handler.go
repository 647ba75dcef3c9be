package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/y-inoue-koma/club-activity-manager/internal/dto"
	"github.com/y-inoue-koma/club-activity-manager/internal/service"
	"github.com/y-inoue-koma/club-activity-manager/pkg/response"
)

// MemberHandler serves /members.
type MemberHandler struct {
	svc     *service.MemberService
	compare *service.CompareService
	logger  *zap.Logger
}

func (h *MemberHandler) List(c *gin.Context) {
	var req dto.MemberListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, response.CodeInvalidParams, err.Error())
		return
	}

	members, err := h.svc.List(c.Request.Context(), req.All)
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	response.OK(c, members)
}

func (h *MemberHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	member, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	response.OK(c, member)
}

// FullDetail returns the member plus every stat section in one payload.
func (h *MemberHandler) FullDetail(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	detail, err := h.compare.MemberDetail(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	response.OK(c, detail)
}

// MyProfile resolves the roster entry for the signed-in account.
func (h *MemberHandler) MyProfile(c *gin.Context) {
	member, err := h.svc.MyProfile(c.Request.Context(), currentUserID(c))
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	response.OK(c, member)
}

func (h *MemberHandler) Create(c *gin.Context) {
	var req dto.CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, response.CodeInvalidParams, err.Error())
		return
	}

	member, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	response.Created(c, member)
}

func (h *MemberHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, response.CodeInvalidParams, err.Error())
		return
	}

	member, err := h.svc.Update(c.Request.Context(), id, &req)
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	response.OK(c, member)
}

// Delete retires a member; the row and its stat history stay.
func (h *MemberHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.svc.Retire(c.Request.Context(), id); err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	response.OK(c, nil)
}
