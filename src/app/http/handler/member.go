package handler

import (
	"github.com/gin-gonic/gin"

	"lessonbox/src/app/http/dto"
	"lessonbox/src/app/http/response"
	"lessonbox/src/app/middleware"
	"lessonbox/src/core/usecase"
)

// MemberParam is the path parameter naming a member.
const MemberParam = "member_id"

// MemberHandler handles registration and age endpoints.
type MemberHandler struct {
	memberService *usecase.MemberService
}

func NewMemberHandler(memberService *usecase.MemberService) *MemberHandler {
	return &MemberHandler{memberService: memberService}
}

// Register records a new member.
// POST /v1/members
func (h *MemberHandler) Register(c *gin.Context) {
	var req dto.RegisterMemberRequest
	if !bindJSON(c, &req) {
		return
	}
	m, err := h.memberService.Register(c.Request.Context(), req.Username)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.Created(c, dto.MemberFromDomain(m))
}

// Get returns one member.
// GET /v1/members/:member_id
func (h *MemberHandler) Get(c *gin.Context) {
	m, err := h.memberService.Get(c.Request.Context(), middleware.GetUUID(c, MemberParam))
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, dto.MemberFromDomain(m))
}

// SetAge stores the member's age. The body's age may be any JSON value.
// PUT /v1/members/:member_id/age
func (h *MemberHandler) SetAge(c *gin.Context) {
	var req dto.SetAgeRequest
	if !bindJSON(c, &req) {
		return
	}
	value, err := req.AgeValue()
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	m, err := h.memberService.SetAge(c.Request.Context(), middleware.GetUUID(c, MemberParam), value)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, dto.MemberFromDomain(m))
}
