package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"member-service/app/domain"
	"member-service/app/port"
	custommw "member-service/app/rest/middleware"
	"member-service/app/utils/validator"
)

// profile images larger than this are rejected before upload
const maxImageSize = 5 << 20

// MemberHandler handles member profile HTTP requests
type MemberHandler struct {
	memberUsecase port.MemberUsecase
	validator     *validator.Validator
	logger        *slog.Logger
}

// NewMemberHandler creates a new member handler
func NewMemberHandler(memberUsecase port.MemberUsecase, logger *slog.Logger) *MemberHandler {
	return &MemberHandler{
		memberUsecase: memberUsecase,
		validator:     validator.New(),
		logger:        logger.With("component", "member_handler"),
	}
}

type updateProfileRequest struct {
	Nickname string `json:"nickname" form:"nickname" validate:"required,nickname"`
	Intro    string `json:"intro" form:"intro" validate:"max=300"`
	Password string `json:"password" form:"password" validate:"omitempty,password"`
}

// Mypage returns the profile page for a nickname
// @Summary Member profile page
// @Tags member
// @Produce json
// @Param nickname path string true "Nickname"
// @Success 200 {object} domain.Mypage
// @Failure 404 {object} ErrorResponse
// @Router /v1/member/mypage/{nickname} [get]
func (h *MemberHandler) Mypage(c echo.Context) error {
	nickname := c.Param("nickname")
	if nickname == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "nickname is required"})
	}

	page, err := h.memberUsecase.Mypage(c.Request().Context(), custommw.MemberID(c), nickname)
	if err != nil {
		return h.mapError(c, err)
	}

	return c.JSON(http.StatusOK, page)
}

// UpdateProfile updates the authenticated member's profile. Accepts either a
// JSON body or a multipart form with an optional "image" file part.
// @Summary Update profile
// @Tags member
// @Accept json
// @Accept mpfd
// @Produce json
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /v1/member/mypage [put]
func (h *MemberHandler) UpdateProfile(c echo.Context) error {
	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err := h.validator.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	image, err := h.readImage(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	err = h.memberUsecase.UpdateProfile(c.Request().Context(), custommw.MemberID(c), domain.UpdateProfileRequest{
		Nickname: req.Nickname,
		Intro:    req.Intro,
		Password: req.Password,
	}, image)
	if err != nil {
		return h.mapError(c, err)
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "profile updated"})
}

// Resign requests account deletion for the authenticated member
// @Summary Request resignation
// @Tags member
// @Produce json
// @Success 200 {object} MessageResponse
// @Failure 409 {object} ErrorResponse
// @Router /v1/member/resign [post]
func (h *MemberHandler) Resign(c echo.Context) error {
	if err := h.memberUsecase.Resign(c.Request().Context(), custommw.MemberID(c)); err != nil {
		return h.mapError(c, err)
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "resignation requested"})
}

// HobbyList returns the hobby groups the member behind nickname belongs to
// @Summary Member's hobby groups
// @Tags member
// @Produce json
// @Param nickname path string true "Nickname"
// @Success 200 {array} domain.HobbyMembership
// @Failure 404 {object} ErrorResponse
// @Router /v1/member/{nickname}/hobby [get]
func (h *MemberHandler) HobbyList(c echo.Context) error {
	nickname := c.Param("nickname")
	if nickname == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "nickname is required"})
	}

	memberships, err := h.memberUsecase.HobbyList(c.Request().Context(), custommw.MemberID(c), nickname)
	if err != nil {
		return h.mapError(c, err)
	}

	return c.JSON(http.StatusOK, memberships)
}

// PendingList returns the authenticated member's unresolved join requests
// @Summary Member's pending join requests
// @Tags member
// @Produce json
// @Success 200 {array} domain.PendingRequest
// @Router /v1/member/pending [get]
func (h *MemberHandler) PendingList(c echo.Context) error {
	pending, err := h.memberUsecase.PendingList(c.Request().Context(), custommw.MemberID(c))
	if err != nil {
		return h.mapError(c, err)
	}

	return c.JSON(http.StatusOK, pending)
}

// readImage extracts the optional image part of a multipart request
func (h *MemberHandler) readImage(c echo.Context) (*domain.ImageUpload, error) {
	file, err := c.FormFile("image")
	if err != nil {
		// JSON requests and forms without an image land here
		return nil, nil
	}
	if file.Size > maxImageSize {
		return nil, errors.New("image must be 5MB or smaller")
	}

	src, err := file.Open()
	if err != nil {
		return nil, errors.New("failed to read image")
	}
	defer src.Close()

	body, err := io.ReadAll(io.LimitReader(src, maxImageSize))
	if err != nil {
		return nil, errors.New("failed to read image")
	}

	return &domain.ImageUpload{
		Filename:    file.Filename,
		ContentType: file.Header.Get("Content-Type"),
		Body:        body,
	}, nil
}

// mapError translates domain errors to HTTP responses
func (h *MemberHandler) mapError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrMemberNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "member not found", Code: domain.ErrCodeMemberNotFound})
	case errors.Is(err, domain.ErrHobbyNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "hobby not found"})
	case errors.Is(err, domain.ErrDuplicateMember):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: "nickname already in use", Code: domain.ErrCodeDuplicateMember})
	case errors.Is(err, domain.ErrResignationPending):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: "resignation already requested"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		h.logger.Error("request failed", "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error", Code: domain.ErrCodeInternal})
	}
}
