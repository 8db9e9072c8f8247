package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"member-service/app/domain"
	"member-service/app/port"
	"member-service/app/utils/validator"
)

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	authUsecase  port.AuthUsecase
	oauthUsecase port.OAuthUsecase
	validator    *validator.Validator
	logger       *slog.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUsecase port.AuthUsecase, oauthUsecase port.OAuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authUsecase:  authUsecase,
		oauthUsecase: oauthUsecase,
		validator:    validator.New(),
		logger:       logger.With("component", "auth_handler"),
	}
}

// ErrorResponse is the JSON body returned on failures
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// MessageResponse is the JSON body returned on plain-success endpoints
type MessageResponse struct {
	Message string `json:"message"`
}

type signUpRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required,min=2,max=30"`
	Nickname string `json:"nickname" validate:"required,nickname"`
	Password string `json:"password" validate:"required,password"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type reissueRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type resetPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"required"`
}

// SignUp registers a new member
// @Summary Register a member
// @Tags auth
// @Accept json
// @Produce json
// @Success 201 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /v1/member/signup [post]
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req signUpRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err := h.validator.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	err := h.authUsecase.SignUp(c.Request().Context(), domain.SignUpRequest{
		Email:    req.Email,
		Name:     req.Name,
		Nickname: req.Nickname,
		Password: req.Password,
	})
	if err != nil {
		return h.mapError(c, err)
	}

	return c.JSON(http.StatusCreated, MessageResponse{Message: "member registered"})
}

// Login authenticates with email and password and returns a token pair
// @Summary Password login
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} domain.TokenPair
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /v1/member/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err := h.validator.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	pair, err := h.authUsecase.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return h.mapError(c, err)
	}

	return c.JSON(http.StatusOK, pair)
}

// Reissue exchanges a refresh token for a fresh pair
// @Summary Reissue tokens
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} domain.TokenPair
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /v1/member/reissue [post]
func (h *AuthHandler) Reissue(c echo.Context) error {
	var req reissueRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if req.RefreshToken == "" {
		req.RefreshToken = c.Request().Header.Get("Refresh-Token")
	}
	if req.RefreshToken == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "refresh token is required"})
	}

	pair, err := h.authUsecase.Reissue(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return h.mapError(c, err)
	}

	return c.JSON(http.StatusOK, pair)
}

// Logout revokes the presented access token
// @Summary Logout
// @Tags auth
// @Produce json
// @Success 200 {object} MessageResponse
// @Failure 401 {object} ErrorResponse
// @Router /v1/member/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	token := extractBearerToken(c)
	if token == "" {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
	}

	if err := h.authUsecase.Logout(c.Request().Context(), token); err != nil {
		return h.mapError(c, err)
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "logged out"})
}

// ResetPassword mails a temporary password to the member
// @Summary Reset password
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /v1/member/password [post]
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req resetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err := h.validator.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	if err := h.authUsecase.ResetPassword(c.Request().Context(), req.Email, req.Name); err != nil {
		return h.mapError(c, err)
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "temporary password sent"})
}

// KakaoAuthorize redirects the browser to the Kakao consent page
// @Summary Kakao login entry
// @Tags auth
// @Success 302 "Redirect to provider"
// @Router /v1/member/login/kakao [get]
func (h *AuthHandler) KakaoAuthorize(c echo.Context) error {
	return c.Redirect(http.StatusFound, h.oauthUsecase.AuthorizeURL())
}

// KakaoCallback completes the Kakao login with the authorization code
// @Summary Kakao login callback
// @Tags auth
// @Produce json
// @Param code query string true "Authorization code"
// @Success 200 {object} domain.TokenPair
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /v1/member/login/kakao/callback [get]
func (h *AuthHandler) KakaoCallback(c echo.Context) error {
	code := c.QueryParam("code")
	if code == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "authorization code is required"})
	}

	pair, err := h.oauthUsecase.Login(c.Request().Context(), code)
	if err != nil {
		return h.mapError(c, err)
	}

	return c.JSON(http.StatusOK, pair)
}

// mapError translates domain errors to HTTP responses
func (h *AuthHandler) mapError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid email or password", Code: domain.ErrCodeInvalidCredentials})
	case errors.Is(err, domain.ErrInvalidAccessToken), errors.Is(err, domain.ErrInvalidRefreshToken):
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid token", Code: domain.ErrCodeInvalidToken})
	case errors.Is(err, domain.ErrMemberBanned):
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: "account is suspended", Code: domain.ErrCodeForbidden})
	case errors.Is(err, domain.ErrMemberResigned):
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: "account has been closed", Code: domain.ErrCodeForbidden})
	case errors.Is(err, domain.ErrDuplicateMember):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: "email or nickname already in use", Code: domain.ErrCodeDuplicateMember})
	case errors.Is(err, domain.ErrMemberNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "member not found", Code: domain.ErrCodeMemberNotFound})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		h.logger.Error("request failed", "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error", Code: domain.ErrCodeInternal})
	}
}

// extractBearerToken pulls the raw token out of the Authorization header
func extractBearerToken(c echo.Context) string {
	auth := c.Request().Header.Get(echo.HeaderAuthorization)
	if auth == "" {
		return ""
	}
	const prefix = "Bearer "
	if len(auth) > len(prefix) && auth[:len(prefix)] == prefix {
		return auth[len(prefix):]
	}
	return auth
}
