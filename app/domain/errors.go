package domain

import (
	"errors"
	"fmt"
)

// Member and authentication errors
var (
	// Account errors
	ErrMemberNotFound     = errors.New("member not found")
	ErrDuplicateMember    = errors.New("member already exists")
	ErrMemberBanned       = errors.New("member is banned")
	ErrMemberResigned     = errors.New("member has resigned")
	ErrResignationPending = errors.New("resignation already requested")

	// Credential errors
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Token errors
	ErrInvalidAccessToken  = errors.New("invalid access token")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")

	// Hobby errors
	ErrHobbyNotFound = errors.New("hobby not found")

	// Validation errors
	ErrInvalidInput = errors.New("invalid input")

	// Authorization errors
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
)

// Refresh token failures carry a sub-reason distinguishing a malformed or
// expired token from a missing session and from a superseded (rotated) token.
// All three unwrap to ErrInvalidRefreshToken.
var (
	ErrRefreshTokenNoSession = fmt.Errorf("%w: no active session", ErrInvalidRefreshToken)
	ErrRefreshTokenMismatch  = fmt.Errorf("%w: token mismatch", ErrInvalidRefreshToken)
)

// Machine-readable codes carried in error responses alongside the message
const (
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"
	ErrCodeInvalidToken       = "INVALID_TOKEN"
	ErrCodeMemberNotFound     = "MEMBER_NOT_FOUND"
	ErrCodeDuplicateMember    = "DUPLICATE_MEMBER"
	ErrCodeUnauthorized       = "UNAUTHORIZED"
	ErrCodeForbidden          = "FORBIDDEN"
	ErrCodeInternal           = "INTERNAL_ERROR"
)
