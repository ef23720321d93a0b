package services

import "errors"

var (
	ErrValidationFailed  = errors.New("validation failed")
	ErrPlanNameRequired  = errors.New("plan name is required")
	ErrInvalidPagination = errors.New("limit and offset must not be negative")

	ErrPlanNotFound     = errors.New("plan not found")
	ErrPlanNameConflict = errors.New("plan name already exists")

	ErrInvalidCredentials   = errors.New("invalid username or password")
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrForbiddenOperation   = errors.New("operation not allowed for the current user")
)
