package services

import (
	"errors"

	"github.com/propease/propease-api/internal/apperrors"
	"github.com/propease/propease-api/internal/statemachine"
)

// Common service errors
var (
	ErrNotFound     = apperrors.ErrNotFound
	ErrForbidden    = errors.New("you do not have access to this project")
	ErrInvalidState = statemachine.ErrInvalidTransition
)

// ValidationError and ConflictError are the user-facing error kinds
type (
	ValidationError = apperrors.ValidationError
	ConflictError   = apperrors.ConflictError
)
