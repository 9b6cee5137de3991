package apperrors

import (
	"errors"
	"fmt"
)

// Base kinds. Callers match with errors.Is; the wrapped variants below carry
// the concrete reason while still matching their kind.
var (
	ErrNotFound          = errors.New("not found")
	ErrForbidden         = errors.New("forbidden")
	ErrInvalidState      = errors.New("invalid state")
	ErrConflict          = errors.New("conflict")
	ErrInsufficientFunds = errors.New("insufficient funds")
)

var (
	ErrSurveyNotFound      = fmt.Errorf("survey %w", ErrNotFound)
	ErrUserNotFound        = fmt.Errorf("user %w", ErrNotFound)
	ErrAttemptNotFound     = fmt.Errorf("participation %w", ErrNotFound)
	ErrOwnSurvey           = fmt.Errorf("%w: authors cannot participate in their own surveys", ErrForbidden)
	ErrNotSurveyAuthor     = fmt.Errorf("%w: not the survey author", ErrForbidden)
	ErrSurveyNotActive     = fmt.Errorf("%w: survey is not active", ErrInvalidState)
	ErrSurveyCompleted     = fmt.Errorf("%w: survey already completed", ErrInvalidState)
	ErrUnknownStatus       = fmt.Errorf("%w: unknown status", ErrInvalidState)
	ErrCapacityReached     = fmt.Errorf("%w: capacity reached", ErrInvalidState)
	ErrParticipationLimit  = fmt.Errorf("%w: participation limit reached", ErrInvalidState)
	ErrUnknownCategory     = fmt.Errorf("%w: unknown or inactive category", ErrInvalidState)
	ErrAlreadyCompleted    = fmt.Errorf("%w: survey already completed by this user", ErrInvalidState)
	ErrNotStarted          = fmt.Errorf("%w: participation has not been started", ErrInvalidState)
	ErrSurveyHasResponses  = fmt.Errorf("%w: survey already has responses", ErrInvalidState)
	ErrAlreadyRewarded     = fmt.Errorf("%w: reward already paid", ErrConflict)
	ErrAuthorCannotPay     = fmt.Errorf("%w: survey author cannot pay the reward", ErrInsufficientFunds)
	ErrEstimatedCostTooBig = fmt.Errorf("%w: balance below the estimated survey cost", ErrInsufficientFunds)
)
