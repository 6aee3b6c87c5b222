package errorvalues

import "errors"

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong name or password")
	ErrInvalidToken     = errors.New("invalid token")
	ErrWrongOwner       = errors.New("entity has different owner")

	ErrChallengeNotFound  = errors.New("challenge doesn't exist")
	ErrInvalidConfig      = errors.New("invalid challenge config")
	ErrSavingNotFound     = errors.New("saving doesn't exist")
	ErrInvalidTarget      = errors.New("target amount must be positive")
	ErrInvalidCycleAmount = errors.New("cycle amount must be positive in by-amount mode")
	ErrEndBeforeStart     = errors.New("end date must be after start date in by-date mode")
	ErrInvalidStrategy    = errors.New("unknown recurrence strategy")
	ErrInvalidMode        = errors.New("unknown planning mode")
	ErrTargetBelowSaved   = errors.New("new target amount is not above already saved amount")
)
