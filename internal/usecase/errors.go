package usecase

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrPredictionLocked      = errors.New("prediction is locked")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)
