package utils

import "errors"

var (
	ErrNoSightsMatch      = errors.New("no sights match the current constraints")
	ErrEmptyRoute         = errors.New("could not build a route from the matching sights")
	ErrSightNotFound      = errors.New("sight not found")
	ErrTourNotFound       = errors.New("tour not found")
	ErrNoCurrentTour      = errors.New("no current tour")
	ErrInvalidInput       = errors.New("invalid input")
	ErrDatabaseError      = errors.New("database error")
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
