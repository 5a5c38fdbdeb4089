package model

import "errors"

// Common errors used across the application
var (
	// Player errors
	ErrPlayerNotFound = errors.New("player not found")
	ErrNoProfilePic   = errors.New("player has no profile picture")

	// Account errors
	ErrUserNotFound   = errors.New("user not found")
	ErrUsernameExists = errors.New("username already exists")

	// Datastore integrity errors
	ErrRowMultiplicity = errors.New("write affected more than one row")
)
