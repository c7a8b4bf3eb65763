package model

import (
	"github.com/Laisky/errors/v2"
)

var (
	// ErrNotFound referenced document does not exist
	ErrNotFound = errors.New("not found")
	// ErrInvalid payload or identifier failed validation
	ErrInvalid = errors.New("invalid")
)
