package domain

import "errors"

var (
	ErrUnknownToken    = errors.New("unknown token")
	ErrInvalidSettings = errors.New("invalid settings")
	ErrUnknownMode     = errors.New("unknown calculator mode")
)
