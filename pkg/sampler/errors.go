package sampler

import "errors"

// Sentinel errors for invalid sampling requests
var (
	ErrInvalidRange = errors.New("invalid range: min greater than max")
	ErrInvalidCount = errors.New("invalid sample count")
	ErrNilRand      = errors.New("random generator is nil")
)
