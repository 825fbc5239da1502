package runner

import "errors"

// Sentinel errors for runner construction
var (
	// ErrNoOutput means Config.Out was nil
	ErrNoOutput = errors.New("runner output writer not configured")
)
