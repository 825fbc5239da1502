package runner

// Mode selects how the two batches are scheduled.
type Mode int

const (
	// ModeSequential samples the integer batch to completion, then the float batch.
	ModeSequential Mode = iota
	// ModeConcurrent samples both batches in parallel goroutines and joins them.
	ModeConcurrent
)

const asyncArg = "async"

func (m Mode) String() string {
	switch m {
	case ModeConcurrent:
		return "concurrent"
	default:
		return "sequential"
	}
}

// ParseMode picks the mode from the arguments following the program name.
// Only a first argument of exactly "async" selects concurrent mode; anything
// else, including no arguments, is sequential.
func ParseMode(args []string) Mode {
	if len(args) > 0 && args[0] == asyncArg {
		return ModeConcurrent
	}
	return ModeSequential
}
