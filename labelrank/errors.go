package labelrank

import "errors"

// Sentinel errors for Options validation. The kernel is a pure computation:
// apart from a cancelled or expired context, every failure it can produce
// is an invalid option, rejected before any allocation happens.
var (
	// ErrInvalidRepeat indicates Repeat < 1.
	ErrInvalidRepeat = errors.New("labelrank: repeat must be >= 1")

	// ErrInvalidMaxIterations indicates MaxIterations < 0.
	ErrInvalidMaxIterations = errors.New("labelrank: maxIterations must be >= 0")

	// ErrInvalidInflation indicates Inflation <= 0.
	ErrInvalidInflation = errors.New("labelrank: inflation must be > 0")

	// ErrInvalidConditionalUpdate indicates ConditionalUpdate outside [0, 1].
	ErrInvalidConditionalUpdate = errors.New("labelrank: conditionalUpdate must be in [0, 1]")

	// ErrInvalidChunkSize indicates ChunkSize <= 0 under a parallel Schedule.
	ErrInvalidChunkSize = errors.New("labelrank: chunkSize must be > 0 for a parallel schedule")

	// ErrInvalidWorkers indicates Workers <= 0 under a parallel Schedule.
	ErrInvalidWorkers = errors.New("labelrank: workers must be > 0 for a parallel schedule")
)
