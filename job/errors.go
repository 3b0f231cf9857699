package job

import "errors"

var (
	// ErrMalformedInput indicates the instance stream did not contain
	// n well-formed (processing time, due date) pairs.
	ErrMalformedInput = errors.New("job: malformed instance input")

	// ErrInvalidJob indicates a job with a non-positive processing time.
	ErrInvalidJob = errors.New("job: processing time must be positive")

	// ErrInvalidPermutation indicates a sequence that is not a permutation of [0,n).
	ErrInvalidPermutation = errors.New("job: invalid permutation")

	// ErrBadSize indicates a negative instance size was requested.
	ErrBadSize = errors.New("job: instance size must be non-negative")

	// ErrBadFileName indicates a benchmark file name that does not follow
	// the random_RDD=<x>_TF=<y>_#<id>.dat scheme.
	ErrBadFileName = errors.New("job: unrecognized instance file name")
)
