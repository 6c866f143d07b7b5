package degseq

import "errors"

// ErrInvalidSequence is returned when a degree sequence has a
// negative entry or an entry exceeding n-1, and by GenerateFixedSum
// when asked for a sequence of length n <= 0.
var ErrInvalidSequence = errors.New("degseq: invalid degree sequence")

// ErrLimitExceeded is returned when GenerateFixedSum exhausts its
// attempt budget without finding a valid sequence.
var ErrLimitExceeded = errors.New("degseq: attempt limit exceeded")

// Method name constants, used to prefix wrapped errors with their
// call-site for context, matching the corpus's builder package
// convention.
const (
	MethodIsGraphical    = "IsGraphical"
	MethodGenerateFixedSum = "GenerateFixedSum"
	MethodFingerprint    = "Fingerprint"
)
