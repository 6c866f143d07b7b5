package graph6

import "errors"

// ErrVertexCountOutOfRange is returned when n is negative or at/above
// 2^36, the limit the graph6 size prefix can express.
var ErrVertexCountOutOfRange = errors.New("graph6: vertex count out of range")

// ErrMalformed is returned by Decode when the input is not a
// well-formed graph6 string.
var ErrMalformed = errors.New("graph6: malformed input")

const (
	MethodEncode = "Encode"
	MethodDecode = "Decode"
)

const maxN = 1<<36 - 1
