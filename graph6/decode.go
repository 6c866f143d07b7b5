package graph6

import (
	"fmt"

	"github.com/katalvlaran/radspec/simplegraph"
)

// Decode parses a graph6 ASCII string back into (n, edges), inverse
// to Encode under this package's column-major convention.
func Decode(s string) (int, simplegraph.EdgeSet, error) {
	if len(s) == 0 {
		return 0, nil, fmt.Errorf("%s: empty input: %w", MethodDecode, ErrMalformed)
	}

	n, rest, err := parseSizePrefix(s)
	if err != nil {
		return 0, nil, err
	}

	bits := charsToBits(rest)
	needed := n * (n - 1) / 2
	if len(bits) < needed {
		return 0, nil, fmt.Errorf("%s: insufficient payload bits for n=%d: %w", MethodDecode, n, ErrMalformed)
	}

	edges := make(simplegraph.EdgeSet, 0, needed)
	pos := 0
	for j := 1; j < n; j++ {
		for i := 0; i < j; i++ {
			if bits[pos] == 1 {
				edges = append(edges, simplegraph.Edge{U: i, V: j})
			}
			pos++
		}
	}
	return n, edges, nil
}

func parseSizePrefix(s string) (int, string, error) {
	if s[0] == '~' {
		if len(s) >= 2 && s[1] == '~' {
			if len(s) < 8 {
				return 0, "", fmt.Errorf("%s: truncated 6-byte size prefix: %w", MethodDecode, ErrMalformed)
			}
			n := sixGroupsToInt(s[2:8])
			return n, s[8:], nil
		}
		if len(s) < 4 {
			return 0, "", fmt.Errorf("%s: truncated 3-byte size prefix: %w", MethodDecode, ErrMalformed)
		}
		n := sixGroupsToInt(s[1:4])
		return n, s[4:], nil
	}
	n := int(s[0]) - 63
	if n < 0 {
		return 0, "", fmt.Errorf("%s: negative size byte: %w", MethodDecode, ErrMalformed)
	}
	return n, s[1:], nil
}

func sixGroupsToInt(chars string) int {
	n := 0
	for _, c := range chars {
		n = (n << 6) | (int(c) - 63)
	}
	return n
}

// charsToBits unpacks graph6 6-bit-per-char groups into a bit slice.
func charsToBits(chars string) []byte {
	bits := make([]byte, 0, len(chars)*6)
	for _, c := range chars {
		v := int(c) - 63
		for shift := 5; shift >= 0; shift-- {
			bits = append(bits, byte((v>>uint(shift))&1))
		}
	}
	return bits
}
