package graph6

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/radspec/simplegraph"
)

// Encode renders edges (a canonical simple-graph edge set on n
// vertices) as a graph6 ASCII string (C5).
func Encode(n int, edges simplegraph.EdgeSet) (string, error) {
	if n < 0 || n > maxN {
		return "", fmt.Errorf("%s: n=%d: %w", MethodEncode, n, ErrVertexCountOutOfRange)
	}

	has := make(map[simplegraph.Edge]bool, len(edges))
	for _, e := range edges {
		has[e] = true
	}

	var bits strings.Builder
	for j := 1; j < n; j++ {
		for i := 0; i < j; i++ {
			if has[simplegraph.Edge{U: i, V: j}] {
				bits.WriteByte('1')
			} else {
				bits.WriteByte('0')
			}
		}
	}

	var sb strings.Builder
	sb.WriteString(sizePrefix(n))
	sb.WriteString(bitsToChars(bits.String()))
	return sb.String(), nil
}

// sizePrefix renders the graph6 size field for n.
func sizePrefix(n int) string {
	switch {
	case n <= 62:
		return string(rune(n + 63))
	case n <= 258047:
		var sb strings.Builder
		sb.WriteByte('~')
		sb.WriteString(sixBitGroups(n, 3))
		return sb.String()
	default:
		var sb strings.Builder
		sb.WriteString("~~")
		sb.WriteString(sixBitGroups(n, 6))
		return sb.String()
	}
}

// sixBitGroups splits n into count big-endian 6-bit groups, each
// rendered as chr(63+value).
func sixBitGroups(n, count int) string {
	var sb strings.Builder
	for shift := (count - 1) * 6; shift >= 0; shift -= 6 {
		v := (n >> uint(shift)) & 0x3F
		sb.WriteByte(byte(63 + v))
	}
	return sb.String()
}

// bitsToChars packs a string of '0'/'1' characters into graph6
// 6-bit-per-char groups, zero-padded on the right to a multiple of 6.
func bitsToChars(bits string) string {
	padded := bits
	if rem := len(padded) % 6; rem != 0 {
		padded += strings.Repeat("0", 6-rem)
	}
	var sb strings.Builder
	for i := 0; i < len(padded); i += 6 {
		group := padded[i : i+6]
		v := 0
		for _, c := range group {
			v <<= 1
			if c == '1' {
				v |= 1
			}
		}
		sb.WriteByte(byte(63 + v))
	}
	return sb.String()
}
