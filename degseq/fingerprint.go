package degseq

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"

	"github.com/katalvlaran/radspec/simplegraph"
)

// Fingerprint returns a stable hash of d in its given (not sorted)
// order (C11): d is serialized as a compact JSON integer array and
// hashed with SHA-1, hex-encoded. Identical sequences in identical
// order yield identical fingerprints across processes and platforms,
// which is the only stability guarantee relied on elsewhere (grouping
// Runs by problem instance).
func Fingerprint(d simplegraph.DegreeSequence) string {
	// encoding/json always emits a compact array for []int with no
	// struct tags involved, matching the source's separators=(",", ":").
	b, _ := json.Marshal([]int(d))
	sum := sha1.Sum(b)
	return hex.EncodeToString(sum[:])
}
