package degseq

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/radspec/simplegraph"
)

// GenerateFixedSum samples a length-n degree sequence with sum
// exactly 2*k, each entry in [0, n-1] (C2). It does NOT guarantee
// graphicality — callers filter the result with IsGraphical.
//
// Single attempt: draw each entry uniformly from [0,n); if the draw
// sums to zero, bump one random entry to 1; scale every entry by
// target/sum, clipped to n-1; repair by incrementing random entries
// below n-1 while the sum is short, or decrementing random nonzero
// entries while the sum is over, until the sum matches exactly or the
// repair loop gives up. Retries up to maxAttempts before failing with
// ErrLimitExceeded.
func GenerateFixedSum(n, k int, seed int64, maxAttempts int) (simplegraph.DegreeSequence, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%s: %w", MethodGenerateFixedSum, ErrInvalidSequence)
	}
	target := 2 * k
	rng := rand.New(rand.NewSource(seed))

	for attempt := 0; attempt < maxAttempts; attempt++ {
		d := make([]int, n)
		sum := 0
		for i := range d {
			d[i] = rng.Intn(n)
			sum += d[i]
		}
		if sum == 0 {
			idx := rng.Intn(n)
			d[idx] = 1
			sum = 1
		}

		if target > 0 {
			scaled := make([]int, n)
			scaledSum := 0
			for i, v := range d {
				sv := v * target / sum
				if sv > n-1 {
					sv = n - 1
				}
				scaled[i] = sv
				scaledSum += sv
			}
			d = scaled
			sum = scaledSum
		} else {
			for i := range d {
				d[i] = 0
			}
			sum = 0
		}

		// Repair: nudge entries until sum == target, bounded to avoid
		// spinning forever on a pathological draw.
		repairBudget := 4 * n
		for sum != target && repairBudget > 0 {
			repairBudget--
			if sum < target {
				idx := rng.Intn(n)
				if d[idx] < n-1 {
					d[idx]++
					sum++
				}
			} else {
				idx := rng.Intn(n)
				if d[idx] > 0 {
					d[idx]--
					sum--
				}
			}
		}

		if sum != target {
			continue
		}
		valid := true
		for _, v := range d {
			if v < 0 || v > n-1 {
				valid = false
				break
			}
		}
		if !valid {
			continue
		}
		return simplegraph.DegreeSequence(d), nil
	}

	return nil, fmt.Errorf("%s: %d attempts: %w", MethodGenerateFixedSum, maxAttempts, ErrLimitExceeded)
}
