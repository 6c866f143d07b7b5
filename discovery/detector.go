package discovery

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/katalvlaran/radspec/store"
)

// Params configures anomaly thresholds and the improvement epsilon
// (§4.14), with defaults matching the autosearch parameter defaults
// (§6).
type Params struct {
	Epsilon  float64
	TriRatio float64
	APLRatio float64
	ClRatio  float64
}

// DefaultParams mirrors the autosearch defaults: eps=1e-6,
// tri_ratio=0.5, apl_ratio=1.25, cl_ratio=0.7.
func DefaultParams() Params {
	return Params{Epsilon: 1e-6, TriRatio: 0.5, APLRatio: 1.25, ClRatio: 0.7}
}

// Anomaly flag tags, per §4.14 step 5.
const (
	FlagLowTriangles  = "LOW_TRIANGLES"
	FlagHighTriangles = "HIGH_TRIANGLES"
	FlagHighAPL       = "HIGH_APL"
	FlagLowAPL        = "LOW_APL"
	FlagLowClustering = "LOW_CLUSTERING"
	FlagHighClustering = "HIGH_CLUSTERING"
	FlagDisconnected  = "DISCONNECTED"
)

// baselineAlgorithms is the fixed algorithm set the anomaly baseline
// is computed over: greedy and exact realization Runs, never
// randomized-greedy or metaheuristic Runs (per SPEC_FULL.md's
// supplemented-features note on the original's algorithm__in filter).
var baselineAlgorithms = []store.Algorithm{store.AlgoGreedy, store.AlgoExactRealization}

// Detect runs the full C13 procedure for (fingerprint, mode) against
// st, executing the read-compare-write atomically via
// st.WithFingerprintTx. Returns nil, nil if no Discovery was
// warranted (not better and fewer than two anomaly flags).
func Detect(ctx context.Context, st store.Store, fingerprint string, mode store.Mode, p Params) (*store.Discovery, error) {
	var result *store.Discovery

	err := st.WithFingerprintTx(ctx, fingerprint, mode, func(tx store.FingerprintTx) error {
		runs, err := tx.RunsByFingerprint(fingerprint, nil)
		if err != nil {
			return err
		}
		if len(runs) == 0 {
			return nil
		}
		sortByObjective(runs, mode)
		best := runs[0]

		var prevVal *float64
		prev, err := tx.LatestDiscovery(fingerprint, mode)
		if err == nil {
			v := prev.NewBestValue
			prevVal = &v
		} else if err != store.ErrNotFound {
			return err
		}

		baselineRuns, err := tx.RunsByFingerprint(fingerprint, baselineAlgorithms)
		if err != nil {
			return err
		}
		flags := anomalyFlags(best, baselineRuns, p)

		if prevVal == nil {
			d := &store.Discovery{
				Fingerprint:       fingerprint,
				Mode:              mode,
				ObjectiveName:     store.ObjectiveSpectralRadius,
				BestRunID:         best.ID,
				PreviousBestValue: nil,
				NewBestValue:      best.ObjectiveValue,
				Improvement:       nil,
				AnomalyFlags:      flags,
				Note:              fmt.Sprintf("FIRST best=%.9f flags=%v", best.ObjectiveValue, flags),
				CreatedAt:         stamp(),
			}
			if err := tx.InsertDiscovery(d); err != nil {
				return err
			}
			result = d
			return nil
		}

		better := isBetter(mode, best.ObjectiveValue, *prevVal, p.Epsilon)
		switch {
		case better:
			improvement := math.Abs(*prevVal - best.ObjectiveValue)
			d := &store.Discovery{
				Fingerprint:       fingerprint,
				Mode:              mode,
				ObjectiveName:     store.ObjectiveSpectralRadius,
				BestRunID:         best.ID,
				PreviousBestValue: prevVal,
				NewBestValue:      best.ObjectiveValue,
				Improvement:       &improvement,
				AnomalyFlags:      flags,
				Note:              fmt.Sprintf("NEW BEST %.9f (prev %.9f) flags=%v", best.ObjectiveValue, *prevVal, flags),
				CreatedAt:         stamp(),
			}
			if err := tx.InsertDiscovery(d); err != nil {
				return err
			}
			result = d
		case len(flags) >= 2:
			zero := 0.0
			d := &store.Discovery{
				Fingerprint:       fingerprint,
				Mode:              mode,
				ObjectiveName:     store.ObjectiveSpectralRadius,
				BestRunID:         best.ID,
				PreviousBestValue: prevVal,
				NewBestValue:      best.ObjectiveValue,
				Improvement:       &zero,
				AnomalyFlags:      flags,
				Note:              fmt.Sprintf("ANOMALY without new record flags=%v", flags),
				CreatedAt:         stamp(),
			}
			if err := tx.InsertDiscovery(d); err != nil {
				return err
			}
			result = d
		}
		return nil
	})

	return result, err
}

func isBetter(mode store.Mode, newVal, prevVal, eps float64) bool {
	if mode == store.ModeMax {
		return newVal > prevVal+eps
	}
	return newVal < prevVal-eps
}

func sortByObjective(runs []store.Run, mode store.Mode) {
	sort.SliceStable(runs, func(i, j int) bool {
		a, b := runs[i], runs[j]
		if a.ObjectiveValue != b.ObjectiveValue {
			if mode == store.ModeMax {
				return a.ObjectiveValue > b.ObjectiveValue
			}
			return a.ObjectiveValue < b.ObjectiveValue
		}
		return a.WallTimeMs < b.WallTimeMs
	})
}

// anomalyFlags computes the §4.14 step-5 flags for best against the
// upper-median baseline of baselineRuns.
func anomalyFlags(best store.Run, baselineRuns []store.Run, p Params) []string {
	var flags []string

	if triB, ok := upperMedianInt(baselineRuns, func(r store.Run) (int, bool) {
		if r.Triangles == nil {
			return 0, false
		}
		return *r.Triangles, true
	}); ok && best.Triangles != nil {
		tri := float64(*best.Triangles)
		switch {
		case tri < triB*p.TriRatio:
			flags = append(flags, FlagLowTriangles)
		case tri > triB/maxFloat(p.TriRatio, 1e-9):
			flags = append(flags, FlagHighTriangles)
		}
	}

	if aplB, ok := upperMedianFloat(baselineRuns, func(r store.Run) (float64, bool) {
		if r.APL == nil {
			return 0, false
		}
		return *r.APL, true
	}); ok && best.APL != nil {
		apl := *best.APL
		switch {
		case apl > aplB*p.APLRatio:
			flags = append(flags, FlagHighAPL)
		case apl < aplB/maxFloat(p.APLRatio, 1e-9):
			flags = append(flags, FlagLowAPL)
		}
	}

	if clB, ok := upperMedianFloat(baselineRuns, func(r store.Run) (float64, bool) {
		if r.Clustering == nil {
			return 0, false
		}
		return *r.Clustering, true
	}); ok && best.Clustering != nil {
		cl := *best.Clustering
		switch {
		case cl < clB*p.ClRatio:
			flags = append(flags, FlagLowClustering)
		case cl > clB/maxFloat(p.ClRatio, 1e-9):
			flags = append(flags, FlagHighClustering)
		}
	}

	if !best.IsConnected {
		flags = append(flags, FlagDisconnected)
	}

	return flags
}

// upperMedianFloat sorts the values extracted from runs ascending and
// returns sorted[len/2] — the upper-middle element, deliberately NOT
// the true median for even counts, preserved exactly per
// DESIGN.md's upper-median note.
func upperMedianFloat(runs []store.Run, extract func(store.Run) (float64, bool)) (float64, bool) {
	var vals []float64
	for _, r := range runs {
		if v, ok := extract(r); ok {
			vals = append(vals, v)
		}
	}
	if len(vals) == 0 {
		return 0, false
	}
	sort.Float64s(vals)
	return vals[len(vals)/2], true
}

func upperMedianInt(runs []store.Run, extract func(store.Run) (int, bool)) (float64, bool) {
	var vals []int
	for _, r := range runs {
		if v, ok := extract(r); ok {
			vals = append(vals, v)
		}
	}
	if len(vals) == 0 {
		return 0, false
	}
	sort.Ints(vals)
	return float64(vals[len(vals)/2]), true
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// stamp is the single place Detect calls time.Now(), kept as a named
// function so a future deterministic-clock test hook has one seam to
// replace.
func stamp() time.Time { return time.Now() }
