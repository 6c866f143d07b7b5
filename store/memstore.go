package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// MemStore is an in-memory, concurrency-safe reference
// implementation of Store, guarded by a single sync.Mutex. Because
// every operation (including WithFingerprintTx) takes the same lock,
// serializability of the fingerprint-group read-compare-write falls
// out of mutual exclusion rather than row-level locking — sufficient
// for a single-process reference store, though a real backend would
// use a narrower lock or an optimistic-retry scheme.
type MemStore struct {
	mu          sync.Mutex
	runs        []*Run
	discoveries []*Discovery
	jobs        map[string]*AutoSearchJob
}

// NewMemStore returns an empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{jobs: make(map[string]*AutoSearchJob)}
}

func (s *MemStore) InsertRun(ctx context.Context, run *Run) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if run.ID == "" {
		run.ID = uuid.New().String()
	}
	s.runs = append(s.runs, run)
	return nil
}

func (s *MemStore) RunsByFingerprint(ctx context.Context, fingerprint string, algos []Algorithm) ([]Run, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.runsByFingerprintLocked(fingerprint, algos), nil
}

func (s *MemStore) runsByFingerprintLocked(fingerprint string, algos []Algorithm) []Run {
	allowed := algoSet(algos)
	var out []Run
	for _, r := range s.runs {
		if r.Fingerprint != fingerprint {
			continue
		}
		if len(allowed) > 0 && !allowed[r.Algorithm] {
			continue
		}
		out = append(out, *r)
	}
	return out
}

func algoSet(algos []Algorithm) map[Algorithm]bool {
	if len(algos) == 0 {
		return nil
	}
	m := make(map[Algorithm]bool, len(algos))
	for _, a := range algos {
		m[a] = true
	}
	return m
}

func (s *MemStore) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.runs)
	start := 0
	if limit > 0 && n > limit {
		start = n - limit
	}
	out := make([]Run, 0, n-start)
	for i := n - 1; i >= start; i-- {
		out = append(out, *s.runs[i])
	}
	return out, nil
}

func (s *MemStore) BestRun(ctx context.Context, mode Mode, fingerprint string) (*Run, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	candidates := s.runsByFingerprintLocked(fingerprint, nil)
	if len(candidates) == 0 {
		return nil, ErrNotFound
	}
	sortByObjective(candidates, mode)
	best := candidates[0]
	return &best, nil
}

// sortByObjective orders runs by (objective, time_ms) ascending for
// min mode, or (-objective, time_ms) for max mode — i.e. best first
// under the mode, ties broken by faster wall time (§4.14 step 2).
func sortByObjective(runs []Run, mode Mode) {
	sort.SliceStable(runs, func(i, j int) bool {
		a, b := runs[i], runs[j]
		if a.ObjectiveValue != b.ObjectiveValue {
			if mode == ModeMax {
				return a.ObjectiveValue > b.ObjectiveValue
			}
			return a.ObjectiveValue < b.ObjectiveValue
		}
		return a.WallTimeMs < b.WallTimeMs
	})
}

func (s *MemStore) ListDiscoveries(ctx context.Context, limit int) ([]Discovery, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.discoveries)
	start := 0
	if limit > 0 && n > limit {
		start = n - limit
	}
	out := make([]Discovery, 0, n-start)
	for i := n - 1; i >= start; i-- {
		out = append(out, *s.discoveries[i])
	}
	return out, nil
}

func (s *MemStore) LatestDiscovery(ctx context.Context, fingerprint string, mode Mode) (*Discovery, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, err := s.latestDiscoveryLocked(fingerprint, mode)
	if err != nil {
		return nil, err
	}
	cp := *d
	return &cp, nil
}

func (s *MemStore) latestDiscoveryLocked(fingerprint string, mode Mode) (*Discovery, error) {
	for i := len(s.discoveries) - 1; i >= 0; i-- {
		d := s.discoveries[i]
		if d.Fingerprint == fingerprint && d.Mode == mode {
			return d, nil
		}
	}
	return nil, ErrNotFound
}

// memFingerprintTx implements FingerprintTx against a MemStore whose
// mutex is already held by the caller (WithFingerprintTx).
type memFingerprintTx struct {
	s           *MemStore
	fingerprint string
	mode        Mode
}

func (t *memFingerprintTx) RunsByFingerprint(fingerprint string, algos []Algorithm) ([]Run, error) {
	return t.s.runsByFingerprintLocked(fingerprint, algos), nil
}

func (t *memFingerprintTx) LatestDiscovery(fingerprint string, mode Mode) (*Discovery, error) {
	return t.s.latestDiscoveryLocked(fingerprint, mode)
}

func (t *memFingerprintTx) InsertDiscovery(d *Discovery) error {
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	t.s.discoveries = append(t.s.discoveries, d)
	return nil
}

func (s *MemStore) WithFingerprintTx(ctx context.Context, fingerprint string, mode Mode, fn func(tx FingerprintTx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	tx := &memFingerprintTx{s: s, fingerprint: fingerprint, mode: mode}
	return fn(tx)
}

func (s *MemStore) InsertJob(ctx context.Context, job *AutoSearchJob) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if job.ID == "" {
		job.ID = uuid.New().String()
	}
	s.jobs[job.ID] = job
	return nil
}

func (s *MemStore) UpdateJob(ctx context.Context, id string, fn func(job *AutoSearchJob)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[id]
	if !ok {
		return fmt.Errorf("UpdateJob: job %s: %w", id, ErrNotFound)
	}
	fn(job)
	return nil
}

func (s *MemStore) GetJob(ctx context.Context, id string) (*AutoSearchJob, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[id]
	if !ok {
		return nil, fmt.Errorf("GetJob: job %s: %w", id, ErrNotFound)
	}
	cp := *job
	return &cp, nil
}

var _ Store = (*MemStore)(nil)
