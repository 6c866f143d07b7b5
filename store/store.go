package store

import "context"

// FingerprintTx is the view of the store available inside
// WithFingerprintTx: everything the discovery detector (C13) needs to
// read-compare-write a single (fingerprint, mode) group atomically.
type FingerprintTx interface {
	// RunsByFingerprint returns every Run for fingerprint with a
	// non-null objective, optionally restricted to algos (nil/empty
	// means no restriction).
	RunsByFingerprint(fingerprint string, algos []Algorithm) ([]Run, error)
	// LatestDiscovery returns the most recently created Discovery for
	// (fingerprint, mode), or ErrNotFound if none exists yet.
	LatestDiscovery(fingerprint string, mode Mode) (*Discovery, error)
	// InsertDiscovery appends a new Discovery within the transaction.
	InsertDiscovery(d *Discovery) error
}

// Store is the durable backend contract the engine depends on (§6).
// Every method that reads-then-writes the same fingerprint group does
// so through WithFingerprintTx, which MUST execute serializably
// against concurrent callers on the same (fingerprint, mode).
type Store interface {
	InsertRun(ctx context.Context, run *Run) error
	RunsByFingerprint(ctx context.Context, fingerprint string, algos []Algorithm) ([]Run, error)
	ListRuns(ctx context.Context, limit int) ([]Run, error)
	BestRun(ctx context.Context, mode Mode, fingerprint string) (*Run, error)

	ListDiscoveries(ctx context.Context, limit int) ([]Discovery, error)
	LatestDiscovery(ctx context.Context, fingerprint string, mode Mode) (*Discovery, error)

	// WithFingerprintTx executes fn with exclusive, serializable access
	// to the (fingerprint, mode) group: no concurrent caller observes an
	// interleaved read-compare-write for the same key.
	WithFingerprintTx(ctx context.Context, fingerprint string, mode Mode, fn func(tx FingerprintTx) error) error

	InsertJob(ctx context.Context, job *AutoSearchJob) error
	UpdateJob(ctx context.Context, id string, fn func(job *AutoSearchJob)) error
	GetJob(ctx context.Context, id string) (*AutoSearchJob, error)
}
