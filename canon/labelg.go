package canon

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// ErrExternalTool is the sentinel wrapped around every labelg
// invocation failure: missing binary, non-zero exit, or empty output.
var ErrExternalTool = errors.New("canon: external tool error")

const MethodCanonicalG6 = "CanonicalG6"

// DefaultTimeout bounds a single labelg invocation made through
// CanonicalG6WithDefaultTimeout; it is layered on top of the caller's
// ctx, so an earlier deadline already on ctx still applies first.
const DefaultTimeout = 2 * time.Second

// LabelgPath is the executable name or path used to invoke labelg.
// Exposed as a variable (not a constant) so tests and deployments can
// point it at a stub binary without touching PATH.
var LabelgPath = "labelg"

// CanonicalG6 pipes one graph6 string into `labelg -q -g` and returns
// the single canonical graph6 line it prints back (C6). Header lines
// beginning with '>' are ignored, matching labelg's own convention
// for its banner output.
func CanonicalG6(ctx context.Context, g6 string) (string, error) {
	cmd := exec.CommandContext(ctx, LabelgPath, "-q", "-g")
	cmd.Stdin = strings.NewReader(g6 + "\n")

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		log.Error().Err(err).Str("stderr", stderr.String()).Msg("labelg invocation failed")
		return "", fmt.Errorf("%s: %v: %w", MethodCanonicalG6, err, ErrExternalTool)
	}

	for _, line := range strings.Split(stdout.String(), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, ">") {
			continue
		}
		return line, nil
	}

	log.Error().Msg("labelg produced no usable output line")
	return "", fmt.Errorf("%s: empty output: %w", MethodCanonicalG6, ErrExternalTool)
}

// CanonicalG6WithDefaultTimeout calls CanonicalG6 under a
// DefaultTimeout deadline layered on top of parent. Run-builders use
// this rather than bare CanonicalG6 so a hung or missing labelg binary
// degrades one Run's canonical fields to empty rather than blocking
// the whole batch.
func CanonicalG6WithDefaultTimeout(parent context.Context, g6 string) (string, error) {
	ctx, cancel := context.WithTimeout(parent, DefaultTimeout)
	defer cancel()
	return CanonicalG6(ctx, g6)
}
