package rewire

import "errors"

// ErrLimitExceeded is returned by EnforceConnected when the outer or
// inner attempt budget is exhausted before the graph becomes
// connected.
var ErrLimitExceeded = errors.New("rewire: connectivity enforcement limit exceeded")

// ErrCannotConnect is returned when a component has no internal edge
// to rewire from (an isolated, zero-degree vertex makes fusing that
// component impossible via a 2-switch).
var ErrCannotConnect = errors.New("rewire: cannot connect isolated vertices")

const MethodEnforceConnected = "EnforceConnected"

// Default outer/inner attempt budgets, matching the corpus this
// enforcer's behavior was grounded on.
const (
	DefaultMaxOuter = 2000
	DefaultMaxInner = 4000
)
