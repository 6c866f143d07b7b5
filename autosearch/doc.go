// Package autosearch is the orchestration root (C12) and background
// job runtime (C14): it drives repeated degree-sequence sampling,
// baseline realization, hill-climb/simulated-annealing search, and
// discovery detection, wrapped in a single-owner job lock and a
// process-isolated, timeout-guarded subprocess for exact realization.
//
// Every dependency this package needs from the rest of the engine
// (store, discovery, anneal, realize, canon, graph6, invariant,
// degseq) is imported here; rewire is reached only indirectly,
// through anneal's 2-switch moves. This matches C12's role as the
// orchestrator in the component table.
package autosearch
