// Package store defines the data model that the algorithmic engine
// persists (Run, Discovery, AutoSearchJob), the Store contract the
// engine needs from a durable backend, and an in-memory reference
// implementation of that contract.
//
// This package is the thin external-collaborator boundary the base
// specification calls out: the engine only ever talks to the Store
// interface, never to a concrete database. Providing a real
// persistence layer (SQL schema, migrations, HTTP surface) is outside
// this module's scope; MemStore exists so the rest of the engine is
// independently testable and runnable without one.
package store
