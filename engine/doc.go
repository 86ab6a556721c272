// Package engine models the host script engine's native-callback and
// direct-call ABI contract: the value model, the fixed three-part callback
// shape (scope, argument accessor, return sink), per-context state slots,
// deferred results, external capsules, and the fast-call descriptor.
//
// It deliberately models only the contract. Execution semantics of the
// engine itself (scheduling, garbage collection, script evaluation) are
// out of scope; the in-memory value model exists so generated glue has a
// concrete surface to compile and test against.
//
// Everything here follows the engine's single-threaded cooperative model:
// values, scopes, and contexts must only be touched from the thread that
// holds the active scope, and nothing takes locks.
package engine
