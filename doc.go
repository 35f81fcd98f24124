// Package reactive provides a fine-grained reactive runtime for Go: a
// push/pull dependency graph of cells (signals, computed values, and
// effects), a batched multi-phase scheduler, ownership-scoped
// lifetimes, and error/loading state propagation.
//
// Unlike the explicit-dependency-list style of an earlier generation of
// Go signal libraries, dependencies here are discovered automatically:
// any Signal or Computed read from inside a Computed's compute function
// or an Effect's tracking function registers itself as a dependency for
// that run, and the edge set is reconciled on every recompute — a
// compute function that branches may legitimately depend on a different
// source set from one run to the next.
//
// # Core Types
//
// Signal[T] - a writable reactive cell.
//
// ReadonlySignal[T] - a read-only view of a signal, or the result of Computed.
//
// Computed[T] - a lazily-pulled, memoized derived value.
//
// RenderEffect / UserEffect - always-observed computations split into a
// pure tracking half and a side-effecting half, run in the render or
// user scheduler tier respectively.
//
// # Example
//
//	firstName := reactive.NewSignal("Ada")
//	lastName := reactive.NewSignal("Lovelace")
//
//	fullName := reactive.Computed(func() string {
//	    return firstName.Get() + " " + lastName.Get()
//	})
//
//	unsub := fullName.SubscribeForever(func(name string) {
//	    fmt.Println("name changed:", name)
//	})
//	defer unsub()
//
//	firstName.Set("Grace") // schedules a flush; prints "name changed: Grace Lovelace"
//
// # Scheduling
//
// Writes do not recompute anything synchronously beyond marking the
// graph dirty/check and requesting a flush from the installed
// Scheduler. A flush runs the pure phase (plain recomputation and
// EagerComputation bodies) to a fixed point, advances the package clock
// once, then runs the render tier and finally the user tier — so an
// Effect never observes a partially-updated dependency set within one
// flush (spec: "no glitches"). DefaultQueue returns the queue backing
// cells created with no owner in scope; a host embedding this runtime
// in a real event loop installs its own Scheduler via
// Queue.SetScheduler instead of relying on the synchronous default.
//
// # Ownership and cleanup
//
// CreateRoot establishes a root Owner; OnCleanup registers a function to
// run when the nearest enclosing owner is disposed, LIFO. Contexts
// created with CreateContext are looked up by walking the owner chain,
// and writes via SetContext affect only the current owner's map.
//
// # Errors and loading state
//
// A Signal can be put into an error state with SetError, or a loading
// state with MarkLoading; both propagate to observers, which re-raise
// them from Get until the upstream cell is written successfully again.
// CreateErrorBoundary and CreateSuspense install a child scope that
// intercepts ERROR and LOADING notifications from their subtree,
// respectively, so a host can render a fallback instead of letting the
// state escape to the top of the graph.
//
// # Concurrency model
//
// This runtime assumes single-threaded cooperative use: no mutex or
// atomic guards the graph, matching the scheduling model of the system
// it implements. Concurrent mutation of the same graph from multiple
// goroutines without external synchronization is not supported, and the
// core itself never spawns a goroutine of its own — including for
// Subscribe's ctx parameter: cancellation is checked cooperatively, from
// inside the subscription's own effect body the next time it runs, by
// reading ctx.Err() — never by a background watcher racing the graph.
package reactive
