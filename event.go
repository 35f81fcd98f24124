package reactive

// This file is the event-stream layer's contract surface (spec §4.7): an
// external collaborator built on top of the core, specified here only to
// the extent the core must expose hooks for it — enqueue/notify/owner
// acquisition (all already public) plus ownership transfer across async
// resumptions. The actual stream combinators (map/filter/merge, pull vs.
// push scheduling policy) are the upper layer's responsibility and are
// deliberately not implemented here.

// EventObserver is the three-function contract an event producer is
// driven through: Wait reports backpressure (the producer should pause
// until it returns false again), Next delivers a value, and Error
// reports a terminal failure. A producer calls at most one of Next/Error
// per turn, and must stop calling either once Error has fired.
type EventObserver[T any] struct {
	Wait  func() bool
	Next  func(value T)
	Error func(err error)
}

// Handler subscribes obs to a stream, returning an Unsubscribe that
// detaches it. This is the opaque callable spec §4.7 describes as
// "carrying an observer tag" — the core treats it as a black box, never
// constructing one itself.
type Handler[T any] func(obs EventObserver[T]) Unsubscribe

// Emitter is the producer side of a stream: a minimal push source an
// upper layer wires a Handler onto. The core does not implement queuing
// or delivery policy here — Emit/EmitError are direct, synchronous
// calls, matching the core's single-threaded cooperative model; an
// upper layer wanting batched/async delivery schedules that itself via
// Queue.enqueue.
type Emitter[T any] struct {
	observers []EventObserver[T]
}

// Subscribe registers obs to receive this Emitter's values until the
// returned Unsubscribe is called.
func (e *Emitter[T]) Subscribe(obs EventObserver[T]) Unsubscribe {
	e.observers = append(e.observers, obs)
	idx := len(e.observers) - 1
	return func() {
		if idx < 0 || idx >= len(e.observers) {
			return
		}
		e.observers[idx] = EventObserver[T]{}
	}
}

// Emit delivers value to every still-subscribed observer's Next.
func (e *Emitter[T]) Emit(value T) {
	for _, obs := range e.observers {
		if obs.Next != nil {
			obs.Next(value)
		}
	}
}

// EmitError delivers err to every still-subscribed observer's Error.
func (e *Emitter[T]) EmitError(err error) {
	for _, obs := range e.observers {
		if obs.Error != nil {
			obs.Error(err)
		}
	}
}

// CaptureResumption captures the currently active owner so an async
// operation can re-enter that exact scope later (spec design note
// "Async resumption crossing owners": capture the owner at suspension,
// restore it before invoking the observer's next/error on resumption,
// combined with an aborted flag driven by owner cleanup).
//
// The returned resume function is a no-op once the captured owner has
// been disposed — writes from a resumption that lost its race with
// disposal are discarded rather than mutating a torn-down scope.
func CaptureResumption() func(fn func()) {
	owner := currentOwner
	aborted := false
	if owner != nil {
		owner.onCleanup(func() { aborted = true })
	}
	return func(fn func()) {
		if aborted {
			return
		}
		RunWithOwner(owner, func() any {
			fn()
			return nil
		})
	}
}
