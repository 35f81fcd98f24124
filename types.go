package reactive

import "context"

// Unsubscribe removes a subscription registered via Subscribe or
// SubscribeForever. Call it to stop receiving notifications and release
// the underlying effect.
type Unsubscribe func()

// Signal is a writable reactive cell holding a value of type T.
//
// Reads made while a tracked computation is executing (inside Computed,
// Effect, or any EagerComputation's compute function) register a
// dependency edge automatically — there is no explicit dependency list to
// pass, unlike the teacher library's Computed/Effect constructors.
type Signal[T any] interface {
	// Get returns the current value, tracking a dependency edge if called
	// from within a tracked computation. If the signal carries the ERROR
	// bit, Get panics with an error wrapping the stored one (reachable
	// with errors.Is/As); if it carries LOADING, Get panics with
	// *NotReadyError. Inside a tracked compute both panics are caught and
	// turned into that computation's state; a Get made outside any
	// tracked computation lets the panic reach the caller.
	Get() T

	// Peek returns the current value without tracking a dependency and
	// without re-raising ERROR/LOADING.
	Peek() T

	// Set replaces the value. If the signal's equality predicate reports
	// the new value equal to the current one, the value is not stored;
	// otherwise it is. Either way ERROR/LOADING are cleared, and
	// observers are marked for recomputation if the value or those bits
	// changed (an equal Set on a plain signal is a no-op).
	Set(value T)

	// Update transforms the current value with fn, then behaves as Set.
	Update(fn func(T) T)

	// SetError marks the signal as propagating err: observers reading it
	// re-raise err until the signal is next written successfully.
	SetError(err error)

	// MarkLoading sets the LOADING bit without altering the stored
	// value, the Signal-level equivalent of writing the Unchanged
	// sentinel with a loading mask.
	MarkLoading()

	// AsReadonly returns a read-only view of this signal, for
	// encapsulation.
	AsReadonly() ReadonlySignal[T]

	// Subscribe registers fn to run (as a user-tier effect) whenever the
	// signal's tracked value changes, until ctx is done or the returned
	// Unsubscribe is called.
	Subscribe(ctx context.Context, fn func(T)) Unsubscribe

	// SubscribeForever is Subscribe(context.Background(), fn); the
	// returned Unsubscribe MUST be called to release the effect.
	SubscribeForever(fn func(T)) Unsubscribe

	// cell exposes the underlying Cell for internal wiring (boundaries,
	// introspection) without widening the public interface.
	cell() *Cell
}

// ReadonlySignal is a read-only view of a Signal, or the result of
// Computed — any reactive cell that can be read and subscribed to but
// not written.
type ReadonlySignal[T any] interface {
	Get() T
	Peek() T
	Subscribe(ctx context.Context, fn func(T)) Unsubscribe
	SubscribeForever(fn func(T)) Unsubscribe

	cell() *Cell
}
