package reactive

import "context"

// signal is the internal implementation of Signal[T]: a thin generic
// wrapper around a *Cell of kind kindSignal.
type signal[T any] struct {
	c *Cell
}

// NewSignal creates a new writable signal with the given initial value
// and default (structural-equality) behavior.
//
// Example:
//
//	count := reactive.NewSignal(0)
//	count.Set(5)
//	fmt.Println(count.Get())  // 5
func NewSignal[T any](initial T) Signal[T] {
	return NewSignalWithOptions(initial, Options[T]{})
}

// NewSignalWithOptions creates a new writable signal with a custom
// equality predicate and/or debug name.
func NewSignalWithOptions[T any](initial T, opts Options[T]) Signal[T] {
	equal, name := opts.erase()
	return &signal[T]{c: newCell(kindSignal, any(initial), nil, equal, name)}
}

func (s *signal[T]) cell() *Cell { return s.c }

// Get returns the current value, tracking a dependency if called from
// within a tracked computation.
func (s *signal[T]) Get() T {
	return s.c.read().(T)
}

// Peek returns the current value without tracking a dependency and
// without re-raising ERROR/LOADING.
func (s *signal[T]) Peek() T {
	return s.c.peek().(T)
}

// Set replaces the signal's value. An equal value (per the equality
// predicate) is not stored and, unless the signal carries LOADING or
// ERROR, changes nothing; any Set clears LOADING and ERROR.
func (s *signal[T]) Set(v T) {
	s.c.write(any(v), 0)
}

// Update transforms the current value with fn, then behaves as Set. The
// read is untracked (Peek), matching "atomic read-transform-write"
// without accidentally registering a dependency on itself.
func (s *signal[T]) Update(fn func(T) T) {
	s.Set(fn(s.Peek()))
}

// SetError marks the signal ERROR with err; observers reading it
// re-raise err until the next successful Set.
func (s *signal[T]) SetError(err error) {
	s.c.setError(err)
}

// MarkLoading sets LOADING without altering the stored value.
func (s *signal[T]) MarkLoading() {
	s.c.write(Unchanged, FlagLoading)
}

// AsReadonly returns a read-only view of this signal.
func (s *signal[T]) AsReadonly() ReadonlySignal[T] {
	return &readonlySignal[T]{c: s.c}
}

// Subscribe registers fn to run as a user-tier effect tracking this
// signal, until ctx is done or the returned Unsubscribe is called.
func (s *signal[T]) Subscribe(ctx context.Context, fn func(T)) Unsubscribe {
	return subscribeCell(s.c, ctx, fn)
}

// SubscribeForever is Subscribe(context.Background(), fn).
func (s *signal[T]) SubscribeForever(fn func(T)) Unsubscribe {
	return subscribeCell(s.c, context.Background(), fn)
}
