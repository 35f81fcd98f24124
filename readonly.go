package reactive

import "context"

// readonlySignal is the internal implementation of ReadonlySignal[T]: a
// thin generic wrapper around a *Cell that never exposes write access,
// used for AsReadonly views and as the concrete type returned by
// Computed.
type readonlySignal[T any] struct {
	c *Cell
}

func (r *readonlySignal[T]) cell() *Cell { return r.c }

// Get returns the current value, tracking a dependency if called from
// within a tracked computation.
func (r *readonlySignal[T]) Get() T {
	v, _ := r.c.read().(T) // a nil interface value yields T's zero value
	return v
}

// Peek returns the current value without tracking a dependency and
// without re-raising ERROR/LOADING.
func (r *readonlySignal[T]) Peek() T {
	return r.c.peek().(T)
}

// Subscribe registers fn to run as a user-tier effect tracking this
// cell, until ctx is done or the returned Unsubscribe is called.
func (r *readonlySignal[T]) Subscribe(ctx context.Context, fn func(T)) Unsubscribe {
	return subscribeCell(r.c, ctx, fn)
}

// SubscribeForever is Subscribe(context.Background(), fn).
func (r *readonlySignal[T]) SubscribeForever(fn func(T)) Unsubscribe {
	return subscribeCell(r.c, context.Background(), fn)
}
