package reactive

import "context"

// subscribeCell is the shared implementation backing Signal.Subscribe and
// ReadonlySignal.Subscribe for every generic wrapper type. It installs a
// root owner whose sole purpose is a single user-tier effect tracking c
// and invoking fn(value) on every change after the first.
//
// Unlike the teacher library's map-based subscriber storage plus a
// goroutine per subscription, this is expressed entirely in terms of the
// reactive graph itself: the subscription IS an effect, and cancellation
// IS owner disposal — there is no separate subscriber bookkeeping to keep
// in sync with the graph.
//
// ctx cancellation is checked cooperatively rather than watched by a
// background goroutine: the core never spawns goroutines of its own, so
// ctx.Err() is inspected from inside the subscription's own effect body,
// the next time something actually writes to c after ctx is done. A
// cancelled context with no further write to c is never observed — there
// is no separate thread to notice it — so callers that need prompt
// cancellation should also call the returned Unsubscribe explicitly.
func subscribeCell[T any](c *Cell, ctx context.Context, fn func(T)) Unsubscribe {
	first := true
	stop := CreateRoot(func(dispose func()) Unsubscribe {
		var closeOnce bool
		stop := func() {
			if closeOnce {
				return
			}
			closeOnce = true
			dispose()
		}
		UserEffect(func(prev any) any {
			v := c.read()
			return v
		}, func(current, prev any) func() {
			if ctx != nil && ctx.Err() != nil {
				stop()
				return nil
			}
			if first {
				first = false
				return nil
			}
			fn(current.(T))
			return nil
		})
		return stop
	})

	return stop
}
