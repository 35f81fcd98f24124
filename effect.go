package reactive

// EffectRef represents a running Effect (an EagerComputation with a
// non-tracking side-effecting half) that can be stopped.
//
// Unlike the teacher library's EffectRef, stopping is disposal: once
// Stop is called the effect's last cleanup runs and it is permanently
// detached from the graph. Safe to call multiple times.
type EffectRef interface {
	// Stop runs the effect's current cleanup (if any) and detaches it
	// from the graph. After Stop, the effect never runs again.
	Stop()
}

// effectRef is the concrete EffectRef backing RenderEffect/UserEffect.
type effectRef struct {
	c *Cell
}

func (e *effectRef) Stop() { e.c.dispose() }

// EffectOptions configures an Effect: its equality predicate for the
// tracking half's return value (it does not gate the effect body; see
// Equal), a debug name, a
// per-effect error handler, and the initial "previous value" fed to
// compute and effect on their first run.
type EffectOptions[T any] struct {
	// Equal is an optional equality predicate over compute's result. If
	// nil, the default structural-equality fallback applies, matching
	// Computed. It does not gate the effect body: effect is enqueued
	// after every successful compute, equal result or not.
	Equal EqualFunc[T]

	// Name is an optional debug name.
	Name string

	// ErrorHandler, if set, is offered a compute/effect error before the
	// owner's error handler chain; returning true marks it handled.
	ErrorHandler func(error) bool

	// Initial is the "prev" value passed to compute and effect on their
	// very first run, before either has ever produced a result.
	Initial T
}

// RenderEffect creates an EagerComputation whose tracking half is
// compute(prev) and whose non-tracking, side-effecting half is
// effect(current, prev), the body run during the render tier: strictly
// before any UserEffect in the same flush, intended for synchronous view
// updates (spec §4.3/§5).
//
// compute runs during the pure phase on construction and on every flush
// where one of its dependencies changed; it must be pure (reads signals,
// returns a value) and MUST NOT call effect's side-effecting code
// itself. Every successful compute enqueues effect onto the render tier,
// whether or not its result equals the previous one. If compute panics
// with *NotReadyError, the effect body for this flush is skipped (it
// remains pending, not fired with stale data); any other error is first
// offered to an enclosing error boundary, then to the effect's
// ErrorHandler, then to the owner's error handler, and escalates out of
// the flush if nothing absorbs it.
//
// effect may return a cleanup function, run immediately before the next
// effect body and on Stop/owner disposal — exactly the ordering
// guaranteed by spec §5 ("cleanup of a cell's prior effect runs strictly
// before its next effect").
func RenderEffect[T any](compute func(prev T) T, effect func(current, prev T) func(), opts ...EffectOptions[T]) EffectRef {
	return newEagerEffect(TierRender, compute, effect, effectOptsOrZero(opts))
}

// UserEffect is RenderEffect, but its body runs in the user tier, after
// every render-tier effect in the same flush has run — the tier
// intended for post-render side effects (logging, network calls,
// imperative DOM/host mutations that depend on a render having already
// committed).
func UserEffect[T any](compute func(prev T) T, effect func(current, prev T) func(), opts ...EffectOptions[T]) EffectRef {
	return newEagerEffect(TierUser, compute, effect, effectOptsOrZero(opts))
}

func effectOptsOrZero[T any](opts []EffectOptions[T]) EffectOptions[T] {
	if len(opts) > 0 {
		return opts[0]
	}
	return EffectOptions[T]{}
}

func newEagerEffect[T any](tier Tier, compute func(prev T) T, effect func(current, prev T) func(), opts EffectOptions[T]) EffectRef {
	equal, name := Options[T]{Equal: opts.Equal, Name: opts.Name}.erase()

	wrappedCompute := func(prev any) any {
		return compute(prev.(T))
	}
	wrappedEffect := func(current, prev any) func() {
		return effect(current.(T), prev.(T))
	}

	c := newCell(kindEagerEffect, any(opts.Initial), wrappedCompute, equal, name)
	c.tier = tier
	c.effectFn = wrappedEffect
	c.errorHandler = opts.ErrorHandler

	if o := currentOwner; o != nil {
		o.onCleanup(func() { c.dispose() })
	}

	// An EagerComputation is always considered observed: it registers
	// itself on its queue's pure tier on construction and runs
	// regardless of downstream demand (spec §4.3), rather than waiting
	// for a write to mark it CHECK/DIRTY via propagate.
	c.scheduleSelf()

	return &effectRef{c: c}
}
