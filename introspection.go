package reactive

// Observer identifies the currently executing tracked computation, to
// which reads attach a dependency edge — distinct from Owner, which
// scopes cleanup/context/error-handling rather than dependency tracking
// (spec glossary: "Observer (context) — the currently executing
// computation, to which reads attach").
type Observer struct {
	c *Cell
}

// GetObserver returns the currently active Observer, or nil if no
// tracked computation is executing (e.g. at the top level, or inside
// Untrack).
func GetObserver() *Observer {
	if currentObserver == nil {
		return nil
	}
	return &Observer{c: currentObserver}
}

// RunWithObserver runs fn with obs installed as the current observer
// (nil means untracked), restoring whatever observer was previously
// current — the primitive Untrack and the tracked-compute machinery in
// Cell.runTracked both reduce to.
func RunWithObserver[T any](obs *Observer, fn func() T) T {
	prev := currentObserver
	if obs == nil {
		currentObserver = nil
	} else {
		currentObserver = obs.c
	}
	defer func() { currentObserver = prev }()
	return fn()
}

// Untrack runs fn with dependency tracking suspended: any Signal/
// Computed Get() inside fn does not register a dependency edge on the
// enclosing computation, matching the update algorithm's "only reads
// made while currentObserver is installed are tracked."
func Untrack[T any](fn func() T) T {
	return RunWithObserver(nil, fn)
}

// IsPending reports whether s currently carries the LOADING bit. When
// includeSelf is false, only s's recorded sources are checked (useful
// to ask "is anything upstream of this cell still loading" without
// forcing s's own compute to run first).
func IsPending(s anyCell, includeSelf bool) bool {
	c := s.cell()
	if includeSelf {
		if c.flags.needsUpdate() {
			c.update()
		}
		if c.IsLoading() {
			return true
		}
	}
	for _, src := range c.sources {
		if src.IsLoading() {
			return true
		}
	}
	return false
}

// Latest returns s's last successfully computed value, registering a
// dependency edge like Get, but — unlike Get — never re-raising a
// stored ERROR or LOADING state: the reader opts into seeing stale data
// rather than propagating the pending/failed state itself.
func Latest[T any](s anyCell) T {
	return s.cell().trackAndPeek().(T)
}

// HasUpdated reports whether s's value has changed (per its equality
// predicate) more recently than the given change-counter reading —
// captured via ChangeClock() at the point the caller last checked. This
// is the Go-idiomatic rendering of the introspection contract's
// parameterless "has this updated since I last asked": Go has no
// implicit per-call-site memory to lean on, so the caller threads the
// counter value explicitly.
//
// The counter is its own monotonic sequence, distinct from Clock()'s
// flush-phase clock: Clock() only ticks when a flush performs pure-phase
// work, which never happens for a plain Signal/Computed chain with no
// effect attached (nothing is ever enqueued onto the pure tier), so
// stamping changedAt from Clock() would make HasUpdated blind to exactly
// that case. ChangeClock() advances on every actual value change instead,
// flush or no flush.
func HasUpdated(s anyCell, since uint64) bool {
	c := s.cell()
	if c.flags.needsUpdate() {
		c.update()
	}
	return c.changedAt > since
}

// Flatten unwraps v, tracking and re-raising at each level, while v (or
// what it reads to) is itself a Signal[T]/ReadonlySignal[T] — the
// "signal of signals" case — finally asserting the fully-resolved value
// to T.
func Flatten[T any](v any) T {
	for {
		ch, ok := v.(anyCell)
		if !ok {
			break
		}
		v = ch.cell().read()
	}
	return v.(T)
}
