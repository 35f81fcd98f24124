package reactive

// SuspenseMode selects how a SuspenseBoundary's subtree is presented
// while a descendant cell carries the LOADING bit (spec §4.6).
type SuspenseMode uint8

const (
	// SuspenseShowStale renders existing content even while a descendant
	// is LOADING: render/user effects keep firing normally.
	SuspenseShowStale SuspenseMode = iota
	// SuspenseHide withholds the boundary's render/user effects entirely
	// while any descendant is LOADING, replaying them once quiescent —
	// the host supplies fallback content for the gap.
	SuspenseHide
	// SuspenseTransition is for a boundary being reused to compute a
	// *replacement* subtree: Run builds the new subtree in a separate
	// staging queue while the previously committed subtree stays live and
	// keeps firing its own effects untouched. Once the staging subtree
	// reports zero outstanding LOADING cells, it is promoted in place of
	// the old one — old subtree disposed, staging subtree resumed — in
	// the same notification that observed the last LOADING cell clear, so
	// the swap commits atomically within a single flush.
	SuspenseTransition
)

// SuspenseBoundary installs a child queue that aggregates LOADING
// notifications from its subtree, exposing a reactive Pending view and
// gating render/user effects per its mode (spec §4.6).
type SuspenseBoundary struct {
	mode       SuspenseMode
	owner      *Owner
	queue      *Queue
	depth      *signal[int]
	isPending  ReadonlySignal[bool]
}

// CreateSuspense installs a suspense boundary as a child of the current
// owner's scope. Use Run to construct the watched subtree.
func CreateSuspense(mode SuspenseMode) *SuspenseBoundary {
	parent := currentOwner
	owner := newChildOwner(parent)
	childQueue := NewQueue()
	if parent != nil {
		if pq := parent.Queue(); pq != nil {
			pq.AddChild(childQueue)
		}
	}
	owner.queue = childQueue

	b := &SuspenseBoundary{
		mode:  mode,
		owner: owner,
		queue: childQueue,
	}
	b.depth = NewSignalWithOptions(0, Options[int]{Name: "suspense.depth"}).(*signal[int])
	b.isPending = Computed(func() bool { return b.depth.Get() > 0 })

	childQueue.notifyFn = func(source *Cell, mask Flags, value any) bool {
		if mask&FlagLoading == 0 {
			return false
		}
		loadingNow, _ := value.(bool)
		delta := -1
		if loadingNow {
			delta = 1
		}
		b.depth.Update(func(n int) int { return n + delta })
		if b.mode != SuspenseShowStale {
			if b.depth.Peek() > 0 {
				childQueue.Pause()
			} else {
				childQueue.Resume()
			}
		}
		return true
	}

	return b
}

// Run executes fn with the boundary's owner installed as current, so
// every Signal/Computed/Effect fn creates belongs to the boundary's
// subtree and reports LOADING through its queue.
//
// In SuspenseTransition mode, Run instead builds fn's subtree as a
// candidate replacement — see runTransition.
func (b *SuspenseBoundary) Run(fn func()) {
	if b.mode != SuspenseTransition {
		RunWithOwner(b.owner, func() any { fn(); return nil })
		return
	}
	b.runTransition(fn)
}

// runTransition builds fn's subtree in a fresh staging owner+queue,
// sibling to the boundary's currently committed one, leaving the
// committed subtree's effects running undisturbed in the meantime. The
// staging queue starts paused, so none of its own render/user effects
// fire speculatively while it may still be LOADING. Once the staging
// subtree reaches zero outstanding LOADING cells — whether observed via
// a notification raised while fn is still running, or found already true
// right after fn returns (a subtree that never went through LOADING at
// all) — promote swaps it in for the committed subtree in one step.
func (b *SuspenseBoundary) runTransition(fn func()) {
	parentQueue := b.queue.parent
	staging := newChildOwner(b.owner.parent)
	stagingQueue := NewQueue()
	if parentQueue != nil {
		parentQueue.AddChild(stagingQueue)
	}
	staging.queue = stagingQueue
	stagingQueue.Pause()

	committed := false
	stagingQueue.notifyFn = func(source *Cell, mask Flags, value any) bool {
		if mask&FlagLoading == 0 {
			return false
		}
		loadingNow, _ := value.(bool)
		delta := -1
		if loadingNow {
			delta = 1
		}
		b.depth.Update(func(n int) int { return n + delta })
		if !committed && b.depth.Peek() <= 0 {
			committed = true
			b.promote(staging, stagingQueue)
		}
		return true
	}

	RunWithOwner(staging, func() any { fn(); return nil })

	if !committed && b.depth.Peek() <= 0 {
		committed = true
		b.promote(staging, stagingQueue)
	}
}

// promote disposes the boundary's previously committed subtree and
// installs staging as the new one, resuming its queue so any render/user
// effects retained while paused now fire. Called only once the staging
// subtree is known to be fully non-LOADING, so the swap never exposes an
// intermediate state to a Pending observer.
func (b *SuspenseBoundary) promote(staging *Owner, stagingQueue *Queue) {
	oldOwner, oldQueue := b.owner, b.queue
	b.owner, b.queue = staging, stagingQueue
	stagingQueue.Resume()
	oldOwner.Dispose()
	if oldQueue.parent != nil {
		oldQueue.parent.RemoveChild(oldQueue)
	}
}

// Pending is a reactive view of whether any descendant cell of the
// boundary is currently LOADING.
func (b *SuspenseBoundary) Pending() ReadonlySignal[bool] { return b.isPending }

// Mode reports the boundary's configured SuspenseMode.
func (b *SuspenseBoundary) Mode() SuspenseMode { return b.mode }

// Queue exposes the boundary's child queue, for hosts that need to
// drive it directly (e.g. flushing just this subtree).
func (b *SuspenseBoundary) Queue() *Queue { return b.queue }

// Dispose tears down the boundary's subtree and detaches its queue from
// the parent tree.
func (b *SuspenseBoundary) Dispose() {
	b.owner.Dispose()
	if b.queue.parent != nil {
		b.queue.parent.RemoveChild(b.queue)
	}
}

// ErrorBoundary installs a child queue that intercepts ERROR
// notifications from its subtree, recording the most recently reported
// error (a descendant leaving ERROR clears it) and exposing a Reset to
// retry (spec §4.6).
type ErrorBoundary struct {
	owner   *Owner
	queue   *Queue
	errSig  *signal[error]
	onError func(error)
}

// CreateErrorBoundary installs an error boundary as a child of the
// current owner's scope. onError, if non-nil, runs for every non-nil
// error a descendant reports (after it has been recorded on Error()); an
// error that propagates through several cells of the subtree reaches it
// once per cell.
func CreateErrorBoundary(onError func(error)) *ErrorBoundary {
	parent := currentOwner
	owner := newChildOwner(parent)
	childQueue := NewQueue()
	if parent != nil {
		if pq := parent.Queue(); pq != nil {
			pq.AddChild(childQueue)
		}
	}
	owner.queue = childQueue

	eb := &ErrorBoundary{owner: owner, queue: childQueue, onError: onError}
	eb.errSig = NewSignalWithOptions[error](nil, Options[error]{Name: "errorBoundary.error"}).(*signal[error])

	childQueue.notifyFn = func(source *Cell, mask Flags, value any) bool {
		if mask&FlagError == 0 {
			return false
		}
		err, _ := value.(error)
		eb.errSig.Set(err)
		if eb.onError != nil && err != nil {
			eb.onError(err)
		}
		return true
	}

	return eb
}

// Run executes fn with the boundary's owner installed as current.
func (b *ErrorBoundary) Run(fn func()) {
	RunWithOwner(b.owner, func() any { fn(); return nil })
}

// Error is a reactive view of the captured error, nil until one of the
// boundary's descendants reports ERROR.
func (b *ErrorBoundary) Error() ReadonlySignal[error] { return b.errSig.AsReadonly() }

// Reset clears the captured error. It does not itself reconstruct the
// subtree: the host calls Reset and then re-invokes Run with the
// subtree-building function to replay it against a clean boundary.
func (b *ErrorBoundary) Reset() { b.errSig.Set(nil) }

// Queue exposes the boundary's child queue.
func (b *ErrorBoundary) Queue() *Queue { return b.queue }

// Dispose tears down the boundary's subtree and detaches its queue from
// the parent tree.
func (b *ErrorBoundary) Dispose() {
	b.owner.Dispose()
	if b.queue.parent != nil {
		b.queue.parent.RemoveChild(b.queue)
	}
}
