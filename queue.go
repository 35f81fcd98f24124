package reactive

// Tier selects which effect slot a queued task belongs to.
type Tier uint8

const (
	// TierPure runs during the pure phase: demand-driven recomputation of
	// signals/computations and EagerComputation bodies.
	TierPure Tier = iota
	// TierRender runs during the render phase, strictly before TierUser.
	TierRender
	// TierUser runs during the user phase, after TierRender.
	TierUser

	tierCount = 3
)

// Scheduler is the host microtask facility: schedule fn to run after the
// current synchronous region. The core never calls this synchronously
// from within itself; it is only used to request a future flush. The
// default, installed on the root queue, runs fn immediately (a
// synchronous trampoline), since the core has no real asynchronous host
// to cede to — hosts embedding this runtime in an actual event loop
// install their own Scheduler.
type Scheduler func(fn func())

func defaultScheduler(fn func()) { fn() }

// DefaultMaxFlushIterations bounds flushSync's outer loop, catching
// infinite update loops (an effect that writes to what it reads) with a
// diagnostic instead of hanging, per spec §4.4/§7.
const DefaultMaxFlushIterations = 100_000

// Queue is a node in the tree of scheduler queues. A boundary (suspense or
// error boundary) installs a child Queue for its subtree; every
// computation's owner holds the nearest enclosing queue.
type Queue struct {
	parent   *Queue
	children []*Queue

	slots [tierCount][]func()

	running  bool
	paused   bool
	batching bool

	// reschedulePending is set on the root when a flush has been handed
	// to the scheduler and its callback has not run yet; further flush
	// requests are dropped until that callback clears it.
	reschedulePending bool

	scheduler Scheduler

	// MaxFlushIterations bounds flushSync's loop. Zero means use
	// DefaultMaxFlushIterations. Exposed for tests that want a tighter
	// bound than the production default.
	MaxFlushIterations int

	// notifyFn, when set, intercepts notify() before it is forwarded to
	// the parent — used by boundaries to gate LOADING/ERROR propagation.
	// Returning true means "absorbed here, do not forward".
	notifyFn func(source *Cell, mask Flags, value any) bool

	// retained holds work recorded while paused, replayed on resume.
	retained [tierCount][]func()
}

// NewQueue creates a standalone queue with the default synchronous
// scheduler. Use NewRootQueue for the queue backing a root owner, or
// AddChild to attach a boundary's queue beneath an existing one.
func NewQueue() *Queue {
	return &Queue{scheduler: defaultScheduler}
}

// NewRootQueue is an alias of NewQueue kept for symmetry with createRoot;
// the root and any standalone queue behave identically, only their
// position in the tree differs.
func NewRootQueue() *Queue { return NewQueue() }

// SetScheduler overrides the host microtask facility used to request a
// flush. Pass nil to restore the synchronous default.
func (q *Queue) SetScheduler(s Scheduler) {
	if s == nil {
		s = defaultScheduler
	}
	q.scheduler = s
}

// AddChild attaches child beneath q, in insertion order.
func (q *Queue) AddChild(child *Queue) {
	child.parent = q
	q.children = append(q.children, child)
}

// RemoveChild detaches child from q, if present.
func (q *Queue) RemoveChild(child *Queue) {
	for i, c := range q.children {
		if c == child {
			q.children = append(q.children[:i], q.children[i+1:]...)
			child.parent = nil
			return
		}
	}
}

// enqueue appends task to the named tier's slot. flush always runs the
// render and user tiers after the pure phase reaches a fixed point, so a
// render/user task needs no separate presence marker in the pure slot —
// only genuine pure-phase work (recomputation) belongs there. A
// reschedule is requested via the host scheduler unless a flush is
// already running on the root of this queue's tree.
func (q *Queue) enqueue(tier Tier, task func()) {
	q.slots[tier] = append(q.slots[tier], task)
	q.requestFlush()
}

func (q *Queue) requestFlush() {
	root := q.root()
	if root.batching {
		return
	}
	if root.running {
		return
	}
	if root.reschedulePending {
		return
	}
	root.reschedulePending = true
	root.scheduler(func() {
		root.reschedulePending = false
		root.flushSync()
	})
}

func (q *Queue) root() *Queue {
	r := q
	for r.parent != nil {
		r = r.parent
	}
	return r
}

// hasPureWork reports whether this queue or any descendant has pending
// pure-phase work.
func (q *Queue) hasPureWork() bool {
	if len(q.slots[TierPure]) > 0 {
		return true
	}
	for _, c := range q.children {
		if c.hasPureWork() {
			return true
		}
	}
	return false
}

// run drains the named slot for this queue and, recursively, its
// children in insertion order. For TierPure it additionally returns
// whether more pure work exists anywhere in the subtree after draining
// (new pure work can be enqueued by the tasks that just ran).
func (q *Queue) run(tier Tier) (more bool) {
	if q.paused {
		// Effect phases do not run while paused; pure work still drains
		// so dependency graphs inside a suspended subtree stay
		// consistent, but render/user effects are retained instead of
		// fired.
		if tier != TierPure {
			q.retained[tier] = append(q.retained[tier], q.slots[tier]...)
			q.slots[tier] = nil
			for _, c := range q.children {
				c.run(tier)
			}
			return false
		}
	}

	tasks := q.slots[tier]
	q.slots[tier] = nil
	for _, t := range tasks {
		t()
	}

	for _, c := range q.children {
		if c.run(tier) {
			more = true
		}
	}

	if tier == TierPure {
		more = more || len(q.slots[TierPure]) > 0
	}
	return more
}

// flush runs the pure phase to a fixed point, advances the clock exactly
// once (if pure work was performed), then runs render and user. It is
// reentrancy-guarded: a flush already running absorbs nested requests
// instead of recursing. The pure fixed-point loop is bounded by the same
// MaxFlushIterations as flushSync, so a cell that keeps marking itself
// (or a cycle of cells that keep marking each other) dirty every pass
// panics with a diagnostic instead of hanging this call forever.
func (q *Queue) flush() {
	root := q.root()
	if root.running {
		return
	}
	root.running = true
	defer func() { root.running = false }()

	limit := root.MaxFlushIterations
	if limit <= 0 {
		limit = DefaultMaxFlushIterations
	}

	didWork := false
	for i := 0; root.hasPureWork(); i++ {
		if i >= limit {
			err := &CycleError{Reason: "pure phase exceeded iteration bound"}
			logCycle(err)
			panic(err)
		}
		didWork = true
		root.run(TierPure)
	}
	if didWork {
		tickClock()
	}
	root.run(TierRender)
	root.run(TierUser)
}

// FlushSync runs flushSync: an explicit, synchronous flush of q's whole
// queue tree, for hosts that flush without waiting on the Scheduler.
func (q *Queue) FlushSync() { q.flushSync() }

// flushSync repeatedly flushes the root of q's tree until no pure or
// render/user work remains, bounded by MaxFlushIterations to catch
// infinite update loops. Each call is a complete, synchronous drain of
// the scheduler.
func (q *Queue) flushSync() {
	root := q.root()
	limit := root.MaxFlushIterations
	if limit <= 0 {
		limit = DefaultMaxFlushIterations
	}

	for i := 0; ; i++ {
		if i >= limit {
			err := &CycleError{Reason: "flushSync exceeded iteration bound"}
			logCycle(err)
			panic(err)
		}
		root.flush()
		if !root.hasPureWork() && !root.anyChildHasEffectWork() {
			return
		}
	}
}

func (q *Queue) anyChildHasEffectWork() bool {
	for _, t := range [2]Tier{TierRender, TierUser} {
		if len(q.slots[t]) > 0 {
			return true
		}
	}
	for _, c := range q.children {
		if c.anyChildHasEffectWork() {
			return true
		}
	}
	return false
}

// Pause puts q into paused mode: its render/user phases return
// immediately without firing effects, while pure work (and notification
// aggregation) still proceeds. Used by suspense boundaries while their
// subtree is not yet quiescent.
func (q *Queue) Pause() { q.paused = true }

// Resume takes q out of paused mode and replays retained render/user
// work recorded while paused.
func (q *Queue) Resume() {
	if !q.paused {
		return
	}
	q.paused = false
	for t := Tier(0); t < tierCount; t++ {
		if len(q.retained[t]) == 0 {
			continue
		}
		q.slots[t] = append(q.retained[t], q.slots[t]...)
		q.retained[t] = nil
	}
	q.requestFlush()
}

// IsPaused reports whether q is currently paused.
func (q *Queue) IsPaused() bool { return q.paused }

// notify reports a cell's LOADING/ERROR transition up the queue tree.
// Default behavior forwards to the parent; a queue installed by a
// boundary intercepts via notifyFn and may absorb the notification
// instead of forwarding it. Returns true if some queue in the chain
// absorbed the notification.
func (q *Queue) notify(source *Cell, mask Flags, value any) bool {
	if q.notifyFn != nil && q.notifyFn(source, mask, value) {
		return true
	}
	if q.parent != nil {
		return q.parent.notify(source, mask, value)
	}
	return false
}

// Stats reports pending task counts per tier for q alone (not its
// children), for host introspection/debugging.
type Stats struct {
	Pure, Render, User int
	Paused             bool
	Children           int
}

// Stats returns q's current scheduling stats.
func (q *Queue) Stats() Stats {
	return Stats{
		Pure:     len(q.slots[TierPure]),
		Render:   len(q.slots[TierRender]),
		User:     len(q.slots[TierUser]),
		Paused:   q.paused,
		Children: len(q.children),
	}
}
