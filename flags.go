package reactive

// Flags is the per-cell state bitset described in the data model: a
// freshness tri-state (clean/check/dirty, mutually exclusive) plus two
// independent propagation bits (loading/error).
type Flags uint8

const (
	// FlagClean is the zero value: the cell's value is current and every
	// source is clean.
	FlagClean Flags = 0

	// FlagCheck marks that a transitive upstream changed, but this cell's
	// value may still turn out to be equal once recomputed.
	FlagCheck Flags = 1 << iota

	// FlagDirty marks the cell as known out-of-date; it dominates
	// FlagCheck (a cell is never both check and dirty at once).
	FlagDirty

	// FlagLoading marks that an upstream read is in a waiting state.
	FlagLoading

	// FlagError marks that the cell is propagating a stored error.
	FlagError
)

// freshnessMask isolates the mutually-exclusive clean/check/dirty bits
// from the independent loading/error bits.
const freshnessMask = FlagCheck | FlagDirty

// isClean reports whether neither check nor dirty is set.
func (f Flags) isClean() bool { return f&freshnessMask == 0 }

// isDirty reports whether the dirty bit dominates.
func (f Flags) isDirty() bool { return f&FlagDirty != 0 }

// isCheck reports whether check is set without dirty.
func (f Flags) isCheck() bool { return f&freshnessMask == FlagCheck }

// needsUpdate reports whether the cell must run `update` before it can be
// read as clean.
func (f Flags) needsUpdate() bool { return !f.isClean() }

// withFreshness replaces the freshness bits, preserving loading/error.
func (f Flags) withFreshness(fresh Flags) Flags {
	return (f &^ freshnessMask) | (fresh & freshnessMask)
}

// withoutFreshness clears check/dirty, leaving loading/error untouched.
func (f Flags) withoutFreshness() Flags { return f &^ freshnessMask }

// markCheckFlags promotes clean to check; leaves dirty (or check) as-is,
// since check never downgrades dirty.
func markCheckFlags(f Flags) Flags {
	if f.isDirty() {
		return f
	}
	return f.withFreshness(FlagCheck)
}

// markDirtyFlags promotes to dirty unconditionally.
func markDirtyFlags(f Flags) Flags {
	return f.withFreshness(FlagDirty)
}

// globalClock is the process-wide monotonically non-decreasing counter
// described in the data model. The runtime is single-threaded cooperative
// (spec non-goal: parallelism), so unlike the teacher's atomic counters
// this is a plain package variable.
var globalClock uint64

// Clock returns the current value of the global flush clock.
func Clock() uint64 { return globalClock }

// tickClock advances the clock by exactly one, called once per flush that
// performed pure-phase work, between the pure fixed point and the render
// phase.
func tickClock() uint64 {
	globalClock++
	return globalClock
}

// changeClock is a separate monotonic counter stamped onto a cell's
// changedAt every time its value actually changes — a write that passes
// its equality check, or a recompute that produces a new value. It is
// independent of globalClock: globalClock only advances once per flush
// that performed pure-phase work, but a plain Signal/Computed chain with
// no effect attached never enqueues pure-phase work at all, so it would
// never tick globalClock even though values genuinely changed. HasUpdated
// needs to see every value change, not just ones that happen to coincide
// with a flush, so it is backed by this counter instead of Clock().
var changeClock uint64

// ChangeClock returns the current value of the change counter — the
// baseline to capture for a later HasUpdated(s, since) call.
func ChangeClock() uint64 { return changeClock }

// nextChangeClock advances and returns the change counter, called
// wherever a cell's changedAt is stamped.
func nextChangeClock() uint64 {
	changeClock++
	return changeClock
}
