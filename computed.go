package reactive

// Computed creates a read-only signal that lazily derives its value from
// compute. Unlike the teacher library's Computed, dependencies are never
// passed explicitly: every Signal/Computed Get() called from inside
// compute, directly or through other Computed values, registers itself
// as a dependency for this call only, and is re-derived on the next
// recompute (spec's "dynamic dependencies" — a compute function that
// branches may depend on a different source set each run).
//
// compute MUST be pure: read signals and return a value, with no side
// effects. A Computed only recomputes when read after being marked
// CHECK/DIRTY (demand-driven, never eagerly scheduled), and the result
// is memoized until a dependency actually produces a different value
// (spec §4.2's "at most one recompute per cell per flush" plus the
// update algorithm's CHECK short-circuit).
//
// If compute panics with *NotReadyError, Get() re-raises it until a
// dependency resolves; if it panics with any other error, Get()
// re-raises that error until a dependency changes.
//
// Example:
//
//	firstName := reactive.NewSignal("John")
//	lastName := reactive.NewSignal("Doe")
//
//	fullName := reactive.Computed(func() string {
//	    return firstName.Get() + " " + lastName.Get()
//	})
//
//	fmt.Println(fullName.Get())  // "John Doe"
//	firstName.Set("Jane")
//	fmt.Println(fullName.Get())  // "Jane Doe"
func Computed[T any](compute func() T) ReadonlySignal[T] {
	return ComputedWithOptions(compute, Options[T]{})
}

// ComputedWithOptions creates a Computed with a custom equality
// predicate and/or debug name.
func ComputedWithOptions[T any](compute func() T, opts Options[T]) ReadonlySignal[T] {
	equal, name := opts.erase()
	wrapped := func(prev any) any { return compute() }
	return &readonlySignal[T]{c: newCell(kindComputation, zeroOf[T](), wrapped, equal, name)}
}

func zeroOf[T any]() any {
	var zero T
	return zero
}
