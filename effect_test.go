package reactive

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEffect_ImmediateExecution(t *testing.T) {
	count := NewSignal(0)
	executed := false

	ref := UserEffect(
		func(prev int) int { return count.Get() },
		func(current, prev int) func() {
			executed = true
			return nil
		},
	)
	defer ref.Stop()

	require.True(t, executed, "the tracking+effect pair runs on construction")
}

func TestEffect_DependencyChange(t *testing.T) {
	count := NewSignal(0)
	runs := 0

	ref := UserEffect(
		func(prev int) int { return count.Get() },
		func(current, prev int) func() {
			runs++
			return nil
		},
	)
	defer ref.Stop()

	require.Equal(t, 1, runs)

	count.Set(5)
	require.Equal(t, 2, runs)

	count.Set(10)
	require.Equal(t, 3, runs)
}

func TestEffect_MultipleDependencies(t *testing.T) {
	firstName := NewSignal("John")
	lastName := NewSignal("Doe")
	var log []string

	ref := UserEffect(
		func(prev string) string { return firstName.Get() + " " + lastName.Get() },
		func(current, prev string) func() {
			log = append(log, current)
			return nil
		},
	)
	defer ref.Stop()

	require.Equal(t, []string{"John Doe"}, log)

	firstName.Set("Jane")
	require.Equal(t, []string{"John Doe", "Jane Doe"}, log)

	lastName.Set("Smith")
	require.Equal(t, []string{"John Doe", "Jane Doe", "Jane Smith"}, log)
}

// Cleanup from the previous effect body runs strictly before the next
// one, and before Stop's final cleanup — spec §5.
func TestEffect_CleanupOrdering(t *testing.T) {
	count := NewSignal(0)
	var events []string

	ref := UserEffect(
		func(prev int) int { return count.Get() },
		func(current, prev int) func() {
			events = append(events, fmt.Sprintf("effect-%d", current))
			return func() {
				events = append(events, fmt.Sprintf("cleanup-%d", current))
			}
		},
	)

	require.Equal(t, []string{"effect-0"}, events)

	count.Set(1)
	require.Equal(t, []string{"effect-0", "cleanup-0", "effect-1"}, events)

	count.Set(2)
	require.Equal(t, []string{"effect-0", "cleanup-0", "effect-1", "cleanup-1", "effect-2"}, events)

	ref.Stop()
	require.Equal(t, []string{
		"effect-0", "cleanup-0", "effect-1", "cleanup-1", "effect-2", "cleanup-2",
	}, events)
}

func TestEffect_StopPreventsFurtherRuns(t *testing.T) {
	count := NewSignal(0)
	runs := 0

	ref := UserEffect(
		func(prev int) int { return count.Get() },
		func(current, prev int) func() {
			runs++
			return nil
		},
	)

	require.Equal(t, 1, runs)
	ref.Stop()

	count.Set(5)
	require.Equal(t, 1, runs, "a disposed effect cell never recomputes")
}

func TestEffect_StopIsIdempotent(t *testing.T) {
	count := NewSignal(0)
	cleanups := 0

	ref := UserEffect(
		func(prev int) int { return count.Get() },
		func(current, prev int) func() {
			return func() { cleanups++ }
		},
	)

	ref.Stop()
	ref.Stop()
	ref.Stop()

	require.Equal(t, 1, cleanups)
}

// NotReady during compute suppresses the effect body for that flush; it
// remains pending rather than firing with stale data (spec §4.3).
func TestEffect_NotReadySuppressesEffectBody(t *testing.T) {
	src := NewSignal(1)
	var observed []int

	ref := UserEffect(
		func(prev int) int { return src.Get() },
		func(current, prev int) func() {
			observed = append(observed, current)
			return nil
		},
	)
	defer ref.Stop()

	require.Equal(t, []int{1}, observed)

	src.MarkLoading()
	require.Equal(t, []int{1}, observed, "loading compute does not enqueue the effect body")

	src.Set(2)
	require.Equal(t, []int{1, 2}, observed)
}

// An error thrown by compute invokes the effect's ErrorHandler before
// falling back to the owner chain, and does not run the effect body.
func TestEffect_ErrorHandlerInterceptsComputeError(t *testing.T) {
	src := NewSignal(1)
	var handledErrors []error
	var observed []int

	ref := UserEffect(
		func(prev int) int {
			v := src.Get()
			if v < 0 {
				panic(errors.New("negative"))
			}
			return v
		},
		func(current, prev int) func() {
			observed = append(observed, current)
			return nil
		},
		EffectOptions[int]{
			ErrorHandler: func(err error) bool {
				handledErrors = append(handledErrors, err)
				return true
			},
		},
	)
	defer ref.Stop()

	require.Equal(t, []int{1}, observed)

	src.Set(-1)
	require.Len(t, handledErrors, 1)
	require.EqualError(t, handledErrors[0], "negative")
	require.Equal(t, []int{1}, observed, "effect body does not run for a failed compute")

	src.Set(3)
	require.Equal(t, []int{1, 3}, observed)
}

// Render-tier effects commit before user-tier effects within the same
// flush, regardless of construction order.
func TestEffect_RenderRunsBeforeUser(t *testing.T) {
	value := NewSignal(1)
	var order []string

	userRef := UserEffect(
		func(prev int) int { return value.Get() },
		func(current, prev int) func() {
			order = append(order, "user")
			return nil
		},
	)
	defer userRef.Stop()

	renderRef := RenderEffect(
		func(prev int) int { return value.Get() },
		func(current, prev int) func() {
			order = append(order, "render")
			return nil
		},
	)
	defer renderRef.Stop()

	order = nil // discard the two independent construction-time runs
	value.Set(2)

	require.Equal(t, []string{"render", "user"}, order)
}

func TestEffect_TracksComputedDependency(t *testing.T) {
	base := NewSignal(5)
	doubled := Computed(func() int { return base.Get() * 2 })

	var log []int
	ref := UserEffect(
		func(prev int) int { return doubled.Get() },
		func(current, prev int) func() {
			log = append(log, current)
			return nil
		},
	)
	defer ref.Stop()

	require.Equal(t, []int{10}, log)

	base.Set(7)
	require.Equal(t, []int{10, 14}, log)
}

func TestEffect_NoExplicitDependencies(t *testing.T) {
	executed := false

	ref := UserEffect(
		func(prev int) int { return 0 },
		func(current, prev int) func() {
			executed = true
			return nil
		},
	)
	defer ref.Stop()

	require.True(t, executed, "an effect with no signal reads still runs once on construction")
}
