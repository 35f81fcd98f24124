package reactive

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestComputed_Basic(t *testing.T) {
	count := NewSignal(5)

	doubled := Computed(func() int { return count.Get() * 2 })

	require.Equal(t, 10, doubled.Get())

	count.Set(10)
	require.Equal(t, 20, doubled.Get())
}

func TestComputed_MultipleDependencies(t *testing.T) {
	firstName := NewSignal("John")
	lastName := NewSignal("Doe")

	fullName := Computed(func() string {
		return firstName.Get() + " " + lastName.Get()
	})

	require.Equal(t, "John Doe", fullName.Get())

	firstName.Set("Jane")
	require.Equal(t, "Jane Doe", fullName.Get())

	lastName.Set("Smith")
	require.Equal(t, "Jane Smith", fullName.Get())
}

func TestComputed_Memoization(t *testing.T) {
	count := NewSignal(5)
	computeCount := 0

	doubled := Computed(func() int {
		computeCount++
		return count.Get() * 2
	})

	doubled.Get()
	require.Equal(t, 1, computeCount, "first Get computes once")

	doubled.Get()
	doubled.Get()
	require.Equal(t, 1, computeCount, "further Gets are memoized")

	count.Set(10)
	doubled.Get()
	require.Equal(t, 2, computeCount, "a dependency change forces exactly one recompute")
}

func TestComputed_Subscribe(t *testing.T) {
	count := NewSignal(0)
	doubled := Computed(func() int { return count.Get() * 2 })

	var calls []int
	unsub := doubled.SubscribeForever(func(v int) { calls = append(calls, v) })
	defer unsub()

	count.Set(5)
	count.Set(10)

	require.Equal(t, []int{10, 20}, calls)
}

func TestComputed_Unsubscribe(t *testing.T) {
	count := NewSignal(0)
	doubled := Computed(func() int { return count.Get() * 2 })

	var called int
	unsub := doubled.SubscribeForever(func(v int) { called++ })

	count.Set(5)
	require.Equal(t, 1, called)

	unsub()

	count.Set(10)
	require.Equal(t, 1, called, "no new calls after unsubscribe")
}

func TestComputed_ContextCancel(t *testing.T) {
	count := NewSignal(0)
	doubled := Computed(func() int { return count.Get() * 2 })

	ctx, cancel := context.WithCancel(context.Background())
	var called int
	doubled.Subscribe(ctx, func(v int) { called++ })

	count.Set(5)
	require.Equal(t, 1, called)

	cancel()
	time.Sleep(10 * time.Millisecond)

	count.Set(10)
	require.Equal(t, 1, called, "no new calls after context cancel")
}

// A panic inside compute is not silently swallowed in favor of a stale
// value (unlike the teacher library): it puts the Computed into the
// ERROR state, and the error re-raises from every subsequent Get until
// a dependency recomputes successfully.
func TestComputed_PanicPropagatesAsError(t *testing.T) {
	count := NewSignal(0)

	comp := Computed(func() int {
		if count.Get() == 5 {
			panic("compute panic")
		}
		return count.Get() * 2
	})

	require.Equal(t, 0, comp.Get())

	count.Set(5)
	require.Panics(t, func() { comp.Get() })
	require.True(t, comp.cell().IsError())

	count.Set(10)
	require.Equal(t, 20, comp.Get())
	require.False(t, comp.cell().IsError())
}

func TestComputed_ChainedComputed(t *testing.T) {
	count := NewSignal(5)

	doubled := Computed(func() int { return count.Get() * 2 })
	quadrupled := Computed(func() int { return doubled.Get() * 2 })

	require.Equal(t, 20, quadrupled.Get())

	count.Set(10)
	require.Equal(t, 40, quadrupled.Get())
}

// A Computed that has never been read has not registered itself as an
// observer of its would-be dependencies, so writes to those signals
// before the first Get do not drive any recomputation — demand-driven
// recomputation, taken to its logical conclusion.
func TestComputed_NeverReadNeverRecomputes(t *testing.T) {
	count := NewSignal(0)
	computeCount := 0

	comp := Computed(func() int {
		computeCount++
		return count.Get() * 2
	})

	for i := 0; i < 100; i++ {
		count.Set(i)
	}
	require.Equal(t, 0, computeCount, "no read has happened yet")

	result := comp.Get()
	require.Equal(t, 1, computeCount)
	require.Equal(t, 198, result) // 99 * 2
}

// Stopping every subscription returns the source signal's observer list
// to empty — the graph-based replacement for the teacher library's
// subscriber-map bookkeeping.
func TestComputed_UnsubscribeLeavesNoObserverEdges(t *testing.T) {
	count := NewSignal(0)
	comp := Computed(func() int { return count.Get() * 2 })
	comp.Get()

	for i := 0; i < 50; i++ {
		unsub := comp.SubscribeForever(func(v int) {})
		unsub()
	}

	require.Empty(t, comp.cell().observers)
}
