package main

import (
	"errors"
	"fmt"

	"github.com/coregx/reactive"
)

func main() {
	demoBasicSignals()
	demoComputedSignals()
	demoEffects()
	demoErrorAndLoading()
	demoBoundaries()
	fmt.Println("\n=== Demo Complete ===")
}

func demoBasicSignals() {
	fmt.Println("=== Phase 1: Basic Signals ===")

	s := reactive.NewSignal("test")

	unsub := s.SubscribeForever(func(v string) {
		fmt.Println("Signal changed:", v)
	})
	defer unsub()

	fmt.Println("Current value:", s.Get())

	s.Set("test1")

	s.Update(func(v string) string {
		return v + "_updated"
	})
}

func demoComputedSignals() {
	fmt.Println("\n=== Phase 2: Computed Signals ===")

	// Dependencies are discovered automatically from the reads inside
	// compute — there is no explicit dependency list to pass.
	count := reactive.NewSignal(5)
	doubled := reactive.Computed(func() int {
		return count.Get() * 2
	})

	fmt.Printf("count = %d, doubled = %d\n", count.Get(), doubled.Get())

	count.Set(10)
	fmt.Printf("After count.Set(10): doubled = %d\n", doubled.Get())

	firstName := reactive.NewSignal("John")
	lastName := reactive.NewSignal("Doe")

	fullName := reactive.Computed(func() string {
		return firstName.Get() + " " + lastName.Get()
	})

	fmt.Printf("\nFull name: %s\n", fullName.Get())

	firstName.Set("Jane")
	fmt.Printf("After firstName.Set('Jane'): %s\n", fullName.Get())

	quadrupled := reactive.Computed(func() int {
		return doubled.Get() * 2
	})

	fmt.Printf("\ncount = %d, quadrupled = %d\n", count.Get(), quadrupled.Get())

	count.Set(5)
	fmt.Printf("After count.Set(5): quadrupled = %d\n", quadrupled.Get())

	fmt.Println("\nSubscribing to computed signal...")
	unsubComputed := fullName.SubscribeForever(func(v string) {
		fmt.Println("Full name changed:", v)
	})
	defer unsubComputed()

	lastName.Set("Smith")
}

func demoEffects() {
	fmt.Println("\n=== Phase 3: Effects ===")
	demoBasicEffect()
	demoEffectWithCleanup()
	demoEffectTiers()
}

func demoBasicEffect() {
	fmt.Println("\nCreating a user effect (tracking half runs immediately)...")
	effectCount := reactive.NewSignal(0)

	ref := reactive.UserEffect(
		func(prev int) int { return effectCount.Get() },
		func(current, prev int) func() {
			fmt.Printf("Effect running! Count is: %d (was %d)\n", current, prev)
			return nil
		},
	)
	defer ref.Stop()

	effectCount.Set(5)
	effectCount.Set(10)
}

func demoEffectWithCleanup() {
	fmt.Println("\nEffect with cleanup:")
	timer := reactive.NewSignal(0)

	ref := reactive.UserEffect(
		func(prev int) int { return timer.Get() },
		func(current, prev int) func() {
			fmt.Printf("Starting timer with value: %d\n", current)
			return func() {
				fmt.Printf("Cleaning up timer value: %d\n", current)
			}
		},
	)

	timer.Set(1)
	timer.Set(2)
	ref.Stop()
}

func demoEffectTiers() {
	fmt.Println("\nRender effect fires before user effect in the same flush:")
	value := reactive.NewSignal(1)

	renderRef := reactive.RenderEffect(
		func(prev int) int { return value.Get() },
		func(current, prev int) func() {
			fmt.Printf("[render] value=%d\n", current)
			return nil
		},
	)
	defer renderRef.Stop()

	userRef := reactive.UserEffect(
		func(prev int) int { return value.Get() },
		func(current, prev int) func() {
			fmt.Printf("[user]   value=%d\n", current)
			return nil
		},
	)
	defer userRef.Stop()

	value.Set(2)
}

func demoErrorAndLoading() {
	fmt.Println("\n=== Phase 4: Error and Loading States ===")

	src := reactive.NewSignal(1)
	derived := reactive.Computed(func() int { return src.Get() * 10 })

	fmt.Println("Marking the source as loading...")
	src.MarkLoading()
	fmt.Println("derived.IsLoading() observers would see NotReadyError from Get()")

	src.SetError(errors.New("upstream fetch failed"))
	func() {
		defer func() {
			if r := recover(); r != nil {
				fmt.Println("Get() on an erroring computed panics with:", r)
			}
		}()
		_ = derived.Get()
	}()

	src.Set(7)
	fmt.Println("After a fresh Set, derived recovers:", derived.Get())
}

func demoBoundaries() {
	fmt.Println("\n=== Phase 5: Boundaries ===")

	eb := reactive.CreateErrorBoundary(func(err error) {
		fmt.Println("[error boundary] captured:", err)
	})
	risky := reactive.NewSignal(1)
	eb.Run(func() {
		reactive.UserEffect(
			func(prev int) int {
				v := risky.Get()
				if v < 0 {
					panic(errors.New("negative value not allowed"))
				}
				return v
			},
			func(current, prev int) func() {
				fmt.Println("[error boundary] effect saw:", current)
				return nil
			},
		)
	})
	risky.Set(-1)
	fmt.Println("boundary error signal:", eb.Error().Get())
	eb.Reset()

	sb := reactive.CreateSuspense(reactive.SuspenseShowStale)
	remote := reactive.NewSignal(0)
	sb.Run(func() {
		reactive.UserEffect(
			func(prev int) int { return remote.Get() },
			func(current, prev int) func() {
				fmt.Println("[suspense] value:", current)
				return nil
			},
		)
	})
	remote.MarkLoading()
	fmt.Println("suspense pending:", sb.Pending().Get())
	remote.Set(42)
	fmt.Println("suspense pending:", sb.Pending().Get())
}
