package reactive

import "testing"

func BenchmarkEffect_Create(b *testing.B) {
	count := NewSignal(0)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ref := UserEffect(
			func(prev int) int { return count.Get() },
			func(current, prev int) func() { return nil },
		)
		ref.Stop()
	}
}

func BenchmarkEffect_CreateMultipleDeps(b *testing.B) {
	s1 := NewSignal(0)
	s2 := NewSignal("test")
	s3 := NewSignal(true)

	type snapshot struct {
		a int
		b string
		c bool
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ref := UserEffect(
			func(prev snapshot) snapshot { return snapshot{s1.Get(), s2.Get(), s3.Get()} },
			func(current, prev snapshot) func() { return nil },
		)
		ref.Stop()
	}
}

func BenchmarkEffect_Execute(b *testing.B) {
	count := NewSignal(0)

	ref := UserEffect(
		func(prev int) int { return count.Get() },
		func(current, prev int) func() { return nil },
	)
	defer ref.Stop()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		count.Set(i)
	}
}

func BenchmarkEffect_ExecuteWithComputation(b *testing.B) {
	count := NewSignal(0)
	var result int

	ref := UserEffect(
		func(prev int) int { return count.Get() },
		func(current, prev int) func() {
			result = current * current
			return nil
		},
	)
	defer ref.Stop()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		count.Set(i)
	}
	_ = result
}

func BenchmarkEffect_Stop(b *testing.B) {
	refs := make([]EffectRef, b.N)
	count := NewSignal(0)

	for i := 0; i < b.N; i++ {
		refs[i] = UserEffect(
			func(prev int) int { return count.Get() },
			func(current, prev int) func() { return nil },
		)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		refs[i].Stop()
	}
}

func BenchmarkEffect_WithCleanup(b *testing.B) {
	count := NewSignal(0)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ref := UserEffect(
			func(prev int) int { return count.Get() },
			func(current, prev int) func() { return func() {} },
		)
		ref.Stop()
	}
}

func BenchmarkEffect_CleanupExecution(b *testing.B) {
	count := NewSignal(0)

	ref := UserEffect(
		func(prev int) int { return count.Get() },
		func(current, prev int) func() { return func() {} },
	)
	defer ref.Stop()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		count.Set(i)
	}
}

func BenchmarkEffect_ManyEffectsOneSignal(b *testing.B) {
	count := NewSignal(0)
	refs := make([]EffectRef, 100)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for j := 0; j < 100; j++ {
			refs[j] = UserEffect(
				func(prev int) int { return count.Get() },
				func(current, prev int) func() { return nil },
			)
		}

		count.Set(i)

		for j := 0; j < 100; j++ {
			refs[j].Stop()
		}
	}
}

func BenchmarkEffect_ChainedComputed(b *testing.B) {
	base := NewSignal(0)
	doubled := Computed(func() int { return base.Get() * 2 })

	var result int
	ref := UserEffect(
		func(prev int) int { return doubled.Get() },
		func(current, prev int) func() {
			result = current
			return nil
		},
	)
	defer ref.Stop()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		base.Set(i)
	}
	_ = result
}

func BenchmarkEffect_NoCleanup(b *testing.B) {
	count := NewSignal(0)

	ref := UserEffect(
		func(prev int) int { return count.Get() },
		func(current, prev int) func() { return nil },
	)
	defer ref.Stop()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		count.Set(i)
	}
}

func BenchmarkEffect_WithCleanupExecution(b *testing.B) {
	count := NewSignal(0)
	cleanupCounter := 0

	ref := UserEffect(
		func(prev int) int { return count.Get() },
		func(current, prev int) func() {
			return func() { cleanupCounter++ }
		},
	)
	defer ref.Stop()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		count.Set(i)
	}
}

func BenchmarkEffect_RenderTier(b *testing.B) {
	count := NewSignal(0)

	ref := RenderEffect(
		func(prev int) int { return count.Get() },
		func(current, prev int) func() { return nil },
	)
	defer ref.Stop()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		count.Set(i)
	}
}
