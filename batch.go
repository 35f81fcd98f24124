package reactive

// Batch suppresses automatic flush scheduling for every write made
// inside fn, running at most one flush once fn returns. Under the
// default synchronous scheduler, each write made outside a running flush
// triggers a flush of its own, so consecutive writes are otherwise
// observed one at a time; Batch groups them into a single flush — e.g.
// for a test asserting an in-progress intermediate state is never
// observed — and nests cleanly: only the outermost Batch triggers the
// deferred flush.
func Batch(fn func()) {
	root := currentQueueOrDefault().root()
	wasBatching := root.batching
	root.batching = true
	defer func() {
		root.batching = wasBatching
		if !wasBatching {
			root.requestFlush()
		}
	}()
	fn()
}

// currentQueueOrDefault returns the queue responsible for the current
// owner's scope, or the default root queue when no owner is installed —
// the same fallback newCell uses for a bare package-level cell.
func currentQueueOrDefault() *Queue {
	if currentOwner != nil {
		if q := currentOwner.Queue(); q != nil {
			return q
		}
	}
	return defaultQueue()
}
