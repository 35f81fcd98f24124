package reactive

import (
	"os"
	"sync"

	"github.com/rs/zerolog"
)

// log is the package-level diagnostic logger. The teacher (coregx/signals)
// logs recovered panics with bare log.Printf; this runtime routes the same
// class of diagnostics (recovered panics, unhandled flush errors, cycle
// detection) through a structured zerolog.Logger instead, matching the
// logging library the rest of the retrieved pack reaches for (logiface's
// zerolog backend wraps the same library for the same concern).
//
// Defaults to zerolog.Nop() so the core is silent until a host opts in,
// mirroring the teacher's "log and continue" default without forcing
// stderr output on every embedder.
var (
	logMu  sync.RWMutex
	logger zerolog.Logger = zerolog.Nop()
)

// SetLogger installs the structured logger used for internal diagnostics:
// recovered panics in compute/effect bodies, errors that escape a flush
// unhandled, and cycle/infinite-loop detection. Safe to call at any time.
func SetLogger(l zerolog.Logger) {
	logMu.Lock()
	defer logMu.Unlock()
	logger = l
}

// DefaultLogger returns a reasonable non-nop logger writing to stderr,
// for hosts that just want diagnostics visible without composing their
// own zerolog.Logger.
func DefaultLogger() zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
}

func currentLogger() zerolog.Logger {
	logMu.RLock()
	defer logMu.RUnlock()
	return logger
}

// logRecoveredPanic reports a panic recovered at a cell's tracked-compute
// or effect boundary.
func logRecoveredPanic(site string, name string, r any) {
	currentLogger().Error().
		Str("site", site).
		Str("cell", name).
		Interface("panic", r).
		Msg("reactive: recovered panic")
}

// logUnhandledError reports an error that escaped a flush with no boundary
// or error handler to absorb it.
func logUnhandledError(site string, err error) {
	currentLogger().Error().
		Str("site", site).
		Err(err).
		Msg("reactive: unhandled error")
}

// logCycle reports a detected update cycle.
func logCycle(err *CycleError) {
	currentLogger().Error().
		Str("cell", err.Name).
		Str("reason", err.Reason).
		Msg("reactive: cycle detected")
}
