package dynamic

import "github.com/rs/zerolog"

// DebugLog, when set, receives debug events for model generation decisions:
// well-known shape reuse, cache hits/misses, nested type construction. Left
// nil by default, matching spec §5's rule that no component does I/O during
// decode/generate on its own; a consuming application opts in by assigning
// a configured zerolog.Logger here before calling BuildModel.
var DebugLog *zerolog.Logger

func debugEvent() *zerolog.Event {
	if DebugLog == nil {
		return nil
	}
	return DebugLog.Debug()
}
