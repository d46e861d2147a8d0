package debug

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// logger receives debug traces. It defaults to the global zerolog logger;
// SetLogger redirects it (tests capture output this way).
var logger = &log.Logger

// SetLogger replaces the destination of debug traces.
func SetLogger(l *zerolog.Logger) {
	if l != nil {
		logger = l
	}
}

// DebugHeader marks the start of a traced parse
func DebugHeader(enabled bool, input string) {
	if enabled {
		logger.Debug().Str("input", input).Msg("=== DEBUG START ===")
	}
}

// DebugFooter marks the end of a traced parse
func DebugFooter(enabled bool) {
	if enabled {
		logger.Debug().Msg("=== DEBUG END ===")
	}
}

// DebugOutput emits a formatted trace line if debugging is enabled
func DebugOutput(enabled bool, format string, args ...interface{}) {
	if enabled {
		logger.Debug().Str("component", "parser").Msg(fmt.Sprintf(format, args...))
	}
}

// DebugTiming measures and logs execution time if debugging is enabled
func DebugTiming(enabled bool, operation string) func() {
	if !enabled {
		return func() {}
	}

	start := time.Now()
	DebugOutput(enabled, "Starting: %s", operation)

	return func() {
		logger.Debug().
			Str("operation", operation).
			Dur("took", time.Since(start)).
			Msg("Completed")
	}
}
