package logging

import (
	"fmt"
	"strings"
)

// LogLevel represents the severity of a log message
type LogLevel string

const (
	// LogLevelDebug is for debug messages
	LogLevelDebug LogLevel = "debug"
	// LogLevelInfo is for informational messages
	LogLevelInfo LogLevel = "info"
	// LogLevelWarn is for warning messages
	LogLevelWarn LogLevel = "warn"
	// LogLevelError is for error messages
	LogLevelError LogLevel = "error"
)

// App is the global application logger. It writes to stderr so
// diagnostics never mix with the classification printed on stdout.
var App *AppLogger

func init() {
	App = NewAppLogger(LogLevelInfo)
}

// Initialize replaces the global logger with one at the given level.
func Initialize(level LogLevel) {
	if level == "" {
		level = LogLevelInfo
	}
	App = NewAppLogger(level)
}

// formatValue formats a value for logfmt, quoting if necessary
func formatValue(v string) string {
	// Quote if contains space, equals, or quotes
	if strings.ContainsAny(v, " =\"") {
		// Escape existing quotes
		v = strings.ReplaceAll(v, "\"", "\\\"")
		return fmt.Sprintf("\"%s\"", v)
	}
	return v
}
