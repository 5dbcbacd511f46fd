package report

import "sync"

// Reporter is responsible for reporting errors, warnings, and other kinds of
// messages to the user during program execution.  The reporter respects the set
// log level and is synchronized: its methods can be safely called from multiple
// goroutines.
type Reporter struct {
	// The mutex used to synchonize different report calls.
	m *sync.Mutex

	// The selected log level of the reporter.  This must be one of the
	// enumerated log levels below.
	logLevel int

	errorCount, warningCount int
}

// Enumeration of the different possible log levels.
const (
	LogLevelSilent  = iota // Displays no output.
	LogLevelError          // Displays only errors to the user.
	LogLevelWarn           // Displays only warnings and errors to the user.
	LogLevelVerbose        // Displays all messages to the user (default).
)

// LogLevelNames lists the names accepted by ParseLogLevel in level order.
var LogLevelNames = []string{"silent", "error", "warn", "verbose"}

// ParseLogLevel converts the name of a log level to its value.  Unknown names
// select the verbose level.
func ParseLogLevel(name string) int {
	switch name {
	case "silent":
		return LogLevelSilent
	case "error":
		return LogLevelError
	case "warn", "warning":
		return LogLevelWarn
	default:
		return LogLevelVerbose
	}
}

// rep is the global reporter instance.
var rep = newReporter(LogLevelVerbose)

func newReporter(logLevel int) *Reporter {
	return &Reporter{m: &sync.Mutex{}, logLevel: logLevel}
}

// InitReporter resets the global reporter to the given log level.
func InitReporter(logLevel int) {
	rep = newReporter(logLevel)
}

// LogLevel returns the log level of the global reporter.
func LogLevel() int {
	return rep.logLevel
}
