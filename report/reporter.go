package report

import "sync"

// reporter is responsible for storing the reporting state of the optimizer
// and synchronizing message display.
type reporter struct {
	// logLevel must be one of the enumerated log levels.
	logLevel int

	// isErr indicates whether an error has been reported.
	isErr bool

	// m is the mutex used to synchronize the printing of messages.
	m *sync.Mutex
}

// Enumeration of the different log levels.
const (
	LogLevelSilent  = iota // no output at all
	LogLevelError          // only errors
	LogLevelWarn           // errors and warnings
	LogLevelVerbose        // errors, warnings, and progress summaries (DEFAULT)
)

// rep is a global reference to the shared reporter.
var rep = reporter{logLevel: LogLevelVerbose, m: &sync.Mutex{}}

// InitReporter initializes the global reporter with the provided log level.
func InitReporter(loglevel int) {
	rep = reporter{
		logLevel: loglevel,
		m:        &sync.Mutex{},
	}
}

// AnyErrors returns whether or not any errors were detected.
func AnyErrors() bool {
	return rep.isErr
}
