package report

import (
	"fmt"
	"os"
)

// InternalError is the payload panicked with by ICE.  It identifies an
// internal invariant of the optimizer that was violated by its input: a
// precondition failure on the part of the optimizer's caller.  It is not
// intended to ever be recovered except at the top level of the process.
type InternalError struct {
	// The formatted diagnostic message.
	Message string
}

func (ie *InternalError) Error() string {
	return ie.Message
}

// ICE reports an internal compiler error and panics with an *InternalError.
// These are errors that result from a bug or violated precondition: they are
// not intended to ever happen.  The panic is converted into a process abort
// by CatchFatal at the top level; it is a panic rather than a direct exit so
// that the offending construct propagates upward with the failure.
func ICE(message string, args ...interface{}) {
	rep.m.Lock()

	rep.isErr = true
	msg := fmt.Sprintf(message, args...)
	if rep.logLevel > LogLevelSilent {
		displayICE(msg)
	}

	rep.m.Unlock()

	panic(&InternalError{Message: msg})
}

// ReportFatal reports a fatal error and exits the program.  These are errors
// that should cause the process to stop immediately but that result from
// invalid external configuration rather than an internal bug.
func ReportFatal(message string, args ...interface{}) {
	if rep.logLevel > LogLevelSilent {
		rep.m.Lock()
		defer rep.m.Unlock()

		displayFatal(fmt.Sprintf(message, args...))
	}

	os.Exit(1)
}

// CatchFatal converts an in-flight *InternalError panic into a process
// abort.  Any other panic is re-raised unchanged.
// NB: This function must ALWAYS be deferred.
func CatchFatal() {
	if x := recover(); x != nil {
		if _, ok := x.(*InternalError); ok {
			// the diagnostic has already been displayed by ICE
			os.Exit(-1)
		}

		panic(x)
	}
}
