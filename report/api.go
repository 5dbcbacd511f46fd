package report

import (
	"fmt"
	"os"
)

// NOTE: All report functions will only display if the appropriate log level is
// set.  They simply fail silently if below their appropriate log level.

// ReportFatal reports a fatal error and exits the program.  These are expected
// errors that result from invalid configuration or input: a missing profile
// file, an unknown target, etc.
func ReportFatal(message string, args ...interface{}) {
	rep.m.Lock()

	rep.errorCount++
	if rep.logLevel > LogLevelSilent {
		displayEndPhase(false)
		displayFatal(fmt.Sprintf(message, args...))
	}

	rep.m.Unlock()
	os.Exit(1)
}

// ReportError reports a non-fatal error under the given tag.
func ReportError(tag string, err error) {
	rep.m.Lock()
	defer rep.m.Unlock()

	rep.errorCount++
	if rep.logLevel > LogLevelSilent {
		displayEndPhase(false)
		PrintErrorMessage(tag, err)
	}
}

// ReportWarning reports a warning under the given tag.
func ReportWarning(tag, message string, args ...interface{}) {
	rep.m.Lock()
	defer rep.m.Unlock()

	rep.warningCount++
	if rep.logLevel >= LogLevelWarn {
		PrintWarningMessage(tag, fmt.Sprintf(message, args...))
	}
}

// ReportInfo reports an informational message under the given tag.
func ReportInfo(tag, message string, args ...interface{}) {
	if rep.logLevel == LogLevelVerbose {
		rep.m.Lock()
		defer rep.m.Unlock()

		PrintInfoMessage(tag, fmt.Sprintf(message, args...))
	}
}

// AnyErrors returns whether or not any errors were reported.
func AnyErrors() bool {
	rep.m.Lock()
	defer rep.m.Unlock()

	return rep.errorCount > 0
}

// Counts returns the number of errors and warnings reported so far.
func Counts() (errors, warnings int) {
	rep.m.Lock()
	defer rep.m.Unlock()

	return rep.errorCount, rep.warningCount
}

// -----------------------------------------------------------------------------

// ReportBeginPhase begins a new phase with a spinner.  Any phase still running
// is ended successfully.
func ReportBeginPhase(phase string) {
	if rep.logLevel == LogLevelVerbose {
		rep.m.Lock()
		defer rep.m.Unlock()

		displayEndPhase(true)
		displayBeginPhase(phase)
	}
}

// ReportEndPhase ends the current phase: it is marked as failed if errors were
// reported during it.
func ReportEndPhase() {
	if rep.logLevel == LogLevelVerbose {
		rep.m.Lock()
		defer rep.m.Unlock()

		displayEndPhase(rep.errorCount == 0)
	}
}

// ReportHeader displays the tool's version and target before work begins.
func ReportHeader(version, target string) {
	if rep.logLevel == LogLevelVerbose {
		displayHeader(version, target)
	}
}

// ReportFinished displays the concluding message with the error and warning
// counts.
func ReportFinished() {
	if rep.logLevel > LogLevelSilent {
		rep.m.Lock()
		defer rep.m.Unlock()

		displayEndPhase(rep.errorCount == 0)
		displayFinished(rep.errorCount == 0, rep.errorCount, rep.warningCount)
	}
}

// -----------------------------------------------------------------------------

// CatchErrors recovers a panic raised while working on a unit of work and
// reports it as an error under tag.  The LLVM bindings panic on misuse such as
// touching a disposed handle: the rest of the work is still allowed to finish.
// NB: This function must ALWAYS be deferred.
func CatchErrors(tag string) {
	if x := recover(); x != nil {
		if err, ok := x.(error); ok {
			ReportError(tag, err)
		} else {
			ReportError(tag, fmt.Errorf("%v", x))
		}
	}
}
