package report

import (
	"fmt"

	"github.com/pterm/pterm"
)

// Styles used for the different kinds of console messages.
var (
	infoColorFG  = pterm.FgLightGreen
	infoStyleBG  = pterm.NewStyle(pterm.BgLightGreen, pterm.FgBlack)
	warnColorFG  = pterm.FgYellow
	warnStyleBG  = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	errorColorFG = pterm.FgRed
	errorStyleBG = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
)

// displayICE displays an internal compiler error message.
func displayICE(message string) {
	errorStyleBG.Print("Internal Error")
	errorColorFG.Println(" " + message)
	fmt.Print("This error was not supposed to happen: please open an issue on the issue tracker\n\n")
}

// displayFatal displays a fatal error message.
func displayFatal(message string) {
	errorStyleBG.Print("Fatal Error")
	errorColorFG.Println(" " + message)
}

// displayWarning displays a warning message.
func displayWarning(message string) {
	warnStyleBG.Print("Warning")
	warnColorFG.Println(" " + message)
}

// displayInfo displays an informational message.
func displayInfo(tag, message string) {
	infoStyleBG.Print(tag)
	infoColorFG.Println(" " + message)
}

// -----------------------------------------------------------------------------

// ReportWarning reports a non-fatal warning.
func ReportWarning(message string, args ...interface{}) {
	if rep.logLevel >= LogLevelWarn {
		rep.m.Lock()
		defer rep.m.Unlock()

		displayWarning(fmt.Sprintf(message, args...))
	}
}

// ReportVerbose reports a progress message that is only displayed when the
// log level is verbose.  The tag is a short label categorizing the message:
// eg. `Inline`.
func ReportVerbose(tag, message string, args ...interface{}) {
	if rep.logLevel >= LogLevelVerbose {
		rep.m.Lock()
		defer rep.m.Unlock()

		displayInfo(tag, fmt.Sprintf(message, args...))
	}
}
