package lisp

import (
	"fmt"
	"io"
	"os"
)

// DiagKind enumerates every reportable condition. Severity is selected by
// the policy table below, so adding a condition is a data change, not new
// control flow.
type DiagKind int

const (
	DiagNilNode DiagKind = iota
	DiagNoOperands
	DiagTooFewOperands
	DiagExtraOperands
	DiagUndefinedSymbol
	DiagDuplicateAssignment
	DiagCustomFunction
	DiagPrecisionLoss
)

// Severity decides whether a condition terminates the process or degrades
// to a fallback value and continues.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityFatal
)

var diagSeverity = map[DiagKind]Severity{
	DiagNilNode:             SeverityFatal,
	DiagNoOperands:          SeverityWarning,
	DiagTooFewOperands:      SeverityWarning,
	DiagExtraOperands:       SeverityWarning,
	DiagUndefinedSymbol:     SeverityWarning,
	DiagDuplicateAssignment: SeverityWarning,
	DiagCustomFunction:      SeverityWarning,
	DiagPrecisionLoss:       SeverityWarning,
}

// FatalError is handed to the configured FatalHandler when a fatal
// condition is reported.
type FatalError struct {
	Kind    DiagKind
	Message string
}

func (e *FatalError) Error() string {
	return e.Message
}

// Reporter routes diagnostics to the configured writer. Warnings print and
// evaluation continues; fatal conditions run the fatal handler, which by
// default terminates the process.
type Reporter struct {
	out      io.Writer
	fatal    func(error)
	warnings int
}

func newReporter(out io.Writer, fatal func(error)) *Reporter {
	if out == nil {
		out = os.Stderr
	}
	if fatal == nil {
		fatal = defaultFatalHandler
	}
	return &Reporter{out: out, fatal: fatal}
}

func defaultFatalHandler(err error) {
	fmt.Fprintf(os.Stderr, "\nERROR: %s\nExiting...\n", err)
	os.Exit(1)
}

func (r *Reporter) report(kind DiagKind, format string, args ...any) {
	message := fmt.Sprintf(format, args...)
	if diagSeverity[kind] == SeverityFatal {
		r.fatal(&FatalError{Kind: kind, Message: message})
		return
	}
	r.warnings++
	fmt.Fprintf(r.out, "WARNING: %s\n", message)
}

// Warnings returns the number of recoverable diagnostics emitted so far.
func (r *Reporter) Warnings() int { return r.warnings }
