package internal

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// IPrinter printer interface
type IPrinter interface {
	Println(a ...interface{}) (n int, err error)
	Fprintf(w io.Writer, format string, a ...interface{}) (n int, err error)
	Fprintln(w io.Writer, a ...interface{}) (n int, err error)
}

// Interpreter runs pieces of source against the same global scope, so
// variables defined by one run are visible to the next one
type Interpreter struct {
	exec    *exec
	printer IPrinter
	stderr  io.Writer
	logger  logrus.FieldLogger
}

// Option configures an Interpreter
type Option func(*Interpreter)

// WithLogger sets the logger used to trace the scan, parse and
// interpret phases
func WithLogger(logger logrus.FieldLogger) Option {
	return func(i *Interpreter) {
		i.logger = logger
	}
}

// WithErrorOutput sets where diagnostics are written, os.Stderr by default
func WithErrorOutput(w io.Writer) Option {
	return func(i *Interpreter) {
		i.stderr = w
	}
}

// NewInterpreter creates an interpreter that prints through p
func NewInterpreter(p IPrinter, opts ...Option) *Interpreter {
	silent := logrus.New()
	silent.SetOutput(io.Discard)

	i := &Interpreter{
		exec:    newExec(p),
		printer: p,
		stderr:  os.Stderr,
		logger:  silent,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Run scans, parses and executes source. Source with scan or parse errors
// is not executed. Every error found is printed and returned in the
// diagnostics.
func (i *Interpreter) Run(source string) *Diagnostics {
	state := newDiagnostics()
	defer state.PrintErrors(i.printer, i.stderr)

	tokens := newLexer(source, state).scan()
	i.logger.WithFields(logrus.Fields{
		"tokens": len(tokens),
		"errors": len(state.errors),
	}).Debug("scan finished")

	stmts := newParser(tokens, state).parse()
	i.logger.WithFields(logrus.Fields{
		"statements": len(stmts),
		"errors":     len(state.errors),
	}).Debug("parse finished")

	if !state.Valid() {
		return state
	}

	i.exec.state = state
	if !i.exec.interpret(stmts) {
		i.logger.WithField("error", state.runtimeError.err).Debug("interpret aborted")
		return state
	}
	i.logger.Debug("interpret finished")

	return state
}

// RunSourceWithPrinter runs source code on a fresh interpreter instance
func RunSourceWithPrinter(source string, p IPrinter, opts ...Option) *Diagnostics {
	return NewInterpreter(p, opts...).Run(source)
}
