package internal

import (
	"errors"
	"fmt"
	"io"
)

type parseError struct {
	err   error
	line  int
	where string
}

func (e parseError) Error() string {
	return fmt.Sprintf("[line %d] Error%s: %s", e.line, e.where, e.err)
}

func (e parseError) Unwrap() error {
	return e.err
}

type runtimeError struct {
	err   error
	token *token
}

func (e *runtimeError) Error() string {
	return fmt.Sprintf("%s\n[line %d]", e.err, e.token.line)
}

func (e *runtimeError) Unwrap() error {
	return e.err
}

// parseBail is the panic value used to unwind the parser up to the
// declaration being parsed
type parseBail struct{}

// Diagnostics collects the errors found while running one piece of source.
// A fresh value is used for every run, so the compile error state never
// leaks from one REPL line to the next.
type Diagnostics struct {
	errors       []parseError
	runtimeError *runtimeError
}

func newDiagnostics() *Diagnostics {
	return &Diagnostics{errors: make([]parseError, 0)}
}

func (d *Diagnostics) setError(err error, line int, where string) {
	d.errors = append(d.errors, parseError{
		err:   err,
		line:  line,
		where: where,
	})
}

// tokenError records an error located at tk without unwinding
func (d *Diagnostics) tokenError(err error, tk *token) {
	if tk.token == tkEOF {
		d.setError(err, tk.line, " at end")
		return
	}
	d.setError(err, tk.line, " at '"+tk.lexeme+"'")
}

func (d *Diagnostics) fatalError(err error, tk *token) {
	d.tokenError(err, tk)
	panic(parseBail{})
}

func (d *Diagnostics) runtimeErr(err error, tk *token) {
	d.runtimeError = &runtimeError{
		err:   err,
		token: tk,
	}
	panic(d.runtimeError)
}

// Valid returns true if no scan or parse error was found
func (d *Diagnostics) Valid() bool {
	return len(d.errors) == 0
}

// HadError reports whether scanning or parsing failed
func (d *Diagnostics) HadError() bool {
	return !d.Valid()
}

// HadRuntimeError reports whether evaluation was aborted
func (d *Diagnostics) HadRuntimeError() bool {
	return d.runtimeError != nil
}

// Errors returns every recorded error in the order it was found
func (d *Diagnostics) Errors() []error {
	out := make([]error, 0, len(d.errors)+1)
	for _, e := range d.errors {
		out = append(out, e)
	}
	if d.runtimeError != nil {
		out = append(out, d.runtimeError)
	}
	return out
}

// PrintErrors prints all errors to w, returns true if there was any
func (d *Diagnostics) PrintErrors(p IPrinter, w io.Writer) bool {
	errs := d.Errors()
	for _, e := range errs {
		p.Fprintln(w, e)
	}
	return len(errs) != 0
}

// Lexer errors
var errUnexpectedChar = errors.New("Unexpected character.")
var errUnterminatedString = errors.New("Unterminated string.")

// Parser errors
var errExpectedVarName = errors.New("Expect variable name.")
var errExpectedSemicolonVar = errors.New("Expect ';' after variable declaration.")
var errExpectedSemicolonValue = errors.New("Expect ';' after value.")
var errExpectedSemicolonExpr = errors.New("Expect ';' after expression.")
var errUnclosedBlock = errors.New("Expect '}' after block.")
var errUnclosedParen = errors.New("Expect ')' after expression.")
var errExpectedColon = errors.New("Expect ':' after then branch of conditional expression.")
var errExpectedExpr = errors.New("Expect expression.")
var errInvalidAssignment = errors.New("Invalid assignment target.")

// Runtime errors
var errUndefinedVar = errors.New("Undefined variable")
var errOnlyNumbers = errors.New("Operands must be numbers.")
var errOnlyNumber = errors.New("Operand must be a number.")
var errUndefinedOp = errors.New("Undefined operator")
