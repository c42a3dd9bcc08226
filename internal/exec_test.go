package internal

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testPrinter struct {
	printed string
	errors  string
}

func (t *testPrinter) Println(a ...interface{}) (n int, err error) {
	t.printed += fmt.Sprintln(a...)
	return 0, nil
}

func (t *testPrinter) Fprintf(w io.Writer, format string, a ...interface{}) (n int, err error) {
	t.errors += fmt.Sprintf(format, a...)
	return 0, nil
}

func (t *testPrinter) Fprintln(w io.Writer, a ...interface{}) (n int, err error) {
	t.errors += fmt.Sprintln(a...)
	return 0, nil
}

func (t *testPrinter) Reset() {
	t.printed = ""
	t.errors = ""
}

func checkExpression(t *testing.T, exp string, result string) {
	t.Helper()
	source := "print " + exp + ";"
	tp := &testPrinter{}
	state := RunSourceWithPrinter(source, tp)
	require.Empty(t, state.Errors(), "Error on: %s\n%s", exp, tp.errors)
	assert.Equal(t, result+"\n", tp.printed, "Error on: %s", exp)
}

func checkStatements(t *testing.T, code string, result ...string) {
	t.Helper()
	tp := &testPrinter{}
	state := RunSourceWithPrinter(code, tp)
	require.Empty(t, state.Errors(), "Error on: \n%s\n%s", code, tp.errors)
	assert.Equal(t, strings.Join(result, "\n")+"\n", tp.printed, "Error on: \n%s", code)
}

// checkErrorMsg runs source expecting a runtime error and the given output
// before it
func checkErrorMsg(t *testing.T, source string, errorMsg string, line int, printed ...string) {
	t.Helper()
	tp := &testPrinter{}
	state := RunSourceWithPrinter(source, tp)
	assert.False(t, state.HadError(), "Source:\n%s", source)
	assert.True(t, state.HadRuntimeError(), "Source:\n%s", source)
	assert.Equal(t, fmt.Sprintf("%s\n[line %d]\n", errorMsg, line), tp.errors, "Source:\n%s", source)

	expected := ""
	if len(printed) != 0 {
		expected = strings.Join(printed, "\n") + "\n"
	}
	assert.Equal(t, expected, tp.printed, "Source:\n%s", source)
}

func TestExpressions(t *testing.T) {

	// Arithmetic
	{
		// Number
		checkExpression(t, "1", "1")
		checkExpression(t, "3.0", "3")
		checkExpression(t, "3.5", "3.5")
		checkExpression(t, "0.25", "0.25")
		checkExpression(t, "1000000", "1000000")

		// Negative
		checkExpression(t, "-1", "-1")
		checkExpression(t, "--1", "1")

		// Add numbers
		checkExpression(t, "1 + 2 + 3", "6")

		// Subtract numbers
		checkExpression(t, "8 - 2 - 1", "5")

		// Multiply numbers
		checkExpression(t, "1 * 2 * 3", "6")

		// Divide numbers
		checkExpression(t, "12 / 2", "6")
		checkExpression(t, "7 / 2", "3.5")

		// Precedence
		checkExpression(t, "1 + 2 * 3", "7")
		checkExpression(t, "(1 + 2) * 3", "9")
		checkExpression(t, "-2 * 3", "-6")

		// Division by zero is not an error
		checkExpression(t, "1 / 0", "Infinity")
		checkExpression(t, "-1 / 0", "-Infinity")
		checkExpression(t, "0 / 0", "NaN")
	}

	// Literals print the same with or without grouping
	{
		checkExpression(t, "5", "5")
		checkExpression(t, "(5)", "5")
		checkExpression(t, "((2.5))", "2.5")
	}

	// Strings
	{
		// String literal
		checkExpression(t, `"test"`, "test")
		checkExpression(t, `""`, "")

		// String concat
		checkExpression(t, `"a" + "b"`, "ab")
		checkExpression(t, `"te" + "st" + "!"`, "test!")

		// Mixed concat is nil, not an error
		checkExpression(t, `1 + "a"`, "nil")
		checkExpression(t, `"a" + 1`, "nil")
		checkExpression(t, `true + 1`, "nil")
		checkExpression(t, `nil + nil`, "nil")
	}

	// Logical
	{
		// 'true' literal
		checkExpression(t, "true", "true")

		// 'false' literal
		checkExpression(t, "false", "false")

		// 'nil' literal
		checkExpression(t, "nil", "nil")

		// not
		checkExpression(t, "!false", "true")
		checkExpression(t, "!true", "false")
		checkExpression(t, "!nil", "true")
		checkExpression(t, `!""`, "false")
		checkExpression(t, "!0", "false")
		checkExpression(t, "!!1", "true")

		// and, or are plain binary operators yielding nil
		checkExpression(t, "true and true", "nil")
		checkExpression(t, "false or true", "nil")
		checkExpression(t, "1 and 2", "nil")
	}

	// Comparisons
	{
		// Number Equality
		checkExpression(t, "2*2 == 8-4", "true")
		checkExpression(t, "2*2 != 8-4", "false")

		// Number gt
		checkExpression(t, "10 > 5", "true")

		// Number lt
		checkExpression(t, "10 < 5", "false")

		// Number gte
		checkExpression(t, "5 >= 5", "true")
		checkExpression(t, "4 >= 5", "false")

		// Number lte
		checkExpression(t, "5 <= 5", "true")
		checkExpression(t, "10 <= 5", "false")

		// Equality across kinds
		checkExpression(t, "nil == nil", "true")
		checkExpression(t, "nil == false", "false")
		checkExpression(t, `1 == "1"`, "false")
		checkExpression(t, `"a" == "a"`, "true")
		checkExpression(t, `"a" != "b"`, "true")
		checkExpression(t, "true == true", "true")
		checkExpression(t, "0 == false", "false")
	}

	// Comma
	{
		checkExpression(t, "1, 2", "2")
		checkExpression(t, `(1, "a", 3)`, "3")
	}

	// Ternary
	{
		checkExpression(t, "true ? 1 : 2", "1")
		checkExpression(t, "nil ? 1 : 2", "2")
		checkExpression(t, "0 ? 1 : 2", "1")
		checkExpression(t, "false ? 1 : true ? 2 : 3", "2")
		checkExpression(t, "true ? 1, 2 : 3", "2")

		// Both branches are evaluated, division by zero does not fail
		checkExpression(t, "true ? 1 : (1/0)", "1")
		checkExpression(t, "false ? (1/0) : 2", "2")
	}
}

func TestStatements(t *testing.T) {
	// Declarations
	checkStatements(t, "var a = 1; print a;", "1")
	checkStatements(t, "var a; print a;", "nil")
	checkStatements(t, `var a = "x"; var b = a + "y"; print b;`, "xy")

	// Redefinition in the same scope replaces the value
	checkStatements(t, "var x = 1; var x = 2; print x;", "2")
	checkStatements(t, "var x = 1; var x; print x;", "nil")

	// Assignment
	checkStatements(t, "var a = 1; a = 2; print a;", "2")
	checkStatements(t, "var a; print a = 3;", "3")
	checkStatements(t, "var a; var b; a = b = 4; print a; print b;", "4", "4")

	// Block scoping
	checkStatements(t, "var x = 1; { var x = 2; print x; } print x;", "2", "1")
	checkStatements(t, "var x = 1; { x = 2; } print x;", "2")
	checkStatements(t, `
		var a = "global a";
		var b = "global b";
		{
			var a = "outer a";
			{
				var a = "inner a";
				print a;
				print b;
			}
			print a;
		}
		print a;
	`, "inner a", "global b", "outer a", "global a")

	// Expression statements have no output
	checkStatements(t, "1 + 2; print 3;", "3")

	// Empty block
	checkStatements(t, "{} print 1;", "1")
}

func TestRuntimeErrors(t *testing.T) {
	// Undefined variable
	checkErrorMsg(t, "print a;", "Undefined variable 'a'.", 1)

	// Undefined variable assignment
	checkErrorMsg(t, "a = 1;", "Undefined variable 'a'.", 1)

	// Output before the error is kept
	checkErrorMsg(t, "print 1;\nprint 2;\nprint b;\nprint 3;", "Undefined variable 'b'.", 3, "1", "2")

	// Variables of a block are gone after it
	checkErrorMsg(t, "{ var a = 1; }\nprint a;", "Undefined variable 'a'.", 2)

	// Unary minus
	checkErrorMsg(t, `-"B";`, "Operand must be a number.", 1)
	checkErrorMsg(t, "-nil;", "Operand must be a number.", 1)

	// Binary operators
	checkErrorMsg(t, `"A" - "B";`, "Operands must be numbers.", 1)
	checkErrorMsg(t, `1 * "B";`, "Operands must be numbers.", 1)
	checkErrorMsg(t, `nil / 1;`, "Operands must be numbers.", 1)
	checkErrorMsg(t, `"a" < "b";`, "Operands must be numbers.", 1)
	checkErrorMsg(t, `1 >= true;`, "Operands must be numbers.", 1)

	// and, or do not short circuit
	checkErrorMsg(t, "false and undefinedVar;", "Undefined variable 'undefinedVar'.", 1)
	checkErrorMsg(t, "true or undefinedVar;", "Undefined variable 'undefinedVar'.", 1)

	// Ternary evaluates the branch it does not pick
	checkErrorMsg(t, "print true ? 1 : missing;", "Undefined variable 'missing'.", 1)

	// Errors point to the line of the operator
	checkErrorMsg(t, "var a = 1;\n\nvar b = a\n  - \"x\";", "Operands must be numbers.", 4)
}

func TestRuntimeErrorKeepsState(t *testing.T) {
	tp := &testPrinter{}
	interp := NewInterpreter(tp)

	state := interp.Run("var a = 1; { var a = 2; a = 3; print a; print nope; }")
	require.True(t, state.HadRuntimeError())
	assert.Equal(t, "3\n", tp.printed)
	tp.Reset()

	// The global scope is current again and still holds the outer a
	state = interp.Run("print a;")
	require.Empty(t, state.Errors())
	assert.Equal(t, "1\n", tp.printed)
	tp.Reset()

	// Assignments made before an error are not undone
	interp.Run("a = 10; print missing;")
	state = interp.Run("print a;")
	require.Empty(t, state.Errors())
	assert.Equal(t, "10\n", tp.printed)
}

func TestRuntimeErrorValue(t *testing.T) {
	state := RunSourceWithPrinter("print x;", &testPrinter{})
	errs := state.Errors()
	require.Len(t, errs, 1)
	assert.True(t, errors.Is(errs[0], errUndefinedVar))

	state = RunSourceWithPrinter("print -true;", &testPrinter{})
	errs = state.Errors()
	require.Len(t, errs, 1)
	assert.True(t, errors.Is(errs[0], errOnlyNumber))
}

func TestInterpreterKeepsGlobals(t *testing.T) {
	tp := &testPrinter{}
	interp := NewInterpreter(tp)

	interp.Run("var greeting = \"hi\";")
	interp.Run("print greeting + \" there\";")
	assert.Equal(t, "hi there\n", tp.printed)
}

func TestStaticErrorsSkipExecution(t *testing.T) {
	tp := &testPrinter{}
	state := RunSourceWithPrinter("print 1;\nprint ;\nprint 2;", tp)
	assert.True(t, state.HadError())
	assert.False(t, state.HadRuntimeError())
	assert.Empty(t, tp.printed)
	assert.Equal(t, "[line 2] Error at ';': Expect expression.\n", tp.errors)
}

func TestScanErrorsSkipExecution(t *testing.T) {
	tp := &testPrinter{}
	state := RunSourceWithPrinter("print 1; é", tp)
	assert.True(t, state.HadError())
	assert.Empty(t, tp.printed)
	assert.Equal(t, "[line 1] Error at end: Unexpected character.\n", tp.errors)
}
