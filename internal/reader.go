package internal

import (
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
)

//R generic type
type R interface{}

// PrintTree parses source and writes one parenthesized tree per statement.
// Nothing is written when the source has errors.
func PrintTree(w io.Writer, source string) *Diagnostics {
	state := newDiagnostics()
	tokens := newLexer(source, state).scan()
	stmts := newParser(tokens, state).parse()
	if !state.Valid() {
		return state
	}
	for _, s := range stmts {
		fmt.Fprintln(w, stmtString(s))
	}
	return state
}

// DumpTokens writes the tokens of source, one per line. When verbose is set
// every token is dumped with all of its fields.
func DumpTokens(w io.Writer, source string, verbose bool) *Diagnostics {
	state := newDiagnostics()
	tokens := newLexer(source, state).scan()
	if verbose {
		cfg := spew.ConfigState{
			Indent:                  "  ",
			DisablePointerAddresses: true,
			DisableCapacities:       true,
			DisableMethods:          true,
		}
		cfg.Fdump(w, tokens)
		return state
	}
	for _, tk := range tokens {
		fmt.Fprintf(w, "%d\t%v\n", tk.line, tk)
	}
	return state
}

func stmtString(s stmt) string {
	return s.accept(stringVisitor{}).(string)
}

func exprString(e expr) string {
	return e.accept(stringVisitor{}).(string)
}

type stringVisitor struct{}

func (v stringVisitor) visitExprStmt(stmt *exprStmt) R {
	return fmt.Sprintf("(; %v)", stmt.expression.accept(v))
}

func (v stringVisitor) visitPrintStmt(stmt *printStmt) R {
	return fmt.Sprintf("(print %v)", stmt.expression.accept(v))
}

func (v stringVisitor) visitVarStmt(stmt *varStmt) R {
	if stmt.initializer == nil {
		return fmt.Sprintf("(var %s)", stmt.name.lexeme)
	}
	return fmt.Sprintf("(var %s %v)", stmt.name.lexeme, stmt.initializer.accept(v))
}

func (v stringVisitor) visitBlockStmt(stmt *blockStmt) R {
	out := "(block"
	for _, s := range stmt.stmts {
		if s == nil {
			continue
		}
		out += fmt.Sprintf(" %v", s.accept(v))
	}
	return out + ")"
}

func (v stringVisitor) visitAssignExpr(expr *assignExpr) R {
	return fmt.Sprintf("(= %s %v)", expr.name.lexeme, expr.value.accept(v))
}

func (v stringVisitor) visitTernaryExpr(expr *ternaryExpr) R {
	return fmt.Sprintf(
		"(?: %v %v %v)",
		expr.condition.accept(v),
		expr.thenBranch.accept(v),
		expr.elseBranch.accept(v),
	)
}

func (v stringVisitor) visitBinaryExpr(expr *binaryExpr) R {
	return fmt.Sprintf("(%s %v %v)", expr.operator.lexeme, expr.left.accept(v), expr.right.accept(v))
}

func (v stringVisitor) visitGroupingExpr(expr *groupingExpr) R {
	return fmt.Sprintf("(group %v)", expr.expression.accept(v))
}

func (v stringVisitor) visitLiteralExpr(expr *literalExpr) R {
	if s, isString := expr.value.(loxString); isString {
		return s.Repr()
	}
	return stringify(expr.value)
}

func (v stringVisitor) visitUnaryExpr(expr *unaryExpr) R {
	return fmt.Sprintf("(%s %v)", expr.operator.lexeme, expr.right.accept(v))
}

func (v stringVisitor) visitVariableExpr(expr *variableExpr) R {
	return expr.name.lexeme
}
