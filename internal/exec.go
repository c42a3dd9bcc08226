package internal

type exec struct {
	state   *Diagnostics
	printer IPrinter

	env     *env
	current scopeID
}

func newExec(printer IPrinter) *exec {
	e := &exec{
		printer: printer,
		env:     newEnv(),
	}
	e.current = e.env.global()
	return e
}

// interpret runs stmts until the end or until the first runtime error,
// which is left in e.state. Side effects of the statements run before the
// error are kept.
func (e *exec) interpret(stmts []stmt) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			if _, isRuntime := r.(*runtimeError); !isRuntime {
				panic(r)
			}
			ok = false
		}
	}()
	for _, s := range stmts {
		e.execute(s)
	}
	return true
}

func (e *exec) execute(s stmt) {
	// nil statements are declarations the parser had to skip
	if s != nil {
		s.accept(e)
	}
}

func (e *exec) evaluate(expr expr) interface{} {
	return expr.accept(e)
}

func (e *exec) visitExprStmt(stmt *exprStmt) R {
	e.evaluate(stmt.expression)
	return nil
}

func (e *exec) visitPrintStmt(stmt *printStmt) R {
	value := e.evaluate(stmt.expression)
	e.printer.Println(stringify(value))
	return nil
}

func (e *exec) visitVarStmt(stmt *varStmt) R {
	var val interface{}
	if stmt.initializer != nil {
		val = e.evaluate(stmt.initializer)
	}
	e.env.define(e.current, stmt.name.lexeme, val)
	return nil
}

func (e *exec) visitBlockStmt(stmt *blockStmt) R {
	e.executeBlock(stmt.stmts, e.env.push(e.current))
	return nil
}

func (e *exec) executeBlock(stmts []stmt, scope scopeID) {
	previous := e.current
	defer func() {
		e.current = previous
		e.env.pop(scope)
	}()
	e.current = scope
	for _, s := range stmts {
		e.execute(s)
	}
}

func (e *exec) visitAssignExpr(expr *assignExpr) R {
	val := e.evaluate(expr.value)
	if err := e.env.assign(e.current, expr.name, val); err != nil {
		e.state.runtimeErr(err, expr.name)
	}
	return val
}

// visitTernaryExpr evaluates both branches before choosing one
func (e *exec) visitTernaryExpr(expr *ternaryExpr) R {
	condition := e.evaluate(expr.condition)
	thenValue := e.evaluate(expr.thenBranch)
	elseValue := e.evaluate(expr.elseBranch)
	if truthy(condition) {
		return thenValue
	}
	return elseValue
}

func (e *exec) visitBinaryExpr(expr *binaryExpr) R {
	left := e.evaluate(expr.left)
	right := e.evaluate(expr.right)

	switch expr.operator.token {
	case tkEqualEqual:
		return loxBool(isEqual(left, right))
	case tkBangEqual:
		return loxBool(!isEqual(left, right))
	case tkComma:
		return right
	}

	op, ok := binaryOperators[expr.operator.token]
	if !ok {
		// "and" and "or" end up here: both sides were evaluated and the
		// result is nil
		return nil
	}

	apply, err := e.getOperator(left, op)
	if err != nil {
		if op == opAdd {
			return nil
		}
		e.state.runtimeErr(errOnlyNumbers, expr.operator)
	}

	result, err := apply(right)
	if err != nil {
		e.state.runtimeErr(err, expr.operator)
	}
	return result
}

func (e *exec) getOperator(value interface{}, op operator) (operatorApply, error) {
	if o, ok := value.(operable); ok {
		return o.getOperator(op)
	}
	return nil, errUndefinedOp
}

func (e *exec) visitGroupingExpr(expr *groupingExpr) R {
	return e.evaluate(expr.expression)
}

func (e *exec) visitLiteralExpr(expr *literalExpr) R {
	return expr.value
}

func (e *exec) visitUnaryExpr(expr *unaryExpr) R {
	value := e.evaluate(expr.right)
	switch expr.operator.token {
	case tkBang:
		return loxBool(!truthy(value))
	case tkMinus:
		apply, err := e.getOperator(value, opNeg)
		if err != nil {
			e.state.runtimeErr(errOnlyNumber, expr.operator)
		}
		result, err := apply()
		if err != nil {
			e.state.runtimeErr(err, expr.operator)
		}
		return result
	default:
		e.state.runtimeErr(errUndefinedOp, expr.operator)
	}
	return nil
}

func (e *exec) visitVariableExpr(expr *variableExpr) R {
	value, err := e.env.get(e.current, expr.name)
	if err != nil {
		e.state.runtimeErr(err, expr.name)
	}
	return value
}
