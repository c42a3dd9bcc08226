package internal

// parser stores parser data
type parser struct {
	current int
	tokens  []token

	state *Diagnostics
}

func newParser(tokens []token, state *Diagnostics) *parser {
	return &parser{
		tokens: tokens,
		state:  state,
	}
}

func (p *parser) parse() []stmt {
	stmts := make([]stmt, 0)
	for !p.isAtEnd() {
		st := p.declaration()
		// A declaration that failed to parse was already reported and
		// skipped, there is nothing to keep
		if st != nil {
			stmts = append(stmts, st)
		}
	}
	return stmts
}

// declaration is the recovery point of the parser: any error raised while
// parsing it discards tokens up to the next statement boundary and yields nil
func (p *parser) declaration() (s stmt) {
	defer func() {
		if r := recover(); r != nil {
			if _, isBail := r.(parseBail); !isBail {
				panic(r)
			}
			p.synchronize()
			s = nil
		}
	}()
	if p.match(tkVar) {
		return p.varDeclaration()
	}
	return p.statement()
}

func (p *parser) varDeclaration() stmt {
	name := p.consume(tkIdentifier, errExpectedVarName)

	var init expr
	if p.match(tkEqual) {
		init = p.expression()
	}

	p.consume(tkSemicolon, errExpectedSemicolonVar)
	return &varStmt{
		name:        name,
		initializer: init,
	}
}

func (p *parser) statement() stmt {
	if p.match(tkPrint) {
		return p.printStmt()
	}
	if p.match(tkLeftBrace) {
		return &blockStmt{stmts: p.block()}
	}
	return p.expressionStmt()
}

func (p *parser) printStmt() stmt {
	value := p.expression()
	p.consume(tkSemicolon, errExpectedSemicolonValue)
	return &printStmt{
		expression: value,
	}
}

// block keeps a nil entry for every declaration that failed to parse
func (p *parser) block() []stmt {
	stmts := make([]stmt, 0)
	for !p.check(tkRightBrace) && !p.isAtEnd() {
		stmts = append(stmts, p.declaration())
	}
	p.consume(tkRightBrace, errUnclosedBlock)
	return stmts
}

func (p *parser) expressionStmt() stmt {
	expr := p.expression()
	p.consume(tkSemicolon, errExpectedSemicolonExpr)
	return &exprStmt{
		expression: expr,
	}
}

func (p *parser) expression() expr {
	return p.assignment()
}

func (p *parser) assignment() expr {
	expr := p.comma()
	if p.match(tkEqual) {
		equal := p.previous()
		value := p.assignment()

		if variable, isVar := expr.(*variableExpr); isVar {
			return &assignExpr{
				name:  variable.name,
				value: value,
			}
		}

		// Reported but not thrown, the left side is kept as the result
		p.state.tokenError(errInvalidAssignment, equal)
	}
	return expr
}

func (p *parser) comma() expr {
	expr := p.ternary()
	for p.match(tkComma) {
		operator := p.previous()
		right := p.ternary()
		expr = &binaryExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

// ternary binds its condition at the logical level, its then branch
// re-enters the full expression grammar and its else branch recurses here
func (p *parser) ternary() expr {
	expr := p.logical()
	for p.match(tkQuestion) {
		thenBranch := p.expression()
		p.consume(tkColon, errExpectedColon)
		elseBranch := p.ternary()
		expr = &ternaryExpr{
			condition:  expr,
			thenBranch: thenBranch,
			elseBranch: elseBranch,
		}
	}
	return expr
}

// logical parses "and" and "or" as plain binary operators
func (p *parser) logical() expr {
	expr := p.equality()
	for p.match(tkAnd, tkOr) {
		operator := p.previous()
		right := p.equality()
		expr = &binaryExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) equality() expr {
	expr := p.comparison()
	for p.match(tkEqualEqual, tkBangEqual) {
		operator := p.previous()
		right := p.comparison()
		expr = &binaryExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) comparison() expr {
	expr := p.term()
	for p.match(tkGreater, tkGreaterEqual, tkLess, tkLessEqual) {
		operator := p.previous()
		right := p.term()
		expr = &binaryExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) term() expr {
	expr := p.factor()
	for p.match(tkPlus, tkMinus) {
		operator := p.previous()
		right := p.factor()
		expr = &binaryExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) factor() expr {
	expr := p.unary()
	for p.match(tkSlash, tkStar) {
		operator := p.previous()
		right := p.unary()
		expr = &binaryExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) unary() expr {
	if p.match(tkBang, tkMinus) {
		operator := p.previous()
		right := p.unary()
		return &unaryExpr{
			operator: operator,
			right:    right,
		}
	}
	return p.primary()
}

func (p *parser) primary() expr {
	if p.match(tkNumber, tkString) {
		return &literalExpr{value: p.previous().literal}
	}
	if p.match(tkFalse) {
		return &literalExpr{value: loxBool(false)}
	}
	if p.match(tkTrue) {
		return &literalExpr{value: loxBool(true)}
	}
	if p.match(tkNil) {
		return &literalExpr{value: nil}
	}
	if p.match(tkIdentifier) {
		return &variableExpr{name: p.previous()}
	}
	if p.match(tkLeftParen) {
		expr := p.expression()
		p.consume(tkRightParen, errUnclosedParen)
		return &groupingExpr{expression: expr}
	}

	p.state.fatalError(errExpectedExpr, p.peek())
	return nil
}

func (p *parser) consume(tk tokenType, err error) *token {
	if p.check(tk) {
		return p.advance()
	}

	p.state.fatalError(err, p.peek())
	return nil
}

func (p *parser) advance() *token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *parser) match(tokens ...tokenType) bool {
	for _, token := range tokens {
		if p.check(token) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *parser) check(tk tokenType) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().token == tk
}

func (p *parser) peek() *token {
	return &p.tokens[p.current]
}

func (p *parser) previous() *token {
	return &p.tokens[p.current-1]
}

func (p *parser) isAtEnd() bool {
	return p.peek().token == tkEOF
}

// synchronize discards tokens until just after a ';' or right before a
// keyword that starts a statement
func (p *parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if p.previous().token == tkSemicolon {
			return
		}

		switch p.peek().token {
		case tkClass, tkFun, tkVar, tkFor, tkIf, tkWhile, tkPrint, tkReturn:
			return
		default:
		}

		p.advance()
	}
}
