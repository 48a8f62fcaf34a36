package lox

import "fmt"

// parseDeclaration dispatches at the declaration level. Declarations are
// legal anywhere a statement is, but not the other way around: the branch
// of an unbraced if cannot introduce a variable.
func (p *parser) parseDeclaration() Statement {
	switch p.curToken.Type {
	case tokenVar:
		return p.parseVarStatement()
	case tokenFun:
		return p.parseFunctionStatement()
	case tokenClass:
		return p.parseClassStatement()
	default:
		return p.parseStatement()
	}
}

func (p *parser) parseStatement() Statement {
	switch p.curToken.Type {
	case tokenPrint:
		return p.parsePrintStatement()
	case tokenLBrace:
		if block := p.parseBlockStatement(); block != nil {
			return block
		}
		return nil
	case tokenIf:
		return p.parseIfStatement()
	case tokenWhile:
		return p.parseWhileStatement()
	case tokenFor:
		return p.parseForStatement()
	case tokenReturn:
		return p.parseReturnStatement()
	case tokenBreak:
		return p.parseBreakStatement()
	case tokenContinue:
		return p.parseContinueStatement()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *parser) parseVarStatement() Statement {
	pos := p.curToken.Pos
	if !p.expectPeek(tokenIdent, "Expect variable name.") {
		return nil
	}
	name := p.curToken.Lexeme

	var init Expression
	if p.peekToken.Type == tokenAssign {
		p.nextToken()
		p.nextToken()
		init = p.parseExpression(lowestPrec)
		if init == nil {
			return nil
		}
	}

	if !p.expectPeek(tokenSemicolon, "Expect ';' after variable declaration.") {
		return nil
	}
	return &VarStmt{position: pos, Name: name, Initializer: init}
}

func (p *parser) parsePrintStatement() Statement {
	pos := p.curToken.Pos
	p.nextToken()

	value := p.parseExpression(lowestPrec)
	if value == nil {
		return nil
	}
	if !p.expectPeek(tokenSemicolon, "Expect ';' after value.") {
		return nil
	}
	return &PrintStmt{position: pos, Expr: value}
}

func (p *parser) parseExpressionStatement() Statement {
	pos := p.curToken.Pos

	expr := p.parseExpression(lowestPrec)
	if expr == nil {
		return nil
	}
	if !p.expectPeek(tokenSemicolon, "Expect ';' after expression.") {
		return nil
	}
	return &ExpressionStmt{position: pos, Expr: expr}
}

// parseBlockStatement recovers from errors inside the block on its own, so
// a broken statement does not swallow the rest of the braces.
func (p *parser) parseBlockStatement() *BlockStmt {
	pos := p.curToken.Pos
	p.nextToken()

	var stmts []Statement
	for p.curToken.Type != tokenRBrace && p.curToken.Type != tokenEOF {
		if stmt := p.parseDeclaration(); stmt != nil {
			stmts = append(stmts, stmt)
			p.nextToken()
		} else {
			p.synchronize()
		}
	}

	if p.curToken.Type != tokenRBrace {
		p.errorAtCur("Expect '}' after block.")
		return nil
	}
	return &BlockStmt{position: pos, Statements: stmts}
}

func (p *parser) parseIfStatement() Statement {
	pos := p.curToken.Pos
	if !p.expectPeek(tokenLParen, "Expect '(' after 'if'.") {
		return nil
	}
	p.nextToken()

	cond := p.parseExpression(lowestPrec)
	if cond == nil {
		return nil
	}
	if !p.expectPeek(tokenRParen, "Expect ')' after if condition.") {
		return nil
	}

	p.nextToken()
	then := p.parseStatement()
	if then == nil {
		return nil
	}

	// else binds to the nearest if.
	var els Statement
	if p.peekToken.Type == tokenElse {
		p.nextToken()
		p.nextToken()
		els = p.parseStatement()
		if els == nil {
			return nil
		}
	}

	return &IfStmt{position: pos, Condition: cond, Then: then, Else: els}
}

func (p *parser) parseWhileStatement() Statement {
	pos := p.curToken.Pos
	if !p.expectPeek(tokenLParen, "Expect '(' after 'while'.") {
		return nil
	}
	p.nextToken()

	cond := p.parseExpression(lowestPrec)
	if cond == nil {
		return nil
	}
	if !p.expectPeek(tokenRParen, "Expect ')' after condition.") {
		return nil
	}

	p.nextToken()
	body := p.parseStatement()
	if body == nil {
		return nil
	}

	return &WhileStmt{position: pos, Condition: cond, Body: body}
}

// parseForStatement desugars for into while at parse time. The increment
// clause rides along on the loop node rather than being spliced into the
// body, so continue still reaches it. A for with an initializer becomes a
// block, which keeps the loop variable scoped to the loop.
func (p *parser) parseForStatement() Statement {
	pos := p.curToken.Pos
	if !p.expectPeek(tokenLParen, "Expect '(' after 'for'.") {
		return nil
	}

	p.nextToken()
	var init Statement
	switch p.curToken.Type {
	case tokenSemicolon:
	case tokenVar:
		init = p.parseVarStatement()
		if init == nil {
			return nil
		}
	default:
		init = p.parseExpressionStatement()
		if init == nil {
			return nil
		}
	}

	var cond Expression
	if p.peekToken.Type != tokenSemicolon {
		p.nextToken()
		cond = p.parseExpression(lowestPrec)
		if cond == nil {
			return nil
		}
	}
	if !p.expectPeek(tokenSemicolon, "Expect ';' after loop condition.") {
		return nil
	}

	var incr Expression
	if p.peekToken.Type != tokenRParen {
		p.nextToken()
		incr = p.parseExpression(lowestPrec)
		if incr == nil {
			return nil
		}
	}
	if !p.expectPeek(tokenRParen, "Expect ')' after for clauses.") {
		return nil
	}

	p.nextToken()
	body := p.parseStatement()
	if body == nil {
		return nil
	}

	if cond == nil {
		cond = &BoolLiteral{position: pos, Value: true}
	}
	loop := &WhileStmt{position: pos, Condition: cond, Body: body, Increment: incr}

	if init != nil {
		return &BlockStmt{position: pos, Statements: []Statement{init, loop}}
	}
	return loop
}

func (p *parser) parseReturnStatement() Statement {
	pos := p.curToken.Pos

	var value Expression
	if p.peekToken.Type != tokenSemicolon {
		p.nextToken()
		value = p.parseExpression(lowestPrec)
		if value == nil {
			return nil
		}
	}

	if !p.expectPeek(tokenSemicolon, "Expect ';' after return value.") {
		return nil
	}
	return &ReturnStmt{position: pos, Value: value}
}

func (p *parser) parseBreakStatement() Statement {
	pos := p.curToken.Pos
	if !p.expectPeek(tokenSemicolon, "Expect ';' after 'break'.") {
		return nil
	}
	return &BreakStmt{position: pos}
}

func (p *parser) parseContinueStatement() Statement {
	pos := p.curToken.Pos
	if !p.expectPeek(tokenSemicolon, "Expect ';' after 'continue'.") {
		return nil
	}
	return &ContinueStmt{position: pos}
}

func (p *parser) parseFunctionStatement() Statement {
	pos := p.curToken.Pos
	if !p.expectPeek(tokenIdent, "Expect function name.") {
		return nil
	}

	fn := p.parseFunctionRest(pos, p.curToken.Lexeme, "function")
	if fn == nil {
		return nil
	}
	return fn
}

func (p *parser) parseClassStatement() Statement {
	pos := p.curToken.Pos
	if !p.expectPeek(tokenIdent, "Expect class name.") {
		return nil
	}
	name := p.curToken.Lexeme

	var super *VariableExpr
	if p.peekToken.Type == tokenLT {
		p.nextToken()
		if !p.expectPeek(tokenIdent, "Expect superclass name.") {
			return nil
		}
		super = &VariableExpr{position: p.curToken.Pos, Name: p.curToken.Lexeme}
	}

	if !p.expectPeek(tokenLBrace, "Expect '{' before class body.") {
		return nil
	}

	var methods []*FunctionStmt
	for p.peekToken.Type != tokenRBrace && p.peekToken.Type != tokenEOF {
		method := p.parseMethod()
		if method == nil {
			return nil
		}
		methods = append(methods, method)
	}

	if !p.expectPeek(tokenRBrace, "Expect '}' after class body.") {
		return nil
	}
	return &ClassStmt{position: pos, Name: name, Superclass: super, Methods: methods}
}

func (p *parser) parseMethod() *FunctionStmt {
	if !p.expectPeek(tokenIdent, "Expect method name.") {
		return nil
	}
	return p.parseFunctionRest(p.curToken.Pos, p.curToken.Lexeme, "method")
}

// parseFunctionRest parses the parameter list and body shared by function
// declarations and methods. curToken sits on the name when it is called and
// on the closing brace when it returns.
func (p *parser) parseFunctionRest(pos Position, name, kind string) *FunctionStmt {
	if !p.expectPeek(tokenLParen, fmt.Sprintf("Expect '(' after %s name.", kind)) {
		return nil
	}

	var params []Param
	if p.peekToken.Type != tokenRParen {
		for {
			if !p.expectPeek(tokenIdent, "Expect parameter name.") {
				return nil
			}
			if len(params) >= maxCallArgs {
				p.errorAtCur("Can't have more than 255 parameters.")
			}
			params = append(params, Param{Name: p.curToken.Lexeme, Pos: p.curToken.Pos})

			if p.peekToken.Type != tokenComma {
				break
			}
			p.nextToken()
		}
	}
	if !p.expectPeek(tokenRParen, "Expect ')' after parameters.") {
		return nil
	}

	if !p.expectPeek(tokenLBrace, fmt.Sprintf("Expect '{' before %s body.", kind)) {
		return nil
	}
	body := p.parseBlockStatement()
	if body == nil {
		return nil
	}

	return &FunctionStmt{position: pos, Name: name, Params: params, Body: body.Statements}
}
