package lox

import "strconv"

// maxCallArgs caps call arguments and function parameters.
const maxCallArgs = 255

// Parse builds a program from a token stream. On a syntax error the parser
// records it, skips to the next statement boundary, and keeps going, so a
// single pass can report several independent mistakes. The returned
// statements are only meaningful when the error slice is empty.
func Parse(tokens []Token) ([]Statement, []error) {
	p := newParser(tokens)

	var program []Statement
	for p.curToken.Type != tokenEOF {
		if stmt := p.parseDeclaration(); stmt != nil {
			program = append(program, stmt)
			p.nextToken()
		} else {
			p.synchronize()
		}
	}

	return program, p.errs
}

// ParseExpression parses a token stream as a single expression and fails if
// anything but EOF follows it. Interactive hosts use it to tell expressions
// apart from statements when deciding whether to echo a result.
func ParseExpression(tokens []Token) (Expression, error) {
	p := newParser(tokens)

	expr := p.parseExpression(lowestPrec)
	if len(p.errs) > 0 {
		return nil, p.errs[0]
	}
	if p.peekToken.Type != tokenEOF {
		return nil, &ParseError{Message: "Expect end of expression.", Pos: p.peekToken.Pos}
	}
	return expr, nil
}

type (
	prefixParseFn func() Expression
	infixParseFn  func(Expression) Expression
)

type parser struct {
	tokens    []Token
	pos       int
	curToken  Token
	peekToken Token
	errs      []error

	prefixFns map[TokenType]prefixParseFn
	infixFns  map[TokenType]infixParseFn
}

func newParser(tokens []Token) *parser {
	if len(tokens) == 0 {
		tokens = []Token{{Type: tokenEOF, Pos: Position{Line: 1}}}
	}
	p := &parser{
		tokens:    tokens,
		prefixFns: make(map[TokenType]prefixParseFn),
		infixFns:  make(map[TokenType]infixParseFn),
	}

	p.registerPrefix(tokenNumber, p.parseNumberLiteral)
	p.registerPrefix(tokenString, p.parseStringLiteral)
	p.registerPrefix(tokenTrue, p.parseBoolLiteral)
	p.registerPrefix(tokenFalse, p.parseBoolLiteral)
	p.registerPrefix(tokenNil, p.parseNilLiteral)
	p.registerPrefix(tokenIdent, p.parseVariableExpression)
	p.registerPrefix(tokenLParen, p.parseGroupingExpression)
	p.registerPrefix(tokenBang, p.parsePrefixExpression)
	p.registerPrefix(tokenMinus, p.parsePrefixExpression)
	p.registerPrefix(tokenThis, p.parseThisExpression)
	p.registerPrefix(tokenSuper, p.parseSuperExpression)

	p.registerInfix(tokenPlus, p.parseInfixExpression)
	p.registerInfix(tokenMinus, p.parseInfixExpression)
	p.registerInfix(tokenStar, p.parseInfixExpression)
	p.registerInfix(tokenSlash, p.parseInfixExpression)
	p.registerInfix(tokenEQ, p.parseInfixExpression)
	p.registerInfix(tokenBangEQ, p.parseInfixExpression)
	p.registerInfix(tokenLT, p.parseInfixExpression)
	p.registerInfix(tokenLTE, p.parseInfixExpression)
	p.registerInfix(tokenGT, p.parseInfixExpression)
	p.registerInfix(tokenGTE, p.parseInfixExpression)
	p.registerInfix(tokenAnd, p.parseLogicalExpression)
	p.registerInfix(tokenOr, p.parseLogicalExpression)
	p.registerInfix(tokenAssign, p.parseAssignExpression)
	p.registerInfix(tokenLParen, p.parseCallExpression)
	p.registerInfix(tokenDot, p.parseGetExpression)

	// Prime curToken and peekToken.
	p.nextToken()
	p.nextToken()

	return p
}

func (p *parser) registerPrefix(tt TokenType, fn prefixParseFn) {
	p.prefixFns[tt] = fn
}

func (p *parser) registerInfix(tt TokenType, fn infixParseFn) {
	p.infixFns[tt] = fn
}

// nextToken advances one token. Once the stream is exhausted peekToken
// stays parked on EOF.
func (p *parser) nextToken() {
	p.curToken = p.peekToken
	if p.pos < len(p.tokens) {
		p.peekToken = p.tokens[p.pos]
		p.pos++
	}
}

// parseExpression is the Pratt expression loop. Parse functions leave
// curToken on the last token of what they parsed; the loop pulls in infix
// operators for as long as they bind tighter than precedence.
func (p *parser) parseExpression(precedence int) Expression {
	prefix := p.prefixFns[p.curToken.Type]
	if prefix == nil {
		p.errorNoPrefix()
		return nil
	}
	left := prefix()
	if left == nil {
		return nil
	}

	for precedence < p.peekPrecedence() {
		infix := p.infixFns[p.peekToken.Type]
		if infix == nil {
			return left
		}
		p.nextToken()
		left = infix(left)
		if left == nil {
			return nil
		}
	}

	return left
}

func (p *parser) parseNumberLiteral() Expression {
	value, ok := p.curToken.Literal.(float64)
	if !ok {
		value, _ = strconv.ParseFloat(p.curToken.Lexeme, 64)
	}
	return &NumberLiteral{position: p.curToken.Pos, Value: value}
}

func (p *parser) parseStringLiteral() Expression {
	value, _ := p.curToken.Literal.(string)
	return &StringLiteral{position: p.curToken.Pos, Value: value}
}

func (p *parser) parseBoolLiteral() Expression {
	return &BoolLiteral{position: p.curToken.Pos, Value: p.curToken.Type == tokenTrue}
}

func (p *parser) parseNilLiteral() Expression {
	return &NilLiteral{position: p.curToken.Pos}
}

func (p *parser) parseVariableExpression() Expression {
	return &VariableExpr{position: p.curToken.Pos, Name: p.curToken.Lexeme}
}

func (p *parser) parseThisExpression() Expression {
	return &ThisExpr{position: p.curToken.Pos}
}

func (p *parser) parseSuperExpression() Expression {
	pos := p.curToken.Pos
	if !p.expectPeek(tokenDot, "Expect '.' after 'super'.") {
		return nil
	}
	if !p.expectPeek(tokenIdent, "Expect superclass method name.") {
		return nil
	}
	return &SuperExpr{position: pos, Method: p.curToken.Lexeme}
}

func (p *parser) parseGroupingExpression() Expression {
	pos := p.curToken.Pos
	p.nextToken()

	expr := p.parseExpression(lowestPrec)
	if expr == nil {
		return nil
	}
	if !p.expectPeek(tokenRParen, "Expect ')' after expression.") {
		return nil
	}
	return &GroupingExpr{position: pos, Expr: expr}
}

func (p *parser) parsePrefixExpression() Expression {
	pos := p.curToken.Pos
	op := p.curToken.Type
	p.nextToken()

	right := p.parseExpression(precPrefix)
	if right == nil {
		return nil
	}
	return &UnaryExpr{position: pos, Operator: op, Right: right}
}

func (p *parser) parseInfixExpression(left Expression) Expression {
	pos := p.curToken.Pos
	op := p.curToken.Type
	prec := p.curPrecedence()
	p.nextToken()

	right := p.parseExpression(prec)
	if right == nil {
		return nil
	}
	return &BinaryExpr{position: pos, Operator: op, Left: left, Right: right}
}

func (p *parser) parseLogicalExpression(left Expression) Expression {
	pos := p.curToken.Pos
	op := p.curToken.Type
	prec := p.curPrecedence()
	p.nextToken()

	right := p.parseExpression(prec)
	if right == nil {
		return nil
	}
	return &LogicalExpr{position: pos, Operator: op, Left: left, Right: right}
}

// parseAssignExpression handles '=' as a right-associative infix. Only a
// variable or a property access can be assigned to; anything else reports
// an error but parsing carries on with the left side, since the rest of
// the expression is still well formed.
func (p *parser) parseAssignExpression(left Expression) Expression {
	pos := p.curToken.Pos
	p.nextToken()

	value := p.parseExpression(precAssign - 1)
	if value == nil {
		return nil
	}

	switch target := left.(type) {
	case *VariableExpr:
		return &AssignExpr{position: target.Pos(), Name: target.Name, Value: value}
	case *GetExpr:
		return &SetExpr{position: target.Pos(), Object: target.Object, Name: target.Name, Value: value}
	}

	p.addError(pos, "Invalid assignment target.")
	return left
}

func (p *parser) parseCallExpression(callee Expression) Expression {
	pos := p.curToken.Pos

	var args []Expression
	if p.peekToken.Type != tokenRParen {
		for {
			p.nextToken()
			arg := p.parseExpression(lowestPrec)
			if arg == nil {
				return nil
			}
			if len(args) >= maxCallArgs {
				p.addError(arg.Pos(), "Can't have more than 255 arguments.")
			}
			args = append(args, arg)

			if p.peekToken.Type != tokenComma {
				break
			}
			p.nextToken()
		}
	}

	if !p.expectPeek(tokenRParen, "Expect ')' after arguments.") {
		return nil
	}
	return &CallExpr{position: pos, Callee: callee, Args: args}
}

func (p *parser) parseGetExpression(object Expression) Expression {
	pos := p.curToken.Pos
	if !p.expectPeek(tokenIdent, "Expect property name after '.'.") {
		return nil
	}
	return &GetExpr{position: pos, Object: object, Name: p.curToken.Lexeme}
}
