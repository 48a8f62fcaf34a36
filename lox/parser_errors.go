package lox

import "fmt"

func (p *parser) addError(pos Position, format string, args ...any) {
	p.errs = append(p.errs, &ParseError{Message: fmt.Sprintf(format, args...), Pos: pos})
}

func (p *parser) errorAtCur(format string, args ...any) {
	p.addError(p.curToken.Pos, format, args...)
}

func (p *parser) errorNoPrefix() {
	if p.curToken.Type == tokenEOF {
		p.errorAtCur("Unexpected end of input.")
		return
	}
	p.errorAtCur("Expect expression.")
}

// expectPeek advances onto the next token when it has the wanted type.
// Otherwise it records message against the offending token and leaves the
// parser where it was so the caller can bail out.
func (p *parser) expectPeek(tt TokenType, message string) bool {
	if p.peekToken.Type == tt {
		p.nextToken()
		return true
	}
	p.addError(p.peekToken.Pos, "%s", message)
	return false
}

// synchronize skips ahead to a likely statement boundary so one syntax error
// does not cascade into spurious reports for the rest of the file. It stops
// just past a semicolon or just before a keyword that starts a statement.
func (p *parser) synchronize() {
	p.nextToken()

	for p.curToken.Type != tokenEOF {
		switch p.curToken.Type {
		case tokenSemicolon:
			p.nextToken()
			return
		case tokenClass, tokenFun, tokenVar, tokenFor, tokenIf, tokenWhile,
			tokenPrint, tokenReturn:
			return
		}
		p.nextToken()
	}
}
