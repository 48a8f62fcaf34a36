package lox

import (
	"fmt"
	"strconv"
	"unicode/utf8"
)

// Scan converts source text into a token stream. The returned slice always
// ends with an EOF token. Scanning keeps going after a lexical error so a
// single pass can report every malformed character; errors come back in
// source order.
func Scan(source string) ([]Token, []error) {
	s := newScanner(source)

	var tokens []Token
	for {
		tok := s.nextToken()
		tokens = append(tokens, tok)
		if tok.Type == tokenEOF {
			break
		}
	}

	return tokens, s.errs
}

type scanner struct {
	input  string
	offset int
	width  int
	line   int
	column int
	ch     rune
	errs   []error
}

func newScanner(input string) *scanner {
	s := &scanner{input: input, line: 1}
	s.readRune()
	return s
}

func (s *scanner) nextToken() Token {
	for {
		s.skipWhitespaceAndComments()

		pos := Position{Line: s.line, Column: s.column}

		switch {
		case s.ch == 0:
			return Token{Type: tokenEOF, Pos: pos}
		case s.ch == '"':
			return s.scanString(pos)
		case isDigit(s.ch):
			return s.scanNumber(pos)
		case isIdentStart(s.ch):
			return s.scanIdent(pos)
		}

		var tok Token
		switch s.ch {
		case '(':
			tok = s.makeToken(tokenLParen, pos)
		case ')':
			tok = s.makeToken(tokenRParen, pos)
		case '{':
			tok = s.makeToken(tokenLBrace, pos)
		case '}':
			tok = s.makeToken(tokenRBrace, pos)
		case ',':
			tok = s.makeToken(tokenComma, pos)
		case '.':
			tok = s.makeToken(tokenDot, pos)
		case '-':
			tok = s.makeToken(tokenMinus, pos)
		case '+':
			tok = s.makeToken(tokenPlus, pos)
		case ';':
			tok = s.makeToken(tokenSemicolon, pos)
		case '/':
			tok = s.makeToken(tokenSlash, pos)
		case '*':
			tok = s.makeToken(tokenStar, pos)
		case '!':
			tok = s.makeTwoToken(tokenBang, tokenBangEQ, pos)
		case '=':
			tok = s.makeTwoToken(tokenAssign, tokenEQ, pos)
		case '>':
			tok = s.makeTwoToken(tokenGT, tokenGTE, pos)
		case '<':
			tok = s.makeTwoToken(tokenLT, tokenLTE, pos)
		default:
			s.errorf(pos, "Unexpected character '%c'.", s.ch)
			s.readRune()
			continue
		}

		s.readRune()
		return tok
	}
}

func (s *scanner) makeToken(tt TokenType, pos Position) Token {
	return Token{Type: tt, Lexeme: string(s.ch), Pos: pos}
}

// makeTwoToken scans operators that may pair with a trailing '='. The two
// argument is used when the next rune is '=', the one argument otherwise.
func (s *scanner) makeTwoToken(one, two TokenType, pos Position) Token {
	if s.peekRune() == '=' {
		s.readRune()
		return Token{Type: two, Lexeme: string(two), Pos: pos}
	}
	return Token{Type: one, Lexeme: string(s.ch), Pos: pos}
}

func (s *scanner) scanString(pos Position) Token {
	start := s.offset + s.width
	for {
		s.readRune()
		if s.ch == 0 {
			s.errorf(pos, "Unterminated string.")
			return Token{Type: tokenEOF, Pos: Position{Line: s.line, Column: s.column}}
		}
		if s.ch == '"' {
			break
		}
	}

	lit := s.input[start:s.offset]
	s.readRune()
	return Token{Type: tokenString, Lexeme: `"` + lit + `"`, Literal: lit, Pos: pos}
}

func (s *scanner) scanNumber(pos Position) Token {
	start := s.offset
	for isDigit(s.ch) {
		s.readRune()
	}

	// A trailing '.' is not part of the number, so "5." scans as 5 then dot.
	if s.ch == '.' && isDigit(s.peekRune()) {
		s.readRune()
		for isDigit(s.ch) {
			s.readRune()
		}
	}

	lexeme := s.input[start:s.offset]
	value, _ := strconv.ParseFloat(lexeme, 64)
	return Token{Type: tokenNumber, Lexeme: lexeme, Literal: value, Pos: pos}
}

func (s *scanner) scanIdent(pos Position) Token {
	start := s.offset
	for isIdentPart(s.ch) {
		s.readRune()
	}

	lexeme := s.input[start:s.offset]
	return Token{Type: lookupIdent(lexeme), Lexeme: lexeme, Pos: pos}
}

func (s *scanner) skipWhitespaceAndComments() {
	for {
		switch {
		case s.ch == ' ' || s.ch == '\t' || s.ch == '\r' || s.ch == '\n':
			s.readRune()
		case s.ch == '/' && s.peekRune() == '/':
			for s.ch != '\n' && s.ch != 0 {
				s.readRune()
			}
		case s.ch == '/' && s.peekRune() == '*':
			s.skipBlockComment()
		default:
			return
		}
	}
}

// skipBlockComment consumes a /* ... */ comment. Block comments do not nest:
// the first */ closes the comment no matter how many /* appeared inside.
func (s *scanner) skipBlockComment() {
	pos := Position{Line: s.line, Column: s.column}
	s.readRune()
	s.readRune()

	for {
		if s.ch == 0 {
			s.errorf(pos, "Unterminated block comment.")
			return
		}
		if s.ch == '*' && s.peekRune() == '/' {
			s.readRune()
			s.readRune()
			return
		}
		s.readRune()
	}
}

func (s *scanner) readRune() {
	s.offset += s.width
	if s.offset >= len(s.input) {
		s.ch = 0
		s.width = 0
		return
	}

	if s.ch == '\n' {
		s.line++
		s.column = 0
	}

	r, width := utf8.DecodeRuneInString(s.input[s.offset:])
	s.ch = r
	s.width = width
	s.column++
}

func (s *scanner) peekRune() rune {
	if s.offset+s.width >= len(s.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(s.input[s.offset+s.width:])
	return r
}

func (s *scanner) errorf(pos Position, format string, args ...any) {
	s.errs = append(s.errs, &ScanError{Message: fmt.Sprintf(format, args...), Pos: pos})
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentStart(ch rune) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isIdentPart(ch rune) bool {
	return isIdentStart(ch) || isDigit(ch)
}
