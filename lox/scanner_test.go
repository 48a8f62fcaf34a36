package lox

import (
	"strings"
	"testing"
)

func scanClean(t *testing.T, source string) []Token {
	t.Helper()
	tokens, errs := Scan(source)
	if len(errs) > 0 {
		t.Fatalf("scan failed: %v", errs[0])
	}
	return tokens
}

func TestScanPunctuationAndOperators(t *testing.T) {
	tokens := scanClean(t, `(){},.-+;/*`)

	want := []TokenType{
		tokenLParen, tokenRParen, tokenLBrace, tokenRBrace, tokenComma,
		tokenDot, tokenMinus, tokenPlus, tokenSemicolon, tokenSlash,
		tokenStar, tokenEOF,
	}
	if len(tokens) != len(want) {
		t.Fatalf("expected %d tokens, got %d", len(want), len(tokens))
	}
	for i, tt := range want {
		if tokens[i].Type != tt {
			t.Fatalf("token %d: expected %s, got %s", i, tt, tokens[i].Type)
		}
	}
}

func TestScanTwoCharOperators(t *testing.T) {
	tokens := scanClean(t, `! != = == < <= > >=`)

	want := []TokenType{
		tokenBang, tokenBangEQ, tokenAssign, tokenEQ,
		tokenLT, tokenLTE, tokenGT, tokenGTE, tokenEOF,
	}
	for i, tt := range want {
		if tokens[i].Type != tt {
			t.Fatalf("token %d: expected %s, got %s", i, tt, tokens[i].Type)
		}
	}
}

func TestScanNumberLiterals(t *testing.T) {
	tokens := scanClean(t, `12 3.5 0.25`)

	want := []float64{12, 3.5, 0.25}
	for i, value := range want {
		if tokens[i].Type != tokenNumber {
			t.Fatalf("token %d: expected number, got %s", i, tokens[i].Type)
		}
		if got := tokens[i].Literal.(float64); got != value {
			t.Fatalf("token %d: expected %v, got %v", i, value, got)
		}
	}
}

func TestScanTrailingDotStaysSeparate(t *testing.T) {
	tokens := scanClean(t, `5.`)

	if tokens[0].Type != tokenNumber || tokens[0].Literal.(float64) != 5 {
		t.Fatalf("expected number 5, got %v", tokens[0])
	}
	if tokens[1].Type != tokenDot {
		t.Fatalf("expected dot after number, got %s", tokens[1].Type)
	}
}

func TestScanStringLiteral(t *testing.T) {
	tokens := scanClean(t, `"hello world"`)

	if tokens[0].Type != tokenString {
		t.Fatalf("expected string, got %s", tokens[0].Type)
	}
	if tokens[0].Literal.(string) != "hello world" {
		t.Fatalf("unexpected literal: %q", tokens[0].Literal)
	}
	if tokens[0].Lexeme != `"hello world"` {
		t.Fatalf("unexpected lexeme: %q", tokens[0].Lexeme)
	}
}

func TestScanMultiLineStringTracksLines(t *testing.T) {
	tokens := scanClean(t, "\"a\nb\" x")

	if tokens[0].Type != tokenString || tokens[0].Literal.(string) != "a\nb" {
		t.Fatalf("unexpected string token: %v", tokens[0])
	}
	if tokens[0].Pos.Line != 1 {
		t.Fatalf("string should be located at its opening quote, got line %d", tokens[0].Pos.Line)
	}
	if tokens[1].Pos.Line != 2 {
		t.Fatalf("identifier after the string should sit on line 2, got %d", tokens[1].Pos.Line)
	}
}

func TestScanKeywordsAndIdentifiers(t *testing.T) {
	tokens := scanClean(t, `and class else false for fun if nil or print return super this true var while break continue andor _x`)

	want := []TokenType{
		tokenAnd, tokenClass, tokenElse, tokenFalse, tokenFor, tokenFun,
		tokenIf, tokenNil, tokenOr, tokenPrint, tokenReturn, tokenSuper,
		tokenThis, tokenTrue, tokenVar, tokenWhile, tokenBreak, tokenContinue,
		tokenIdent, tokenIdent, tokenEOF,
	}
	for i, tt := range want {
		if tokens[i].Type != tt {
			t.Fatalf("token %d: expected %s, got %s (%q)", i, tt, tokens[i].Type, tokens[i].Lexeme)
		}
	}
	if tokens[18].Lexeme != "andor" {
		t.Fatalf("keyword prefix must not split identifiers: %q", tokens[18].Lexeme)
	}
}

func TestScanPositions(t *testing.T) {
	tokens := scanClean(t, "var x = 1;\nprint x;")

	wants := []struct {
		lexeme string
		line   int
		column int
	}{
		{"var", 1, 1},
		{"x", 1, 5},
		{"=", 1, 7},
		{"1", 1, 9},
		{";", 1, 10},
		{"print", 2, 1},
		{"x", 2, 7},
		{";", 2, 8},
	}
	for i, want := range wants {
		tok := tokens[i]
		if tok.Lexeme != want.lexeme || tok.Pos.Line != want.line || tok.Pos.Column != want.column {
			t.Fatalf("token %d: expected %q at %d:%d, got %q at %d:%d",
				i, want.lexeme, want.line, want.column, tok.Lexeme, tok.Pos.Line, tok.Pos.Column)
		}
	}
}

func TestScanLineComment(t *testing.T) {
	tokens := scanClean(t, "1 // the rest is ignored ,.;\n2")

	if tokens[0].Literal.(float64) != 1 || tokens[1].Literal.(float64) != 2 {
		t.Fatalf("unexpected tokens around comment: %v %v", tokens[0], tokens[1])
	}
	if tokens[2].Type != tokenEOF {
		t.Fatalf("expected EOF after comment, got %s", tokens[2].Type)
	}
}

func TestScanBlockComment(t *testing.T) {
	tokens := scanClean(t, "1 /* spans\nseveral\nlines */ 2")

	if tokens[0].Literal.(float64) != 1 || tokens[1].Literal.(float64) != 2 {
		t.Fatalf("unexpected tokens around block comment")
	}
	if tokens[1].Pos.Line != 3 {
		t.Fatalf("line counting should continue inside block comments, got line %d", tokens[1].Pos.Line)
	}
}

func TestScanBlockCommentsDoNotNest(t *testing.T) {
	// The first */ closes the comment, so the trailing 2 is code.
	tokens := scanClean(t, "/* outer /* inner */ 2")

	if tokens[0].Type != tokenNumber || tokens[0].Literal.(float64) != 2 {
		t.Fatalf("expected number after first comment close, got %v", tokens[0])
	}
}

func TestScanUnterminatedBlockComment(t *testing.T) {
	_, errs := Scan("1\n/* never closed")

	if len(errs) != 1 {
		t.Fatalf("expected one error, got %d", len(errs))
	}
	if got := errs[0].Error(); got != "[line 2] Unterminated block comment." {
		t.Fatalf("unexpected error: %q", got)
	}
}

func TestScanUnterminatedString(t *testing.T) {
	tokens, errs := Scan(`"abc`)

	if len(errs) != 1 {
		t.Fatalf("expected one error, got %d", len(errs))
	}
	if got := errs[0].Error(); got != "[line 1] Unterminated string." {
		t.Fatalf("unexpected error: %q", got)
	}
	if tokens[len(tokens)-1].Type != tokenEOF {
		t.Fatalf("token stream must still end in EOF")
	}
}

func TestScanUnexpectedCharactersKeepGoing(t *testing.T) {
	tokens, errs := Scan("@ 1 #")

	if len(errs) != 2 {
		t.Fatalf("expected two errors, got %d", len(errs))
	}
	if !strings.Contains(errs[0].Error(), "Unexpected character '@'.") {
		t.Fatalf("unexpected first error: %v", errs[0])
	}
	if !strings.Contains(errs[1].Error(), "Unexpected character '#'.") {
		t.Fatalf("unexpected second error: %v", errs[1])
	}
	if tokens[0].Type != tokenNumber {
		t.Fatalf("scanning should continue past bad characters, got %s", tokens[0].Type)
	}
}

func TestScanEmptySource(t *testing.T) {
	tokens := scanClean(t, "")

	if len(tokens) != 1 || tokens[0].Type != tokenEOF {
		t.Fatalf("expected a lone EOF token, got %v", tokens)
	}
}
