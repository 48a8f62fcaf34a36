package lox

// TokenType identifies the lexical category of a token.
type TokenType string

const (
	tokenEOF TokenType = "EOF"

	tokenIdent  TokenType = "IDENT"
	tokenNumber TokenType = "NUMBER"
	tokenString TokenType = "STRING"

	tokenLParen    TokenType = "("
	tokenRParen    TokenType = ")"
	tokenLBrace    TokenType = "{"
	tokenRBrace    TokenType = "}"
	tokenComma     TokenType = ","
	tokenDot       TokenType = "."
	tokenMinus     TokenType = "-"
	tokenPlus      TokenType = "+"
	tokenSemicolon TokenType = ";"
	tokenSlash     TokenType = "/"
	tokenStar      TokenType = "*"

	tokenBang   TokenType = "!"
	tokenBangEQ TokenType = "!="
	tokenAssign TokenType = "="
	tokenEQ     TokenType = "=="
	tokenGT     TokenType = ">"
	tokenGTE    TokenType = ">="
	tokenLT     TokenType = "<"
	tokenLTE    TokenType = "<="

	tokenAnd      TokenType = "AND"
	tokenBreak    TokenType = "BREAK"
	tokenClass    TokenType = "CLASS"
	tokenContinue TokenType = "CONTINUE"
	tokenElse     TokenType = "ELSE"
	tokenFalse    TokenType = "FALSE"
	tokenFor      TokenType = "FOR"
	tokenFun      TokenType = "FUN"
	tokenIf       TokenType = "IF"
	tokenNil      TokenType = "NIL"
	tokenOr       TokenType = "OR"
	tokenPrint    TokenType = "PRINT"
	tokenReturn   TokenType = "RETURN"
	tokenSuper    TokenType = "SUPER"
	tokenThis     TokenType = "THIS"
	tokenTrue     TokenType = "TRUE"
	tokenVar      TokenType = "VAR"
	tokenWhile    TokenType = "WHILE"
)

// Token captures lexical information for the parser. Literal holds the
// decoded payload for number (float64) and string tokens, nil otherwise.
type Token struct {
	Type    TokenType
	Lexeme  string
	Literal any
	Pos     Position
}

// Position locates a token or AST node in the source text. Lines and
// columns are 1-based.
type Position struct {
	Line   int
	Column int
}

func lookupIdent(ident string) TokenType {
	switch ident {
	case "and":
		return tokenAnd
	case "break":
		return tokenBreak
	case "class":
		return tokenClass
	case "continue":
		return tokenContinue
	case "else":
		return tokenElse
	case "false":
		return tokenFalse
	case "for":
		return tokenFor
	case "fun":
		return tokenFun
	case "if":
		return tokenIf
	case "nil":
		return tokenNil
	case "or":
		return tokenOr
	case "print":
		return tokenPrint
	case "return":
		return tokenReturn
	case "super":
		return tokenSuper
	case "this":
		return tokenThis
	case "true":
		return tokenTrue
	case "var":
		return tokenVar
	case "while":
		return tokenWhile
	}
	return tokenIdent
}
