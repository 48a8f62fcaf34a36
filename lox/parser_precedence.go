package lox

// Binding powers, weakest first. Assignment sits below the logical
// operators so that a = b or c assigns the whole disjunction.
const (
	lowestPrec = iota
	precAssign
	precOr
	precAnd
	precEquality
	precComparison
	precSum
	precProduct
	precPrefix
	precCall
)

var precedences = map[TokenType]int{
	tokenAssign: precAssign,
	tokenOr:     precOr,
	tokenAnd:    precAnd,
	tokenEQ:     precEquality,
	tokenBangEQ: precEquality,
	tokenLT:     precComparison,
	tokenLTE:    precComparison,
	tokenGT:     precComparison,
	tokenGTE:    precComparison,
	tokenPlus:   precSum,
	tokenMinus:  precSum,
	tokenSlash:  precProduct,
	tokenStar:   precProduct,
	tokenLParen: precCall,
	tokenDot:    precCall,
}

func (p *parser) curPrecedence() int {
	if prec, ok := precedences[p.curToken.Type]; ok {
		return prec
	}
	return lowestPrec
}

func (p *parser) peekPrecedence() int {
	if prec, ok := precedences[p.peekToken.Type]; ok {
		return prec
	}
	return lowestPrec
}
