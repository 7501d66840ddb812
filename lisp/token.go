package lisp

// TokenType identifies the lexical category of a token.
type TokenType string

const (
	tokenIllegal TokenType = "ILLEGAL"
	tokenEOF     TokenType = "EOF"

	tokenIdent TokenType = "IDENT"
	tokenInt   TokenType = "INT"
	tokenFloat TokenType = "FLOAT"

	tokenLParen TokenType = "("
	tokenRParen TokenType = ")"

	tokenLet        TokenType = "LET"
	tokenTypeInt    TokenType = "TYPE_INT"
	tokenTypeDouble TokenType = "TYPE_DOUBLE"
	tokenQuit       TokenType = "QUIT"
)

var keywords = map[string]TokenType{
	"let":    tokenLet,
	"int":    tokenTypeInt,
	"double": tokenTypeDouble,
	"quit":   tokenQuit,
}

// Token captures lexical information for the parser.
type Token struct {
	Type    TokenType
	Literal string
	Pos     Position
}

// Position identifies a line and column in the source text.
type Position struct {
	Line   int
	Column int
}
