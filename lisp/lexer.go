package lisp

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

type lexer struct {
	input string

	offset int
	width  int

	line   int
	column int

	ch rune
}

func newLexer(input string) *lexer {
	l := &lexer{input: input, line: 1, column: 0}
	l.readRune()
	return l
}

func (l *lexer) readRune() {
	if l.offset >= len(l.input) {
		l.width = 0
		l.ch = 0
		return
	}

	r, w := utf8.DecodeRuneInString(l.input[l.offset:])
	l.width = w
	l.offset += w

	if r == '\n' {
		l.line++
		l.column = 0
	} else {
		l.column++
	}

	l.ch = r
}

func (l *lexer) peekRune() rune {
	if l.offset >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.offset:])
	return r
}

func (l *lexer) NextToken() Token {
	l.skipWhitespaceAndComments()

	tok := Token{Pos: Position{Line: l.line, Column: l.column}}

	switch {
	case l.ch == 0:
		tok.Type = tokenEOF
		tok.Literal = ""
	case l.ch == '(':
		tok = l.makeToken(tokenLParen, "(")
		l.readRune()
	case l.ch == ')':
		tok = l.makeToken(tokenRParen, ")")
		l.readRune()
	case (l.ch == '+' || l.ch == '-') && unicode.IsDigit(l.peekRune()):
		literal, isFloat := l.readNumber()
		tok.Literal = literal
		if isFloat {
			tok.Type = tokenFloat
		} else {
			tok.Type = tokenInt
		}
	case unicode.IsDigit(l.ch):
		literal, isFloat := l.readNumber()
		tok.Literal = literal
		if isFloat {
			tok.Type = tokenFloat
		} else {
			tok.Type = tokenInt
		}
	case isIdentifierStart(l.ch):
		literal := l.readIdentifier()
		tok.Type = lookupIdent(literal)
		tok.Literal = literal
	default:
		tok = l.makeToken(tokenIllegal, string(l.ch))
		l.readRune()
	}

	return tok
}

func (l *lexer) currentOffset() int {
	return l.offset - l.width
}

func (l *lexer) makeToken(tt TokenType, literal string) Token {
	return Token{Type: tt, Literal: literal, Pos: Position{Line: l.line, Column: l.column}}
}

func (l *lexer) skipWhitespaceAndComments() {
	for {
		switch l.ch {
		case ' ', '\t', '\r', '\n':
			l.readRune()
			continue
		case ';':
			l.skipComment()
			continue
		default:
			return
		}
	}
}

func (l *lexer) skipComment() {
	for l.ch != 0 && l.ch != '\n' {
		l.readRune()
	}
}

func (l *lexer) readIdentifier() string {
	start := l.currentOffset()
	for isIdentifierRune(l.peekRune()) {
		l.readRune()
	}
	literal := l.input[start:l.offset]
	l.readRune()
	return literal
}

func (l *lexer) readNumber() (string, bool) {
	var sb strings.Builder
	hasDot := false

	// current rune is a sign or the first digit
	sb.WriteRune(l.ch)

	for {
		r := l.peekRune()
		switch {
		case r == '.' && !hasDot && unicode.IsDigit(l.peekRuneAfterDot()):
			hasDot = true
			l.readRune()
			sb.WriteRune('.')
		case unicode.IsDigit(r):
			l.readRune()
			sb.WriteRune(r)
		default:
			literal := sb.String()
			l.readRune()
			return literal, hasDot
		}
	}
}

func (l *lexer) peekRuneAfterDot() rune {
	idx := l.offset
	if idx >= len(l.input) {
		return 0
	}
	_, w := utf8.DecodeRuneInString(l.input[idx:])
	idx += w
	if idx >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[idx:])
	return r
}

func isIdentifierStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_' || r == '$'
}

func isIdentifierRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '$'
}

func lookupIdent(ident string) TokenType {
	if tt, ok := keywords[ident]; ok {
		return tt
	}
	return tokenIdent
}
