package savefile

import "fmt"

type tokenKind int

const (
	tokenEOF tokenKind = iota
	tokenLBrace
	tokenRBrace
	tokenLParen
	tokenRParen
	tokenComma
	tokenInt
	tokenIdent
)

func (k tokenKind) String() string {
	switch k {
	case tokenEOF:
		return "end of input"
	case tokenLBrace:
		return "'{'"
	case tokenRBrace:
		return "'}'"
	case tokenLParen:
		return "'('"
	case tokenRParen:
		return "')'"
	case tokenComma:
		return "','"
	case tokenInt:
		return "integer"
	case tokenIdent:
		return "identifier"
	}
	return fmt.Sprintf("token(%d)", int(k))
}

type token struct {
	kind tokenKind
	text string
	pos  int
}

// lexer splits save data into tokens. Unknown bytes become single-byte
// identifier tokens so the parser can report them with a position.
type lexer struct {
	input []byte
	pos   int
}

func newLexer(input []byte) *lexer { return &lexer{input: input} }

func (l *lexer) next() token {
	l.skipWhitespace()
	if l.pos >= len(l.input) {
		return token{kind: tokenEOF, pos: l.pos}
	}
	start := l.pos
	ch := l.input[l.pos]
	switch ch {
	case '{':
		l.pos++
		return token{kind: tokenLBrace, text: "{", pos: start}
	case '}':
		l.pos++
		return token{kind: tokenRBrace, text: "}", pos: start}
	case '(':
		l.pos++
		return token{kind: tokenLParen, text: "(", pos: start}
	case ')':
		l.pos++
		return token{kind: tokenRParen, text: ")", pos: start}
	case ',':
		l.pos++
		return token{kind: tokenComma, text: ",", pos: start}
	}

	if isDigit(ch) || ch == '-' || ch == '+' {
		l.pos++
		for l.pos < len(l.input) && isDigit(l.input[l.pos]) {
			l.pos++
		}
		return token{kind: tokenInt, text: string(l.input[start:l.pos]), pos: start}
	}
	if isLetter(ch) {
		for l.pos < len(l.input) && (isLetter(l.input[l.pos]) || isDigit(l.input[l.pos])) {
			l.pos++
		}
		return token{kind: tokenIdent, text: string(l.input[start:l.pos]), pos: start}
	}
	l.pos++
	return token{kind: tokenIdent, text: string(ch), pos: start}
}

func (l *lexer) skipWhitespace() {
	for l.pos < len(l.input) {
		switch l.input[l.pos] {
		case ' ', '\t', '\n', '\r':
			l.pos++
		default:
			return
		}
	}
}

func isDigit(ch byte) bool  { return ch >= '0' && ch <= '9' }
func isLetter(ch byte) bool { return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' || ch == '_' }
