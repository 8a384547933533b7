package rpn

import (
	"strconv"
	"unicode/utf8"
)

type lexToken struct {
	kind tokenKind
	// pos and end are the byte offsets of the start of the token and just
	// past its end.
	pos, end int
}

func (t lexToken) String() string {
	return t.kind.String() + "@" + strconv.Itoa(t.pos) + ":" + strconv.Itoa(t.end)
}

// text returns the token's bytes within src.
func (t lexToken) text(src []byte) []byte {
	return src[t.pos:t.end]
}

type tokenKind int8

const (
	tokenNone tokenKind = iota
	// tokenEOF indicates the end of the input.
	tokenEOF
	// tokenNum is a number literal.
	tokenNum
	// tokenOp is an operator.
	tokenOp
	// tokenOpen is an open parenthesis.
	tokenOpen
	// tokenClose is a close parenthesis.
	tokenClose
)

func (k tokenKind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case tokenEOF:
		return "EOF"
	case tokenNum:
		return "Num"
	case tokenOp:
		return "Op"
	case tokenOpen:
		return "Open"
	case tokenClose:
		return "Close"
	default:
		return "tokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Operators contains the bytes which are binary operators in infix input.
const Operators = "+-*/^"

// Negate is the operator that marks unary negation in postfix text.
const Negate = '~'

// lexer scans tokens from a byte buffer. The zero value scans infix input
// from the start of a nil buffer.
type lexer struct {
	src []byte
	off int
	// postfix selects postfix tokens: Negate is an operator and parentheses
	// are invalid characters.
	postfix bool
}

// next scans the next token from the input. At the end of input, the result
// is an EOF token positioned just past the last byte. When next returns an
// error, the lexer has already skipped the offending bytes.
func (l *lexer) next() (lexToken, error) {
	for l.off < len(l.src) && isSpace(l.src[l.off]) {
		l.off++
	}
	tok := lexToken{pos: l.off}
	if l.off >= len(l.src) {
		tok.kind = tokenEOF
		tok.end = l.off
		return tok, nil
	}
	c := l.src[l.off]
	switch {
	case isNumByte(c):
		return l.scanNum()
	case isOperator(c), l.postfix && c == Negate:
		tok.kind = tokenOp
	case !l.postfix && c == '(':
		tok.kind = tokenOpen
	case !l.postfix && c == ')':
		tok.kind = tokenClose
	default:
		// Report the whole rune so the error text is legible.
		_, sz := utf8.DecodeRune(l.src[l.off:])
		l.off += sz
		return tok, fail(InvalidCharacter, tok.pos, l.src[tok.pos:l.off])
	}
	l.off++
	tok.end = l.off
	return tok, nil
}

// scanNum scans a number literal: digits with at most one decimal point and
// at least one digit.
func (l *lexer) scanNum() (lexToken, error) {
	tok := lexToken{kind: tokenNum, pos: l.off}
	var dig, dot, bad bool
	for ; l.off < len(l.src) && isNumByte(l.src[l.off]); l.off++ {
		if l.src[l.off] == '.' {
			bad = bad || dot
			dot = true
			continue
		}
		dig = true
	}
	tok.end = l.off
	if bad || !dig {
		return lexToken{pos: tok.pos}, fail(InvalidNumber, tok.pos, tok.text(l.src))
	}
	return tok, nil
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

func isNumByte(c byte) bool {
	return '0' <= c && c <= '9' || c == '.'
}

func isOperator(c byte) bool {
	switch c {
	case '+', '-', '*', '/', '^':
		return true
	}
	return false
}
