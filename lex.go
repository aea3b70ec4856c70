package veq

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

type lexToken struct {
	text string
	kind tokenKind
	pos  int
}

func (t lexToken) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenEOF indicates the end of the input.
	tokenEOF
	// tokenNum is a decimal number token.
	tokenNum
	// tokenIdent is a variable, constant, or function name.
	tokenIdent
	// tokenOp is an operator.
	tokenOp
	// tokenLParen is an open parenthesis.
	tokenLParen
	// tokenRParen is a close parenthesis.
	tokenRParen
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=tokenKind -trimprefix=token

// Operators contains the characters which are considered to be operators.
const Operators = "+-*/^%"

type lexer struct {
	src string
	off int
	col int
	p   lexToken
}

func lex(src string) *lexer {
	return &lexer{src: src}
}

// push unreads a token so that it is the next token returned from next. Panics
// if there is already a pushed token.
func (l *lexer) push(tok lexToken) {
	if l.p.kind != tokenNone {
		panic("veq: double push")
	}
	l.p = tok
}

// readRune reads a rune from the src and updates the lexer's position info.
// The second result is false at the end of the input.
func (l *lexer) readRune() (rune, bool) {
	if l.off >= len(l.src) {
		return 0, false
	}
	r, sz := utf8.DecodeRuneInString(l.src[l.off:])
	l.off += sz
	l.col++
	return r, true
}

// unreadRune unreads r from the src and updates the lexer's position info.
func (l *lexer) unreadRune(r rune) {
	l.off -= utf8.RuneLen(r)
	l.col--
}

// next scans the next token from the input. Once the input is exhausted,
// every call returns an EOF token positioned at the column past the last
// rune. Token positions are 0-based rune columns.
func (l *lexer) next() (lexToken, error) {
	if l.p.kind != tokenNone {
		tok := l.p
		l.p = lexToken{}
		return tok, nil
	}
	for {
		tok := lexToken{pos: l.col}
		r, ok := l.readRune()
		if !ok {
			tok.kind = tokenEOF
			return tok, nil
		}
		switch {
		case unicode.IsSpace(r):
			continue
		case '0' <= r && r <= '9', r == '.':
			l.unreadRune(r)
			text, err := l.scanNum()
			if err != nil {
				return tok, err
			}
			tok.text = text
			tok.kind = tokenNum
			return tok, nil
		case unicode.IsLetter(r):
			l.unreadRune(r)
			tok.text = l.scanIdent()
			tok.kind = tokenIdent
			return tok, nil
		case r == '(':
			tok.text = "("
			tok.kind = tokenLParen
			return tok, nil
		case r == ')':
			tok.text = ")"
			tok.kind = tokenRParen
			return tok, nil
		case strings.ContainsRune(Operators, r):
			tok.text = string(r)
			tok.kind = tokenOp
			return tok, nil
		default:
			return tok, &LexError{Col: tok.pos, Char: r}
		}
	}
}

// scanNum scans a decimal literal: digits with at most one dot, no exponent.
// The scan stops before any rune that cannot continue the literal, so "1.2.3"
// lexes as "1.2" followed by ".3".
func (l *lexer) scanNum() (string, error) {
	start, startcol := l.off, l.col
	var dig, dot bool
	for {
		r, ok := l.readRune()
		if !ok {
			break
		}
		switch {
		case '0' <= r && r <= '9':
			dig = true
		case r == '.' && !dot:
			dot = true
		default:
			l.unreadRune(r)
			goto done
		}
	}
done:
	if !dig {
		// A dot with no digits on either side.
		return "", &LexError{Col: startcol, Char: '.'}
	}
	return l.src[start:l.off], nil
}

// scanIdent scans a maximal run of letters. Whether the name means anything
// is the parser's problem.
func (l *lexer) scanIdent() string {
	start := l.off
	for {
		r, ok := l.readRune()
		if !ok {
			break
		}
		if !unicode.IsLetter(r) {
			l.unreadRune(r)
			break
		}
	}
	return l.src[start:l.off]
}
