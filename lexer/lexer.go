/*
File    : eta/lexer/lexer.go

Package lexer turns eta source text into a stream of Tokens. It is a
hand-written scanner (no generated DFA, no regex) that tracks byte-accurate
source locations so that the parser and evaluator can reproduce the
offending line and a caret when something goes wrong.
*/
package lexer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

var errorRed = color.New(color.FgRed)

// Lexer scans a single source buffer. It is cheap to copy by value — Src is
// an immutable string and every other field is a scalar — which is exactly
// what PeekToken relies on: it clones the Lexer, advances the clone, and
// leaves the receiver untouched.
type Lexer struct {
	Filename string
	Src      string

	cursor    int
	row       int
	lineBegin int

	last Token
}

// NewLexer creates a Lexer positioned at the start of src. filename is
// carried through purely for diagnostics.
func NewLexer(filename, src string) *Lexer {
	return &Lexer{Filename: filename, Src: src}
}

// loc captures the lexer's current position as a Location.
func (lex *Lexer) loc() Location {
	return Location{Cursor: lex.cursor, Row: lex.row, LineBegin: lex.lineBegin}
}

// Seek repositions the lexer at loc, discarding any token lookahead. It is
// used by FormatError to rewind to an earlier location before re-scanning.
func (lex *Lexer) Seek(loc Location) {
	lex.cursor = loc.Cursor
	lex.row = loc.Row
	lex.lineBegin = loc.LineBegin
}

// PeekToken returns the next token without consuming it. It works by
// cloning the lexer's value and invoking NextToken on the clone — Lexer
// holds no pointers into mutable state, so this leaves the receiver
// untouched.
func (lex *Lexer) PeekToken() Token {
	clone := *lex
	return clone.NextToken()
}

func (lex *Lexer) at(i int) byte {
	if i < 0 || i >= len(lex.Src) {
		return 0
	}
	return lex.Src[i]
}

func (lex *Lexer) current() byte  { return lex.at(lex.cursor) }
func (lex *Lexer) peekByte() byte { return lex.at(lex.cursor + 1) }

// advance consumes the current byte, tracking row/lineBegin across newlines.
func (lex *Lexer) advance() {
	if lex.current() == '\n' {
		lex.row++
		lex.lineBegin = lex.cursor + 1
	}
	lex.cursor++
}

func (lex *Lexer) skipWhitespaceAndComments() {
	for {
		switch {
		case isSpace(lex.current()):
			lex.advance()
		case lex.current() == '#':
			for lex.current() != '\n' && lex.current() != 0 {
				lex.advance()
			}
		case lex.current() == '/' && lex.peekByte() == '*':
			lex.advance()
			lex.advance()
			for !(lex.current() == '*' && lex.peekByte() == '/') && lex.current() != 0 {
				lex.advance()
			}
			if lex.current() != 0 {
				lex.advance()
				lex.advance()
			}
		default:
			return
		}
	}
}

// two builds a two-character Token if the lookahead matches cont, otherwise
// falls back to a one-character Token of kind single.
func (lex *Lexer) two(start Location, single Kind, cont byte, double Kind) Token {
	if lex.peekByte() == cont {
		lit := string(lex.current()) + string(cont)
		lex.advance()
		lex.advance()
		return Token{Kind: double, Literal: lit, Loc: start}
	}
	lit := string(lex.current())
	lex.advance()
	return Token{Kind: single, Literal: lit, Loc: start}
}

// NextToken scans and returns the next token, advancing the lexer past it.
func (lex *Lexer) NextToken() Token {
	lex.skipWhitespaceAndComments()
	start := lex.loc()
	c := lex.current()

	var tok Token
	switch {
	case c == 0:
		tok = Token{Kind: EOF, Loc: start}
	case c == '\'':
		tok = lex.readString(start)
	case isDigit(c):
		tok = lex.readNumber(start)
	case isAlpha(c):
		tok = lex.readIdentifier(start)
	default:
		tok = lex.readOperator(start)
	}

	lex.last = tok
	return tok
}

func (lex *Lexer) readOperator(start Location) Token {
	c := lex.current()
	switch c {
	case '(':
		lex.advance()
		return Token{Kind: LPAREN, Literal: "(", Loc: start}
	case ')':
		lex.advance()
		return Token{Kind: RPAREN, Literal: ")", Loc: start}
	case '{':
		lex.advance()
		return Token{Kind: LBRACE, Literal: "{", Loc: start}
	case '}':
		lex.advance()
		return Token{Kind: RBRACE, Literal: "}", Loc: start}
	case '[':
		lex.advance()
		return Token{Kind: LBRACKET, Literal: "[", Loc: start}
	case ']':
		lex.advance()
		return Token{Kind: RBRACKET, Literal: "]", Loc: start}
	case ',':
		lex.advance()
		return Token{Kind: COMMA, Literal: ",", Loc: start}
	case ';':
		lex.advance()
		return Token{Kind: SEMI, Literal: ";", Loc: start}
	case ':':
		lex.advance()
		return Token{Kind: COLON, Literal: ":", Loc: start}
	case '+':
		return lex.two(start, PLUS, '=', PLUS_EQ)
	case '-':
		return lex.two(start, MINUS, '=', MINUS_EQ)
	case '*':
		return lex.two(start, STAR, '=', STAR_EQ)
	case '/':
		return lex.two(start, SLASH, '=', SLASH_EQ)
	case '=':
		return lex.two(start, ASSIGN, '=', EQ)
	case '!':
		return lex.two(start, BANG, '=', NEQ)
	case '<':
		return lex.two(start, LT, '=', LE)
	case '>':
		return lex.two(start, GT, '=', GE)
	case '.':
		if lex.peekByte() == '.' {
			if lex.at(lex.cursor+2) == '.' {
				lex.advance()
				lex.advance()
				lex.advance()
				return Token{Kind: ELLIPSIS, Literal: "...", Loc: start}
			}
			lex.advance()
			lex.advance()
			return Token{Kind: DOTDOT, Literal: "..", Loc: start}
		}
		lex.advance()
		return Token{Kind: DOT, Literal: ".", Loc: start}
	default:
		lex.advance()
		return Token{Kind: ERROR, Literal: string(c), Loc: start}
	}
}

func (lex *Lexer) readIdentifier(start Location) Token {
	begin := lex.cursor
	for isAlnum(lex.current()) {
		lex.advance()
	}
	lit := lex.Src[begin:lex.cursor]
	kind := lookupIdent(lit)
	tok := Token{Kind: kind, Literal: lit, Loc: start}
	if kind == BOOLLIT {
		tok.Value = Value{HasValue: true, Bool: lit == "true"}
	}
	return tok
}

func (lex *Lexer) readNumber(start Location) Token {
	begin := lex.cursor
	dots := 0
	for isDigit(lex.current()) || lex.current() == '.' {
		if lex.current() == '.' {
			// don't swallow ".." / "..." trailing a number literal (e.g. "3...")
			if lex.peekByte() == '.' {
				break
			}
			dots++
		}
		lex.advance()
	}
	lit := lex.Src[begin:lex.cursor]
	if dots > 1 {
		return Token{Kind: ERROR, Literal: lit, Loc: start}
	}
	if dots == 1 {
		f, err := strconv.ParseFloat(lit, 64)
		if err != nil {
			return Token{Kind: ERROR, Literal: lit, Loc: start}
		}
		return Token{Kind: FLOATLIT, Literal: lit, Loc: start, Value: Value{HasValue: true, Float: f}}
	}
	n, err := strconv.ParseInt(lit, 10, 64)
	if err != nil {
		return Token{Kind: ERROR, Literal: lit, Loc: start}
	}
	return Token{Kind: INTLIT, Literal: lit, Loc: start, Value: Value{HasValue: true, Int: n}}
}

func (lex *Lexer) readString(start Location) Token {
	lex.advance() // consume opening '
	var b strings.Builder
	for lex.current() != '\'' && lex.current() != 0 {
		c := lex.current()
		if c == '\\' {
			lex.advance()
			esc := lex.current()
			switch esc {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case '\\':
				b.WriteByte('\\')
			case '\'':
				b.WriteByte('\'')
			default:
				b.WriteByte('\\')
				b.WriteByte(esc)
			}
			lex.advance()
			continue
		}
		b.WriteByte(c)
		lex.advance()
	}
	if lex.current() == '\'' {
		lex.advance() // consume closing '
	}
	s := b.String()
	return Token{Kind: STRINGLIT, Literal: s, Loc: start, Value: Value{HasValue: true, Str: s}}
}

// LastToken returns the most recently produced Token.
func (lex *Lexer) LastToken() Token { return lex.last }

// GetValue returns the literal Value carried by the most recently produced
// Token.
func (lex *Lexer) GetValue() Value { return lex.last.Value }

// CurrentLine returns the full text (without its terminating newline) of the
// line the lexer's cursor currently sits on.
func (lex *Lexer) CurrentLine() string {
	end := strings.IndexByte(lex.Src[lex.lineBegin:], '\n')
	if end < 0 {
		return lex.Src[lex.lineBegin:]
	}
	return lex.Src[lex.lineBegin : lex.lineBegin+end]
}

// FormatError renders a source-anchored diagnostic. It seeks the lexer back
// to loc, re-scans one token to recover the end of the offending span, then
// builds:
//
//	eta: error in file: <path>:<row>:<col>
//	<row> | <line text>
//	      |     ^^^^
//	      |     <message>
//
// with the header and carets in red. The lexer is left positioned after the
// re-scanned token.
func (lex *Lexer) FormatError(loc Location, msg string) string {
	lex.Seek(loc)
	tok := lex.NextToken()
	end := lex.loc()

	row := loc.Row + 1
	col := loc.Cursor - loc.LineBegin + 1

	var out strings.Builder
	header := errorRed.Sprintf("error in file: %s:%d:%d", lex.Filename, row, col)
	fmt.Fprintf(&out, "eta: %s\n", header)
	fmt.Fprintf(&out, "%d | %s\n", row, lex.CurrentLine())

	span := end.Cursor - loc.Cursor
	if span <= 0 {
		span = len(tok.Literal)
	}
	if span <= 0 {
		span = 1
	}
	gutter := strings.Repeat(" ", len(fmt.Sprintf("%d", row)))
	indent := strings.Repeat(" ", col-1)
	carets := errorRed.Sprint(strings.Repeat("^", span))
	fmt.Fprintf(&out, "%s | %s%s\n", gutter, indent, carets)
	fmt.Fprintf(&out, "%s | %s%s", gutter, indent, errorRed.Sprint(msg))

	return out.String()
}
