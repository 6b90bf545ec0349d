/*
File    : eta/lexer/lexer_test.go
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func kinds(toks []Token) []Kind {
	out := make([]Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func scanAll(src string) []Token {
	lex := NewLexer("<test>", src)
	var toks []Token
	for {
		tok := lex.NextToken()
		toks = append(toks, tok)
		if tok.Kind == EOF {
			return toks
		}
	}
}

func TestNextToken_Punctuation(t *testing.T) {
	toks := scanAll(`(){}[],;:`)
	assert.Equal(t, []Kind{
		LPAREN, RPAREN, LBRACE, RBRACE, LBRACKET, RBRACKET, COMMA, SEMI, COLON, EOF,
	}, kinds(toks))
}

func TestNextToken_Operators(t *testing.T) {
	toks := scanAll(`+ - * / = == != < <= > >= += -= *= /= .. ...`)
	assert.Equal(t, []Kind{
		PLUS, MINUS, STAR, SLASH, ASSIGN, EQ, NEQ, LT, LE, GT, GE,
		PLUS_EQ, MINUS_EQ, STAR_EQ, SLASH_EQ, DOTDOT, ELLIPSIS, EOF,
	}, kinds(toks))
}

func TestNextToken_Keywords(t *testing.T) {
	toks := scanAll(`let return if else for func extern struct`)
	assert.Equal(t, []Kind{
		LET, RETURN, IF, ELSE, FOR, FUNC, EXTERN, STRUCT, EOF,
	}, kinds(toks))
}

func TestNextToken_IntLiteral(t *testing.T) {
	toks := scanAll(`42`)
	require := assert.New(t)
	require.Equal(INTLIT, toks[0].Kind)
	require.Equal("42", toks[0].Literal)
	require.True(toks[0].Value.HasValue)
	require.EqualValues(42, toks[0].Value.Int)
}

func TestNextToken_FloatLiteral(t *testing.T) {
	toks := scanAll(`3.14`)
	assert.Equal(t, FLOATLIT, toks[0].Kind)
	assert.InDelta(t, 3.14, toks[0].Value.Float, 1e-9)
}

func TestNextToken_BoolLiteral(t *testing.T) {
	toks := scanAll(`true false`)
	assert.Equal(t, BOOLLIT, toks[0].Kind)
	assert.True(t, toks[0].Value.Bool)
	assert.Equal(t, BOOLLIT, toks[1].Kind)
	assert.False(t, toks[1].Value.Bool)
}

func TestNextToken_StringLiteral(t *testing.T) {
	toks := scanAll(`'hello\nworld'`)
	assert.Equal(t, STRINGLIT, toks[0].Kind)
	assert.Equal(t, "hello\nworld", toks[0].Value.Str)
}

func TestNextToken_Identifier(t *testing.T) {
	toks := scanAll(`foo_bar2 Baz`)
	assert.Equal(t, []Kind{IDENT, IDENT, EOF}, kinds(toks))
	assert.Equal(t, "foo_bar2", toks[0].Literal)
}

func TestNextToken_SkipsLineComment(t *testing.T) {
	toks := scanAll("1 # this is a comment\n2")
	assert.Equal(t, []Kind{INTLIT, INTLIT, EOF}, kinds(toks))
}

func TestNextToken_SkipsBlockComment(t *testing.T) {
	toks := scanAll("1 /* skip\nthis */ 2")
	assert.Equal(t, []Kind{INTLIT, INTLIT, EOF}, kinds(toks))
}

func TestNextToken_Locations(t *testing.T) {
	lex := NewLexer("<test>", "1\n22")
	first := lex.NextToken()
	assert.Equal(t, 0, first.Loc.Row)
	assert.Equal(t, 0, first.Loc.Column())

	second := lex.NextToken()
	assert.Equal(t, 1, second.Loc.Row)
	assert.Equal(t, 0, second.Loc.Column())
}

func TestPeekToken_DoesNotAdvance(t *testing.T) {
	lex := NewLexer("<test>", "1 2")
	peeked := lex.PeekToken()
	assert.Equal(t, INTLIT, peeked.Kind)
	assert.Equal(t, "1", peeked.Literal)

	again := lex.NextToken()
	assert.Equal(t, "1", again.Literal)

	next := lex.NextToken()
	assert.Equal(t, "2", next.Literal)
}

func TestFormatError_ContainsHeaderAndLine(t *testing.T) {
	lex := NewLexer("prog.eta", "let x = 1\nlet y = oops\n")
	tok := lex.NextToken() // let
	for tok.Literal != "oops" {
		tok = lex.NextToken()
	}
	msg := lex.FormatError(tok.Loc, "unknown identifier")
	assert.Contains(t, msg, "prog.eta:2")
	assert.Contains(t, msg, "let y = oops")
	assert.Contains(t, msg, "unknown identifier")
}
