package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cmmlang/cmm/token"
)

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func collect(src string) []token.Token {
	lex := NewFromString(src)
	var toks []token.Token
	for {
		tok := lex.NextToken()
		if tok.Kind == token.EOF {
			break
		}
		toks = append(toks, tok)
	}
	return toks
}

func TestNextToken_Operators(t *testing.T) {
	toks := collect(`+ - * / > < == <> = ( ) { } [ ] , ;`)
	assert.Equal(t, []token.Kind{
		token.PLUS, token.MINUS, token.TIMES, token.DIVIDE, token.GT, token.LT,
		token.EQUAL, token.NEQUAL, token.ASSIGN, token.LPAREN, token.RPAREN,
		token.LBRACE, token.RBRACE, token.LBRACKET, token.RBRACKET, token.COMMA,
		token.SEMICOLON,
	}, kinds(toks))
}

func TestNextToken_KeywordsAndIdentifiers(t *testing.T) {
	toks := collect(`if else while int real void return foo_1 _bar`)
	assert.Equal(t, []token.Kind{
		token.IF, token.ELSE, token.WHILE, token.INT, token.REAL, token.VOID,
		token.RETURN, token.ID, token.ILLEGAL,
	}, kinds(toks))
	assert.Equal(t, "foo_1", toks[7].Literal)
}

func TestNextToken_Literals(t *testing.T) {
	toks := collect(`0 7 123 3.14 0.5`)
	assert.Equal(t, []token.Kind{
		token.INT_LITERAL, token.INT_LITERAL, token.INT_LITERAL,
		token.REAL_LITERAL, token.REAL_LITERAL,
	}, kinds(toks))
	assert.Equal(t, int64(123), toks[2].IntValue)
	assert.InDelta(t, 3.14, toks[3].RealValue, 1e-9)
}

func TestNextToken_Comments(t *testing.T) {
	toks := collect("1 // a line comment\n+ /* a\nblock comment */ 2")
	assert.Equal(t, []token.Kind{token.INT_LITERAL, token.PLUS, token.INT_LITERAL}, kinds(toks))
}

func TestNextToken_LeadingZeroIsInvalid(t *testing.T) {
	lex := NewFromString(`007`)
	lex.NextToken()
	require := assert.New(t)
	require.NotNil(lex.Err())
}

func TestNextToken_TrailingUnderscoreIsInvalid(t *testing.T) {
	lex := NewFromString(`foo_`)
	lex.NextToken()
	assert.NotNil(t, lex.Err())
}

func TestNextToken_IllegalCharacterRecordsPositionAndDrainsLine(t *testing.T) {
	lex := NewFromString("int x;\n1 $ 2 + 3\n")
	for i := 0; i < 4; i++ {
		lex.NextToken() // int, x, ;, 1
	}
	lex.NextToken() // hits '$'
	err := lex.Err()
	require := assert.New(t)
	require.NotNil(err)
	require.Equal(2, err.Row)
	require.Equal(3, err.Column)

	next := lex.NextToken()
	require.Equal(token.EOF, next.Kind)
}

func TestUnget_RestoresCharacterAndPreviousLineOnNewline(t *testing.T) {
	lex := NewFromString("ab\ncd")
	// Consume 'a', 'b', then peek past the newline into 'c'.
	assert.Equal(t, byte('a'), lex.current)
	lex.advance() // now at 'b'
	lex.advance() // now at '\n'
	rowBeforeNewline := lex.row
	lex.advance() // now at 'c', row incremented
	assert.Equal(t, rowBeforeNewline+1, lex.row)

	lex.Unget('\n')
	assert.Equal(t, rowBeforeNewline, lex.row)
	assert.Equal(t, byte('\n'), lex.current)

	lex.advance()
	assert.Equal(t, byte('c'), lex.current)
}

func TestConsumeAll_RoundTripsLexemes(t *testing.T) {
	src := `void main(void){ write(1+2); }`
	first := collect(src)

	var rebuilt string
	for i, tok := range first {
		if i > 0 {
			rebuilt += " "
		}
		rebuilt += tok.Literal
	}
	second := collect(rebuilt)
	assert.Equal(t, kinds(first), kinds(second))
}
