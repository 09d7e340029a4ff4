package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loxlang/lox/internal/token"
)

func kinds(tokens []token.Token) []token.Kind {
	out := make([]token.Kind, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Kind
	}
	return out
}

func TestScanTokens_Punctuation(t *testing.T) {
	tokens, errs := New("(){},.-+;*").ScanTokens()
	require.Empty(t, errs)
	assert.Equal(t, []token.Kind{
		token.LeftParen, token.RightParen, token.LeftBrace, token.RightBrace,
		token.Comma, token.Dot, token.Minus, token.Plus, token.Semicolon,
		token.Star, token.EOF,
	}, kinds(tokens))
}

func TestScanTokens_OneOrTwoCharOperators(t *testing.T) {
	tokens, errs := New("! != = == < <= > >=").ScanTokens()
	require.Empty(t, errs)
	assert.Equal(t, []token.Kind{
		token.Bang, token.BangEqual, token.Equal, token.EqualEqual,
		token.Less, token.LessEqual, token.Greater, token.GreaterEqual, token.EOF,
	}, kinds(tokens))
}

func TestScanTokens_CommentsAndWhitespaceAreSilent(t *testing.T) {
	tokens, errs := New("// a whole comment line\n  \t 1 + 2 // trailing\n").ScanTokens()
	require.Empty(t, errs)
	assert.Equal(t, []token.Kind{token.Number, token.Plus, token.Number, token.EOF}, kinds(tokens))
}

func TestScanTokens_Keywords(t *testing.T) {
	src := "and class else false fun for if nil or print return super this true var while notAKeyword"
	tokens, errs := New(src).ScanTokens()
	require.Empty(t, errs)
	want := []token.Kind{
		token.And, token.Class, token.Else, token.False, token.Fun, token.For,
		token.If, token.Nil, token.Or, token.Print, token.Return, token.Super,
		token.This, token.True, token.Var, token.While, token.Identifier, token.EOF,
	}
	assert.Equal(t, want, kinds(tokens))
}

func TestScanTokens_Number(t *testing.T) {
	tokens, errs := New("123 3.14 42.").ScanTokens()
	require.Empty(t, errs)
	require.Len(t, tokens, 5) // 123, 3.14, 42, ., EOF
	assert.Equal(t, 123.0, tokens[0].Literal)
	assert.Equal(t, 3.14, tokens[1].Literal)
	assert.Equal(t, 42.0, tokens[2].Literal)
	assert.Equal(t, token.Dot, tokens[3].Kind, "a trailing '.' with no following digit is not consumed into the number")
}

func TestScanTokens_String(t *testing.T) {
	tokens, errs := New(`"hello, world"`).ScanTokens()
	require.Empty(t, errs)
	require.Len(t, tokens, 2)
	assert.Equal(t, token.String, tokens[0].Kind)
	assert.Equal(t, "hello, world", tokens[0].Literal)
}

func TestScanTokens_StringSpansNewlinesAndAdvancesLine(t *testing.T) {
	tokens, errs := New("\"line one\nline two\" 1").ScanTokens()
	require.Empty(t, errs)
	require.Len(t, tokens, 3)
	assert.Equal(t, "line one\nline two", tokens[0].Literal)
	assert.Equal(t, 2, tokens[1].Line, "the number after the string should be on line 2")
}

func TestScanTokens_UnterminatedStringReportsOneError(t *testing.T) {
	tokens, errs := New(`"never closed`).ScanTokens()
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "Unterminated string.")
	assert.Equal(t, []token.Kind{token.EOF}, kinds(tokens))
}

func TestScanTokens_UnexpectedCharacterIsCollectedNotFatal(t *testing.T) {
	tokens, errs := New("1 @ 2 # 3").ScanTokens()
	require.Len(t, errs, 2, "every bad lexeme should be reported, not just the first")
	assert.Equal(t, []token.Kind{token.Number, token.Number, token.Number, token.EOF}, kinds(tokens))
}

func TestScanTokens_LineNumbersAdvanceOnNewline(t *testing.T) {
	tokens, _ := New("1\n2\n3").ScanTokens()
	require.Len(t, tokens, 4)
	assert.Equal(t, 1, tokens[0].Line)
	assert.Equal(t, 2, tokens[1].Line)
	assert.Equal(t, 3, tokens[2].Line)
}

func TestScanTokens_EmptySourceYieldsOnlyEOF(t *testing.T) {
	tokens, errs := New("").ScanTokens()
	require.Empty(t, errs)
	assert.Equal(t, []token.Kind{token.EOF}, kinds(tokens))
}

func TestTokenString_TokenizeDisplayForm(t *testing.T) {
	tokens, _ := New(`"hi" 42 42.5 foo`).ScanTokens()
	require.Len(t, tokens, 5)
	assert.Equal(t, `STRING "hi" hi`, tokens[0].String())
	assert.Equal(t, `NUMBER 42 42.0`, tokens[1].String())
	assert.Equal(t, `NUMBER 42.5 42.5`, tokens[2].String())
	assert.Equal(t, `IDENTIFIER foo null`, tokens[3].String())
	assert.Equal(t, `EOF  null`, tokens[4].String())
}
