package jsonv

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize_Demo(t *testing.T) {
	tokens, err := Tokenize(`{"name": "Alice", "age": 30}`)
	require.NoError(t, err)

	kinds := make([]TokenKind, len(tokens))
	for i, tok := range tokens {
		kinds[i] = tok.Kind
	}
	assert.Equal(t, []TokenKind{
		TokenLBrace,
		TokenString, TokenColon, TokenString, TokenComma,
		TokenString, TokenColon, TokenNumber,
		TokenRBrace,
	}, kinds)

	assert.Equal(t, "name", tokens[1].Text)
	assert.Equal(t, "Alice", tokens[3].Text)
	assert.Equal(t, 30.0, tokens[7].Num)
}

func TestTokenize_Positions(t *testing.T) {
	tokens, err := Tokenize(" \t\r\n true")
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	assert.Equal(t, TokenTrue, tokens[0].Kind)
	assert.Equal(t, 5, tokens[0].Pos)
}

func TestLexer_Strings(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`"hello world"`, "hello world"},
		{`""`, ""},
		{`"123"`, "123"},
		{`"hello\nworld"`, "hello\nworld"},
		{`"col1\tcol2"`, "col1\tcol2"},
		{`"say \"hi\""`, `say "hi"`},
		{`"back\\slash"`, `back\slash`},
		{`"solidus\/ok"`, "solidus/ok"},
		{`"\b\f\r"`, "\b\f\r"},
		{`"\u0041"`, "A"},
		{`"\u0048\u0065\u006c\u006c\u006f"`, "Hello"},
		{`"\u00e9"`, "é"},
		{`"\u4e2d\u6587"`, "中文"},
		// Surrogate pairs combine; lone surrogates decode to U+FFFD.
		{`"\ud83d\ude00"`, "😀"},
		{`"\ud800"`, "\uFFFD"},
		{`"\ude00"`, "\uFFFD"},
		{`"\ud800\u0041"`, "\uFFFDA"},
		{`"Hello"`, "Hello"},
		{`"é"`, "é"},
		{`"😀"`, "😀"},
		{`"naïve 中文"`, "naïve 中文"},
		{`"line1\nline2\t\"quoted\"!"`, "line1\nline2\t\"quoted\"!"},
	}

	for _, test := range tests {
		tokens, err := Tokenize(test.input)
		require.NoError(t, err, "input: %s", test.input)
		require.Len(t, tokens, 1, "input: %s", test.input)
		assert.Equal(t, TokenString, tokens[0].Kind)
		assert.Equal(t, test.expected, tokens[0].Text, "input: %s", test.input)
	}
}

func TestLexer_StringErrors(t *testing.T) {
	tests := []struct {
		input  string
		kind   ErrKind
		offset int
	}{
		{`"unclosed`, ErrUnterminatedString, 0},
		{`"trailing backslash\`, ErrUnterminatedString, 19},
		{`"\q"`, ErrInvalidEscape, 1},
		{`"\u00GG"`, ErrInvalidUnicode, 1},
		{`"\u12"`, ErrInvalidUnicode, 1},
		{"\"raw\ncontrol\"", ErrUnexpectedToken, 4},
	}

	for _, test := range tests {
		_, err := Tokenize(test.input)
		require.Error(t, err, "input: %q", test.input)

		var syntaxErr *SyntaxError
		require.ErrorAs(t, err, &syntaxErr, "input: %q", test.input)
		assert.Equal(t, test.kind, syntaxErr.Kind, "input: %q", test.input)
		assert.Equal(t, test.offset, syntaxErr.Offset, "input: %q", test.input)
	}
}

func TestLexer_Numbers(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{"0", 0},
		{"-0", 0},
		{"42", 42},
		{"-10", -10},
		{"3.14", 3.14},
		{"42.5", 42.5},
		{"0.001", 0.001},
		{"1e10", 1e10},
		{"1E+5", 1e5},
		{"-0.5e-2", -0.005},
		{"1234567890", 1234567890},
	}

	for _, test := range tests {
		tokens, err := Tokenize(test.input)
		require.NoError(t, err, "input: %s", test.input)
		require.Len(t, tokens, 1, "input: %s", test.input)
		assert.Equal(t, TokenNumber, tokens[0].Kind)
		assert.Equal(t, test.expected, tokens[0].Num, "input: %s", test.input)
		assert.Equal(t, test.input, tokens[0].Text, "input: %s", test.input)
	}
}

func TestLexer_MalformedNumbers(t *testing.T) {
	malformed := []string{"01", "1.2.3", "1e", "--10", "1.0.e10", "-", "1.", "2.e5", "1e+", "1e999"}

	for _, input := range malformed {
		_, err := Tokenize(input)
		require.Error(t, err, "input: %s", input)

		var syntaxErr *SyntaxError
		require.ErrorAs(t, err, &syntaxErr, "input: %s", input)
		assert.Equal(t, ErrInvalidNumber, syntaxErr.Kind, "input: %s", input)
		assert.Equal(t, 0, syntaxErr.Offset, "input: %s", input)
	}
}

func TestLexer_StrayCharacters(t *testing.T) {
	for _, input := range []string{"@", "$", "%", "^", "!", ".5", "None", "undefined"} {
		_, err := Tokenize(input)
		require.Error(t, err, "input: %s", input)

		var syntaxErr *SyntaxError
		require.ErrorAs(t, err, &syntaxErr)
		assert.Equal(t, ErrUnexpectedToken, syntaxErr.Kind, "input: %s", input)
	}
}

func TestLexer_BadKeywords(t *testing.T) {
	for _, input := range []string{"tru", "falsey", "nul", "truefalse"} {
		_, err := Tokenize(input)
		require.Error(t, err, "input: %s", input)

		var syntaxErr *SyntaxError
		require.ErrorAs(t, err, &syntaxErr)
		assert.Equal(t, ErrUnexpectedToken, syntaxErr.Kind, "input: %s", input)
		assert.Contains(t, syntaxErr.Error(), "position 0")
	}
}

func TestLexer_LineColumn(t *testing.T) {
	_, err := Tokenize("{\n  \"a\": @\n}")

	var syntaxErr *SyntaxError
	require.ErrorAs(t, err, &syntaxErr)
	assert.Equal(t, 9, syntaxErr.Offset)
	assert.Equal(t, 2, syntaxErr.Line)
	assert.Equal(t, 8, syntaxErr.Column)
}

func TestLexer_EOFIsSticky(t *testing.T) {
	lx := NewLexer("null")

	tok, err := lx.Next()
	require.NoError(t, err)
	assert.Equal(t, TokenNull, tok.Kind)

	for i := 0; i < 3; i++ {
		tok, err = lx.Next()
		require.NoError(t, err)
		assert.Equal(t, TokenEOF, tok.Kind)
	}
}

func TestTokenize_Empty(t *testing.T) {
	tokens, err := Tokenize(strings.Repeat(" \t\n\r", 4))
	require.NoError(t, err)
	assert.Empty(t, tokens)
}
