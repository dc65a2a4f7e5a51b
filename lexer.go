package jsonv

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// TokenKind identifies a lexical unit.
type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenLBrace
	TokenRBrace
	TokenLBracket
	TokenRBracket
	TokenColon
	TokenComma
	TokenString
	TokenNumber
	TokenTrue
	TokenFalse
	TokenNull
)

// String returns a display name for the token kind.
func (k TokenKind) String() string {
	switch k {
	case TokenEOF:
		return "end of input"
	case TokenLBrace:
		return "'{'"
	case TokenRBrace:
		return "'}'"
	case TokenLBracket:
		return "'['"
	case TokenRBracket:
		return "']'"
	case TokenColon:
		return "':'"
	case TokenComma:
		return "','"
	case TokenString:
		return "string"
	case TokenNumber:
		return "number"
	case TokenTrue:
		return "'true'"
	case TokenFalse:
		return "'false'"
	case TokenNull:
		return "'null'"
	default:
		return "invalid"
	}
}

// Token is a single lexical unit with its byte offset in the input.
// Text holds the decoded payload of a string token or the literal text
// of a number token; Num holds the parsed value of a number token.
type Token struct {
	Kind TokenKind
	Text string
	Num  float64
	Pos  int
}

// Lexer scans an immutable text buffer into tokens, advancing a single
// byte-offset cursor. It keeps no state between documents.
type Lexer struct {
	input string
	pos   int
}

// NewLexer creates a Lexer over input.
func NewLexer(input string) *Lexer {
	return &Lexer{input: input}
}

// Tokenize scans input into its complete token stream. The terminating
// EOF token is not included.
func Tokenize(input string) ([]Token, error) {
	lx := NewLexer(input)
	var tokens []Token
	for {
		tok, err := lx.Next()
		if err != nil {
			return nil, err
		}
		if tok.Kind == TokenEOF {
			return tokens, nil
		}
		tokens = append(tokens, tok)
	}
}

// Next scans and returns the next token. At end of input it returns an
// EOF token; scanning past it keeps returning EOF.
func (l *Lexer) Next() (Token, error) {
	l.skipSpace()
	if l.pos >= len(l.input) {
		return Token{Kind: TokenEOF, Pos: l.pos}, nil
	}

	start := l.pos
	switch c := l.input[l.pos]; {
	case c == '{':
		l.pos++
		return Token{Kind: TokenLBrace, Pos: start}, nil
	case c == '}':
		l.pos++
		return Token{Kind: TokenRBrace, Pos: start}, nil
	case c == '[':
		l.pos++
		return Token{Kind: TokenLBracket, Pos: start}, nil
	case c == ']':
		l.pos++
		return Token{Kind: TokenRBracket, Pos: start}, nil
	case c == ':':
		l.pos++
		return Token{Kind: TokenColon, Pos: start}, nil
	case c == ',':
		l.pos++
		return Token{Kind: TokenComma, Pos: start}, nil
	case c == '"':
		return l.scanString()
	case c == '-' || ('0' <= c && c <= '9'):
		return l.scanNumber()
	case c == 't' || c == 'f' || c == 'n':
		return l.scanKeyword()
	default:
		r, _ := utf8.DecodeRuneInString(l.input[l.pos:])
		return Token{}, syntaxErr(l.input, ErrUnexpectedToken, start, "unexpected character %q, expected a JSON value", r)
	}
}

// Interior whitespace is exactly space, tab, newline, carriage return.
func (l *Lexer) skipSpace() {
	for l.pos < len(l.input) {
		switch l.input[l.pos] {
		case ' ', '\t', '\n', '\r':
			l.pos++
		default:
			return
		}
	}
}

func (l *Lexer) scanString() (Token, error) {
	start := l.pos
	l.pos++ // opening quote
	var sb strings.Builder

	for l.pos < len(l.input) {
		switch c := l.input[l.pos]; {
		case c == '"':
			l.pos++
			return Token{Kind: TokenString, Text: sb.String(), Pos: start}, nil
		case c == '\\':
			if err := l.scanEscape(&sb); err != nil {
				return Token{}, err
			}
		case c < 0x20:
			return Token{}, syntaxErr(l.input, ErrUnexpectedToken, l.pos, "invalid control character %q in string literal", rune(c))
		default:
			// Raw UTF-8 passes through byte by byte.
			sb.WriteByte(c)
			l.pos++
		}
	}

	return Token{}, syntaxErr(l.input, ErrUnterminatedString, start, "unterminated string")
}

func (l *Lexer) scanEscape(sb *strings.Builder) error {
	escPos := l.pos
	l.pos++ // backslash
	if l.pos >= len(l.input) {
		return syntaxErr(l.input, ErrUnterminatedString, escPos, "unterminated string")
	}

	switch c := l.input[l.pos]; c {
	case '"':
		sb.WriteByte('"')
	case '\\':
		sb.WriteByte('\\')
	case '/':
		sb.WriteByte('/')
	case 'b':
		sb.WriteByte('\b')
	case 'f':
		sb.WriteByte('\f')
	case 'n':
		sb.WriteByte('\n')
	case 'r':
		sb.WriteByte('\r')
	case 't':
		sb.WriteByte('\t')
	case 'u':
		return l.scanUnicodeEscape(sb, escPos)
	default:
		return syntaxErr(l.input, ErrInvalidEscape, escPos, "invalid escape sequence '\\%c'", c)
	}
	l.pos++
	return nil
}

// scanUnicodeEscape consumes "uXXXX" after a backslash, combining a
// surrogate pair when one follows. A lone surrogate decodes to U+FFFD.
func (l *Lexer) scanUnicodeEscape(sb *strings.Builder, escPos int) error {
	r, err := l.hex4(escPos)
	if err != nil {
		return err
	}
	if utf16.IsSurrogate(r) {
		if l.pos+1 < len(l.input) && l.input[l.pos] == '\\' && l.input[l.pos+1] == 'u' {
			pairPos := l.pos
			l.pos++ // backslash
			r2, err := l.hex4(pairPos)
			if err != nil {
				return err
			}
			if dec := utf16.DecodeRune(r, r2); dec != utf8.RuneError {
				sb.WriteRune(dec)
				return nil
			}
			sb.WriteRune(utf8.RuneError)
			if utf16.IsSurrogate(r2) {
				sb.WriteRune(utf8.RuneError)
			} else {
				sb.WriteRune(r2)
			}
			return nil
		}
		sb.WriteRune(utf8.RuneError)
		return nil
	}
	sb.WriteRune(r)
	return nil
}

// hex4 consumes 'u' plus four hex digits; l.pos is on the 'u'.
func (l *Lexer) hex4(escPos int) (rune, error) {
	l.pos++ // 'u'
	if l.pos+4 > len(l.input) {
		return 0, syntaxErr(l.input, ErrInvalidUnicode, escPos, "invalid unicode escape %q", l.input[escPos:])
	}
	digits := l.input[l.pos : l.pos+4]
	n, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return 0, syntaxErr(l.input, ErrInvalidUnicode, escPos, "invalid unicode escape %q", "\\u"+digits)
	}
	l.pos += 4
	return rune(n), nil
}

func (l *Lexer) scanNumber() (Token, error) {
	start := l.pos
	// Greedy scan of number-shaped bytes, then validate the lexeme so
	// that input like "1.2.3" reports one malformed number rather than
	// a stray character.
	for l.pos < len(l.input) {
		c := l.input[l.pos]
		if ('0' <= c && c <= '9') || c == '.' || c == '-' || c == '+' || c == 'e' || c == 'E' {
			l.pos++
		} else {
			break
		}
	}
	text := l.input[start:l.pos]
	if !validNumber(text) {
		return Token{}, syntaxErr(l.input, ErrInvalidNumber, start, "invalid number %q", text)
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return Token{}, syntaxErr(l.input, ErrInvalidNumber, start, "invalid number %q, value out of range", text)
	}
	return Token{Kind: TokenNumber, Text: text, Num: f, Pos: start}, nil
}

// validNumber checks s against -?(0|[1-9][0-9]*)(\.[0-9]+)?([eE][+-]?[0-9]+)?
func validNumber(s string) bool {
	i := 0
	if i < len(s) && s[i] == '-' {
		i++
	}
	switch {
	case i < len(s) && s[i] == '0':
		i++
	case i < len(s) && '1' <= s[i] && s[i] <= '9':
		for i < len(s) && '0' <= s[i] && s[i] <= '9' {
			i++
		}
	default:
		return false
	}
	if i < len(s) && s[i] == '.' {
		i++
		if i >= len(s) || s[i] < '0' || s[i] > '9' {
			return false
		}
		for i < len(s) && '0' <= s[i] && s[i] <= '9' {
			i++
		}
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		if i >= len(s) || s[i] < '0' || s[i] > '9' {
			return false
		}
		for i < len(s) && '0' <= s[i] && s[i] <= '9' {
			i++
		}
	}
	return i == len(s)
}

func (l *Lexer) scanKeyword() (Token, error) {
	start := l.pos
	for l.pos < len(l.input) {
		c := l.input[l.pos]
		if ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') {
			l.pos++
		} else {
			break
		}
	}
	switch word := l.input[start:l.pos]; word {
	case "true":
		return Token{Kind: TokenTrue, Pos: start}, nil
	case "false":
		return Token{Kind: TokenFalse, Pos: start}, nil
	case "null":
		return Token{Kind: TokenNull, Pos: start}, nil
	default:
		return Token{}, syntaxErr(l.input, ErrUnexpectedToken, start, "invalid literal %q", word)
	}
}
