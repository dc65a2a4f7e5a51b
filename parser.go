// Package jsonv provides strict JSON parsing and serialization.
package jsonv

// DefaultMaxDepth is the nesting depth limit applied by NewParser.
const DefaultMaxDepth = 1000

// Parser provides configurable JSON parsing. It holds no per-document
// state, so a single Parser may be used from multiple goroutines.
type Parser struct {
	maxDepth int
}

// NewParser creates a new Parser with default configuration.
func NewParser() *Parser {
	return &Parser{maxDepth: DefaultMaxDepth}
}

// WithMaxDepth configures the maximum container nesting depth.
func (p *Parser) WithMaxDepth(n int) *Parser {
	p.maxDepth = n
	return p
}

// Parse parses text as a single JSON document and returns its Value
// tree. Anything but whitespace after the top-level value is an error.
func (p *Parser) Parse(text string) (Value, error) {
	s := &parseState{input: text, lex: NewLexer(text), maxDepth: p.maxDepth}
	if err := s.advance(); err != nil {
		return nil, err
	}
	v, err := s.parseValue()
	if err != nil {
		return nil, err
	}
	if s.tok.Kind != TokenEOF {
		return nil, syntaxErr(text, ErrTrailingData, s.tok.Pos, "trailing data after top-level value")
	}
	return v, nil
}

// Parse parses text as a single JSON document using default settings.
func Parse(text string) (Value, error) {
	return NewParser().Parse(text)
}

// parseState carries one recursive-descent pass: the lexer, a single
// token of lookahead, and the current container depth.
type parseState struct {
	input    string
	lex      *Lexer
	tok      Token
	depth    int
	maxDepth int
}

func (s *parseState) advance() error {
	tok, err := s.lex.Next()
	if err != nil {
		return err
	}
	s.tok = tok
	return nil
}

func (s *parseState) enter() error {
	if s.depth >= s.maxDepth {
		return syntaxErr(s.input, ErrDepthExceeded, s.tok.Pos, "maximum nesting depth %d exceeded", s.maxDepth)
	}
	s.depth++
	return nil
}

func (s *parseState) parseValue() (Value, error) {
	switch s.tok.Kind {
	case TokenLBrace:
		return s.parseObject()
	case TokenLBracket:
		return s.parseArray()
	case TokenString:
		v := String(s.tok.Text)
		return v, s.advance()
	case TokenNumber:
		v := Number(s.tok.Num)
		return v, s.advance()
	case TokenTrue:
		return Bool(true), s.advance()
	case TokenFalse:
		return Bool(false), s.advance()
	case TokenNull:
		return Null{}, s.advance()
	case TokenEOF:
		return nil, syntaxErr(s.input, ErrUnexpectedEOF, s.tok.Pos, "unexpected end of input, expected a JSON value")
	default:
		return nil, syntaxErr(s.input, ErrUnexpectedToken, s.tok.Pos, "unexpected token %s, expected a JSON value", s.tok.Kind)
	}
}

func (s *parseState) parseObject() (Value, error) {
	if err := s.enter(); err != nil {
		return nil, err
	}
	defer func() { s.depth-- }()

	if err := s.advance(); err != nil { // consume '{'
		return nil, err
	}
	obj := NewObject()
	if s.tok.Kind == TokenRBrace {
		return obj, s.advance()
	}

	for {
		if s.tok.Kind != TokenString {
			return nil, s.expected("an object key")
		}
		key := s.tok.Text
		if err := s.advance(); err != nil {
			return nil, err
		}

		if s.tok.Kind != TokenColon {
			return nil, s.expected("':' after object key")
		}
		if err := s.advance(); err != nil {
			return nil, err
		}

		val, err := s.parseValue()
		if err != nil {
			return nil, err
		}
		obj.Set(key, val)

		switch s.tok.Kind {
		case TokenComma:
			if err := s.advance(); err != nil {
				return nil, err
			}
			// A '}' here is a trailing comma; the key check above
			// rejects it on the next iteration.
		case TokenRBrace:
			return obj, s.advance()
		default:
			return nil, s.expected("',' or '}'")
		}
	}
}

func (s *parseState) parseArray() (Value, error) {
	if err := s.enter(); err != nil {
		return nil, err
	}
	defer func() { s.depth-- }()

	if err := s.advance(); err != nil { // consume '['
		return nil, err
	}
	if s.tok.Kind == TokenRBracket {
		return Array{}, s.advance()
	}

	var arr Array
	for {
		el, err := s.parseValue()
		if err != nil {
			return nil, err
		}
		arr = append(arr, el)

		switch s.tok.Kind {
		case TokenComma:
			if err := s.advance(); err != nil {
				return nil, err
			}
			// A ']' here is a trailing comma; the next parseValue
			// call rejects it.
		case TokenRBracket:
			return arr, s.advance()
		default:
			return nil, s.expected("',' or ']'")
		}
	}
}

func (s *parseState) expected(what string) error {
	if s.tok.Kind == TokenEOF {
		return syntaxErr(s.input, ErrUnexpectedEOF, s.tok.Pos, "unexpected end of input, expected %s", what)
	}
	return syntaxErr(s.input, ErrUnexpectedToken, s.tok.Pos, "unexpected token %s, expected %s", s.tok.Kind, what)
}
