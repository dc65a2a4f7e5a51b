package jsonv

import (
	"errors"
	"os"
	"unicode/utf8"
)

// ParseFile reads path, decodes it as UTF-8, and parses its contents.
// Failures to obtain or decode the text are reported as *IOError;
// malformed content is reported as *SyntaxError, as by Parse.
func (p *Parser) ParseFile(path string) (Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &IOError{Path: path, Err: err}
	}
	if !utf8.Valid(data) {
		return nil, &IOError{Path: path, Err: errors.New("invalid UTF-8 encoding")}
	}
	return p.Parse(string(data))
}

// ParseFile reads and parses the file at path using default settings.
func ParseFile(path string) (Value, error) {
	return NewParser().ParseFile(path)
}
