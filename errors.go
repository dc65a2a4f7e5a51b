package jsonv

import "fmt"

// ErrKind classifies a SyntaxError.
type ErrKind int

const (
	ErrUnexpectedToken ErrKind = iota
	ErrUnexpectedEOF
	ErrInvalidNumber
	ErrInvalidEscape
	ErrInvalidUnicode
	ErrUnterminatedString
	ErrTrailingData
	ErrDepthExceeded
)

// SyntaxError reports the first grammar or lexical violation found in
// the input. Offset is the byte offset of the offending character or
// token; Line and Column are derived from it, 1-based.
type SyntaxError struct {
	Kind   ErrKind
	Msg    string
	Offset int
	Line   int
	Column int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s at position %d (line %d, column %d)", e.Msg, e.Offset, e.Line, e.Column)
}

// IOError reports that input text could not be obtained or decoded
// before parsing began. It is disjoint from SyntaxError so callers can
// tell a file problem from a content problem.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("cannot read %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

func syntaxErr(input string, kind ErrKind, offset int, format string, args ...any) *SyntaxError {
	line, col := lineCol(input, offset)
	return &SyntaxError{
		Kind:   kind,
		Msg:    fmt.Sprintf(format, args...),
		Offset: offset,
		Line:   line,
		Column: col,
	}
}

func lineCol(input string, offset int) (line, col int) {
	line, col = 1, 1
	for i := 0; i < offset && i < len(input); i++ {
		if input[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}
