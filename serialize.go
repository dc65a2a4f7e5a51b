package jsonv

import (
	"math"
	"strconv"
	"strings"
)

// Serialize renders a Value tree as JSON text. An indent of zero (or
// less) produces compact output with no extra whitespace; a positive
// indent pretty-prints with that many spaces per nesting level.
// Serialization is a pure function of its input and never fails for a
// well-formed tree.
func Serialize(v Value, indent int) string {
	var sb strings.Builder
	w := writer{sb: &sb, indent: indent}
	w.value(v, 0)
	return sb.String()
}

type writer struct {
	sb     *strings.Builder
	indent int
}

func (w writer) value(v Value, depth int) {
	switch t := v.(type) {
	case Bool:
		if t {
			w.sb.WriteString("true")
		} else {
			w.sb.WriteString("false")
		}
	case Number:
		w.number(float64(t))
	case String:
		w.string(string(t))
	case Array:
		w.array(t, depth)
	case *Object:
		w.object(t, depth)
	default:
		// Null, and nil for totality.
		w.sb.WriteString("null")
	}
}

// number emits the shortest decimal text that round-trips to the same
// float64, so 42 stays "42" and 3.14 stays "3.14". Very large or very
// small magnitudes use exponent form, which is still valid JSON.
func (w writer) number(f float64) {
	abs := math.Abs(f)
	format := byte('f')
	if abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		format = 'e'
	}
	buf := strconv.AppendFloat(nil, f, format, -1, 64)
	if format == 'e' {
		// Shorten e-09 to e-9.
		if n := len(buf); n >= 4 && buf[n-4] == 'e' && buf[n-3] == '-' && buf[n-2] == '0' {
			buf[n-2] = buf[n-1]
			buf = buf[:n-1]
		}
	}
	w.sb.Write(buf)
}

const hexDigits = "0123456789abcdef"

// string quotes s, escaping only what JSON requires: the quote, the
// backslash, and control characters below 0x20. Non-ASCII text passes
// through literally.
func (w writer) string(s string) {
	w.sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '"':
			w.sb.WriteString(`\"`)
		case c == '\\':
			w.sb.WriteString(`\\`)
		case c == '\b':
			w.sb.WriteString(`\b`)
		case c == '\f':
			w.sb.WriteString(`\f`)
		case c == '\n':
			w.sb.WriteString(`\n`)
		case c == '\r':
			w.sb.WriteString(`\r`)
		case c == '\t':
			w.sb.WriteString(`\t`)
		case c < 0x20:
			w.sb.WriteString(`\u00`)
			w.sb.WriteByte(hexDigits[c>>4])
			w.sb.WriteByte(hexDigits[c&0xf])
		default:
			w.sb.WriteByte(c)
		}
	}
	w.sb.WriteByte('"')
}

func (w writer) array(a Array, depth int) {
	if len(a) == 0 {
		w.sb.WriteString("[]")
		return
	}
	w.sb.WriteByte('[')
	for i, el := range a {
		if i > 0 {
			w.sb.WriteByte(',')
		}
		w.newline(depth + 1)
		w.value(el, depth+1)
	}
	w.newline(depth)
	w.sb.WriteByte(']')
}

func (w writer) object(o *Object, depth int) {
	if o == nil || o.Len() == 0 {
		w.sb.WriteString("{}")
		return
	}
	w.sb.WriteByte('{')
	for i, m := range o.Members() {
		if i > 0 {
			w.sb.WriteByte(',')
		}
		w.newline(depth + 1)
		w.string(m.Key)
		w.sb.WriteByte(':')
		if w.indent > 0 {
			w.sb.WriteByte(' ')
		}
		w.value(m.Value, depth+1)
	}
	w.newline(depth)
	w.sb.WriteByte('}')
}

func (w writer) newline(depth int) {
	if w.indent <= 0 {
		return
	}
	w.sb.WriteByte('\n')
	for i := 0; i < w.indent*depth; i++ {
		w.sb.WriteByte(' ')
	}
}
