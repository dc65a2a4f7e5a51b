// Package jsonv defines the core data structures for JSON parsing.
package jsonv

// Kind identifies the active variant of a Value.
type Kind int

const (
	NullKind Kind = iota
	BoolKind
	NumberKind
	StringKind
	ArrayKind
	ObjectKind
)

// String returns the variant name.
func (k Kind) String() string {
	switch k {
	case NullKind:
		return "null"
	case BoolKind:
		return "bool"
	case NumberKind:
		return "number"
	case StringKind:
		return "string"
	case ArrayKind:
		return "array"
	case ObjectKind:
		return "object"
	default:
		return "invalid"
	}
}

// Value represents any JSON value. Exactly one variant is active at a
// time: Null, Bool, Number, String, Array, or *Object. The set of
// implementations is closed; consumers dispatch with a type switch or
// the As* accessors.
type Value interface {
	Kind() Kind
	jsonValue()
}

// Null represents the JSON literal null.
type Null struct{}

// Bool represents a JSON boolean.
type Bool bool

// Number represents a JSON number. All numeric literals, integral or
// fractional, normalize to float64.
type Number float64

// String represents a JSON string with escape sequences resolved.
type String string

// Array represents a JSON array. Element order is significant.
type Array []Value

// Kind reports NullKind.
func (Null) Kind() Kind { return NullKind }

// Kind reports BoolKind.
func (Bool) Kind() Kind { return BoolKind }

// Kind reports NumberKind.
func (Number) Kind() Kind { return NumberKind }

// Kind reports StringKind.
func (String) Kind() Kind { return StringKind }

// Kind reports ArrayKind.
func (Array) Kind() Kind { return ArrayKind }

// Kind reports ObjectKind.
func (*Object) Kind() Kind { return ObjectKind }

func (Null) jsonValue()    {}
func (Bool) jsonValue()    {}
func (Number) jsonValue()  {}
func (String) jsonValue()  {}
func (Array) jsonValue()   {}
func (*Object) jsonValue() {}

// Member is a single key-value pair of an Object.
type Member struct {
	Key   string
	Value Value
}

// Object represents a JSON object. Members keep their insertion order;
// setting an existing key replaces its value in place, so a duplicate
// key in the input keeps its first position with its last value.
type Object struct {
	members []Member
	index   map[string]int
}

// NewObject creates an empty Object.
func NewObject() *Object {
	return &Object{index: make(map[string]int)}
}

// Set adds a member or replaces the value of an existing key.
func (o *Object) Set(key string, v Value) {
	if i, ok := o.index[key]; ok {
		o.members[i].Value = v
		return
	}
	o.index[key] = len(o.members)
	o.members = append(o.members, Member{Key: key, Value: v})
}

// Get returns the value for key and whether the key is present.
func (o *Object) Get(key string) (Value, bool) {
	i, ok := o.index[key]
	if !ok {
		return nil, false
	}
	return o.members[i].Value, true
}

// Len returns the number of members.
func (o *Object) Len() int { return len(o.members) }

// Keys returns the keys in insertion order.
func (o *Object) Keys() []string {
	keys := make([]string, len(o.members))
	for i, m := range o.members {
		keys[i] = m.Key
	}
	return keys
}

// Members returns the key-value pairs in insertion order. The returned
// slice is shared with the Object and must not be modified.
func (o *Object) Members() []Member { return o.members }

// IsNull reports whether v is the null variant.
func IsNull(v Value) bool {
	_, ok := v.(Null)
	return ok
}

// AsBool returns the boolean payload of v, if v is a Bool.
func AsBool(v Value) (bool, bool) {
	b, ok := v.(Bool)
	return bool(b), ok
}

// AsFloat returns the numeric payload of v, if v is a Number.
func AsFloat(v Value) (float64, bool) {
	n, ok := v.(Number)
	return float64(n), ok
}

// AsString returns the string payload of v, if v is a String.
func AsString(v Value) (string, bool) {
	s, ok := v.(String)
	return string(s), ok
}

// AsArray returns the element slice of v, if v is an Array.
func AsArray(v Value) (Array, bool) {
	a, ok := v.(Array)
	return a, ok
}

// AsObject returns v as an *Object, if it is one.
func AsObject(v Value) (*Object, bool) {
	o, ok := v.(*Object)
	return o, ok
}

// Equal reports whether two Value trees are deeply equal. Object
// members must match in both content and insertion order, since order
// is significant for serialization.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch av := a.(type) {
	case Null:
		_, ok := b.(Null)
		return ok
	case Bool:
		bv, ok := b.(Bool)
		return ok && av == bv
	case Number:
		bv, ok := b.(Number)
		return ok && av == bv
	case String:
		bv, ok := b.(String)
		return ok && av == bv
	case Array:
		bv, ok := b.(Array)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Equal(av[i], bv[i]) {
				return false
			}
		}
		return true
	case *Object:
		bv, ok := b.(*Object)
		if !ok || av.Len() != bv.Len() {
			return false
		}
		bm := bv.Members()
		for i, m := range av.Members() {
			if m.Key != bm[i].Key || !Equal(m.Value, bm[i].Value) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
