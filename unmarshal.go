package jsonv

import (
	"fmt"
	"reflect"
	"strings"
)

// Unmarshal parses JSON data and stores the result in the value pointed
// to by v.
//
// Unmarshal uses struct tags to determine how to map object keys to
// struct fields:
//   - `json:"fieldname"` - maps the object key "fieldname" to this field
//   - `json:"fieldname,omitempty"` - skips the field if the value is empty
//   - `json:"fieldname,required"` - fails if the key is absent
//   - `json:"-"` - ignores this field
//
// Example:
//
//	type Config struct {
//	    Host    string   `json:"host"`
//	    Port    int      `json:"port"`
//	    Enabled bool     `json:"enabled"`
//	    Tags    []string `json:"tags"`
//	    Database struct {
//	        Host string `json:"host"`
//	        Port int    `json:"port"`
//	    } `json:"database"`
//	}
func Unmarshal(data []byte, v any) error {
	root, err := Parse(string(data))
	if err != nil {
		return err
	}
	return UnmarshalValue(root, v)
}

// UnmarshalValue stores a parsed Value tree in the value pointed to by v.
func UnmarshalValue(root Value, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("unmarshal target must be a non-nil pointer")
	}
	return setField(rv.Elem(), root)
}

func unmarshalStruct(obj *Object, v reflect.Value) error {
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		fieldValue := v.Field(i)

		// Skip unexported fields
		if !fieldValue.CanSet() {
			continue
		}

		tag := field.Tag.Get("json")
		if tag == "-" {
			continue
		}

		tagName, opts := parseTag(tag)
		if tagName == "" {
			// Use field name as default
			tagName = strings.ToLower(field.Name)
		}

		value, ok := obj.Get(tagName)
		if !ok {
			if hasOption(opts, "required") {
				return fmt.Errorf("required field %s not found", tagName)
			}
			continue
		}

		if hasOption(opts, "omitempty") && isEmptyValue(value) {
			continue
		}

		if err := setField(fieldValue, value); err != nil {
			return fmt.Errorf("field %s: %v", field.Name, err)
		}
	}

	return nil
}

// setField sets a reflect.Value from the matching Value variant.
func setField(field reflect.Value, value Value) error {
	if value == nil {
		return nil
	}
	if IsNull(value) {
		// null zeroes pointers and leaves other targets untouched.
		if field.Kind() == reflect.Ptr || field.Kind() == reflect.Interface {
			field.Set(reflect.Zero(field.Type()))
		}
		return nil
	}

	switch field.Kind() {
	case reflect.String:
		return setString(field, value)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return setInt(field, value)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return setUint(field, value)
	case reflect.Float32, reflect.Float64:
		return setFloat(field, value)
	case reflect.Bool:
		return setBool(field, value)
	case reflect.Slice:
		return setSlice(field, value)
	case reflect.Map:
		return setMap(field, value)
	case reflect.Struct:
		return setStruct(field, value)
	case reflect.Ptr:
		return setPointer(field, value)
	case reflect.Interface:
		field.Set(reflect.ValueOf(toAny(value)))
		return nil
	default:
		return fmt.Errorf("unsupported field type: %s", field.Kind())
	}
}

func setString(field reflect.Value, value Value) error {
	s, ok := AsString(value)
	if !ok {
		return fmt.Errorf("cannot convert %s to string", value.Kind())
	}
	field.SetString(s)
	return nil
}

func setInt(field reflect.Value, value Value) error {
	f, ok := AsFloat(value)
	if !ok {
		return fmt.Errorf("cannot convert %s to int", value.Kind())
	}
	field.SetInt(int64(f))
	return nil
}

func setUint(field reflect.Value, value Value) error {
	f, ok := AsFloat(value)
	if !ok {
		return fmt.Errorf("cannot convert %s to uint", value.Kind())
	}
	field.SetUint(uint64(f))
	return nil
}

func setFloat(field reflect.Value, value Value) error {
	f, ok := AsFloat(value)
	if !ok {
		return fmt.Errorf("cannot convert %s to float", value.Kind())
	}
	field.SetFloat(f)
	return nil
}

func setBool(field reflect.Value, value Value) error {
	b, ok := AsBool(value)
	if !ok {
		return fmt.Errorf("cannot convert %s to bool", value.Kind())
	}
	field.SetBool(b)
	return nil
}

func setSlice(field reflect.Value, value Value) error {
	arr, ok := AsArray(value)
	if !ok {
		return fmt.Errorf("cannot convert %s to slice", value.Kind())
	}
	slice := reflect.MakeSlice(field.Type(), len(arr), len(arr))
	for i, item := range arr {
		if err := setField(slice.Index(i), item); err != nil {
			return fmt.Errorf("index %d: %v", i, err)
		}
	}
	field.Set(slice)
	return nil
}

func setMap(field reflect.Value, value Value) error {
	obj, ok := AsObject(value)
	if !ok {
		return fmt.Errorf("cannot convert %s to map", value.Kind())
	}
	if field.Type().Key().Kind() != reflect.String {
		return fmt.Errorf("map target must have string keys")
	}
	m := reflect.MakeMap(field.Type())
	for _, member := range obj.Members() {
		elemValue := reflect.New(field.Type().Elem()).Elem()
		if err := setField(elemValue, member.Value); err != nil {
			return fmt.Errorf("key %s: %v", member.Key, err)
		}
		m.SetMapIndex(reflect.ValueOf(member.Key).Convert(field.Type().Key()), elemValue)
	}
	field.Set(m)
	return nil
}

func setStruct(field reflect.Value, value Value) error {
	obj, ok := AsObject(value)
	if !ok {
		return fmt.Errorf("cannot convert %s to struct", value.Kind())
	}
	return unmarshalStruct(obj, field)
}

func setPointer(field reflect.Value, value Value) error {
	ptr := reflect.New(field.Type().Elem())
	if err := setField(ptr.Elem(), value); err != nil {
		return err
	}
	field.Set(ptr)
	return nil
}

// toAny converts a Value tree to plain Go values: nil, bool, float64,
// string, []any, and map[string]any. Object insertion order is lost.
func toAny(v Value) any {
	switch t := v.(type) {
	case Bool:
		return bool(t)
	case Number:
		return float64(t)
	case String:
		return string(t)
	case Array:
		out := make([]any, len(t))
		for i, el := range t {
			out[i] = toAny(el)
		}
		return out
	case *Object:
		out := make(map[string]any, t.Len())
		for _, m := range t.Members() {
			out[m.Key] = toAny(m.Value)
		}
		return out
	default:
		return nil
	}
}

// Helper functions

func parseTag(tag string) (string, []string) {
	parts := strings.Split(tag, ",")
	if len(parts) == 0 {
		return "", nil
	}
	return parts[0], parts[1:]
}

func hasOption(opts []string, option string) bool {
	for _, opt := range opts {
		if opt == option {
			return true
		}
	}
	return false
}

func isEmptyValue(v Value) bool {
	switch t := v.(type) {
	case nil, Null:
		return true
	case Bool:
		return !bool(t)
	case Number:
		return t == 0
	case String:
		return t == ""
	case Array:
		return len(t) == 0
	case *Object:
		return t.Len() == 0
	default:
		return false
	}
}
