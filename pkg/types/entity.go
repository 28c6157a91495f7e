// Entity records returned by the OctoFit API.
package types

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Entity is one record from a collection endpoint: an opaque mapping of field
// names to primitive JSON values. Numbers are kept as json.Number so ids and
// counts print exactly as the API sent them.
type Entity map[string]any

// Value returns the raw value stored under key.
func (e Entity) Value(key string) (any, bool) {
	v, ok := e[key]
	return v, ok
}

// Text returns the value under key formatted for display, or "" when absent.
func (e Entity) Text(key string) string {
	return Text(e[key])
}

// ID returns the entity id as text. The second result is false when the id
// is absent or falsy.
func (e Entity) ID() (string, bool) {
	v, ok := e["id"]
	if !ok || !Truthy(v) {
		return "", false
	}
	return Text(v), true
}

// Key returns the row key for the entity at position index: its id, or
// "#<index>" when the id is missing.
func (e Entity) Key(index int) string {
	if id, ok := e.ID(); ok {
		return id
	}
	return "#" + strconv.Itoa(index)
}

// Truthy reports whether v counts as present for fallback chains. nil, the
// empty string, false, zero and NaN are falsy; everything else is truthy,
// including empty arrays and objects.
func Truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case string:
		return x != ""
	case bool:
		return x
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return x.String() != ""
		}
		return f != 0 && !math.IsNaN(f)
	case float64:
		return x != 0 && !math.IsNaN(x)
	case float32:
		return x != 0
	case int:
		return x != 0
	case int64:
		return x != 0
	default:
		return true
	}
}

// Text formats a decoded JSON value for display. nil renders as "".
func Text(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case json.Number:
		return x.String()
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	default:
		return fmt.Sprint(x)
	}
}

// Number converts a decoded JSON value to float64. Strings holding numbers
// are accepted; anything else reports false.
func Number(v any) (float64, bool) {
	switch x := v.(type) {
	case json.Number:
		f, err := x.Float64()
		return f, err == nil
	case float64:
		return x, true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case string:
		f, err := strconv.ParseFloat(x, 64)
		return f, err == nil
	default:
		return 0, false
	}
}
