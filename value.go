package svg

import (
	"fmt"
	"strconv"
	"strings"
)

// A Value is the rendered text of an attribute value. Values compare by
// their text; formatting happens once, at construction.
type Value string

// Attributes maps attribute names to values. Serialization order is not
// insertion order: the composer sorts names bytewise for determinism.
type Attributes map[string]Value

func (v Value) String() string {
	return string(v)
}

// NewValue renders a Go value as an attribute value. Strings pass through
// verbatim, floats render in their shortest form (13.0 becomes "13"), and
// slices of numbers become space-separated tuples ("12.5 13"). Types
// implementing fmt.Stringer, such as path.Data, use their own rendering;
// anything else falls back to fmt.
func NewValue(v any) Value {
	switch v := v.(type) {
	case Value:
		return v
	case string:
		return Value(v)
	case fmt.Stringer:
		return Value(v.String())
	case bool:
		return Value(strconv.FormatBool(v))
	case int:
		return Value(strconv.Itoa(v))
	case int64:
		return Value(strconv.FormatInt(v, 10))
	case uint:
		return Value(strconv.FormatUint(uint64(v), 10))
	case uint64:
		return Value(strconv.FormatUint(v, 10))
	case float32:
		return Value(formatFloat(float64(v)))
	case float64:
		return Value(formatFloat(v))
	case []int:
		parts := make([]string, len(v))
		for i, n := range v {
			parts[i] = strconv.Itoa(n)
		}
		return Value(strings.Join(parts, " "))
	case []float64:
		parts := make([]string, len(v))
		for i, f := range v {
			parts[i] = formatFloat(f)
		}
		return Value(strings.Join(parts, " "))
	case []any:
		parts := make([]string, len(v))
		for i, e := range v {
			parts[i] = string(NewValue(e))
		}
		return Value(strings.Join(parts, " "))
	default:
		return Value(fmt.Sprint(v))
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
