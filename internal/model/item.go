package model

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Item is one row of the backend item listing.
// Fields are carried exactly as the backend sent them; nothing is validated.
type Item struct {
	ID          Field
	Name        Field
	Description Field
}

// ErrorItemName is shown in place of the listing when a fetch fails.
const ErrorItemName = "Error fetching items"

// ErrorItem is the sentinel row substituted for the whole list on failure.
func ErrorItem() Item {
	return Item{ID: Number(0), Name: Text(ErrorItemName)}
}

// ItemFromMap picks id/name/description out of a decoded JSON object.
func ItemFromMap(m map[string]any) Item {
	return Item{
		ID:          Value(m["id"]),
		Name:        Value(m["name"]),
		Description: Value(m["description"]),
	}
}

// Field holds a raw decoded JSON value.
type Field struct {
	v any
}

func Value(v any) Field    { return Field{v: v} }
func Text(s string) Field  { return Field{v: s} }
func Number(n int64) Field { return Field{v: json.Number(strconv.FormatInt(n, 10))} }

// String renders the value for display: strings as is, numbers in the
// shortest form a browser would print (1.0 -> 1, 1e3 -> 1000), null and
// booleans as nothing, anything else as compact JSON.
func (f Field) String() string {
	switch v := f.v.(type) {
	case nil, bool:
		return ""
	case string:
		return v
	case json.Number:
		n, err := v.Float64()
		if err != nil {
			return v.String()
		}
		return formatNumber(n)
	case float64:
		return formatNumber(v)
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(b)
	}
}

// formatNumber switches to exponent form outside [1e-6, 1e21), like JavaScript.
func formatNumber(f float64) string {
	if f == 0 {
		return "0"
	}
	if a := math.Abs(f); a >= 1e21 || a < 1e-6 {
		s := strconv.FormatFloat(f, 'e', -1, 64)
		s = strings.Replace(s, "e-0", "e-", 1)
		return strings.Replace(s, "e+0", "e+", 1)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
