package models

import (
	"encoding/json"
	"math"
)

// Rating holds a caller-supplied survey answer exactly as it arrived (number,
// string or bool). Answers are never coerced; they are stored verbatim.
type Rating struct {
	value any
}

func NewRating(v any) Rating {
	return Rating{value: v}
}

func (r *Rating) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &r.value)
}

func (r Rating) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.value)
}

func (r Rating) Value() any {
	return r.value
}

// Truthy reports whether the answer counts as given. Absent, null, 0, "" and
// false do not.
func (r Rating) Truthy() bool {
	switch v := r.value.(type) {
	case nil:
		return false
	case bool:
		return v
	case float64:
		return v != 0 && !math.IsNaN(v)
	case string:
		return v != ""
	default:
		return true
	}
}
