package request

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// FlexibleNumber accepts a JSON number or numeric string. A present value
// that is null, empty or not numeric reads as 0; an absent key leaves Set
// false.
type FlexibleNumber struct {
	Set   bool
	Value float64
}

func (n *FlexibleNumber) UnmarshalJSON(data []byte) error {
	n.Set = true
	n.Value = 0

	data = bytes.TrimSpace(data)
	var raw string
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		return nil
	case data[0] == '"':
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil
		}
	default:
		raw = string(data)
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	n.Value = v
	return nil
}

// Ptr is nil when the key was absent.
func (n FlexibleNumber) Ptr() *float64 {
	if !n.Set {
		return nil
	}
	v := n.Value
	return &v
}
