package dto

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Number accepts a JSON number or a numeric string. Any other value decodes
// without error and reports nil from Float, so callers can answer with their
// own message instead of a generic body error.
type Number struct {
	value float64
	ok    bool
}

func NewNumber(v float64) Number {
	return Number{value: v, ok: true}
}

func (n *Number) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = strings.TrimSpace(unquoted)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		*n = Number{}
		return nil
	}
	*n = Number{value: v, ok: true}
	return nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	if !n.ok {
		return []byte("null"), nil
	}
	return json.Marshal(n.value)
}

func (n Number) Float() *float64 {
	if !n.ok {
		return nil
	}
	v := n.value
	return &v
}

// StringList accepts either a single string or a list of strings.
type StringList []string

func (l *StringList) UnmarshalJSON(b []byte) error {
	var one string
	if err := json.Unmarshal(b, &one); err == nil {
		if one = strings.TrimSpace(one); one != "" {
			*l = StringList{one}
		} else {
			*l = nil
		}
		return nil
	}
	var many []string
	if err := json.Unmarshal(b, &many); err != nil {
		return err
	}
	*l = many
	return nil
}
