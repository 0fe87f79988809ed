package domain

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Count is a raw, user-entered count. It may be empty, numeric, or garbage;
// the engine coerces it rather than rejecting it.
type Count string

// CountOf builds a Count from an integer
func CountOf(n int) Count {
	return Count(strconv.Itoa(n))
}

// IsEmpty reports whether nothing was entered
func (c Count) IsEmpty() bool {
	return strings.TrimSpace(string(c)) == ""
}

// Int coerces the value using leading-integer semantics: "12abc" is 12, "7.9" is 7,
// anything without leading digits is 0. Negative values are clamped to 0.
func (c Count) Int() int {
	s := strings.TrimLeft(string(c), " \t\r\n")
	neg := false
	if s != "" && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
	}
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 || neg {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}

// Number parses the whole value strictly. ok is false for empty or non-numeric input.
func (c Count) Number() (float64, bool) {
	s := strings.TrimSpace(string(c))
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// IsPositive reports a strictly numeric value greater than zero
func (c Count) IsPositive() bool {
	f, ok := c.Number()
	return ok && f > 0
}

// IsNonNegative reports a strictly numeric value of zero or more
func (c Count) IsNonNegative() bool {
	f, ok := c.Number()
	return ok && f >= 0
}

// UnmarshalYAML accepts any scalar; null decodes to an empty Count.
func (c *Count) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode || value.Tag == "!!null" {
		*c = ""
		return nil
	}
	*c = Count(value.Value)
	return nil
}

// UnmarshalJSON accepts numbers, strings and null.
func (c *Count) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*c = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = Count(s)
		return nil
	}
	*c = Count(data)
	return nil
}
