package model

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// ProviderCode is an authorization or error code returned by the provider.
// The API is not consistent about sending codes as numbers or strings, so
// both are accepted.
type ProviderCode string

// Normalize returns the canonical decimal form of the leading integer of the
// code ("05", "3.0" and "3abc" all have one), or the code unchanged if it
// does not start with a number.
func (c ProviderCode) Normalize() ProviderCode {
	s := strings.TrimSpace(string(c))

	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}

	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}

	if end == digits {
		return c
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return c
	}
	return ProviderCode(strconv.Itoa(n))
}

func (c ProviderCode) MarshalJSON() ([]byte, error) {
	if n, err := strconv.Atoi(string(c)); err == nil {
		return []byte(strconv.Itoa(n)), nil
	}
	return json.Marshal(string(c))
}

func (c *ProviderCode) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*c = ""
		return nil
	}

	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*c = ProviderCode(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}

	*c = ProviderCode(n.String())
	return nil
}
