package config

import (
	"encoding/json"
	"errors"
	"strconv"
)

// ErrInvalidCounter is returned when a counter is zero, negative or does not
// fit into 32 bits.
var ErrInvalidCounter = errors.New("counter must be an integer in [1, 4294967295]")

// Counter is a site counter as read from configuration. The zero value means
// "not set"; an explicit 0 is rejected while parsing.
//
// Counter implements flag.Value, encoding.TextUnmarshaler (used by
// caarlos0/env) and json.Unmarshaler.
type Counter uint32

func (c *Counter) String() string {
	if c == nil || *c == 0 {
		return ""
	}
	return strconv.FormatUint(uint64(*c), 10)
}

func (c *Counter) Set(s string) error {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil || n == 0 {
		return ErrInvalidCounter
	}
	*c = Counter(n)
	return nil
}

func (c *Counter) UnmarshalText(text []byte) error {
	return c.Set(string(text))
}

// UnmarshalJSON accepts both numbers and numeric strings.
func (c *Counter) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		return c.Set(s)
	}
	return c.Set(string(b))
}
