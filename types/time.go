package types

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

var errUnsupportedTimeFormat = errors.New("unsupported time format")

// isoLayouts are tried in order when a timestamp is not numeric
var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
}

// Time represents a time.Time object that can be unmarshalled from an epoch
// number (seconds, milliseconds, microseconds or nanoseconds, quoted or not)
// or from an ISO-8601 string. The swap API reports ISO-8601 while the spot API
// reports epoch milliseconds.
type Time time.Time

// UnmarshalJSON deserializes json, and timestamp information.
func (t *Time) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' {
		s = s[1 : len(s)-1]
	}
	if s == "null" {
		*t = Time(time.Time{})
		return nil
	}
	parsed, err := ParseTime(s)
	if err != nil {
		return fmt.Errorf("cannot unmarshal %s into Time: %w", string(data), err)
	}
	*t = Time(parsed)
	return nil
}

// ParseTime converts an epoch number string or an ISO-8601 string into a
// time.Time. Empty and "0" values yield the zero time.
func ParseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	switch s {
	case "", "0":
		return time.Time{}, nil
	}
	if strings.ContainsAny(s, "-:T") {
		for _, layout := range isoLayouts {
			if parsed, err := time.Parse(layout, s); err == nil {
				return parsed.UTC(), nil
			}
		}
		return time.Time{}, fmt.Errorf("%w: %q", errUnsupportedTimeFormat, s)
	}
	return parseEpoch(s)
}

func parseEpoch(s string) (time.Time, error) {
	badSyntax := false
	target := strings.IndexFunc(s, func(r rune) bool {
		if r == '.' {
			return true
		}
		badSyntax = r < '0' || r > '9'
		return badSyntax
	})
	if target != -1 {
		if badSyntax {
			return time.Time{}, fmt.Errorf("%w for `%v`", strconv.ErrSyntax, s)
		}
		s = s[:target] + s[target+1:]
	}

	standard, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return time.Time{}, err
	}

	switch len(s) {
	case 10:
		return time.Unix(standard, 0), nil
	case 11, 12:
		// Milliseconds: 1726104395.5 && 1726104395.56
		return time.UnixMilli(standard * int64(math.Pow10(13-len(s)))), nil
	case 13:
		return time.UnixMilli(standard), nil
	case 14:
		// Microseconds: 1726106210903.0
		return time.UnixMicro(standard * 100), nil
	case 16:
		return time.UnixMicro(standard), nil
	case 17:
		// Nanoseconds: 1606292218213.4578
		return time.Unix(0, standard*100), nil
	case 19:
		return time.Unix(0, standard), nil
	default:
		return time.Time{}, fmt.Errorf("%w: %q", errUnsupportedTimeFormat, s)
	}
}

// ParseMillis returns the epoch millisecond value of s. ok is false when s is
// empty, zero or cannot be parsed.
func ParseMillis(s string) (ms int64, ok bool) {
	parsed, err := ParseTime(s)
	if err != nil || parsed.IsZero() {
		return 0, false
	}
	return parsed.UnixMilli(), true
}

// Time represents a time instance.
func (t Time) Time() time.Time { return time.Time(t) }

// UnixMilli returns the epoch millisecond representation of the time
func (t Time) UnixMilli() int64 { return t.Time().UnixMilli() }

// String returns a string representation of the time.
func (t Time) String() string {
	return t.Time().String()
}

// MarshalJSON serializes the time to json.
func (t Time) MarshalJSON() ([]byte, error) {
	return t.Time().MarshalJSON()
}
