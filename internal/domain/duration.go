package domain

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"
)

// Common parse failures, wrapped by ParseError.
var (
	ErrUnknownCharacter = errors.New("unrecognized character")
	ErrMissingAmount    = errors.New("unit without a number")
	ErrMissingUnit      = errors.New("number without a unit")
	ErrDurationTooLarge = errors.New("duration too large")
)

// ParseError describes a malformed duration string.
type ParseError struct {
	Input  string
	Offset int
	Err    error
}

func (e *ParseError) Error() string {
	if e.Offset >= 0 && e.Offset < len(e.Input) {
		return fmt.Sprintf("invalid duration %q: %v %q at offset %d", e.Input, e.Err, e.Input[e.Offset], e.Offset)
	}
	return fmt.Sprintf("invalid duration %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// unitSeconds maps each unit letter to its length in seconds.
var unitSeconds = map[byte]uint64{
	'd': 86400,
	'h': 3600,
	'm': 60,
	's': 1,
}

const maxSeconds = uint64(math.MaxInt64 / int64(time.Second))

// ParseDuration parses a compound duration such as "1h30m" or "10d3h21m10s".
// Units may repeat and appear in any order; their values are summed.
// Spaces are ignored and an empty string is a zero duration.
func ParseDuration(input string) (time.Duration, error) {
	var total uint64
	var digits []byte

	for i := 0; i < len(input); i++ {
		c := input[i]
		switch {
		case c >= '0' && c <= '9':
			digits = append(digits, c)
		case c == ' ':
		default:
			unit, ok := unitSeconds[c]
			if !ok {
				return 0, &ParseError{Input: input, Offset: i, Err: ErrUnknownCharacter}
			}
			if len(digits) == 0 {
				return 0, &ParseError{Input: input, Offset: i, Err: ErrMissingAmount}
			}
			n, err := strconv.ParseUint(string(digits), 10, 64)
			if err != nil || n > maxSeconds/unit || total+n*unit > maxSeconds {
				return 0, &ParseError{Input: input, Offset: -1, Err: ErrDurationTooLarge}
			}
			total += n * unit
			digits = digits[:0]
		}
	}

	if len(digits) > 0 {
		return 0, &ParseError{Input: input, Offset: -1, Err: ErrMissingUnit}
	}

	return time.Duration(total) * time.Second, nil
}

// FormatDuration renders d in its canonical compact form. Once a unit is
// shown every smaller unit is shown too, so 1h reads "1h0m0s".
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int64(d / time.Second)

	seconds := secs % 60
	minutes := secs / 60 % 60
	hours := secs / 3600 % 24
	days := secs / 86400

	switch {
	case days > 0:
		return fmt.Sprintf("%dd%dh%dm%ds", days, hours, minutes, seconds)
	case hours > 0:
		return fmt.Sprintf("%dh%dm%ds", hours, minutes, seconds)
	case minutes > 0:
		return fmt.Sprintf("%dm%ds", minutes, seconds)
	default:
		return fmt.Sprintf("%ds", seconds)
	}
}
