package subtitle

import (
	"fmt"
	"math"
	"math/bits"
	"strconv"
	"strings"
	"time"
)

const nanosPerSecond = 1_000_000_000

// fractional digits kept when scaling to nanoseconds
const fractionDigits = 9

// Duration is a non-negative elapsed time at nanosecond resolution.
// Nanos is always below one second.
type Duration struct {
	Seconds uint64 `json:"secs"`
	Nanos   uint32 `json:"nanos"`
}

// NewDuration builds a Duration, carrying whole seconds out of nanos.
func NewDuration(seconds uint64, nanos uint32) Duration {
	seconds += uint64(nanos / nanosPerSecond)
	return Duration{
		Seconds: seconds,
		Nanos:   nanos % nanosPerSecond,
	}
}

// FromStd converts a time.Duration; negative values clamp to zero.
func FromStd(d time.Duration) Duration {
	if d <= 0 {
		return Duration{}
	}
	return Duration{
		Seconds: uint64(d / time.Second),
		Nanos:   uint32(d % time.Second),
	}
}

// Std converts to time.Duration, saturating at the largest representable value.
func (d Duration) Std() time.Duration {
	if d.Seconds > uint64(math.MaxInt64/int64(time.Second)) {
		return time.Duration(math.MaxInt64)
	}
	total := time.Duration(d.Seconds) * time.Second
	if total > time.Duration(math.MaxInt64)-time.Duration(d.Nanos) {
		return time.Duration(math.MaxInt64)
	}
	return total + time.Duration(d.Nanos)
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or after other.
func (d Duration) Compare(other Duration) int {
	switch {
	case d.Seconds < other.Seconds:
		return -1
	case d.Seconds > other.Seconds:
		return 1
	case d.Nanos < other.Nanos:
		return -1
	case d.Nanos > other.Nanos:
		return 1
	default:
		return 0
	}
}

// Milliseconds truncates the sub-millisecond part.
func (d Duration) Milliseconds() uint32 {
	return d.Nanos / 1_000_000
}

// String renders the WebVTT long form, HH:MM:SS.mmm.
func (d Duration) String() string {
	return d.format('.')
}

func (d Duration) format(sep byte) string {
	hours := d.Seconds / 3600
	minutes := (d.Seconds / 60) % 60
	seconds := d.Seconds % 60

	return fmt.Sprintf("%02d:%02d:%02d%c%03d",
		hours, minutes, seconds, sep, d.Milliseconds())
}

// ParseDuration converts a WebVTT timestamp token such as "5", "0:27.512" or
// "2:16:52.052" into a Duration.
//
// The token holds up to three ':'-separated fields weighted as hours, minutes
// and seconds from the right. The last field may carry a '.' fraction of any
// length; digits past nanosecond precision are truncated, never rounded.
func ParseDuration(token string) (Duration, error) {
	parts := strings.SplitN(token, ":", 3)

	var secs uint64
	var nanos uint32

	for i, part := range parts {
		if i == len(parts)-1 {
			whole, frac, hasFrac := strings.Cut(part, ".")
			if hasFrac {
				n, err := parseFraction(frac)
				if err != nil {
					return Duration{}, err
				}
				nanos = n
			}
			part = whole
		}

		value, err := parseComponent(part)
		if err != nil {
			return Duration{}, err
		}

		weight := uint64(1)
		for j := i; j < len(parts)-1; j++ {
			weight *= 60
		}

		hi, contribution := bits.Mul64(value, weight)
		if hi != 0 {
			return Duration{}, fmt.Errorf("%w: %q overflows", ErrInvalidCueTime, token)
		}
		sum, carry := bits.Add64(secs, contribution, 0)
		if carry != 0 {
			return Duration{}, fmt.Errorf("%w: %q overflows", ErrInvalidCueTime, token)
		}
		secs = sum
	}

	return NewDuration(secs, nanos), nil
}

func parseComponent(s string) (uint64, error) {
	if !isDigits(s) {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidCueTime, s)
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrInvalidCueTime, s, err)
	}
	return v, nil
}

// parseFraction scales a digit string to nanoseconds. Dropping the digits
// after the ninth is the same as integer division by 10^(len-9).
func parseFraction(s string) (uint32, error) {
	if !isDigits(s) {
		return 0, fmt.Errorf("%w: fraction %q is not a number", ErrInvalidCueTime, s)
	}
	if len(s) > fractionDigits {
		s = s[:fractionDigits]
	}
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: fraction %q: %v", ErrInvalidCueTime, s, err)
	}
	for i := len(s); i < fractionDigits; i++ {
		v *= 10
	}
	return uint32(v), nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
