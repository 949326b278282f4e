package jwtx

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidTTL reports an expiration that ParseTTL cannot understand.
var ErrInvalidTTL = errors.New("jwtx: invalid ttl")

// ParseTTL parses a token lifetime. It accepts Go durations ("90m", "1h30m"),
// day and week suffixes ("7d", "2w") and bare integers, which are seconds.
func ParseTTL(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidTTL
	}

	if secs, err := strconv.ParseInt(s, 10, 64); err == nil {
		return checkTTL(time.Duration(secs) * time.Second)
	}

	for suffix, unit := range map[string]time.Duration{"d": 24 * time.Hour, "w": 7 * 24 * time.Hour} {
		if n, ok := strings.CutSuffix(s, suffix); ok {
			v, err := strconv.ParseFloat(n, 64)
			if err != nil {
				return 0, fmt.Errorf("%w: %q", ErrInvalidTTL, s)
			}
			return checkTTL(time.Duration(v * float64(unit)))
		}
	}

	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTTL, s)
	}
	return checkTTL(d)
}

func checkTTL(d time.Duration) (time.Duration, error) {
	if d <= 0 {
		return 0, fmt.Errorf("%w: must be positive", ErrInvalidTTL)
	}
	return d, nil
}
