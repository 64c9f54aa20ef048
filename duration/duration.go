// Package duration builds, parses and formats running durations with
// whole-second resolution.
package duration

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrNegativeTime indicates a negative hour, minute or second component
	ErrNegativeTime = errors.New("duration components must not be negative")

	// ErrInvalidFormat indicates text that is not in HH:MM:SS or MM:SS form
	ErrInvalidFormat = errors.New("invalid duration format, expected HH:MM:SS or MM:SS")
)

// New composes hours, minutes and seconds into a duration.
// Components are not carried: New(0, 75, 0) is a valid 75-minute duration.
func New(hours, minutes, seconds int) (time.Duration, error) {
	if hours < 0 || minutes < 0 || seconds < 0 {
		return 0, ErrNegativeTime
	}
	total := hours*3600 + minutes*60 + seconds
	return time.Duration(total) * time.Second, nil
}

// Format renders a duration as zero-padded HH:MM:SS. The hour field is
// unbounded, so durations beyond a day render as e.g. "135:59:01".
// Downstream display code depends on this contract verbatim.
func Format(d time.Duration) string {
	secs := int64(d / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", secs/3600, secs/60%60, secs%60)
}

// FormatPace renders a pace as MM:SS, widening to HH:MM:SS in the
// unlikely case a pace exceeds an hour.
func FormatPace(d time.Duration) string {
	secs := int64(d / time.Second)
	if secs >= 3600 {
		return Format(d)
	}
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

// Parse is the inverse of Format. It accepts HH:MM:SS with an unbounded
// hour field, or the shorter MM:SS pace form.
func Parse(s string) (time.Duration, error) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}

	fields := make([]int, len(parts))
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
		}
		// only the leading field is unbounded
		if i > 0 && n > 59 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
		}
		fields[i] = n
	}

	if len(fields) == 2 {
		return New(0, fields[0], fields[1])
	}
	return New(fields[0], fields[1], fields[2])
}
