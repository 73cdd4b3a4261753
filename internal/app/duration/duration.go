// Package duration converts between human-entered time text and canonical
// integer minutes. Parse and Format are total inverses over [1, MaxMinutes]:
// Parse(Format(m)) == m for every minute count Format can be given.
package duration

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/pacely/pacely/internal/domain"
)

// MaxMinutes caps a single task duration at one day. Design constant,
// not user-configurable.
const MaxMinutes = 1440

// Recognized shapes, tried in priority order: combined hours+minutes,
// hours only (integer or decimal), minutes only (suffix optional).
var (
	combinedRe = regexp.MustCompile(`^(\d+)h(\d+)m?$`)
	hoursRe    = regexp.MustCompile(`^(\d+(?:\.\d+)?)(?:h|hr|hrs|hour|hours)$`)
	minutesRe  = regexp.MustCompile(`^(\d+)(?:m|min|mins|minute|minutes)?$`)
)

// Parse converts text like "1h30m", "1.5h", "2 hours", "45m", "90" into
// minutes. Whitespace is stripped and matching is case-insensitive.
// Returns domain.ErrInvalidDurationFormat for unrecognized text and
// domain.ErrDurationOutOfRange when the result is ≤ 0 or > MaxMinutes.
func Parse(input string) (int, error) {
	s := strings.ToLower(strings.Join(strings.Fields(input), ""))
	if s == "" {
		return 0, fmt.Errorf("%w: empty input", domain.ErrInvalidDurationFormat)
	}

	minutes, ok := parseShape(s)
	if !ok {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidDurationFormat, input)
	}
	if minutes <= 0 || minutes > MaxMinutes {
		return 0, fmt.Errorf("%w: %q is %dm", domain.ErrDurationOutOfRange, input, minutes)
	}
	return minutes, nil
}

func parseShape(s string) (int, bool) {
	if m := combinedRe.FindStringSubmatch(s); m != nil {
		h, errH := strconv.Atoi(m[1])
		min, errM := strconv.Atoi(m[2])
		if errH != nil || errM != nil {
			return 0, false
		}
		return h*60 + min, true
	}

	if m := hoursRe.FindStringSubmatch(s); m != nil {
		hours, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return 0, false
		}
		// Round half up to the nearest whole minute (1.33h → 80m, not 79m).
		return int(math.Floor(hours*60 + 0.5)), true
	}

	if m := minutesRe.FindStringSubmatch(s); m != nil {
		min, err := strconv.Atoi(m[1])
		if err != nil {
			return 0, false
		}
		return min, true
	}

	return 0, false
}

// Format renders minutes as the shortest human string Parse accepts:
// 0 → "0m", 45 → "45m", 120 → "2h", 90 → "1h30m".
func Format(minutes int) string {
	if minutes <= 0 {
		return "0m"
	}
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	h, m := minutes/60, minutes%60
	if m == 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dh%dm", h, m)
}
