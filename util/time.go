package util

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// NextSchedule returns the first instant after now that is offset into a
// period of length d.
func NextSchedule(now time.Time, offset time.Duration, d time.Duration) time.Time {
	t := now.Truncate(d).Add(offset)
	if t.After(now) {
		return t
	}
	return t.Add(d)
}

func plural(n int, suffix string) string {
	switch n {
	case 0:
		return ""
	case 1:
		return fmt.Sprintf("%d %s", n, suffix)
	default:
		return fmt.Sprintf("%d %ss", n, suffix)
	}
}

func number(n int, suffix string) string {
	if n == 0 {
		return ""
	}
	return fmt.Sprintf("%d%s", n, suffix)
}

func joinpair(a, b string) string {
	if a != "" && b != "" {
		return a + " " + b
	}
	return a + b
}

func FriendlyDuration(d time.Duration) string {
	switch {
	case d.Hours() >= 24:
		days := int(d.Hours() / 24)
		hours := int(d.Hours()) - days*24
		return joinpair(plural(days, "day"), plural(hours, "hour"))
	case d.Hours() >= 1:
		hours := int(d.Hours())
		mins := int(d.Minutes()) - 60*hours
		return joinpair(plural(hours, "hour"), plural(mins, "minute"))
	case d.Minutes() >= 1:
		mins := int(d.Minutes())
		secs := int(d.Seconds()) - 60*mins
		return joinpair(plural(mins, "minute"), plural(secs, "second"))
	case d.Seconds() >= 1:
		return plural(int(d.Seconds()), "second")
	}
	return "0 seconds"
}

func ShortDuration(d time.Duration) string {
	switch {
	case d.Hours() >= 24:
		days := int(d.Hours() / 24)
		hours := int(d.Hours()) - days*24
		return joinpair(number(days, "d"), number(hours, "h"))
	case d.Hours() >= 1:
		hours := int(d.Hours())
		mins := int(d.Minutes()) - 60*hours
		return joinpair(number(hours, "h"), number(mins, "m"))
	case d.Minutes() >= 1:
		mins := int(d.Minutes())
		secs := int(d.Seconds()) - 60*mins
		return joinpair(number(mins, "m"), number(secs, "s"))
	case d.Seconds() >= 1:
		return number(int(d.Seconds()), "s")
	}
	return "0s"
}

var durationUnits = map[string]time.Duration{
	"s": time.Second,
	"m": time.Minute,
	"h": time.Hour,
	"d": 24 * time.Hour,
	"w": 7 * 24 * time.Hour,
}

var reDuration = regexp.MustCompile(`^(\d+(?:\.\d+)?)([smhdw])\s*(?:(\d+(?:\.\d+)?)([smhdw]))?$`)

// ParseDuration does the same as time.ParseDuration but also understands
// d for day and w for week, and a space between two parts ("1d 6h").
func ParseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if d, err := time.ParseDuration(s); err == nil {
		return d, nil
	}
	m := reDuration.FindStringSubmatch(s)
	if m == nil {
		return 0, errors.Errorf("invalid duration %q", s)
	}
	var total time.Duration
	for i := 1; i < len(m) && m[i] != ""; i += 2 {
		n, _ := strconv.ParseFloat(m[i], 64)
		total += time.Duration(n * float64(durationUnits[m[i+1]]))
	}
	return total, nil
}

// MaxOffset bounds UTC offsets accepted by ParseOffset.
const MaxOffset = 18 * 3600

var reOffset = regexp.MustCompile(`^([+-])(\d{1,2})(?::?(\d{2}))?$`)

// ParseOffset parses a UTC offset into seconds east of UTC. Accepted forms
// are "Z" or "UTC", a signed hour with optional minutes ("+03:00", "-10",
// "+0530"), a duration ("5h45m", "-9h") or a number of seconds ("-36000").
func ParseOffset(s string) (int, error) {
	s = strings.TrimSpace(s)
	var seconds int
	switch m := reOffset.FindStringSubmatch(s); {
	case s == "" || s == "Z" || strings.EqualFold(s, "UTC"):
		return 0, nil
	case m != nil:
		hours, _ := strconv.Atoi(m[2])
		var mins int
		if m[3] != "" {
			mins, _ = strconv.Atoi(m[3])
			if mins >= 60 {
				return 0, errors.Errorf("invalid offset %q", s)
			}
		}
		seconds = hours*3600 + mins*60
		if m[1] == "-" {
			seconds = -seconds
		}
	default:
		if n, err := strconv.Atoi(s); err == nil {
			seconds = n
		} else if d, err := time.ParseDuration(s); err == nil {
			seconds = int(d / time.Second)
		} else {
			return 0, errors.Errorf("invalid offset %q", s)
		}
	}
	if seconds > MaxOffset || seconds < -MaxOffset {
		return 0, errors.Errorf("offset %q out of range", s)
	}
	return seconds, nil
}

// FormatOffset formats seconds east of UTC as "+hh:mm".
func FormatOffset(seconds int) string {
	sign := '+'
	if seconds < 0 {
		sign = '-'
		seconds = -seconds
	}
	return fmt.Sprintf("%c%02d:%02d", sign, seconds/3600, seconds%3600/60)
}

// SolarOffset is the whole-hour offset of mean solar time at longitude.
func SolarOffset(longitude float64) int {
	return int(math.Round(longitude/15)) * 3600
}

var instantLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseInstant understands "now", absolute times (RFC3339, or a UTC
// "2006-01-02 15:04" / "2006-01-02") and durations relative to now
// ("+2h", "-1d", "90m").
func ParseInstant(now time.Time, s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "now" {
		return now.UTC(), nil
	}
	for _, layout := range instantLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}

	sign := time.Duration(1)
	rel := s
	switch s[0] {
	case '-':
		sign = -1
		rel = s[1:]
	case '+':
		rel = s[1:]
	}
	d, err := ParseDuration(rel)
	if err != nil {
		return time.Time{}, errors.Errorf("invalid time %q", s)
	}
	return now.Add(sign * d).UTC(), nil
}
