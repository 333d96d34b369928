package poster

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	reAbbrevMeridiem = regexp.MustCompile(`(?i)^(\d{1,2})(?::(\d{2}))?\s*([ap])m?$`)
	reFull12Hour     = regexp.MustCompile(`(?i)^(\d{1,2}):(\d{2})\s*(am|pm)$`)
	re24Hour         = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
	reBareSuffix     = regexp.MustCompile(`^(\d{1,2})([APap])$`)
	reBareHour       = regexp.MustCompile(`^(\d{1,2})$`)
)

// NormalizeTime converts human time notations ("2p", "2:30 PM", "14:30", "7")
// into a canonical zero-padded 24-hour "HH:MM" string. Patterns are tried in
// order and the first match wins. Input that matches nothing is returned
// unchanged so the operator can correct it in the form; the normalizer never
// fails.
//
// Bare numerals are ambiguous and are resolved by role: start times read as
// AM, end times lean PM, and a companion start time (when given) decides
// whether a bare end hour has wrapped past noon.
func NormalizeTime(raw string, isEnd bool, companion string) string {
	trimmed := strings.TrimSpace(raw)

	if m := reAbbrevMeridiem.FindStringSubmatch(trimmed); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minutes := m[2]
		if minutes == "" {
			minutes = "00"
		}

		return formatTime(applyMeridiem(hour, m[3]), minutes)
	}

	if m := reFull12Hour.FindStringSubmatch(trimmed); m != nil {
		hour, _ := strconv.Atoi(m[1])

		return formatTime(applyMeridiem(hour, m[3]), m[2])
	}

	if m := re24Hour.FindStringSubmatch(trimmed); m != nil {
		hour, _ := strconv.Atoi(m[1])

		// A bare small-hour end time is assumed PM relative to a presumably
		// earlier start. Zero-padded hours are already canonical output and
		// pass through untouched, which keeps normalization idempotent.
		if isEnd && hour >= 1 && hour <= 11 && !strings.HasPrefix(m[1], "0") {
			hour += 12
		}

		return formatTime(hour, m[2])
	}

	if m := reBareSuffix.FindStringSubmatch(trimmed); m != nil {
		hour, _ := strconv.Atoi(m[1])

		return formatTime(applyMeridiem(hour, m[2]), "00")
	}

	if m := reBareHour.FindStringSubmatch(trimmed); m != nil {
		hour, _ := strconv.Atoi(m[1])
		if hour >= 1 && hour <= 12 {
			if isEnd {
				hour = disambiguateBareEndHour(hour, companion)
			}

			return formatTime(hour, "00")
		}
	}

	return raw
}

// disambiguateBareEndHour resolves a suffix-less end hour against the
// companion start time. An AM start with a numerically smaller end hour means
// the event ran past noon; a PM start forces the end into PM as well. Without
// a companion the end hour defaults to PM.
func disambiguateBareEndHour(hour int, companion string) int {
	companionHour, ok := parseHour(companion)
	if !ok {
		return toPM(hour)
	}

	if companionHour >= 12 {
		return toPM(hour)
	}

	if hour < companionHour {
		return toPM(hour)
	}

	return hour
}

func parseHour(canonical string) (int, bool) {
	m := re24Hour.FindStringSubmatch(strings.TrimSpace(canonical))
	if m == nil {
		return 0, false
	}

	hour, _ := strconv.Atoi(m[1])

	return hour, true
}

func applyMeridiem(hour int, meridiem string) int {
	switch strings.ToLower(meridiem)[0] {
	case 'a':
		if hour == 12 {
			return 0
		}

		return hour
	default:
		return toPM(hour)
	}
}

func toPM(hour int) int {
	if hour == 12 {
		return hour
	}

	return hour + 12
}

func formatTime(hour int, minutes string) string {
	return fmt.Sprintf("%02d:%s", hour, minutes)
}
