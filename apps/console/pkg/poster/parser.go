// Package poster turns raw OCR output from an event flyer into a structured,
// operator-editable draft. Extraction is best effort: anything the heuristics
// cannot read is left nil for the operator to fill in, never an error.
package poster

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	DateFormat = "2006-01-02"

	StatusDraft       = "draft"
	DefaultRecurrence = "Annual"
)

// Draft is the parser's output. It mirrors the shape of a persisted event
// record so the editor can treat both the same way; Location, WebsiteURL,
// Recurrence and Status are seeded defaults and are never read from the text.
type Draft struct {
	Name       string  `json:"name"`
	StartDate  *string `json:"startDate"`
	EndDate    *string `json:"endDate"`
	StartTime  *string `json:"startTime"`
	EndTime    *string `json:"endTime"`
	AllDay     bool    `json:"allDay"`
	Location   string  `json:"location"`
	WebsiteURL string  `json:"websiteUrl"`
	Recurrence string  `json:"recurrence"`
	Status     string  `json:"status"`
}

const (
	monthPattern = `jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|` +
		`jun(?:e)?|jul(?:y)?|aug(?:ust)?|sep(?:t(?:ember)?)?|oct(?:ober)?|` +
		`nov(?:ember)?|dec(?:ember)?`
	dayPattern = `sun(?:day)?|mon(?:day)?|tue(?:s(?:day)?)?|wed(?:nesday)?|` +
		`thu(?:r(?:s(?:day)?)?)?|fri(?:day)?|sat(?:urday)?`
)

// datePatterns is the primary, ordered set of date-shaped matchers. The first
// line matching any of them is the date line; everything before it is title.
var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:` + monthPattern + `)\.?\s+\d{1,2}(?:st|nd|rd|th)?,?\s+\d{4}\b`),
	regexp.MustCompile(`(?i)\b\d{1,2}(?:st|nd|rd|th)?\s+(?:of\s+)?(?:` + monthPattern + `)\b`),
	regexp.MustCompile(`(?i)\b(?:` + dayPattern + `),?\s+(?:` + monthPattern + `)\b`),
	regexp.MustCompile(`\b\d{1,2}/\d{1,2}/\d{2,4}\b`),
	regexp.MustCompile(`\b\d{1,2}-\d{1,2}-\d{2,4}\b`),
	regexp.MustCompile(`\b\d{1,2}\.\d{1,2}\.\d{2,4}\b`),
	regexp.MustCompile(`^(?:19|20)\d{2}$`),
	regexp.MustCompile(`(?i)\b\d{1,2}(?:st|nd|rd|th)\b`),
}

// fallbackDatePatterns is the looser second-pass set used when no line matched
// the primary patterns.
var fallbackDatePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b\d{4}-\d{1,2}-\d{1,2}\b`),
	regexp.MustCompile(`(?i)\b(?:` + monthPattern + `)\b`),
	regexp.MustCompile(`\b\d{1,2}[/.\-]\d{1,2}\b`),
	regexp.MustCompile(`\b(?:19|20)\d{2}\b`),
}

var (
	reAllDay     = regexp.MustCompile(`(?i)all\s*day`)
	reTimeRange  = regexp.MustCompile(`(?i)(\d{1,2}):(\d{2})\s?([AP])M?(?:\s*[-–—~]\s*(\d{1,2}):(\d{2})\s?([AP])M?)?`)
	reWhitespace = regexp.MustCompile(`\s+`)
	reLeadingDay = regexp.MustCompile(`(?i)^(?:` + dayPattern + `)[,.]?\s+`)
	reOrdinal    = regexp.MustCompile(`(?i)(\d)(?:st|nd|rd|th)\b`)
	reWordOf     = regexp.MustCompile(`(?i)\bof\b`)

	reManualNumericDate = regexp.MustCompile(`\b(\d{1,2})[/.\-](\d{1,2})[/.\-](\d{2,4})\b`)
	reManualNamedDate   = regexp.MustCompile(`(?i)\b(` + monthPattern + `)[a-z]*\.?\s+(\d{1,2})(?:st|nd|rd|th)?,?\s*(\d{4})\b`)
)

// Parse extracts a structured draft from raw multi-line OCR text.
func Parse(rawText string) Draft {
	draft := Draft{
		Recurrence: DefaultRecurrence,
		Status:     StatusDraft,
	}

	lines := splitLines(rawText)
	if len(lines) == 0 {
		return draft
	}

	titleLines, dateLine, found := findDateLine(lines, datePatterns)
	if !found {
		// Fallback pass. Title accumulation is intentionally not repeated
		// here: when only the aggressive pass finds a date, the name falls
		// back to the first line. Pinned by a test pending a product
		// decision on whether earlier lines should become the title.
		titleLines = nil
		_, dateLine, found = findDateLine(lines, fallbackDatePatterns)
	}

	draft.Name = collapseWhitespace(strings.Join(titleLines, " "))
	if draft.Name == "" {
		draft.Name = collapseWhitespace(lines[0])
	}

	if !found {
		return draft
	}

	if reAllDay.MatchString(dateLine) {
		draft.AllDay = true
		dateLine = strings.TrimSpace(reAllDay.ReplaceAllString(dateLine, ""))
	}

	dateLine = extractTimeRange(dateLine, &draft)

	if date, ok := extractDate(dateLine); ok {
		formatted := date.Format(DateFormat)
		draft.StartDate = &formatted
		// Single-day assumption; a multi-day range is an operator edit.
		endDate := formatted
		draft.EndDate = &endDate
	}

	return draft
}

func splitLines(text string) []string {
	lines := []string{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}

	return lines
}

func findDateLine(
	lines []string,
	patterns []*regexp.Regexp,
) ([]string, string, bool) {
	titleLines := []string{}
	for _, line := range lines {
		for _, pattern := range patterns {
			if pattern.MatchString(line) {
				return titleLines, line, true
			}
		}

		titleLines = append(titleLines, line)
	}

	return nil, "", false
}

// extractTimeRange pulls an explicit "H:MM AM - H:MM PM" style range off the
// date line and returns the line with the range removed. Both values carry
// their own meridiem here so they convert directly, without the role-aware
// bare-hour heuristics of NormalizeTime.
func extractTimeRange(dateLine string, draft *Draft) string {
	m := reTimeRange.FindStringSubmatch(dateLine)
	if m == nil {
		return dateLine
	}

	start := convert12Hour(m[1], m[2], m[3])
	draft.StartTime = &start

	if m[4] != "" {
		end := convert12Hour(m[4], m[5], m[6])
		draft.EndTime = &end
	}

	cleaned := strings.Replace(dateLine, m[0], "", 1)

	return strings.TrimSpace(cleaned)
}

func convert12Hour(hourStr, minutes, meridiem string) string {
	hour, _ := strconv.Atoi(hourStr)

	if strings.EqualFold(meridiem, "a") {
		if hour == 12 {
			hour = 0
		}
	} else if hour != 12 {
		hour += 12
	}

	return formatTime(hour, minutes)
}

// extractDate attempts direct parsing of the cleaned date line and of a fixed
// sequence of cleaned variants, then falls back to two manual structural
// matchers. The first attempt yielding a calendar date with a year strictly
// between 1900 and 2100 wins.
func extractDate(dateLine string) (time.Time, bool) {
	collapsed := collapseWhitespace(dateLine)

	variants := []string{
		dateLine,
		strings.ReplaceAll(dateLine, ",", ""),
		collapsed,
		reLeadingDay.ReplaceAllString(collapsed, ""),
		reOrdinal.ReplaceAllString(collapsed, "$1"),
		collapseWhitespace(reWordOf.ReplaceAllString(collapsed, "")),
		strings.ReplaceAll(collapsed, ",", ""),
	}

	for _, variant := range variants {
		variant = strings.TrimSpace(variant)
		if variant == "" {
			continue
		}

		if date, ok := tryParseDate(variant); ok {
			return date, true
		}

		// Layout parsing chokes on ordinal suffixes even in otherwise clean
		// variants, so retry each variant with them stripped.
		stripped := reOrdinal.ReplaceAllString(variant, "$1")
		if stripped != variant {
			if date, ok := tryParseDate(stripped); ok {
				return date, true
			}
		}
	}

	if date, ok := parseManualNumeric(collapsed); ok {
		return date, true
	}

	return parseManualNamed(collapsed)
}

// Two-digit-year layouts are deliberately absent; Go pivots those at 69 while
// the manual numeric fallback applies the <50 rule this system promises.
var dateLayouts = []string{
	"January 2, 2006",
	"January 2 2006",
	"Jan 2, 2006",
	"Jan 2 2006",
	"2 January 2006",
	"2 Jan 2006",
	"Monday, January 2, 2006",
	"Monday, January 2 2006",
	"Monday January 2 2006",
	"Mon, January 2, 2006",
	"Mon, Jan 2, 2006",
	"Mon, Jan 2 2006",
	"Mon Jan 2 2006",
	"1/2/2006",
	"1-2-2006",
	"1.2.2006",
	"2006-01-02",
	"2006-1-2",
	"2006/01/02",
}

// Flyers often omit the year entirely; those dates land in the current year.
var yearlessLayouts = []string{
	"January 2",
	"Jan 2",
	"Monday, January 2",
	"Monday, Jan 2",
	"Mon, January 2",
	"Mon, Jan 2",
	"Mon Jan 2",
}

func tryParseDate(value string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		date, err := time.Parse(layout, value)
		if err == nil && yearInRange(date) {
			return date, true
		}
	}

	for _, layout := range yearlessLayouts {
		date, err := time.Parse(layout, value)
		if err == nil {
			return time.Date(
				time.Now().Year(), date.Month(), date.Day(),
				0, 0, 0, 0, time.UTC,
			), true
		}
	}

	return time.Time{}, false
}

// parseManualNumeric reads M/D/Y with a 2 or 4 digit year; 2-digit years
// below 50 land in the 2000s, the rest in the 1900s.
func parseManualNumeric(value string) (time.Time, bool) {
	m := reManualNumericDate.FindStringSubmatch(value)
	if m == nil {
		return time.Time{}, false
	}

	month, _ := strconv.Atoi(m[1])
	day, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])

	if len(m[3]) <= 2 {
		if year < 50 {
			year += 2000
		} else {
			year += 1900
		}
	}

	return makeDate(year, month, day)
}

func parseManualNamed(value string) (time.Time, bool) {
	m := reManualNamedDate.FindStringSubmatch(value)
	if m == nil {
		return time.Time{}, false
	}

	month, ok := monthFromName(m[1])
	if !ok {
		return time.Time{}, false
	}

	day, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])

	return makeDate(year, month, day)
}

var monthPrefixes = []string{
	"jan", "feb", "mar", "apr", "may", "jun",
	"jul", "aug", "sep", "oct", "nov", "dec",
}

func monthFromName(name string) (int, bool) {
	lower := strings.ToLower(name)
	for i, prefix := range monthPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return i + 1, true
		}
	}

	return 0, false
}

func makeDate(year, month, day int) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if !yearInRange(date) {
		return time.Time{}, false
	}

	// time.Date normalizes overflow (Feb 30 becomes Mar 2); reject that.
	if date.Day() != day || date.Month() != time.Month(month) {
		return time.Time{}, false
	}

	return date, true
}

func yearInRange(date time.Time) bool {
	return date.Year() > 1900 && date.Year() < 2100
}

func collapseWhitespace(s string) string {
	return strings.TrimSpace(reWhitespace.ReplaceAllString(s, " "))
}
