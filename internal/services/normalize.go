package services

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"eventline/internal/domain"
)

var (
	slugStrip      = regexp.MustCompile(`[^\w\s-]`)
	slugWhitespace = regexp.MustCompile(`\s+`)
	slugHyphenRun  = regexp.MustCompile(`-+`)

	// Hour 0-23 with optional leading zero, minutes exactly two digits.
	timePattern = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):([0-5][0-9])$`)

	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// Layouts tried in order when normalizing a date. The canonical layout comes
// first so already-normalized values round-trip without reformatting.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"January 2, 2006",
	"Jan 2, 2006",
	"01/02/2006",
}

// slugify derives a URL-safe identifier from a title: lowercase, strip
// everything that is not a word character, whitespace, or hyphen, turn
// whitespace runs into single hyphens, collapse hyphen runs, and trim
// hyphens from both ends.
func slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = slugStrip.ReplaceAllString(s, "")
	s = slugWhitespace.ReplaceAllString(s, "-")
	s = slugHyphenRun.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// normalizeDate parses raw as a calendar date and returns the canonical
// YYYY-MM-DD form, discarding any time-of-day component. Unparseable input
// (including impossible dates like 2024-02-30) fails with ErrNormalization.
func normalizeDate(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("2006-01-02"), nil
		}
	}
	return "", fmt.Errorf("%w: %q is not a valid date", domain.ErrNormalization, raw)
}

// normalizeEmail lowercases and trims raw and checks it against the standard
// address pattern.
func normalizeEmail(raw string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if !emailPattern.MatchString(email) {
		return "", fmt.Errorf("%w: %q is not a valid email address", domain.ErrValidation, raw)
	}
	return email, nil
}

// normalizeTime validates raw against the 24-hour HH:MM pattern and
// zero-pads the hour. Minutes must already be two digits.
func normalizeTime(raw string) (string, error) {
	m := timePattern.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return "", fmt.Errorf("%w: %q is not a valid HH:MM time", domain.ErrNormalization, raw)
	}
	hour := m[1]
	if len(hour) == 1 {
		hour = "0" + hour
	}
	return hour + ":" + m[2], nil
}
