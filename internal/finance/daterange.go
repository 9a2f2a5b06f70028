package finance

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateRange is a half-open interval [From, To).
type DateRange struct {
	From time.Time
	To   time.Time
}

func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.From) && t.Before(r.To)
}

var yearPattern = regexp.MustCompile(`20\d\d`)

// ExtractDateRange finds a month mentioned in message and returns that whole month.
// Month names are checked January through December as plain case-insensitive substrings,
// so the first name in calendar order wins. The year is the first 20xx in the message,
// else now's year. ok is false when no month name appears.
func ExtractDateRange(message string, now time.Time) (DateRange, bool) {
	lower := strings.ToLower(message)

	var month time.Month
	for m := time.January; m <= time.December; m++ {
		if strings.Contains(lower, strings.ToLower(m.String())) {
			month = m
			break
		}
	}
	if month == 0 {
		return DateRange{}, false
	}

	year := now.Year()
	if y := yearPattern.FindString(message); y != "" {
		year, _ = strconv.Atoi(y)
	}

	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return DateRange{From: from, To: from.AddDate(0, 1, 0)}, true
}
