package title

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// dateTokenRe matches the tokens understood in a date-format string.
var dateTokenRe = regexp.MustCompile(`YYYY|MM|DD`)

// isoDateRe finds the first ISO-style date in free text.
var isoDateRe = regexp.MustCompile(`\b(\d{4})-(\d{2})-(\d{2})\b`)

// trailingISODateRe pops a model-appended date (optionally preceded by
// separator punctuation) off the end of a suggestion.
var trailingISODateRe = regexp.MustCompile(`[\s_\-.]*(\d{4})-(\d{2})-(\d{2})[\s_\-.]*$`)

// RenderDate substitutes the YYYY, MM and DD tokens of format with the
// respective fields of t.
func RenderDate(t time.Time, format string) string {
	return strings.NewReplacer(
		"YYYY", fmt.Sprintf("%04d", t.Year()),
		"MM", fmt.Sprintf("%02d", int(t.Month())),
		"DD", fmt.Sprintf("%02d", t.Day()),
	).Replace(format)
}

// FindDate returns the first ISO date found in s, typically used as a
// fallback scan over document content when the model reported none.
func FindDate(s string) (time.Time, bool) {
	m := isoDateRe.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, false
	}
	return buildDate(m[1], m[2], m[3])
}

// popTrailingDate strips a trailing ISO date from a suggestion and returns
// the remaining text plus the parsed date.
func popTrailingDate(s string) (string, time.Time, bool) {
	loc := trailingISODateRe.FindStringSubmatchIndex(s)
	if loc == nil {
		return s, time.Time{}, false
	}
	d, ok := buildDate(s[loc[2]:loc[3]], s[loc[4]:loc[5]], s[loc[6]:loc[7]])
	if !ok {
		return s, time.Time{}, false
	}
	return s[:loc[0]], d, true
}

// stripDatePrefix removes a leading date written in the given format, as
// produced by an earlier formatting pass. Reformatting an already formatted
// title therefore adopts the existing prefix instead of stacking a second one.
func stripDatePrefix(s, format string) (string, time.Time, bool) {
	re, order, err := datePrefixPattern(format)
	if err != nil {
		return s, time.Time{}, false
	}
	m := re.FindStringSubmatch(s)
	if m == nil {
		return s, time.Time{}, false
	}
	rest := s[len(m[0]):]
	// The prefix must end at a word boundary.
	if rest != "" {
		r := []rune(rest)[0]
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return s, time.Time{}, false
		}
	}

	var year, month, day string
	for i, tok := range order {
		switch tok {
		case "YYYY":
			year = m[i+1]
		case "MM":
			month = m[i+1]
		case "DD":
			day = m[i+1]
		}
	}
	d, ok := buildDate(year, month, day)
	if !ok {
		return s, time.Time{}, false
	}
	return rest, d, true
}

// datePrefixPattern compiles a date-format string into an anchored regexp,
// returning the token order of its capture groups.
func datePrefixPattern(format string) (*regexp.Regexp, []string, error) {
	var sb strings.Builder
	sb.WriteString("^")
	var order []string
	last := 0
	for _, loc := range dateTokenRe.FindAllStringIndex(format, -1) {
		sb.WriteString(regexp.QuoteMeta(format[last:loc[0]]))
		tok := format[loc[0]:loc[1]]
		order = append(order, tok)
		if tok == "YYYY" {
			sb.WriteString(`(\d{4})`)
		} else {
			sb.WriteString(`(\d{2})`)
		}
		last = loc[1]
	}
	sb.WriteString(regexp.QuoteMeta(format[last:]))
	re, err := regexp.Compile(sb.String())
	if err != nil {
		return nil, nil, err
	}
	return re, order, nil
}

// buildDate validates the numeric fields and returns the date. A missing
// month or day defaults to January 1st.
func buildDate(year, month, day string) (time.Time, bool) {
	y, err := strconv.Atoi(year)
	if err != nil || y == 0 {
		return time.Time{}, false
	}
	mo, d := 1, 1
	if month != "" {
		if mo, err = strconv.Atoi(month); err != nil {
			return time.Time{}, false
		}
	}
	if day != "" {
		if d, err = strconv.Atoi(day); err != nil {
			return time.Time{}, false
		}
	}
	t := time.Date(y, time.Month(mo), d, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes out-of-range fields; reject anything that moved.
	if t.Year() != y || int(t.Month()) != mo || t.Day() != d {
		return time.Time{}, false
	}
	return t, true
}
