// Package title turns untrusted model output into a filesystem-safe
// filename stem.
package title

import (
	"errors"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/parselmouth/parselmouth/internal/config"
)

// MaxStemLength bounds formatted stems (date prefix included) so the final
// filename stays well under common filesystem limits.
const MaxStemLength = 200

// ErrEmptyTitle is returned when a suggestion sanitizes down to nothing.
var ErrEmptyTitle = errors.New("suggested title is empty after sanitization")

// Options selects the formatting rules. Zero separator or date format are
// not valid here; config.Validate guarantees both upstream.
type Options struct {
	Separator   string
	IncludeDate bool
	DateFormat  string
	Casing      config.Casing
}

// Format converts a raw suggestion and an optional extracted date (zero when
// none is known) into a sanitized filename stem.
//
// A date the title already carries in the configured format is adopted
// rather than repeated, so Format is idempotent over its own output.
func Format(raw string, date time.Time, opts Options) (string, error) {
	s := strings.TrimSpace(raw)

	// Adopt an existing date prefix only when one will be re-emitted;
	// otherwise the digits stay ordinary tokens.
	if opts.IncludeDate {
		if rest, d, ok := stripDatePrefix(s, opts.DateFormat); ok {
			s = rest
			if date.IsZero() {
				date = d
			}
		}
	}

	tokens := splitWords(s)
	if opts.Casing != config.CasingPreserve {
		for i := range tokens {
			tokens[i] = strings.ToLower(tokens[i])
		}
	}

	var prefix string
	if opts.IncludeDate && !date.IsZero() {
		prefix = RenderDate(date, opts.DateFormat)
	}

	if len(tokens) == 0 {
		// A bare date is an acceptable stem when a prefix was wanted;
		// otherwise there is nothing to name the file after.
		if prefix != "" {
			return prefix, nil
		}
		return "", ErrEmptyTitle
	}

	return joinBounded(prefix, tokens, opts.Separator), nil
}

// splitWords tokenizes on every rune that cannot appear in a safe filename
// stem; this is also what strips filesystem-illegal and control characters.
func splitWords(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// joinBounded joins prefix and tokens with sep, dropping whole trailing
// tokens to stay within MaxStemLength.
func joinBounded(prefix string, tokens []string, sep string) string {
	var sb strings.Builder
	sb.WriteString(prefix)

	wrote := false
	for _, tok := range tokens {
		need := len(tok)
		if sb.Len() > 0 {
			need += len(sep)
		}
		if sb.Len()+need > MaxStemLength {
			break
		}
		if sb.Len() > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(tok)
		wrote = true
	}

	if !wrote {
		// The very first token overflows the whole budget: hard-cut it
		// rather than fail, keeping the length invariant.
		if sb.Len() > 0 {
			sb.WriteString(sep)
		}
		cut := tokens[0][:MaxStemLength-sb.Len()]
		// Never split a multibyte rune at the cut point.
		for !utf8.ValidString(cut) {
			cut = cut[:len(cut)-1]
		}
		sb.WriteString(cut)
	}
	return sb.String()
}
