// Package phone finds Russian mobile and landline numbers in free-form text
// and normalizes them to the +7XXXXXXXXXX form.
package phone

import (
	"iter"
	"regexp"
	"slices"
	"strings"
)

// separator is any run of whitespace (including non-breaking and other
// Unicode spaces) or hyphen and dash characters between digit groups.
const separator = `[\s\p{Zs}\-\x{2010}\x{2011}\x{2012}\x{2013}]*`

// candidatePattern matches a ten digit national number with an optional
// +7, 7 or 8 trunk prefix, allowing separators and a parenthesized area
// code between groups.
var candidatePattern = regexp.MustCompile(
	`(?:\+?[78]` + separator + `)?\(?\d{3}\)?` + separator + `\d{3}` + separator + `\d{2}` + separator + `\d{2}`,
)

var canonicalPattern = regexp.MustCompile(`^\+7\d{10}$`)

// Extract yields every distinct phone in text, normalized, in the order in
// which each was first seen. The sequence is lazy and may be ranged over
// any number of times. Digit runs that cannot be read as a phone are skipped.
func Extract(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		seen := make(map[string]struct{})
		for _, loc := range candidatePattern.FindAllStringIndex(text, -1) {
			start, end := loc[0], loc[1]
			if !boundaryBefore(text, start) || !boundaryAfter(text, end) {
				continue
			}

			normalized, ok := Normalize(text[start:end])
			if !ok {
				continue
			}
			if _, dup := seen[normalized]; dup {
				continue
			}
			seen[normalized] = struct{}{}

			if !yield(normalized) {
				return
			}
		}
	}
}

// ExtractAll collects Extract into a slice.
func ExtractAll(text string) []string {
	return slices.Collect(Extract(text))
}

// Normalize turns a single phone string into +7XXXXXXXXXX. Eleven digits
// starting with 7 or 8 and bare ten digit numbers are accepted.
func Normalize(raw string) (string, bool) {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()

	switch {
	case len(digits) == 11 && (digits[0] == '7' || digits[0] == '8'):
		digits = digits[1:]
	case len(digits) == 10:
	default:
		return "", false
	}

	normalized := "+7" + digits
	return normalized, IsCanonical(normalized)
}

// IsCanonical reports whether s is already in +7XXXXXXXXXX form.
func IsCanonical(s string) bool {
	return canonicalPattern.MatchString(s)
}

// Mask hides the last four digits of a phone.
func Mask(phone string) string {
	if len(phone) <= 4 {
		return strings.Repeat("*", len(phone))
	}
	return phone[:len(phone)-4] + "****"
}

// LastFour returns the last four characters of a phone, used in ledger descriptions.
func LastFour(phone string) string {
	if len(phone) <= 4 {
		return phone
	}
	return phone[len(phone)-4:]
}

func boundaryBefore(text string, start int) bool {
	if start == 0 {
		return true
	}
	c := text[start-1]
	return !isDigit(c) && c != '+'
}

func boundaryAfter(text string, end int) bool {
	return end >= len(text) || !isDigit(text[end])
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
