// SPDX-License-Identifier: Apache-2.0

// Package phone extracts and normalizes phone numbers from OCR lines.
package phone

import (
	"strings"

	"cardscan/internal/lexicon"
)

// minPhoneDigits is the shortest digit count a normalized number may have.
// Anything shorter is treated as OCR noise, not a phone number.
const minPhoneDigits = 9

// Matcher finds phone numbers in single OCR lines and normalizes them to
// the domestic hyphenated form.
type Matcher struct {
	profile *lexicon.Profile
}

// NewMatcher creates a phone matcher bound to a locale profile.
func NewMatcher(profile *lexicon.Profile) *Matcher {
	return &Matcher{profile: profile}
}

// Extract returns the first phone number found in the line, normalized.
func (m *Matcher) Extract(line string) (string, bool) {
	all := m.ExtractAll(line)
	if len(all) == 0 {
		return "", false
	}
	return all[0], true
}

// ExtractAll returns every normalized phone number found in the line.
//
// The leading label ("Tel:", "휴대폰", a bare "M.") is stripped first. If
// the stripped line yields nothing the original line is retried, because
// the label pattern can occasionally swallow digits adjacent to the label.
func (m *Matcher) ExtractAll(line string) []string {
	stripped := m.profile.PhoneLabelPattern.ReplaceAllString(line, "")

	candidates := m.findCandidates(stripped)
	if len(candidates) == 0 && stripped != line {
		candidates = m.findCandidates(line)
	}
	return candidates
}

// findCandidates runs the international pattern first — it is the more
// specific shape — and falls back to the general pattern.
func (m *Matcher) findCandidates(text string) []string {
	raw := m.profile.IntlPhonePattern.FindAllString(text, -1)
	if len(raw) == 0 {
		raw = m.profile.PhonePattern.FindAllString(text, -1)
	}

	var out []string
	for _, match := range raw {
		normalized := m.Normalize(match)
		if digitCount(normalized) >= minPhoneDigits {
			out = append(out, normalized)
		}
	}
	return out
}

// Normalize reduces a raw phone match to digits, rewrites the international
// prefix to the domestic trunk "0", and inserts hyphens by the numbering
// plan. Pure: identical input always yields identical output, and the
// function is idempotent on its own results.
func (m *Matcher) Normalize(raw string) string {
	n := keepDigitsAndPlus(raw)
	cc := m.profile.CountryCode

	switch {
	case strings.HasPrefix(n, "+"+cc):
		n = "0" + n[len(cc)+1:]
	case strings.HasPrefix(n, cc) && len(n) > 10:
		// Bare country code without "+": only plausible when the number is
		// abnormally long for a domestic line.
		n = "0" + n[len(cc):]
	}

	// Domestic numbers always carry the trunk digit.
	if !strings.HasPrefix(n, "0") && !strings.Contains(n, "+") && len(n) >= minPhoneDigits {
		n = "0" + n
	}

	return hyphenate(n)
}

// hyphenate groups a digit string by prefix and length. Unrecognized
// shapes are returned ungrouped.
func hyphenate(d string) string {
	switch {
	case strings.HasPrefix(d, "01") && len(d) == 11:
		return group(d, 3, 4, 4)
	case strings.HasPrefix(d, "01") && len(d) == 10:
		return group(d, 3, 3, 4)
	case strings.HasPrefix(d, "02") && len(d) == 10:
		return group(d, 2, 4, 4)
	case strings.HasPrefix(d, "02") && len(d) == 9:
		return group(d, 2, 3, 4)
	case strings.HasPrefix(d, "0") && len(d) == 11:
		return group(d, 3, 4, 4)
	case strings.HasPrefix(d, "0") && len(d) == 10:
		return group(d, 3, 3, 4)
	}
	return d
}

func group(d string, sizes ...int) string {
	var parts []string
	for _, size := range sizes {
		parts = append(parts, d[:size])
		d = d[size:]
	}
	return strings.Join(parts, "-")
}

func keepDigitsAndPlus(s string) string {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '+' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func digitCount(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}
