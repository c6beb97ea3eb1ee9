// SPDX-License-Identifier: Apache-2.0

// Package lexicon holds the locale-specific keyword lists and compiled
// patterns every matcher works from. A Profile is built once at startup and
// never mutated afterwards, so concurrent extraction runs can share it
// without locking.
package lexicon

import (
	"regexp"
	"strings"
)

// Profile bundles the keyword lexicons and compiled patterns for one locale.
// All slices and patterns are read-only after construction.
type Profile struct {
	// Locale is a short identifier such as "ko".
	Locale string

	// Keyword lexicons. Membership tests are substring containment.
	CompanyKeywords            []string
	PositionKeywords           []string
	AddressKeywords            []string
	DepartmentKeywords         []string
	CompanyDescriptionKeywords []string
	Surnames                   []string

	// NamePattern matches a full native-script name token (anchored).
	NamePattern *regexp.Regexp
	// NameRunPattern finds native-script name-length runs anywhere in text.
	NameRunPattern *regexp.Regexp
	// SpacedNamePattern finds single native characters separated by single
	// spaces, the shape OCR produces when it splits a printed name.
	SpacedNamePattern *regexp.Regexp
	// LatinNamePattern matches capitalized Latin word sequences (anchored).
	LatinNamePattern *regexp.Regexp

	// PhonePattern is the general phone shape, tolerant of parentheses and
	// mixed separators. IntlPhonePattern additionally requires the country
	// calling code and is always tried first.
	PhonePattern     *regexp.Regexp
	IntlPhonePattern *regexp.Regexp
	// PhoneLabelPattern strips a leading label such as "Tel:" or "휴대폰".
	PhoneLabelPattern *regexp.Regexp

	// EmailPattern matches local@domain.tld. URLPattern matches bare
	// domains and URLs and guards against treating them as emails.
	EmailPattern      *regexp.Regexp
	URLPattern        *regexp.Regexp
	EmailLabelPattern *regexp.Regexp

	// MobilePrefix is the normalized prefix marking a mobile number
	// ("010" for the Korean plan). Phone selection prefers it.
	MobilePrefix string

	// CountryCode is the international calling code without "+" ("82").
	CountryCode string
}

// ContainsAny reports whether any keyword of the list occurs in line.
func ContainsAny(line string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(line, kw) {
			return true
		}
	}
	return false
}

// CountHits counts how many distinct keywords of the list occur in line.
func CountHits(line string, keywords []string) int {
	n := 0
	for _, kw := range keywords {
		if strings.Contains(line, kw) {
			n++
		}
	}
	return n
}

// FirstContained returns the first keyword of the list contained in line,
// or "" when none matches.
func FirstContained(line string, keywords []string) string {
	for _, kw := range keywords {
		if strings.Contains(line, kw) {
			return kw
		}
	}
	return ""
}

// LongestContained returns the longest keyword of the list contained in
// line. Longest-match keeps compound titles intact: "부회장" must not be
// reported as its substring "회장".
func LongestContained(line string, keywords []string) string {
	best := ""
	for _, kw := range keywords {
		if len(kw) > len(best) && strings.Contains(line, kw) {
			best = kw
		}
	}
	return best
}

// HasSurname reports whether the candidate starts with a known surname.
func (p *Profile) HasSurname(candidate string) bool {
	for _, s := range p.Surnames {
		if strings.HasPrefix(candidate, s) {
			return true
		}
	}
	return false
}

// IsPositionKeyword reports whether the token is exactly a known job title.
func (p *Profile) IsPositionKeyword(token string) bool {
	for _, kw := range p.PositionKeywords {
		if token == kw {
			return true
		}
	}
	return false
}

// OverlapsDepartment reports whether the candidate is a substring of a
// department keyword or contains one. Department fragments look like names
// to the shape patterns ("기획팀" contains the 2-4 char run "기획팀") and
// must be excluded from name candidates.
func (p *Profile) OverlapsDepartment(candidate string) bool {
	for _, kw := range p.DepartmentKeywords {
		if strings.Contains(kw, candidate) || strings.Contains(candidate, kw) {
			return true
		}
	}
	return false
}
