// SPDX-License-Identifier: Apache-2.0

// Package email extracts email addresses from OCR lines.
package email

import (
	"cardscan/internal/lexicon"
)

// Matcher finds the first plausible email address in a single OCR line.
type Matcher struct {
	profile *lexicon.Profile
}

// NewMatcher creates an email matcher bound to a locale profile.
func NewMatcher(profile *lexicon.Profile) *Matcher {
	return &Matcher{profile: profile}
}

// Extract returns the first valid email address in the line.
//
// A leading label ("E-mail:", "이메일") is stripped before matching; the
// original line is retried when the stripped one yields nothing. Candidates
// that fully match the bare-domain/URL shape are rejected — after OCR
// corrections a plain website line can end up looking address-like, and a
// URL must never be reported as an email.
func (m *Matcher) Extract(line string) (string, bool) {
	stripped := m.profile.EmailLabelPattern.ReplaceAllString(line, "")

	if addr, ok := m.firstValid(stripped); ok {
		return addr, true
	}
	if stripped != line {
		return m.firstValid(line)
	}
	return "", false
}

func (m *Matcher) firstValid(text string) (string, bool) {
	for _, candidate := range m.profile.EmailPattern.FindAllString(text, -1) {
		if m.profile.URLPattern.MatchString(candidate) {
			continue
		}
		return candidate, true
	}
	return "", false
}
