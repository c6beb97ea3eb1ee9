// SPDX-License-Identifier: Apache-2.0

// Package name locates person-name tokens in arbitrary OCR text using the
// locale's name-shape patterns anchored on known surnames.
package name

import (
	"strings"
	"unicode/utf8"

	"cardscan/internal/lexicon"
)

const (
	minNameRunes = 2
	maxNameRunes = 4
)

// Finder searches text for native-script name candidates. Matching is a
// fixed priority cascade; the first shape that produces a surname-anchored
// candidate wins.
type Finder struct {
	profile *lexicon.Profile
}

// NewFinder creates a name finder bound to a locale profile.
func NewFinder(profile *lexicon.Profile) *Finder {
	return &Finder{profile: profile}
}

// Find returns the best name candidate in the text.
//
// Priority order:
//  1. a spaced shape ("홍 길 동") — OCR often splits a printed name with
//     spurious spaces; the candidate is the shape with spaces removed;
//  2. a contiguous native-script run of name length that is not a job
//     title and does not overlap a department keyword;
//  3. the whole input with whitespace removed, when it matches the name
//     shape outright.
//
// Every path requires the surname anchor.
func (f *Finder) Find(text string) (string, bool) {
	for _, spaced := range f.profile.SpacedNamePattern.FindAllString(text, -1) {
		joined := strings.ReplaceAll(spaced, " ", "")
		if f.nameShaped(joined) && f.profile.HasSurname(joined) {
			return joined, true
		}
	}

	for _, run := range f.profile.NameRunPattern.FindAllString(text, -1) {
		n := utf8.RuneCountInString(run)
		if n < minNameRunes || n > maxNameRunes {
			continue
		}
		if f.profile.OverlapsDepartment(run) || f.profile.IsPositionKeyword(run) {
			continue
		}
		if f.profile.HasSurname(run) {
			return run, true
		}
	}

	whole := collapseSpaces(text)
	if f.nameShaped(whole) &&
		!f.profile.OverlapsDepartment(whole) && !f.profile.IsPositionKeyword(whole) &&
		f.profile.HasSurname(whole) {
		return whole, true
	}

	return "", false
}

// FindUnanchored returns a whole-line name-shape candidate without the
// surname requirement. The fallback name phase uses it as a lower-scored
// alternative when no anchored candidate exists anywhere.
func (f *Finder) FindUnanchored(text string) (string, bool) {
	whole := collapseSpaces(text)
	if f.nameShaped(whole) && !f.profile.IsPositionKeyword(whole) &&
		!lexicon.ContainsAny(whole, f.profile.DepartmentKeywords) {
		return whole, true
	}
	return "", false
}

func (f *Finder) nameShaped(token string) bool {
	return f.profile.NamePattern.MatchString(token)
}

func collapseSpaces(text string) string {
	return strings.Join(strings.Fields(text), "")
}
