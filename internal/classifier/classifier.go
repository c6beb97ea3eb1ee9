// SPDX-License-Identifier: Apache-2.0

// Package classifier assigns a single OCR line to its most likely contact
// field category with an integer confidence score.
package classifier

import (
	"unicode/utf8"

	"cardscan/internal/lexicon"
)

// Category is the field a line most likely belongs to.
type Category string

const (
	CategoryName     Category = "name"
	CategoryCompany  Category = "company"
	CategoryAddress  Category = "address"
	CategoryPosition Category = "position"
	CategoryUnknown  Category = "unknown"
)

// Scoring weights. These are relative trust levels, not probabilities; they
// were calibrated against scanned Korean cards and are kept behind the
// score* functions so recalibration never touches control flow.
const (
	nameAnchoredWeight     = 40
	nameLatinWeight        = 35
	companyWeight          = 35
	companyDescribedWeight = 10
	addressKeywordWeight   = 15
	addressLongLineBonus   = 10
	addressLongLineRunes   = 15
	positionWeight         = 30
)

// Classifier scores lines against the lexicons of one locale profile. It
// holds no mutable state; classification of the same line always returns
// the same result.
type Classifier struct {
	profile *lexicon.Profile
}

// New creates a classifier bound to a locale profile.
func New(profile *lexicon.Profile) *Classifier {
	return &Classifier{profile: profile}
}

// Classify returns the best category for the line and its score. Ties go to
// the earlier category in the order name, company, address, position — the
// scan uses strict comparison, which encodes that priority.
func (c *Classifier) Classify(line string) (Category, int) {
	scores := []struct {
		category Category
		score    int
	}{
		{CategoryName, c.scoreName(line)},
		{CategoryCompany, c.scoreCompany(line)},
		{CategoryAddress, c.scoreAddress(line)},
		{CategoryPosition, c.scorePosition(line)},
	}

	best, bestScore := CategoryUnknown, 0
	for _, s := range scores {
		if s.score > bestScore {
			best, bestScore = s.category, s.score
		}
	}
	return best, bestScore
}

// scoreName: a surname-anchored native name shape outranks everything else
// on the card; a capitalized Latin word sequence is nearly as strong.
func (c *Classifier) scoreName(line string) int {
	if c.profile.NamePattern.MatchString(line) && c.profile.HasSurname(line) {
		return nameAnchoredWeight
	}
	if c.profile.LatinNamePattern.MatchString(line) {
		return nameLatinWeight
	}
	return 0
}

// scoreCompany: a corporate suffix is a strong signal. Lines that also
// carry listing/certification boilerplate ("코스닥상장법인") are demoted
// rather than zeroed — they are still plausible company lines.
func (c *Classifier) scoreCompany(line string) int {
	if !lexicon.ContainsAny(line, c.profile.CompanyKeywords) {
		return 0
	}
	if lexicon.ContainsAny(line, c.profile.CompanyDescriptionKeywords) {
		return companyDescribedWeight
	}
	return companyWeight
}

// scoreAddress grows with distinct keyword hits; long lines get a flat
// bonus since full addresses are rarely short.
func (c *Classifier) scoreAddress(line string) int {
	score := lexicon.CountHits(line, c.profile.AddressKeywords) * addressKeywordWeight
	if utf8.RuneCountInString(line) > addressLongLineRunes {
		score += addressLongLineBonus
	}
	return score
}

// scorePosition: title keywords are a low-ambiguity signal, flat weight.
func (c *Classifier) scorePosition(line string) int {
	if lexicon.ContainsAny(line, c.profile.PositionKeywords) {
		return positionWeight
	}
	return 0
}
