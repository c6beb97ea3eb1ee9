// SPDX-License-Identifier: Apache-2.0

// Package complexline splits a line that carries a job title together with
// a person's name (and often a department) and decides which fragment is
// the name. Cards print shapes like "생산관리팀 / 주임 홍길동" on one
// line; per-field regexes alone cannot tell the tokens apart.
package complexline

import (
	"regexp"
	"strings"

	"cardscan/internal/lexicon"
	"cardscan/internal/matchers/name"
)

// Candidate weights. Title-anchored splits are the most trustworthy source
// of a name; a bare part is weaker, and the keyword-stripped residue of the
// whole line is the last resort.
const (
	weightTitleAnchored = 3
	weightPartWithTitle = 2
	weightBarePart      = 1
	weightResidue       = 0
)

var (
	partSeparator      = regexp.MustCompile(`[/|]`)
	residuePunctuation = regexp.MustCompile(`[/|:,.]`)
)

// Analyzer extracts the name and job title from a complex line.
type Analyzer struct {
	profile *lexicon.Profile
	finder  *name.Finder
}

// New creates an analyzer bound to a locale profile.
func New(profile *lexicon.Profile) *Analyzer {
	return &Analyzer{
		profile: profile,
		finder:  name.NewFinder(profile),
	}
}

type candidate struct {
	name   string
	weight int
}

// ExtractName returns the most plausible person name on the line.
//
// Candidates are gathered in decreasing trust order: fragments on either
// side of a title keyword, whole parts free of department keywords (rated
// higher when a title co-occurs in the part), and finally the residue of
// the line after removing every known department and title keyword. The
// highest weight wins; on ties the earlier-generated candidate is kept, so
// title-anchored fragments beat everything downstream.
func (a *Analyzer) ExtractName(line string) (string, bool) {
	var candidates []candidate

	for _, part := range partSeparator.Split(line, -1) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		for _, kw := range a.profile.PositionKeywords {
			idx := strings.Index(part, kw)
			if idx < 0 {
				continue
			}
			for _, fragment := range []string{part[idx+len(kw):], part[:idx]} {
				if n, ok := a.finder.Find(fragment); ok {
					candidates = append(candidates, candidate{n, weightTitleAnchored})
				}
			}
		}

		if !lexicon.ContainsAny(part, a.profile.DepartmentKeywords) {
			if n, ok := a.finder.Find(part); ok {
				w := weightBarePart
				if lexicon.ContainsAny(part, a.profile.PositionKeywords) {
					w = weightPartWithTitle
				}
				candidates = append(candidates, candidate{n, w})
			}
		}
	}

	if n, ok := a.finder.Find(a.residue(line)); ok {
		candidates = append(candidates, candidate{n, weightResidue})
	}

	best, bestWeight, found := "", -1, false
	for _, c := range candidates {
		if c.weight > bestWeight {
			best, bestWeight, found = c.name, c.weight, true
		}
	}
	return best, found
}

// ExtractPosition returns the job title on the line. Longest-match keeps
// compound titles intact: "부회장" must not be reported as "회장".
func (a *Analyzer) ExtractPosition(line string) (string, bool) {
	title := lexicon.LongestContained(line, a.profile.PositionKeywords)
	return title, title != ""
}

// residue strips every department and title keyword plus separator
// punctuation from the line, leaving whatever tokens remain as a last
// chance for the name finder.
func (a *Analyzer) residue(line string) string {
	out := line
	for _, kw := range a.profile.DepartmentKeywords {
		out = strings.ReplaceAll(out, kw, " ")
	}
	for _, kw := range a.profile.PositionKeywords {
		out = strings.ReplaceAll(out, kw, " ")
	}
	out = residuePunctuation.ReplaceAllString(out, " ")
	return strings.Join(strings.Fields(out), " ")
}
