// SPDX-License-Identifier: Apache-2.0

// Package pipeline orchestrates the extraction phases over a full set of
// OCR lines and assembles the resulting contact record.
//
// The pipeline is strictly greedy and non-backtracking: phases run in a
// fixed order, each may claim lines, and a claimed line is excluded from
// every later phase. Earlier phases never reconsider a decision.
package pipeline

import (
	"fmt"
	"sort"
	"unicode/utf8"

	"github.com/google/uuid"

	"cardscan/internal/classifier"
	"cardscan/internal/complexline"
	"cardscan/internal/contact"
	"cardscan/internal/imagemeta"
	"cardscan/internal/lexicon"
	"cardscan/internal/matchers/email"
	"cardscan/internal/matchers/name"
	"cardscan/internal/matchers/phone"
	"cardscan/internal/normalizer"
	"cardscan/internal/observability"
	"cardscan/internal/ocr"
)

// Selection weights for the fallback name phase and the address phase.
const (
	surnameBonus      = 20
	confidenceWeight  = 10
	addressHitWeight  = 10
	addressConfWeight = 10
	minAddressRunes   = 8
)

// Result is the outcome of one extraction run. Beyond the contact it keeps
// the per-field source lines and the leftover lines, which edit screens
// show for manual correction.
type Result struct {
	ScanID    string            `json:"scan_id" yaml:"scan_id"`
	Contact   contact.Contact   `json:"contact" yaml:"contact"`
	Sources   map[string]string `json:"sources,omitempty" yaml:"sources,omitempty"`
	Unclaimed []string          `json:"unclaimed,omitempty" yaml:"unclaimed,omitempty"`
	LineCount int               `json:"line_count" yaml:"line_count"`

	// Capture carries the card photo's EXIF summary when the caller
	// supplied an image; the pipeline itself never sets it.
	Capture *imagemeta.CaptureInfo `json:"capture,omitempty" yaml:"capture,omitempty"`
}

// Pipeline runs the phase sequence. It holds only read-only collaborators,
// so one Pipeline may serve concurrent extractions.
type Pipeline struct {
	profile    *lexicon.Profile
	phones     *phone.Matcher
	emails     *email.Matcher
	classifier *classifier.Classifier
	analyzer   *complexline.Analyzer
	finder     *name.Finder

	observer *observability.StandardObserver
}

// New creates a pipeline for the given locale profile.
func New(profile *lexicon.Profile) *Pipeline {
	return &Pipeline{
		profile:    profile,
		phones:     phone.NewMatcher(profile),
		emails:     email.NewMatcher(profile),
		classifier: classifier.New(profile),
		analyzer:   complexline.New(profile),
		finder:     name.NewFinder(profile),
	}
}

// SetObserver sets the observability component.
func (p *Pipeline) SetObserver(observer *observability.StandardObserver) {
	p.observer = observer
}

// line is one normalized input line in the working set.
type line struct {
	text       string
	confidence float64
}

// run is the mutable state threaded through the phases of one extraction.
type run struct {
	lines   []line
	claimed map[string]bool
	contact *contact.Contact
	sources map[string]string
}

// remaining returns the unclaimed lines in confidence order.
func (r *run) remaining() []line {
	var out []line
	for _, ln := range r.lines {
		if !r.claimed[ln.text] {
			out = append(out, ln)
		}
	}
	return out
}

func (r *run) claim(text string) {
	r.claimed[text] = true
}

func (r *run) setField(field string, value, source string) {
	switch field {
	case "name":
		r.contact.Name = value
	case "phone_number":
		r.contact.PhoneNumber = value
	case "company":
		r.contact.Company = value
	case "position":
		r.contact.Position = value
	case "email":
		r.contact.Email = value
	case "address":
		r.contact.Address = value
	}
	r.sources[field] = source
}

// Extract runs all phases over the OCR lines and returns the result. It
// never fails: zero input lines or all-noise input yield an empty contact.
func (p *Pipeline) Extract(lines []ocr.RecognizedLine) Result {
	var finishTiming func(bool, map[string]interface{})
	if p.observer != nil {
		finishTiming = p.observer.StartTiming("pipeline", "extract", "")
	}

	r := &run{
		lines:   p.prepare(lines),
		claimed: make(map[string]bool),
		contact: &contact.Contact{},
		sources: make(map[string]string),
	}

	phases := []struct {
		name string
		fn   func(*run)
	}{
		{"phone", p.phasePhone},
		{"email", p.phaseEmail},
		{"title_name", p.phaseTitleName},
		{"company", p.phaseCompany},
		{"address", p.phaseAddress},
		{"fallback_name", p.phaseFallbackName},
		{"fallback_title", p.phaseFallbackTitle},
	}
	for _, phase := range phases {
		var finishStep func(bool, string)
		if p.observer != nil && p.observer.DebugObserver != nil {
			finishStep = p.observer.DebugObserver.StartStep("pipeline", phase.name, "")
		}
		phase.fn(r)
		if finishStep != nil {
			finishStep(true, "")
		}
	}

	result := Result{
		ScanID:    uuid.NewString(),
		Contact:   *r.contact,
		Sources:   r.sources,
		LineCount: len(r.lines),
	}
	for _, ln := range r.remaining() {
		result.Unclaimed = append(result.Unclaimed, ln.text)
	}

	if finishTiming != nil {
		finishTiming(true, map[string]interface{}{
			"line_count": len(r.lines),
			"valid":      result.Contact.IsValid(),
		})
	}
	return result
}

// prepare normalizes the raw lines, drops blanks and sorts by descending
// confidence. The sort is stable so equal-confidence lines keep their OCR
// order; every later "first match wins" tie-break depends on that.
func (p *Pipeline) prepare(input []ocr.RecognizedLine) []line {
	lines := make([]line, 0, len(input))
	for _, rl := range input {
		text := normalizer.Correct(rl.Text)
		if text == "" {
			continue
		}
		lines = append(lines, line{text: text, confidence: rl.Confidence})
	}
	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i].confidence > lines[j].confidence
	})
	return lines
}

// phasePhone collects every phone candidate across all lines, claims the
// yielding lines and picks the number: any mobile-prefixed candidate beats
// all others regardless of position, then first wins.
func (p *Pipeline) phasePhone(r *run) {
	type found struct {
		number string
		source string
	}
	var candidates []found

	for _, ln := range r.lines {
		numbers := p.phones.ExtractAll(ln.text)
		if len(numbers) == 0 {
			continue
		}
		for _, n := range numbers {
			candidates = append(candidates, found{number: n, source: ln.text})
		}
		r.claim(ln.text)
		p.debugf("phone candidate(s) %v in %q", numbers, ln.text)
	}

	if len(candidates) == 0 {
		return
	}
	selected := candidates[0]
	for _, c := range candidates {
		if len(c.number) >= len(p.profile.MobilePrefix) &&
			c.number[:len(p.profile.MobilePrefix)] == p.profile.MobilePrefix {
			selected = c
			break
		}
	}
	r.setField("phone_number", selected.number, selected.source)
}

// phaseEmail claims every unclaimed line yielding an email; the first
// match becomes the contact's address.
func (p *Pipeline) phaseEmail(r *run) {
	for _, ln := range r.remaining() {
		addr, ok := p.emails.Extract(ln.text)
		if !ok {
			continue
		}
		r.claim(ln.text)
		if r.contact.Email == "" {
			r.setField("email", addr, ln.text)
		}
		p.debugf("email %q in %q", addr, ln.text)
	}
}

// phaseTitleName finds the first unclaimed line carrying a title keyword
// and runs the complex-line analyzer on it for both name and position.
func (p *Pipeline) phaseTitleName(r *run) {
	for _, ln := range r.remaining() {
		if !lexicon.ContainsAny(ln.text, p.profile.PositionKeywords) {
			continue
		}
		if n, ok := p.analyzer.ExtractName(ln.text); ok && r.contact.Name == "" {
			r.setField("name", n, ln.text)
		}
		if title, ok := p.analyzer.ExtractPosition(ln.text); ok && r.contact.Position == "" {
			r.setField("position", title, ln.text)
		}
		r.claim(ln.text)
		p.debugf("title line %q -> name=%q position=%q", ln.text, r.contact.Name, r.contact.Position)
		return
	}
}

// phaseCompany picks the best company line by classifier score weighted
// with OCR confidence.
func (p *Pipeline) phaseCompany(r *run) {
	type scored struct {
		line  line
		score float64
	}
	var candidates []scored
	for _, ln := range r.remaining() {
		if !lexicon.ContainsAny(ln.text, p.profile.CompanyKeywords) {
			continue
		}
		_, score := p.classifier.Classify(ln.text)
		candidates = append(candidates, scored{line: ln, score: float64(score) * ln.confidence})
	}
	if len(candidates) == 0 {
		return
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})
	best := candidates[0].line
	r.setField("company", best.text, best.text)
	r.claim(best.text)
	p.debugf("company %q", best.text)
}

// phaseAddress picks the best address line among sufficiently long lines
// with at least one address keyword.
func (p *Pipeline) phaseAddress(r *run) {
	type scored struct {
		line  line
		score float64
	}
	var candidates []scored
	for _, ln := range r.remaining() {
		hits := lexicon.CountHits(ln.text, p.profile.AddressKeywords)
		if hits == 0 || utf8.RuneCountInString(ln.text) <= minAddressRunes {
			continue
		}
		score := float64(hits*addressHitWeight) +
			float64(utf8.RuneCountInString(ln.text)) +
			ln.confidence*addressConfWeight
		candidates = append(candidates, scored{line: ln, score: score})
	}
	if len(candidates) == 0 {
		return
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})
	best := candidates[0].line
	r.setField("address", best.text, best.text)
	r.claim(best.text)
	p.debugf("address %q", best.text)
}

// phaseFallbackName runs only when no name was found. Every unclaimed line
// is scored by OCR confidence plus a bonus for surname-anchored candidates;
// strict comparison keeps the earliest line on ties.
func (p *Pipeline) phaseFallbackName(r *run) {
	if r.contact.Name != "" {
		return
	}

	bestName, bestSource, bestScore, found := "", "", -1.0, false
	for _, ln := range r.remaining() {
		candidate, anchored := "", false
		if n, ok := p.finder.Find(ln.text); ok {
			candidate, anchored = n, true
		} else if n, ok := p.finder.FindUnanchored(ln.text); ok {
			candidate = n
		} else {
			continue
		}

		score := ln.confidence * confidenceWeight
		if anchored {
			score += surnameBonus
		}
		if score > bestScore {
			bestName, bestSource, bestScore, found = candidate, ln.text, score, true
		}
	}
	if found {
		r.setField("name", bestName, bestSource)
		r.claim(bestSource)
		p.debugf("fallback name %q from %q", bestName, bestSource)
	}
}

// phaseFallbackTitle runs only when no position was found: the first
// unclaimed line containing a title keyword supplies it. No claim is
// needed — this is the last phase.
func (p *Pipeline) phaseFallbackTitle(r *run) {
	if r.contact.Position != "" {
		return
	}
	for _, ln := range r.remaining() {
		title := lexicon.LongestContained(ln.text, p.profile.PositionKeywords)
		if title == "" {
			continue
		}
		r.setField("position", title, ln.text)
		p.debugf("fallback position %q from %q", title, ln.text)
		return
	}
}

func (p *Pipeline) debugf(format string, args ...interface{}) {
	if p.observer != nil && p.observer.DebugObserver != nil {
		p.observer.DebugObserver.LogDetail("pipeline", fmt.Sprintf(format, args...))
	}
}
