// SPDX-License-Identifier: Apache-2.0

// Package normalizer compensates for common OCR character confusions before
// any pattern matching runs. A single misread character is enough to break a
// regex match, so every line passes through Correct exactly once at pipeline
// entry.
package normalizer

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	digitRunPattern = regexp.MustCompile(`\d{2,}`)
	atSpacePattern  = regexp.MustCompile(`\s*@\s*`)
	// Only dots followed by a letter: stray spaces around a decimal point in
	// numeric text must survive untouched.
	dotSpacePattern   = regexp.MustCompile(`\s*\.\s*([A-Za-z])`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// digitConfusions maps letters OCR engines routinely misread for digits.
var digitConfusions = map[rune]rune{
	'O': '0', 'o': '0',
	'l': '1', 'I': '1',
}

// Correct repairs OCR misreads in a single line. It is pure and idempotent:
// Correct(Correct(x)) == Correct(x).
func Correct(text string) string {
	corrected := text

	emailContext := strings.Contains(corrected, "@") ||
		strings.Contains(strings.ToLower(corrected), "mail")

	if emailContext {
		// OCR frequently reads the dot of an address as a comma.
		corrected = strings.ReplaceAll(corrected, ",", ".")
		corrected = atSpacePattern.ReplaceAllString(corrected, "@")
		corrected = dotSpacePattern.ReplaceAllString(corrected, ".$1")
	} else if digitRunPattern.MatchString(corrected) {
		// Letters are likely legitimate inside email-like lines, so the
		// digit substitutions only run outside email context.
		corrected = fixDigitConfusions(corrected)
	}

	return strings.TrimSpace(whitespacePattern.ReplaceAllString(corrected, " "))
}

// fixDigitConfusions replaces O/o with 0 and l/I with 1 wherever the letter
// sits directly next to a digit. The scan reads the already-corrected prefix
// so runs like "1OO2" collapse fully in one pass.
func fixDigitConfusions(text string) string {
	runes := []rune(text)
	for i, r := range runes {
		repl, ok := digitConfusions[r]
		if !ok {
			continue
		}
		prevDigit := i > 0 && unicode.IsDigit(runes[i-1])
		nextDigit := i+1 < len(runes) && unicode.IsDigit(runes[i+1])
		if prevDigit || nextDigit {
			runes[i] = repl
		}
	}
	return string(runes)
}
