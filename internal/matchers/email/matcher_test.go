// SPDX-License-Identifier: Apache-2.0

package email

import (
	"testing"

	"cardscan/internal/lexicon"
)

func newTestMatcher() *Matcher {
	return NewMatcher(lexicon.Korean(nil))
}

func TestExtract(t *testing.T) {
	m := newTestMatcher()

	cases := []struct {
		name string
		line string
		want string
	}{
		{"bare address", "kim@samsung.com", "kim@samsung.com"},
		{"email label", "E-mail: kim@samsung.com", "kim@samsung.com"},
		{"korean label", "이메일 kim@samsung.co.kr", "kim@samsung.co.kr"},
		{"single letter label", "E. kim@samsung.com", "kim@samsung.com"},
		{"embedded in text", "문의: kim@samsung.com 으로", "kim@samsung.com"},
		{"first of several", "a@b.com c@d.com", "a@b.com"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := m.Extract(tc.line)
			if !ok {
				t.Fatalf("Extract(%q) found nothing", tc.line)
			}
			if got != tc.want {
				t.Errorf("Extract(%q) = %q, want %q", tc.line, got, tc.want)
			}
		})
	}
}

func TestExtract_RejectsURLs(t *testing.T) {
	m := newTestMatcher()

	for _, line := range []string{
		"www.example.com",
		"https://samsung.com",
		"E. company.co.kr", // domain survives label-stripping, still not an email
		"홈페이지 samsung.co.kr",
		"",
	} {
		if got, ok := m.Extract(line); ok {
			t.Errorf("Extract(%q) = %q, want no match", line, got)
		}
	}
}
