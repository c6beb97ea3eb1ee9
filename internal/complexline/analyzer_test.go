// SPDX-License-Identifier: Apache-2.0

package complexline

import (
	"testing"

	"cardscan/internal/lexicon"
)

func newTestAnalyzer() *Analyzer {
	return New(lexicon.Korean(nil))
}

func TestExtractName(t *testing.T) {
	a := newTestAnalyzer()

	cases := []struct {
		name string
		line string
		want string
	}{
		{"title then name", "대표이사 김철수", "김철수"},
		{"name then title", "김철수 대표이사", "김철수"},
		{"department slash title spaced name", "생산관리팀 / 주임 홍 길 동", "홍길동"},
		{"pipe separated", "영업팀 | 과장 이영호", "이영호"},
		{"residue after department strip", "영업팀 김영희", "김영희"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := a.ExtractName(tc.line)
			if !ok {
				t.Fatalf("ExtractName(%q) found nothing", tc.line)
			}
			if got != tc.want {
				t.Errorf("ExtractName(%q) = %q, want %q", tc.line, got, tc.want)
			}
		})
	}
}

func TestExtractName_NoName(t *testing.T) {
	a := newTestAnalyzer()

	for _, line := range []string{"생산관리팀", "대표이사", "", "영업팀 / 마케팅팀"} {
		if got, ok := a.ExtractName(line); ok {
			t.Errorf("ExtractName(%q) = %q, want no match", line, got)
		}
	}
}

func TestExtractPosition(t *testing.T) {
	a := newTestAnalyzer()

	cases := []struct {
		name string
		line string
		want string
	}{
		{"simple title", "대표이사 김철수", "대표이사"},
		{"compound title kept whole", "부회장 김철수", "부회장"},
		{"title after department", "생산관리팀 / 주임 홍 길 동", "주임"},
		{"english title", "Manager Kim", "Manager"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := a.ExtractPosition(tc.line)
			if !ok {
				t.Fatalf("ExtractPosition(%q) found nothing", tc.line)
			}
			if got != tc.want {
				t.Errorf("ExtractPosition(%q) = %q, want %q", tc.line, got, tc.want)
			}
		})
	}
}

func TestExtractPosition_NoTitle(t *testing.T) {
	a := newTestAnalyzer()

	if got, ok := a.ExtractPosition("김철수"); ok {
		t.Errorf("ExtractPosition(김철수) = %q, want no match", got)
	}
}
