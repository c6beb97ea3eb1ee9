// SPDX-License-Identifier: Apache-2.0

package classifier

import (
	"testing"

	"cardscan/internal/lexicon"
)

func newTestClassifier() *Classifier {
	return New(lexicon.Korean(nil))
}

func TestClassify(t *testing.T) {
	c := newTestClassifier()

	cases := []struct {
		name string
		line string
		want Category
	}{
		{"anchored korean name", "김철수", CategoryName},
		{"latin name", "Gildong Hong", CategoryName},
		{"corporate suffix", "삼성전자", CategoryCompany},
		{"registered company", "주식회사 한빛", CategoryCompany},
		{"full address", "서울시 강남구 테헤란로 123", CategoryAddress},
		{"title line", "대표이사 김철수", CategoryPosition},
		{"bare title", "과장", CategoryPosition},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, score := c.Classify(tc.line)
			if got != tc.want {
				t.Errorf("Classify(%q) = %v (score %d), want %v", tc.line, got, score, tc.want)
			}
			if score <= 0 {
				t.Errorf("Classify(%q) score = %d, want > 0", tc.line, score)
			}
		})
	}
}

func TestClassify_Unknown(t *testing.T) {
	c := newTestClassifier()

	for _, line := range []string{"", "12345", "!!!", "~~~"} {
		got, score := c.Classify(line)
		if got != CategoryUnknown || score != 0 {
			t.Errorf("Classify(%q) = %v, %d, want unknown, 0", line, got, score)
		}
	}
}

func TestClassify_TiePrefersName(t *testing.T) {
	c := newTestClassifier()

	// Matches both the Latin name shape and the "Group" company keyword at
	// equal weight; the name category is checked first and keeps ties.
	got, score := c.Classify("Samsung Group")
	if got != CategoryName {
		t.Errorf("Classify(Samsung Group) = %v (score %d), want name", got, score)
	}
}

func TestClassify_DescribedCompanyDemoted(t *testing.T) {
	c := newTestClassifier()

	_, plain := c.Classify("삼성전자")
	got, demoted := c.Classify("코스닥상장법인 삼성전자")
	if got != CategoryCompany {
		t.Fatalf("got category %v, want company", got)
	}
	if demoted >= plain {
		t.Errorf("described company score %d, want below plain company score %d", demoted, plain)
	}
}

func TestClassify_AddressScoreGrowsWithHits(t *testing.T) {
	c := newTestClassifier()

	one := c.scoreAddress("강남구")
	three := c.scoreAddress("서울시 강남구 테헤란로 123")
	if three <= one {
		t.Errorf("multi-hit address score %d, want above single-hit score %d", three, one)
	}
}

func TestClassify_Deterministic(t *testing.T) {
	c := newTestClassifier()

	lines := []string{"김철수", "삼성전자", "서울시 강남구 테헤란로 123", "대표이사"}
	for _, line := range lines {
		cat1, score1 := c.Classify(line)
		cat2, score2 := c.Classify(line)
		if cat1 != cat2 || score1 != score2 {
			t.Errorf("Classify(%q) unstable: %v/%d vs %v/%d", line, cat1, score1, cat2, score2)
		}
	}
}
