// SPDX-License-Identifier: Apache-2.0

package lexicon

import "regexp"

// Extensions carries additional keywords merged into a profile at
// construction time, typically from the config file. The resulting profile
// is still immutable.
type Extensions struct {
	Company            []string
	Position           []string
	Address            []string
	Department         []string
	CompanyDescription []string
	Surnames           []string
}

var (
	koreanNamePattern       = regexp.MustCompile(`^[가-힣]{2,4}$`)
	koreanNameRunPattern    = regexp.MustCompile(`[가-힣]+`)
	koreanSpacedNamePattern = regexp.MustCompile(`[가-힣](?: [가-힣]){1,3}`)
	latinNamePattern        = regexp.MustCompile(`^[A-Z][a-z]+(?:\s[A-Z][a-z]+)*$`)

	koreanPhonePattern = regexp.MustCompile(
		`(?:01[016789]|\(?0\d{1,2}\)?)[-.\s]?\d{3,4}[-.\s]?\d{4}`)
	koreanIntlPhonePattern = regexp.MustCompile(
		`\+?82[-.\s]?(?:0?1[016789]|\(?0?\d{1,2}\)?)[-.\s]?\d{3,4}[-.\s]?\d{4}`)
	koreanPhoneLabelPattern = regexp.MustCompile(
		`(?i)^(?:tel|telephone|phone|mobile|cell|fax|h\.?p|전화|휴대폰|휴대전화|팩스|연락처|[tmf])[\s.:\-]+`)

	emailPattern = regexp.MustCompile(
		`[a-zA-Z0-9][a-zA-Z0-9._%+\-]*@[a-zA-Z0-9][a-zA-Z0-9.\-]*\.[a-zA-Z]{2,}`)
	urlPattern = regexp.MustCompile(
		`^(?:https?://)?(?:www\.)?[a-zA-Z0-9\-]+\.[a-zA-Z]{2,}$`)
	emailLabelPattern = regexp.MustCompile(
		`(?i)^(?:e-?mail|이메일|메일|e)[\s.:\-]+`)
)

// Korean builds the Korean business-card profile. Keyword lists follow the
// conventions of Korean cards: corporate suffixes, the standard title
// ladder, administrative address units, and the common surname inventory
// used as a name anchor.
func Korean(ext *Extensions) *Profile {
	p := &Profile{
		Locale: "ko",
		CompanyKeywords: []string{
			"주식회사", "(주)", "㈜", "유한회사", "법인", "상사", "기업",
			"연구소", "센터", "재단", "그룹",
			"전자", "물산", "건설", "중공업", "화학", "통신", "금융", "증권", "보험", "은행",
			"Co.", "Ltd.", "Inc.", "Corporation", "Corp.", "Company", "Group",
		},
		PositionKeywords: []string{
			"회장", "부회장", "사장", "부사장", "대표이사", "전무이사", "상무이사", "이사", "감사",
			"대표", "전무", "상무", "본부장", "센터장", "실장", "지사장", "공장장",
			"팀장", "부장", "차장", "과장", "대리", "주임", "사원", "연구원",
			"선임연구원", "책임연구원", "수석연구원", "파트장", "그룹장",
			"컨설턴트", "디자이너", "개발자", "엔지니어", "아키텍트", "매니저",
			"CEO", "CTO", "CFO", "COO", "CMO", "CIO", "CSO", "CPO",
			"VP", "President", "Director", "Manager", "Leader",
			"Developer", "Designer", "Engineer", "Consultant", "Chief",
		},
		AddressKeywords: []string{
			"시", "구", "동", "로", "길", "가", "번지", "층", "호", "빌딩",
			"Street", "St.", "Ave", "Avenue", "Road", "Rd.",
			"Floor", "Fl.", "Building", "Bldg",
		},
		DepartmentKeywords: []string{
			"경영", "기획", "전략", "인사", "총무", "재무", "회계", "법무", "홍보", "IR",
			"개발", "연구", "디자인", "기술", "생산", "품질", "QA", "QC",
			"영업", "마케팅", "사업", "고객", "서비스", "해외", "국내",
			"본부", "사업부", "센터", "실", "팀", "파트", "그룹", "솔루션", "컨설팅",
			"R&D", "HR", "GA", "부문", "Division",
		},
		CompanyDescriptionKeywords: []string{
			"코스닥상장법인", "벤처기업", "이노비즈", "메인비즈", "상장", "인증",
		},
		Surnames: []string{
			"김", "이", "박", "최", "정", "강", "조", "윤", "장", "임", "한", "오",
			"서", "신", "권", "황", "안", "송", "류", "전", "홍", "고", "문", "양",
			"손", "배", "백", "허", "유", "남", "심", "노", "하", "곽", "성", "차",
			"도", "구", "우", "주", "라", "민", "진", "지", "엄", "채", "원", "천",
			"방", "공", "현", "함", "변", "염", "여", "추", "소", "석", "선", "설",
			"마", "길", "연", "위", "표", "명", "기", "반", "왕", "금", "옥", "육",
			"인", "맹", "제", "모", "탁", "국", "어", "은", "편", "용", "예", "경", "봉",
		},

		NamePattern:       koreanNamePattern,
		NameRunPattern:    koreanNameRunPattern,
		SpacedNamePattern: koreanSpacedNamePattern,
		LatinNamePattern:  latinNamePattern,

		PhonePattern:      koreanPhonePattern,
		IntlPhonePattern:  koreanIntlPhonePattern,
		PhoneLabelPattern: koreanPhoneLabelPattern,

		EmailPattern:      emailPattern,
		URLPattern:        urlPattern,
		EmailLabelPattern: emailLabelPattern,

		MobilePrefix: "010",
		CountryCode:  "82",
	}

	if ext != nil {
		p.CompanyKeywords = append(p.CompanyKeywords, ext.Company...)
		p.PositionKeywords = append(p.PositionKeywords, ext.Position...)
		p.AddressKeywords = append(p.AddressKeywords, ext.Address...)
		p.DepartmentKeywords = append(p.DepartmentKeywords, ext.Department...)
		p.CompanyDescriptionKeywords = append(p.CompanyDescriptionKeywords, ext.CompanyDescription...)
		p.Surnames = append(p.Surnames, ext.Surnames...)
	}

	return p
}
