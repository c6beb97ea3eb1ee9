// SPDX-License-Identifier: Apache-2.0

package contact

import "testing"

func TestIsValid(t *testing.T) {
	cases := []struct {
		name    string
		contact Contact
		want    bool
	}{
		{"name and phone", Contact{Name: "김철수", PhoneNumber: "010-1234-5678"}, true},
		{"name only", Contact{Name: "김철수"}, false},
		{"phone only", Contact{PhoneNumber: "010-1234-5678"}, false},
		{"other fields only", Contact{Company: "삼성전자", Email: "kim@samsung.com"}, false},
		{"empty", Contact{}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.contact.IsValid(); got != tc.want {
				t.Errorf("IsValid() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestIsEmpty(t *testing.T) {
	if !(&Contact{}).IsEmpty() {
		t.Error("zero contact should be empty")
	}
	if !(&Contact{ImageRef: "card.jpg"}).IsEmpty() {
		t.Error("image ref alone does not fill the contact")
	}
	if (&Contact{Address: "서울시 강남구"}).IsEmpty() {
		t.Error("contact with an address is not empty")
	}
}
