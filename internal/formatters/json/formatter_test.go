// SPDX-License-Identifier: Apache-2.0

package json

import (
	"encoding/json"
	"strings"
	"testing"

	"cardscan/internal/contact"
	"cardscan/internal/formatters"
	"cardscan/internal/pipeline"
)

func sampleResult() pipeline.Result {
	return pipeline.Result{
		ScanID: "0f2c7b1e-0000-0000-0000-000000000000",
		Contact: contact.Contact{
			Name:        "김철수",
			PhoneNumber: "010-1234-5678",
		},
		Sources: map[string]string{
			"name":         "대표이사 김철수",
			"phone_number": "010-1234-5678",
		},
		Unclaimed: []string{"~~~"},
		LineCount: 3,
	}
}

func TestFormat(t *testing.T) {
	f := NewFormatter()

	out, err := f.Format(sampleResult(), formatters.FormatterOptions{})
	if err != nil {
		t.Fatalf("Format error: %v", err)
	}

	var decoded pipeline.Result
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Contact.Name != "김철수" {
		t.Errorf("name = %q", decoded.Contact.Name)
	}
	if decoded.LineCount != 3 {
		t.Errorf("line_count = %d", decoded.LineCount)
	}
	// Diagnostic fields are verbose-only.
	if decoded.Sources != nil || decoded.Unclaimed != nil {
		t.Error("sources/unclaimed should be omitted without verbose")
	}
}

func TestFormat_Verbose(t *testing.T) {
	f := NewFormatter()

	out, err := f.Format(sampleResult(), formatters.FormatterOptions{Verbose: true})
	if err != nil {
		t.Fatalf("Format error: %v", err)
	}
	if !strings.Contains(out, "unclaimed") {
		t.Error("verbose output should carry unclaimed lines")
	}
	if !strings.Contains(out, "대표이사 김철수") {
		t.Error("verbose output should carry source lines")
	}
}

func TestRegistered(t *testing.T) {
	f, ok := formatters.Get("json")
	if !ok {
		t.Fatal("json formatter not registered")
	}
	if f.FileExtension() != ".json" {
		t.Errorf("extension = %q", f.FileExtension())
	}
}
