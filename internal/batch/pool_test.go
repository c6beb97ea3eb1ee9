// SPDX-License-Identifier: Apache-2.0

package batch

import (
	"context"
	"errors"
	"testing"

	"cardscan/internal/lexicon"
	"cardscan/internal/ocr"
	"cardscan/internal/pipeline"
)

func fakeLoader(docs map[string]*ocr.Document) Loader {
	return func(path string) (*ocr.Document, error) {
		doc, ok := docs[path]
		if !ok {
			return nil, errors.New("no such document: " + path)
		}
		return doc, nil
	}
}

func cardDoc(name string) *ocr.Document {
	return &ocr.Document{Lines: []ocr.RecognizedLine{
		{Text: name, Confidence: 0.9},
		{Text: "010-1234-5678", Confidence: 0.95},
	}}
}

func TestProcess_OrderPreserved(t *testing.T) {
	docs := map[string]*ocr.Document{
		"a.json": cardDoc("김철수"),
		"b.json": cardDoc("홍길동"),
		"c.json": cardDoc("이영호"),
	}
	pool := NewPool(4, pipeline.New(lexicon.Korean(nil)), fakeLoader(docs), nil)

	results := pool.Process(context.Background(), []string{"a.json", "b.json", "c.json"})
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}

	wantNames := []string{"김철수", "홍길동", "이영호"}
	for i, r := range results {
		if r.Err != nil {
			t.Fatalf("results[%d] error: %v", i, r.Err)
		}
		if r.Path != []string{"a.json", "b.json", "c.json"}[i] {
			t.Errorf("results[%d].Path = %q", i, r.Path)
		}
		if r.Scan.Contact.Name != wantNames[i] {
			t.Errorf("results[%d] name = %q, want %q", i, r.Scan.Contact.Name, wantNames[i])
		}
	}
}

func TestProcess_ErrorIsolation(t *testing.T) {
	docs := map[string]*ocr.Document{"good.json": cardDoc("김철수")}
	pool := NewPool(2, pipeline.New(lexicon.Korean(nil)), fakeLoader(docs), nil)

	results := pool.Process(context.Background(), []string{"missing.json", "good.json"})
	if results[0].Err == nil {
		t.Error("expected error for missing document")
	}
	if results[1].Err != nil {
		t.Errorf("unexpected error: %v", results[1].Err)
	}
	if results[1].Scan.Contact.Name != "김철수" {
		t.Errorf("name = %q", results[1].Scan.Contact.Name)
	}
}

func TestNewPool_ClampsWorkers(t *testing.T) {
	docs := map[string]*ocr.Document{"a.json": cardDoc("김철수")}
	pool := NewPool(0, pipeline.New(lexicon.Korean(nil)), fakeLoader(docs), nil)

	results := pool.Process(context.Background(), []string{"a.json"})
	if results[0].Err != nil {
		t.Fatalf("error: %v", results[0].Err)
	}
}

func TestProcess_NoPaths(t *testing.T) {
	pool := NewPool(2, pipeline.New(lexicon.Korean(nil)), fakeLoader(nil), nil)
	if results := pool.Process(context.Background(), nil); len(results) != 0 {
		t.Errorf("got %d results, want 0", len(results))
	}
}
