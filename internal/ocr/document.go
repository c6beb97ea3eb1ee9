// SPDX-License-Identifier: Apache-2.0

package ocr

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// defaultConfidence is assumed when the OCR engine reports none for a
// line. Matches the behavior of recognition engines that omit per-line
// confidence rather than reporting zero.
const defaultConfidence = 0.5

// documentSchema validates the wire shape of an OCR result document before
// any parsing-dependent code runs.
const documentSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["lines"],
  "properties": {
    "source": {"type": "string"},
    "lines": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["text"],
        "properties": {
          "text": {"type": "string"},
          "confidence": {"type": "number", "minimum": 0, "maximum": 1},
          "bounding_box": {
            "type": "object",
            "properties": {
              "x": {"type": "number"},
              "y": {"type": "number"},
              "width": {"type": "number"},
              "height": {"type": "number"}
            }
          }
        }
      }
    }
  }
}`

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

func schema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("ocr-document.json", strings.NewReader(documentSchema)); err != nil {
			schemaErr = fmt.Errorf("add schema: %w", err)
			return
		}
		compiledSchema, schemaErr = compiler.Compile("ocr-document.json")
	})
	return compiledSchema, schemaErr
}

// wireLine mirrors RecognizedLine with an optional confidence so absent
// values can be told apart from explicit zeros.
type wireLine struct {
	Text       string      `json:"text"`
	Confidence *float64    `json:"confidence"`
	Box        BoundingBox `json:"bounding_box"`
}

type wireDocument struct {
	Source string     `json:"source"`
	Lines  []wireLine `json:"lines"`
}

// ParseDocument validates data against the document schema and decodes it.
func ParseDocument(data []byte) (*Document, error) {
	s, err := schema()
	if err != nil {
		return nil, err
	}

	var generic any
	if err := json.Unmarshal(data, &generic); err != nil {
		return nil, fmt.Errorf("parse OCR document: %w", err)
	}
	if err := s.Validate(generic); err != nil {
		return nil, fmt.Errorf("OCR document does not match schema: %w", err)
	}

	var wire wireDocument
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("decode OCR document: %w", err)
	}

	doc := &Document{Source: wire.Source, Lines: make([]RecognizedLine, 0, len(wire.Lines))}
	for _, wl := range wire.Lines {
		confidence := defaultConfidence
		if wl.Confidence != nil {
			confidence = *wl.Confidence
		}
		doc.Lines = append(doc.Lines, RecognizedLine{
			Text:       wl.Text,
			Confidence: confidence,
			Box:        wl.Box,
		})
	}
	return doc, nil
}

// LoadDocument reads an OCR document from a file, or from stdin when path
// is "-".
func LoadDocument(path string) (*Document, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read OCR document: %w", err)
	}
	return ParseDocument(data)
}
