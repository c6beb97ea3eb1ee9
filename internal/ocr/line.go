// SPDX-License-Identifier: Apache-2.0

// Package ocr defines the recognized-line input model and loads OCR result
// documents produced by an external recognition engine.
package ocr

// BoundingBox is the line's position on the card image. The extraction
// core never interprets it; it is carried through for consumers that
// want to highlight the source region.
type BoundingBox struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// RecognizedLine is one line of OCR output: the recognized text, the
// engine-reported confidence in [0,1], and the bounding box. Input-only
// and immutable once constructed.
type RecognizedLine struct {
	Text       string      `json:"text"`
	Confidence float64     `json:"confidence"`
	Box        BoundingBox `json:"bounding_box"`
}

// Document is a full OCR result for one card scan.
type Document struct {
	// Source identifies where the lines came from (image path, PDF page).
	Source string           `json:"source,omitempty"`
	Lines  []RecognizedLine `json:"lines"`
}
