// SPDX-License-Identifier: Apache-2.0

// Package pdftext reads the OCR text layer of a scanned business-card PDF
// and converts it into recognized lines the pipeline can consume. Scanner
// apps commonly emit one PDF per card with the recognition result embedded
// as a text layer.
package pdftext

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"

	"cardscan/internal/ocr"
)

// textLayerConfidence is assigned uniformly to lines read from a PDF text
// layer: the producing scanner already accepted them, but per-line engine
// confidence is lost in the PDF.
const textLayerConfidence = 0.9

// maxPages bounds processing; a card scan should be a single page, but
// multi-card batch PDFs exist.
const maxPages = 20

// ExtractLines reads the text layer of the PDF at filePath and returns one
// RecognizedLine per text row, top to bottom.
func ExtractLines(filePath string) (*ocr.Document, error) {
	f, r, err := pdf.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("error opening PDF: %w", err)
	}
	defer f.Close()

	pageCount := r.NumPage()
	if pageCount > maxPages {
		pageCount = maxPages
	}

	doc := &ocr.Document{Source: filepath.Base(filePath)}
	for pageNum := 1; pageNum <= pageCount; pageNum++ {
		p := r.Page(pageNum)
		if p.V.IsNull() {
			continue
		}
		extractPage(p, doc)
	}

	if len(doc.Lines) == 0 {
		return doc, fmt.Errorf("no text layer found in %s", filePath)
	}
	return doc, nil
}

func extractPage(p pdf.Page, doc *ocr.Document) {
	rows, err := p.GetTextByRow()
	if err != nil {
		// A malformed page should not sink the whole scan.
		return
	}

	sortedRows := make([]*pdf.Row, 0, len(rows))
	for _, row := range rows {
		if row != nil && len(row.Content) > 0 {
			sortedRows = append(sortedRows, row)
		}
	}
	// PDF Y grows bottom-up; higher Y means higher on the page.
	sort.Slice(sortedRows, func(i, j int) bool {
		return averageY(sortedRows[i].Content) > averageY(sortedRows[j].Content)
	})

	for _, row := range sortedRows {
		text := strings.TrimSpace(rowText(row.Content))
		if text == "" {
			continue
		}
		doc.Lines = append(doc.Lines, ocr.RecognizedLine{
			Text:       text,
			Confidence: textLayerConfidence,
			Box:        ocr.BoundingBox{Y: averageY(row.Content)},
		})
	}
}

func averageY(elements []pdf.Text) float64 {
	if len(elements) == 0 {
		return 0
	}
	var total float64
	for _, element := range elements {
		total += element.Y
	}
	return total / float64(len(elements))
}

// rowText joins a row's text elements left to right, inserting a space
// wherever the horizontal gap suggests a word boundary.
func rowText(elements []pdf.Text) string {
	sorted := make([]pdf.Text, len(elements))
	copy(sorted, elements)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].X < sorted[j].X
	})

	var sb strings.Builder
	for i, element := range sorted {
		sb.WriteString(element.S)
		if i+1 < len(sorted) {
			gap := sorted[i+1].X - (element.X + element.W)
			if gap > 1 {
				sb.WriteString(" ")
			}
		}
	}
	return sb.String()
}
