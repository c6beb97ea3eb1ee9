// SPDX-License-Identifier: Apache-2.0

package help

import "fmt"

// PrintUsage prints the command line usage text.
func PrintUsage() {
	fmt.Println(`cardscan - extract contact fields from business card OCR output

Usage:
  cardscan -input <file>     Read an OCR result document (JSON), "-" for stdin
  cardscan -pdf <file>       Read the text layer of a scanned-card PDF
  cardscan <file> [file...]  Scan several documents (routed by extension)

Options:
  -input string    OCR document path (JSON with text/confidence per line)
  -pdf string      scanned card PDF; its text layer becomes the input lines
  -image string    card photo; EXIF capture info is attached to the result
  -format string   output format: text, json, yaml (default "text")
  -config string   config file path (default: search standard locations)
  -locale string   locale profile (default "ko")
  -workers int     parallel workers for multi-document scans
  -verbose         include per-field source lines and leftovers
  -debug           step-by-step extraction trace on stderr
  -no-color        disable colored output
  -version         print version and exit

Examples:
  cardscan -input scan.json
  tesseract card.jpg - tsv | ocr2json | cardscan -input - -format json
  cardscan -pdf card.pdf -image card.jpg -verbose
  cardscan -format json -workers 8 scans/*.json`)
}
