// SPDX-License-Identifier: Apache-2.0

// Package imagemeta reads capture metadata from the card photo so the scan
// result can record when and with what device the card was photographed.
// The extraction core never interprets this; it travels with the contact's
// image reference.
package imagemeta

import (
	"fmt"
	"os"

	"github.com/rwcarlsen/goexif/exif"
)

// CaptureInfo summarizes the EXIF data relevant to a card scan.
type CaptureInfo struct {
	FilePath    string `json:"file_path" yaml:"file_path"`
	CapturedAt  string `json:"captured_at,omitempty" yaml:"captured_at,omitempty"`
	Make        string `json:"make,omitempty" yaml:"make,omitempty"`
	Model       string `json:"model,omitempty" yaml:"model,omitempty"`
	Orientation string `json:"orientation,omitempty" yaml:"orientation,omitempty"`
}

// Read extracts capture info from the image at filePath. Images without
// EXIF data yield an error; callers treat that as "no metadata", not as a
// failed scan.
func Read(filePath string) (*CaptureInfo, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("error opening image: %w", err)
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("no EXIF data found: %w", err)
	}

	info := &CaptureInfo{FilePath: filePath}
	if dt, err := x.DateTime(); err == nil {
		info.CapturedAt = dt.Format("2006-01-02 15:04:05")
	}
	info.Make = tagString(x, exif.Make)
	info.Model = tagString(x, exif.Model)
	info.Orientation = tagString(x, exif.Orientation)

	return info, nil
}

func tagString(x *exif.Exif, name exif.FieldName) string {
	tag, err := x.Get(name)
	if err != nil || tag == nil {
		return ""
	}
	value, err := tag.StringVal()
	if err != nil {
		// Numeric tags (orientation) have no string value; fall back to
		// the raw representation.
		return tag.String()
	}
	return value
}
