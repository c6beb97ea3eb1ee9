// SPDX-License-Identifier: Apache-2.0

package text

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"cardscan/internal/formatters"
	"cardscan/internal/pipeline"
)

// Formatter implements human-readable text output
type Formatter struct {
	colors map[string]*color.Color
}

// NewFormatter creates a new text formatter
func NewFormatter() *Formatter {
	return &Formatter{
		colors: map[string]*color.Color{
			"green":  color.New(color.FgGreen),
			"yellow": color.New(color.FgYellow),
			"red":    color.New(color.FgRed),
			"cyan":   color.New(color.FgCyan),
			"white":  color.New(color.FgWhite, color.Bold),
		},
	}
}

func (f *Formatter) Name() string {
	return "text"
}

func (f *Formatter) Description() string {
	return "Human-readable text output with colors"
}

func (f *Formatter) FileExtension() string {
	return ".txt"
}

func (f *Formatter) Format(result pipeline.Result, options formatters.FormatterOptions) (string, error) {
	if options.NoColor {
		color.NoColor = true
	}

	var builder strings.Builder

	f.colors["white"].Fprintf(&builder, "Scan %s", result.ScanID)
	fmt.Fprintf(&builder, " (%d lines)\n\n", result.LineCount)

	fields := []struct {
		label string
		value string
	}{
		{"Name", result.Contact.Name},
		{"Position", result.Contact.Position},
		{"Company", result.Contact.Company},
		{"Phone", result.Contact.PhoneNumber},
		{"Email", result.Contact.Email},
		{"Address", result.Contact.Address},
	}
	for _, field := range fields {
		f.appendField(&builder, field.label, field.value, result, options)
	}

	if result.Contact.IsValid() {
		f.colors["green"].Fprint(&builder, "\nContact is complete enough to save (name + phone).\n")
	} else {
		f.colors["yellow"].Fprint(&builder, "\nContact is incomplete — review before saving.\n")
	}

	if options.Verbose && len(result.Unclaimed) > 0 {
		f.colors["cyan"].Fprint(&builder, "\nUnassigned lines:\n")
		for _, line := range result.Unclaimed {
			fmt.Fprintf(&builder, "  - %s\n", line)
		}
	}

	return builder.String(), nil
}

// appendField prints one labeled field; empty fields render as a dash so
// the card layout stays scannable.
func (f *Formatter) appendField(builder *strings.Builder, label, value string, result pipeline.Result, options formatters.FormatterOptions) {
	fmt.Fprintf(builder, "%-10s", label+":")
	if value == "" {
		f.colors["red"].Fprint(builder, "—")
		builder.WriteString("\n")
		return
	}
	f.colors["green"].Fprint(builder, value)
	if options.Verbose {
		if source, ok := result.Sources[sourceKey(label)]; ok && source != value {
			f.colors["cyan"].Fprintf(builder, "  (from %q)", source)
		}
	}
	builder.WriteString("\n")
}

func sourceKey(label string) string {
	switch label {
	case "Phone":
		return "phone_number"
	default:
		return strings.ToLower(label)
	}
}

// Register the formatter during package initialization
func init() {
	formatters.Register(NewFormatter())
}
