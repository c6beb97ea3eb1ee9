// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/term"

	"cardscan/internal/batch"
	"cardscan/internal/config"
	"cardscan/internal/formatters"
	_ "cardscan/internal/formatters/json"
	_ "cardscan/internal/formatters/text"
	_ "cardscan/internal/formatters/yaml"
	"cardscan/internal/help"
	"cardscan/internal/imagemeta"
	"cardscan/internal/observability"
	"cardscan/internal/ocr"
	"cardscan/internal/pdftext"
	"cardscan/internal/pipeline"
	"cardscan/internal/version"
)

// cliFlags holds command line flag values
type cliFlags struct {
	input       string
	pdfPath     string
	imagePath   string
	format      string
	configFile  string
	locale      string
	workers     int
	verbose     bool
	debug       bool
	noColor     bool
	showVersion bool
	showHelp    bool
}

func main() {
	flags := parseFlags()

	if flags.showVersion {
		fmt.Println(version.Info())
		return
	}
	batchPaths := flag.Args()
	if flags.showHelp || (flags.input == "" && flags.pdfPath == "" && len(batchPaths) == 0) {
		help.PrintUsage()
		if flags.showHelp {
			return
		}
		os.Exit(2)
	}

	cfg := config.LoadConfigOrDefault(flags.configFile)
	format, verbose, debug, noColor := resolveOptions(cfg, flags)

	// Colors only make sense on a terminal.
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		noColor = true
	}

	pipe := pipeline.New(cfg.Profile())
	var observer *observability.StandardObserver
	if debug {
		observer = observability.NewStandardObserver(observability.ObservabilityDebug, os.Stderr)
		observer.DebugObserver = observability.NewDebugObserver(os.Stderr)
		pipe.SetObserver(observer)
	}

	options := formatters.FormatterOptions{Verbose: verbose, NoColor: noColor}
	if len(batchPaths) > 0 {
		os.Exit(runBatch(pipe, observer, flags.workers, batchPaths, format, options))
	}

	doc, err := loadDocument(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	result := pipe.Extract(doc.Lines)

	if flags.imagePath != "" {
		result.Contact.ImageRef = flags.imagePath
		if capture, err := imagemeta.Read(flags.imagePath); err == nil {
			result.Capture = capture
		} else if verbose {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
	}

	output, err := formatters.Export(format, result, options)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(output)
}

// runBatch scans every document with a worker pool and prints one result
// per document, head-style headers separating them. Returns the exit code.
func runBatch(pipe *pipeline.Pipeline, observer *observability.StandardObserver,
	workers int, paths []string, format string, options formatters.FormatterOptions) int {

	pool := batch.NewPool(workers, pipe, loadByExtension, observer)
	results := pool.Process(context.Background(), paths)

	code := 0
	for _, r := range results {
		fmt.Printf("==> %s <==\n", r.Path)
		if r.Err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s: %v\n", r.Path, r.Err)
			code = 1
			continue
		}
		output, err := formatters.Export(format, r.Scan, options)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		fmt.Println(output)
	}
	return code
}

func parseFlags() *cliFlags {
	flags := &cliFlags{}
	flag.StringVar(&flags.input, "input", "", "OCR document path (JSON), \"-\" for stdin")
	flag.StringVar(&flags.pdfPath, "pdf", "", "scanned card PDF; its text layer becomes the input")
	flag.StringVar(&flags.imagePath, "image", "", "card photo to attach capture metadata from")
	flag.StringVar(&flags.format, "format", "", "output format: text, json, yaml")
	flag.StringVar(&flags.configFile, "config", "", "config file path")
	flag.StringVar(&flags.locale, "locale", "", "locale profile")
	flag.IntVar(&flags.workers, "workers", runtime.NumCPU(), "parallel workers for multi-document scans")
	flag.BoolVar(&flags.verbose, "verbose", false, "include per-field source lines and leftovers")
	flag.BoolVar(&flags.debug, "debug", false, "step-by-step extraction trace on stderr")
	flag.BoolVar(&flags.noColor, "no-color", false, "disable colored output")
	flag.BoolVar(&flags.showVersion, "version", false, "print version and exit")
	flag.BoolVar(&flags.showHelp, "help", false, "print usage")
	flag.Parse()
	return flags
}

// resolveOptions merges config file defaults with command line flags;
// explicitly set flags win.
func resolveOptions(cfg *config.Config, flags *cliFlags) (format string, verbose, debug, noColor bool) {
	format = cfg.Defaults.Format
	if isFlagSet("format") && flags.format != "" {
		format = flags.format
	}
	if flags.locale != "" {
		cfg.Defaults.Locale = flags.locale
	}

	verbose = cfg.Defaults.Verbose || flags.verbose
	debug = cfg.Defaults.Debug || flags.debug
	noColor = cfg.Defaults.NoColor || flags.noColor
	return format, verbose, debug, noColor
}

func loadDocument(flags *cliFlags) (*ocr.Document, error) {
	if flags.pdfPath != "" {
		return pdftext.ExtractLines(flags.pdfPath)
	}
	return loadByExtension(flags.input)
}

// loadByExtension routes a document to its loader: PDFs go through the
// text-layer extractor, everything else is parsed as an OCR JSON document.
func loadByExtension(path string) (*ocr.Document, error) {
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		return pdftext.ExtractLines(path)
	}
	return ocr.LoadDocument(path)
}

// isFlagSet checks whether a flag was explicitly provided on the command line
func isFlagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
