package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// engineFlags holds Markdown engine flags.
type engineFlags struct {
	name           string
	lang           string
	highlight      bool
	highlightStyle string
}

// assetFlags holds asset-related flags (CSS, custom asset path).
type assetFlags struct {
	style     string // Name or path for CSS
	assetPath string // Override asset directory
	noStyle   bool   // Disable CSS styling
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common  commonFlags
	output  string
	workers int
	strict  bool
	engine  engineFlags
	assets  assetFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show each conversion with timing")
}

// addEngineFlags adds engine flags to a FlagSet.
func addEngineFlags(fs *flag.FlagSet, f *engineFlags) {
	fs.StringVarP(&f.name, "engine", "e", "", "markdown engine: pipeline, commonmark")
	fs.StringVar(&f.lang, "lang", "", "document language for <html lang>")
	fs.BoolVar(&f.highlight, "highlight", false, "highlight fenced code (commonmark engine)")
	fs.StringVar(&f.highlightStyle, "highlight-style", "", "chroma style for --highlight")
}

// addAssetFlags adds asset-related flags to a FlagSet.
func addAssetFlags(fs *flag.FlagSet, f *assetFlags) {
	fs.StringVar(&f.style, "style", "", "CSS style name or file path")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
	fs.BoolVar(&f.noStyle, "no-style", false, "disable CSS styling")
}

// newConvertFlagSet registers every convert flag into a new FlagSet bound to f.
// Used by both parsing and completion so the two cannot drift.
func newConvertFlagSet(f *convertFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)

	// I/O flags
	fs.StringVarP(&f.output, "output", "o", "", "output file (single input) or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.BoolVar(&f.strict, "strict", false, "exit non-zero if any file fails")

	// Flag groups
	addCommonFlags(fs, &f.common)
	addEngineFlags(fs, &f.engine)
	addAssetFlags(fs, &f.assets)

	return fs
}

// parseConvertFlags parses convert command flags and returns positional args.
// Usage and parse errors are written to w.
func parseConvertFlags(args []string, w io.Writer) (*convertFlags, []string, error) {
	f := &convertFlags{}
	fs := newConvertFlagSet(f)
	fs.SetOutput(w)
	fs.Usage = func() { printConvertUsage(w) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// hasVerboseFlag reports whether args request verbose output.
// Used before full parsing to configure startup diagnostics.
func hasVerboseFlag(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "--":
			return false
		case "-v", "--verbose":
			return true
		}
	}
	return false
}
