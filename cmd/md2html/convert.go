package main

import (
	"context"
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/config"
	"github.com/alnah/go-md2html/internal/hints"
)

// ErrUsage marks invalid command-line usage.
var ErrUsage = errors.New("invalid usage")

// runConvertCmd parses convert flags and runs the conversion.
func runConvertCmd(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseConvertFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	return runConvert(ctx, positional, flags, env)
}

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, inputs []string, flags *convertFlags, env *Environment) error {
	// Validate usage before loading anything
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}
	if flags.output != "" && len(inputs) > 1 {
		return fmt.Errorf("%w: cannot specify --output when processing multiple inputs", ErrUsage)
	}

	cfg, err := resolveConfig(flags.common.config, env)
	if err != nil {
		return err
	}

	// Merge CLI flags into config (CLI wins)
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	if len(inputs) == 0 {
		if cfg.Input.DefaultDir == "" {
			return fmt.Errorf("%w: pass a markdown file or directory", ErrNoInput)
		}
		inputs = []string{cfg.Input.DefaultDir}
	}

	outputDir := cfg.Output.DefaultDir
	if flags.output != "" && len(inputs) == 1 {
		outputDir = flags.output
	}

	files, err := discoverFiles(inputs, flags.output, outputDir)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	warnNonMarkdown(files, env)

	conv, err := buildConverter(cfg, env)
	if err != nil {
		return err
	}

	workers := md2html.ResolveWorkers(cfg.Workers)
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "engine: %s, workers: %d, files: %d\n", conv.Engine(), workers, len(files))
	}

	results := convertBatch(ctx, conv, files, workers)

	// A single file named on the command line fails the run on error
	if len(files) == 1 && files[0].Explicit {
		return printSingleResult(results[0], flags.common.quiet, flags.common.verbose, env)
	}

	summary := printResults(results, flags.common.quiet, flags.common.verbose, env)
	if summary.Failed > 0 && cfg.Strict {
		return fmt.Errorf("%w: %d of %d file(s)", ErrConversionFailed, summary.Failed, len(results))
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	return nil
}

// resolveConfig loads the named config (flag, then MD2HTML_CONFIG) or starts
// from the environment defaults, then applies environment overrides.
func resolveConfig(name string, env *Environment) (*config.Config, error) {
	envCfg := loadEnvConfig()
	if name == "" {
		name = envCfg.ConfigPath
	}

	cfg := env.baseConfig()
	if name != "" {
		loaded, err := config.LoadConfig(name)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) {
				return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
			}
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	applyEnvConfig(envCfg, cfg)
	return cfg, nil
}

// mergeFlags applies CLI flags over cfg. Only flags that were set win.
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	if flags.workers > 0 {
		cfg.Workers = flags.workers
	}
	if flags.strict {
		cfg.Strict = true
	}
	if flags.engine.name != "" {
		cfg.Engine = flags.engine.name
	}
	if flags.engine.lang != "" {
		cfg.Lang = flags.engine.lang
	}
	if flags.engine.highlight {
		cfg.Highlight.Enabled = true
	}
	if flags.engine.highlightStyle != "" {
		cfg.Highlight.Style = flags.engine.highlightStyle
		cfg.Highlight.Enabled = true
	}
	if flags.assets.style != "" {
		cfg.Style = flags.assets.style
	}
	if flags.assets.noStyle {
		cfg.Style = md2html.NoStyle
	}
	if flags.assets.assetPath != "" {
		cfg.Assets.BasePath = flags.assets.assetPath
	}
}

// buildConverter creates the shared converter from the merged config.
// Option errors come back with a hint listing valid values.
func buildConverter(cfg *config.Config, env *Environment) (*md2html.Converter, error) {
	opts := []md2html.Option{
		md2html.WithEngine(md2html.Engine(cfg.Engine)),
		md2html.WithStyle(cfg.Style),
		md2html.WithLang(cfg.Lang),
	}

	switch {
	case cfg.Assets.BasePath != "":
		opts = append(opts, md2html.WithAssetPath(cfg.Assets.BasePath))
	case env.AssetLoader != nil:
		opts = append(opts, md2html.WithAssetLoader(env.AssetLoader))
	}

	if cfg.Highlight.Enabled {
		opts = append(opts, md2html.WithHighlighting(cfg.Highlight.Style))
	}

	conv, err := md2html.NewConverter(opts...)
	if err != nil {
		return nil, withHint(err)
	}
	return conv, nil
}

// withHint appends an actionable hint to converter option errors.
func withHint(err error) error {
	var hint string
	switch {
	case errors.Is(err, md2html.ErrStyleNotFound):
		hint = hints.ForStyleNotFound(md2html.Styles())
	case errors.Is(err, md2html.ErrInvalidHighlightStyle):
		hint = hints.ForHighlightStyle(md2html.HighlightStyles())
	case errors.Is(err, md2html.ErrInvalidEngine):
		hint = hints.ForEngine(md2html.Engines())
	}
	if hint == "" {
		return err
	}
	return fmt.Errorf("%w%s", err, hint)
}
