package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/fileutil"
	"github.com/alnah/go-md2html/internal/hints"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Sentinel errors for batch operations.
var (
	ErrNoInput          = errors.New("no input specified")
	ErrWriteHTML        = errors.New("failed to write HTML file")
	ErrConversionFailed = errors.New("conversion failed")
)

// CLIConverter is the interface for the conversion service.
type CLIConverter interface {
	Convert(ctx context.Context, input md2html.Input) (*md2html.ConvertResult, error)
}

// Compile-time interface implementation check.
var _ CLIConverter = (*md2html.Converter)(nil)

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath  string
	OutputPath string
	Err        error
	Duration   time.Duration
}

// convertBatch converts files with up to workers goroutines sharing conv.
// Results are returned in the order of files.
func convertBatch(ctx context.Context, conv CLIConverter, files []FileToConvert, workers int) []ConversionResult {
	if len(files) == 0 {
		return nil
	}

	concurrency := workers
	if concurrency > len(files) {
		concurrency = len(files)
	}
	if concurrency < 1 {
		concurrency = 1
	}

	results := make([]ConversionResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = ConversionResult{
						InputPath:  files[idx].InputPath,
						OutputPath: files[idx].OutputPath,
						Err:        ctx.Err(),
					}
					continue
				}
				results[idx] = convertFile(ctx, conv, files[idx])
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// convertFile processes a single file and returns the result.
func convertFile(ctx context.Context, conv CLIConverter, f FileToConvert) ConversionResult {
	start := time.Now()
	result := ConversionResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
	}

	content, err := md2html.ReadMarkdownFile(f.InputPath)
	if err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	convResult, err := conv.Convert(ctx, md2html.Input{
		Markdown: content,
		Title:    md2html.TitleFromFilename(f.InputPath),
	})
	if err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	if dir := filepath.Dir(f.OutputPath); dir != "" {
		if err := os.MkdirAll(dir, dirPermissions); err != nil {
			result.Err = fmt.Errorf("%w: creating output directory: %v%s", ErrWriteHTML, err, hints.ForOutputDirectory())
			result.Duration = time.Since(start)
			return result
		}
	}

	// #nosec G306 -- HTML files are meant to be readable
	if err := fileutil.WriteFileAtomic(f.OutputPath, convResult.HTML, filePermissions); err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrWriteHTML, err)
		result.Duration = time.Since(start)
		return result
	}

	result.Duration = time.Since(start)
	return result
}

// ResultSummary holds the count of succeeded and failed conversions.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

// countResults tallies succeeded and failed conversions.
func countResults(results []ConversionResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

// printResults reports batch results in input order and returns the summary.
// Failures go to stderr and never stop the report.
func printResults(results []ConversionResult, quiet, verbose bool, env *Environment) ResultSummary {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "error converting %s: %v\n", r.InputPath, r.Err)
			continue
		}

		if quiet || !verbose {
			continue
		}
		printConverted(env, r)
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}

	return summary
}

// printSingleResult reports the conversion of a single input file.
// A failure is returned for the caller to report and map to an exit code.
func printSingleResult(r ConversionResult, quiet, verbose bool, env *Environment) error {
	if r.Err != nil {
		return r.Err
	}

	switch {
	case quiet:
	case verbose:
		printConverted(env, r)
	default:
		fmt.Fprintf(env.Stdout, "Successfully converted to %s\n", r.OutputPath)
	}
	return nil
}

// printConverted prints the verbose line for a successful conversion.
func printConverted(env *Environment, r ConversionResult) {
	fmt.Fprintf(env.Stdout, "converted: %s -> %s (%v)\n", r.InputPath, r.OutputPath, r.Duration.Round(time.Millisecond))
}
