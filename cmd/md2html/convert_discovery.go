package main

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/config"
	"github.com/alnah/go-md2html/internal/fileutil"
	"github.com/alnah/go-md2html/internal/hints"
)

// Sentinel errors for file discovery.
var (
	ErrInvalidWorkerCount = errors.New("invalid worker count")
)

// FileToConvert represents a single file to process.
type FileToConvert struct {
	InputPath  string
	OutputPath string
	Explicit   bool // named on the command line rather than found by walking
}

// discoverFiles expands inputs into files to convert.
// Directories are walked for Markdown files, mirroring their tree under
// outputDir. Other inputs are taken as given, existing or not, so that a
// missing file fails on its own without stopping the batch.
// output is the literal -o value and only applies to a single file input.
func discoverFiles(inputs []string, output, outputDir string) ([]FileToConvert, error) {
	var files []FileToConvert

	for _, input := range inputs {
		if fileutil.DirExists(input) {
			found, err := walkMarkdownDir(input, outputDir)
			if err != nil {
				return nil, err
			}
			if len(found) == 0 {
				return nil, fmt.Errorf("%w: no markdown files found in %s", ErrNoInput, input)
			}
			files = append(files, found...)
			continue
		}

		outPath := resolveOutputPath(input, outputDir, "")
		if output != "" {
			outPath = resolveExplicitOutput(input, output)
		}
		files = append(files, FileToConvert{InputPath: input, OutputPath: outPath, Explicit: true})
	}

	return files, nil
}

// walkMarkdownDir finds .md and .markdown files under dir, in lexical order.
func walkMarkdownDir(dir, outputDir string) ([]FileToConvert, error) {
	var files []FileToConvert
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() || !fileutil.HasMarkdownExtension(path) {
			return nil
		}
		outPath := resolveOutputPath(path, outputDir, dir)
		files = append(files, FileToConvert{InputPath: path, OutputPath: outPath})
		return nil
	})
	return files, err
}

// resolveOutputPath determines the HTML output path for a markdown file.
// With baseInputDir set, the path relative to it is kept under outputDir.
func resolveOutputPath(inputPath, outputDir, baseInputDir string) string {
	if outputDir == "" {
		return md2html.DefaultOutputPath(inputPath)
	}

	name := filepath.Base(md2html.DefaultOutputPath(inputPath))

	if baseInputDir != "" {
		relPath, err := filepath.Rel(baseInputDir, inputPath)
		if err == nil && !strings.HasPrefix(relPath, "..") {
			return filepath.Join(outputDir, filepath.Dir(relPath), name)
		}
	}

	return filepath.Join(outputDir, name)
}

// resolveExplicitOutput returns the -o target for a single input file:
// the path itself, or a file inside it when it is an existing directory.
func resolveExplicitOutput(inputPath, output string) string {
	if fileutil.DirExists(output) {
		return filepath.Join(output, filepath.Base(md2html.DefaultOutputPath(inputPath)))
	}
	return output
}

// warnNonMarkdown prints a warning for explicit inputs without a Markdown
// extension. The files are still converted.
func warnNonMarkdown(files []FileToConvert, env *Environment) {
	for _, f := range files {
		if !f.Explicit || fileutil.HasMarkdownExtension(f.InputPath) {
			continue
		}
		if !fileutil.FileExists(f.InputPath) {
			continue // reported as a conversion failure
		}
		fmt.Fprintf(env.Stderr, "warning: %s does not look like a Markdown file%s\n",
			f.InputPath, hints.ForExtension(f.InputPath))
	}
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)%s", ErrInvalidWorkerCount, n, hints.ForWorkers(config.MaxWorkers))
	}
	if n > config.MaxWorkers {
		return fmt.Errorf("%w: %d (maximum is %d)%s", ErrInvalidWorkerCount, n, config.MaxWorkers, hints.ForWorkers(config.MaxWorkers))
	}
	return nil
}
