package main

import (
	"io"
	"os"
	"time"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/config"
)

// Environment holds injectable dependencies for testability.
// Includes I/O, time, configuration, and asset loading.
type Environment struct {
	Now         func() time.Time
	Stdout      io.Writer
	Stderr      io.Writer
	AssetLoader md2html.AssetLoader // used when no asset path is configured
	Config      *config.Config      // base config when no file is given
}

// DefaultEnv returns production environment with embedded assets.
func DefaultEnv() *Environment {
	// An empty base path selects the embedded assets and cannot fail.
	loader, _ := md2html.NewAssetLoader("")

	return &Environment{
		Now:         time.Now,
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		AssetLoader: loader,
		Config:      config.DefaultConfig(),
	}
}

// baseConfig returns a copy of the environment config, or the defaults.
func (e *Environment) baseConfig() *config.Config {
	if e.Config == nil {
		return config.DefaultConfig()
	}
	cfg := *e.Config
	return &cfg
}
