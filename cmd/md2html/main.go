package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Command names.
const (
	cmdConvert    = "convert"
	cmdConfig     = "config"
	cmdCompletion = "completion"
	cmdVersion    = "version"
	cmdHelp       = "help"
)

func main() {
	env := DefaultEnv()
	configureMaxProcs(hasVerboseFlag(os.Args[1:]), env.Stderr)
	os.Exit(runMain(os.Args, env))
}

// configureMaxProcs sets GOMAXPROCS from the container CPU quota.
// The quota is reported on w only when verbose. Errors leave the runtime default.
func configureMaxProcs(verbose bool, w io.Writer) {
	if verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(w, format+"\n", args...)
		}))
		return
	}
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
}

// runMain dispatches args (including the program name) and returns the exit code.
// Any first argument that is not a command is an input for convert.
func runMain(args []string, env *Environment) int {
	warnUnknownEnvVars(env.Stderr)

	ctx, stop := notifyContext(context.Background())
	defer stop()

	if len(args) < 2 {
		return runBare(ctx, env)
	}

	cmd, rest := args[1], args[2:]
	if cmd == "-h" || cmd == "--help" {
		printUsage(env.Stdout)
		return ExitSuccess
	}
	if !isCommand(cmd) {
		cmd, rest = cmdConvert, args[1:]
	}

	var err error
	switch cmd {
	case cmdVersion:
		fmt.Fprintf(env.Stdout, "md2html %s\n", Version)
	case cmdHelp:
		err = runHelp(rest, env)
	case cmdCompletion:
		err = runCompletion(rest, env)
	case cmdConfig:
		err = runConfigCmd(rest, env)
	case cmdConvert:
		err = runConvertCmd(ctx, rest, env)
	}

	if err != nil {
		fmt.Fprintf(env.Stderr, "Error: %v\n", err)
	}
	return exitCodeFor(err)
}

// runBare handles an invocation without arguments: it converts
// input.defaultDir when one is configured and prints usage otherwise.
func runBare(ctx context.Context, env *Environment) int {
	if cfg, err := resolveConfig("", env); err == nil && cfg.Input.DefaultDir == "" {
		printUsage(env.Stderr)
		return ExitUsage
	}

	err := runConvertCmd(ctx, nil, env)
	if err != nil {
		fmt.Fprintf(env.Stderr, "Error: %v\n", err)
	}
	return exitCodeFor(err)
}

// isCommand reports whether name is a known command.
func isCommand(name string) bool {
	switch name {
	case cmdConvert, cmdConfig, cmdCompletion, cmdVersion, cmdHelp:
		return true
	}
	return false
}
