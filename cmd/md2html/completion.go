package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"

	md2html "github.com/alnah/go-md2html"
)

// Shell represents a supported shell for completion generation.
type Shell string

// Supported shells for completion.
const (
	ShellBash Shell = "bash"
	ShellZsh  Shell = "zsh"
	ShellFish Shell = "fish"
)

// ErrUnsupportedShell is returned when an unknown shell is requested.
var ErrUnsupportedShell = errors.New("unsupported shell")

// markdownGlobs are the file patterns offered for inputs.
var markdownGlobs = []string{"*.md", "*.markdown"}

// flagType represents the completion type for a flag.
type flagType int

const (
	flagString flagType = iota // default
	flagBool
	flagInt
	flagEnum // has predefined values
	flagFile // file with glob pattern
	flagDir  // directory
)

// flagDef describes a flag for completion purposes.
type flagDef struct {
	Long     string   // --output
	Short    string   // -o (empty if none)
	Type     flagType // completion type
	Desc     string   // help text
	Values   []string // for enum flags
	FileGlob string   // for file flags
}

// commandDef describes a command for completion.
type commandDef struct {
	Name       string
	Desc       string
	Flags      []flagDef
	TakesFiles bool // accepts markdown file arguments
}

// completionMeta holds completion-specific metadata for flags.
// Flag names, types, and descriptions come from the FlagSet.
type completionMeta struct {
	Values   func() []string // enum values
	FileGlob string          // file glob pattern
	IsDir    bool            // directory completion
}

// flagCompletionMeta maps flag names to their completion metadata.
var flagCompletionMeta = map[string]completionMeta{
	// Enum flags
	"engine":          {Values: md2html.Engines},
	"highlight-style": {Values: md2html.HighlightStyles},
	"style":           {Values: md2html.Styles},

	// File flags with glob patterns
	"config": {FileGlob: "*.yaml,*.yml"},

	// Directory flags
	"output":     {IsDir: true},
	"asset-path": {IsDir: true},
}

// buildConvertFlagSet creates a FlagSet with all convert command flags.
func buildConvertFlagSet() *flag.FlagSet {
	return newConvertFlagSet(&convertFlags{})
}

// extractFlagsFromFlagSet extracts flag definitions from a pflag.FlagSet.
// Enriches with completion metadata from flagCompletionMeta.
func extractFlagsFromFlagSet(fs *flag.FlagSet) []flagDef {
	var flags []flagDef

	fs.VisitAll(func(f *flag.Flag) {
		fd := flagDef{
			Long:  f.Name,
			Short: f.Shorthand,
			Desc:  f.Usage,
		}

		switch f.Value.Type() {
		case "bool":
			fd.Type = flagBool
		case "int", "int8", "int16", "int32", "int64", "uint", "uint8", "uint16", "uint32", "uint64":
			fd.Type = flagInt
		default:
			fd.Type = flagString
		}

		if meta, ok := flagCompletionMeta[f.Name]; ok {
			switch {
			case meta.Values != nil:
				fd.Type = flagEnum
				fd.Values = meta.Values()
			case meta.FileGlob != "":
				fd.Type = flagFile
				fd.FileGlob = meta.FileGlob
			case meta.IsDir:
				fd.Type = flagDir
			}
		}

		flags = append(flags, fd)
	})

	return flags
}

// getCommands returns the command registry for completion.
// Flags are extracted from the actual FlagSet - single source of truth.
func getCommands() []commandDef {
	return []commandDef{
		{
			Name:       cmdConvert,
			Desc:       "Convert markdown files to HTML",
			Flags:      extractFlagsFromFlagSet(buildConvertFlagSet()),
			TakesFiles: true,
		},
		{
			Name: cmdConfig,
			Desc: "Print the effective configuration",
			Flags: []flagDef{
				{Long: "config", Short: "c", Type: flagFile, Desc: "config file name or path", FileGlob: "*.yaml,*.yml"},
			},
		},
		{Name: cmdCompletion, Desc: "Generate shell completion script"},
		{Name: cmdVersion, Desc: "Show version information"},
		{Name: cmdHelp, Desc: "Show help for a command"},
	}
}

// GenerateCompletion writes shell completion script to w.
// Returns error if shell is unsupported or write fails.
func GenerateCompletion(w io.Writer, shell Shell) error {
	var b strings.Builder

	switch shell {
	case ShellBash:
		generateBash(&b)
	case ShellZsh:
		generateZsh(&b)
	case ShellFish:
		generateFish(&b)
	default:
		return fmt.Errorf("%w: %q (supported: bash, zsh, fish)", ErrUnsupportedShell, shell)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// runCompletion handles the completion command.
func runCompletion(args []string, env *Environment) error {
	if len(args) == 0 {
		printCompletionUsage(env.Stdout)
		return nil
	}

	return GenerateCompletion(env.Stdout, Shell(args[0]))
}

// printCompletionUsage prints help for the completion command.
func printCompletionUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2html completion <shell>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate shell completion script for the specified shell.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Supported shells:")
	fmt.Fprintln(w, "  bash        Bash completion script")
	fmt.Fprintln(w, "  zsh         Zsh completion script")
	fmt.Fprintln(w, "  fish        Fish completion script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Installation:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Bash:")
	fmt.Fprintln(w, "    # Add to ~/.bashrc:")
	fmt.Fprintln(w, "    eval \"$(md2html completion bash)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Zsh:")
	fmt.Fprintln(w, "    # Add to ~/.zshrc (before compinit):")
	fmt.Fprintln(w, "    eval \"$(md2html completion zsh)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Fish:")
	fmt.Fprintln(w, "    md2html completion fish > ~/.config/fish/completions/md2html.fish")
}

// commandNames returns the registered command names, space separated.
func commandNames(cmds []commandDef) string {
	names := make([]string, len(cmds))
	for i, c := range cmds {
		names[i] = c.Name
	}
	return strings.Join(names, " ")
}

// flagWords returns every spelling of the flags, space separated.
func flagWords(flags []flagDef) string {
	var words []string
	for _, f := range flags {
		words = append(words, "--"+f.Long)
		if f.Short != "" {
			words = append(words, "-"+f.Short)
		}
	}
	return strings.Join(words, " ")
}

// flagSpellings returns the case pattern matching a flag in bash.
func flagSpellings(f flagDef) string {
	if f.Short == "" {
		return "--" + f.Long
	}
	return "--" + f.Long + "|-" + f.Short
}

// generateBash writes a bash completion script.
func generateBash(b *strings.Builder) {
	cmds := getCommands()
	convert := cmds[0]

	b.WriteString("# bash completion for md2html\n")
	b.WriteString("_md2html() {\n")
	b.WriteString("    local cur prev\n")
	b.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n\n")

	b.WriteString("    case \"$prev\" in\n")
	for _, f := range convert.Flags {
		switch f.Type {
		case flagEnum:
			fmt.Fprintf(b, "        %s)\n            COMPREPLY=($(compgen -W %q -- \"$cur\"))\n            return ;;\n",
				flagSpellings(f), strings.Join(f.Values, " "))
		case flagFile:
			fmt.Fprintf(b, "        %s)\n            COMPREPLY=($(compgen -f -- \"$cur\"))\n            return ;;\n", flagSpellings(f))
		case flagDir:
			fmt.Fprintf(b, "        %s)\n            COMPREPLY=($(compgen -d -- \"$cur\"))\n            return ;;\n", flagSpellings(f))
		case flagString, flagInt:
			fmt.Fprintf(b, "        %s)\n            return ;;\n", flagSpellings(f))
		}
	}
	b.WriteString("    esac\n\n")

	b.WriteString("    if [[ \"$cur\" == -* ]]; then\n")
	fmt.Fprintf(b, "        COMPREPLY=($(compgen -W %q -- \"$cur\"))\n", flagWords(convert.Flags))
	b.WriteString("        return\n")
	b.WriteString("    fi\n\n")

	b.WriteString("    if [[ $COMP_CWORD -eq 1 ]]; then\n")
	fmt.Fprintf(b, "        COMPREPLY=($(compgen -W %q -- \"$cur\"))\n", commandNames(cmds))
	b.WriteString("    fi\n")
	b.WriteString("    COMPREPLY+=($(compgen -f -X '!*.@(md|markdown)' -- \"$cur\") $(compgen -d -- \"$cur\"))\n")
	b.WriteString("}\n")
	b.WriteString("shopt -s extglob\n")
	b.WriteString("complete -o filenames -F _md2html md2html\n")
}

// zshEscape escapes a description for use inside a zsh _arguments spec.
func zshEscape(s string) string {
	return strings.NewReplacer("'", `'\''`, "[", `\[`, "]", `\]`, ":", `\:`).Replace(s)
}

// zshAction returns the _arguments action for a flag's value.
func zshAction(f flagDef) string {
	switch f.Type {
	case flagEnum:
		return ":" + f.Long + ":(" + strings.Join(f.Values, " ") + ")"
	case flagFile:
		return ":file:_files -g \"" + strings.ReplaceAll(f.FileGlob, ",", " ") + "\""
	case flagDir:
		return ":path:_files"
	case flagBool:
		return ""
	default:
		return ":" + f.Long + ":"
	}
}

// generateZsh writes a zsh completion script.
func generateZsh(b *strings.Builder) {
	cmds := getCommands()
	convert := cmds[0]

	b.WriteString("#compdef md2html\n\n")
	b.WriteString("_md2html() {\n")
	b.WriteString("  local -a commands\n")
	b.WriteString("  commands=(\n")
	for _, c := range cmds {
		fmt.Fprintf(b, "    '%s:%s'\n", c.Name, zshEscape(c.Desc))
	}
	b.WriteString("  )\n\n")

	b.WriteString("  _arguments -s \\\n")
	for _, f := range convert.Flags {
		desc := zshEscape(f.Desc)
		if f.Short != "" {
			fmt.Fprintf(b, "    '(-%s --%s)'{-%s,--%s}'[%s]%s' \\\n", f.Short, f.Long, f.Short, f.Long, desc, zshAction(f))
		} else {
			fmt.Fprintf(b, "    '--%s[%s]%s' \\\n", f.Long, desc, zshAction(f))
		}
	}
	b.WriteString("    '1: :->first' \\\n")
	fmt.Fprintf(b, "    '*:markdown file:_files -g \"%s\"'\n\n", strings.Join(markdownGlobs, " "))

	b.WriteString("  case $state in\n")
	b.WriteString("    first)\n")
	b.WriteString("      _describe 'command' commands\n")
	fmt.Fprintf(b, "      _files -g \"%s\"\n", strings.Join(markdownGlobs, " "))
	b.WriteString("      ;;\n")
	b.WriteString("  esac\n")
	b.WriteString("}\n\n")
	b.WriteString("compdef _md2html md2html\n")
}

// generateFish writes a fish completion script.
func generateFish(b *strings.Builder) {
	cmds := getCommands()
	convert := cmds[0]

	b.WriteString("# fish completion for md2html\n")
	b.WriteString("complete -c md2html -f\n\n")

	for _, c := range cmds {
		fmt.Fprintf(b, "complete -c md2html -n __fish_use_subcommand -a %s -d %q\n", c.Name, c.Desc)
	}
	b.WriteString("\n")

	for _, f := range convert.Flags {
		line := "complete -c md2html -l " + f.Long
		if f.Short != "" {
			line += " -s " + f.Short
		}
		switch f.Type {
		case flagEnum:
			line += fmt.Sprintf(" -x -a %q", strings.Join(f.Values, " "))
		case flagFile:
			line += " -r -F"
		case flagDir:
			line += " -x -a \"(__fish_complete_directories)\""
		case flagString, flagInt:
			line += " -x"
		}
		line += fmt.Sprintf(" -d %q\n", f.Desc)
		b.WriteString(line)
	}
	b.WriteString("\n")

	fmt.Fprintf(b, "complete -c md2html -n \"not __fish_seen_subcommand_from %s %s %s %s\" -k -a \"(__fish_complete_suffix .md; __fish_complete_suffix .markdown)\"\n",
		cmdConfig, cmdCompletion, cmdVersion, cmdHelp)
	fmt.Fprintf(b, "complete -c md2html -n \"__fish_seen_subcommand_from %s\" -x -a \"%s %s %s\"\n",
		cmdCompletion, ShellBash, ShellZsh, ShellFish)
}
