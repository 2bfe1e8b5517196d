package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mgomes/sharkara/sharkara"
)

func main() {
	if err := runCLI(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runCLI(args []string) error {
	if len(args) < 2 {
		return usageError()
	}
	switch args[1] {
	case "tokens":
		return tokensCommand(args[2:])
	case "parse":
		return parseCommand(args[2:])
	case "check":
		return checkCommand(args[2:])
	case "analyze":
		return analyzeCommand(args[2:])
	case "fmt":
		return fmtCommand(args[2:])
	case "repl":
		return replCommand(args[2:])
	case "lsp":
		return lspCommand(args[2:])
	case "help", "-h", "--help":
		printUsage()
		return nil
	default:
		return usageError()
	}
}

// commonFlags are accepted by every subcommand that tokenizes or parses.
type commonFlags struct {
	fs         *flag.FlagSet
	configPath string
	strict     bool
	binary     bool
	trace      bool
}

func registerCommonFlags(fs *flag.FlagSet) *commonFlags {
	cf := &commonFlags{fs: fs}
	fs.StringVar(&cf.configPath, "config", "", "load settings from a TOML or YAML file")
	fs.BoolVar(&cf.strict, "strict", false, "require a word boundary after keyword literals")
	fs.BoolVar(&cf.binary, "binary", false, "parse arithmetic operators into binary expression trees")
	fs.BoolVar(&cf.trace, "trace", false, "log pipeline steps to stderr")
	return cf
}

// resolve merges the config file (if any) with flags set on the command line.
// Only explicitly set flags override the file, so -strict=false can turn a
// file setting off.
func (cf *commonFlags) resolve() (settings, error) {
	s := defaultSettings()
	if cf.configPath != "" {
		loaded, err := loadSettings(cf.configPath)
		if err != nil {
			return settings{}, err
		}
		s = loaded
	}
	cf.fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "strict":
			s.Parser.StrictKeywords = cf.strict
		case "binary":
			s.Parser.BinaryExpressions = cf.binary
		case "trace":
			s.Trace = cf.trace
		}
	})
	return s, nil
}

func tokensCommand(args []string) error {
	fs := flag.NewFlagSet("tokens", flag.ContinueOnError)
	fs.SetOutput(new(flagErrorSink))
	cf := registerCommonFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	s, err := cf.resolve()
	if err != nil {
		return err
	}
	path, source, err := readScriptArg(fs.Args(), "tokens")
	if err != nil {
		return err
	}

	log := newTracer(s.Trace, os.Stderr)
	tokens := sharkara.NewTokenizer(s.Parser).Tokenize(source)
	log.Debug("tokenized %s: %d tokens", path, len(tokens))
	fmt.Print(sharkara.FormatTokens(tokens))
	return nil
}

func parseCommand(args []string) error {
	fs := flag.NewFlagSet("parse", flag.ContinueOnError)
	fs.SetOutput(new(flagErrorSink))
	cf := registerCommonFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	s, err := cf.resolve()
	if err != nil {
		return err
	}
	path, source, err := readScriptArg(fs.Args(), "parse")
	if err != nil {
		return err
	}

	log := newTracer(s.Trace, os.Stderr)
	program, err := sharkara.NewParser(s.Parser).Parse(source)
	if err != nil {
		log.Error("parse %s: %v", path, err)
		return fmt.Errorf("parse failed: %w", err)
	}
	log.Debug("parsed %s: %d top-level statements", path, len(program.Statements))
	fmt.Print(sharkara.Dump(program))
	fmt.Println("Parsing completed.")
	return nil
}

func checkCommand(args []string) error {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.SetOutput(new(flagErrorSink))
	cf := registerCommonFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	s, err := cf.resolve()
	if err != nil {
		return err
	}
	path, source, err := readScriptArg(fs.Args(), "check")
	if err != nil {
		return err
	}

	if _, err := sharkara.NewParser(s.Parser).Parse(source); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	newTracer(s.Trace, os.Stderr).Info("%s: ok", path)
	return nil
}

func readScriptArg(remaining []string, command string) (string, string, error) {
	if len(remaining) == 0 {
		return "", "", fmt.Errorf("sharkara %s: script path required", command)
	}
	absPath, err := filepath.Abs(remaining[0])
	if err != nil {
		return "", "", fmt.Errorf("resolve script path: %w", err)
	}
	input, err := os.ReadFile(absPath)
	if err != nil {
		return "", "", fmt.Errorf("read script: %w", err)
	}
	return absPath, string(input), nil
}

func usageError() error {
	printUsage()
	return errors.New("invalid command")
}

func printUsage() {
	prog := filepath.Base(os.Args[0])
	fmt.Fprintf(os.Stderr, "Usage: %s <command> [flags] [args...]\n", prog)
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  tokens <script>     print the token sequence")
	fmt.Fprintln(os.Stderr, "  parse <script>      print the syntax tree")
	fmt.Fprintln(os.Stderr, "  check <script>      report syntax errors only")
	fmt.Fprintln(os.Stderr, "  analyze <script>    report suspicious constructs")
	fmt.Fprintln(os.Stderr, "  fmt [-w] [-check] <path...>")
	fmt.Fprintln(os.Stderr, "  repl                start the interactive terminal")
	fmt.Fprintln(os.Stderr, "  lsp                 serve the language server protocol on stdio")
	fmt.Fprintln(os.Stderr, "Flags:")
	fmt.Fprintln(os.Stderr, "  -config <file>")
	fmt.Fprintln(os.Stderr, "    load settings from a .toml, .yaml or .yml file")
	fmt.Fprintln(os.Stderr, "  -strict")
	fmt.Fprintln(os.Stderr, "    require a word boundary after keyword literals")
	fmt.Fprintln(os.Stderr, "  -binary")
	fmt.Fprintln(os.Stderr, "    parse arithmetic into binary expression trees")
	fmt.Fprintln(os.Stderr, "  -trace")
	fmt.Fprintln(os.Stderr, "    log pipeline steps to stderr (repl: sharkara-trace.log)")
}

type flagErrorSink struct{}

func (flagErrorSink) Write(p []byte) (int, error) {
	return len(p), nil
}
