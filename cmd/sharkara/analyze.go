package main

import (
	"flag"
	"fmt"

	"github.com/mgomes/sharkara/sharkara"
)

func analyzeCommand(args []string) error {
	fs := flag.NewFlagSet("analyze", flag.ContinueOnError)
	fs.SetOutput(new(flagErrorSink))
	cf := registerCommonFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	s, err := cf.resolve()
	if err != nil {
		return err
	}
	scriptPath, source, err := readScriptArg(fs.Args(), "analyze")
	if err != nil {
		return err
	}

	tokens := sharkara.NewTokenizer(s.Parser).Tokenize(source)
	program, parseErr := sharkara.NewParser(s.Parser).Parse(source)

	// Keyword splits often explain a parse failure, so they are reported
	// even when parsing stops early.
	warnings := sharkara.Lint(tokens, program)
	printWarnings(scriptPath, warnings)

	if parseErr != nil {
		return fmt.Errorf("analysis parse failed: %w", parseErr)
	}
	if len(warnings) == 0 {
		fmt.Println("No issues found")
		return nil
	}
	return fmt.Errorf("analysis found %d issue(s)", len(warnings))
}

func printWarnings(path string, warnings []sharkara.Warning) {
	for _, warning := range warnings {
		line := warning.Pos.Line
		column := warning.Pos.Column
		if line <= 0 {
			line = 1
		}
		if column <= 0 {
			column = 1
		}
		fmt.Printf("%s:%d:%d: %s\n", path, line, column, warning.Message)
	}
}
