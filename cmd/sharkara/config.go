package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/mgomes/sharkara/sharkara"
)

const defaultPrompt = "Sharkara> "

type settings struct {
	Parser sharkara.Config
	Prompt string
	Trace  bool
}

func defaultSettings() settings {
	return settings{Prompt: defaultPrompt}
}

// fileSettings mirrors the on-disk layout:
//
//	strict_keywords = true
//	binary_expressions = false
//	max_nesting = 128
//	trace = false
//
//	[repl]
//	prompt = "shk> "
type fileSettings struct {
	StrictKeywords    bool `toml:"strict_keywords" yaml:"strict_keywords"`
	BinaryExpressions bool `toml:"binary_expressions" yaml:"binary_expressions"`
	MaxNesting        int  `toml:"max_nesting" yaml:"max_nesting"`
	Trace             bool `toml:"trace" yaml:"trace"`
	REPL              struct {
		Prompt string `toml:"prompt" yaml:"prompt"`
	} `toml:"repl" yaml:"repl"`
}

func loadSettings(path string) (settings, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return settings{}, fmt.Errorf("read config: %w", err)
	}

	var raw fileSettings
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err := toml.Unmarshal(content, &raw); err != nil {
			return settings{}, fmt.Errorf("parse TOML config %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, &raw); err != nil {
			return settings{}, fmt.Errorf("parse YAML config %s: %w", path, err)
		}
	default:
		return settings{}, fmt.Errorf("unsupported config format %q (want .toml, .yaml or .yml)", ext)
	}

	if raw.MaxNesting < 0 {
		return settings{}, fmt.Errorf("config %s: max_nesting must not be negative", path)
	}

	s := defaultSettings()
	s.Parser = sharkara.Config{
		StrictKeywords:    raw.StrictKeywords,
		BinaryExpressions: raw.BinaryExpressions,
		MaxNesting:        raw.MaxNesting,
	}
	s.Trace = raw.Trace
	if raw.REPL.Prompt != "" {
		s.Prompt = raw.REPL.Prompt
	}
	return s, nil
}
