package sharkara

import (
	"strings"
	"testing"
)

func TestLintKeywordInsideIdentifier(t *testing.T) {
	tokens := Tokenize("forest = 1")
	warnings := Lint(tokens, nil)
	if len(warnings) != 1 {
		t.Fatalf("expected 1 warning, got %v", warnings)
	}
	if warnings[0].Message != `keyword "for" matched inside "forest"` {
		t.Fatalf("unexpected warning %q", warnings[0].Message)
	}
	if warnings[0].Pos.Offset != 0 {
		t.Fatalf("unexpected warning position %+v", warnings[0].Pos)
	}
}

func TestLintKeywordGluedToKeyword(t *testing.T) {
	tests := []struct {
		source string
		want   []string
	}{
		{"forfor x esac", []string{`keyword "for" matched inside "forfor"`}},
		{"varclass", []string{`keyword "var" matched inside "varclass"`}},
		{"for#int", nil},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			warnings := Lint(Tokenize(tt.source), nil)
			if len(warnings) != len(tt.want) {
				t.Fatalf("expected %d warnings, got %v", len(tt.want), warnings)
			}
			for i, msg := range tt.want {
				if warnings[i].Message != msg {
					t.Fatalf("warning %d: expected %q, got %q", i, msg, warnings[i].Message)
				}
			}
		})
	}
}

func TestLintIgnoresSeparatedKeywords(t *testing.T) {
	tokens := Tokenize("for est esac func.easy()x { }")
	for _, w := range Lint(tokens, nil) {
		if strings.Contains(w.Message, "matched inside") {
			t.Fatalf("unexpected keyword split warning: %q", w.Message)
		}
	}
}

func TestLintProgramFindings(t *testing.T) {
	source := `var x = 1
var x = 2
for i esac
class Empty { }
func.easy() run {
  var y = 1
  y = 2
}`
	tokens := Tokenize(source)
	program, err := ParseTokens(tokens)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	warnings := Lint(tokens, program)
	want := []string{
		`variable "x" already declared in this block`,
		"empty for loop body",
		`class "Empty" has an empty body`,
	}
	if len(warnings) != len(want) {
		t.Fatalf("expected %d warnings, got %v", len(want), warnings)
	}
	for i, msg := range want {
		if warnings[i].Message != msg {
			t.Fatalf("warning %d: expected %q, got %q", i, msg, warnings[i].Message)
		}
	}
	if warnings[0].Pos.Line != 2 {
		t.Fatalf("expected duplicate declaration on line 2, got %+v", warnings[0].Pos)
	}
}
