package main

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestUpdateQuitCommandReturnsQuit(t *testing.T) {
	for _, input := range []string{":quit", "exit", "QUIT"} {
		m := newREPLModel(defaultSettings())
		m.textInput.SetValue(input)

		model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		rm, ok := model.(replModel)
		if !ok {
			t.Fatalf("unexpected model type %T", model)
		}

		if !rm.quitting {
			t.Fatalf("%q: quitting flag not set", input)
		}
		if rm.textInput.Value() != "" {
			t.Fatalf("%q: input not cleared after quit", input)
		}
		if cmd == nil {
			t.Fatalf("%q: expected tea.Quit command", input)
		}
		if msg := cmd(); msg != nil {
			if _, ok := msg.(tea.QuitMsg); !ok {
				t.Fatalf("expected QuitMsg, got %T", msg)
			}
		}
	}
}

func TestUpdateNonQuitCommandDoesNotReturnCmd(t *testing.T) {
	m := newREPLModel(defaultSettings())
	m.textInput.SetValue(":help")

	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	rm, ok := model.(replModel)
	if !ok {
		t.Fatalf("unexpected model type %T", model)
	}

	if cmd != nil {
		t.Fatalf("expected no command for non-quit input")
	}
	if rm.quitting {
		t.Fatalf("quitting should remain false")
	}
	if !rm.showHelp {
		t.Fatalf("help toggle should be enabled")
	}
	if rm.textInput.Value() != "" {
		t.Fatalf("input not cleared after command")
	}
}

func TestUpdateEnterRecordsLexerAndParserOutput(t *testing.T) {
	m := newREPLModel(defaultSettings())
	m.textInput.SetValue("var x #int = 10")

	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	rm := model.(replModel)

	if len(rm.history) != 1 {
		t.Fatalf("expected 1 history entry, got %d", len(rm.history))
	}
	entry := rm.history[0]
	if entry.isErr {
		t.Fatalf("unexpected error output: %s", entry.output)
	}
	if !strings.Contains(entry.tokens, `Token(Integer, "#int")`) {
		t.Fatalf("missing lexer output: %q", entry.tokens)
	}
	if !strings.Contains(entry.output, "VarDecl x #int") {
		t.Fatalf("missing parser output: %q", entry.output)
	}
	if rm.vars["x"] != "10" {
		t.Fatalf("expected x to be bound, got %#v", rm.vars)
	}
	if len(rm.cmdHistory) != 1 || rm.cmdHistory[0] != "var x #int = 10" {
		t.Fatalf("unexpected command history %v", rm.cmdHistory)
	}
}

func TestEvaluateReportsSyntaxError(t *testing.T) {
	m := newREPLModel(defaultSettings())

	entry := m.evaluate("=")
	if !entry.isErr {
		t.Fatalf("expected error entry")
	}
	if !strings.Contains(entry.output, `unexpected token Symbol "="`) {
		t.Fatalf("unexpected error output: %q", entry.output)
	}
	if len(m.vars) != 0 {
		t.Fatalf("failed parse must not bind variables: %#v", m.vars)
	}
}

func TestStrictCommandChangesTokenization(t *testing.T) {
	m := newREPLModel(defaultSettings())
	m, _ = m.handleCommand(":strict")
	if !m.config.StrictKeywords {
		t.Fatalf("strict keywords not enabled")
	}

	entry := m.evaluate("forest = 1")
	if entry.isErr {
		t.Fatalf("unexpected error: %s", entry.output)
	}
	if m.vars["forest"] != "1" {
		t.Fatalf("expected forest binding, got %#v", m.vars)
	}
}

func TestAutocompleteSingleKeyword(t *testing.T) {
	m := newREPLModel(defaultSettings())
	m.textInput.SetValue("whi")

	m = m.handleAutocomplete()
	if got := m.textInput.Value(); got != "while" {
		t.Fatalf("expected completion to while, got %q", got)
	}
}

func TestAutocompleteListsAmbiguousMatches(t *testing.T) {
	m := newREPLModel(defaultSettings())
	m.textInput.SetValue("x = chad")

	m = m.handleAutocomplete()
	if len(m.history) != 1 {
		t.Fatalf("expected completion listing, got %d entries", len(m.history))
	}
	if got := m.history[0].output; got != "Completions: chad.0, chad.math" {
		t.Fatalf("unexpected completions %q", got)
	}
}

func TestViewRendersHistory(t *testing.T) {
	m := newREPLModel(defaultSettings())
	model, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 60})
	m = model.(replModel)
	m.history = append(m.history, m.evaluate("x = 1"))

	view := m.View()
	for _, want := range []string{"Sharkara Terminal", "Lexer Output:", "Parser Output:", "Assign x"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
}

func TestEvaluateWritesTrace(t *testing.T) {
	m := newREPLModel(defaultSettings())
	var buf strings.Builder
	m.trace = newTracer(true, &buf)

	m.evaluate("x = 10")
	m.evaluate("x 10")

	out := buf.String()
	for _, want := range []string{
		`DEBUG: tokenized "x = 10": 4 tokens`,
		"DEBUG: parsed 1 statement(s)",
		`ERROR: parse "x 10"`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("trace missing %q:\n%s", want, out)
		}
	}
}

func TestEvaluateWithoutTraceIsQuiet(t *testing.T) {
	m := newREPLModel(defaultSettings())
	entry := m.evaluate("x = 10")
	if entry.isErr {
		t.Fatalf("unexpected error entry: %+v", entry)
	}
}
