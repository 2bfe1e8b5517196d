package main

import (
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mgomes/sharkara/sharkara"
)

var (
	accentColor    = lipgloss.Color("#0EA5E9")
	successColor   = lipgloss.Color("#10B981")
	errorColor     = lipgloss.Color("#EF4444")
	mutedColor     = lipgloss.Color("#6B7280")
	highlightColor = lipgloss.Color("#F59E0B")

	promptStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true)

	resultStyle = lipgloss.NewStyle().
			Foreground(successColor)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor)

	mutedStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	headerStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true).
			Padding(0, 1)

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(highlightColor)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	borderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accentColor).
			Padding(0, 1)
)

type historyEntry struct {
	input  string
	tokens string
	output string
	isErr  bool
}

type replModel struct {
	textInput   textinput.Model
	config      sharkara.Config
	trace       *tracer
	vars        map[string]string
	history     []historyEntry
	cmdHistory  []string
	historyIdx  int
	width       int
	height      int
	showHelp    bool
	showVars    bool
	showTokens  bool
	showAST     bool
	quitting    bool
	initialized bool
}

type keyMap struct {
	Up    key.Binding
	Down  key.Binding
	Enter key.Binding
	CtrlC key.Binding
	CtrlD key.Binding
	CtrlL key.Binding
	Tab   key.Binding
	CtrlV key.Binding
	CtrlT key.Binding
	CtrlK key.Binding
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("↑", "previous input"),
	),
	Down: key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("↓", "next input"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "tokenize and parse"),
	),
	CtrlC: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
	CtrlD: key.NewBinding(
		key.WithKeys("ctrl+d"),
		key.WithHelp("ctrl+d", "quit"),
	),
	CtrlL: key.NewBinding(
		key.WithKeys("ctrl+l"),
		key.WithHelp("ctrl+l", "clear"),
	),
	Tab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "autocomplete"),
	),
	CtrlV: key.NewBinding(
		key.WithKeys("ctrl+v"),
		key.WithHelp("ctrl+v", "toggle vars"),
	),
	CtrlT: key.NewBinding(
		key.WithKeys("ctrl+t"),
		key.WithHelp("ctrl+t", "toggle tokens"),
	),
	CtrlK: key.NewBinding(
		key.WithKeys("ctrl+k"),
		key.WithHelp("ctrl+k", "toggle help"),
	),
}

func newREPLModel(s settings) replModel {
	ti := textinput.New()
	ti.Placeholder = "type a statement..."
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 60
	ti.PromptStyle = promptStyle
	ti.Prompt = s.Prompt

	return replModel{
		textInput:  ti,
		config:     s.Parser,
		trace:      newTracer(false, io.Discard),
		vars:       make(map[string]string),
		history:    make([]historyEntry, 0),
		cmdHistory: make([]string, 0),
		historyIdx: -1,
		showTokens: true,
		showAST:    true,
	}
}

func (m replModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tea.EnterAltScreen)
}

func (m replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.textInput.Width = msg.Width - 12
		m.initialized = true
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.CtrlC), key.Matches(msg, keys.CtrlD):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, keys.CtrlL):
			m.history = make([]historyEntry, 0)
			return m, nil

		case key.Matches(msg, keys.CtrlV):
			m.showVars = !m.showVars
			return m, nil

		case key.Matches(msg, keys.CtrlT):
			m.showTokens = !m.showTokens
			return m, nil

		case key.Matches(msg, keys.CtrlK):
			m.showHelp = !m.showHelp
			return m, nil

		case key.Matches(msg, keys.Up):
			if len(m.cmdHistory) > 0 {
				if m.historyIdx == -1 {
					m.historyIdx = len(m.cmdHistory) - 1
				} else if m.historyIdx > 0 {
					m.historyIdx--
				}
				m.textInput.SetValue(m.cmdHistory[m.historyIdx])
				m.textInput.CursorEnd()
			}
			return m, nil

		case key.Matches(msg, keys.Down):
			if m.historyIdx != -1 {
				if m.historyIdx < len(m.cmdHistory)-1 {
					m.historyIdx++
					m.textInput.SetValue(m.cmdHistory[m.historyIdx])
				} else {
					m.historyIdx = -1
					m.textInput.SetValue("")
				}
				m.textInput.CursorEnd()
			}
			return m, nil

		case key.Matches(msg, keys.Tab):
			m = m.handleAutocomplete()
			return m, nil

		case key.Matches(msg, keys.Enter):
			input := strings.TrimSpace(m.textInput.Value())
			if input == "" {
				return m, nil
			}

			switch {
			case strings.EqualFold(input, "exit"), strings.EqualFold(input, "quit"):
				m.quitting = true
				m.textInput.SetValue("")
				return m, tea.Quit
			case strings.HasPrefix(input, ":"):
				var cmd tea.Cmd
				m, cmd = m.handleCommand(input)
				m.textInput.SetValue("")
				m.historyIdx = -1
				return m, cmd
			}

			m.history = append(m.history, m.evaluate(input))
			m.cmdHistory = append(m.cmdHistory, input)
			m.textInput.SetValue("")
			m.historyIdx = -1
			return m, nil
		}
	}

	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m replModel) handleCommand(input string) (replModel, tea.Cmd) {
	parts := strings.Fields(input)
	cmd := parts[0]

	switch cmd {
	case ":help", ":h":
		m.showHelp = !m.showHelp
	case ":clear", ":c":
		m.history = make([]historyEntry, 0)
	case ":vars", ":v":
		m.showVars = !m.showVars
	case ":tokens", ":t":
		m.showTokens = !m.showTokens
	case ":ast", ":a":
		m.showAST = !m.showAST
	case ":strict":
		m.config.StrictKeywords = !m.config.StrictKeywords
		m.history = append(m.history, historyEntry{
			input:  input,
			output: fmt.Sprintf("Strict keywords %s", onOff(m.config.StrictKeywords)),
		})
	case ":binary":
		m.config.BinaryExpressions = !m.config.BinaryExpressions
		m.history = append(m.history, historyEntry{
			input:  input,
			output: fmt.Sprintf("Binary expressions %s", onOff(m.config.BinaryExpressions)),
		})
	case ":reset", ":r":
		m.vars = make(map[string]string)
		m.history = append(m.history, historyEntry{
			input:  input,
			output: "Variables reset",
		})
	case ":quit", ":q":
		m.quitting = true
		return m, tea.Quit
	default:
		m.history = append(m.history, historyEntry{
			input:  input,
			output: fmt.Sprintf("Unknown command: %s", cmd),
			isErr:  true,
		})
	}
	return m, nil
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

func (m replModel) handleAutocomplete() replModel {
	input := m.textInput.Value()
	words := strings.Fields(input)
	if len(words) == 0 || strings.HasSuffix(input, " ") {
		return m
	}
	lastWord := words[len(words)-1]

	var completions []string
	for _, candidate := range completionWords() {
		if strings.HasPrefix(candidate, lastWord) {
			completions = append(completions, candidate)
		}
	}
	for _, name := range sortedKeys(m.vars) {
		if strings.HasPrefix(name, lastWord) {
			completions = append(completions, name)
		}
	}

	if len(completions) == 1 {
		prefix := strings.TrimSuffix(input, lastWord)
		m.textInput.SetValue(prefix + completions[0])
		m.textInput.CursorEnd()
	} else if len(completions) > 1 {
		m.history = append(m.history, historyEntry{
			output: "Completions: " + strings.Join(completions, ", "),
		})
	}

	return m
}

// completionWords lists the keyword literals plus "if", which the tokenizer
// reads as an identifier and the parser treats as a statement keyword.
func completionWords() []string {
	words := []string{"if", "lst[]"}
	for _, kw := range sharkara.Keywords() {
		words = append(words, kw.Literal)
	}
	sort.Strings(words)
	return words
}

// evaluate tokenizes and parses one line, recording any top-level bindings.
func (m replModel) evaluate(input string) historyEntry {
	entry := historyEntry{input: input}

	tokens := sharkara.NewTokenizer(m.config).Tokenize(input)
	entry.tokens = strings.TrimRight(sharkara.FormatTokens(tokens), "\n")
	m.trace.Debug("tokenized %q: %d tokens", input, len(tokens))

	program, err := sharkara.NewParser(m.config).Parse(input)
	if err != nil {
		m.trace.Error("parse %q: %v", input, err)
		entry.output = err.Error()
		entry.isErr = true
		return entry
	}
	m.trace.Debug("parsed %d statement(s)", len(program.Statements))

	m.recordBindings(program)
	entry.output = strings.TrimRight(sharkara.Dump(program), "\n")
	return entry
}

func (m replModel) recordBindings(program *sharkara.Program) {
	for _, stmt := range program.Statements {
		switch s := stmt.(type) {
		case *sharkara.VarDecl:
			m.vars[s.Name.Text] = expressionText(s.Value)
		case *sharkara.AssignStmt:
			m.vars[s.Variable.Text] = expressionText(s.Value)
		}
	}
}

func expressionText(expr sharkara.Expression) string {
	switch e := expr.(type) {
	case *sharkara.Expr:
		return e.Token.Text
	case *sharkara.ListLiteral:
		elems := make([]string, len(e.Elements))
		for i, elem := range e.Elements {
			elems[i] = expressionText(elem)
		}
		return "lst[](" + strings.Join(elems, ", ") + ")"
	case *sharkara.BinaryExpr:
		return expressionText(e.Left) + " " + e.Operator.Text + " " + expressionText(e.Right)
	default:
		return "?"
	}
}

func (m replModel) View() string {
	if !m.initialized {
		return "Loading..."
	}

	if m.quitting {
		return mutedStyle.Render("Exiting Sharkara Terminal.\n")
	}

	var b strings.Builder

	header := headerStyle.Render("Sharkara Terminal")
	b.WriteString(header + " " + mutedStyle.Render(modeLabel(m.config)) + "\n")
	b.WriteString(mutedStyle.Render(strings.Repeat("─", max(0, min(m.width-2, 60)))) + "\n\n")

	var lines []string
	for _, entry := range m.history {
		if entry.input != "" {
			lines = append(lines, mutedStyle.Render("  › ")+entry.input)
		}
		if m.showTokens && entry.tokens != "" {
			lines = append(lines, "  "+mutedStyle.Render("Lexer Output:"))
			for _, line := range strings.Split(entry.tokens, "\n") {
				lines = append(lines, "    "+mutedStyle.Render(line))
			}
		}
		switch {
		case entry.isErr:
			for _, line := range strings.Split(entry.output, "\n") {
				lines = append(lines, "  "+errorStyle.Render(line))
			}
		case m.showAST || entry.tokens == "":
			if entry.tokens != "" {
				lines = append(lines, "  "+mutedStyle.Render("Parser Output:"))
			}
			for _, line := range strings.Split(entry.output, "\n") {
				lines = append(lines, "  "+resultStyle.Render(line))
			}
		}
		lines = append(lines, "")
	}

	reservedLines := 8
	if m.showHelp {
		reservedLines += 14
	}
	if m.showVars {
		reservedLines += len(m.vars) + 3
	}
	availableHeight := max(m.height-reservedLines, 0)
	if len(lines) > availableHeight {
		lines = lines[len(lines)-availableHeight:]
	}
	for _, line := range lines {
		b.WriteString(line + "\n")
	}

	if m.showVars {
		b.WriteString(renderVarsPanel(m.vars))
		b.WriteString("\n")
	}

	if m.showHelp {
		b.WriteString(renderHelpPanel())
		b.WriteString("\n")
	}

	b.WriteString(m.textInput.View() + "\n\n")

	footer := helpKeyStyle.Render("ctrl+k") + helpDescStyle.Render(" help  ") +
		helpKeyStyle.Render("ctrl+t") + helpDescStyle.Render(" tokens  ") +
		helpKeyStyle.Render("ctrl+v") + helpDescStyle.Render(" vars  ") +
		helpKeyStyle.Render("ctrl+l") + helpDescStyle.Render(" clear  ") +
		helpKeyStyle.Render("ctrl+c") + helpDescStyle.Render(" quit")
	b.WriteString(footer)

	return b.String()
}

func modeLabel(cfg sharkara.Config) string {
	var modes []string
	if cfg.StrictKeywords {
		modes = append(modes, "strict")
	}
	if cfg.BinaryExpressions {
		modes = append(modes, "binary")
	}
	if len(modes) == 0 {
		return "default"
	}
	return strings.Join(modes, "+")
}

func renderVarsPanel(vars map[string]string) string {
	if len(vars) == 0 {
		return borderStyle.Render(mutedStyle.Render("No variables bound"))
	}

	var lines []string
	lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(accentColor).Render("Variables"))
	varNameStyle := lipgloss.NewStyle().Foreground(highlightColor)
	for _, name := range sortedKeys(vars) {
		lines = append(lines, fmt.Sprintf("  %s = %s", varNameStyle.Render(name), vars[name]))
	}
	return borderStyle.Render(strings.Join(lines, "\n"))
}

func renderHelpPanel() string {
	help := []struct {
		key  string
		desc string
	}{
		{"↑/↓", "Navigate input history"},
		{"Tab", "Autocomplete"},
		{"Enter", "Tokenize and parse"},
		{":help", "Toggle this help"},
		{":tokens", "Toggle lexer output"},
		{":ast", "Toggle parser output"},
		{":vars", "Toggle variables panel"},
		{":strict", "Toggle strict keywords"},
		{":binary", "Toggle binary expressions"},
		{":clear", "Clear history"},
		{":reset", "Forget variables"},
		{"exit", "Exit the terminal"},
	}

	var lines []string
	lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(accentColor).Render("Help"))
	for _, h := range help {
		line := fmt.Sprintf("  %s  %s",
			helpKeyStyle.Render(fmt.Sprintf("%-8s", h.key)),
			helpDescStyle.Render(h.desc))
		lines = append(lines, line)
	}

	return borderStyle.Render(strings.Join(lines, "\n"))
}

func sortedKeys(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func replCommand(args []string) error {
	fs := flag.NewFlagSet("repl", flag.ContinueOnError)
	fs.SetOutput(new(flagErrorSink))
	cf := registerCommonFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	s, err := cf.resolve()
	if err != nil {
		return err
	}
	return runREPL(s)
}

// replTraceFile receives -trace output; the alternate screen owns the terminal.
const replTraceFile = "sharkara-trace.log"

func runREPL(s settings) error {
	m := newREPLModel(s)
	if s.Trace {
		f, err := tea.LogToFile(replTraceFile, "")
		if err != nil {
			return fmt.Errorf("open trace log: %w", err)
		}
		defer f.Close()
		m.trace = newTracer(true, f)
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
