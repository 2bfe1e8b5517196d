package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/mgomes/sharkara/sharkara"
)

const (
	severityError   = 1
	severityWarning = 2
)

type lspInboundMessage struct {
	JSONRPC string           `json:"jsonrpc"`
	ID      *json.RawMessage `json:"id,omitempty"`
	Method  string           `json:"method,omitempty"`
	Params  json.RawMessage  `json:"params,omitempty"`
}

type lspResponseError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type lspOutboundMessage struct {
	JSONRPC string            `json:"jsonrpc"`
	ID      *json.RawMessage  `json:"id,omitempty"`
	Method  string            `json:"method,omitempty"`
	Params  any               `json:"params,omitempty"`
	Result  any               `json:"result,omitempty"`
	Error   *lspResponseError `json:"error,omitempty"`
}

type lspDidOpenParams struct {
	TextDocument struct {
		URI  string `json:"uri"`
		Text string `json:"text"`
	} `json:"textDocument"`
}

type lspDidChangeParams struct {
	TextDocument struct {
		URI string `json:"uri"`
	} `json:"textDocument"`
	ContentChanges []struct {
		Text string `json:"text"`
	} `json:"contentChanges"`
}

type lspTextDocumentPositionParams struct {
	TextDocument struct {
		URI string `json:"uri"`
	} `json:"textDocument"`
	Position struct {
		Line      int `json:"line"`
		Character int `json:"character"`
	} `json:"position"`
}

type lspServer struct {
	reader *bufio.Reader
	writer *bufio.Writer
	config sharkara.Config
	docs   map[string]string
	log    *tracer
}

func lspCommand(args []string) error {
	fs := flag.NewFlagSet("lsp", flag.ContinueOnError)
	fs.SetOutput(new(flagErrorSink))
	cf := registerCommonFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	s, err := cf.resolve()
	if err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("sharkara lsp: unexpected argument %q", fs.Arg(0))
	}
	return runLSP(s)
}

func runLSP(s settings) error {
	server := newLSPServer(s.Parser, os.Stdin, os.Stdout)
	server.log = newTracer(s.Trace, os.Stderr)
	return server.serve()
}

func newLSPServer(cfg sharkara.Config, r io.Reader, w io.Writer) *lspServer {
	return &lspServer{
		reader: bufio.NewReader(r),
		writer: bufio.NewWriter(w),
		config: cfg,
		docs:   make(map[string]string),
		log:    newTracer(false, io.Discard),
	}
}

func (s *lspServer) serve() error {
	for {
		payload, err := s.readPayload()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}

		var incoming lspInboundMessage
		if err := json.Unmarshal(payload, &incoming); err != nil {
			continue
		}

		messages := s.handleMessage(incoming)
		for _, msg := range messages {
			if err := s.writePayload(msg); err != nil {
				return err
			}
		}

		if incoming.Method == "exit" {
			return nil
		}
	}
}

func (s *lspServer) handleMessage(incoming lspInboundMessage) []lspOutboundMessage {
	switch incoming.Method {
	case "initialize":
		return []lspOutboundMessage{
			{
				JSONRPC: "2.0",
				ID:      incoming.ID,
				Result: map[string]any{
					"capabilities": map[string]any{
						"textDocumentSync": 1,
						"hoverProvider":    true,
						"completionProvider": map[string]any{
							"resolveProvider": false,
						},
					},
				},
			},
		}
	case "initialized", "exit":
		return nil
	case "shutdown":
		if incoming.ID == nil {
			return nil
		}
		return []lspOutboundMessage{{JSONRPC: "2.0", ID: incoming.ID, Result: nil}}
	case "textDocument/didOpen":
		var params lspDidOpenParams
		if err := json.Unmarshal(incoming.Params, &params); err != nil {
			return nil
		}
		s.docs[params.TextDocument.URI] = params.TextDocument.Text
		return []lspOutboundMessage{
			s.publishDiagnostics(params.TextDocument.URI, params.TextDocument.Text),
		}
	case "textDocument/didChange":
		var params lspDidChangeParams
		if err := json.Unmarshal(incoming.Params, &params); err != nil {
			return nil
		}
		if len(params.ContentChanges) == 0 {
			return nil
		}
		latest := params.ContentChanges[len(params.ContentChanges)-1].Text
		s.docs[params.TextDocument.URI] = latest
		return []lspOutboundMessage{
			s.publishDiagnostics(params.TextDocument.URI, latest),
		}
	case "textDocument/completion":
		if incoming.ID == nil {
			return nil
		}
		return []lspOutboundMessage{
			{
				JSONRPC: "2.0",
				ID:      incoming.ID,
				Result: map[string]any{
					"isIncomplete": false,
					"items":        completionItems(),
				},
			},
		}
	case "textDocument/hover":
		if incoming.ID == nil {
			return nil
		}
		var params lspTextDocumentPositionParams
		if err := json.Unmarshal(incoming.Params, &params); err != nil {
			return []lspOutboundMessage{
				{
					JSONRPC: "2.0",
					ID:      incoming.ID,
					Error:   &lspResponseError{Code: -32602, Message: "invalid hover params"},
				},
			}
		}
		source := s.docs[params.TextDocument.URI]
		tokens := sharkara.NewTokenizer(s.config).Tokenize(source)
		tok, ok := tokenAtPosition(tokens, params.Position.Line, params.Position.Character)
		if !ok {
			return []lspOutboundMessage{
				{JSONRPC: "2.0", ID: incoming.ID, Result: nil},
			}
		}
		return []lspOutboundMessage{
			{
				JSONRPC: "2.0",
				ID:      incoming.ID,
				Result: map[string]any{
					"contents": map[string]any{
						"kind":  "markdown",
						"value": fmt.Sprintf("`%s`\n\nSharkara %s", tok.Text, tok.Kind),
					},
				},
			},
		}
	default:
		if incoming.ID == nil {
			return nil
		}
		return []lspOutboundMessage{
			{
				JSONRPC: "2.0",
				ID:      incoming.ID,
				Error: &lspResponseError{
					Code:    -32601,
					Message: "method not found",
				},
			},
		}
	}
}

func (s *lspServer) publishDiagnostics(uri, source string) lspOutboundMessage {
	diags := diagnosticsForSource(s.config, source)
	s.log.Debug("publish %d diagnostic(s) for %s", len(diags), uri)
	return lspOutboundMessage{
		JSONRPC: "2.0",
		Method:  "textDocument/publishDiagnostics",
		Params: map[string]any{
			"uri":         uri,
			"diagnostics": diags,
		},
	}
}

// diagnosticsForSource reports the first syntax error, if any, followed by
// lint warnings.
func diagnosticsForSource(cfg sharkara.Config, source string) []map[string]any {
	out := []map[string]any{}

	tokens := sharkara.NewTokenizer(cfg).Tokenize(source)
	program, err := sharkara.NewParser(cfg).ParseTokens(tokens)
	if err != nil {
		var syntaxErr *sharkara.SyntaxError
		if errors.As(err, &syntaxErr) {
			pos := syntaxErr.Pos()
			out = append(out, newDiagnostic(max(0, pos.Line-1), max(0, pos.Column-1), tokenWidth(syntaxErr.Token), severityError, syntaxErr.Msg))
		} else {
			out = append(out, newDiagnostic(0, 0, 1, severityError, err.Error()))
		}
	}

	for _, warning := range sharkara.Lint(tokens, program) {
		out = append(out, newDiagnostic(max(0, warning.Pos.Line-1), max(0, warning.Pos.Column-1), 1, severityWarning, warning.Message))
	}
	return out
}

func tokenWidth(tok sharkara.Token) int {
	return max(1, len([]rune(tok.Text)))
}

func newDiagnostic(line, character, width, severity int, message string) map[string]any {
	return map[string]any{
		"range": map[string]any{
			"start": map[string]any{
				"line":      line,
				"character": character,
			},
			"end": map[string]any{
				"line":      line,
				"character": character + width,
			},
		},
		"severity": severity,
		"source":   "sharkara-lsp",
		"message":  message,
	}
}

func completionItems() []map[string]any {
	details := map[string]string{
		"if":    "statement keyword",
		"lst[]": string(sharkara.KindList),
	}
	for _, kw := range sharkara.Keywords() {
		details[kw.Literal] = string(kw.Kind)
	}

	labels := make([]string, 0, len(details))
	for label := range details {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	items := make([]map[string]any, 0, len(labels))
	for _, label := range labels {
		items = append(items, map[string]any{
			"label":  label,
			"kind":   14, // Keyword
			"detail": details[label],
		})
	}
	return items
}

// tokenAtPosition finds the token covering a zero-based line and character.
// Characters are counted in runes.
func tokenAtPosition(tokens []sharkara.Token, line, character int) (sharkara.Token, bool) {
	for _, tok := range tokens {
		if tok.Kind == sharkara.KindEndOfFile {
			break
		}
		if tok.Kind == sharkara.KindComment || tok.Pos.Line-1 != line {
			continue
		}
		start := tok.Pos.Column - 1
		end := start + len([]rune(tok.Text))
		if character >= start && character < end {
			return tok, true
		}
	}
	return sharkara.Token{}, false
}

func (s *lspServer) readPayload() ([]byte, error) {
	contentLength := -1
	for {
		line, err := s.reader.ReadString('\n')
		if err != nil {
			return nil, err
		}
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			break
		}
		parts := strings.SplitN(line, ":", 2)
		if len(parts) != 2 {
			continue
		}
		name := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])
		if strings.EqualFold(name, "Content-Length") {
			n, err := strconv.Atoi(value)
			if err != nil {
				return nil, fmt.Errorf("invalid Content-Length: %w", err)
			}
			contentLength = n
		}
	}

	if contentLength < 0 {
		return nil, fmt.Errorf("missing Content-Length header")
	}
	payload := make([]byte, contentLength)
	if _, err := io.ReadFull(s.reader, payload); err != nil {
		return nil, err
	}
	return payload, nil
}

func (s *lspServer) writePayload(msg lspOutboundMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(s.writer, "Content-Length: %d\r\n\r\n", len(data)); err != nil {
		return err
	}
	if _, err := s.writer.Write(data); err != nil {
		return err
	}
	return s.writer.Flush()
}
