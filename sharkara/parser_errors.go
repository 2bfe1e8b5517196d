package sharkara

import (
	"fmt"
	"strings"
)

// SyntaxError reports the token at which parsing stopped. Parsing is not
// resumable; no partial tree accompanies a SyntaxError.
type SyntaxError struct {
	Token  Token
	Msg    string
	source string
}

func (e *SyntaxError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "syntax error at %d:%d: %s", e.Token.Pos.Line, e.Token.Pos.Column, e.Msg)
	if frame := formatCodeFrame(e.source, e.Token.Pos); frame != "" {
		b.WriteString("\n")
		b.WriteString(frame)
	}
	return b.String()
}

// Pos returns the source position of the offending token.
func (e *SyntaxError) Pos() Position {
	return e.Token.Pos
}

func (p *parser) errorExpected(tok Token, expected string) error {
	return p.syntaxError(tok, fmt.Sprintf("expected %s, got %s", expected, tokenLabel(tok)))
}

func (p *parser) errorUnexpected(tok Token) error {
	return p.syntaxError(tok, fmt.Sprintf("unexpected token %s", tokenLabel(tok)))
}

func (p *parser) syntaxError(tok Token, msg string) error {
	return &SyntaxError{Token: tok, Msg: msg, source: p.source}
}

func tokenLabel(tok Token) string {
	if tok.Kind == KindEndOfFile {
		return "end of input"
	}
	return fmt.Sprintf("%s %q", tok.Kind, tok.Text)
}
