package sharkara

import "fmt"

// Parser builds ASTs from Sharkara source or token sequences.
type Parser struct {
	config Config
}

// NewParser returns a parser using cfg.
func NewParser(cfg Config) *Parser {
	return &Parser{config: cfg.withDefaults()}
}

// Parse tokenizes and parses source with the default configuration.
func Parse(source string) (*Program, error) {
	return NewParser(Config{}).Parse(source)
}

// ParseTokens parses a token sequence with the default configuration.
func ParseTokens(tokens []Token) (*Program, error) {
	return NewParser(Config{}).ParseTokens(tokens)
}

// ParseStatement parses exactly one statement starting at the first token.
// Tokens after that statement are ignored.
func ParseStatement(tokens []Token) (Statement, error) {
	return NewParser(Config{}).ParseStatement(tokens)
}

// Parse tokenizes source with the parser's configuration and parses every
// top-level statement. Syntax errors carry a code frame from source.
func (p *Parser) Parse(source string) (*Program, error) {
	tokens := NewTokenizer(p.config).Tokenize(source)
	return newParser(tokens, source, p.config).parseProgram()
}

// ParseTokens parses top-level statements until EndOfFile.
func (p *Parser) ParseTokens(tokens []Token) (*Program, error) {
	return newParser(tokens, "", p.config).parseProgram()
}

// ParseStatement parses a single statement from the start of tokens.
func (p *Parser) ParseStatement(tokens []Token) (Statement, error) {
	return newParser(tokens, "", p.config).parseStatement()
}

type parser struct {
	tokens  []Token
	pos     int
	source  string
	config  Config
	nesting int
}

func newParser(tokens []Token, source string, cfg Config) *parser {
	filtered := make([]Token, 0, len(tokens)+1)
	for _, tok := range tokens {
		if tok.Kind == KindComment {
			continue
		}
		filtered = append(filtered, tok)
		if tok.Kind == KindEndOfFile {
			break
		}
	}
	if len(filtered) == 0 || filtered[len(filtered)-1].Kind != KindEndOfFile {
		end := Position{Line: 1, Column: 1}
		if len(filtered) > 0 {
			last := filtered[len(filtered)-1]
			end = last.Pos
			end.Offset = last.End()
			end.Column += len([]rune(last.Text))
		}
		filtered = append(filtered, Token{Kind: KindEndOfFile, Pos: end})
	}
	return &parser{tokens: filtered, source: source, config: cfg.withDefaults()}
}

func (p *parser) cur() Token {
	return p.tokens[p.pos]
}

// next advances the cursor; it never moves past the EndOfFile token.
func (p *parser) next() {
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
}

func (p *parser) curIs(kind TokenKind) bool {
	return p.cur().Kind == kind
}

func (p *parser) curIsSymbol(text string) bool {
	tok := p.cur()
	return tok.Kind == KindSymbol && tok.Text == text
}

func (p *parser) expect(kind TokenKind, label string) (Token, error) {
	tok := p.cur()
	if tok.Kind != kind {
		return Token{}, p.errorExpected(tok, label)
	}
	p.next()
	return tok, nil
}

func (p *parser) expectSymbol(text string) (Token, error) {
	tok := p.cur()
	if tok.Kind != KindSymbol || tok.Text != text {
		return Token{}, p.errorExpected(tok, "'"+text+"'")
	}
	p.next()
	return tok, nil
}

func (p *parser) parseProgram() (*Program, error) {
	program := &Program{}

	for !p.curIs(KindEndOfFile) {
		if p.curIs(KindStartProgram) {
			program.Marked = true
			p.next()
			continue
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		program.Statements = append(program.Statements, stmt)
	}

	return program, nil
}

func (p *parser) enter() error {
	p.nesting++
	if p.nesting > p.config.MaxNesting {
		return p.syntaxError(p.cur(), fmt.Sprintf("maximum nesting depth exceeded (limit %d)", p.config.MaxNesting))
	}
	return nil
}

func (p *parser) leave() {
	p.nesting--
}
