package sharkara

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Tokenizer converts source text into tokens using first-match priority
// rules. A Tokenizer holds no per-run state and may be shared.
type Tokenizer struct {
	config Config
}

// NewTokenizer returns a tokenizer using cfg.
func NewTokenizer(cfg Config) *Tokenizer {
	return &Tokenizer{config: cfg.withDefaults()}
}

// Tokenize scans source with the default configuration.
func Tokenize(source string) []Token {
	return NewTokenizer(Config{}).Tokenize(source)
}

// Tokenize scans source left to right. It never fails: characters no rule
// recognises become single-character Symbol tokens. The result always ends
// with exactly one EndOfFile token.
func (t *Tokenizer) Tokenize(source string) []Token {
	l := newLexer(source, t.config.StrictKeywords)
	return l.run()
}

type lexer struct {
	input  string
	offset int
	line   int
	column int
	strict bool
	tokens []Token
}

func newLexer(input string, strict bool) *lexer {
	return &lexer{input: input, line: 1, column: 1, strict: strict}
}

func (l *lexer) run() []Token {
	for l.offset < len(l.input) {
		l.scan()
	}
	l.tokens = append(l.tokens, Token{Kind: KindEndOfFile, Pos: l.pos()})
	return l.tokens
}

func (l *lexer) scan() {
	r, w := utf8.DecodeRuneInString(l.input[l.offset:])

	switch {
	case unicode.IsSpace(r):
		l.advance(w)
	case l.hasPrefix("$/"):
		l.emitLiteral(KindStartProgram, 2)
	case l.hasPrefix("lst[]"):
		l.emitLiteral(KindList, len("lst[]"))
	case l.hasPrefix("//"):
		l.skipComment()
	case r == '/':
		l.emitLiteral(KindDivision, 1)
	case r == '*':
		l.emitLiteral(KindMultiplication, 1)
	case r == '+':
		l.emitLiteral(KindAddition, 1)
	case l.hasPrefix("-."):
		l.emitLiteral(KindSubtraction, 2)
	default:
		if kw, ok := l.matchKeyword(); ok {
			l.emitLiteral(kw.Kind, len(kw.Literal))
			return
		}
		switch {
		case unicode.IsDigit(r):
			l.emitRun(KindNumber, unicode.IsDigit)
		case unicode.IsLetter(r):
			l.emitRun(KindIdentifier, isIdentifierRune)
		default:
			l.emitLiteral(KindSymbol, w)
		}
	}
}

func (l *lexer) hasPrefix(literal string) bool {
	return strings.HasPrefix(l.input[l.offset:], literal)
}

func (l *lexer) matchKeyword() (Keyword, bool) {
	for _, kw := range keywordTable {
		if !l.hasPrefix(kw.Literal) {
			continue
		}
		if l.strict && !l.atWordBoundary(kw.Literal) {
			continue
		}
		return kw, true
	}
	return Keyword{}, false
}

// atWordBoundary reports whether a literal ending in a word character is
// followed by a non-word character. Literals ending in punctuation always
// qualify.
func (l *lexer) atWordBoundary(literal string) bool {
	last, _ := utf8.DecodeLastRuneInString(literal)
	if !isIdentifierRune(last) {
		return true
	}
	end := l.offset + len(literal)
	if end >= len(l.input) {
		return true
	}
	next, _ := utf8.DecodeRuneInString(l.input[end:])
	return !isIdentifierRune(next)
}

// skipComment consumes "//" through the end of the line and emits a bare
// Comment token; the comment body is discarded.
func (l *lexer) skipComment() {
	pos := l.pos()
	end := strings.IndexByte(l.input[l.offset:], '\n')
	if end < 0 {
		end = len(l.input) - l.offset
	} else {
		end++
	}
	l.advance(end)
	l.tokens = append(l.tokens, Token{Kind: KindComment, Text: "//", Pos: pos})
}

func (l *lexer) emitLiteral(kind TokenKind, width int) {
	pos := l.pos()
	text := l.input[l.offset : l.offset+width]
	l.advance(width)
	l.tokens = append(l.tokens, Token{Kind: kind, Text: text, Pos: pos})
}

func (l *lexer) emitRun(kind TokenKind, accept func(rune) bool) {
	start := l.offset
	pos := l.pos()
	end := start
	for end < len(l.input) {
		r, w := utf8.DecodeRuneInString(l.input[end:])
		if !accept(r) {
			break
		}
		end += w
	}
	l.advance(end - start)
	l.tokens = append(l.tokens, Token{Kind: kind, Text: l.input[start:end], Pos: pos})
}

func (l *lexer) advance(n int) {
	stop := l.offset + n
	for l.offset < stop {
		r, w := utf8.DecodeRuneInString(l.input[l.offset:])
		l.offset += w
		if r == '\n' {
			l.line++
			l.column = 1
		} else {
			l.column++
		}
	}
}

func (l *lexer) pos() Position {
	return Position{Offset: l.offset, Line: l.line, Column: l.column}
}

func isIdentifierRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
