package sharkara

import "fmt"

// TokenKind identifies the lexical category of a token.
type TokenKind string

const (
	KindStartProgram        TokenKind = "StartProgram"
	KindList                TokenKind = "List"
	KindDivision            TokenKind = "Division"
	KindMultiplication      TokenKind = "Multiplication"
	KindAddition            TokenKind = "Addition"
	KindSubtraction         TokenKind = "Subtraction"
	KindClass               TokenKind = "Class"
	KindMath                TokenKind = "Math"
	KindSimpleBinary        TokenKind = "SimpleBinary"
	KindComment             TokenKind = "Comment"
	KindEasyFunction        TokenKind = "EasyFunction"
	KindVariableDeclaration TokenKind = "VariableDeclaration"
	KindInteger             TokenKind = "Integer"
	KindString              TokenKind = "String"
	KindBoolean             TokenKind = "Boolean"
	KindForLoop             TokenKind = "ForLoop"
	KindEndFor              TokenKind = "EndFor"
	KindWhileLoop           TokenKind = "WhileLoop"
	KindForeverLoop         TokenKind = "ForeverLoop"
	KindIdentifier          TokenKind = "Identifier"
	KindNumber              TokenKind = "Number"
	KindSymbol              TokenKind = "Symbol"
	KindEndOfFile           TokenKind = "EndOfFile"
	KindUnknown             TokenKind = "Unknown"
)

// Token is a classified lexeme. Text is the exact matched substring, except
// for Comment tokens (always "//") and EndOfFile (always empty).
type Token struct {
	Kind TokenKind
	Text string
	Pos  Position
}

func (t Token) String() string {
	return fmt.Sprintf("Token(%s, %q)", t.Kind, t.Text)
}

// End returns the byte offset just past the token's text.
func (t Token) End() int {
	return t.Pos.Offset + len(t.Text)
}

// Position identifies a location in the source. Offset is a byte offset;
// Line and Column are 1-based, Column counting runes.
type Position struct {
	Offset int
	Line   int
	Column int
}

// Keyword pairs a fixed literal with the kind it produces.
type Keyword struct {
	Literal string
	Kind    TokenKind
}

// keywordTable is checked in order; the first literal matching at the scan
// position wins.
var keywordTable = []Keyword{
	{"class", KindClass},
	{"chad.math", KindMath},
	{"chad.0", KindSimpleBinary},
	{"func.easy()", KindEasyFunction},
	{"var", KindVariableDeclaration},
	{"#int", KindInteger},
	{"#str", KindString},
	{"#bool", KindBoolean},
	{"for", KindForLoop},
	{"esac", KindEndFor},
	{"while", KindWhileLoop},
	{"end.", KindEndFor},
}

// Keywords returns the fixed keyword literals in matching priority order.
func Keywords() []Keyword {
	out := make([]Keyword, len(keywordTable))
	copy(out, keywordTable)
	return out
}

func isTypeAnnotation(kind TokenKind) bool {
	switch kind {
	case KindInteger, KindString, KindBoolean:
		return true
	default:
		return false
	}
}

func isOperator(kind TokenKind) bool {
	switch kind {
	case KindDivision, KindMultiplication, KindAddition, KindSubtraction:
		return true
	default:
		return false
	}
}
