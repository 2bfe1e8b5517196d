package sharkara

import (
	"fmt"
	"sort"
	"unicode/utf8"
)

// Warning is a non-fatal finding about otherwise valid source.
type Warning struct {
	Pos     Position
	Message string
}

// Lint inspects a token sequence and the program parsed from it. Findings are
// ordered by source offset.
func Lint(tokens []Token, program *Program) []Warning {
	warnings := make([]Warning, 0)
	lintKeywordSplits(tokens, &warnings)
	if program != nil {
		lintBlock(program.Statements, &warnings)
	}

	sort.SliceStable(warnings, func(i, j int) bool {
		return warnings[i].Pos.Offset < warnings[j].Pos.Offset
	})
	return warnings
}

// lintKeywordSplits flags keyword literals that the first-match rule cut out
// of a longer word, such as "forest" lexing as "for" + "est".
func lintKeywordSplits(tokens []Token, warnings *[]Warning) {
	for i := 0; i+1 < len(tokens); i++ {
		tok := tokens[i]
		if !isKeywordToken(tok) {
			continue
		}
		last, _ := utf8.DecodeLastRuneInString(tok.Text)
		if !isIdentifierRune(last) {
			continue
		}
		next := tokens[i+1]
		if next.Pos.Offset != tok.End() || !continuesWord(next) {
			continue
		}
		*warnings = append(*warnings, Warning{
			Pos:     tok.Pos,
			Message: fmt.Sprintf("keyword %q matched inside %q", tok.Text, tok.Text+next.Text),
		})
	}
}

// continuesWord reports whether tok would have extended the preceding word
// had the keyword not been matched first.
func continuesWord(tok Token) bool {
	if tok.Kind != KindIdentifier && tok.Kind != KindNumber && !isKeywordToken(tok) {
		return false
	}
	first, _ := utf8.DecodeRuneInString(tok.Text)
	return isIdentifierRune(first)
}

func isKeywordToken(tok Token) bool {
	for _, kw := range keywordTable {
		if kw.Kind == tok.Kind && kw.Literal == tok.Text {
			return true
		}
	}
	return false
}

func lintBlock(stmts []Statement, warnings *[]Warning) {
	declared := make(map[string]struct{})
	for _, stmt := range stmts {
		if decl, ok := stmt.(*VarDecl); ok {
			if _, seen := declared[decl.Name.Text]; seen {
				*warnings = append(*warnings, Warning{
					Pos:     decl.Pos(),
					Message: fmt.Sprintf("variable %q already declared in this block", decl.Name.Text),
				})
			}
			declared[decl.Name.Text] = struct{}{}
		}
		lintStatement(stmt, warnings)
	}
}

func lintStatement(stmt Statement, warnings *[]Warning) {
	switch typed := stmt.(type) {
	case *IfStmt:
		lintStatement(typed.Body, warnings)
	case *WhileStmt:
		lintStatement(typed.Body, warnings)
	case *ForStmt:
		if len(typed.Body) == 0 {
			*warnings = append(*warnings, Warning{Pos: typed.Pos(), Message: "empty for loop body"})
		}
		lintBlock(typed.Body, warnings)
	case *FuncDecl:
		if len(typed.Body) == 0 {
			*warnings = append(*warnings, Warning{
				Pos:     typed.Pos(),
				Message: fmt.Sprintf("function %q has an empty body", typed.Name.Text),
			})
		}
		lintBlock(typed.Body, warnings)
	case *ClassDecl:
		if len(typed.Body) == 0 {
			*warnings = append(*warnings, Warning{
				Pos:     typed.Pos(),
				Message: fmt.Sprintf("class %q has an empty body", typed.Name.Text),
			})
		}
		lintBlock(typed.Body, warnings)
	}
}
