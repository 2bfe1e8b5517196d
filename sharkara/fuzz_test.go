package sharkara

import "testing"

func FuzzTokenizeIsTotal(f *testing.F) {
	f.Add("")
	f.Add("// anything here\nvar x = 1")
	f.Add("$/ class Dog { var age #int = 3 }")
	f.Add("for i x = lst[](1, 2) end.")
	f.Add("chad.0 chad.math func.easy() -. \xff")

	f.Fuzz(func(t *testing.T, source string) {
		for _, strict := range []bool{false, true} {
			tokens := NewTokenizer(Config{StrictKeywords: strict}).Tokenize(source)
			if len(tokens) == 0 {
				t.Fatalf("empty token sequence")
			}
			last := tokens[len(tokens)-1]
			if last.Kind != KindEndOfFile || last.Text != "" {
				t.Fatalf("sequence does not end with EndOfFile: %s", last)
			}
			offset := 0
			for i, tok := range tokens[:len(tokens)-1] {
				if tok.Kind == KindEndOfFile {
					t.Fatalf("EndOfFile at index %d before the end", i)
				}
				if tok.Pos.Offset < offset {
					t.Fatalf("token %d moves backwards: %+v", i, tok.Pos)
				}
				offset = tok.Pos.Offset
			}
		}
	})
}

func FuzzParseDoesNotPanic(f *testing.F) {
	f.Add("x = 10")
	f.Add("if x if y while z a = b")
	f.Add("class A { func.easy() b { for c esac } }")
	f.Add("x = ((((1 + 2")

	f.Fuzz(func(t *testing.T, source string) {
		_, _ = Parse(source)
		_, _ = NewParser(Config{BinaryExpressions: true, StrictKeywords: true}).Parse(source)
	})
}
