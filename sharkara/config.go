package sharkara

const defaultMaxNesting = 1024

// Config controls optional tokenizer and parser behaviour. The zero value
// reproduces the reference notation exactly.
type Config struct {
	// StrictKeywords requires keyword literals that end in a letter or digit
	// to be followed by a non-word character, so "forest" lexes as a single
	// Identifier instead of ForLoop followed by Identifier("est").
	StrictKeywords bool
	// BinaryExpressions parses arithmetic operators into BinaryExpr trees
	// instead of reading a single token per expression.
	BinaryExpressions bool
	// MaxNesting bounds how deeply statements may nest.
	MaxNesting int
}

func (c Config) withDefaults() Config {
	if c.MaxNesting <= 0 {
		c.MaxNesting = defaultMaxNesting
	}
	return c
}
