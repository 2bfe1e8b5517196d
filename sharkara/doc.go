// Package sharkara tokenizes and parses the Sharkara scripting notation.
//
// Tokenize applies a fixed, priority-ordered rule list at each position and
// commits to the first rule that matches; it is total over arbitrary input.
// The recognised lexemes are:
//   - the program marker `$/` and the list marker `lst[]`;
//   - operators `/`, `*`, `+` and the subtraction marker `-.`;
//   - keyword literals `class`, `chad.math`, `chad.0`, `func.easy()`, `var`,
//     `#int`, `#str`, `#bool`, `for`, `esac`, `while`, `end.`;
//   - `//` line comments, decimal numbers, identifiers, and any other single
//     character as a Symbol.
//
// Parse consumes the tokens with a single forward cursor and returns a
// Program of statements: assignments, `var` declarations, `if` and `while`
// with a single-statement body, `for` blocks closed by `esac` or `end.`, and
// brace-delimited `class` and `func.easy()` declarations. Expressions are a
// single token unless Config.BinaryExpressions is set.
package sharkara
