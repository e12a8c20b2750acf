// Package parsemaths implements a floating-point arithmetic calculator.
//
// Expressions use +, -, *, / and ^ with the usual precedence, parentheses,
// and unary minus. "2^3^2" is "2^(3^2)", since exponentiation is
// right-associative. Unary minus binds more tightly than any binary operator,
// so "-2^2" is "(-2)^2" = 4. Bracketed terms written next to each other are
// multiplied: "(2+3)(4-1)" is 15. A number directly followed by a bracket,
// like "2(3)", is rejected.
//
// Input is processed in three stages: a Tokenizer produces tokens on demand,
// a Parser builds a tree of Nodes from them by precedence climbing, and
// Node.Eval reduces the tree to a float64. Whitespace is not part of the
// syntax; callers remove it before parsing.
package parsemaths
