// Package calculator evaluates infix arithmetic expressions.
//
// Expressions are made of decimal numbers, the binary operators + - * / % ^,
// parentheses, and the single-argument functions sin, cos, tan, and sqrt
// (trigonometry in radians). "^" is exponentiation and groups to the right,
// so "2^3^2" is 2^(3^2). A minus sign in a position where no left operand
// exists negates its operand, so "-5+3" and "3-(-2)" mean what they look like.
//
// Evaluation happens in three stages: a tokenizer splits the text into typed
// tokens, the shunting-yard algorithm reorders them into a postfix program,
// and a stack machine runs that program over float64 values. Parse returns
// the postfix program as an Expr; Evaluate is the one-call shortcut.
//
// Every call is independent and pure. An Expr is immutable after Parse, so it
// is safe to evaluate from any number of goroutines at once.
package calculator
