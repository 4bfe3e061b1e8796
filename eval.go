package calculator

import (
	"math"
	"strconv"
	"strings"
)

// Expr is a parsed expression: a postfix program ready to run. An Expr is
// immutable and may be evaluated concurrently.
type Expr struct {
	rpn []token
}

// Parse tokenizes an infix expression and reorders it into a postfix program.
// The only parse-time failure is a mismatched parenthesis; everything else is
// caught when the program runs.
func Parse(src string) (*Expr, error) {
	rpn, err := postfix(tokenize(src))
	if err != nil {
		return nil, err
	}
	return &Expr{rpn: rpn}, nil
}

// String renders the postfix program with one space between lexemes.
// "2+3*4" renders as "2 3 4 * +".
func (e *Expr) String() string {
	var b strings.Builder
	for i, tok := range e.rpn {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(tok.text)
	}
	return b.String()
}

// Eval runs the postfix program over a float64 stack and returns the single
// remaining value. The stack is local to the call, so concurrent Evals of the
// same Expr don't interfere. Evaluation stops at the first error.
func (e *Expr) Eval() (float64, error) {
	stack := make([]float64, 0, len(e.rpn))
	for _, tok := range e.rpn {
		switch tok.kind {
		case tokenNum:
			// The tokenizer admits any run of digits and dots, so literals
			// like "1.2.3" reach this point and fail here.
			v, err := strconv.ParseFloat(tok.text, 64)
			if err != nil {
				return 0, &NumberError{Col: tok.pos, Text: tok.text}
			}
			stack = append(stack, v)
		case tokenOp:
			if len(stack) < 2 {
				return 0, &OperandError{Col: tok.pos, Tok: tok.text}
			}
			b := stack[len(stack)-1]
			a := stack[len(stack)-2]
			stack = stack[:len(stack)-1]
			r, err := apply(tok, a, b)
			if err != nil {
				return 0, err
			}
			stack[len(stack)-1] = r
		case tokenFunc:
			if len(stack) < 1 {
				return 0, &OperandError{Col: tok.pos, Tok: tok.text}
			}
			fn := funcs[tok.text]
			if fn == nil {
				return 0, &FuncError{Col: tok.pos, Name: tok.text}
			}
			stack[len(stack)-1] = fn(stack[len(stack)-1])
		default:
			panic("calculator: " + tok.String() + " in postfix program")
		}
	}
	if len(stack) != 1 {
		return 0, &ExpressionError{Values: len(stack)}
	}
	return stack[0], nil
}

// apply computes a binary operation. Division and remainder by zero are
// reported rather than producing an infinity or NaN.
func apply(tok token, a, b float64) (float64, error) {
	switch tok.op {
	case opAdd:
		return a + b, nil
	case opSub:
		return a - b, nil
	case opMul:
		return a * b, nil
	case opDiv:
		if b == 0 {
			return 0, &DivideByZeroError{Col: tok.pos}
		}
		return a / b, nil
	case opRem:
		if b == 0 {
			return 0, &DivideByZeroError{Col: tok.pos}
		}
		return math.Mod(a, b), nil
	case opPow:
		return math.Pow(a, b), nil
	default:
		return 0, &OperatorError{Col: tok.pos, Operator: tok.text}
	}
}

// Evaluate parses and evaluates an infix expression in one call. It never
// panics on any input and runs in time linear in the length of src.
func Evaluate(src string) (float64, error) {
	e, err := Parse(src)
	if err != nil {
		return 0, err
	}
	return e.Eval()
}
