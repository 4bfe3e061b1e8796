package calculator

import "strconv"

// BracketError is an error indicating a parenthesis with no partner.
// It implements InputError.
type BracketError struct {
	// Col is the position of the unmatched parenthesis.
	Col int
	// Left is "(" when an open parenthesis was never closed.
	Left string
	// Right is ")" when a close parenthesis had nothing to close.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left != "" {
		return errpos(err.Col, "mismatched parentheses: "+err.Left+" was never closed")
	}
	return errpos(err.Col, "mismatched parentheses: "+err.Right+" closes nothing")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// OperandError is an error indicating an operator or function with too few
// values to work on, e.g. a trailing operator. It implements InputError.
type OperandError struct {
	// Col is the position of the operator or function.
	Col int
	// Tok is its lexeme.
	Tok string
}

func (err *OperandError) Error() string {
	return errpos(err.Col, "not enough operands for "+strconv.Quote(err.Tok))
}

func (err *OperandError) Pos() int {
	return err.Col
}

// DivideByZeroError is an error indicating a division or remainder with a
// zero divisor. It implements InputError.
type DivideByZeroError struct {
	// Col is the position of the operator.
	Col int
}

func (err *DivideByZeroError) Error() string {
	return errpos(err.Col, "division by zero")
}

func (err *DivideByZeroError) Pos() int {
	return err.Col
}

// FuncError is an error indicating a name that is not a recognized function.
// It implements InputError.
type FuncError struct {
	// Col is the position of the name.
	Col int
	// Name is the name as written.
	Name string
}

func (err *FuncError) Error() string {
	return errpos(err.Col, "unknown function "+strconv.Quote(err.Name))
}

func (err *FuncError) Pos() int {
	return err.Col
}

// OperatorError is an error indicating an operator character with no defined
// operation. It implements InputError.
type OperatorError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the character as written.
	Operator string
}

func (err *OperatorError) Error() string {
	return errpos(err.Col, "unknown operator "+strconv.Quote(err.Operator))
}

func (err *OperatorError) Pos() int {
	return err.Col
}

// NumberError is an error indicating a numeric literal that does not parse as
// a floating-point value, such as "1.2.3". It implements InputError.
type NumberError struct {
	// Col is the position of the literal.
	Col int
	// Text is the literal as written.
	Text string
}

func (err *NumberError) Error() string {
	return errpos(err.Col, "invalid number "+strconv.Quote(err.Text))
}

func (err *NumberError) Pos() int {
	return err.Col
}

// ExpressionError is an error indicating that the whole input did not reduce
// to exactly one value: the input was empty, or operands were left over, as
// in "3 4".
type ExpressionError struct {
	// Values is how many values remained after evaluation.
	Values int
}

func (err *ExpressionError) Error() string {
	if err.Values == 0 {
		return "empty expression"
	}
	return "invalid expression: " + strconv.Itoa(err.Values) + " values left over"
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error that points
// at a particular token implements InputError.
type InputError interface {
	error
	// Pos returns the 1-based rune column of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*BracketError)(nil)
	_ InputError = (*OperandError)(nil)
	_ InputError = (*DivideByZeroError)(nil)
	_ InputError = (*FuncError)(nil)
	_ InputError = (*OperatorError)(nil)
	_ InputError = (*NumberError)(nil)
)
