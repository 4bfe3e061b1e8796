package calculator

import (
	"strconv"
	"unicode"
)

// token is a single lexeme of an expression.
type token struct {
	// kind selects which stages handle the token.
	kind tokenKind
	// text is the lexeme exactly as written.
	text string
	// op is the operator id. It is meaningful only when kind is tokenOp;
	// opNone marks an operator character the evaluator doesn't know.
	op opKind
	// pos is the 1-based rune column of the token's first rune.
	pos int
}

func (t token) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int8

const (
	tokenNone tokenKind = iota
	// tokenNum is a numeric literal.
	tokenNum
	// tokenOp is a binary operator.
	tokenOp
	// tokenFunc is a function name, including the unary negation marker.
	tokenFunc
	// tokenOpen and tokenClose are ( and ).
	tokenOpen
	tokenClose
)

var tokenKindNames = [...]string{"None", "Num", "Op", "Func", "Open", "Close"}

func (k tokenKind) String() string {
	if k < 0 || int(k) >= len(tokenKindNames) {
		return "tokenKind(" + strconv.Itoa(int(k)) + ")"
	}
	return tokenKindNames[k]
}

type opKind int8

const (
	opNone opKind = iota
	opAdd
	opSub
	opMul
	opDiv
	opRem
	opPow
)

// prec is the binding strength of the operator. Higher binds tighter.
// Unknown operators get the weakest strength, matching their precedence of
// zero in the grammar.
func (op opKind) prec() int8 {
	switch op {
	case opAdd, opSub:
		return 1
	case opMul, opDiv, opRem:
		return 2
	case opPow:
		return 3
	default:
		return 0
	}
}

// rightAssoc reports whether the operator groups to the right. Only
// exponentiation does: 2^3^2 is 2^(3^2).
func (op opKind) rightAssoc() bool {
	return op == opPow
}

// binop maps an operator rune to its id. Runes that name no operator map to
// opNone; the evaluator rejects those.
func binop(r rune) opKind {
	switch r {
	case '+':
		return opAdd
	case '-':
		return opSub
	case '*':
		return opMul
	case '/':
		return opDiv
	case '%':
		return opRem
	case '^':
		return opPow
	default:
		return opNone
	}
}

// tokenize scans src into tokens, left to right in one pass. It never fails:
// any rune that doesn't start a number, name, or bracket becomes a
// one-character operator token, and later stages reject the ones that don't
// mean anything.
//
// A maximal run of digits and dots is one number token, taken verbatim; the
// evaluator decides whether it parses. A maximal run of letters is one
// function token, recognized or not. A minus with no left operand — at the
// start of input, after an operator, or after an open paren — is unary
// negation and becomes a function token with the reserved marker name. The
// decision looks back exactly one token and never revisits it.
func tokenize(src string) []token {
	runes := []rune(src)
	var toks []token
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			continue
		case numRune(r):
			j := i + 1
			for j < len(runes) && numRune(runes[j]) {
				j++
			}
			toks = append(toks, token{kind: tokenNum, text: string(runes[i:j]), pos: i + 1})
			i = j - 1
		case unicode.IsLetter(r):
			j := i + 1
			for j < len(runes) && unicode.IsLetter(runes[j]) {
				j++
			}
			toks = append(toks, token{kind: tokenFunc, text: string(runes[i:j]), pos: i + 1})
			i = j - 1
		case r == '(':
			toks = append(toks, token{kind: tokenOpen, text: "(", pos: i + 1})
		case r == ')':
			toks = append(toks, token{kind: tokenClose, text: ")", pos: i + 1})
		case r == '-' && unaryMinus(toks):
			toks = append(toks, token{kind: tokenFunc, text: negName, pos: i + 1})
		default:
			toks = append(toks, token{kind: tokenOp, text: string(r), op: binop(r), pos: i + 1})
		}
	}
	return toks
}

func numRune(r rune) bool {
	return '0' <= r && r <= '9' || r == '.'
}

// unaryMinus reports whether a minus scanned now negates its operand rather
// than subtracting. Only the previously emitted token matters.
func unaryMinus(toks []token) bool {
	if len(toks) == 0 {
		return true
	}
	switch toks[len(toks)-1].kind {
	case tokenOp, tokenOpen:
		return true
	}
	return false
}
