package calculator

import (
	"strings"
	"testing"
)

func rpnString(toks []token) string {
	var b strings.Builder
	for i, tok := range toks {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(tok.text)
	}
	return b.String()
}

func TestPostfix(t *testing.T) {
	cases := []struct {
		name string
		src  string
		rpn  string
	}{
		{"num", "2", "2"},
		{"add", "2+3", "2 3 +"},
		{"precedence", "2+3*4", "2 3 4 * +"},
		{"group", "(2+3)*4", "2 3 + 4 *"},
		{"left-assoc", "1-2-3", "1 2 - 3 -"},
		{"right-assoc", "2^3^2", "2 3 2 ^ ^"},
		{"equal-prec", "8/2%3", "8 2 / 3 %"},
		{"mixed", "1+2*3-4/5", "1 2 3 * + 4 5 / -"},
		{"call", "sqrt(16)", "16 sqrt"},
		{"call-op", "sqrt(16)+1", "16 sqrt 1 +"},
		{"call-nested", "sqrt(sin(0)+1)", "0 sin 1 + sqrt"},
		{"neg", "-5+3", "5 " + negName + " 3 +"},
		{"neg-paren", "3-(-2)", "3 2 " + negName + " -"},
		{"neg-pow", "2^-2", "2 2 " + negName + " ^"},
		{"deep", "((((1))))", "1"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rpn, err := postfix(tokenize(c.src))
			if err != nil {
				t.Fatalf("%q failed to convert: %v", c.src, err)
			}
			if got := rpnString(rpn); got != c.rpn {
				t.Errorf("%q: want %q, got %q", c.src, c.rpn, got)
			}
		})
	}
}

func TestPostfixBrackets(t *testing.T) {
	cases := []struct {
		name  string
		src   string
		left  string
		right string
		col   int
	}{
		{"unclosed", "(1+2", "(", "", 1},
		{"unopened", "1+2)", "", ")", 4},
		{"extra-close", "(1))", "", ")", 4},
		{"extra-open", "((1)", "(", "", 1},
		{"bare-close", ")", "", ")", 1},
		{"bare-open", "(", "(", "", 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := postfix(tokenize(c.src))
			if err == nil {
				t.Fatalf("%q converted without error", c.src)
			}
			be, ok := err.(*BracketError)
			if !ok {
				t.Fatalf("%q gave %#v, not *BracketError", c.src, err)
			}
			if be.Left != c.left || be.Right != c.right {
				t.Errorf("%q: want left %q right %q, got left %q right %q", c.src, c.left, c.right, be.Left, be.Right)
			}
			if be.Col != c.col {
				t.Errorf("%q: error at column %d, want %d", c.src, be.Col, c.col)
			}
		})
	}
}
