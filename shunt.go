package calculator

// postfix reorders infix tokens into reverse Polish order with the
// shunting-yard algorithm. Numbers pass straight through. Functions go on the
// operator stack and come off when their group closes, when a following
// operator arrives, or at the final flush, so they always end up after their
// operand. Operators pop everything on the stack that binds at least as
// tightly (more tightly, for right-associative operators) before taking their
// place on it. The only way to fail is a parenthesis with no partner.
func postfix(toks []token) ([]token, error) {
	out := make([]token, 0, len(toks))
	var ops []token
	for _, tok := range toks {
		switch tok.kind {
		case tokenNum:
			out = append(out, tok)
		case tokenFunc:
			ops = append(ops, tok)
		case tokenOp:
			for len(ops) > 0 {
				top := ops[len(ops)-1]
				if top.kind == tokenOpen || !yields(tok.op, top) {
					break
				}
				out = append(out, top)
				ops = ops[:len(ops)-1]
			}
			ops = append(ops, tok)
		case tokenOpen:
			ops = append(ops, tok)
		case tokenClose:
			for {
				if len(ops) == 0 {
					return nil, &BracketError{Col: tok.pos, Right: ")"}
				}
				top := ops[len(ops)-1]
				ops = ops[:len(ops)-1]
				if top.kind == tokenOpen {
					break
				}
				out = append(out, top)
			}
			// A function directly under the open paren belongs to the group
			// that just closed.
			if len(ops) > 0 && ops[len(ops)-1].kind == tokenFunc {
				out = append(out, ops[len(ops)-1])
				ops = ops[:len(ops)-1]
			}
		}
	}
	for len(ops) > 0 {
		top := ops[len(ops)-1]
		ops = ops[:len(ops)-1]
		if top.kind == tokenOpen {
			return nil, &BracketError{Col: top.pos, Left: "("}
		}
		out = append(out, top)
	}
	return out, nil
}

// yields reports whether op must wait for the stacked token to move to the
// output first. Functions bind tighter than any operator. Equal precedence
// yields for left-associative operators and not for right-associative ones,
// which is what makes 2^3^2 come out as 2^(3^2).
func yields(op opKind, top token) bool {
	if top.kind == tokenFunc {
		return true
	}
	if op.rightAssoc() {
		return op.prec() < top.op.prec()
	}
	return op.prec() <= top.op.prec()
}
