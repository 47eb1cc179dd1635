package meval

// run evaluates an RPN program. The program is not modified, so any number of
// goroutines may run the same program at once.
func run(prog []token, vars *Vars, tab *symtab, lim limits) (float64, error) {
	stack := make([]float64, 0, 8)
	var ok bool
	for _, tok := range prog {
		switch tok.kind {
		case tokenNum, tokenConst, tokenVar:
			v := tok.num
			switch tok.kind {
			case tokenConst:
				v = tab.constant[tok.sym].value
			case tokenVar:
				x, found := vars.Lookup(tok.name)
				if !found {
					return 0, ErrUndefined.at(0, tok.name)
				}
				v = x
			}
			if stack, ok = grow(stack, v, lim.depth); !ok {
				return 0, ErrTooDeep.at(0, "")
			}
		case tokenUnary:
			if len(stack) < 1 {
				return 0, ErrFewOperands.at(0, tab.name(tok))
			}
			x := &stack[len(stack)-1]
			*x = tab.unary[tok.sym].fn(*x)
		case tokenBinary:
			if len(stack) < 2 {
				return 0, ErrFewOperands.at(0, tab.name(tok))
			}
			// The right operand is on top.
			r := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			l := &stack[len(stack)-1]
			*l = tab.binary[tok.sym].fn(*l, r)
		default:
			panic("meval: cannot evaluate token " + tok.String())
		}
	}
	switch len(stack) {
	case 0:
		return 0, ErrFewOperands.at(0, "")
	case 1:
		return stack[0], nil
	default:
		return 0, ErrManyOperands.at(0, "")
	}
}
