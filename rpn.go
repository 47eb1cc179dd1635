package meval

// torpn converts a lexed token sequence to reverse Polish notation using the
// shunting-yard algorithm. Binary operators are left-associative. A close
// bracket without an open bracket is an error, but open brackets left over at
// the end of the input are dropped, so "(1+2" means "(1+2)".
//
// Functions and operators alike pop entries of precedence at least their own
// before being pushed. Functions have the highest precedence, so a function
// directly after another, as in "__3" or "sin cos 0", pops the first one
// before it has an operand. Whether operators have the right number of
// operands is not checked here; the evaluator reports that.
func torpn(lexed []token, vars bool, tab *symtab, lim limits) ([]token, error) {
	// The output never holds more tokens than the input.
	out := make([]token, 0, len(lexed))
	var stack []token
	var ok bool
	for _, tok := range lexed {
		switch tok.kind {
		case tokenNum, tokenConst:
			out = append(out, tok)
		case tokenVar:
			if vars {
				out = append(out, tok)
			}
		case tokenOpen:
			if stack, ok = grow(stack, tok, lim.depth); !ok {
				return nil, ErrTooDeep.at(tok.pos, "")
			}
		case tokenClose:
			for {
				if len(stack) == 0 {
					return nil, ErrMissingOpen.at(lastpos(out), ")")
				}
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.kind == tokenOpen {
					break
				}
				out = append(out, top)
			}
		case tokenUnary, tokenBinary:
			p := tab.prec(tok)
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.kind == tokenOpen || tab.prec(top) < p {
					break
				}
				out = append(out, top)
				stack = stack[:len(stack)-1]
			}
			if stack, ok = grow(stack, tok, lim.depth); !ok {
				return nil, ErrTooDeep.at(tok.pos, "")
			}
		default:
			panic("meval: cannot convert token " + tok.String())
		}
	}
	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i].kind == tokenOpen {
			continue
		}
		out = append(out, stack[i])
	}
	return out, nil
}

// lastpos returns the position of the last token in toks, or 0 if there is
// none.
func lastpos(toks []token) int {
	if len(toks) == 0 {
		return 0
	}
	return toks[len(toks)-1].pos
}
