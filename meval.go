package meval

// Eval evaluates an expression without variables. Any identifier that is not
// a function, operator, or constant is an error.
func Eval(src string, opts ...Option) (float64, error) {
	lim := getlimits(opts)
	prog, err := compile(src, false, lim)
	if err != nil {
		return 0, err
	}
	return run(prog, nil, builtins, lim)
}

// EvalVars evaluates an expression with variable bindings. vars may be nil,
// in which case any variable in the expression is undefined.
func EvalVars(src string, vars *Vars, opts ...Option) (float64, error) {
	lim := getlimits(opts)
	prog, err := compile(src, true, lim)
	if err != nil {
		return 0, err
	}
	return run(prog, vars, builtins, lim)
}

// compile lexes src and converts it to an RPN program. Of any lexical errors,
// only the first is reported.
func compile(src string, vars bool, lim limits) ([]token, error) {
	lexed, bad, err := lex(src, vars, builtins, lim)
	if err != nil {
		return nil, err
	}
	if len(lexed) == 0 {
		return nil, ErrEmpty.at(0, "")
	}
	if bad {
		for _, tok := range lexed {
			if tok.kind == tokenError {
				return nil, tok.err.at(tok.pos, tok.name)
			}
		}
		panic("meval: lexer reported an error but produced no error token")
	}
	return torpn(lexed, vars, builtins, lim)
}
