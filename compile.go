package meval

import (
	"strconv"
	"strings"
	"sync/atomic"
)

// Expr is a compiled expression that can be evaluated many times with
// different variables. It is safe to evaluate an Expr concurrently.
type Expr struct {
	// prog is the RPN program. It is never modified after Compile.
	prog []token
	// names is the sorted list of variable names the program uses.
	names    []string
	lim      limits
	released atomic.Bool
}

// Compile parses an expression once so that it can be evaluated with Eval.
// Identifiers that are not functions, operators, or constants are variables.
func Compile(src string, opts ...Option) (*Expr, error) {
	lim := getlimits(opts)
	prog, err := compile(src, true, lim)
	if err != nil {
		return nil, err
	}
	e := Expr{prog: prog, lim: lim}
	seen := make(map[string]bool)
	for _, tok := range prog {
		if tok.kind == tokenVar && !seen[tok.name] {
			seen[tok.name] = true
			e.names = append(e.names, tok.name)
		}
	}
	sortstrs(e.names)
	return &e, nil
}

// Eval evaluates the expression with the given variable bindings, which may
// be nil if the expression uses no variables. Returns ErrReleased if e has
// been released.
func (e *Expr) Eval(vars *Vars) (float64, error) {
	if e == nil || e.released.Load() {
		return 0, ErrReleased
	}
	return run(e.prog, vars, builtins, e.lim)
}

// Release invalidates the expression. Every later call to Eval fails. It is
// safe to call Release more than once, or on a nil Expr.
func (e *Expr) Release() {
	if e == nil {
		return
	}
	e.released.Store(true)
}

// Vars returns the variable names used when evaluating the expression.
func (e *Expr) Vars() []string {
	return append(([]string)(nil), e.names...)
}

// String formats the compiled program in reverse Polish notation.
func (e *Expr) String() string {
	var b strings.Builder
	for i, tok := range e.prog {
		if i > 0 {
			b.WriteByte(' ')
		}
		switch tok.kind {
		case tokenNum:
			b.WriteString(strconv.FormatFloat(tok.num, 'g', -1, 64))
		case tokenVar:
			b.WriteString(tok.name)
		default:
			b.WriteString(builtins.name(tok))
		}
	}
	return b.String()
}

// sortstrs sorts a string slice without using package sort because that has
// reflection and allocation problems.
func sortstrs(names []string) {
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && names[j] < names[j-1]; j-- {
			names[j], names[j-1] = names[j-1], names[j]
		}
	}
}
