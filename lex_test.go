package meval

import (
	"math"
	"strings"
	"testing"
)

func num(v float64, pos int) token {
	return token{kind: tokenNum, num: v, pos: pos}
}

func variable(name string, pos int) token {
	return token{kind: tokenVar, name: name, pos: pos}
}

func badtok(err *Error, text string, pos int) token {
	return token{kind: tokenError, err: err, name: text, pos: pos}
}

// sym finds a symbol in the builtin tables, panicking if there is none.
func sym(name string, pos int) token {
	m := builtins.lookup(nil, name)
	if len(m) != 1 {
		panic("no unique builtin " + name)
	}
	return token{kind: m[0].kind, sym: m[0].sym, pos: pos}
}

func openb(pos int) token  { return token{kind: tokenOpen, pos: pos} }
func closeb(pos int) token { return token{kind: tokenClose, pos: pos} }

func TestLex(t *testing.T) {
	cases := []struct {
		name   string
		src    string
		vars   bool
		tokens []token
		bad    bool
	}{
		// spaces
		{"empty", "", false, nil, false},
		{"spaces", " \t \r\n\v\f ", false, nil, false},
		// numbers
		{"zero", "0", false, []token{num(0, 0)}, false},
		{"digits", "9876543210", false, []token{num(9876543210, 0)}, false},
		{"two", "1 0", false, []token{num(1, 0), num(0, 2)}, false},
		{"real", "1.5", false, []token{num(1.5, 0)}, false},
		{"leading-dot", ".5", false, []token{num(0.5, 0)}, false},
		{"trailing-dot", "1.", false, []token{num(1, 0)}, false},
		{"dots", "1.2.3", false, []token{badtok(ErrDecimalPoints, "1.2.3", 0)}, true},
		{"dots-continue", "1.2.3+4", false, []token{badtok(ErrDecimalPoints, "1.2.3", 0), sym("+", 5), num(4, 6)}, true},
		{"dot", ".", false, []token{badtok(ErrInvalidNumber, ".", 0)}, true},
		{"huge", "1" + strings.Repeat("0", 400), false, []token{num(math.Inf(1), 0)}, false},
		// brackets
		{"brackets", "(1)", false, []token{openb(0), num(1, 1), closeb(2)}, false},
		{"call", "sin(0)", false, []token{sym("sin", 0), openb(3), num(0, 4), closeb(5)}, false},
		// identifiers
		{"func", "sin", false, []token{sym("sin", 0)}, false},
		{"const", "pi", false, []token{sym("pi", 0)}, false},
		{"longest", "exp", false, []token{sym("exp", 0)}, false},
		{"longer", "sinh", false, []token{sym("sinh", 0)}, false},
		{"func-var", "sinx", true, []token{sym("sin", 0), variable("x", 3)}, false},
		{"func-novar", "sinx", false, []token{sym("sin", 0), badtok(ErrUnrecognised, "x", 3)}, true},
		{"const-var", "ex", true, []token{sym("e", 0), variable("x", 1)}, false},
		{"var", "xsin", true, []token{variable("xsin", 0)}, false},
		{"var-novar", "xsin", false, []token{badtok(ErrUnrecognised, "xsin", 0)}, true},
		{"var-trunc", strings.Repeat("x", 40), true, []token{variable(strings.Repeat("x", MaxVarName), 0)}, false},
		{"var-digit", "x1", true, []token{variable("x", 0), num(1, 1)}, false},
		// operators
		{"op", "1+0", false, []token{num(1, 0), sym("+", 1), num(0, 2)}, false},
		{"ops", "2*_3", false, []token{num(2, 0), sym("*", 1), sym("_", 2), num(3, 3)}, false},
		{"ge", ">=", false, []token{sym(">=", 0)}, false},
		{"gt-lt", "><", false, []token{sym(">", 0), sym("<", 1)}, false},
		{"op-dot", "+.5", false, []token{sym("+", 0), num(0.5, 1)}, false},
		{"punct-var", "$", true, []token{variable("$", 0)}, false},
		{"punct-novar", "$", false, []token{badtok(ErrUnrecognised, "$", 0)}, true},
		{"classes", "a$", true, []token{variable("a", 0), variable("$", 1)}, false},
		// erroneous characters
		{"unknown", "2+\x7f", false, []token{num(2, 0), sym("+", 1), badtok(ErrUnknownChar, "\x7f", 2)}, true},
		{"unknown-continue", "\x00 1", false, []token{badtok(ErrUnknownChar, "\x00", 0), num(1, 2)}, true},
		{"non-ascii", "é", true, []token{badtok(ErrUnknownChar, "\xc3", 0), badtok(ErrUnknownChar, "\xa9", 1)}, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			toks, bad, err := lex(c.src, c.vars, builtins, deflimits)
			if err != nil {
				t.Fatalf("lexing %q: %v", c.src, err)
			}
			if bad != c.bad {
				t.Errorf("lexing %q: want bad=%t, got %t", c.src, c.bad, bad)
			}
			if len(toks) != len(c.tokens) {
				t.Fatalf("lexing %q: want %v, got %v", c.src, c.tokens, toks)
			}
			for i, want := range c.tokens {
				if toks[i] != want {
					t.Errorf("lexing %q token %d: want %v, got %v", c.src, i, want, toks[i])
				}
			}
		})
	}
}

func TestLexTables(t *testing.T) {
	id := func(a float64) float64 { return a }
	tab := &symtab{
		unary: []unaryFn{
			{"foo", funcprec, id},
			{"ab", funcprec, id},
			{"abc", funcprec, id},
		},
		constant: []constant{
			{"foo", 1},
		},
	}
	if name, why := tab.check(); why != "" {
		t.Fatalf("test table rejected: %q %s", name, why)
	}
	cases := []struct {
		name   string
		src    string
		tokens []token
	}{
		{"ambiguous", "foo", []token{badtok(ErrAmbiguous, "foo", 0)}},
		{"ambiguous-rest", "foox", []token{badtok(ErrAmbiguous, "foo", 0), variable("x", 3)}},
		{"longest", "abcd", []token{{kind: tokenUnary, sym: 2, pos: 0}, variable("d", 3)}},
		{"shorter", "abd", []token{{kind: tokenUnary, sym: 1, pos: 0}, variable("d", 2)}},
		{"prefix-only", "fo", []token{variable("fo", 0)}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			toks, _, err := lex(c.src, true, tab, deflimits)
			if err != nil {
				t.Fatalf("lexing %q: %v", c.src, err)
			}
			if len(toks) != len(c.tokens) {
				t.Fatalf("lexing %q: want %v, got %v", c.src, c.tokens, toks)
			}
			for i, want := range c.tokens {
				if toks[i] != want {
					t.Errorf("lexing %q token %d: want %+v, got %+v", c.src, i, want, toks[i])
				}
			}
		})
	}
}

func TestLexTokenLimit(t *testing.T) {
	lim := limits{tokens: 3, depth: 10}
	if _, _, err := lex("1+2", false, builtins, lim); err != nil {
		t.Errorf("three tokens over limit: %v", err)
	}
	toks, _, err := lex("1+2+3", false, builtins, lim)
	if err == nil {
		t.Fatalf("five tokens under limit: %v", toks)
	}
	e, ok := err.(*Error)
	if !ok || e.Kind != KindResource || e.Offset != 3 {
		t.Errorf("wrong error: want resource error at 3, got %#v", err)
	}
	if toks != nil {
		t.Errorf("partial tokens returned: %v", toks)
	}

	// An earlier bad token takes precedence over the limit.
	toks, bad, err := lex("x+1+2", false, builtins, lim)
	if err != nil {
		t.Fatalf("limit reported over earlier bad token: %v", err)
	}
	if !bad || len(toks) != 3 || toks[0] != badtok(ErrUnrecognised, "x", 0) {
		t.Errorf("wrong tokens: want bad x first of 3, got %t %v", bad, toks)
	}
}

func TestBuiltinsValid(t *testing.T) {
	if name, why := builtins.check(); why != "" {
		t.Errorf("builtin %q: %s", name, why)
	}
	for _, f := range builtins.unary {
		if f.prec != funcprec {
			t.Errorf("unary %q has prec %d, not %d", f.name, f.prec, funcprec)
		}
	}
	for _, f := range builtins.binary {
		if f.prec < 1 || f.prec >= funcprec {
			t.Errorf("binary %q has prec %d outside [1, %d)", f.name, f.prec, funcprec)
		}
	}
}

func TestCheckRejects(t *testing.T) {
	id := func(a float64) float64 { return a }
	cases := []struct {
		name string
		tab  symtab
		bad  string
	}{
		{"empty", symtab{constant: []constant{{"", 1}}}, ""},
		{"bracket", symtab{unary: []unaryFn{{"(a", funcprec, id}}}, "(a"},
		{"digit", symtab{unary: []unaryFn{{"1a", funcprec, id}}}, "1a"},
		{"mixed", symtab{unary: []unaryFn{{"a+", funcprec, id}}}, "a+"},
		{"dup", symtab{constant: []constant{{"k", 1}, {"k", 2}}}, "k"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			name, why := c.tab.check()
			if why == "" {
				t.Fatalf("accepted bad table")
			}
			if name != c.bad {
				t.Errorf("wrong name: want %q, got %q (%s)", c.bad, name, why)
			}
		})
	}
}
