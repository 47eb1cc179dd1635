package meval

import (
	"math"
	"strconv"
)

type unaryFn struct {
	name string
	prec int8
	fn   func(float64) float64
}

type binaryFn struct {
	name string
	prec int8
	fn   func(a, b float64) float64
}

type constant struct {
	name  string
	value float64
}

// symtab is a set of symbol tables used to resolve identifiers. Names are
// either entirely letters or entirely punctuation and never contain brackets.
type symtab struct {
	unary    []unaryFn
	binary   []binaryFn
	constant []constant
}

// funcprec is the precedence of every unary function. It is higher than any
// binary operator.
const funcprec = 7

func truth(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// builtins is the symbol table used by all evaluations. It must not be
// modified.
var builtins = &symtab{
	unary: []unaryFn{
		{"_", funcprec, func(a float64) float64 { return -a }},
		{"sin", funcprec, math.Sin},
		{"cos", funcprec, math.Cos},
		{"tan", funcprec, math.Tan},
		{"asin", funcprec, math.Asin},
		{"acos", funcprec, math.Acos},
		{"atan", funcprec, math.Atan},
		{"cosec", funcprec, func(a float64) float64 { return 1 / math.Sin(a) }},
		{"sec", funcprec, func(a float64) float64 { return 1 / math.Cos(a) }},
		{"cot", funcprec, func(a float64) float64 { return 1 / math.Tan(a) }},
		{"log", funcprec, math.Log},
		{"ln", funcprec, math.Log},
		{"exp", funcprec, math.Exp},
		{"sqrt", funcprec, math.Sqrt},
		{"sinh", funcprec, math.Sinh},
		{"cosh", funcprec, math.Cosh},
		{"tanh", funcprec, math.Tanh},
	},
	binary: []binaryFn{
		{"+", 4, func(a, b float64) float64 { return a + b }},
		{"-", 4, func(a, b float64) float64 { return a - b }},
		{"*", 5, func(a, b float64) float64 { return a * b }},
		{"/", 5, func(a, b float64) float64 { return a / b }},
		{"^", 6, math.Pow},
		{"=", 3, func(a, b float64) float64 { return truth(a == b) }},
		{">", 3, func(a, b float64) float64 { return truth(a > b) }},
		{"<", 3, func(a, b float64) float64 { return truth(a < b) }},
		{">=", 3, func(a, b float64) float64 { return truth(a >= b) }},
		{"<=", 3, func(a, b float64) float64 { return truth(a <= b) }},
		{"&", 2, func(a, b float64) float64 { return truth(a != 0 && b != 0) }},
		{"|", 1, func(a, b float64) float64 { return truth(a != 0 || b != 0) }},
	},
	constant: []constant{
		{"pi", math.Pi},
		{"e", math.E},
	},
}

// match is a table entry whose name equals a candidate identifier.
type match struct {
	kind tokenKind
	sym  int
}

// lookup appends to dst every entry in any table named exactly name.
func (t *symtab) lookup(dst []match, name string) []match {
	for i, f := range t.unary {
		if f.name == name {
			dst = append(dst, match{tokenUnary, i})
		}
	}
	for i, f := range t.binary {
		if f.name == name {
			dst = append(dst, match{tokenBinary, i})
		}
	}
	for i, c := range t.constant {
		if c.name == name {
			dst = append(dst, match{tokenConst, i})
		}
	}
	return dst
}

// prec returns the precedence of a function or operator token, or 0 for any
// other kind.
func (t *symtab) prec(tok token) int8 {
	switch tok.kind {
	case tokenUnary:
		return t.unary[tok.sym].prec
	case tokenBinary:
		return t.binary[tok.sym].prec
	default:
		return 0
	}
}

// name returns the table name of a symbol token.
func (t *symtab) name(tok token) string {
	switch tok.kind {
	case tokenUnary:
		return t.unary[tok.sym].name
	case tokenBinary:
		return t.binary[tok.sym].name
	case tokenConst:
		return t.constant[tok.sym].name
	default:
		panic("meval: name of non-symbol token " + tok.kind.String())
	}
}

// check verifies the naming rules the lexer relies on. It returns the first
// violating name with a description, or two empty strings. A name may appear
// in more than one table; the lexer reports such names as ambiguous.
func (t *symtab) check() (string, string) {
	tables := [3][]string{}
	for _, f := range t.unary {
		tables[0] = append(tables[0], f.name)
	}
	for _, f := range t.binary {
		tables[1] = append(tables[1], f.name)
	}
	for _, c := range t.constant {
		tables[2] = append(tables[2], c.name)
	}
	for _, names := range tables {
		seen := make(map[string]bool, len(names))
		for _, name := range names {
			if name == "" {
				return name, "empty name"
			}
			cls := classOf(name[0])
			if cls == classNone {
				return name, "starts with " + strconv.QuoteRune(rune(name[0]))
			}
			for i := 1; i < len(name); i++ {
				if classOf(name[i]) != cls {
					return name, "mixes character classes"
				}
			}
			if seen[name] {
				return name, "defined twice in one table"
			}
			seen[name] = true
		}
	}
	return "", ""
}
