package meval

import (
	"errors"
	"strconv"
)

type token struct {
	// num is the value of a number token.
	num float64
	// name is the name of a variable token, or the offending text of an error
	// token.
	name string
	// err is the error described by an error token.
	err *Error
	// sym is the table index of a constant, unary, or binary token.
	sym  int
	kind tokenKind
	// pos is the byte offset of the token in the source.
	pos int
}

func (t token) String() string {
	var s string
	switch t.kind {
	case tokenNum:
		s = strconv.FormatFloat(t.num, 'g', -1, 64)
	case tokenVar:
		s = t.name
	case tokenConst, tokenUnary, tokenBinary:
		s = builtins.name(t)
	case tokenOpen:
		s = "("
	case tokenClose:
		s = ")"
	case tokenError:
		s = strconv.Quote(t.name)
	}
	return t.kind.String() + ":" + s + "@" + strconv.Itoa(t.pos)
}

type tokenKind int8

const (
	tokenNone tokenKind = iota
	// tokenNum is a number literal.
	tokenNum
	// tokenVar is a reference to a variable binding.
	tokenVar
	// tokenConst is a named constant.
	tokenConst
	// tokenUnary is a function of one operand.
	tokenUnary
	// tokenBinary is an operator of two operands.
	tokenBinary
	// tokenOpen and tokenClose are ( and ).
	tokenOpen
	tokenClose
	// tokenError is invalid input.
	tokenError
)

var tokenKindNames = [...]string{
	tokenNone:   "None",
	tokenNum:    "Num",
	tokenVar:    "Var",
	tokenConst:  "Const",
	tokenUnary:  "Unary",
	tokenBinary: "Binary",
	tokenOpen:   "Open",
	tokenClose:  "Close",
	tokenError:  "Error",
}

func (k tokenKind) String() string {
	if k < 0 || int(k) >= len(tokenKindNames) {
		return "tokenKind(" + strconv.Itoa(int(k)) + ")"
	}
	return tokenKindNames[k]
}

// charClass is the kind of characters that may form one identifier.
type charClass int8

const (
	classNone charClass = iota
	classLetter
	classPunct
)

// classOf returns the identifier class of an input byte. Brackets and the
// decimal point belong to no identifier class.
func classOf(c byte) charClass {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
		return classLetter
	case c == '(', c == ')', c == '.':
		return classNone
	case '!' <= c && c <= '/', ':' <= c && c <= '@', '[' <= c && c <= '`', '{' <= c && c <= '~':
		return classPunct
	default:
		return classNone
	}
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	default:
		return false
	}
}

type lexer struct {
	src  string
	pos  int
	vars bool
	tab  *symtab
	max  int
	toks []token
	bad  bool
	// m is scratch space for identifier lookups.
	m []match
}

// lex scans src into tokens. Invalid input becomes error tokens rather than
// stopping the scan, and the second result reports whether there were any.
// The only error lex returns is exceeding the token limit, and only if no
// error token came before it. Otherwise the tokens so far are returned so
// that the earlier error is the one reported.
func lex(src string, vars bool, tab *symtab, lim limits) ([]token, bool, error) {
	l := lexer{
		src:  src,
		vars: vars,
		tab:  tab,
		max:  lim.tokens,
	}
	for l.pos < len(l.src) {
		tok := l.next()
		if tok.kind == tokenNone {
			continue
		}
		toks, ok := grow(l.toks, tok, l.max)
		if !ok {
			if l.bad {
				break
			}
			return nil, false, ErrTooManyTokens.at(tok.pos, "")
		}
		l.toks = toks
		if tok.kind == tokenError {
			l.bad = true
		}
	}
	return l.toks, l.bad, nil
}

// next scans one token. Whitespace produces a token of kind tokenNone.
func (l *lexer) next() token {
	c := l.src[l.pos]
	switch {
	case isSpace(c):
		l.pos++
		return token{}
	case c == '(':
		l.pos++
		return token{kind: tokenOpen, pos: l.pos - 1}
	case c == ')':
		l.pos++
		return token{kind: tokenClose, pos: l.pos - 1}
	case isDigit(c), c == '.':
		return l.scanNum()
	case classOf(c) != classNone:
		return l.scanIdent()
	default:
		l.pos++
		return errToken(ErrUnknownChar, l.pos-1, l.src[l.pos-1:l.pos])
	}
}

// scanNum scans a run of digits and decimal points. The entire run is
// consumed even if it is not a valid number.
func (l *lexer) scanNum() token {
	start := l.pos
	dots := 0
	for ; l.pos < len(l.src); l.pos++ {
		c := l.src[l.pos]
		if c == '.' {
			dots++
		} else if !isDigit(c) {
			break
		}
	}
	text := l.src[start:l.pos]
	switch {
	case dots > 1:
		return errToken(ErrDecimalPoints, start, text)
	case text == ".":
		return errToken(ErrInvalidNumber, start, text)
	}
	v, err := strconv.ParseFloat(text, 64)
	// Out of range literals are already ±Inf or 0, which is what we want.
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		panic("meval: unparsed number " + strconv.Quote(text) + ": " + err.Error())
	}
	return token{kind: tokenNum, pos: start, num: v}
}

// scanIdent scans an identifier. The longest prefix of the run of same-class
// characters that names a symbol becomes the token, and scanning resumes
// after it. If no prefix names a symbol, the whole run is a variable.
func (l *lexer) scanIdent() token {
	start := l.pos
	cls := classOf(l.src[start])
	end := start + 1
	for end < len(l.src) && classOf(l.src[end]) == cls {
		end++
	}
	run := l.src[start:end]
	for n := len(run); n > 0; n-- {
		l.m = l.tab.lookup(l.m[:0], run[:n])
		switch len(l.m) {
		case 0:
			continue
		case 1:
			l.pos = start + n
			return token{kind: l.m[0].kind, pos: start, sym: l.m[0].sym}
		default:
			l.pos = start + n
			return errToken(ErrAmbiguous, start, run[:n])
		}
	}
	l.pos = end
	if !l.vars {
		return errToken(ErrUnrecognised, start, run)
	}
	return token{kind: tokenVar, pos: start, name: truncName(run)}
}

func errToken(err *Error, pos int, text string) token {
	return token{kind: tokenError, pos: pos, err: err, name: text}
}
