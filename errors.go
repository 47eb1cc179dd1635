package meval

import (
	"errors"
	"strconv"
)

// Kind is the stage of evaluation at which an error occurred.
type Kind int8

const (
	KindNone Kind = iota
	// KindLexical is invalid characters, numbers, or identifiers.
	KindLexical
	// KindSyntax is unbalanced brackets.
	KindSyntax
	// KindEval is a failure while running an RPN program, e.g. an undefined
	// variable or an operator missing operands.
	KindEval
	// KindResource is exceeding a configured limit.
	KindResource
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "no"
	case KindLexical:
		return "lexical"
	case KindSyntax:
		return "syntax"
	case KindEval:
		return "evaluation"
	case KindResource:
		return "resource"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// MaxErrorText is the maximum length in bytes of Error.Text.
const MaxErrorText = 32

// Error is an error evaluating an expression. It implements InputError.
//
// The exported Err values are templates describing each failure. An Error
// matches one of them under errors.Is when it has the same Kind and Msg.
type Error struct {
	// Kind is the stage that failed.
	Kind Kind
	// Offset is the byte offset in the source of the token that caused the
	// error. It is exact for lexical errors. Syntax errors report the
	// position of the last token converted before the failure, and
	// evaluation errors always report 0.
	Offset int
	// Msg describes the failure.
	Msg string
	// Text is the input text involved, if any, e.g. the name of an
	// undefined variable. It is at most MaxErrorText bytes.
	Text string
}

func (err *Error) Error() string {
	msg := err.Kind.String() + " error: " + err.Msg
	if err.Text != "" {
		msg += " " + strconv.Quote(err.Text)
	}
	return errpos(err.Offset, msg)
}

// Pos returns the offset of the error.
func (err *Error) Pos() int {
	return err.Offset
}

// Is reports whether target is an *Error with the same kind and message.
func (err *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == err.Kind && t.Msg == err.Msg
}

// at creates a copy of a template error at a position.
func (err *Error) at(pos int, text string) *Error {
	if len(text) > MaxErrorText {
		text = text[:MaxErrorText]
	}
	return &Error{Kind: err.Kind, Offset: pos, Msg: err.Msg, Text: text}
}

// Templates for every failure. Errors returned by this package are never these
// values themselves; compare with errors.Is.
var (
	// ErrUnknownChar is a character that cannot begin any token, including any
	// byte outside ASCII.
	ErrUnknownChar = &Error{Kind: KindLexical, Msg: "unknown character"}
	// ErrDecimalPoints is a number literal with more than one decimal point.
	ErrDecimalPoints = &Error{Kind: KindLexical, Msg: "too many decimal points in number"}
	// ErrInvalidNumber is a number literal with no digits.
	ErrInvalidNumber = &Error{Kind: KindLexical, Msg: "invalid number"}
	// ErrUnrecognised is an identifier that is not a builtin when variables
	// are disabled.
	ErrUnrecognised = &Error{Kind: KindLexical, Msg: "unrecognised identifier"}
	// ErrAmbiguous is an identifier naming more than one builtin.
	ErrAmbiguous = &Error{Kind: KindLexical, Msg: "ambiguous identifier"}
	// ErrEmpty is input containing no tokens.
	ErrEmpty = &Error{Kind: KindLexical, Msg: "empty or invalid input"}

	// ErrMissingOpen is a close bracket with no matching open bracket.
	ErrMissingOpen = &Error{Kind: KindSyntax, Msg: "missing open bracket"}

	// ErrUndefined is a variable with no binding. Text is its name.
	ErrUndefined = &Error{Kind: KindEval, Msg: "undefined variable"}
	// ErrFewOperands is a function or operator without enough operands, or an
	// expression that produces no value.
	ErrFewOperands = &Error{Kind: KindEval, Msg: "not enough operands"}
	// ErrManyOperands is an expression that produces more than one value.
	ErrManyOperands = &Error{Kind: KindEval, Msg: "too many operands"}

	// ErrTooManyTokens is input longer than the MaxTokens limit.
	ErrTooManyTokens = &Error{Kind: KindResource, Msg: "too many tokens"}
	// ErrTooDeep is an expression needing more stack than the MaxDepth limit.
	ErrTooDeep = &Error{Kind: KindResource, Msg: "expression nested too deeply"}
	// ErrTooManyVars is appending to a Vars that already holds MaxVars
	// bindings.
	ErrTooManyVars = &Error{Kind: KindResource, Msg: "too many variables"}
)

// ErrReleased is returned when evaluating an expression after its Release
// method has been called.
var ErrReleased = errors.New("meval: use of released expression")

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the byte offset in the source of the error.
	Pos() int
}

var _ InputError = (*Error)(nil)
