package meval

import "strconv"

// Option is an option for compiling or evaluating an expression.
type Option interface {
	option(*limits)
}

// limits holds the sizes beyond which an evaluation fails with a resource
// error.
type limits struct {
	// tokens is the maximum number of tokens in the input.
	tokens int
	// depth is the maximum size of the operator and operand stacks.
	depth int
}

var deflimits = limits{
	tokens: 1 << 16,
	depth:  1 << 12,
}

type (
	tokensopt int
	depthopt  int
)

// MaxTokens limits the number of tokens an expression may contain. Panics if
// n is not positive.
func MaxTokens(n int) Option {
	if n <= 0 {
		panic("meval: invalid token limit " + strconv.Itoa(n))
	}
	return tokensopt(n)
}

func (o tokensopt) option(l *limits) {
	l.tokens = int(o)
}

// MaxDepth limits the number of pending operators and operands during
// evaluation, which bounds bracket nesting and the length of chains of
// functions. Panics if n is not positive.
func MaxDepth(n int) Option {
	if n <= 0 {
		panic("meval: invalid depth limit " + strconv.Itoa(n))
	}
	return depthopt(n)
}

func (o depthopt) option(l *limits) {
	l.depth = int(o)
}

// getlimits applies options in order to the default limits.
func getlimits(opts []Option) limits {
	l := deflimits
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt.option(&l)
	}
	return l
}
