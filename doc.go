// Package meval implements a small floating-point arithmetic expression
// engine.
//
// Expressions are written in ordinary infix notation: "2+3*4" is 14 and
// "sin(pi/2)" is 1. Negation is the prefix function "_", so "_2^2" is 4 and
// "2*_3" is -6. Binary operators are left-associative, including
// exponentiation: "2^3^2" is 64. Comparisons (= < > <= >=) and logic (& |)
// produce 1 or 0.
//
// A function applied directly to another function needs brackets: "_(_3)" is
// 3, but "__3" and "sin cos 0" are missing operands.
//
// Identifiers are resolved against fixed tables of functions, operators, and
// constants by longest prefix, so "sinx" is "sin x". Names that match nothing
// are variables when the caller supplies bindings.
//
// Compile turns an expression into an RPN program once so that it can be
// evaluated for many sets of variables without parsing again.
package meval
