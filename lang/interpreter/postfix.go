/*
 * Curly
 *
 * Copyright 2016 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package interpreter

import (
	"math"
	"strconv"
	"strings"

	"github.com/krotik/common/errorutil"
)

/*
Arithmetic operators which are understood by the postfix evaluator
*/
const (
	OpPlus  = "+"
	OpMinus = "-"
	OpTimes = "*"
	OpDiv   = "/"
)

/*
operators maps operator tokens to their implementation. The first parameter
is always the most recently pushed operand.
*/
var operators = map[string]func(b, a float64) float64{
	OpPlus:  func(b, a float64) float64 { return b + a },
	OpMinus: func(b, a float64) float64 { return b - a },
	OpTimes: func(b, a float64) float64 { return b * a },
	OpDiv:   func(b, a float64) float64 { return b / a },
}

/*
PostfixEvaluator is a stack machine which evaluates postfix expressions one
token at a time. The operand stack is kept for the whole lifetime of the
evaluator - values which are not taken stay on the stack.
*/
type PostfixEvaluator struct {
	stack   []float64 // Operand stack
	pending bool      // Flag if there was numeric activity since the last check
}

/*
NewPostfixEvaluator creates a new PostfixEvaluator object.
*/
func NewPostfixEvaluator() *PostfixEvaluator {
	return &PostfixEvaluator{make([]float64, 0, 8), false}
}

/*
Consume processes a given token. Numbers are pushed on the operand stack,
operators are applied if there are at least two operands. Returns false if
the token is neither.

Surrounding whitespace like line breaks is ignored for numbers. Operators
must match exactly. An operator pops b (top) and a (below) and pushes b OP a.
*/
func (pe *PostfixEvaluator) Consume(token string) bool {

	if v, ok := ParseNumber(strings.TrimSpace(token)); ok {

		pe.push(v)
		pe.pending = true

		return true
	}

	if op, ok := operators[token]; ok && len(pe.stack) >= 2 {

		b := pe.pop()
		a := pe.pop()

		pe.push(op(b, a))
		pe.pending = true

		return true
	}

	return false
}

/*
TakeResult pops the top value from the operand stack.
*/
func (pe *PostfixEvaluator) TakeResult() float64 {
	errorutil.AssertTrue(len(pe.stack) > 0, "Operand stack is empty")

	return pe.pop()
}

/*
ConsumeResultPending returns true exactly once after numeric activity
happened. The flag is reset by this call.
*/
func (pe *PostfixEvaluator) ConsumeResultPending() bool {
	if pe.pending {
		pe.pending = false
		return true
	}

	return false
}

/*
Depth returns the number of values on the operand stack.
*/
func (pe *PostfixEvaluator) Depth() int {
	return len(pe.stack)
}

func (pe *PostfixEvaluator) push(v float64) {
	pe.stack = append(pe.stack, v)
}

func (pe *PostfixEvaluator) pop() float64 {
	l := len(pe.stack) - 1
	v := pe.stack[l]
	pe.stack = pe.stack[:l]

	return v
}

// Helper functions
// ================

/*
ParseNumber parses a finite decimal number with an optional sign.
*/
func ParseNumber(token string) (float64, bool) {

	// Hex notation and special values like Inf or NaN are not numbers in Curly

	if strings.ContainsAny(token, "xXpP_") {
		return 0, false
	}

	v, err := strconv.ParseFloat(token, 64)

	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}

	return v, true
}

/*
FormatNumber returns the shortest textual representation of a number. Very
large and very small numbers are written in exponent notation (e.g. 1e+21).
Negative zero is written as 0.
*/
func FormatNumber(v float64) string {

	switch {
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case math.IsNaN(v):
		return "NaN"
	case v == 0:
		return "0"
	}

	if a := math.Abs(v); a < 1e21 && a >= 1e-6 {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}

	// Exponents are written without leading zeros

	s := strconv.FormatFloat(v, 'e', -1, 64)
	i := strings.IndexByte(s, 'e')

	return s[:i+2] + strings.TrimLeft(s[i+2:], "0")
}
