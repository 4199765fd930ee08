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
	"testing"
)

func evalTokens(tokens ...string) (*PostfixEvaluator, bool) {
	pe := NewPostfixEvaluator()
	ok := true

	for _, t := range tokens {
		ok = pe.Consume(t) && ok
	}

	return pe, ok
}

func TestPostfixOperators(t *testing.T) {

	// Operators apply the most recent operand as left operand

	for _, test := range []struct {
		tokens   []string
		expected float64
	}{
		{[]string{"3", "4", "+"}, 7},
		{[]string{"3", "4", "-"}, 1},
		{[]string{"4", "3", "-"}, -1},
		{[]string{"3", "4", "*"}, 12},
		{[]string{"2", "8", "/"}, 4},
		{[]string{"8", "2", "/"}, 0.25},
		{[]string{"3", "2", "*", "10", "+"}, 16},
		{[]string{"1.5", "-0.5", "+"}, 1},
		{[]string{"+2", "1e2", "-"}, 98},
	} {
		pe, ok := evalTokens(test.tokens...)

		if !ok || pe.Depth() != 1 {
			t.Error("Unexpected result for", test.tokens, ":", ok, pe.Depth())
			return
		}

		if res := pe.TakeResult(); res != test.expected {
			t.Error("Unexpected result for", test.tokens, ":", res, "expected:", test.expected)
			return
		}
	}

	// Division by zero is not guarded

	pe, _ := evalTokens("0", "1", "/")
	if res := pe.TakeResult(); !math.IsInf(res, 1) || FormatNumber(res) != "Infinity" {
		t.Error("Unexpected result:", res)
		return
	}

	pe, _ = evalTokens("0", "0", "/")
	if res := pe.TakeResult(); !math.IsNaN(res) || FormatNumber(res) != "NaN" {
		t.Error("Unexpected result:", res)
		return
	}
}

func TestPostfixInsufficientOperands(t *testing.T) {
	pe := NewPostfixEvaluator()

	for _, op := range []string{"+", "-", "*", "/"} {
		if pe.Consume(op) {
			t.Error("Operator should not be consumed on an empty stack:", op)
			return
		}
	}

	if pe.ConsumeResultPending() {
		t.Error("Unexpected pending result")
		return
	}

	if !pe.Consume("5") || pe.Consume("+") || pe.Depth() != 1 {
		t.Error("Operator should not be consumed with a single operand")
		return
	}

	// Everything else is not consumed either

	for _, token := range []string{"hello", "<HI>", "++", "0x10", "Inf", "NaN",
		"-infinity", "1_000", "1e400", "1,5", ""} {

		if pe.Consume(token) {
			t.Error("Unexpected consumed token:", token)
			return
		}
	}

	if pe.Depth() != 1 {
		t.Error("Unexpected stack depth:", pe.Depth())
		return
	}
}

func TestPostfixPendingFlag(t *testing.T) {
	pe := NewPostfixEvaluator()

	if pe.ConsumeResultPending() {
		t.Error("Unexpected pending result")
		return
	}

	pe.Consume("1")
	pe.Consume("2")

	// The flag is reported once per burst of numeric activity

	if !pe.ConsumeResultPending() || pe.ConsumeResultPending() {
		t.Error("Unexpected pending flag")
		return
	}

	// Taking a result does not clear the rest of the stack

	if res := pe.TakeResult(); res != 2 || pe.Depth() != 1 {
		t.Error("Unexpected result:", res, pe.Depth())
		return
	}

	pe.Consume("3")
	pe.Consume("+")

	if !pe.ConsumeResultPending() {
		t.Error("Unexpected pending flag")
		return
	}

	if res := pe.TakeResult(); res != 4 || pe.Depth() != 0 {
		t.Error("Unexpected result:", res, pe.Depth())
		return
	}

	defer func() {
		if r := recover(); r == nil {
			t.Error("Taking from an empty stack should panic")
		}
	}()

	pe.TakeResult()
}

func TestFormatNumber(t *testing.T) {

	for v, expected := range map[float64]string{
		2:               "2",
		16:              "16",
		-3:              "-3",
		0.5:             "0.5",
		1e20:            "100000000000000000000",
		1e21:            "1e+21",
		-1.5e22:         "-1.5e+22",
		0.000001:        "0.000001",
		1.5e-7:          "1.5e-7",
		1e-100:          "1e-100",
		math.Inf(-1):    "-Infinity",
		1.0 / 3.0 * 3.0: "1",
	} {
		if res := FormatNumber(v); res != expected {
			t.Error("Unexpected result:", res, "expected:", expected)
			return
		}
	}

	if res := FormatNumber(math.Copysign(0, -1)); res != "0" {
		t.Error("Unexpected result:", res)
		return
	}

	if res, ok := ParseNumber("-12.5"); !ok || res != -12.5 {
		t.Error("Unexpected result:", res, ok)
		return
	}
}
