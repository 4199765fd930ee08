/*
 * Curly
 *
 * Copyright 2016 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package parser

import (
	"fmt"
	"testing"
)

func readAll(ts *TokenStream) []string {
	var res []string

	for ts.HasNext() {
		res = append(res, ts.Next())
	}

	return res
}

func TestTokenizing(t *testing.T) {
	g := DefaultGrammar()

	ts, err := NewTokenStream("mytest", g, "{{ //comment <HI> 1 1 + rest text 3 2 * 10 + <NOW> end }}")
	if err != nil {
		t.Error(err)
		return
	}

	if ts.Len() != 13 || ts.Pos() != 0 {
		t.Error("Unexpected result:", ts)
		return
	}

	if res := fmt.Sprintf("%q", readAll(ts)); res !=
		`["<HI>" "1" "1" "+" "rest" "text" "3" "2" "*" "10" "+" "<NOW>" "end"]` {
		t.Error("Unexpected result:", res)
		return
	}

	if ts.HasNext() || ts.Pos() != 13 {
		t.Error("Unexpected result:", ts)
		return
	}

	// Comments and blank tokens are dropped regardless of their position

	ts, err = NewTokenStream("mytest", g, "{{a  //x b   //y\t c\t \t}}")
	if err != nil {
		t.Error(err)
		return
	}

	if res := fmt.Sprintf("%q", readAll(ts)); res != `["a" "b" "c\t"]` {
		t.Error("Unexpected result:", res)
		return
	}

	// Empty program

	ts, err = NewTokenStream("mytest", g, "{{}}")
	if err != nil || ts.HasNext() || ts.Len() != 0 {
		t.Error("Unexpected result:", ts, err)
		return
	}

	// Only the first occurrence of each marker is removed

	ts, _ = NewTokenStream("mytest", g, "{{ a {{ b }} }}")

	if res := fmt.Sprintf("%q", readAll(ts)); res != `["a" "{{" "b" "}}"]` {
		t.Error("Unexpected result:", res)
		return
	}

	ts, _ = NewTokenStream("mytest", g, "{{a}}b}}")

	if res := fmt.Sprintf("%q", readAll(ts)); res != `["ab}}"]` {
		t.Error("Unexpected result:", res)
		return
	}

	// Custom grammar

	ts, err = NewTokenStream("mytest", Grammar{"BEGIN", "END", "#"}, "BEGIN x #y z END")
	if err != nil {
		t.Error(err)
		return
	}

	if res := fmt.Sprintf("%q", readAll(ts)); res != `["x" "z"]` {
		t.Error("Unexpected result:", res)
		return
	}
}

func TestTokenizingErrors(t *testing.T) {
	g := DefaultGrammar()

	for _, input := range []string{"", "{{", "}}", " {{ a }}", "{{ a }} ", "{ a }}", "{{ a }"} {

		_, err := NewTokenStream("mytest", g, input)

		if perr, ok := err.(*Error); !ok || perr.Type != ErrInvalidFormat {
			t.Error("Unexpected result for", input, ":", err)
			return
		}
	}

	if _, err := NewTokenStream("mytest", g, "{{ a"); err == nil || err.Error() !=
		"Parse error in mytest: Invalid language format (Program must end with }})" {
		t.Error("Unexpected result:", err)
		return
	}

	if _, err := NewTokenStream("mytest", g, "a }}"); err == nil || err.Error() !=
		"Parse error in mytest: Invalid language format (Program must start with {{)" {
		t.Error("Unexpected result:", err)
		return
	}

	if err := newParserError("foo", ErrInvalidFormat, ""); err.Error() !=
		"Parse error in foo: Invalid language format" {
		t.Error("Unexpected result:", err)
		return
	}
}

func TestTokenStreamExhausted(t *testing.T) {
	ts, _ := NewTokenStream("mytest", DefaultGrammar(), "{{ a }}")

	if res := ts.Next(); res != "a" {
		t.Error("Unexpected result:", res)
		return
	}

	defer func() {
		if r := recover(); r == nil {
			t.Error("Reading past the end should panic")
		}
	}()

	ts.Next()
}

func TestCommandName(t *testing.T) {

	for token, expected := range map[string]string{
		"<HI>":   "HI",
		"<hi>":   "hi",
		"<>":     "",
		"<A_1>":  "A_1",
		"<a b>":  "a b",
		"<NOW>x": "-",
		"x<NOW>": "-",
		"<<HI>>": "-",
		"<H>I>":  "-",
		"<":      "-",
		">":      "-",
		"HI":     "-",
		"":       "-",
	} {
		name, ok := CommandName(token)

		if !ok {
			name = "-"
		}

		if name != expected {
			t.Error("Unexpected result for", token, ":", name, ok)
			return
		}
	}
}
