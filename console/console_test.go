/*
 * Curly
 *
 * Copyright 2016 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/krotik/curly/config"
	"github.com/krotik/curly/lang"
	"github.com/krotik/curly/lang/interpreter"
)

/*
normalize removes trailing spaces from all lines of a given table output.
*/
func normalize(s string) string {
	lines := strings.Split(s, "\n")

	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}

	return strings.Join(lines, "\n")
}

func TestBasicCommands(t *testing.T) {
	var out bytes.Buffer
	var export bytes.Buffer

	config.Config = nil

	c := NewConsole(&out, lang.NewSession("console", 10, nil),
		func(args []string, e *bytes.Buffer) error {
			export = *e
			return nil
		})

	if ok, err := c.Run("help"); !ok || err != nil {
		t.Error(ok, err)
		return
	}

	if res := normalize(out.String()); res != `
Command Description
cmds    Lists all available reserved commands.
export  Exports the last output.
help    Display descriptions for all available commands.
history Displays the most recent runs.
ver     Displays version information.
`[1:] {
		t.Error("Unexpected result:", res)
		return
	}

	out.Reset()

	if ok, err := c.Run("ver; ? ver;"); !ok || err != nil {
		t.Error(ok, err)
		return
	}

	if res := out.String(); res != `
Curly 1.0.0
Displays version information.
`[1:] {
		t.Error("Unexpected result:", res)
		return
	}

	if ok, err := c.Run("export"); !ok || err != nil || export.String() != "Displays version information." {
		t.Error(ok, err, export.String())
		return
	}

	if ok, err := c.Run("help foo"); ok || err == nil || err.Error() != "Unknown command: foo" {
		t.Error(ok, err)
		return
	}

	out.Reset()

	if ok, err := c.Run("cmds"); !ok || err != nil {
		t.Error(ok, err)
		return
	}

	if res := normalize(out.String()); res != `
Command Description
<BYE>   Writes a farewell.
<HI>    Writes a greeting.
<NOW>   Writes the current date and time.
`[1:] {
		t.Error("Unexpected result:", res)
		return
	}

	if len(c.Commands()) != 5 {
		t.Error("Unexpected commands:", c.Commands())
		return
	}
}

func TestPrograms(t *testing.T) {
	var out bytes.Buffer

	config.Config = nil

	session := lang.NewSession("console", 10, nil)

	session.Commands["greet"] = &interpreter.FuncCommand{Desc: "Greets the world.", Action: func() error {
		_, err := out.WriteString("Hello world\n")
		return err
	}}

	c := NewConsole(&out, session, nil)

	if ok, err := c.Run("{{ <HI> 1 2 + x <greet> }}"); !ok || err != nil {
		t.Error(ok, err)
		return
	}

	if res := out.String(); res != `
Hello there!
Hello world
3 x
`[1:] {
		t.Error("Unexpected result:", res)
		return
	}

	out.Reset()

	// Programs are not split

	if ok, err := c.Run("{{ a;b 2 2 * ; }}"); !ok || err != nil || out.String() != "a;b 4 ;\n" {
		t.Error(ok, err, out.String())
		return
	}

	// Errors

	if ok, err := c.Run("{{ <QUUX> }}"); !ok || err == nil || err.Error() !=
		"Curly error in console-3: Unknown reserved command (Invalid syntax near <QUUX>) (Token:1)" {
		t.Error(ok, err)
		return
	}

	if ok, err := c.Run("ver; foo"); !ok || err == nil || err.Error() !=
		"Parse error in console-4: Invalid language format (Program must start with {{)" {
		t.Error(ok, err)
		return
	}

	out.Reset()

	if ok, err := c.Run("history"); !ok || err != nil {
		t.Error(ok, err)
		return
	}

	if res := normalize(out.String()); res != `
Source    Program                    Result
console-1 {{ <HI> 1 2 + x <greet> }} 3 x
console-2 {{ a;b 2 2 * ; }}          a;b 4 ;
console-3 {{ <QUUX> }}               Error: Curly error in console-3: Unknown reserved command (Invalid syntax near <QUUX>) (Token:1)
console-4 foo                        Error: Parse error in console-4: Invalid language format (Program must start with {{)
4 runs
`[1:] {
		t.Error("Unexpected result:", res)
		return
	}

	if ok, err := c.Run("history foo"); ok || err == nil || err.Error() != "Unknown parameter: foo" {
		t.Error(ok, err)
		return
	}

	out.Reset()

	if ok, err := c.Run("history clear;history"); !ok || err != nil {
		t.Error(ok, err)
		return
	}

	if res := normalize(out.String()); !strings.HasPrefix(res, `
History cleared
Source Program Result
0 run`[1:]) {
		t.Error("Unexpected result:", res)
		return
	}

	// Program lines are not trimmed

	out.Reset()

	if ok, err := c.Run("   {{ a }}   "); !ok || err == nil || err.Error() !=
		"Parse error in console-5: Invalid language format (Program must start with {{)" {
		t.Error(ok, err)
		return
	}

	if ok, err := c.Run("{{ a }}   "); !ok || err == nil || err.Error() !=
		"Parse error in console-6: Invalid language format (Program must end with }})" {
		t.Error(ok, err)
		return
	}

	// Separated lines are trimmed

	if ok, err := c.Run("ver; {{ a 1 }}  ;  {{ 2 b }}"); !ok || err != nil ||
		out.String() != "Curly 1.0.0\na\n2 b\n" {
		t.Error(ok, err, out.String())
		return
	}

	// Export is not available without an export function

	if _, ok := c.(*CurlyConsole).CommandMap[CommandExport]; ok {
		t.Error("Export command should not be available")
		return
	}
}

func TestCmdStartsWithKeyword(t *testing.T) {

	if !cmdStartsWithKeyword("  {{ 1 }}", []string{"{{"}) {
		t.Error("Unexpected result")
		return
	}

	if !cmdStartsWithKeyword("BEGIN 1 END", []string{"begin"}) {
		t.Error("Unexpected result")
		return
	}

	if cmdStartsWithKeyword("help", []string{"{{", ""}) || cmdStartsWithKeyword("", []string{"{{"}) {
		t.Error("Unexpected result")
		return
	}
}
