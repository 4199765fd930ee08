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
	"fmt"
	"io"
	"sort"
	"time"
)

/*
Command is a reserved command which can be invoked from a program with <NAME>.
A command produces no text in the output - it only has a side effect.
*/
type Command interface {

	/*
		Run executes the command.
	*/
	Run() error

	/*
		Description returns a short description of the command (single line).
	*/
	Description() string
}

/*
CommandTable maps reserved command names to commands. A table is not
modified by the interpreter and can be shared between interpreters.
*/
type CommandTable map[string]Command

/*
Names returns a sorted list of all command names in this table.
*/
func (ct CommandTable) Names() []string {
	var res []string

	for name := range ct {
		res = append(res, name)
	}

	sort.Strings(res)

	return res
}

/*
Merge adds all commands of a given table to this table. Existing commands
with the same name are replaced.
*/
func (ct CommandTable) Merge(other CommandTable) CommandTable {
	for name, cmd := range other {
		ct[name] = cmd
	}

	return ct
}

/*
FuncCommand is a command which runs a given function.
*/
type FuncCommand struct {
	Desc   string       // Description of the command
	Action func() error // Action which is run
}

/*
Run executes the command.
*/
func (fc *FuncCommand) Run() error {
	return fc.Action()
}

/*
Description returns a short description of the command (single line).
*/
func (fc *FuncCommand) Description() string {
	return fc.Desc
}

// Default commands
// ================

/*
Default command names
*/
const (
	CommandHi  = "HI"
	CommandBye = "BYE"
	CommandNow = "NOW"
)

/*
now is the time source of the NOW command (used by unit tests)
*/
var now = time.Now

/*
DefaultCommands returns a new table with the default commands. All commands
write their messages to the given writer.
*/
func DefaultCommands(out io.Writer) CommandTable {
	return CommandTable{

		CommandHi: &FuncCommand{"Writes a greeting.", func() error {
			_, err := fmt.Fprintln(out, "Hello there!")
			return err
		}},

		CommandBye: &FuncCommand{"Writes a farewell.", func() error {
			_, err := fmt.Fprintln(out, "Goodbye!")
			return err
		}},

		CommandNow: &FuncCommand{"Writes the current date and time.", func() error {
			_, err := fmt.Fprintln(out, fmt.Sprintf("Today is %v.",
				now().Format(time.RFC1123)))
			return err
		}},
	}
}
