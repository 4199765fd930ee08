/*
 * Curly
 *
 * Copyright 2016 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

/*
Package console contains the console command processor for Curly.

A console line is either a console command (e.g. help) or a Curly program.
Multiple console commands can be given in one line separated by ';'.
*/
package console

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/krotik/curly/lang"
)

/*
NewConsole creates a new Console object which runs programs in a given session
and outputs the result to the Writer. It optionally exports data with the given
export function via the export command. Export is disabled if no export function
is defined.
*/
func NewConsole(out io.Writer, session *lang.Session,
	exportFunc func([]string, *bytes.Buffer) error) CommandConsole {

	cmdMap := make(map[string]Command)

	cmdMap[CommandHelp] = &CmdHelp{}
	cmdMap[CommandVer] = &CmdVer{}
	cmdMap[CommandCmds] = &CmdCmds{}
	cmdMap[CommandHistory] = &CmdHistory{}

	// Add export if we got an export function

	if exportFunc != nil {
		cmdMap[CommandExport] = &CmdExport{exportFunc}
	}

	c := &CurlyConsole{session, out, bytes.NewBuffer(nil), nil, cmdMap}

	c.childConsoles = []CommandConsole{&ProgramConsole{c}}

	return c
}

/*
CommandConsole is the main interface for command processors.
*/
type CommandConsole interface {

	/*
		Run executes one or more commands. It returns an error if the command
		had an unexpected result and a flag if the command was handled.
	*/
	Run(cmd string) (bool, error)

	/*
	   Commands returns a sorted list of all available commands.
	*/
	Commands() []Command
}

/*
CommandConsoleAPI is the console interface which commands can use to access the session.
*/
type CommandConsoleAPI interface {
	CommandConsole

	/*
	   Session returns the session which runs all programs.
	*/
	Session() *lang.Session

	/*
		Out returns a writer which can be used to write to the console.
	*/
	Out() io.Writer

	/*
	   ExportBuffer returns a buffer which can be used to write exportable data.
	*/
	ExportBuffer() *bytes.Buffer
}

/*
Command describes an available command.
*/
type Command interface {
	/*
	   Name returns the command name (as it should be typed).
	*/
	Name() string

	/*
	   ShortDescription returns a short description of the command (single line).
	*/
	ShortDescription() string

	/*
	   LongDescription returns an extensive description of the command (can be multiple lines).
	*/
	LongDescription() string

	/*
		Run executes the command.
	*/
	Run(args []string, capi CommandConsoleAPI) error
}

// Curly Console
// =============

/*
CurlyConsole implements the basic console functionality like help and version.
*/
type CurlyConsole struct {
	session       *lang.Session    // Session which runs all programs
	out           io.Writer        // Output for this console
	export        *bytes.Buffer    // Export buffer
	childConsoles []CommandConsole // List of child consoles

	CommandMap map[string]Command // Map of registered commands
}

/*
Session returns the session which runs all programs.
*/
func (c *CurlyConsole) Session() *lang.Session {
	return c.session
}

/*
Out returns a writer which can be used to write to the console.
*/
func (c *CurlyConsole) Out() io.Writer {
	return c.out
}

/*
ExportBuffer returns a buffer which can be used to write exportable data.
*/
func (c *CurlyConsole) ExportBuffer() *bytes.Buffer {
	return c.export
}

/*
Run executes one or more commands. It returns an error if the command
had an unexpected result and a flag if the command was handled.
*/
func (c *CurlyConsole) Run(cmd string) (bool, error) {
	var cmds []string

	// Programs are never split and are passed on as they are

	if cmdStartsWithKeyword(cmd, []string{lang.GrammarFromConfig().Start}) {
		cmds = []string{cmd}
	} else {
		for _, s := range strings.Split(cmd, ";") {
			cmds = append(cmds, strings.TrimSpace(s))
		}
	}

	for _, cmd := range cmds {

		if strings.TrimSpace(cmd) == "" {
			continue
		}

		// Run the command and return if there is an error

		if ok, err := c.RunCommand(cmd); err != nil {

			// Return if there was an unexpected error

			return false, err

		} else if !ok {

			// Try child consoles

			handled := false

			for _, c := range c.childConsoles {

				if ok, err := c.Run(cmd); err != nil {
					return ok, err
				} else if ok {
					handled = true
					break
				}
			}

			if !handled {
				return false, fmt.Errorf("Unknown command")
			}
		}
	}

	// Everything was handled

	return true, nil
}

/*
RunCommand executes a single command. It returns an error for unexpected results and
a flag if the command was handled.
*/
func (c *CurlyConsole) RunCommand(cmdString string) (bool, error) {
	cmdSplit := strings.Fields(cmdString)

	if len(cmdSplit) > 0 {
		cmd := cmdSplit[0]
		args := cmdSplit[1:]

		// Reset the export buffer if we are not exporting

		if cmd != CommandExport {
			c.export.Reset()
		}

		if cmdObj, ok := c.CommandMap[cmd]; ok {
			return true, cmdObj.Run(args, c)
		} else if cmd == "?" {
			return true, c.CommandMap[CommandHelp].Run(args, c)
		}
	}

	return false, nil
}

/*
Commands returns a sorted list of all available commands.
*/
func (c *CurlyConsole) Commands() []Command {
	var res []Command

	for _, c := range c.CommandMap {
		res = append(res, c)
	}

	sort.Slice(res, func(i, j int) bool {
		return res[i].Name() < res[j].Name()
	})

	return res
}

// Util functions
// ==============

/*
cmdStartsWithKeyword checks if a given command line starts with a given list
of keywords.
*/
func cmdStartsWithKeyword(cmd string, keywords []string) bool {
	ss := strings.Fields(strings.ToLower(cmd))

	if len(ss) > 0 {
		firstCmd := ss[0]

		for _, k := range keywords {
			k = strings.ToLower(k)

			if k != "" && (k == firstCmd || strings.HasPrefix(firstCmd, k)) {
				return true
			}
		}
	}

	return false
}
