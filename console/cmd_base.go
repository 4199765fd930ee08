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
	"fmt"

	"github.com/krotik/common/stringutil"
	"github.com/krotik/curly/config"
	"github.com/krotik/curly/lang/interpreter"
)

// Command: ver
// ============

/*
CommandVer is a command name.
*/
const CommandVer = "ver"

/*
CmdVer displays version information.
*/
type CmdVer struct {
}

/*
Name returns the command name (as it should be typed)
*/
func (c *CmdVer) Name() string {
	return CommandVer
}

/*
ShortDescription returns a short description of the command (single line)
*/
func (c *CmdVer) ShortDescription() string {
	return "Displays version information."
}

/*
LongDescription returns an extensive description of the command (can be multiple lines)
*/
func (c *CmdVer) LongDescription() string {
	return "Displays version information."
}

/*
Run executes the command.
*/
func (c *CmdVer) Run(args []string, capi CommandConsoleAPI) error {
	fmt.Fprintln(capi.Out(), fmt.Sprintf("Curly %v", config.ProductVersion))
	return nil
}

// Command: cmds
// =============

/*
CommandCmds is a command name.
*/
const CommandCmds = "cmds"

/*
CmdCmds lists all available reserved commands.
*/
type CmdCmds struct {
}

/*
Name returns the command name (as it should be typed)
*/
func (c *CmdCmds) Name() string {
	return CommandCmds
}

/*
ShortDescription returns a short description of the command (single line)
*/
func (c *CmdCmds) ShortDescription() string {
	return "Lists all available reserved commands."
}

/*
LongDescription returns an extensive description of the command (can be multiple lines)
*/
func (c *CmdCmds) LongDescription() string {
	return "Lists all reserved commands which can be used in programs. " +
		"Reserved commands are written as <NAME>."
}

/*
Run executes the command.
*/
func (c *CmdCmds) Run(args []string, capi CommandConsoleAPI) error {

	commands := interpreter.DefaultCommands(nil).Merge(capi.Session().Commands)

	var tab []string

	tab = append(tab, "Command")
	tab = append(tab, "Description")

	for _, name := range commands.Names() {
		tab = append(tab, fmt.Sprintf("<%v>", name))
		tab = append(tab, commands[name].Description())
	}

	capi.ExportBuffer().WriteString(stringutil.PrintCSVTable(tab, 2))

	fmt.Fprint(capi.Out(), stringutil.PrintStringTable(tab, 2))

	return nil
}

// Command: history
// ================

/*
CommandHistory is a command name.
*/
const CommandHistory = "history"

/*
CmdHistory displays the most recent runs.
*/
type CmdHistory struct {
}

/*
Name returns the command name (as it should be typed)
*/
func (c *CmdHistory) Name() string {
	return CommandHistory
}

/*
ShortDescription returns a short description of the command (single line)
*/
func (c *CmdHistory) ShortDescription() string {
	return "Displays the most recent runs."
}

/*
LongDescription returns an extensive description of the command (can be multiple lines)
*/
func (c *CmdHistory) LongDescription() string {
	return "Displays the most recent runs and their outcome. Use 'history clear' to clear the history."
}

/*
Run executes the command.
*/
func (c *CmdHistory) Run(args []string, capi CommandConsoleAPI) error {

	if len(args) > 0 {
		if args[0] != "clear" {
			return fmt.Errorf("Unknown parameter: %s", args[0])
		}

		capi.Session().ClearHistory()
		fmt.Fprintln(capi.Out(), "History cleared")

		return nil
	}

	history := capi.Session().History()

	var tab []string

	tab = append(tab, "Source")
	tab = append(tab, "Program")
	tab = append(tab, "Result")

	for _, rec := range history {
		tab = append(tab, rec.Source)
		tab = append(tab, rec.Program)

		if rec.Error != "" {
			tab = append(tab, "Error: "+rec.Error)
		} else {
			tab = append(tab, rec.Output)
		}
	}

	capi.ExportBuffer().WriteString(stringutil.PrintCSVTable(tab, 3))

	fmt.Fprint(capi.Out(), stringutil.PrintStringTable(tab, 3))
	fmt.Fprintln(capi.Out(), fmt.Sprintf("%v run%v", len(history),
		stringutil.Plural(len(history))))

	return nil
}

// Command: export
// ===============

/*
CommandExport is a command name.
*/
const CommandExport = "export"

/*
CmdExport exports the data which is currently in the export buffer.
*/
type CmdExport struct {
	exportFunc func([]string, *bytes.Buffer) error
}

/*
Name returns the command name (as it should be typed)
*/
func (c *CmdExport) Name() string {
	return CommandExport
}

/*
ShortDescription returns a short description of the command (single line)
*/
func (c *CmdExport) ShortDescription() string {
	return "Exports the last output."
}

/*
LongDescription returns an extensive description of the command (can be multiple lines)
*/
func (c *CmdExport) LongDescription() string {
	return "Exports the data which is currently in the export buffer. The export " +
		"buffer is filled with the previous command output in a machine readable form."
}

/*
Run executes the command.
*/
func (c *CmdExport) Run(args []string, capi CommandConsoleAPI) error {
	return c.exportFunc(args, capi.ExportBuffer())
}

// Command: help
// =============

/*
CommandHelp is a command name.
*/
const CommandHelp = "help"

/*
CmdHelp displays descriptions of other commands.
*/
type CmdHelp struct {
}

/*
Name returns the command name (as it should be typed)
*/
func (c *CmdHelp) Name() string {
	return CommandHelp
}

/*
ShortDescription returns a short description of the command (single line)
*/
func (c *CmdHelp) ShortDescription() string {
	return "Display descriptions for all available commands."
}

/*
LongDescription returns an extensive description of the command (can be multiple lines)
*/
func (c *CmdHelp) LongDescription() string {
	return "Display descriptions for all available commands."
}

/*
Run executes the command.
*/
func (c *CmdHelp) Run(args []string, capi CommandConsoleAPI) error {

	cmds := capi.Commands()

	if len(args) > 0 {
		name := args[0]

		for _, cmd := range cmds {
			if cmd.Name() == name {
				capi.ExportBuffer().WriteString(cmd.LongDescription())
				fmt.Fprintln(capi.Out(), cmd.LongDescription())
				return nil
			}
		}

		return fmt.Errorf("Unknown command: %s", name)
	}

	var tab []string

	tab = append(tab, "Command")
	tab = append(tab, "Description")

	for _, cmd := range cmds {
		tab = append(tab, cmd.Name())
		tab = append(tab, cmd.ShortDescription())
	}

	capi.ExportBuffer().WriteString(stringutil.PrintCSVTable(tab, 2))

	fmt.Fprint(capi.Out(), stringutil.PrintStringTable(tab, 2))

	return nil
}
