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
	"fmt"
	"strings"
)

// Program Console
// ===============

/*
ProgramConsole runs Curly programs.
*/
type ProgramConsole struct {
	parent CommandConsoleAPI // Parent console API
}

/*
Run runs a given line as a program. The line is not modified - surrounding
whitespace is not part of a valid program. Side effects of reserved commands
are written to the console before the program output.
*/
func (c *ProgramConsole) Run(cmd string) (bool, error) {

	if strings.TrimSpace(cmd) == "" {
		return false, nil
	}

	rec, err := c.parent.Session().Run(cmd, c.parent.Out())

	if err == nil {
		c.parent.ExportBuffer().WriteString(rec.Output)
		fmt.Fprintln(c.parent.Out(), rec.Output)
	}

	return true, err
}

/*
Commands returns an empty list. The command line is interpreted as a program.
*/
func (c *ProgramConsole) Commands() []Command {
	return nil
}
