/*
 * Curly
 *
 * Copyright 2016 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package ecal

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/krotik/curly/lang"
	"github.com/krotik/curly/lang/interpreter"
	"github.com/krotik/ecal/parser"
)

/*
MaxNestingDepth is the maximum number of nested curly.interpret calls. Scripts
can run programs which run scripts again.
*/
const MaxNestingDepth = 16

/*
InterpretFunc runs a Curly program.
*/
type InterpretFunc struct {
	commands interpreter.CommandTable
	lock     sync.RWMutex
	depth    int32 // Number of currently running calls
}

/*
SetCommands sets the command table which is used for programs.
*/
func (f *InterpretFunc) SetCommands(commands interpreter.CommandTable) {
	f.lock.Lock()
	defer f.lock.Unlock()

	f.commands = commands
}

/*
Run executes the ECAL function.
*/
func (f *InterpretFunc) Run(instanceID string, vs parser.Scope, is map[string]interface{}, tid uint64, args []interface{}) (interface{}, error) {
	var err error
	var ret interface{}

	if arglen := len(args); arglen != 1 {
		err = fmt.Errorf("Function requires 1 parameter: program text")
	}

	if err == nil {
		defer atomic.AddInt32(&f.depth, -1)

		if d := atomic.AddInt32(&f.depth, 1); d > MaxNestingDepth {
			return nil, fmt.Errorf("Maximum nesting depth of %v exceeded", MaxNestingDepth)
		}

		f.lock.RLock()
		commands := f.commands
		f.lock.RUnlock()

		ret, err = lang.RunProgram(fmt.Sprintf("ecal-%v", tid), fmt.Sprint(args[0]), commands)
	}

	return ret, err
}

/*
DocString returns a descriptive string.
*/
func (f *InterpretFunc) DocString() (string, error) {
	return "Run a Curly program and return its output.", nil
}
