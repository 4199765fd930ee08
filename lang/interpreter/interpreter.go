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
Package interpreter contains the Curly interpreter.

The interpreter reads the tokens of a program from start to end. Numbers and
arithmetic operators are fed into a postfix evaluator. The result of a
calculation is written to the output once the next non-numeric token arrives.
Reserved commands (<NAME>) are looked up in a command table and executed.
All other tokens are copied into the output.

Example:

	{{ <HI> 1 1 + is two }}

runs the HI command and produces "2 is two".
*/
package interpreter

import (
	"strings"

	"github.com/krotik/common/logutil"
	"github.com/krotik/curly/lang/parser"
)

/*
LoggerScope is the log scope of the interpreter
*/
const LoggerScope = "curly.interpreter"

/*
OutputSeparator separates the parts of the output.
*/
const OutputSeparator = " "

/*
Interpreter interprets Curly programs.
*/
type Interpreter struct {
	Name     string         // Name to identify interpreted programs
	Grammar  parser.Grammar // Grammar of the language
	Commands CommandTable   // Known reserved commands
	logger   logutil.Logger // Logger for this interpreter
}

/*
NewInterpreter creates a new Interpreter object.
*/
func NewInterpreter(name string, g parser.Grammar, commands CommandTable) *Interpreter {
	if commands == nil {
		commands = make(CommandTable)
	}

	return &Interpreter{name, g, commands, logutil.GetLogger(LoggerScope)}
}

/*
Interpret runs a given program and returns its output. All state of a run
is discarded once this function returns. Errors abort the run - side effects
of commands which were executed before the error stay in effect.
*/
func (i *Interpreter) Interpret(text string) (string, error) {

	i.logger.Debug("Interpreting ", i.Name)

	ts, err := parser.NewTokenStream(i.Name, i.Grammar, text)
	if err != nil {
		return "", err
	}

	pe := NewPostfixEvaluator()
	rd := NewReservedDispatcher(i.Name, i.Commands)

	var out []string

	for ts.HasNext() {
		token := ts.Next()

		if pe.Consume(token) {
			continue
		}

		// Flush the result of the previous calculation

		if pe.ConsumeResultPending() {
			out = append(out, FormatNumber(pe.TakeResult()))
		}

		ok, err := rd.TryDispatch(token)

		if err != nil {
			if rerr, isRuntimeError := err.(*RuntimeError); isRuntimeError {
				rerr.Pos = ts.Pos()
			}

			i.logger.Debug("Interpretation of ", i.Name, " failed: ", err)

			return "", err

		} else if ok {
			continue
		}

		out = append(out, token)
	}

	// A calculation at the very end of a program is not flushed

	if pe.ConsumeResultPending() {
		i.logger.Debug("Discarding unflushed result in ", i.Name)
	}

	res := strings.Join(out, OutputSeparator)

	i.logger.Debug("Output of ", i.Name, ": ", res)

	return res, nil
}
