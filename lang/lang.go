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
Package lang contains the main API for the Curly language.

Example Curly program:

	{{ <HI> 3 4 + apples }}
*/
package lang

import (
	"github.com/krotik/curly/config"
	"github.com/krotik/curly/lang/interpreter"
	"github.com/krotik/curly/lang/parser"
)

/*
GrammarFromConfig returns the grammar which is defined in the current
configuration. The default grammar is used if no configuration was loaded.
*/
func GrammarFromConfig() parser.Grammar {
	if config.Config == nil {
		return parser.DefaultGrammar()
	}

	return parser.Grammar{
		Start:         config.Str(config.StartMarker),
		End:           config.Str(config.EndMarker),
		CommentPrefix: config.Str(config.CommentPrefix),
	}
}

/*
RunProgram runs a given program with a given table of reserved commands.
*/
func RunProgram(name string, text string, commands interpreter.CommandTable) (string, error) {
	return NewInterpreter(name, commands).Interpret(text)
}

/*
NewInterpreter creates a new interpreter which uses the configured grammar.
*/
func NewInterpreter(name string, commands interpreter.CommandTable) *interpreter.Interpreter {
	return interpreter.NewInterpreter(name, GrammarFromConfig(), commands)
}
