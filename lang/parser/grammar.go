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
Package parser contains the lexical analysis of Curly programs.

A Curly program is a single string which is wrapped by a start and an end
marker:

	{{ //greeting <HI> 1 1 + is two }}

Grammar

The Grammar object defines the markers and the comment prefix. Reserved
commands are written as <NAME> and can be recognized with CommandName().

Tokenizer

NewTokenStream() validates the markers of a program, strips them and splits
the remaining text into tokens. Comments and blank tokens are dropped. The
resulting TokenStream can be read exactly once from start to end.
*/
package parser

import "strings"

/*
Default markers of the language
*/
const (
	DefaultStartMarker   = "{{"
	DefaultEndMarker     = "}}"
	DefaultCommentPrefix = "//"
)

/*
Delimiters of reserved command tokens
*/
const (
	CommandOpen  = "<"
	CommandClose = ">"
)

/*
TokenSeparator separates tokens in a program.
*/
const TokenSeparator = " "

/*
Grammar models the fixed lexical elements of the language.
*/
type Grammar struct {
	Start         string // Marker which has to start every program
	End           string // Marker which has to end every program
	CommentPrefix string // Tokens with this prefix are ignored
}

/*
DefaultGrammar returns the default grammar.
*/
func DefaultGrammar() Grammar {
	return Grammar{DefaultStartMarker, DefaultEndMarker, DefaultCommentPrefix}
}

/*
CommandName checks if a given token is a reserved command token of the form
<NAME> and returns NAME. The name is returned verbatim. A token qualifies
only if it has exactly one leading '<', exactly one trailing '>' and no other
command delimiters in between.
*/
func CommandName(token string) (string, bool) {

	if len(token) < len(CommandOpen)+len(CommandClose) ||
		!strings.HasPrefix(token, CommandOpen) ||
		!strings.HasSuffix(token, CommandClose) {

		return "", false
	}

	name := token[len(CommandOpen) : len(token)-len(CommandClose)]

	if strings.Contains(name, CommandOpen) || strings.Contains(name, CommandClose) {
		return "", false
	}

	return name, true
}
