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

	"github.com/krotik/common/logutil"
	"github.com/krotik/common/stringutil"
	"github.com/krotik/curly/lang/parser"
)

/*
maxHintDistance is the maximum edit distance for "did you mean" hints
*/
const maxHintDistance = 2

/*
ReservedDispatcher runs reserved commands which are given as <NAME> tokens.
*/
type ReservedDispatcher struct {
	source   string         // Name of the source which is interpreted
	commands CommandTable   // Table of known commands
	logger   logutil.Logger // Logger for dispatched commands
}

/*
NewReservedDispatcher creates a new ReservedDispatcher object.
*/
func NewReservedDispatcher(source string, commands CommandTable) *ReservedDispatcher {
	return &ReservedDispatcher{source, commands, logutil.GetLogger(LoggerScope)}
}

/*
TryDispatch runs the command of a given token. Returns false if the token is
not a command token. Returns an error if the command is unknown or if it
failed.
*/
func (rd *ReservedDispatcher) TryDispatch(token string) (bool, error) {

	name, ok := parser.CommandName(token)
	if !ok {
		return false, nil
	}

	cmd, ok := rd.commands[name]
	if !ok {
		detail := fmt.Sprintf("Invalid syntax near %v", token)

		if hint := rd.closestName(name); hint != "" {
			detail = fmt.Sprintf("%v - did you mean %v%v%v?", detail,
				parser.CommandOpen, hint, parser.CommandClose)
		}

		return false, &RuntimeError{rd.source, ErrUnknownCommand, detail, token, 0}
	}

	rd.logger.Debug("Running reserved command ", name, " in ", rd.source)

	if err := cmd.Run(); err != nil {
		return false, &RuntimeError{rd.source, ErrCommandFailed,
			fmt.Sprintf("%v: %v", name, err), token, 0}
	}

	return true, nil
}

/*
closestName returns the most similar known command name or the empty string
if there is no similar name.
*/
func (rd *ReservedDispatcher) closestName(name string) string {
	var res string

	best := maxHintDistance + 1

	for _, n := range rd.commands.Names() {
		if d := stringutil.LevenshteinDistance(name, n); d < best {
			res = n
			best = d
		}
	}

	return res
}
