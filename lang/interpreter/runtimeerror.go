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
	"errors"
	"fmt"
)

/*
RuntimeError is a runtime related error
*/
type RuntimeError struct {
	Source string // Name of the source which was given to the interpreter
	Type   error  // Error type (to be used for equal checks)
	Detail string // Details of this error
	Token  string // Token which caused the error
	Pos    int    // Position of the token in the token stream
}

/*
Error returns a human-readable string representation of this error.
*/
func (re *RuntimeError) Error() string {
	ret := fmt.Sprintf("Curly error in %s: %v (%v)", re.Source, re.Type, re.Detail)

	if re.Pos != 0 {
		return fmt.Sprintf("%s (Token:%d)", ret, re.Pos)
	}

	return ret
}

/*
Runtime related error types
*/
var (
	ErrUnknownCommand = errors.New("Unknown reserved command")
	ErrCommandFailed  = errors.New("Reserved command failed")
)
