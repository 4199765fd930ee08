/*
 * Curly
 *
 * Copyright 2016 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package parser

import (
	"errors"
	"fmt"
)

/*
newParserError creates a new parser Error object.
*/
func newParserError(source string, t error, d string) error {
	return &Error{source, t, d}
}

/*
Error models a parser related error
*/
type Error struct {
	Source string // Name of the source which was given to the parser
	Type   error  // Error type (to be used for equal checks)
	Detail string // Details of this error
}

/*
Error returns a human-readable string representation of this error.
*/
func (pe *Error) Error() string {
	if pe.Detail != "" {
		return fmt.Sprintf("Parse error in %s: %v (%v)", pe.Source, pe.Type, pe.Detail)
	}

	return fmt.Sprintf("Parse error in %s: %v", pe.Source, pe.Type)
}

/*
Parser related error types
*/
var (
	ErrInvalidFormat = errors.New("Invalid language format")
)
