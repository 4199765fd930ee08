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
	"fmt"
	"strings"

	"github.com/krotik/common/errorutil"
)

/*
TokenStream is a forward-only cursor over the tokens of a program.
*/
type TokenStream struct {
	tokens []string // Tokens of the program
	index  int      // Position of the next token
}

/*
NewTokenStream validates and tokenizes a given program text. The source
string is used to identify the program in errors.
*/
func NewTokenStream(source string, g Grammar, text string) (*TokenStream, error) {

	if !strings.HasPrefix(text, g.Start) {
		return nil, newParserError(source, ErrInvalidFormat,
			fmt.Sprintf("Program must start with %v", g.Start))

	} else if !strings.HasSuffix(text, g.End) {
		return nil, newParserError(source, ErrInvalidFormat,
			fmt.Sprintf("Program must end with %v", g.End))
	}

	// Remove the markers - only the first occurrence of each is removed

	text = strings.Replace(text, g.Start, "", 1)
	text = strings.Replace(text, g.End, "", 1)

	var tokens []string

	for _, t := range strings.Split(text, TokenSeparator) {

		if strings.TrimSpace(t) == "" ||
			(g.CommentPrefix != "" && strings.HasPrefix(t, g.CommentPrefix)) {
			continue
		}

		tokens = append(tokens, t)
	}

	return &TokenStream{tokens, 0}, nil
}

/*
HasNext returns if there are more tokens in the stream.
*/
func (ts *TokenStream) HasNext() bool {
	return ts.index < len(ts.tokens)
}

/*
Next returns the next token in the stream. Calling Next on an exhausted
stream is a programming error.
*/
func (ts *TokenStream) Next() string {
	errorutil.AssertTrue(ts.HasNext(), "Token stream is exhausted")

	t := ts.tokens[ts.index]
	ts.index++

	return t
}

/*
Pos returns the 1-based position of the last token which was returned by
Next. It is 0 if no token has been read yet.
*/
func (ts *TokenStream) Pos() int {
	return ts.index
}

/*
Len returns the number of tokens in the stream.
*/
func (ts *TokenStream) Len() int {
	return len(ts.tokens)
}

/*
String returns a string representation of the stream.
*/
func (ts *TokenStream) String() string {
	return fmt.Sprintf("TokenStream %v/%v %q", ts.index, len(ts.tokens), ts.tokens)
}
