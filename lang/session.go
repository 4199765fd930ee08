/*
 * Curly
 *
 * Copyright 2016 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package lang

import (
	"fmt"
	"io"
	"sync"

	"github.com/krotik/common/datautil"
	"github.com/krotik/curly/lang/interpreter"
)

/*
RunRecord is the outcome of a single program run.
*/
type RunRecord struct {
	Source  string `json:"source"`          // Source name of the run
	Program string `json:"program"`         // Program text
	Output  string `json:"output"`          // Program output
	Error   string `json:"error,omitempty"` // Error message (if any)
}

/*
Session runs programs one at a time and keeps a history of the most recent runs.
The default commands of each run write their side effects to a writer which is
given for the run.
*/
type Session struct {
	Name     string                   // Name of the session
	Commands interpreter.CommandTable // Additional commands (e.g. script commands)
	history  *datautil.RingBuffer     // Most recent runs
	counter  uint64                   // Run counter
	lock     *sync.Mutex              // Lock to serialize runs
}

/*
NewSession creates a new session with a given history size.
*/
func NewSession(name string, historySize int, commands interpreter.CommandTable) *Session {
	if historySize < 1 {
		historySize = 1
	}

	if commands == nil {
		commands = make(interpreter.CommandTable)
	}

	return &Session{name, commands, datautil.NewRingBuffer(historySize), 0, &sync.Mutex{}}
}

/*
Run runs a given program. Side effects of the default commands are written
to the given writer.
*/
func (s *Session) Run(program string, events io.Writer) (*RunRecord, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.counter++

	rec := &RunRecord{
		Source:  fmt.Sprintf("%v-%v", s.Name, s.counter),
		Program: program,
	}

	commands := interpreter.DefaultCommands(events).Merge(s.Commands)

	res, err := RunProgram(rec.Source, program, commands)

	rec.Output = res
	if err != nil {
		rec.Error = err.Error()
	}

	s.history.Add(rec)

	return rec, err
}

/*
History returns the most recent runs (oldest first).
*/
func (s *Session) History() []*RunRecord {
	var ret []*RunRecord

	for _, r := range s.history.Slice() {
		ret = append(ret, r.(*RunRecord))
	}

	return ret
}

/*
ClearHistory removes all entries from the run history.
*/
func (s *Session) ClearHistory() {
	s.history.Reset()
}
