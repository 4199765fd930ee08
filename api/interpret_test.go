/*
 * Curly
 *
 * Copyright 2016 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package api

import (
	"net/http"
	"testing"

	"github.com/krotik/curly/lang"
	"github.com/krotik/curly/lang/interpreter"
)

func TestInterpret(t *testing.T) {
	queryURL := "http://localhost" + TESTPORT + EndpointInterpret

	Session = lang.NewSession("api", 5, nil)

	res, resp := sendTestRequestResponse(queryURL, "POST",
		[]byte(`{"program": "{{ <HI> 1 2 + x <BYE> 3 }}"}`))

	if resp.StatusCode != http.StatusOK || res != `
{
  "events": [
    "Hello there!",
    "Goodbye!"
  ],
  "output": "3 x",
  "source": "api-1"
}`[1:] {
		t.Error("Unexpected response:", res)
		return
	}

	if res := sendTestRequest(queryURL, "POST", []byte(`{"program": "{{ 1 }}"}`)); res != `
{
  "events": [],
  "output": "",
  "source": "api-2"
}`[1:] {
		t.Error("Unexpected response:", res)
		return
	}

	// Test error cases

	if res, resp := sendTestRequestResponse(queryURL, "POST", []byte(`{"program": "{{ <QUUX> }}"}`)); resp.StatusCode != http.StatusBadRequest ||
		res != "Curly error in api-3: Unknown reserved command (Invalid syntax near <QUUX>) (Token:1)" {
		t.Error("Unexpected response:", res)
		return
	}

	if res := sendTestRequest(queryURL, "POST", []byte(`{"program": "1 2 +"}`)); res !=
		"Parse error in api-4: Invalid language format (Program must start with {{)" {
		t.Error("Unexpected response:", res)
		return
	}

	if res := sendTestRequest(queryURL, "POST", []byte(`buu`)); res !=
		"Could not decode request body: invalid character 'b' looking for beginning of value" {
		t.Error("Unexpected response:", res)
		return
	}

	if res := sendTestRequest(queryURL, "POST", []byte(`{"foo": "bar"}`)); res !=
		"Program is missing in request body" {
		t.Error("Unexpected response:", res)
		return
	}

	if res := sendTestRequest(queryURL+"foo/bar", "POST", []byte(`{"program": "{{ 1 }}"}`)); res !=
		"Invalid resource specification: foo/bar" {
		t.Error("Unexpected response:", res)
		return
	}

	// Additional commands are available

	var called bool

	Session.Commands["foo"] = &interpreter.FuncCommand{Desc: "test", Action: func() error {
		called = true
		return nil
	}}

	if res := sendTestRequest(queryURL, "POST", []byte(`{"program": "{{ <foo> 2 2 * }}"}`)); !called || res != `
{
  "events": [],
  "output": "",
  "source": "api-5"
}`[1:] {
		t.Error("Unexpected response:", res)
		return
	}

	if res := sendTestRequest("http://localhost"+TESTPORT+EndpointAbout, "GET", nil); res != `
{
  "commands": [
    "BYE",
    "HI",
    "NOW",
    "foo"
  ],
  "product": "Curly",
  "version": "1.0.0"
}`[1:] {
		t.Error("Unexpected response:", res)
		return
	}
}

func TestHistory(t *testing.T) {
	queryURL := "http://localhost" + TESTPORT + EndpointHistory

	Session = lang.NewSession("api", 2, nil)

	if res := sendTestRequest(queryURL, "GET", nil); res != "[]" {
		t.Error("Unexpected response:", res)
		return
	}

	Session.Run("{{ 1 }}", nil)
	Session.Run("{{ 1 2 + a }}", nil)
	Session.Run("1 2 +", nil)

	if res := sendTestRequest(queryURL, "GET", nil); res != `
[
  {
    "source": "api-2",
    "program": "{{ 1 2 + a }}",
    "output": "3 a"
  },
  {
    "source": "api-3",
    "program": "1 2 +",
    "output": "",
    "error": "Parse error in api-3: Invalid language format (Program must start with {{)"
  }
]`[1:] {
		t.Error("Unexpected response:", res)
		return
	}

	if res := sendTestRequest(queryURL+"foo", "GET", nil); res != "Invalid resource specification: foo" {
		t.Error("Unexpected response:", res)
		return
	}

	if res, resp := sendTestRequestResponse(queryURL, "DELETE", nil); resp.StatusCode != http.StatusOK || res != "" {
		t.Error("Unexpected response:", res)
		return
	}

	if res := sendTestRequest(queryURL, "GET", nil); res != "[]" {
		t.Error("Unexpected response:", res)
		return
	}
}
