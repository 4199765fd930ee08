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
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

/*
EndpointInterpret is the interpret endpoint URL (rooted). Handles interpret/
*/
const EndpointInterpret = APIRoot + "/interpret/"

/*
InterpretEndpointInst creates a new endpoint handler.
*/
func InterpretEndpointInst() RestEndpointHandler {
	return &interpretEndpoint{}
}

/*
Handler object for interpret operations.
*/
type interpretEndpoint struct {
	*DefaultEndpointHandler
}

/*
HandlePOST runs a program. The request body must be a JSON object with a
program attribute.
*/
func (ie *interpretEndpoint) HandlePOST(w http.ResponseWriter, r *http.Request, resources []string) {

	if !checkSession(w) || !checkResources(w, resources) {
		return
	}

	data := make(map[string]interface{})

	dec := json.NewDecoder(r.Body)

	if err := dec.Decode(&data); err != nil {
		http.Error(w, "Could not decode request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	program, ok := data["program"]
	if !ok {
		http.Error(w, "Program is missing in request body", http.StatusBadRequest)
		return
	}

	var events bytes.Buffer

	rec, err := Session.Run(fmt.Sprint(program), &events)

	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// Write data

	w.Header().Set("content-type", "application/json; charset=utf-8")

	ret := json.NewEncoder(w)
	ret.Encode(map[string]interface{}{
		"source": rec.Source,
		"output": rec.Output,
		"events": splitEvents(events.String()),
	})
}

/*
splitEvents splits the written side effects of a run into single events.
*/
func splitEvents(s string) []string {
	ret := []string{}

	for _, line := range strings.Split(s, "\n") {
		if line != "" {
			ret = append(ret, line)
		}
	}

	return ret
}
