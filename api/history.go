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
	"encoding/json"
	"net/http"

	"github.com/krotik/curly/lang"
)

/*
EndpointHistory is the history endpoint URL (rooted). Handles history/
*/
const EndpointHistory = APIRoot + "/history/"

/*
HistoryEndpointInst creates a new endpoint handler.
*/
func HistoryEndpointInst() RestEndpointHandler {
	return &historyEndpoint{}
}

/*
Handler object for history operations.
*/
type historyEndpoint struct {
	*DefaultEndpointHandler
}

/*
HandleGET returns the most recent runs (oldest first).
*/
func (he *historyEndpoint) HandleGET(w http.ResponseWriter, r *http.Request, resources []string) {

	if !checkSession(w) || !checkResources(w, resources) {
		return
	}

	data := Session.History()

	if data == nil {
		data = []*lang.RunRecord{}
	}

	// Write data

	w.Header().Set("content-type", "application/json; charset=utf-8")

	ret := json.NewEncoder(w)
	ret.Encode(data)
}

/*
HandleDELETE clears the history.
*/
func (he *historyEndpoint) HandleDELETE(w http.ResponseWriter, r *http.Request, resources []string) {

	if !checkSession(w) || !checkResources(w, resources) {
		return
	}

	Session.ClearHistory()
}
