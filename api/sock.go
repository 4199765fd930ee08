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
	"fmt"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/krotik/common/cryptutil"
	"github.com/krotik/common/datautil"
	"github.com/krotik/common/logutil"
	"github.com/krotik/common/stringutil"
)

/*
EndpointSock is the websocket endpoint URL (rooted). Handles sock/
*/
const EndpointSock = APIRoot + "/sock/"

/*
SockSubprotocol is the websocket subprotocol of the sock endpoint
*/
const SockSubprotocol = "curly-sock"

/*
sockUpgrader can upgrade normal requests to websocket communications
*/
var sockUpgrader = websocket.Upgrader{
	Subprotocols:    []string{SockSubprotocol},
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

/*
Sockets holds all open websocket connections (communication id to connection).
*/
var Sockets = datautil.NewMapCache(0, 0)

var logger = logutil.GetLogger("curly.api")

/*
SockEndpointInst creates a new endpoint handler.
*/
func SockEndpointInst() RestEndpointHandler {
	return &sockEndpoint{}
}

/*
Handler object for websocket operations.
*/
type sockEndpoint struct {
	*DefaultEndpointHandler
}

/*
HandleGET handles websocket operations. Every received message with a program
attribute is run. Side effects of the run are sent as event messages followed
by a result or an error message.
*/
func (se *sockEndpoint) HandleGET(w http.ResponseWriter, r *http.Request, resources []string) {

	if !checkSession(w) {
		return
	}

	// Update the incomming connection to a websocket
	// If the upgrade fails then the client gets an HTTP error response.

	conn, err := sockUpgrader.Upgrade(w, r, nil)

	if err != nil {

		// We give details here on what went wrong

		w.Write([]byte(err.Error()))
		return
	}

	commID := fmt.Sprintf("%x", cryptutil.GenerateUUID())

	wc := NewWebsocketConnection(commID, conn)

	wc.Init()

	Sockets.Put(commID, wc)
	defer Sockets.Remove(commID)

	logger.Debug("Opened websocket ", commID)

	for {
		var fatal bool
		var data map[string]interface{}

		// Read websocket message

		if data, fatal, err = wc.ReadData(); err != nil {

			if fatal {
				break
			}

			wc.WriteData(SockMessageError, map[string]interface{}{
				"error": err.Error(),
			})

			continue
		}

		if val, ok := data["close"]; ok && stringutil.IsTrueValue(fmt.Sprint(val)) {
			wc.Close("")
			err = nil
			break
		}

		program, ok := data["program"]
		if !ok {
			wc.WriteData(SockMessageError, map[string]interface{}{
				"error": "Program is missing in message",
			})
			continue
		}

		rec, rerr := Session.Run(fmt.Sprint(program), wc)

		if rerr != nil {
			wc.WriteData(SockMessageError, map[string]interface{}{
				"source": rec.Source,
				"error":  rerr.Error(),
			})
			continue
		}

		wc.WriteData(SockMessageResult, map[string]interface{}{
			"source": rec.Source,
			"output": rec.Output,
		})
	}

	if err != nil {
		logger.Debug("Closed websocket ", commID, ": ", err)
	}
}
