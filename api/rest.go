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
Package api contains the REST API of Curly.

The REST API allows running Curly programs remotely. The API responds to GET,
POST and DELETE requests in JSON if the request was successful (Return code
200 OK) and plain text in all other cases.

API endpoints:

/curly/about - Version information
/curly/swagger.json - Swagger definition of the API (see http://swagger.io)
/curly/interpret - Run a program
/curly/history - Recently run programs
/curly/sock - Run programs over a websocket
*/
package api

import (
	"net/http"
	"strings"

	"github.com/krotik/curly/lang"
)

/*
APIRoot is the API root directory for the REST API
*/
const APIRoot = "/curly"

/*
APIVersion is the version of the REST API
*/
const APIVersion = "1.0.0"

/*
APISchemes defines the supported schemes by the REST API
*/
var APISchemes = []string{"http"}

/*
APIHost is the host definition for the REST API
*/
var APIHost = "localhost:9070"

/*
GeneralEndpointMap is a map of urls to endpoints
*/
var GeneralEndpointMap = map[string]RestEndpointInst{
	EndpointAbout:     AboutEndpointInst,
	EndpointSwagger:   SwaggerEndpointInst,
	EndpointInterpret: InterpretEndpointInst,
	EndpointHistory:   HistoryEndpointInst,
	EndpointSock:      SockEndpointInst,
}

/*
RestEndpointInst models a factory function for REST endpoint handlers.
*/
type RestEndpointInst func() RestEndpointHandler

/*
RestEndpointHandler models a REST endpoint handler.
*/
type RestEndpointHandler interface {

	/*
		HandleGET handles a GET request.
	*/
	HandleGET(w http.ResponseWriter, r *http.Request, resources []string)

	/*
		HandlePOST handles a POST request.
	*/
	HandlePOST(w http.ResponseWriter, r *http.Request, resources []string)

	/*
		HandleDELETE handles a DELETE request.
	*/
	HandleDELETE(w http.ResponseWriter, r *http.Request, resources []string)

	/*
		SwaggerDefs is used to describe the endpoint in swagger.
	*/
	SwaggerDefs(s map[string]interface{})
}

/*
Session is the session which runs all programs of the REST API.
*/
var Session *lang.Session

/*
Map of all registered endpoint handlers.
*/
var registered = map[string]RestEndpointInst{}

/*
HandleFunc to use for registering handlers
*/
var HandleFunc = http.HandleFunc

/*
RegisterRestEndpoints registers all given REST endpoint handlers.
*/
func RegisterRestEndpoints(endpointInsts map[string]RestEndpointInst) {

	for url, endpointInst := range endpointInsts {
		registered[url] = endpointInst

		HandleFunc(url, func() func(w http.ResponseWriter, r *http.Request) {

			var handlerURL = url
			var handlerInst = endpointInst

			return func(w http.ResponseWriter, r *http.Request) {

				// Create a new handler instance

				handler := handlerInst()

				// Handle request in appropriate method

				res := strings.TrimSpace(r.URL.Path[len(handlerURL):])

				if len(res) > 0 && res[len(res)-1] == '/' {
					res = res[:len(res)-1]
				}

				var resources []string

				if res != "" {
					resources = strings.Split(res, "/")
				}

				switch r.Method {
				case "GET":
					handler.HandleGET(w, r, resources)

				case "POST":
					handler.HandlePOST(w, r, resources)

				case "DELETE":
					handler.HandleDELETE(w, r, resources)

				default:
					http.Error(w, http.StatusText(http.StatusMethodNotAllowed),
						http.StatusMethodNotAllowed)
				}
			}
		}())
	}
}

/*
DefaultEndpointHandler represents the default endpoint handler.
*/
type DefaultEndpointHandler struct {
}

/*
HandleGET is a method stub returning an error.
*/
func (de *DefaultEndpointHandler) HandleGET(w http.ResponseWriter, r *http.Request, resources []string) {
	http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
}

/*
HandlePOST is a method stub returning an error.
*/
func (de *DefaultEndpointHandler) HandlePOST(w http.ResponseWriter, r *http.Request, resources []string) {
	http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
}

/*
HandleDELETE is a method stub returning an error.
*/
func (de *DefaultEndpointHandler) HandleDELETE(w http.ResponseWriter, r *http.Request, resources []string) {
	http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
}

// Helper functions
// ================

/*
checkResources checks given resources for a request.
*/
func checkResources(w http.ResponseWriter, resources []string) bool {
	if len(resources) > 0 {
		http.Error(w, "Invalid resource specification: "+strings.Join(resources, "/"),
			http.StatusBadRequest)
		return false
	}
	return true
}

/*
checkSession checks that a session is available.
*/
func checkSession(w http.ResponseWriter) bool {
	if Session == nil {
		http.Error(w, "Resource was not found", http.StatusNotFound)
		return false
	}
	return true
}
