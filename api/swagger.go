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
)

/*
EndpointSwagger is the swagger endpoint URL (rooted). Handles swagger.json/
*/
const EndpointSwagger = APIRoot + "/swagger.json/"

/*
SwaggerEndpointInst creates a new endpoint handler.
*/
func SwaggerEndpointInst() RestEndpointHandler {
	return &swaggerEndpoint{}
}

/*
Handler object for swagger operations.
*/
type swaggerEndpoint struct {
	*DefaultEndpointHandler
}

/*
HandleGET returns the swagger definition of the REST API.
*/
func (a *swaggerEndpoint) HandleGET(w http.ResponseWriter, r *http.Request, resources []string) {

	// Add general sections

	data := map[string]interface{}{
		"swagger":     "2.0",
		"host":        APIHost,
		"schemes":     APISchemes,
		"basePath":    APIRoot,
		"produces":    []string{"application/json"},
		"paths":       map[string]interface{}{},
		"definitions": map[string]interface{}{},
	}

	// Go through all registered components and let them add their definitions

	a.SwaggerDefs(data)

	for _, inst := range registered {
		inst().SwaggerDefs(data)
	}

	// Write data

	w.Header().Set("content-type", "application/json; charset=utf-8")

	ret := json.NewEncoder(w)
	ret.Encode(data)
}

/*
SwaggerDefs is used to describe the endpoint in swagger.
*/
func (a *swaggerEndpoint) SwaggerDefs(s map[string]interface{}) {

	// Add general application information

	s["info"] = map[string]interface{}{
		"title":       "Curly API",
		"description": "Run Curly programs.",
		"version":     APIVersion,
	}
}

/*
SwaggerDefs is used to describe the endpoint in swagger.
*/
func (a *aboutEndpoint) SwaggerDefs(s map[string]interface{}) {

	s["paths"].(map[string]interface{})["/about"] = map[string]interface{}{
		"get": map[string]interface{}{
			"summary":     "Return information about the REST API provider.",
			"description": "Returns product name, product version and available reserved commands.",
			"produces": []string{
				"text/plain",
				"application/json",
			},
			"responses": map[string]interface{}{
				"200": map[string]interface{}{
					"description": "About info object",
					"schema": map[string]interface{}{
						"type": "object",
						"properties": map[string]interface{}{
							"commands": map[string]interface{}{
								"description": "List of available reserved commands.",
								"type":        "array",
								"items": map[string]interface{}{
									"description": "Reserved command name.",
									"type":        "string",
								},
							},
							"product": map[string]interface{}{
								"description": "Product name of the REST API provider.",
								"type":        "string",
							},
							"version": map[string]interface{}{
								"description": "Version of the REST API provider.",
								"type":        "string",
							},
						},
					},
				},
				"default": errorResponse,
			},
		},
	}

	addErrorDefinition(s)
}

/*
SwaggerDefs is used to describe the endpoint in swagger.
*/
func (ie *interpretEndpoint) SwaggerDefs(s map[string]interface{}) {

	s["paths"].(map[string]interface{})["/interpret"] = map[string]interface{}{
		"post": map[string]interface{}{
			"summary":     "Run a program.",
			"description": "Runs a given program and returns its output and all side effects of reserved commands.",
			"consumes": []string{
				"application/json",
			},
			"produces": []string{
				"text/plain",
				"application/json",
			},
			"parameters": []map[string]interface{}{
				{
					"name":        "program",
					"in":          "body",
					"description": "Program which should be run.",
					"required":    true,
					"schema": map[string]interface{}{
						"type": "object",
						"properties": map[string]interface{}{
							"program": map[string]interface{}{
								"description": "Program text.",
								"type":        "string",
							},
						},
					},
				},
			},
			"responses": map[string]interface{}{
				"200": map[string]interface{}{
					"description": "Run result",
					"schema": map[string]interface{}{
						"type": "object",
						"properties": map[string]interface{}{
							"source": map[string]interface{}{
								"description": "Source name of the run.",
								"type":        "string",
							},
							"output": map[string]interface{}{
								"description": "Output of the program.",
								"type":        "string",
							},
							"events": map[string]interface{}{
								"description": "Side effects of reserved commands.",
								"type":        "array",
								"items": map[string]interface{}{
									"type": "string",
								},
							},
						},
					},
				},
				"default": errorResponse,
			},
		},
	}

	addErrorDefinition(s)
}

/*
SwaggerDefs is used to describe the endpoint in swagger.
*/
func (he *historyEndpoint) SwaggerDefs(s map[string]interface{}) {

	s["paths"].(map[string]interface{})["/history"] = map[string]interface{}{
		"get": map[string]interface{}{
			"summary":     "Return recent runs.",
			"description": "Returns the most recent runs with their outcome (oldest first).",
			"produces": []string{
				"text/plain",
				"application/json",
			},
			"responses": map[string]interface{}{
				"200": map[string]interface{}{
					"description": "List of runs",
				},
				"default": errorResponse,
			},
		},
		"delete": map[string]interface{}{
			"summary":     "Clear the history.",
			"description": "Removes all runs from the history.",
			"produces": []string{
				"text/plain",
			},
			"responses": map[string]interface{}{
				"200": map[string]interface{}{
					"description": "History was cleared",
				},
				"default": errorResponse,
			},
		},
	}

	addErrorDefinition(s)
}

/*
SwaggerDefs is used to describe the endpoint in swagger.
*/
func (se *sockEndpoint) SwaggerDefs(s map[string]interface{}) {
	// No swagger definitions for this endpoint as it only handles websocket requests
}

// Helper functions
// ================

var errorResponse = map[string]interface{}{
	"description": "Error response",
	"schema": map[string]interface{}{
		"$ref": "#/definitions/Error",
	},
}

/*
addErrorDefinition adds the generic error object to a definition.
*/
func addErrorDefinition(s map[string]interface{}) {
	s["definitions"].(map[string]interface{})["Error"] = map[string]interface{}{
		"description": "A human readable error mesage.",
		"type":        "string",
	}
}
