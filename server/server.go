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
Package server contains the code for the Curly server.
*/
package server

import (
	"fmt"
	"io/ioutil"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/krotik/common/errorutil"
	"github.com/krotik/common/fileutil"
	"github.com/krotik/common/httputil"
	"github.com/krotik/common/lockutil"
	"github.com/krotik/curly/api"
	"github.com/krotik/curly/config"
	"github.com/krotik/curly/ecal"
	"github.com/krotik/curly/lang"
	"github.com/krotik/curly/lang/interpreter"
)

/*
Using custom consolelogger type so we can test log.Fatal calls with unit tests. Overwrite
these if the server should not call os.Exit on a fatal error.
*/
type consolelogger func(v ...interface{})

var fatal = consolelogger(log.Fatal)
var print = consolelogger(log.Print)

/*
Base path for all file (used by unit tests)
*/
var basepath = ""

/*
StartServer runs the Curly server. The server uses config.Config for all its configuration
parameters.
*/
func StartServer() {

	print(fmt.Sprintf("Curly %v", config.ProductVersion))

	// Ensure we have a configuration - use the default configuration if nothing was set

	if config.Config == nil {
		config.LoadDefaultConfig()
	}

	// Load script commands

	commands := make(interpreter.CommandTable)

	if config.Bool(config.EnableScriptCommands) {
		scriptFolder := filepath.Join(basepath, config.Str(config.ScriptFolder))

		print("Loading script commands from: ", scriptFolder)

		ensurePath(scriptFolder)

		if err := ecal.LoadScriptCommands(scriptFolder, commands); err != nil {
			print("Failed to load some script commands: ", err)
		}
	}

	// Create the session which runs all programs

	print(fmt.Sprintf("Creating session (history size: %v)", config.Int(config.HistorySize)))

	api.Session = lang.NewSession("server", int(config.Int(config.HistorySize)), commands)

	defer func() {
		api.Session = nil
		os.RemoveAll(filepath.Join(basepath, config.Str(config.LockFile)))
	}()

	api.APIHost = config.Str(config.HTTPHost) + ":" + config.Str(config.HTTPPort)

	// Register REST endpoints

	api.RegisterRestEndpoints(api.GeneralEndpointMap)

	// Register web terminal

	if config.Bool(config.EnableWebTerminal) {
		webFolder := filepath.Join(basepath, config.Str(config.LocationWebFolder))

		print("Ensuring web folder: ", webFolder)

		ensurePath(webFolder)

		termFile := filepath.Join(webFolder, "term.html")

		print("Ensuring web terminal: ", termFile)

		if res, _ := fileutil.PathExists(termFile); !res {
			errorutil.AssertOk(ioutil.WriteFile(termFile, []byte(TermSRC[1:]), 0644))
		}

		fs := http.FileServer(http.Dir(webFolder))

		api.HandleFunc("/", fs.ServeHTTP)
	}

	// Start HTTP server and enable REST API

	hs := &httputil.HTTPServer{}

	var wg sync.WaitGroup
	wg.Add(1)

	port := config.Str(config.HTTPPort)

	print("Starting server on: ", api.APIHost)

	go hs.RunHTTPServer(":"+port, &wg)

	// Wait until the server has started

	wg.Wait()

	// HTTP Server has started

	if hs.LastError != nil {
		fatal(hs.LastError)
		return
	}

	// Create a lockfile so the server can be shut down

	lf := lockutil.NewLockFile(basepath+config.Str(config.LockFile), time.Duration(2)*time.Second)

	lf.Start()

	go func() {

		// Check if the lockfile watcher is running and
		// call shutdown once it has finished

		for lf.WatcherRunning() {
			time.Sleep(time.Duration(1) * time.Second)
		}

		print("Lockfile was modified")

		hs.Shutdown()
	}()

	// Add to the wait group so we can wait for the shutdown

	wg.Add(1)

	print("Waiting for shutdown")
	wg.Wait()

	print("Shutting down")
}

/*
ensurePath ensures that a given relative path exists.
*/
func ensurePath(path string) {
	if res, _ := fileutil.PathExists(path); !res {
		if err := os.Mkdir(path, 0770); err != nil {
			fatal("Could not create directory:", err.Error())
			return
		}
	}
}
