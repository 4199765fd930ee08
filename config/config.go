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
Package config contains the global configuration of Curly.
*/
package config

import (
	"fmt"
	"strconv"

	"github.com/krotik/common/errorutil"
	"github.com/krotik/common/fileutil"
)

// Global variables
// ================

/*
ProductVersion is the current version of Curly
*/
const ProductVersion = "1.0.0"

/*
DefaultConfigFile is the default config file which will be used to configure Curly
*/
var DefaultConfigFile = "curly.config.json"

/*
Known configuration options for Curly
*/
const (
	StartMarker          = "StartMarker"
	EndMarker            = "EndMarker"
	CommentPrefix        = "CommentPrefix"
	LogLevel             = "LogLevel"
	LogFile              = "LogFile"
	EnableScriptCommands = "EnableScriptCommands"
	ScriptFolder         = "ScriptFolder"
	ScriptLogLevel       = "ScriptLogLevel"
	ScriptLogFile        = "ScriptLogFile"
	HTTPHost             = "HTTPHost"
	HTTPPort             = "HTTPPort"
	HistorySize          = "HistorySize"
	LockFile             = "LockFile"
	EnableWebTerminal    = "EnableWebTerminal"
	LocationWebFolder    = "LocationWebFolder"
)

/*
DefaultConfig is the defaut configuration
*/
var DefaultConfig = map[string]interface{}{
	StartMarker:          "{{",
	EndMarker:            "}}",
	CommentPrefix:        "//",
	LogLevel:             "info",
	LogFile:              "",
	EnableScriptCommands: false,
	ScriptFolder:         "scripts",
	ScriptLogLevel:       "info",
	ScriptLogFile:        "",
	HTTPHost:             "localhost",
	HTTPPort:             "9070",
	HistorySize:          50,
	LockFile:             "curly.lck",
	EnableWebTerminal:    true,
	LocationWebFolder:    "web",
}

/*
Config is the actual config which is used
*/
var Config map[string]interface{}

/*
LoadConfigFile loads a given config file. If the config file does not exist it is
created with the default options.
*/
func LoadConfigFile(configfile string) error {
	var err error

	Config, err = fileutil.LoadConfig(configfile, DefaultConfig)

	return err
}

/*
LoadDefaultConfig loads the default configuration.
*/
func LoadDefaultConfig() {
	data := make(map[string]interface{})
	for k, v := range DefaultConfig {
		data[k] = v
	}

	Config = data
}

// Helper functions
// ================

/*
Str reads a config value as a string value.
*/
func Str(key string) string {
	return fmt.Sprint(Config[key])
}

/*
Int reads a config value as an int value.
*/
func Int(key string) int64 {
	ret, err := strconv.ParseInt(fmt.Sprint(Config[key]), 10, 64)

	errorutil.AssertTrue(err == nil,
		fmt.Sprintf("Could not parse config key %v: %v", key, err))

	return ret
}

/*
Bool reads a config value as a boolean value.
*/
func Bool(key string) bool {
	ret, err := strconv.ParseBool(fmt.Sprint(Config[key]))

	errorutil.AssertTrue(err == nil,
		fmt.Sprintf("Could not parse config key %v: %v", key, err))

	return ret
}
