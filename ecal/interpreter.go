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
Package ecal contains reserved commands which are implemented as ECAL scripts.

Every file <NAME>.ecal in the script folder becomes a reserved command <NAME>.
Running the command executes the script. Scripts can run Curly programs
themselves with the function curly.interpret(program).
*/
package ecal

import (
	"fmt"
	"io/ioutil"
	"path/filepath"
	"strings"
	"sync"

	"github.com/krotik/common/errorutil"
	"github.com/krotik/common/fileutil"
	"github.com/krotik/common/logutil"
	"github.com/krotik/common/stringutil"
	"github.com/krotik/curly/config"
	"github.com/krotik/curly/lang/interpreter"
	"github.com/krotik/ecal/cli/tool"
	"github.com/krotik/ecal/stdlib"
	"github.com/krotik/ecal/util"
)

/*
RuntimeProviderName is the name of the ECAL runtime provider
*/
const RuntimeProviderName = "curly-runtime"

/*
ScriptExtension is the file extension of script commands
*/
const ScriptExtension = ".ecal"

/*
LoggerScope is the log scope of script commands
*/
const LoggerScope = "curly.ecal"

var logger = logutil.GetLogger(LoggerScope)

/*
ScriptCommand models a reserved command which runs an ECAL script.
*/
type ScriptCommand struct {
	Name     string // Name of the command
	Dir      string // Root dir for the ECAL interpreter
	File     string // Script file which is run
	LogLevel string // Log level string (Debug, Info, Error)
	LogFile  string // Logfile (blank for stdout)
}

/*
NewScriptCommand returns a new script command for a given script file. The
ECAL log settings are taken from the configuration.
*/
func NewScriptCommand(name string, dir string, file string) *ScriptCommand {
	if config.Config == nil {
		config.LoadDefaultConfig()
	}

	return &ScriptCommand{
		Name:     name,
		Dir:      dir,
		File:     file,
		LogLevel: config.Str(config.ScriptLogLevel),
		LogFile:  config.Str(config.ScriptLogFile),
	}
}

/*
Run executes the script of this command.
*/
func (sc *ScriptCommand) Run() error {
	i := tool.NewCLIInterpreter()

	i.Dir = &sc.Dir
	i.LogFile = &sc.LogFile
	i.LogLevel = &sc.LogLevel
	i.EntryFile = sc.File

	i.CreateRuntimeProvider(RuntimeProviderName)

	logger.Debug("Running script ", sc.File, " for command ", sc.Name)

	err := i.Interpret(false)

	// Include a traceback if possible

	if ss, ok := err.(util.TraceableRuntimeError); ok {
		err = fmt.Errorf("%v\n  %v", err.Error(), strings.Join(ss.GetTraceString(), "\n  "))
	}

	return err
}

/*
Description returns a short description of the command (single line).
*/
func (sc *ScriptCommand) Description() string {
	return fmt.Sprintf("Runs ECAL script %v", sc.File)
}

/*
LoadScriptCommands adds a ScriptCommand for every ECAL script in a given
directory to a given command table. The table is also used by the
curly.interpret function which is available to the scripts.
*/
func LoadScriptCommands(dir string, commands interpreter.CommandTable) error {

	if ok, _ := fileutil.IsDir(dir); !ok {
		return fmt.Errorf("Script folder %v does not exist", dir)
	}

	files, err := ioutil.ReadDir(dir)
	if err != nil {
		return err
	}

	AddCurlyStdlibFunctions(commands)

	errs := errorutil.NewCompositeError()

	for _, f := range files {

		if f.IsDir() || filepath.Ext(f.Name()) != ScriptExtension {
			continue
		}

		name := strings.TrimSuffix(f.Name(), ScriptExtension)

		if name == "" || !stringutil.IsAlphaNumeric(name) {
			errs.Add(fmt.Errorf("Invalid command name %v in script folder %v", f.Name(), dir))
			continue
		}

		logger.Info("Adding script command ", name)

		commands[name] = NewScriptCommand(name, dir, filepath.Join(dir, f.Name()))
	}

	if errs.HasErrors() {
		return errs
	}

	return nil
}

// ECAL functions
// ==============

/*
interpretFunc is the curly.interpret function which is registered in the ECAL stdlib
*/
var interpretFunc = &InterpretFunc{}
var registerOnce = &sync.Once{}

/*
AddCurlyStdlibFunctions adds Curly related ECAL stdlib functions. The given
command table is used for all programs which are run from scripts.
*/
func AddCurlyStdlibFunctions(commands interpreter.CommandTable) {
	interpretFunc.SetCommands(commands)

	registerOnce.Do(func() {
		stdlib.AddStdlibPkg("curly", "Curly related functions")
		stdlib.AddStdlibFunc("curly", "interpret", interpretFunc)
	})
}
