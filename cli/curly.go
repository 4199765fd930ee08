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
Curly is an interpreter for a small bracket delimited language.

A program is enclosed in start and end markers and consists of space separated
tokens. Numbers are pushed onto a stack, the operators + - * / combine the two
topmost numbers and reserved commands like <HI> are run for their side effects.
All other tokens are written to the output.

	{{ <HI> 3 4 + apples }}

Reserved commands can be implemented as ECAL scripts (see ScriptFolder in the
configuration).
*/
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/krotik/common/fileutil"
	"github.com/krotik/common/logutil"
	"github.com/krotik/common/termutil"
	"github.com/krotik/curly/config"
	"github.com/krotik/curly/console"
	"github.com/krotik/curly/ecal"
	"github.com/krotik/curly/lang"
	"github.com/krotik/curly/lang/interpreter"
	"github.com/krotik/curly/server"
)

func main() {

	// Initialize the default command line parser

	flag.CommandLine.Init(os.Args[0], flag.ContinueOnError)

	// Define default usage message

	flag.Usage = func() {

		// Print usage for tool selection

		fmt.Println(fmt.Sprintf("Usage of %s <tool>", os.Args[0]))
		fmt.Println()
		fmt.Println(fmt.Sprintf("Curly %v", config.ProductVersion))
		fmt.Println()
		fmt.Println("Available commands:")
		fmt.Println()
		fmt.Println("    console   Interactive Curly console")
		fmt.Println("    run       Run a Curly program")
		fmt.Println("    server    Start Curly server")
		fmt.Println()
		fmt.Println(fmt.Sprintf("Use %s <command> -help for more information about a given command.", os.Args[0]))
		fmt.Println()
	}

	// Parse the command bit

	err := flag.CommandLine.Parse(os.Args[1:])

	if len(flag.Args()) > 0 {

		arg := flag.Args()[0]

		if arg == "server" || arg == "console" || arg == "run" {
			loadConfig()
			setupLogging()
		}

		if arg == "server" {
			server.StartServer()
		} else if arg == "console" {
			RunCliConsole()
		} else if arg == "run" {
			if !RunProgram() {
				os.Exit(1)
			}
		} else {
			flag.Usage()
		}

	} else if err == nil {

		flag.Usage()
	}
}

/*
loadConfig loads the config file. The default configuration is used if the
config file cannot be loaded.
*/
func loadConfig() {
	configFile := config.DefaultConfigFile

	if ok, _ := fileutil.PathExists(configFile); !ok {
		config.LoadDefaultConfig()
		return
	}

	if err := config.LoadConfigFile(configFile); err != nil {
		fmt.Println(fmt.Sprintf("Could not load config file %v: %v", configFile, err))
		config.LoadDefaultConfig()
	}
}

/*
setupLogging adds a log sink for all Curly log messages.
*/
func setupLogging() {
	level := logutil.StringToLoglevel(config.Str(config.LogLevel))
	logger := logutil.GetLogger("curly")

	if logFile := config.Str(config.LogFile); logFile != "" {
		f, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0660)

		if err == nil {
			logger.AddLogSink(level, logutil.SimpleFormatter(), f)
			return
		}

		fmt.Println(fmt.Sprintf("Could not open log file %v: %v", logFile, err))
	}

	logger.AddLogSink(level, logutil.ConsoleFormatter(), os.Stderr)
}

/*
newSession creates a new session with all available commands.
*/
func newSession(name string) *lang.Session {
	commands := make(interpreter.CommandTable)

	if config.Bool(config.EnableScriptCommands) {
		if err := ecal.LoadScriptCommands(config.Str(config.ScriptFolder), commands); err != nil {
			fmt.Println(fmt.Sprintf("Could not load script commands: %v", err))
		}
	}

	return lang.NewSession(name, int(config.Int(config.HistorySize)), commands)
}

/*
RunProgram runs a single program from a file or the command line. Returns
if the program was successful.
*/
func RunProgram() bool {
	var program string

	progfile := flag.String("file", "", "Read the program from a file")
	progline := flag.String("exec", "", "Run a given program")

	showHelp := flag.Bool("help", false, "Show this help message")

	flag.Usage = func() {
		fmt.Println()
		fmt.Println(fmt.Sprintf("Usage of %s run [options]", os.Args[0]))
		fmt.Println()
		flag.PrintDefaults()
		fmt.Println()
	}

	flag.CommandLine.Parse(os.Args[2:])

	if *showHelp || (*progfile == "" && *progline == "") {
		flag.Usage()
		return *showHelp
	}

	program = *progline

	if *progfile != "" {
		content, err := ioutil.ReadFile(*progfile)
		if err != nil {
			fmt.Println(err.Error())
			return false
		}

		program = string(content)
	}

	rec, err := newSession("run").Run(program, os.Stdout)

	if err != nil {
		fmt.Println(err.Error())
		return false
	}

	fmt.Println(rec.Output)

	return true
}

/*
RunCliConsole runs the interactive console on the commandline.
*/
func RunCliConsole() {
	var err error

	cmdfile := flag.String("file", "", "Read commands from a file and exit")
	cmdline := flag.String("exec", "", "Execute a single line and exit")

	showHelp := flag.Bool("help", false, "Show this help message")

	flag.Usage = func() {
		fmt.Println()
		fmt.Println(fmt.Sprintf("Usage of %s console [options]", os.Args[0]))
		fmt.Println()
		flag.PrintDefaults()
		fmt.Println()
	}

	flag.CommandLine.Parse(os.Args[2:])

	if *showHelp {
		flag.Usage()
		return
	}

	if *cmdfile == "" && *cmdline == "" {
		fmt.Println(fmt.Sprintf("Curly %v - Console", config.ProductVersion))
	}

	var clt termutil.ConsoleLineTerminal

	isExitLine := func(s string) bool {
		return s == "exit" || s == "q" || s == "quit" || s == "\x04"
	}

	clt, err = termutil.NewConsoleLineTerminal(os.Stdout)

	if *cmdfile != "" {
		var file *os.File

		// Read commands from a file

		file, err = os.Open(*cmdfile)
		if err == nil {
			defer file.Close()

			clt, err = termutil.AddFileReadingWrapper(clt, file, true)
		}

	} else if *cmdline != "" {
		var buf bytes.Buffer

		buf.WriteString(fmt.Sprintln(*cmdline))

		// Read commands from a single line

		clt, err = termutil.AddFileReadingWrapper(clt, &buf, true)

	} else {

		// Add history functionality

		histfile := filepath.Join(filepath.Dir(os.Args[0]), ".curly_console_history")
		clt, err = termutil.AddHistoryMixin(clt, histfile,
			func(s string) bool {
				return isExitLine(s)
			})
	}

	if err == nil {

		// Create the console object

		con := console.NewConsole(clt, newSession("console"),
			func(args []string, exportBuf *bytes.Buffer) error {

				// Export data to a chosen file

				filename := "export.out"

				if len(args) > 0 {
					filename = args[0]
				}

				return ioutil.WriteFile(filename, exportBuf.Bytes(), 0666)
			})

		// Start the console

		if err = clt.StartTerm(); err == nil {
			var line string

			defer clt.StopTerm()

			if *cmdfile == "" && *cmdline == "" {
				fmt.Println("Type 'q' or 'quit' to exit the shell and '?' to get help")
			}

			line, err = clt.NextLine()
			for err == nil && !isExitLine(line) {

				_, cerr := con.Run(line)

				if cerr != nil {

					// Output any error

					fmt.Fprintln(clt, cerr.Error())
				}

				line, err = clt.NextLine()
			}
		}
	}

	if err != nil {
		fmt.Println(err.Error())
	}
}
