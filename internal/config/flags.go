// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"os"
	"strconv"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

const usageExamples = `
Examples:
  Show the current configuration:
    %[1]s --show

  Set a new token:
    %[1]s --token "MySecretToken123"

  Generate and set a token:
    %[1]s --generate

  Full update:
    %[1]s --token "MyToken" --url "http://sandbox:1450" --name "Sandbox-0"
`

// ParseFlags parses the command line of the tool.
//
// Action flags:
//
//	-token      set a new sandbox token
//	-url        sandbox URL (default for new entries: http://sandbox:1450)
//	-name       sandbox name (default for new entries: Sandbox-0)
//	-show       show the current configuration
//	-generate   generate a secure token and set it
//	-copy       copy the resulting token to the clipboard
//	-check      probe the sandbox with its token
//
// Connection flags:
//
//	-backend    storage backend: mongo, postgres or sqlite
//	-mongo      MongoDB address in format [host]:[port]
//	-mongo-uri  MongoDB connection URI
//	-mongo-db   MongoDB database name
//	-d          database DSN for the postgres and sqlite backends
//	-timeout    timeout of the whole database session (e.g. "10s")
//	-log-level  log level written to stderr
//	-c/-config  json file path with configs
//
// flag.ErrHelp is returned when -h or -help is given.
func ParseFlags(args []string) (*StructuredConfig, error) {
	return parseFlags(args, os.Stderr)
}

func parseFlags(args []string, output io.Writer) (*StructuredConfig, error) {
	var mongoAddress NetAddress
	var cmd Command
	var backend, mongoURI, mongoDB, databaseDSN, logLevel, jsonConfigPath string
	var timeout time.Duration

	name := "sandbox-token"
	if len(args) > 0 {
		name = args[0]
		args = args[1:]
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)

	fs.StringVar(&cmd.Token, "token", "", "Set a new sandbox token")
	fs.StringVar(&cmd.URL, "url", "", "Sandbox URL (default for new entries: http://sandbox:1450)")
	fs.StringVar(&cmd.Name, "name", "", "Sandbox name (default for new entries: Sandbox-0)")
	fs.BoolVar(&cmd.Show, "show", false, "Show the current configuration")
	fs.BoolVar(&cmd.Generate, "generate", false, "Generate a secure token and set it")
	fs.BoolVar(&cmd.Copy, "copy", false, "Copy the resulting token to the clipboard")
	fs.BoolVar(&cmd.Check, "check", false, "Probe the sandbox with its token")

	fs.StringVar(&backend, "backend", "", "Storage backend: mongo, postgres or sqlite")
	fs.Var(&mongoAddress, "mongo", "MongoDB address host:port")
	fs.StringVar(&mongoURI, "mongo-uri", "", "MongoDB connection URI")
	fs.StringVar(&mongoDB, "mongo-db", "", "MongoDB database name")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN (postgres, sqlite)")
	fs.DurationVar(&timeout, "timeout", 0, "Database session timeout (e.g., 10s)")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Manage the Normal-OJ sandbox token.\n\nUsage of %s:\n", name)
		fs.PrintDefaults()
		fmt.Fprintf(fs.Output(), usageExamples, name)
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: unexpected arguments %v", ErrInvalidInvocation, fs.Args())
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "token" {
			cmd.TokenSet = true
		}
	})

	return &StructuredConfig{
		Storage: Storage{
			Backend: backend,
			Timeout: timeout,
			Mongo: Mongo{
				Host:     mongoAddress.Host,
				Port:     mongoAddress.Port,
				URI:      mongoURI,
				Database: mongoDB,
			},
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Command:      cmd,
		LogLevel:     logLevel,
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses the input string of form host:port and populates the NetAddress.
// Host names are accepted as-is since the database usually runs under a
// compose service name.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host == "" {
		return errors.New("host must not be empty")
	}

	a.Host = host
	a.Port = port
	return nil
}
