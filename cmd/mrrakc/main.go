// Mrrakc - Travel Content Site Builder
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mrrakc

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/tomtom215/mrrakc/internal/config"
	"github.com/tomtom215/mrrakc/internal/logging"
)

// version is set at link time with -ldflags "-X main.version=...".
var version = "dev"

// errUsage marks a command line that could not be parsed. Usage has
// already been printed when it is returned.
var errUsage = errors.New("usage")

// exitCoder is implemented by errors that carry their own exit status.
type exitCoder interface {
	ExitCode() int
}

func main() {
	err := run(os.Args[1:], os.Stdout, os.Stderr)
	if err == nil {
		return
	}
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if errors.Is(err, errUsage) {
		os.Exit(2)
	}
	var ec exitCoder
	if errors.As(err, &ec) {
		os.Exit(ec.ExitCode())
	}
	logging.Error().Err(err).Msg("mrrakc failed")
	os.Exit(1)
}

// stdio carries the writers a subcommand prints to.
type stdio struct {
	out io.Writer
	err io.Writer
}

type command struct {
	name    string
	summary string
	run     func(cfg *config.Config, args []string, std stdio) error
}

var commands = []command{
	{"build", "load, resolve and write every bundle", runBuild},
	{"validate", "check every record without writing bundles", runValidate},
	{"watch", "build, then rebuild on every change", runWatch},
	{"explore", "filter explorer points and print the view", runExplore},
}

// run parses the global flags, loads the configuration and dispatches to
// a subcommand.
func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("mrrakc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to the config file (default: mrrakc.yaml or $CONFIG_PATH)")
	logLevel := fs.String("log-level", "", "override logging.level")
	fs.Usage = func() { usage(fs, stderr) }

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return errUsage
	}

	name, rest := fs.Arg(0), fs.Args()[1:]
	if name == "version" {
		_, err := fmt.Fprintln(stdout, "mrrakc", version)
		return err
	}

	var cmd *command
	for i := range commands {
		if commands[i].name == name {
			cmd = &commands[i]
			break
		}
	}
	if cmd == nil {
		fmt.Fprintf(stderr, "mrrakc: unknown command %q\n\n", name)
		fs.Usage()
		return errUsage
	}

	cfg, err := config.LoadWithKoanf(*configPath)
	if err != nil {
		return err
	}
	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
		Output:    stderr,
	})
	if *logLevel != "" {
		if err := logging.SetLevel(*logLevel); err != nil {
			return fmt.Errorf("-log-level: %w", err)
		}
	}

	return cmd.run(cfg, rest, stdio{out: stdout, err: stderr})
}

func usage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "Usage: mrrakc [flags] <command> [command flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, c := range commands {
		fmt.Fprintf(w, "  %-9s %s\n", c.name, c.summary)
	}
	fmt.Fprintf(w, "  %-9s %s\n", "version", "print the version")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fs.PrintDefaults()
}
