// Package main is a command-line front end for the neural-mapping core. It
// validates brain model documents and computes activation maps and treatment
// impact ratings from JSON files, writing JSON results to stdout.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/neurotwin/core/internal/config"
	"github.com/neurotwin/core/internal/logger"
)

const (
	exitOK    = 0
	exitFail  = 1
	exitUsage = 2
)

const usage = `usage: neuralmap <command> [flags] <files>

commands:
  validate   [-pretty] <model.json>
  activation [-pretty] <model.json> <catalog.json>
  impact     [-pretty] [-treatments id,id] <catalog.json>
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return exitUsage
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "load config: %v\n", err)
		return exitFail
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format, "neuralmap")
	if err != nil {
		fmt.Fprintf(stderr, "build logger: %v\n", err)
		return exitFail
	}
	defer func() { _ = log.Sync() }()

	app := newApp(cfg, log, stdout)

	name, rest := args[0], args[1:]
	var cmd func(*flag.FlagSet, []string) error
	switch name {
	case "validate":
		cmd = app.validate
	case "activation":
		cmd = app.activation
	case "impact":
		cmd = app.impact
	case "help", "-h", "-help", "--help":
		fmt.Fprint(stdout, usage)
		return exitOK
	default:
		fmt.Fprintf(stderr, "unknown command %q\n\n%s", name, usage)
		return exitUsage
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	if err := cmd(fs, rest); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitUsage
		}
		var uerr usageError
		if errors.As(err, &uerr) {
			fmt.Fprintf(stderr, "%s: %v\n\n%s", name, err, usage)
			return exitUsage
		}
		log.Error("command failed", zap.String("command", name), zap.Error(err))
		fmt.Fprintf(stderr, "%s: %v\n", name, err)
		return exitFail
	}
	return exitOK
}

type usageError string

func (e usageError) Error() string { return string(e) }
