// Command minspan builds minimum spanning trees and tree-walk routes over
// planar point sets, either as an HTTP service or one input at a time.
//
// Usage:
//
//	minspan serve  [config flags]
//	minspan build  [-in file] [-verify] [-flat] [config flags]
//	minspan tour   [-in file] [-scale s] [config flags]
//	minspan render [-in file] [-out tree.png] [-route] [-width w] [-height h] [config flags]
//
// Input is JSON, either [[x, y], ...] or {"points": [[x, y], ...]}, read from
// -in or stdin. Configuration flags and MINSPAN_* variables are described by
// "minspan serve -h".
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/minspan/config"
	"github.com/katalvlaran/minspan/logging"
)

const usage = `usage: minspan <serve|build|tour|render> [flags]`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr, os.Getenv)
	stop()
	os.Exit(code)
}

// env carries the process surroundings of one invocation.
type env struct {
	cfg    config.Config
	log    *logging.Logger
	stdin  io.Reader
	stdout io.Writer
}

// run executes one subcommand and returns the exit code:
// 0 on success, 1 on failure, 2 on bad usage.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer, getenv func(string) string) int {
	if len(args) == 0 {
		fmt.Fprintln(stderr, usage)
		return 2
	}

	var cmd func(context.Context, *env) error
	fs := flag.NewFlagSet("minspan "+args[0], flag.ContinueOnError)
	fs.SetOutput(stderr)
	switch args[0] {
	case "serve":
		cmd = serve
	case "build":
		cmd = buildCmd(fs)
	case "tour":
		cmd = tourCmd(fs)
	case "render":
		cmd = renderCmd(fs)
	default:
		fmt.Fprintf(stderr, "minspan: unknown command %q\n%s\n", args[0], usage)
		return 2
	}

	cfg, err := config.LoadFlagSet(fs, args[1:], getenv)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	log, err := logging.New(stderr, cfg.LogFormat, cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	e := &env{cfg: cfg, log: log.With("cmd", args[0]), stdin: stdin, stdout: stdout}
	if err := cmd(ctx, e); err != nil {
		e.log.ErrorContext(ctx, "failed", "error", err)
		return 1
	}

	return 0
}
