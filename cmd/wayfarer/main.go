// Wayfarer - Tourism Recommendation and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

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

	"github.com/tomtom215/wayfarer/internal/models"
)

// Process exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

type command struct {
	name    string
	summary string
	run     func(ctx context.Context, args []string, stdout, stderr io.Writer) error
}

var commands = []command{
	{"plan", "build a day-by-day itinerary for a tourist profile", runPlan},
	{"recommend", "rank cities and sites for a tourist profile", runRecommend},
	{"analytics", "summarize the dataset as JSON", runAnalytics},
	{"enhance", "generate a synthetic dataset from the city catalog", runEnhance},
}

var (
	// errUsage means the flag set already reported the problem.
	errUsage = errors.New("usage")
	// errNoItinerary means a no-match result was printed.
	errNoItinerary = errors.New("no itinerary")
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	cancel()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stderr)
		return exitUsage
	}

	name := args[0]
	switch name {
	case "help", "-h", "-help", "--help":
		usage(stdout)
		return exitOK
	}

	for _, c := range commands {
		if c.name == name {
			return exitCode(stderr, c.run(ctx, args[1:], stdout, stderr))
		}
	}

	fmt.Fprintf(stderr, "wayfarer: unknown command %q\n\n", name)
	usage(stderr)
	return exitUsage
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "Usage: wayfarer <command> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, c := range commands {
		fmt.Fprintf(w, "  %-10s %s\n", c.name, c.summary)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'wayfarer <command> -h' for command flags.")
}

func exitCode(stderr io.Writer, err error) int {
	var verr *models.ValidationError
	switch {
	case err == nil, errors.Is(err, flag.ErrHelp):
		return exitOK
	case errors.Is(err, errUsage):
		return exitUsage
	case errors.Is(err, errNoItinerary):
		return exitError
	case errors.As(err, &verr):
		fmt.Fprintf(stderr, "wayfarer: invalid input: %s\n", verr.Error())
		return exitUsage
	default:
		fmt.Fprintf(stderr, "wayfarer: %v\n", err)
		return exitError
	}
}

// parseFlags parses args and rejects positional arguments.
func parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return errUsage
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(fs.Output(), "unexpected arguments: %v\n", fs.Args())
		fs.Usage()
		return errUsage
	}
	return nil
}

// usageErrorf reports a bad flag value on the flag set's output.
func usageErrorf(fs *flag.FlagSet, format string, args ...interface{}) error {
	fmt.Fprintf(fs.Output(), format+"\n", args...)
	return errUsage
}
