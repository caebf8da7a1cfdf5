// Command geoinfer infers the district of news stories.
//
// Usage:
//
//	geoinfer infer  -catalog india.yaml[,nepal.yaml] [-in stories.jsonl] [-out results.jsonl]
//	geoinfer check  -catalog india.yaml
//	geoinfer lookup [-catalog india.yaml] <name>
//
// Settings come from geoinfer.yaml (or CONFIG_PATH), then GEO_* and LOG_*
// environment variables, then flags. A .env file in the working directory is
// loaded first when present.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()

	os.Exit(code)
}

type command struct {
	name  string
	usage string
	run   func(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error
}

var commands = []command{
	{"infer", "resolve JSONL stories to districts", runInfer},
	{"check", "validate catalog files", runCheck},
	{"lookup", "show the canonical name and aliases of a place", runLookup},
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stderr)
		return exitUsage
	}

	for _, cmd := range commands {
		if cmd.name != args[0] {
			continue
		}

		if err := cmd.run(ctx, args[1:], stdin, stdout, stderr); err != nil {
			if isUsage(err) {
				return exitUsage
			}

			fmt.Fprintf(stderr, "geoinfer %s: %v\n", cmd.name, err)

			return exitError
		}

		return exitOK
	}

	if args[0] == "help" || args[0] == "-h" || args[0] == "-help" {
		usage(stdout)
		return exitOK
	}

	fmt.Fprintf(stderr, "geoinfer: unknown command %q\n\n", args[0])
	usage(stderr)

	return exitUsage
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "Usage: geoinfer <command> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")

	for _, cmd := range commands {
		fmt.Fprintf(w, "  %-8s %s\n", cmd.name, cmd.usage)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'geoinfer <command> -h' for command flags.")
}
