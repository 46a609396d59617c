package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"sitecrew/internal/config"
	"sitecrew/internal/coordinator"
	"sitecrew/internal/trace"
)

const (
	ExitSuccess = 0
	ExitError   = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("sitecrew", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to YAML or TOML crew file (default: built-in reference crew)")
	output := fs.String("output", "text", "output format: text, json")
	repeat := fs.Int("repeat", 0, "passes per scheduled invocation (overrides config)")
	verbose := fs.Bool("verbose", false, "log diagnostics to stderr")
	if err := fs.Parse(args); err != nil {
		return ExitError
	}

	if *output != "text" && *output != "json" {
		fmt.Fprintf(stderr, "error: --output must be 'text' or 'json', got %q\n", *output)
		return ExitError
	}
	if *repeat < 0 {
		fmt.Fprintln(stderr, "error: --repeat must be >= 0")
		return ExitError
	}

	coordinator.Log.SetOutput(stderr)
	coordinator.Log.SetLevel(logrus.WarnLevel)
	if *verbose {
		coordinator.Log.SetLevel(logrus.DebugLevel)
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return ExitError
		}
		cfg = loaded
	}
	if *repeat > 0 {
		cfg.Execution.Repeat = *repeat
	}

	// Text streams line by line; JSON needs the whole trace first.
	coll := trace.NewCollector()
	var rec trace.Recorder = coll
	if *output == "text" {
		rec = trace.Multi(coll, trace.NewStream(stdout))
	}

	coord, err := coordinator.New(cfg, rec)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return ExitError
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runErr := coord.Run(ctx)
	if runErr != nil {
		coordinator.Log.WithError(runErr).Warn("run stopped early")
	}

	if *output == "json" {
		trace.FormatJSON(stdout, trace.NewReport(coll.Sections()))
	}
	coordinator.Log.WithField("lines", len(coll.Events())).Debug("trace complete")

	return ExitSuccess
}
