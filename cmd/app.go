// Package cmd implements the CLI application to project a portfolio.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/forecast"
	"github.com/google/subcommands"
	"github.com/mattn/go-isatty"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&simulateCmd{}, "projection")
	c.Register(&configCmd{}, "projection")
	c.Register(&topicCmd{}, "documentation")
}

const (
	EnvConfigFile = "FCS_CONFIG_FILE"
	EnvVerbose    = "FCS_VERBOSE"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", envOr(EnvConfigFile, "portfolio.yaml"), "Path to the portfolio configuration file (YAML or JSON)")

// Verbose enables progress logs on stderr.
var Verbose = flag.Bool("v", os.Getenv(EnvVerbose) != "", "verbose output")

func envOr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}

// DecodeConfig reads the configuration file, then applies the environment overrides.
// A missing file falls back to the example portfolio.
func DecodeConfig() (forecast.Config, error) {
	cfg, err := forecast.LoadConfig(*configFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("warning, configuration %q does not exist, using the example portfolio instead", *configFile)
		cfg, err = forecast.DefaultConfig(), nil
	}
	if err != nil {
		return cfg, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// printMarkdown writes doc to w, styled by glamour when w is a terminal.
func printMarkdown(w io.Writer, doc string) {
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		out, err := renderTerminal(doc)
		if err == nil {
			fmt.Fprint(w, out)
			return
		}
		log.Printf("warning, cannot style markdown: %v", err)
	}
	fmt.Fprint(w, doc)
}

func renderTerminal(doc string) (string, error) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		return "", err
	}
	return r.Render(doc)
}

// exitStatus reports err on stderr, configuration errors are usage errors.
func exitStatus(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	if errors.Is(err, forecast.ErrInvalidConfig) || errors.Is(err, forecast.ErrInvalidParameter) {
		return subcommands.ExitUsageError
	}
	return subcommands.ExitFailure
}

// stdout returns w, or os.Stdout if w is nil.
func stdout(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}
	return w
}
