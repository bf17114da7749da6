package cmd

import (
	"context"
	"flag"
	"io"

	"github.com/etnz/forecast"
	"github.com/google/subcommands"
)

// configCmd prints the effective configuration.
type configCmd struct {
	example bool

	out io.Writer // nil for os.Stdout
}

func (*configCmd) Name() string     { return "config" }
func (*configCmd) Synopsis() string { return "print the effective portfolio configuration" }
func (*configCmd) Usage() string {
	return `fcs config [-example]

  Prints the configuration 'simulate' would use, after environment overrides,
  in a form that can be saved as a configuration file:

    fcs config -example > portfolio.yaml
`
}

func (c *configCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.example, "example", false, "print the example portfolio instead of the configuration file")
}

func (c *configCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg := forecast.DefaultConfig()
	if !c.example {
		var err error
		if cfg, err = DecodeConfig(); err != nil {
			return exitStatus(err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return exitStatus(err)
	}
	if err := forecast.EncodeConfig(stdout(c.out), cfg); err != nil {
		return exitStatus(err)
	}
	return subcommands.ExitSuccess
}
