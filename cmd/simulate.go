package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"runtime"

	"github.com/etnz/forecast"
	"github.com/etnz/forecast/renderer"
	"github.com/google/subcommands"
)

// simulateCmd holds the flags for the 'simulate' subcommand.
type simulateCmd struct {
	format  string
	banner  bool
	seed    uint64
	workers int
	bins    int
	level   float64

	// overrides of the configuration, applied only when set.
	initial      float64
	yearlyReturn float64
	monthly      float64
	volatility   float64
	years        int
	goal         float64
	trials       int
	currency     string

	out io.Writer // nil for os.Stdout
}

func (*simulateCmd) Name() string     { return "simulate" }
func (*simulateCmd) Synopsis() string { return "project the portfolio value with a Monte Carlo simulation" }
func (*simulateCmd) Usage() string {
	return `fcs simulate [-format text|markdown|json] [-banner] [-seed <seed>] [-n <trials>] ...

  Simulates random yearly returns for the configured portfolio and reports the
  median value, the probability of reaching the goal, and a confidence interval.
  Flags override the values of the configuration file.
`
}

func (c *simulateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.format, "format", "text", "output format (text, markdown, json)")
	f.BoolVar(&c.banner, "banner", false, "frame the text output with the console banners")
	f.Uint64Var(&c.seed, "seed", 0, "seed of the random generator, 0 for a random one")
	f.IntVar(&c.workers, "workers", runtime.NumCPU(), "number of trials simulated in parallel")
	f.IntVar(&c.bins, "bins", 10, "number of buckets in the distribution, 0 for none")
	f.Float64Var(&c.level, "level", forecast.DefaultConfidenceLevel, "confidence level of the interval")

	f.Float64Var(&c.initial, "initial", 0, "initial investment")
	f.Float64Var(&c.yearlyReturn, "return", 0, "expected yearly return, 0.07 for 7%")
	f.Float64Var(&c.monthly, "monthly", 0, "monthly contributions, negative for withdrawals")
	f.Float64Var(&c.volatility, "volatility", 0, "yearly volatility, 0.15 for 15%")
	f.IntVar(&c.years, "years", 0, "number of years to simulate")
	f.Float64Var(&c.goal, "goal", 0, "portfolio value to reach")
	f.IntVar(&c.trials, "n", 0, "number of trials")
	f.StringVar(&c.currency, "currency", "", "currency of the report")
}

func (c *simulateCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	switch c.format {
	case "text", "markdown", "json":
	default:
		return exitStatus(fmt.Errorf("%w: unknown format %q", forecast.ErrInvalidConfig, c.format))
	}

	cfg, err := DecodeConfig()
	if err != nil {
		return exitStatus(err)
	}
	c.override(f, &cfg)

	opts := []forecast.Option{
		forecast.WithWorkers(c.workers),
		forecast.WithConfidenceLevel(c.level),
		forecast.WithBins(c.bins),
	}
	if c.seed != 0 {
		opts = append(opts, forecast.WithSeed(c.seed))
	}
	if *Verbose {
		opts = append(opts, forecast.WithLogger(log.Default()))
	}

	summary, err := forecast.Run(ctx, cfg, opts...)
	if err != nil {
		return exitStatus(err)
	}

	w := stdout(c.out)
	switch c.format {
	case "text":
		if c.banner {
			fmt.Fprint(w, renderer.Banner(summary))
		} else {
			fmt.Fprint(w, renderer.Text(summary))
		}
	case "markdown":
		printMarkdown(w, renderer.Markdown(cfg, summary))
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(summary); err != nil {
			return exitStatus(err)
		}
	}
	return subcommands.ExitSuccess
}

// override copies into cfg the configuration flags that were set on the command line.
func (c *simulateCmd) override(f *flag.FlagSet, cfg *forecast.Config) {
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "initial":
			cfg.InitialInvestment = c.initial
		case "return":
			cfg.ExpectedYearlyReturn = c.yearlyReturn
		case "monthly":
			cfg.MonthlyContributions = c.monthly
		case "volatility":
			cfg.Volatility = c.volatility
		case "years":
			cfg.Years = c.years
		case "goal":
			cfg.Goal = c.goal
		case "n":
			cfg.NumSimulations = c.trials
		case "currency":
			cfg.Currency = c.currency
		}
	})
}
