// Package renderer formats projection summaries for people.
package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/etnz/forecast"
	md "github.com/nao1215/markdown"
)

// Text returns the three lines of the classic report:
//
//	Median Portfolio Value: 5452.19
//	Probability of reaching the goal of 5800.00: 31.22%
//	Confidence Interval at 90%: (4478.51, 6501.88)
//
// Values use two decimals and no currency, so that the output stays
// comparable whatever the configuration.
func Text(s *forecast.Summary) string {
	var b bytes.Buffer
	fmt.Fprintf(&b, "Median Portfolio Value: %.2f\n", s.Median)
	fmt.Fprintf(&b, "Probability of reaching the goal of %.2f: %s\n", s.Goal, forecast.P(s.GoalProbability))
	fmt.Fprintf(&b, "Confidence Interval at %.0f%%: (%.2f, %.2f)\n", s.ConfidenceLevel*100, s.ConfidenceInterval.Lower, s.ConfidenceInterval.Upper)
	return b.String()
}

const separator = "=========================="

// Banner returns the lines of Text framed by the console messages of the
// interactive tool: the number of trials before, a completion notice after.
func Banner(s *forecast.Summary) string {
	var b bytes.Buffer
	fmt.Fprintf(&b, "%s\nRunning %d simulations...\n%s\n", separator, s.Trials, separator)
	b.WriteString(Text(s))
	fmt.Fprintf(&b, "%s\nMonte Carlo simulation completed.\nThank you for using the Monte Carlo simulation tool!\n%s\n", separator, separator)
	return b.String()
}

// Markdown renders the assumptions of cfg and its projection s as a markdown report.
func Markdown(cfg forecast.Config, s *forecast.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	money := func(v float64) string { return forecast.M(v, cfg.Currency).String() }

	doc.H1(fmt.Sprintf("Portfolio Projection, %d-Year Horizon", cfg.Years))
	doc.PlainText(fmt.Sprintf("%d simulated trials, seed %d.", s.Trials, s.Seed))

	doc.H2("Assumptions")
	doc.Table(md.TableSet{
		Header: []string{"Parameter", "Value"},
		Rows: [][]string{
			{"Initial Investment", money(cfg.InitialInvestment)},
			{"Expected Yearly Return", forecast.P(cfg.ExpectedYearlyReturn).String()},
			{"Volatility", forecast.P(cfg.Volatility).String()},
			{"Monthly Contributions", money(cfg.MonthlyContributions)},
			{"Goal", money(cfg.Goal)},
		},
	})

	doc.H2("Outcome")
	level := forecast.P(s.ConfidenceLevel)
	// principal and every contribution, before any return.
	invested := cfg.InitialInvestment + 12*cfg.MonthlyContributions*float64(cfg.Years)
	rows := [][]string{
		{"Median", money(s.Median)},
		{"Median Gain over Amount Invested", forecast.M(s.Median-invested, cfg.Currency).SignedString()},
	}
	if invested > 0 {
		rows = append(rows, []string{"Median Return over Amount Invested", forecast.P(s.Median/invested - 1).SignedString()})
	}
	rows = append(rows,
		[]string{"Probability of Reaching the Goal", forecast.P(s.GoalProbability).String()},
		[]string{fmt.Sprintf("Confidence Interval at %.0f%%", float64(level)), fmt.Sprintf("%s to %s", money(s.ConfidenceInterval.Lower), money(s.ConfidenceInterval.Upper))},
		[]string{"Mean", money(s.Stats.Mean)},
		[]string{"Standard Deviation", money(s.Stats.StdDev)},
		[]string{"Worst Trial", money(s.Stats.Min)},
		[]string{"Best Trial", money(s.Stats.Max)},
	)
	doc.Table(md.TableSet{
		Header: []string{"Statistic", "Value"},
		Rows:   rows,
	})

	if len(s.Distribution) > 0 {
		doc.H2("Distribution")
		dist := make([][]string, 0, len(s.Distribution))
		for _, b := range s.Distribution {
			dist = append(dist, []string{
				money(b.From),
				money(b.To),
				strconv.Itoa(b.Count),
				forecast.P(float64(b.Count) / float64(s.Trials)).String(),
			})
		}
		doc.Table(md.TableSet{
			Header: []string{"From", "To", "Trials", "Share"},
			Rows:   dist,
		})
	}

	return doc.String()
}
