package cmd

import (
	"log"

	"github.com/etnz/forecast/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes the command line for shell completion.
func Completion() *complete.Command {
	topics, err := docs.GetAllTopics()
	if err != nil {
		log.Printf("warning, cannot list documentation topics: %v", err)
	}
	topics = append(topics, "readme", "*")

	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"config": predict.Files("*.yaml"),
			"v":      predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"simulate": {
				Flags: map[string]complete.Predictor{
					"format":     predict.Set{"text", "markdown", "json"},
					"banner":     predict.Nothing,
					"seed":       predict.Something,
					"workers":    predict.Something,
					"bins":       predict.Something,
					"level":      predict.Set{"0.80", "0.90", "0.95", "0.99"},
					"initial":    predict.Something,
					"return":     predict.Something,
					"monthly":    predict.Something,
					"volatility": predict.Something,
					"years":      predict.Something,
					"goal":       predict.Something,
					"n":          predict.Set{"1000", "10000", "100000", "1000000"},
					"currency":   predict.Set{"EUR", "USD", "GBP", "CHF", "JPY"},
				},
			},
			"config": {
				Flags: map[string]complete.Predictor{"example": predict.Nothing},
			},
			"topic":    {Args: predict.Set(topics)},
			"help":     {},
			"flags":    {},
			"commands": {},
		},
	}
}
