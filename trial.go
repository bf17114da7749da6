package forecast

// RunTrial simulates one path of cfg.Years yearly returns drawn from s, and
// returns the portfolio value at the end of the horizon.
//
// Each year the running value first grows by the sampled return, then receives
// twelve monthly contributions at once: contributions do not grow during the
// year they are made.
func RunTrial(cfg Config, s *ReturnSampler) (float64, error) {
	value := cfg.InitialInvestment
	for range cfg.Years {
		r, err := s.Sample(cfg.ExpectedYearlyReturn, cfg.Volatility)
		if err != nil {
			return 0, err
		}
		value *= 1 + r
		value += cfg.MonthlyContributions * 12
	}
	return value, nil
}
