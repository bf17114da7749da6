// Package forecast projects the future value of an investment portfolio with
// a Monte Carlo simulation.
//
// The engine has three layers:
//   - ReturnSampler draws a random yearly return from a normal distribution
//     with the expected return as mean and the volatility as standard deviation.
//   - RunTrial compounds one path of sampled returns over the horizon, adding
//     the yearly contributions after each year's growth.
//   - Run repeats independent trials, possibly on several workers, and
//     Summarize reduces their outcomes to a median, the probability of reaching
//     a goal and a confidence interval.
//
// Reports are rendered by the renderer package, and the fcs command line tool
// wires everything with a configuration file.
package forecast
