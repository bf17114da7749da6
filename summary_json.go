package forecast

import (
	"math"
	"strconv"
)

// MarshalJSON writes the summary with a stable field order, the headline
// figures first. JSON has no infinity, non-finite values are written as the
// strings "+Inf", "-Inf" and "NaN".
func (s *Summary) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("trials", s.Trials)
	w.Append("goal", number(s.Goal))
	w.Append("median", number(s.Median))
	w.Append("goalProbability", s.GoalProbability)
	w.Append("confidenceLevel", s.ConfidenceLevel)
	w.Append("confidenceInterval", []any{number(s.ConfidenceInterval.Lower), number(s.ConfidenceInterval.Upper)})

	var st jsonObjectWriter
	st.Append("mean", number(s.Stats.Mean))
	st.Append("stdDev", number(s.Stats.StdDev))
	st.Append("min", number(s.Stats.Min))
	st.Append("max", number(s.Stats.Max))
	w.Append("stats", &st)

	w.Optional("seed", s.Seed)
	if len(s.Distribution) > 0 {
		buckets := make([]*jsonObjectWriter, len(s.Distribution))
		for i, b := range s.Distribution {
			buckets[i] = new(jsonObjectWriter)
			buckets[i].Append("from", number(b.From)).Append("to", number(b.To)).Append("count", b.Count)
		}
		w.Append("distribution", buckets)
	}
	return w.MarshalJSON()
}

// number returns v, or its text when JSON cannot represent it.
func number(v float64) any {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return v
}
