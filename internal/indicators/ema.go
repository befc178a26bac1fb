package indicators

// EMASeries computes an exponential moving average series seeded with the SMA
// of the first period values, one output per input from index period-1 on.
// Returns nil when the input is shorter than the period.
func EMASeries(data []float64, period int) []float64 {
	if len(data) < period || period <= 0 {
		return nil
	}

	k := 2.0 / (float64(period) + 1.0)
	out := make([]float64, 0, len(data)-period+1)

	prev := mean(data[:period])
	out = append(out, prev)

	for i := period; i < len(data); i++ {
		prev = data[i]*k + prev*(1-k)
		out = append(out, prev)
	}
	return out
}
