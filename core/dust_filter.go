package core

// filterDust keeps a change iff |delta| strictly
// exceeds the per-decimals threshold. Input is never mutated; order is
// preserved.
func filterDust(changes []BalanceChange) []BalanceChange {
	out := make([]BalanceChange, 0, len(changes))
	for _, c := range changes {
		threshold := dustThreshold(c.Decimals)
		if c.AbsDelta().Cmp(threshold) > 0 {
			out = append(out, c)
		}
	}
	return out
}
