package core

import "math/big"

var rentThreshold = big.NewInt(RENT_THRESHOLD)

// filterRentRefunds drops rent refunds. A positive SOL delta strictly
// below RENT_THRESHOLD is dropped only if the batch contains at least one
// non-SOL, non-zero delta anywhere — the check is global to the batch, not
// per-owner. Negative SOL deltas are never dropped.
func filterRentRefunds(changes []BalanceChange) (out []BalanceChange, rentRefundsFiltered bool) {
	hasOtherSignal := false
	for _, c := range changes {
		if isSOLMint(c.Mint) {
			continue
		}
		if c.Delta().Sign() != 0 {
			hasOtherSignal = true
			break
		}
	}

	out = make([]BalanceChange, 0, len(changes))
	for _, c := range changes {
		if !isSOLMint(c.Mint) {
			out = append(out, c)
			continue
		}
		delta := c.Delta()
		if delta.Sign() < 0 {
			out = append(out, c)
			continue
		}
		if delta.Sign() > 0 && delta.Cmp(rentThreshold) < 0 && hasOtherSignal {
			rentRefundsFiltered = true
			continue
		}
		out = append(out, c)
	}
	return out, rentRefundsFiltered
}
