package core

import "math/big"

// normalizeSOLVariants groups every SOL-family
// BalanceChange by owner, collapsing each owner's algebraic sum onto one
// canonical-mint entry. Owners whose SOL-family deltas sum to zero get no
// SOL entry at all. Non-SOL entries pass through unchanged, in their
// original order; SOL entries are appended in first-seen-owner order.
func normalizeSOLVariants(changes []BalanceChange) []BalanceChange {
	out := make([]BalanceChange, 0, len(changes))
	sums := make(map[string]*big.Int)
	var owners []string

	for _, c := range changes {
		if !isSOLMint(c.Mint) {
			out = append(out, copyBalanceChange(c))
			continue
		}
		if _, seen := sums[c.Owner]; !seen {
			sums[c.Owner] = big.NewInt(0)
			owners = append(owners, c.Owner)
		}
		sums[c.Owner].Add(sums[c.Owner], c.Delta())
	}

	solScale := scaleFor(9)
	for _, owner := range owners {
		sum := sums[owner]
		if sum.Sign() == 0 {
			continue
		}
		out = append(out, BalanceChange{
			Mint:      NativeSOLMint,
			Owner:     owner,
			PreDelta:  big.NewInt(0),
			PostDelta: new(big.Int).Set(sum),
			Decimals:  9,
			Scale:     solScale,
		})
	}

	return out
}

func copyBalanceChange(c BalanceChange) BalanceChange {
	return BalanceChange{
		Mint:      c.Mint,
		Owner:     c.Owner,
		PreDelta:  new(big.Int).Set(c.PreDelta),
		PostDelta: new(big.Int).Set(c.PostDelta),
		Decimals:  c.Decimals,
		Scale:     new(big.Int).Set(c.Scale),
	}
}
