package core

import "math/big"

// identifySwapper implements the three-tier swapper-identification heuristic.
func identifySwapper(changes []BalanceChange, meta TransactionMeta) SwapperResult {
	nonZeroByOwner := make(map[string]bool)
	var ownerOrder []string
	for _, c := range changes {
		if c.Delta().Sign() == 0 {
			continue
		}
		if !nonZeroByOwner[c.Owner] {
			ownerOrder = append(ownerOrder, c.Owner)
		}
		nonZeroByOwner[c.Owner] = true
	}

	if len(ownerOrder) == 0 {
		return swapperErase("no_economic_delta")
	}

	// Tier 1: fee payer.
	if !isSystemAccount(meta.FeePayer) && nonZeroByOwner[meta.FeePayer] {
		return swapperSuccess(meta.FeePayer, 95, MethodFeePayer)
	}

	// Tier 2: exactly one non-system signer with a non-zero delta.
	var tier2Candidates []string
	seenSigner := make(map[string]bool)
	for _, signer := range meta.Signers {
		if isSystemAccount(signer) || seenSigner[signer] {
			continue
		}
		seenSigner[signer] = true
		if nonZeroByOwner[signer] {
			tier2Candidates = append(tier2Candidates, signer)
		}
	}
	if len(tier2Candidates) == 1 {
		return swapperSuccess(tier2Candidates[0], 90, MethodTier2)
	}

	// Tier 3: largest normalized absolute delta among non-system, non-vault,
	// non-pool owners.
	totals := make(map[string]*big.Int)
	var candidateOrder []string
	for _, c := range changes {
		if isSystemLike(c.Owner) {
			continue
		}
		delta := c.Delta()
		if delta.Sign() == 0 {
			continue
		}
		if _, ok := totals[c.Owner]; !ok {
			totals[c.Owner] = big.NewInt(0)
			candidateOrder = append(candidateOrder, c.Owner)
		}
		totals[c.Owner].Add(totals[c.Owner], normalizedMagnitude(delta, c.Decimals))
	}

	var winner string
	var winnerTotal *big.Int
	tied := false
	for _, owner := range candidateOrder {
		total := totals[owner]
		switch {
		case winnerTotal == nil:
			winner, winnerTotal, tied = owner, total, false
		case total.Cmp(winnerTotal) > 0:
			winner, winnerTotal, tied = owner, total, false
		case total.Cmp(winnerTotal) == 0:
			tied = true
		}
	}

	if winnerTotal == nil || tied {
		if nonZeroByOwner[meta.FeePayer] {
			return swapperSuccess(meta.FeePayer, 95, MethodFeePayer)
		}
		return swapperErase("no_economic_delta")
	}

	return swapperSuccess(winner, 70, MethodLargestDelta)
}
