package core

// collectAssetDeltas picks the two active asset deltas. It restricts to BalanceChanges
// owned by swapper, converts each to an AssetDelta, and reduces the result
// to exactly two "active" assets (erase if fewer than two remain).
//
// When more than two assets remain, the two survivors are the largest
// normalized-magnitude negative delta and the largest normalized-magnitude
// positive delta. If one of those two signs is entirely absent among the
// swapper's assets, the two largest-magnitude assets overall are surfaced
// instead, deliberately leaving both on the same side of zero so the
// downstream sign validator can reject with the correct reason
// ("no_negative_deltas" / "no_positive_deltas") rather than this stage
// inventing a counterpart that was never actually observed.
func collectAssetDeltas(changes []BalanceChange, swapper string) (entry, exit AssetDelta, collapsed bool, erased *EraseError) {
	var owned []AssetDelta
	for _, c := range changes {
		if c.Owner != swapper {
			continue
		}
		owned = append(owned, AssetDelta{
			Mint:     c.Mint,
			Owner:    c.Owner,
			Decimals: c.Decimals,
			Delta:    c.Delta(),
			Scale:    c.Scale,
			Role:     RoleIntermediate,
		})
	}

	if len(owned) < 2 {
		return AssetDelta{}, AssetDelta{}, false, &EraseError{Reason: "invalid_asset_count"}
	}

	if len(owned) == 2 {
		return roleBySign(owned[0]), roleBySign(owned[1]), false, nil
	}

	negWinner, hasNeg := largestByMagnitude(owned, func(a AssetDelta) bool { return a.Delta.Sign() < 0 })
	posWinner, hasPos := largestByMagnitude(owned, func(a AssetDelta) bool { return a.Delta.Sign() > 0 })

	switch {
	case hasNeg && hasPos:
		return roleBySign(negWinner), roleBySign(posWinner), true, nil
	default:
		first, second := topTwoByMagnitude(owned)
		return roleBySign(first), roleBySign(second), true, nil
	}
}

func roleBySign(a AssetDelta) AssetDelta {
	if a.Delta.Sign() < 0 {
		a.Role = RoleEntry
	} else {
		a.Role = RoleExit
	}
	return a
}

// largestByMagnitude returns the element matching pred with the largest
// normalized magnitude, ties resolving to the first-encountered.
func largestByMagnitude(owned []AssetDelta, pred func(AssetDelta) bool) (AssetDelta, bool) {
	var winner AssetDelta
	found := false
	for _, a := range owned {
		if !pred(a) {
			continue
		}
		if !found {
			winner, found = a, true
			continue
		}
		mag := normalizedMagnitude(a.Delta, a.Decimals)
		if mag.Cmp(normalizedMagnitude(winner.Delta, winner.Decimals)) > 0 {
			winner = a
		}
	}
	return winner, found
}

// topTwoByMagnitude returns the two largest-normalized-magnitude assets,
// first-encountered order on ties.
func topTwoByMagnitude(owned []AssetDelta) (first, second AssetDelta) {
	firstIdx, secondIdx := -1, -1
	for i, a := range owned {
		mag := normalizedMagnitude(a.Delta, a.Decimals)
		switch {
		case firstIdx == -1:
			firstIdx = i
		case mag.Cmp(normalizedMagnitude(owned[firstIdx].Delta, owned[firstIdx].Decimals)) > 0:
			secondIdx = firstIdx
			firstIdx = i
		case secondIdx == -1:
			secondIdx = i
		case mag.Cmp(normalizedMagnitude(owned[secondIdx].Delta, owned[secondIdx].Decimals)) > 0:
			secondIdx = i
		}
	}
	if secondIdx == -1 {
		secondIdx = firstIdx
	}
	return owned[firstIdx], owned[secondIdx]
}
