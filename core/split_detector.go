package core

// detectSplitRequired decides whether the two active assets require a split
// result. It takes the two active assets
// surviving sign validation, assigns entry/exit by sign, and reports
// whether a split swap record is required (true iff neither asset is a
// core token).
//
// Both hard invariants here are supposed to already be guaranteed by the
// collector and sign validator; violating them here means an earlier stage
// let something through it shouldn't have, so this panics rather than
// returning an error.
func detectSplitRequired(active []AssetDelta) (entryAsset, exitAsset AssetDelta, splitRequired bool) {
	if len(active) != 2 {
		panic(msgSplitDetectorAssetCount)
	}

	a, b := active[0], active[1]
	switch {
	case a.Delta.Sign() < 0 && b.Delta.Sign() > 0:
		entryAsset, exitAsset = a, b
	case b.Delta.Sign() < 0 && a.Delta.Sign() > 0:
		entryAsset, exitAsset = b, a
	default:
		panic(msgSplitDetectorSignMismatch)
	}

	splitRequired = !isCoreToken(entryAsset.Mint) && !isCoreToken(exitAsset.Mint)
	return entryAsset, exitAsset, splitRequired
}
