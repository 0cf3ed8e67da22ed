package core

// classifyDirection decides Buy vs Sell. entryAsset/exitAsset have already
// been assigned by detectSplitRequired; this stage is never reached when
// splitRequired is true (both assets non-core is handled as a split record
// by the output stage instead).
//
// Core-to-core swaps (both entry and exit are core tokens) are classified
// SELL by convention: the wallet is treated as disposing of its base asset
// for a core quote, matching how the collector's entry/exit roles are named
// everywhere else.
func classifyDirection(entryAsset, exitAsset AssetDelta) Direction {
	if entryAsset.Delta.Sign() >= 0 || exitAsset.Delta.Sign() <= 0 {
		panic(msgInvalidEntryExitSign)
	}

	entryCore, exitCore := isCoreToken(entryAsset.Mint), isCoreToken(exitAsset.Mint)

	switch {
	case !entryCore && !exitCore:
		panic(msgNonCoreToNonCore)
	case entryCore && !exitCore:
		// Spent a core asset, received a non-core asset.
		return Buy
	case !entryCore && exitCore:
		// Gave up a non-core asset, received a core asset.
		return Sell
	default:
		// Both core: SELL by convention.
		return Sell
	}
}
