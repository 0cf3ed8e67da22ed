package core

// buildResult implements the final stage of the pipeline: it
// re-asserts the entry/exit sign invariant one last time, then emits either
// a single ParsedSwap or, when splitRequired, a SplitSwapPair of two
// independent legs sharing signature, timestamp and swapper.
func buildResult(raw RawTransaction, swapper string, confidence int, entryAsset, exitAsset AssetDelta, splitRequired bool, meta Metadata) Result {
	if entryAsset.Delta.Sign() >= 0 || exitAsset.Delta.Sign() <= 0 {
		panic(msgInvalidEntryExitSign)
	}

	if splitRequired {
		return split(buildSplitPair(raw, swapper, confidence, entryAsset, exitAsset, meta))
	}

	direction := classifyDirection(entryAsset, exitAsset)
	return success(buildSwap(raw, swapper, confidence, direction, entryAsset, exitAsset, meta))
}

func buildSwap(raw RawTransaction, swapper string, confidence int, direction Direction, entryAsset, exitAsset AssetDelta, meta Metadata) ParsedSwap {
	var base, quote AssetDelta
	if direction == Buy {
		base, quote = exitAsset, entryAsset
	} else {
		base, quote = entryAsset, exitAsset
	}

	return ParsedSwap{
		Signature:  raw.Signature,
		Timestamp:  raw.Timestamp,
		Swapper:    swapper,
		Protocol:   meta.Protocol,
		Direction:  direction,
		BaseAsset:  AssetRef{Mint: base.Mint, Decimals: base.Decimals},
		QuoteAsset: AssetRef{Mint: quote.Mint, Decimals: quote.Decimals},
		Amounts:    buildAmounts(direction, entryAsset, exitAsset),
		Confidence: confidence,
		Metadata:   meta,
	}
}

// buildSplitPair represents a non-core-to-non-core swap as two independent
// legs: giving up entryAsset, and receiving exitAsset. Neither leg has a
// real core-denominated quote asset, so QuoteAsset is left zero-valued, but
// each record still carries its direction's full amount
// shape — the missing quote leg renders as an exact zero at the entry/exit
// asset's own decimals rather than being left absent.
func buildSplitPair(raw RawTransaction, swapper string, confidence int, entryAsset, exitAsset AssetDelta, meta Metadata) SplitSwapPair {
	zeroEntry := render(zeroAt(entryAsset.Decimals), entryAsset.Decimals)
	zeroExit := render(zeroAt(exitAsset.Decimals), exitAsset.Decimals)

	sellRecord := ParsedSwap{
		Signature: raw.Signature,
		Timestamp: raw.Timestamp,
		Swapper:   swapper,
		Protocol:  meta.Protocol,
		Direction: Sell,
		BaseAsset: AssetRef{Mint: entryAsset.Mint, Decimals: entryAsset.Decimals},
		Amounts: Amounts{
			BaseAmount:        render(entryAsset.AbsDelta(), entryAsset.Decimals),
			NetWalletReceived: zeroEntry,
			SwapOutputAmount:  zeroEntry,
		},
		Confidence: confidence,
		Metadata:   meta,
	}
	buyRecord := ParsedSwap{
		Signature: raw.Signature,
		Timestamp: raw.Timestamp,
		Swapper:   swapper,
		Protocol:  meta.Protocol,
		Direction: Buy,
		BaseAsset: AssetRef{Mint: exitAsset.Mint, Decimals: exitAsset.Decimals},
		Amounts: Amounts{
			BaseAmount:      render(exitAsset.AbsDelta(), exitAsset.Decimals),
			TotalWalletCost: zeroExit,
			SwapInputAmount: zeroExit,
		},
		Confidence: confidence,
		Metadata:   meta,
	}

	return SplitSwapPair{SellRecord: sellRecord, BuyRecord: buyRecord, SplitReason: "non_core_pair"}
}
