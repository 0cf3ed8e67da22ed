package core

import "math/big"

// hybridRecoveryConfidence is the confidence assigned when the swapper is
// recovered via the hybrid path rather than one of the three ordinary
// tiers. Confidence is treated as an opaque pass-through value with no
// documented downstream consumer. The value sits below tier 1 (fee_payer,
// 95) even though the recovered swapper is always the fee payer, and above
// tier 3 (largest_delta, 70).
const hybridRecoveryConfidence = 75

// recoverHybridSwap implements the hybrid recovery rule promoted to a named
// stage applied after the economic-delta validator and before core/non-core
// detection. It applies only when
// ordinary swapper identification or asset collection would otherwise
// erase: if the batch contains exactly one non-core delta owned by the fee
// payer and at least one core delta owned by someone else, it promotes that
// single non-core delta plus a synthetic counterpart derived from the
// opposing core delta into a two-asset set, with the fee payer as swapper.
//
// This is the sole path by which a transaction with only one swapper-owned
// non-core delta can succeed.
func recoverHybridSwap(changes []BalanceChange, meta TransactionMeta) (entry, exit AssetDelta, swapper string, ok bool) {
	var feePayerNonCore []BalanceChange
	var otherCore []BalanceChange

	for _, c := range changes {
		if c.Delta().Sign() == 0 {
			continue
		}
		switch {
		case c.Owner == meta.FeePayer && !isCoreToken(c.Mint):
			feePayerNonCore = append(feePayerNonCore, c)
		case c.Owner != meta.FeePayer && isCoreToken(c.Mint):
			otherCore = append(otherCore, c)
		}
	}

	if len(feePayerNonCore) != 1 || len(otherCore) == 0 {
		return AssetDelta{}, AssetDelta{}, "", false
	}

	nonCore := feePayerNonCore[0]
	core := otherCore[0]

	nonCoreAsset := AssetDelta{
		Mint:     nonCore.Mint,
		Owner:    meta.FeePayer,
		Decimals: nonCore.Decimals,
		Delta:    nonCore.Delta(),
		Scale:    nonCore.Scale,
	}

	// Synthetic counterpart: same magnitude/decimals as the opposing core
	// delta, attributed to the fee payer, signed opposite to the non-core
	// delta so the pair satisfies the entry-negative/exit-positive
	// invariant downstream stages require.
	syntheticDelta := new(big.Int).Abs(core.Delta())
	if nonCoreAsset.Delta.Sign() > 0 {
		syntheticDelta.Neg(syntheticDelta)
	}
	syntheticAsset := AssetDelta{
		Mint:     core.Mint,
		Owner:    meta.FeePayer,
		Decimals: core.Decimals,
		Delta:    syntheticDelta,
		Scale:    core.Scale,
	}

	nonCoreAsset = roleBySign(nonCoreAsset)
	syntheticAsset = roleBySign(syntheticAsset)

	if nonCoreAsset.Role == RoleEntry {
		return nonCoreAsset, syntheticAsset, meta.FeePayer, true
	}
	return syntheticAsset, nonCoreAsset, meta.FeePayer, true
}
