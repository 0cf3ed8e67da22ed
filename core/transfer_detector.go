package core

// TransferDetection is the result of the transfer/core-only detector.
type TransferDetection struct {
	Reject          bool
	Reason          string // "pure_transfer" or "core_only_swap", set only when Reject
	HasNonCoreToken bool
}

// detectTransferOrCoreOnly rejects two shapes that survive the earlier
// stages but are not swaps: a same-program token transfer with no non-core
// asset involved ("pure_transfer"), and a swap entirely among core/stable
// assets with no transfer instructions backing it ("core_only_swap").
//
// isTransfer requires at least one instruction and every instruction in
// meta.Instructions to target the SPL token program's transfer or
// transferChecked entrypoints; an empty instruction list is not a transfer.
func detectTransferOrCoreOnly(entry, exit AssetDelta, meta TransactionMeta) TransferDetection {
	hasNonCoreToken := !isCoreToken(entry.Mint) || !isCoreToken(exit.Mint)

	isTransfer := len(meta.Instructions) > 0
	for _, ix := range meta.Instructions {
		if ix.ProgramID != TokenProgramID || (ix.Name != "transfer" && ix.Name != "transferChecked") {
			isTransfer = false
			break
		}
	}

	switch {
	case !hasNonCoreToken && isTransfer:
		return TransferDetection{Reject: true, Reason: "pure_transfer", HasNonCoreToken: hasNonCoreToken}
	case !hasNonCoreToken && !isTransfer:
		return TransferDetection{Reject: true, Reason: "core_only_swap", HasNonCoreToken: hasNonCoreToken}
	default:
		return TransferDetection{Reject: false, HasNonCoreToken: hasNonCoreToken}
	}
}
