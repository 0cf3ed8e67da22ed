package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDetectTransferOrCoreOnly_RejectsPureTransfer(t *testing.T) {
	entry := asset(NativeSOLMint, "w", -1, 9)
	entry.Mint = usdcMint // entry is core
	exit := asset(usdtMint, "w", 1, 6)
	meta := TransactionMeta{Instructions: []Instruction{{ProgramID: TokenProgramID, Name: "transfer"}}}

	det := detectTransferOrCoreOnly(entry, exit, meta)
	require.True(t, det.Reject)
	require.Equal(t, "pure_transfer", det.Reason)
}

func TestDetectTransferOrCoreOnly_RejectsCoreOnlySwap(t *testing.T) {
	entry := asset(usdcMint, "w", -1, 6)
	exit := asset(usdtMint, "w", 1, 6)
	meta := TransactionMeta{} // no transfer instructions at all

	det := detectTransferOrCoreOnly(entry, exit, meta)
	require.True(t, det.Reject)
	require.Equal(t, "core_only_swap", det.Reason)
}

func TestDetectTransferOrCoreOnly_AcceptsWhenNonCoreTokenInvolved(t *testing.T) {
	entry := asset(usdcMint, "w", -1, 6)
	exit := asset("MemeMint", "w", 1, 6)
	meta := TransactionMeta{}

	det := detectTransferOrCoreOnly(entry, exit, meta)
	require.False(t, det.Reject)
	require.True(t, det.HasNonCoreToken)
}

func TestDetectTransferOrCoreOnly_EmptyInstructionsIsNotATransfer(t *testing.T) {
	entry := asset(usdcMint, "w", -1, 6)
	exit := asset(usdtMint, "w", 1, 6)
	det := detectTransferOrCoreOnly(entry, exit, TransactionMeta{Instructions: nil})
	require.True(t, det.Reject)
	require.Equal(t, "core_only_swap", det.Reason)
}
