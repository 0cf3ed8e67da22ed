package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildResult_SuccessBuy(t *testing.T) {
	entry := asset(usdcMint, "w", -1_500_000, 6)
	exit := asset("MemeMint", "w", 2_000_000, 6)
	raw := RawTransaction{Signature: "sig1", Timestamp: 100}

	res := buildResult(raw, "w", 90, entry, exit, false, Metadata{Protocol: "raydium"})
	require.Equal(t, ResultSuccess, res.Type)
	require.Len(t, res.Swaps, 1)
	swap := res.Swaps[0]
	require.Equal(t, Buy, swap.Direction)
	require.Equal(t, "MemeMint", swap.BaseAsset.Mint)
	require.Equal(t, usdcMint, swap.QuoteAsset.Mint)
	require.Equal(t, "sig1", swap.Signature)
	require.Equal(t, 90, swap.Confidence)
}

func TestBuildResult_Split(t *testing.T) {
	entry := asset("MemeA", "w", -100, 6)
	exit := asset("MemeB", "w", 200, 6)
	raw := RawTransaction{Signature: "sig2"}

	res := buildResult(raw, "w", 70, entry, exit, true, Metadata{})
	require.Equal(t, ResultSplit, res.Type)
	require.Equal(t, "non_core_pair", res.Split.SplitReason)
	require.Equal(t, Sell, res.Split.SellRecord.Direction)
	require.Equal(t, "MemeA", res.Split.SellRecord.BaseAsset.Mint)
	require.Equal(t, Buy, res.Split.BuyRecord.Direction)
	require.Equal(t, "MemeB", res.Split.BuyRecord.BaseAsset.Mint)
}

func TestBuildResult_PanicsOnInvalidSigns(t *testing.T) {
	entry := asset(usdcMint, "w", 1, 6)
	exit := asset("MemeMint", "w", 2, 6)
	require.PanicsWithValue(t, msgInvalidEntryExitSign, func() {
		buildResult(RawTransaction{}, "w", 0, entry, exit, false, Metadata{})
	})
}
