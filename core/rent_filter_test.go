package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFilterRentRefunds_DropsSmallPositiveWhenOtherSignalPresent(t *testing.T) {
	in := []BalanceChange{
		sol("alice", 0, 5_000_000), // below threshold
		token("alice", "MintX", 0, 100, 6),
	}
	out, filtered := filterRentRefunds(in)
	require.True(t, filtered)
	require.Len(t, out, 1)
	require.Equal(t, "MintX", out[0].Mint)
}

func TestFilterRentRefunds_KeepsSmallPositiveWhenNoOtherSignal(t *testing.T) {
	in := []BalanceChange{sol("alice", 0, 5_000_000)}
	out, filtered := filterRentRefunds(in)
	require.False(t, filtered)
	require.Len(t, out, 1)
}

func TestFilterRentRefunds_NeverDropsNegativeDelta(t *testing.T) {
	in := []BalanceChange{
		sol("alice", 5_000_000, 0),
		token("alice", "MintX", 0, 100, 6),
	}
	out, filtered := filterRentRefunds(in)
	require.False(t, filtered)
	require.Len(t, out, 2)
}

func TestFilterRentRefunds_KeepsPositiveAtOrAboveThreshold(t *testing.T) {
	in := []BalanceChange{
		sol("alice", 0, RENT_THRESHOLD),
		token("alice", "MintX", 0, 100, 6),
	}
	out, filtered := filterRentRefunds(in)
	require.False(t, filtered)
	require.Len(t, out, 2)
}
