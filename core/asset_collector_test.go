package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollectAssetDeltas_ErasesBelowTwoOwnedAssets(t *testing.T) {
	in := []BalanceChange{token("swapper", "MintX", 0, 100, 6)}
	_, _, _, erased := collectAssetDeltas(in, "swapper")
	require.NotNil(t, erased)
	require.Equal(t, "invalid_asset_count", erased.Reason)
}

func TestCollectAssetDeltas_ExactlyTwoAssignsRolesBySign(t *testing.T) {
	in := []BalanceChange{
		token("swapper", "MintX", 1000, 0, 6),
		token("swapper", "MintY", 0, 500, 6),
		token("other", "MintZ", 0, 1, 6),
	}
	entry, exit, collapsed, erased := collectAssetDeltas(in, "swapper")
	require.Nil(t, erased)
	require.False(t, collapsed)
	require.Equal(t, "MintX", entry.Mint)
	require.Equal(t, RoleEntry, entry.Role)
	require.Equal(t, "MintY", exit.Mint)
	require.Equal(t, RoleExit, exit.Role)
}

func TestCollectAssetDeltas_MoreThanTwoCollapsesToLargestEachSide(t *testing.T) {
	in := []BalanceChange{
		token("swapper", "MintA", 1000, 0, 6), // -1000
		token("swapper", "MintB", 100, 0, 6),  // -100
		token("swapper", "MintC", 0, 2000, 6), // +2000
		token("swapper", "MintD", 0, 50, 6),   // +50
	}
	entry, exit, collapsed, erased := collectAssetDeltas(in, "swapper")
	require.Nil(t, erased)
	require.True(t, collapsed)
	require.Equal(t, "MintA", entry.Mint)
	require.Equal(t, "MintC", exit.Mint)
}

func TestCollectAssetDeltas_MoreThanTwoAllSameSignSurfacesTopTwo(t *testing.T) {
	in := []BalanceChange{
		token("swapper", "MintA", 1000, 0, 6), // -1000
		token("swapper", "MintB", 100, 0, 6),  // -100
		token("swapper", "MintC", 10, 0, 6),   // -10
	}
	entry, exit, collapsed, erased := collectAssetDeltas(in, "swapper")
	require.Nil(t, erased)
	require.True(t, collapsed)
	require.Equal(t, "MintA", entry.Mint)
	require.Equal(t, "MintB", exit.Mint)
	require.Negative(t, entry.Delta.Sign())
	require.Negative(t, exit.Delta.Sign())
}
