package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFilterDust_DropsAtOrBelowThreshold(t *testing.T) {
	in := []BalanceChange{
		token("a", "Mint6", 0, 1, 6),   // decimals<=6, threshold 1: dropped (not >1)
		token("b", "Mint9", 0, 10, 9),  // decimals>6, threshold 10: dropped (not >10)
		token("c", "Mint6", 0, 2, 6),   // kept
		token("d", "Mint9", 0, 11, 9),  // kept
	}
	out := filterDust(in)
	require.Len(t, out, 2)
	require.Equal(t, "c", out[0].Owner)
	require.Equal(t, "d", out[1].Owner)
}

func TestFilterDust_PreservesOrder(t *testing.T) {
	in := []BalanceChange{
		token("first", "M", 0, 100, 6),
		token("second", "M", 0, 200, 6),
	}
	out := filterDust(in)
	require.Equal(t, []string{"first", "second"}, []string{out[0].Owner, out[1].Owner})
}
