package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateSwapperHasDelta_EmptyRejects(t *testing.T) {
	res := validateSwapperHasDelta(nil)
	require.False(t, res.Valid)
	require.Equal(t, "swapper_no_delta", res.Reason)
}

func TestValidateSwapperHasDelta_NonEmptyValid(t *testing.T) {
	res := validateSwapperHasDelta([]AssetDelta{asset("A", "w", -1, 6)})
	require.True(t, res.Valid)
}
