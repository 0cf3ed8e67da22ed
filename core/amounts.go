package core

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// render formats an integer token amount at the given decimals as an exact
// decimal string with no rounding. The value is already an
// integer multiple of 10^-decimals, so StringFixed never actually rounds;
// it only fixes the digit count.
func render(amount *big.Int, decimals int) string {
	return decimal.NewFromBigInt(amount, -int32(decimals)).StringFixed(int32(decimals))
}

// zeroAt returns the zero magnitude used to render a split record's absent
// quote leg (the zero quote counterpart) at a given decimals.
func zeroAt(decimals int) *big.Int {
	return big.NewInt(0)
}

// buildAmounts fills in the per-direction amount fields: BUY records carry baseAmount,
// totalWalletCost and swapInputAmount; SELL records carry baseAmount,
// netWalletReceived and swapOutputAmount. swapInputAmount and
// totalWalletCost are kept as textually distinct fields even though they
// are computed from the same entry-asset magnitude, since nothing in the
// pipeline has yet introduced a case where they diverge.
func buildAmounts(direction Direction, entryAsset, exitAsset AssetDelta) Amounts {
	switch direction {
	case Buy:
		cost := render(entryAsset.AbsDelta(), entryAsset.Decimals)
		base := render(exitAsset.AbsDelta(), exitAsset.Decimals)
		return Amounts{
			BaseAmount:      base,
			TotalWalletCost: cost,
			SwapInputAmount: cost,
		}
	default: // Sell
		received := render(exitAsset.AbsDelta(), exitAsset.Decimals)
		base := render(entryAsset.AbsDelta(), entryAsset.Decimals)
		return Amounts{
			BaseAmount:        base,
			NetWalletReceived: received,
			SwapOutputAmount:  received,
		}
	}
}
