package core

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func testParser() *Parser {
	log := logrus.New()
	log.SetLevel(logrus.FatalLevel)
	return NewParser(log)
}

func TestParseTransaction_Scenario1_SimpleBuy(t *testing.T) {
	raw := RawTransaction{
		Signature: "sig-buy",
		Timestamp: 1000,
		BalanceChanges: []BalanceChange{
			sol("swapperS", 1_000_000_000, 0),
			token("swapperS", "T_nonCore", 0, 2_000_000, 6),
		},
		TransactionMeta: TransactionMeta{FeePayer: "swapperS"},
	}

	res := testParser().ParseTransaction(raw)
	require.Equal(t, ResultSuccess, res.Type)
	swap := res.Swaps[0]
	require.Equal(t, Buy, swap.Direction)
	require.Equal(t, "2.000000", swap.Amounts.BaseAmount)
	require.Equal(t, "1.000000000", swap.Amounts.TotalWalletCost)
}

func TestParseTransaction_Scenario2_SplitSwap(t *testing.T) {
	raw := RawTransaction{
		Signature: "sig-split",
		Timestamp: 2000,
		BalanceChanges: []BalanceChange{
			token("swapperS", "T_A_nonCore", 2_000_000, 0, 6),
			token("swapperS", "T_B_nonCore", 0, 3_000_000, 6),
		},
		TransactionMeta: TransactionMeta{FeePayer: "swapperS"},
	}

	res := testParser().ParseTransaction(raw)
	require.Equal(t, ResultSplit, res.Type)
	require.Equal(t, "non_core_pair", res.Split.SplitReason)
	require.Equal(t, res.Split.SellRecord.Signature, res.Split.BuyRecord.Signature)
	require.Equal(t, res.Split.SellRecord.Timestamp, res.Split.BuyRecord.Timestamp)
	require.Equal(t, res.Split.SellRecord.Swapper, res.Split.BuyRecord.Swapper)
}

func TestParseTransaction_Scenario3_CoreOnlySwap(t *testing.T) {
	raw := RawTransaction{
		Signature: "sig-core-only",
		BalanceChanges: []BalanceChange{
			sol("swapperS", 1_000_000_000, 0),
			token("swapperS", usdcMint, 0, 2_000_000, 6),
		},
		TransactionMeta: TransactionMeta{FeePayer: "swapperS"},
	}

	res := testParser().ParseTransaction(raw)
	require.Equal(t, ResultErase, res.Type)
	require.Equal(t, "core_only_swap", res.Error.Reason)
}

func TestParseTransaction_Scenario4_PureTransfer(t *testing.T) {
	raw := RawTransaction{
		Signature: "sig-pure-transfer",
		BalanceChanges: []BalanceChange{
			sol("swapperS", 1_000_000_000, 0),
			token("swapperS", usdcMint, 0, 2_000_000, 6),
		},
		TransactionMeta: TransactionMeta{
			FeePayer:     "swapperS",
			Instructions: []Instruction{{ProgramID: TokenProgramID, Name: "transfer"}},
		},
	}

	res := testParser().ParseTransaction(raw)
	require.Equal(t, ResultErase, res.Type)
	require.Equal(t, "pure_transfer", res.Error.Reason)
}

func TestParseTransaction_Scenario5_DustOnly(t *testing.T) {
	raw := RawTransaction{
		Signature: "sig-dust",
		BalanceChanges: []BalanceChange{
			token("swapperS", "T", 1, 0, 6),
			token("swapperS", "T2", 0, 1, 6),
		},
		TransactionMeta: TransactionMeta{FeePayer: "swapperS"},
	}

	res := testParser().ParseTransaction(raw)
	require.Equal(t, ResultErase, res.Type)
	require.Equal(t, "invalid_asset_count", res.Error.Reason)
}

func TestParseTransaction_Scenario6_HybridRecovery(t *testing.T) {
	raw := RawTransaction{
		Signature: "sig-hybrid",
		BalanceChanges: []BalanceChange{
			token("feepayer", "T_nonCore", 0, 500, 6),
			sol("lp-owner", 0, 20_000_000),
		},
		TransactionMeta: TransactionMeta{FeePayer: "feepayer"},
	}

	res := testParser().ParseTransaction(raw)
	require.Equal(t, ResultSuccess, res.Type)
	require.Equal(t, "feepayer", res.Swaps[0].Swapper)
}
