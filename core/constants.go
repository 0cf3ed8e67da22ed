package core

import "math/big"

// NativeSOLMint is the canonical SOL mint every SOL-family balance change
// normalizes onto.
const NativeSOLMint = "So11111111111111111111111111111111111111112"

// TokenProgramID is the single program-id string the transfer/core detector
// recognizes as a transfer source.
const TokenProgramID = "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA"

// RENT_THRESHOLD is the lamport threshold below which a positive SOL delta
// may be dropped as a rent refund.
const RENT_THRESHOLD = 10_000_000

// usdcMint and usdtMint are the two stable mints CORE_TOKENS always
// includes alongside native SOL.
const (
	usdcMint = "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v"
	usdtMint = "Es9vMFrzaCERmJfrF4H2FYD4KCoNkY11McCe8BenwNYB"
)

// SOL_EQUIVALENTS is the set of mints the normalizer treats as SOL: native
// SOL plus wrapped-SOL equivalents. In practice wrapped SOL shares native
// SOL's mint address on Solana, but the table is kept open for chains/forks
// that mint a distinct wrapper.
var SOL_EQUIVALENTS = map[string]struct{}{
	NativeSOLMint: {},
}

// CORE_TOKENS is the fixed set of core-token mints: native SOL, USDC, USDT.
var CORE_TOKENS = map[string]struct{}{
	NativeSOLMint: {},
	usdcMint:      {},
	usdtMint:      {},
}

// SYSTEM_ACCOUNTS is the set of known system/router/program owners excluded
// from the candidate sets of all three tiers of the swapper identifier.
// Addresses below are well-known Solana system/program accounts:
// infrastructure, not a wallet executing a trade. The tier-3 tie fallback
// returns the fee payer without consulting this set, so a system-account
// fee payer with a non-zero delta is returned there.
var SYSTEM_ACCOUNTS = map[string]struct{}{
	"11111111111111111111111111111111":            {}, // System Program
	TokenProgramID:                                 {}, // SPL Token Program
	"ATokenGPvbdGVxr1b2hvZbsiqW5xWH25efTNsLJA8knL": {}, // Associated Token Account Program
	"ComputeBudget111111111111111111111111111111": {}, // Compute Budget Program
	"SysvarRent111111111111111111111111111111111": {}, // Rent sysvar
	"SysvarC1ock11111111111111111111111111111111": {}, // Clock sysvar
}

func isSOLMint(mint string) bool {
	_, ok := SOL_EQUIVALENTS[mint]
	return ok
}

func isCoreToken(mint string) bool {
	_, ok := CORE_TOKENS[mint]
	return ok
}

func isSystemAccount(owner string) bool {
	_, ok := SYSTEM_ACCOUNTS[owner]
	return ok
}

// isSystemLike additionally excludes owners whose name ends in "vault" or
// "pool" from tier 3's candidate set.
func isSystemLike(owner string) bool {
	if isSystemAccount(owner) {
		return true
	}
	return hasSuffixFold(owner, "vault") || hasSuffixFold(owner, "pool")
}

func hasSuffixFold(s, suffix string) bool {
	if len(s) < len(suffix) {
		return false
	}
	tail := s[len(s)-len(suffix):]
	for i := 0; i < len(suffix); i++ {
		a, b := tail[i], suffix[i]
		if 'A' <= a && a <= 'Z' {
			a += 'a' - 'A'
		}
		if 'A' <= b && b <= 'Z' {
			b += 'a' - 'A'
		}
		if a != b {
			return false
		}
	}
	return true
}

func scaleFor(decimals int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)
}

// dustThreshold returns 1 for decimals <= 6, 10 otherwise.
func dustThreshold(decimals int) *big.Int {
	if decimals <= 6 {
		return big.NewInt(1)
	}
	return big.NewInt(10)
}

// maxDecimals is the upper bound on BalanceChange.Decimals.
const maxDecimals = 18

// normalizedMagnitude scales |delta| up to a common 10^maxDecimals
// reference so magnitudes at different decimals compare exactly, with no
// floating point. For any two candidates a, b this is equivalent to the
// pairwise cross-multiplication rule
// (|a|*scale(b) vs |b|*scale(a)) because 10^maxDecimals is a common
// multiple of every scale in range, but it additionally gives a single
// total order across more than two candidates, which the swapper
// identifier's tier-3 ranking needs.
func normalizedMagnitude(delta *big.Int, decimals int) *big.Int {
	abs := new(big.Int).Abs(delta)
	factor := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(maxDecimals-decimals)), nil)
	return abs.Mul(abs, factor)
}
