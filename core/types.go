// Package core implements the deterministic, balance-truth swap parser:
// nine pure pipeline stages plus an orchestrator that turns a raw on-chain
// transaction's balance deltas into a canonical swap record, a split-swap
// pair, or a typed rejection.
package core

import "math/big"

// RawTransaction is the untrusted input to ParseTransaction. The parser
// never interprets Signature or Timestamp beyond passing them through.
type RawTransaction struct {
	Signature       string
	Timestamp       int64
	BalanceChanges  []BalanceChange
	TransactionMeta TransactionMeta
	Protocol        string
}

// BalanceChange is one owner's observed pre/post balance for one mint.
// The effective delta is PostDelta - PreDelta.
type BalanceChange struct {
	Mint      string
	Owner     string
	PreDelta  *big.Int
	PostDelta *big.Int
	Decimals  int
	Scale     *big.Int // 10^Decimals, carried to avoid recomputation
}

// Delta returns the effective balance change (PostDelta - PreDelta).
func (b BalanceChange) Delta() *big.Int {
	return new(big.Int).Sub(b.PostDelta, b.PreDelta)
}

// AbsDelta returns |PostDelta - PreDelta|.
func (b BalanceChange) AbsDelta() *big.Int {
	return new(big.Int).Abs(b.Delta())
}

// Instruction is a single instruction reference; only Name and ProgramID are
// ever inspected, arguments are ignored.
type Instruction struct {
	ProgramID string
	Name      string
}

// TransactionMeta carries fee-payer and instruction metadata.
type TransactionMeta struct {
	FeePayer     string
	Signers      []string
	Instructions []Instruction
}

// Role distinguishes the two active assets surviving the collector and sign
// validator, and the transient state before that.
type Role int

const (
	RoleIntermediate Role = iota
	RoleEntry             // negative delta
	RoleExit              // positive delta
)

// AssetDelta is an internal, per-(owner,mint) reduction of one or more
// BalanceChanges.
type AssetDelta struct {
	Mint     string
	Owner    string
	Decimals int
	Delta    *big.Int // signed
	Scale    *big.Int
	Role     Role
}

// AbsDelta returns |Delta|.
func (a AssetDelta) AbsDelta() *big.Int {
	return new(big.Int).Abs(a.Delta)
}

// SwapperMethod names how the swapper was identified.
type SwapperMethod string

const (
	MethodFeePayer     SwapperMethod = "fee_payer"
	MethodTier2        SwapperMethod = "tier2"
	MethodLargestDelta SwapperMethod = "largest_delta"
)

// SwapperResult is the sum type returned by the swapper identifier.
type SwapperResult struct {
	ok         bool
	Swapper    string
	Confidence int
	Method     SwapperMethod
	Reason     string // set only when !ok
}

func swapperSuccess(owner string, confidence int, method SwapperMethod) SwapperResult {
	return SwapperResult{ok: true, Swapper: owner, Confidence: confidence, Method: method}
}

func swapperErase(reason string) SwapperResult {
	return SwapperResult{ok: false, Reason: reason}
}

// OK reports whether the identifier succeeded.
func (s SwapperResult) OK() bool { return s.ok }

// Direction of a non-split swap.
type Direction string

const (
	Buy  Direction = "BUY"
	Sell Direction = "SELL"
)

// AssetRef identifies a mint in the output schema.
type AssetRef struct {
	Mint     string
	Symbol   string // optional; empty means absent
	Decimals int
}

// Amounts is the direction-tagged amount payload. Exactly one shape is
// populated depending on Direction; the unused fields are left as empty
// strings, and their omitempty tags keep them out of encoded JSON.
type Amounts struct {
	BaseAmount string

	// BUY-only
	TotalWalletCost string `json:",omitempty"`
	SwapInputAmount string `json:",omitempty"`

	// SELL-only
	NetWalletReceived string `json:",omitempty"`
	SwapOutputAmount  string `json:",omitempty"`
}

// Metadata carries the accumulator flags threaded through the pipeline.
type Metadata struct {
	RentRefundsFiltered         bool
	IntermediateAssetsCollapsed bool
	Protocol                    string
}

// ParsedSwap is one canonical swap record.
type ParsedSwap struct {
	Signature  string
	Timestamp  int64
	Swapper    string
	Protocol   string
	Direction  Direction
	BaseAsset  AssetRef
	QuoteAsset AssetRef
	Amounts    Amounts
	Confidence int
	Metadata   Metadata
}

// SplitSwapPair is emitted when both active assets are non-core.
type SplitSwapPair struct {
	SellRecord  ParsedSwap
	BuyRecord   ParsedSwap
	SplitReason string
}

// ResultType discriminates the three Result shapes.
type ResultType int

const (
	ResultSuccess ResultType = iota
	ResultSplit
	ResultErase
)

// Result is the tagged union ParseTransaction returns.
type Result struct {
	Type  ResultType
	Swaps []ParsedSwap  // len 1 for Success, unused for Split
	Split SplitSwapPair // used only when Type == ResultSplit
	Error EraseError    // used only when Type == ResultErase
}

// EraseError carries one of the closed set of erase reasons.
type EraseError struct {
	Reason string
}

func success(swap ParsedSwap) Result {
	return Result{Type: ResultSuccess, Swaps: []ParsedSwap{swap}}
}

func split(pair SplitSwapPair) Result {
	return Result{Type: ResultSplit, Split: pair}
}

func erase(reason string) Result {
	return Result{Type: ResultErase, Error: EraseError{Reason: reason}}
}
