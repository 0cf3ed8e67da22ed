package ingest

import (
	"encoding/json"
	"fmt"
	"math/big"

	ag_binary "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/mr-tron/base58"

	"github.com/onchain-labs/swapcore/core"
)

// RawTransactionInput is the decoded-but-unconverted shape a Fetcher or a
// JSON fixture produces; ToRawTransaction reduces it to core.RawTransaction.
type RawTransactionInput struct {
	Signature string
	Timestamp int64
	Protocol  string
	TxInfo    *solana.Transaction
	Meta      *rpc.TransactionMeta
}

// tokenAccountInfo is the owner/mint/decimals triple tracked per token
// account index, keyed directly off the RPC TokenBalance rows.
type tokenAccountInfo struct {
	owner    string
	mint     string
	decimals int
}

// ToRawTransaction builds a core.RawTransaction from a fetched transaction:
// native SOL balances come from PreBalances/PostBalances against the
// account-keys table, SPL balances from Pre/PostTokenBalances, and
// instructions are flattened (outer + every inner instruction set) into
// core.Instruction records so the transfer/core detector can inspect them.
func (in RawTransactionInput) ToRawTransaction() (core.RawTransaction, error) {
	if in.TxInfo == nil || in.Meta == nil {
		return core.RawTransaction{}, fmt.Errorf("incomplete transaction input")
	}

	allKeys := append(append(solana.PublicKeySlice{}, in.TxInfo.Message.AccountKeys...),
		in.Meta.LoadedAddresses.Writable...)
	allKeys = append(allKeys, in.Meta.LoadedAddresses.ReadOnly...)

	changes, err := solBalanceChanges(allKeys, in.Meta)
	if err != nil {
		return core.RawTransaction{}, err
	}
	tokenChanges, err := tokenBalanceChanges(allKeys, in.Meta)
	if err != nil {
		return core.RawTransaction{}, err
	}
	changes = append(changes, tokenChanges...)

	instructions := flattenInstructions(allKeys, in.TxInfo, in.Meta)

	feePayer := ""
	if len(allKeys) > 0 {
		feePayer = allKeys[0].String()
	}
	if feePayer != "" {
		if err := validateAccountKey(feePayer); err != nil {
			return core.RawTransaction{}, fmt.Errorf("fee payer: %w", err)
		}
	}

	signers := signerStrings(in.TxInfo)
	for _, s := range signers {
		if err := validateAccountKey(s); err != nil {
			return core.RawTransaction{}, fmt.Errorf("signer: %w", err)
		}
	}

	return core.RawTransaction{
		Signature:      in.Signature,
		Timestamp:      in.Timestamp,
		BalanceChanges: changes,
		TransactionMeta: core.TransactionMeta{
			FeePayer:     feePayer,
			Signers:      signers,
			Instructions: instructions,
		},
		Protocol: in.Protocol,
	}, nil
}

func signerStrings(txInfo *solana.Transaction) []string {
	numSigners := int(txInfo.Message.Header.NumRequiredSignatures)
	if numSigners > len(txInfo.Message.AccountKeys) {
		numSigners = len(txInfo.Message.AccountKeys)
	}
	out := make([]string, 0, numSigners)
	for i := 0; i < numSigners; i++ {
		out = append(out, txInfo.Message.AccountKeys[i].String())
	}
	return out
}

func solBalanceChanges(allKeys solana.PublicKeySlice, meta *rpc.TransactionMeta) ([]core.BalanceChange, error) {
	if len(meta.PreBalances) != len(meta.PostBalances) {
		return nil, fmt.Errorf("pre/post lamport balance length mismatch")
	}
	scale := pow10(9)
	out := make([]core.BalanceChange, 0, len(meta.PreBalances))
	for i := range meta.PreBalances {
		if i >= len(allKeys) {
			break
		}
		out = append(out, core.BalanceChange{
			Mint:      core.NativeSOLMint,
			Owner:     allKeys[i].String(),
			PreDelta:  new(big.Int).SetUint64(meta.PreBalances[i]),
			PostDelta: new(big.Int).SetUint64(meta.PostBalances[i]),
			Decimals:  9,
			Scale:     scale,
		})
	}
	return out, nil
}

func tokenBalanceChanges(allKeys solana.PublicKeySlice, meta *rpc.TransactionMeta) ([]core.BalanceChange, error) {
	pre := make(map[uint16]tokenAccountInfo)
	post := make(map[uint16]tokenAccountInfo)
	preAmount := make(map[uint16]string)
	postAmount := make(map[uint16]string)

	for _, tb := range meta.PreTokenBalances {
		pre[tb.AccountIndex] = tokenAccountInfo{
			owner:    tb.Owner.String(),
			mint:     tb.Mint.String(),
			decimals: int(tb.UiTokenAmount.Decimals),
		}
		preAmount[tb.AccountIndex] = tb.UiTokenAmount.Amount
	}
	for _, tb := range meta.PostTokenBalances {
		post[tb.AccountIndex] = tokenAccountInfo{
			owner:    tb.Owner.String(),
			mint:     tb.Mint.String(),
			decimals: int(tb.UiTokenAmount.Decimals),
		}
		postAmount[tb.AccountIndex] = tb.UiTokenAmount.Amount
	}

	indices := make(map[uint16]struct{})
	for idx := range pre {
		indices[idx] = struct{}{}
	}
	for idx := range post {
		indices[idx] = struct{}{}
	}

	out := make([]core.BalanceChange, 0, len(indices))
	for idx := range indices {
		info, ok := post[idx]
		if !ok {
			info = pre[idx]
		}

		preVal, err := parseAmount(preAmount[idx])
		if err != nil {
			return nil, fmt.Errorf("parse pre token amount: %w", err)
		}
		postVal, err := parseAmount(postAmount[idx])
		if err != nil {
			return nil, fmt.Errorf("parse post token amount: %w", err)
		}

		out = append(out, core.BalanceChange{
			Mint:      info.mint,
			Owner:     info.owner,
			PreDelta:  preVal,
			PostDelta: postVal,
			Decimals:  info.decimals,
			Scale:     pow10(info.decimals),
		})
	}
	return out, nil
}

func parseAmount(s string) (*big.Int, error) {
	if s == "" {
		return big.NewInt(0), nil
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("invalid integer amount %q", s)
	}
	return v, nil
}

func pow10(decimals int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)
}

// flattenInstructions walks outer instructions plus every inner instruction
// set and classifies each by program ID and, for the SPL Token program, by
// opcode byte, rather than dispatching to a protocol-specific decoder.
func flattenInstructions(allKeys solana.PublicKeySlice, txInfo *solana.Transaction, meta *rpc.TransactionMeta) []core.Instruction {
	var out []core.Instruction

	classify := func(programIDIndex uint16, data []byte) core.Instruction {
		if int(programIDIndex) >= len(allKeys) {
			return core.Instruction{Name: "unknown"}
		}
		programID := allKeys[programIDIndex].String()
		name := "other"
		if programID == core.TokenProgramID {
			if opcode, ok := tokenInstructionOpcode(data); ok {
				switch opcode {
				case 3:
					name = "transfer"
				case 12:
					name = "transferChecked"
				default:
					name = "token_other"
				}
			}
		}
		return core.Instruction{ProgramID: programID, Name: name}
	}

	for _, ci := range txInfo.Message.Instructions {
		out = append(out, classify(ci.ProgramIDIndex, ci.Data))
	}
	for _, innerSet := range meta.InnerInstructions {
		for _, ci := range innerSet.Instructions {
			out = append(out, classify(ci.ProgramIDIndex, ci.Data))
		}
	}
	return out
}

// tokenInstructionOpcode reads the single discriminator byte the SPL Token
// program's transfer/transferChecked entrypoints lead with, through a
// Borsh decoder rather than indexing the slice directly.
func tokenInstructionOpcode(data []byte) (byte, bool) {
	if len(data) == 0 {
		return 0, false
	}
	dec := ag_binary.NewBorshDecoder(data)
	opcode, err := dec.ReadUint8()
	if err != nil {
		return 0, false
	}
	return opcode, true
}

// validateAccountKey confirms an account key string decodes as a 32-byte
// base58 Solana address, applied to the fee-payer and signer strings pulled
// out of the account-keys table before they are handed to the core as
// TransactionMeta values. BalanceChange.Owner strings are not checked.
func validateAccountKey(key string) error {
	raw, err := base58.Decode(key)
	if err != nil {
		return fmt.Errorf("invalid base58 account key %q: %w", key, err)
	}
	const pubkeyLength = 32
	if len(raw) != pubkeyLength {
		return fmt.Errorf("account key %q decodes to %d bytes, want %d", key, len(raw), pubkeyLength)
	}
	return nil
}

// FromJSON decodes a JSON-encoded RPC GetTransactionResult (the format the
// CLI accepts from a file) into a core.RawTransaction. signature and
// timestamp are not always present in a raw result payload, so callers
// supply them explicitly.
func FromJSON(data []byte, signature string, timestamp int64, protocol string) (core.RawTransaction, error) {
	var result rpc.GetTransactionResult
	if err := json.Unmarshal(data, &result); err != nil {
		return core.RawTransaction{}, fmt.Errorf("decode transaction JSON: %w", err)
	}
	txInfo, err := result.Transaction.GetTransaction()
	if err != nil {
		return core.RawTransaction{}, fmt.Errorf("decode transaction envelope: %w", err)
	}

	input := RawTransactionInput{
		Signature: signature,
		Timestamp: timestamp,
		Protocol:  protocol,
		TxInfo:    txInfo,
		Meta:      result.Meta,
	}
	return input.ToRawTransaction()
}
