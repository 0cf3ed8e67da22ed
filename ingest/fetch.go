// Package ingest adapts Solana RPC transaction payloads into core.RawTransaction.
// It is the only package in this module that imports the Solana SDK or talks
// to an RPC endpoint; core stays pure.
package ingest

import (
	"context"
	"fmt"
	"time"

	"github.com/AlekSi/pointer"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

// DefaultFetchTimeout bounds a single GetTransaction round trip.
const DefaultFetchTimeout = 60 * time.Second

// Fetcher fetches confirmed transactions by signature, requesting confirmed
// commitment and the highest supported transaction version so both legacy
// and versioned transactions decode cleanly.
type Fetcher struct {
	client *rpc.Client
}

// NewFetcher wraps an RPC client pointed at rpcURL.
func NewFetcher(rpcURL string) *Fetcher {
	return &Fetcher{client: rpc.New(rpcURL)}
}

// FetchBySignature retrieves a confirmed transaction and decodes it into a
// RawTransactionInput; ToRawTransaction turns that into a core.RawTransaction.
// It requests legacy and v0 transactions alike via
// MaxSupportedTransactionVersion.
func (f *Fetcher) FetchBySignature(ctx context.Context, signature string) (RawTransactionInput, error) {
	sig, err := solana.SignatureFromBase58(signature)
	if err != nil {
		return RawTransactionInput{}, fmt.Errorf("invalid signature: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, DefaultFetchTimeout)
	defer cancel()

	maxVersion := pointer.ToUint64(0)
	result, err := f.client.GetTransaction(ctx, sig, &rpc.GetTransactionOpts{
		Commitment:                     rpc.CommitmentConfirmed,
		MaxSupportedTransactionVersion: maxVersion,
	})
	if err != nil {
		return RawTransactionInput{}, fmt.Errorf("fetch transaction: %w", err)
	}
	if result == nil {
		return RawTransactionInput{}, fmt.Errorf("transaction not found: %s", signature)
	}

	txInfo, err := result.Transaction.GetTransaction()
	if err != nil {
		return RawTransactionInput{}, fmt.Errorf("decode transaction envelope: %w", err)
	}

	var blockTime int64
	if result.BlockTime != nil {
		blockTime = int64(*result.BlockTime)
	}

	return RawTransactionInput{
		Signature: signature,
		Timestamp: blockTime,
		TxInfo:    txInfo,
		Meta:      result.Meta,
	}, nil
}
