// Package cliapp wires the ingest and core packages together for
// cmd/swapparse: fetch-or-load a transaction, run it through the parser,
// and render the result as a single JSON envelope.
package cliapp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/onchain-labs/swapcore/core"
	"github.com/onchain-labs/swapcore/ingest"
)

// Output is the envelope printed to stdout; exactly one of Swap, Split, or
// Error is populated, matching core.Result's tag.
type Output struct {
	Type  string              `json:"type"`
	Swap  *core.ParsedSwap    `json:"swap,omitempty"`
	Split *core.SplitSwapPair `json:"split,omitempty"`
	Error string              `json:"error,omitempty"`
}

func newLogger(level string) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
	})
	if lvl, err := logrus.ParseLevel(level); err == nil {
		log.SetLevel(lvl)
	}
	return log
}

// ParseFromRPC fetches a transaction by signature and runs it through the
// parser.
func ParseFromRPC(ctx context.Context, rpcURL, logLevel, signature, protocol string) (Output, error) {
	fetcher := ingest.NewFetcher(rpcURL)
	input, err := fetcher.FetchBySignature(ctx, signature)
	if err != nil {
		return Output{}, fmt.Errorf("fetch: %w", err)
	}
	input.Protocol = protocol

	raw, err := input.ToRawTransaction()
	if err != nil {
		return Output{}, fmt.Errorf("convert: %w", err)
	}

	return run(raw, logLevel), nil
}

// ParseFromReader runs a JSON-encoded GetTransactionResult payload (read
// from r) through the parser, for offline/fixture use.
func ParseFromReader(r io.Reader, logLevel, signature, protocol string) (Output, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Output{}, fmt.Errorf("read input: %w", err)
	}

	raw, err := ingest.FromJSON(data, signature, 0, protocol)
	if err != nil {
		return Output{}, fmt.Errorf("convert: %w", err)
	}

	return run(raw, logLevel), nil
}

func run(raw core.RawTransaction, logLevel string) Output {
	parser := core.NewParser(newLogger(logLevel))
	result := parser.ParseTransaction(raw)

	switch result.Type {
	case core.ResultSuccess:
		return Output{Type: "success", Swap: &result.Swaps[0]}
	case core.ResultSplit:
		split := result.Split
		return Output{Type: "split", Split: &split}
	default:
		return Output{Type: "erase", Error: result.Error.Reason}
	}
}

// Print writes out as JSON, indented when pretty is true.
func Print(w io.Writer, out Output, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(out)
}

// Fprintln is a thin convenience wrapper around fmt.Fprintf(os.Stderr, ...)
// used for CLI-level error reporting.
func Fprintln(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}
