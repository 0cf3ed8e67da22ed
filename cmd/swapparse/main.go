package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/onchain-labs/swapcore/internal/cliapp"
	"github.com/onchain-labs/swapcore/internal/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "swapparse",
		Short: "Decode Solana swap transactions into canonical balance-delta records",
	}
	root.AddCommand(newParseCmd())
	return root
}

func newParseCmd() *cobra.Command {
	var (
		signature string
		file      string
		protocol  string
		pretty    bool
	)

	cmd := &cobra.Command{
		Use:   "parse",
		Short: "Parse a single transaction by signature or from a saved JSON payload",
		RunE: func(cmd *cobra.Command, args []string) error {
			if (signature == "") == (file == "") {
				return fmt.Errorf("exactly one of --signature or --file is required")
			}

			cfg := config.MustLoad()

			var (
				out cliapp.Output
				err error
			)
			if signature != "" {
				out, err = cliapp.ParseFromRPC(context.Background(), cfg.SolanaRPCURL, cfg.LogLevel, signature, protocol)
			} else {
				f, openErr := os.Open(file)
				if openErr != nil {
					return fmt.Errorf("open %s: %w", file, openErr)
				}
				defer f.Close()
				out, err = cliapp.ParseFromReader(f, cfg.LogLevel, signature, protocol)
			}
			if err != nil {
				return err
			}

			return cliapp.Print(os.Stdout, out, pretty)
		},
	}

	cmd.Flags().StringVar(&signature, "signature", "", "transaction signature to fetch via RPC")
	cmd.Flags().StringVar(&file, "file", "", "path to a saved JSON GetTransactionResult payload")
	cmd.Flags().StringVar(&protocol, "protocol", "", "optional protocol label attached to the output metadata")
	cmd.Flags().BoolVar(&pretty, "pretty", true, "pretty-print the JSON output")

	return cmd
}
