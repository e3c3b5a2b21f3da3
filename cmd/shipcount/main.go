// Command shipcount counts (or enumerates) valid Battleship ship
// placements on a rectangular board via combsolve.
//
// Usage:
//
//	shipcount --width 10 --height 10 --ships 6,4,4,3,3,2,2
//	shipcount --config shipcount.yaml --return indices
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := newRunConfig()

	cmd := &cobra.Command{
		Use:   "shipcount",
		Short: "Count or enumerate Battleship ship placements",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := buildLogger(cfg.Verbose)
			if err != nil {
				return err
			}
			defer log.Sync() //nolint:errcheck

			return run(cmd.Context(), cfg, log)
		},
	}

	cfg.bindFlags(cmd)

	return cmd
}

func buildLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}

	return zap.NewProduction()
}
