// Package cmd implements the tuplekey subcommands.
package cmd

import (
	"os"

	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/spf13/cobra"
)

var log = logger.GetOrCreate("tuplekey")

// NewRootCmd builds the tuplekey command tree.
func NewRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "tuplekey",
		Short: "Encode and decode order-preserving tuple keys",
		Long: `tuplekey converts between typed tuples and their order-preserving
binary encoding, printed as hex.

Tuple elements are written as [type:]value, for example:
  tuplekey encode str:users int:42 bool:true nil`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging(verbose)
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log per-item details to stderr")

	root.AddCommand(newEncodeCmd(), newDecodeCmd(), newFingerprintCmd())

	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func setupLogging(verbose bool) error {
	_ = logger.RemoveLogObserver(os.Stdout)
	_ = logger.RemoveLogObserver(os.Stderr)
	if err := logger.AddLogObserver(os.Stderr, &logger.PlainFormatter{}); err != nil {
		return err
	}
	if err := logger.SetDisplayByteSlice(logger.ToHex); err != nil {
		return err
	}

	level := "*:INFO"
	if verbose {
		level = "*:DEBUG"
	}

	return logger.SetLogLevel(level)
}
