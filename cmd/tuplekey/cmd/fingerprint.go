package cmd

import (
	"fmt"

	"github.com/arloliu/fdbtuple"
	"github.com/spf13/cobra"
)

func newFingerprintCmd() *cobra.Command {
	var shards uint64

	cmd := &cobra.Command{
		Use:   "fingerprint <element>...",
		Short: "Print the xxHash64 fingerprint of a tuple",
		Long: `Print the fingerprint of the tuple formed by the elements, and with
--shards the shard it maps to.

Example:
  tuplekey fingerprint --shards 16 str:tenant int:7`,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := parseTuple(args)
			if err != nil {
				return err
			}

			fp := fdbtuple.Fingerprint(t)
			if shards == 0 {
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "%016x\n", fp)
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%016x shard=%d\n", fp, fp%shards)

			return err
		},
	}

	cmd.Flags().Uint64Var(&shards, "shards", 0, "number of shards to map the fingerprint onto")

	return cmd
}
