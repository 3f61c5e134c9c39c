package cmd

import (
	"encoding/hex"
	"fmt"

	"github.com/arloliu/fdbtuple"
	"github.com/arloliu/fdbtuple/envelope"
	"github.com/arloliu/fdbtuple/item"
	"github.com/spf13/cobra"
)

func newEncodeCmd() *cobra.Command {
	var (
		useEnvelope bool
		compression string
		checksum    bool
	)

	cmd := &cobra.Command{
		Use:   "encode <element>...",
		Short: "Encode a tuple and print it as hex",
		Long: `Encode the given elements as one tuple.

Element types: int, uint, str, bytes (hex), bool, f32, f64, uuid, nil.

Example:
  tuplekey encode str:hello bytes:776f726c64
  tuplekey encode --envelope --compression s2 str:payload int:7`,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := parseTuple(args)
			if err != nil {
				return err
			}

			for i, v := range t {
				log.Debug("element", "index", i, "tag", v.Tag().String(), "value", item.Format(v))
			}

			var out []byte
			if useEnvelope {
				ct, err := parseCompression(compression)
				if err != nil {
					return err
				}
				enc, err := envelope.NewEncoder(envelope.WithCompression(ct), envelope.WithChecksum(checksum))
				if err != nil {
					return err
				}
				if out, err = enc.Encode(t); err != nil {
					return err
				}
				log.Debug("envelope", "tuple bytes", fdbtuple.TupleSize(t), "envelope bytes", len(out))
			} else {
				out = fdbtuple.EncodeTuple(t)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(out))

			return err
		},
	}

	cmd.Flags().BoolVar(&useEnvelope, "envelope", false, "wrap the tuple in a stored-value envelope")
	cmd.Flags().StringVar(&compression, "compression", "zstd", "envelope compression: none, zstd, s2, lz4")
	cmd.Flags().BoolVar(&checksum, "checksum", true, "append an envelope checksum")

	return cmd
}
