package cmd

import (
	"fmt"
	"strings"

	"github.com/arloliu/fdbtuple"
	"github.com/arloliu/fdbtuple/envelope"
	"github.com/arloliu/fdbtuple/format"
	"github.com/arloliu/fdbtuple/item"
	"github.com/spf13/cobra"
)

func newDecodeCmd() *cobra.Command {
	var useEnvelope bool

	cmd := &cobra.Command{
		Use:   "decode <hex>",
		Short: "Decode a hex encoded tuple and print it",
		Long: `Decode a tuple key, or with --envelope a stored-value envelope.

Example:
  tuplekey decode 0268656c6c6f000177 6f726c6400`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			buf, err := decodeHex(strings.Join(args, ""))
			if err != nil {
				return fmt.Errorf("invalid hex input: %w", err)
			}

			if useEnvelope {
				if buf, err = envelope.Open(buf); err != nil {
					return err
				}
			}

			t, err := decodeLogged(buf)
			if err != nil {
				return fmt.Errorf("%s: %w", format.KindOf(err), err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), t)

			return err
		},
	}

	cmd.Flags().BoolVar(&useEnvelope, "envelope", false, "input is a stored-value envelope")

	return cmd
}

// decodeLogged decodes buf item by item, logging each item's offset and
// size at debug level.
func decodeLogged(buf []byte) (fdbtuple.Tuple, error) {
	t := fdbtuple.Tuple{}
	for off := 0; off < len(buf); {
		v, n, err := fdbtuple.DecodeValue(buf[off:])
		if err != nil {
			log.Debug("decode failed", "offset", off, "error", err.Error())
			return nil, fmt.Errorf("decode item %d at offset %d: %w", len(t), off, err)
		}
		log.Debug("item", "offset", off, "size", n, "raw", buf[off:off+n], "value", item.Format(v))
		t = append(t, v)
		off += n
	}

	return t, nil
}
