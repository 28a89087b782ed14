package cmd

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/go-i2p/go-padding/lib/config"
	"github.com/samber/oops"
	"github.com/spf13/cobra"
)

// readHex decodes the first argument, or stdin when no argument or "-" is
// given. Whitespace inside the input is ignored.
func readHex(cmd *cobra.Command, args []string) ([]byte, error) {
	var raw string
	if len(args) > 0 && args[0] != "-" {
		raw = args[0]
	} else {
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, oops.In("cli").Wrapf(err, "read stdin")
		}
		raw = string(b)
	}

	raw = strings.Join(strings.Fields(raw), "")
	data, err := hex.DecodeString(raw)
	if err != nil {
		return nil, oops.In("cli").With("input", raw).Wrapf(err, "input is not hex")
	}
	if data == nil {
		data = []byte{}
	}
	return data, nil
}

func writeHex(cmd *cobra.Command, out config.OutputConfig, data []byte) error {
	s := hex.EncodeToString(data)
	if out.Uppercase {
		s = strings.ToUpper(s)
	}
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), s); err != nil {
		return oops.In("cli").Wrapf(err, "write output")
	}
	return nil
}
