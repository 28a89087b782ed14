package cmd

import (
	"github.com/go-i2p/go-padding/lib/config"
	"github.com/go-i2p/logger"
	"github.com/spf13/cobra"
)

func newPadCmd() *cobra.Command {
	padCmd := &cobra.Command{
		Use:   "pad [hex]",
		Short: "Pad hex encoded input to a whole number of blocks",
		Long: `Pad reads a hex string from the argument or stdin and prints it padded.

pkcs5 always uses 8 byte blocks. iso10126 filler comes from the --random source.`,
		Example: "  go-padding pad --scheme pkcs7 --block 16 AABB",
		Args:    cobra.MaximumNArgs(1),
		PreRunE: loadConfig,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewConfigFromViper()
			if err != nil {
				return err
			}
			data, err := readHex(cmd, args)
			if err != nil {
				return err
			}

			padded := cfg.Padding.Strategy().AddPadding(data)
			log.WithFields(logger.Fields{
				"at":        "pad",
				"scheme":    cfg.Padding.Scheme.String(),
				"block_len": cfg.Padding.BlockLen,
				"in":        len(data),
				"out":       len(padded),
			}).Debug("padded input")
			return writeHex(cmd, cfg.Output, padded)
		},
	}

	d := config.Defaults().Padding
	padCmd.Flags().StringP("scheme", "s", d.Scheme, "padding scheme: pkcs5, pkcs7, iso10126 or zero")
	padCmd.Flags().IntP("block", "b", d.BlockLen, "block length in bytes")
	padCmd.Flags().StringP("random", "r", d.Random, "iso10126 filler source: fast or secure")
	bindFlag(padCmd, "padding.scheme", "scheme", false)
	bindFlag(padCmd, "padding.block_len", "block", false)
	bindFlag(padCmd, "padding.random", "random", false)
	return padCmd
}
