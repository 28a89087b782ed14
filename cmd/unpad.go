package cmd

import (
	"github.com/go-i2p/go-padding/lib/config"
	"github.com/go-i2p/go-padding/lib/padding"
	"github.com/go-i2p/logger"
	"github.com/spf13/cobra"
)

func newUnpadCmd() *cobra.Command {
	unpadCmd := &cobra.Command{
		Use:   "unpad [hex]",
		Short: "Strip padding of any supported scheme",
		Long: `Unpad reads a hex string from the argument or stdin and prints it without
its padding. A final zero byte means zero padding; any other final byte is
taken as the padding length.`,
		Example: "  go-padding unpad --tail-zero keep_one AA0000",
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

			unpadded := padding.UnpadWith(data, cfg.Padding.TailZero)
			log.WithFields(logger.Fields{
				"at":        "unpad",
				"tail_zero": cfg.Padding.TailZero.String(),
				"in":        len(data),
				"out":       len(unpadded),
			}).Debug("unpadded input")
			return writeHex(cmd, cfg.Output, unpadded)
		},
	}

	unpadCmd.Flags().StringP("tail-zero", "t", config.Defaults().Padding.TailZero, "zero padding mode: remove_all or keep_one")
	bindFlag(unpadCmd, "padding.tail_zero", "tail-zero", false)
	return unpadCmd
}
