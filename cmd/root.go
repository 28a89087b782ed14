// Package cmd implements the go-padding command line interface.
package cmd

import (
	"github.com/go-i2p/go-padding/lib/config"
	"github.com/go-i2p/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var log = logger.GetGoI2PLogger()

// NewRootCmd builds the command tree. Each call returns fresh commands so
// tests can run them in isolation.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "go-padding",
		Short: "Pad and unpad byte strings for block ciphers",
		Long: `go-padding applies PKCS#5, PKCS#7, ISO 10126 and zero padding to hex
encoded input and removes any of them again.

Options default to $HOME/.go-padding/config.yaml; command line flags win.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&config.CfgFile, "config", "c", "", "path to configuration file (optional)")
	rootCmd.PersistentFlags().Bool("uppercase", true, "print hex digits in upper case")
	bindFlag(rootCmd, "output.uppercase", "uppercase", true)

	rootCmd.AddCommand(newPadCmd(), newUnpadCmd(), newVerifyCmd())
	return rootCmd
}

// Execute runs the command line with os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// loadConfig is the PreRunE of commands that read configuration.
func loadConfig(cmd *cobra.Command, args []string) error {
	return config.InitConfig()
}

// bindFlag ties a flag to a viper key. Persistent flags are looked up in
// the persistent set.
func bindFlag(cmd *cobra.Command, key, name string, persistent bool) {
	flags := cmd.Flags()
	if persistent {
		flags = cmd.PersistentFlags()
	}
	if err := viper.BindPFlag(key, flags.Lookup(name)); err != nil {
		log.WithError(err).WithField("flag", name).Warn("could not bind flag")
	}
}
