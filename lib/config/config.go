package config

import (
	"path/filepath"

	"github.com/go-i2p/go-padding/lib/padding"
	"github.com/go-i2p/go-padding/lib/util"
	"github.com/go-i2p/logger"
	"github.com/samber/oops"
	"github.com/spf13/viper"
)

var (
	CfgFile string
	log     = logger.GetGoI2PLogger()
)

const GOPADDING_BASE_DIR = ".go-padding"

// Permissions for the generated config directory and file.
const (
	StandardFilePermissions = 0o644
	StandardDirPermissions  = 0o755
)

// Config is the resolved, validated configuration.
type Config struct {
	Padding PaddingConfig
	Output  OutputConfig
}

// PaddingConfig holds the parsed padding options.
type PaddingConfig struct {
	Scheme   padding.Scheme
	BlockLen int
	Random   padding.RandomStrategy
	TailZero padding.TailZeroMode
}

// Strategy returns a padding strategy bound to these options.
func (c PaddingConfig) Strategy() *padding.BlockStrategy {
	return &padding.BlockStrategy{
		Scheme:   c.Scheme,
		BlockLen: c.BlockLen,
		Random:   c.Random,
		TailZero: c.TailZero,
	}
}

// OutputConfig holds printing options.
type OutputConfig struct {
	Uppercase bool
}

// InitConfig loads CfgFile, or $HOME/.go-padding/config.yaml when CfgFile is
// empty. A missing default file is created from Defaults(); a missing
// CfgFile is an error.
func InitConfig() error {
	// Load defaults
	setDefaults(viper.GetViper())

	if CfgFile != "" {
		if !util.CheckFileExists(CfgFile) {
			return oops.In("config").With("file", CfgFile).Errorf("config file %s is not found", CfgFile)
		}
		// Use config file from the flag
		viper.SetConfigFile(CfgFile)
	} else {
		// SetConfigFile ignores "", so the default path is always set.
		defaultConfigDir := BuildConfigDirPath()
		defaultConfigFile := filepath.Join(defaultConfigDir, "config.yaml")
		if !util.CheckFileExists(defaultConfigFile) {
			if err := createDefaultConfig(defaultConfigDir); err != nil {
				return err
			}
		}
		viper.SetConfigFile(defaultConfigFile)
	}

	return handleConfigFile()
}

func setDefaults(v *viper.Viper) {
	d := Defaults()

	v.SetDefault("padding.scheme", d.Padding.Scheme)
	v.SetDefault("padding.block_len", d.Padding.BlockLen)
	v.SetDefault("padding.random", d.Padding.Random)
	v.SetDefault("padding.tail_zero", d.Padding.TailZero)

	v.SetDefault("output.uppercase", d.Output.Uppercase)
}

// CurrentConfig reads the raw option values from viper.
func CurrentConfig() ConfigDefaults {
	return ConfigDefaults{
		Padding: PaddingDefaults{
			Scheme:   viper.GetString("padding.scheme"),
			BlockLen: viper.GetInt("padding.block_len"),
			Random:   viper.GetString("padding.random"),
			TailZero: viper.GetString("padding.tail_zero"),
		},
		Output: OutputDefaults{
			Uppercase: viper.GetBool("output.uppercase"),
		},
	}
}

// NewConfigFromViper resolves the current viper settings into a Config.
func NewConfigFromViper() (*Config, error) {
	return Resolve(CurrentConfig())
}

// createDefaultConfig writes Defaults() only. Flags bound to the global
// viper must not end up in the file.
func createDefaultConfig(defaultConfigDir string) error {
	defaultConfigFile := filepath.Join(defaultConfigDir, "config.yaml")
	if err := util.EnsureDir(defaultConfigDir, StandardDirPermissions); err != nil {
		return oops.In("config").With("dir", defaultConfigDir).Wrapf(err, "create config directory")
	}

	v := viper.New()
	setDefaults(v)
	if err := v.WriteConfigAs(defaultConfigFile); err != nil {
		return oops.In("config").With("file", defaultConfigFile).Wrapf(err, "write default config file")
	}

	log.Debugf("Created default configuration at: %s", defaultConfigFile)
	return nil
}

func handleConfigFile() error {
	if err := viper.ReadInConfig(); err != nil {
		return oops.In("config").With("file", viper.ConfigFileUsed()).Wrapf(err, "read config file")
	}
	log.Debugf("Using config file: %s", viper.ConfigFileUsed())
	return nil
}

// BuildConfigDirPath returns $HOME/.go-padding.
func BuildConfigDirPath() string {
	return filepath.Join(util.UserHome(), GOPADDING_BASE_DIR)
}
