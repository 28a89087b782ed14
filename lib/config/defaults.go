package config

import (
	"errors"

	"github.com/go-i2p/go-padding/lib/padding"
	"github.com/go-i2p/logger"
)

// ConfigDefaults contains all default configuration values for go-padding.
// Names are kept as strings so they round-trip through a config file; use
// Resolve to turn them into padding types.
type ConfigDefaults struct {
	// Padding defaults
	Padding PaddingDefaults

	// Output formatting defaults
	Output OutputDefaults
}

// PaddingDefaults contains default values for padding operations
type PaddingDefaults struct {
	// Scheme is one of pkcs7, pkcs5, iso10126, zero
	// Default: pkcs7
	Scheme string

	// BlockLen is the cipher block length in bytes
	// Default: 16 (AES, SM4)
	BlockLen int

	// Random selects the ISO 10126 filler generator: fast or secure
	// Default: fast
	Random string

	// TailZero selects how zero padding is removed: remove_all or keep_one
	// Default: remove_all
	TailZero string
}

// OutputDefaults contains default values for printed results
type OutputDefaults struct {
	// Uppercase prints hex digits A-F in upper case
	// Default: true
	Uppercase bool
}

// Defaults returns a ConfigDefaults instance with all default values set.
// This is the single source of truth for all configuration defaults.
func Defaults() ConfigDefaults {
	return ConfigDefaults{
		Padding: buildPaddingDefaults(),
		Output:  buildOutputDefaults(),
	}
}

func buildPaddingDefaults() PaddingDefaults {
	return PaddingDefaults{
		Scheme:   padding.SchemePKCS7.String(),
		BlockLen: 16,
		Random:   padding.RandomFast.String(),
		TailZero: padding.TailZeroRemoveAll.String(),
	}
}

func buildOutputDefaults() OutputDefaults {
	return OutputDefaults{
		Uppercase: true,
	}
}

// Validate checks if the provided configuration values are usable.
// Returns an error describing the first invalid value found.
func Validate(cfg ConfigDefaults) error {
	log.WithFields(logger.Fields{
		"at":     "Validate",
		"reason": "verification_requested",
	}).Debug("validating configuration")
	_, err := Resolve(cfg)
	return err
}

// Resolve validates cfg and converts it into a Config.
func Resolve(cfg ConfigDefaults) (*Config, error) {
	p, err := resolvePadding(cfg.Padding)
	if err != nil {
		log.WithError(err).Error("Configuration validation failed")
		return nil, err
	}
	log.WithFields(logger.Fields{
		"at":        "Resolve",
		"reason":    "validation_passed",
		"scheme":    p.Scheme.String(),
		"block_len": p.BlockLen,
	}).Debug("configuration resolved")
	return &Config{
		Padding: p,
		Output:  OutputConfig{Uppercase: cfg.Output.Uppercase},
	}, nil
}

func resolvePadding(d PaddingDefaults) (PaddingConfig, error) {
	scheme, err := padding.ParseScheme(d.Scheme)
	if err != nil {
		return PaddingConfig{}, newValidationError("Padding.Scheme is not a known scheme", err)
	}
	if d.BlockLen < 1 {
		return PaddingConfig{}, newValidationError("Padding.BlockLen must be at least 1", nil)
	}
	random, err := padding.ParseRandomStrategy(d.Random)
	if err != nil {
		return PaddingConfig{}, newValidationError("Padding.Random must be fast or secure", err)
	}
	tailZero, err := padding.ParseTailZeroMode(d.TailZero)
	if err != nil {
		return PaddingConfig{}, newValidationError("Padding.TailZero must be remove_all or keep_one", err)
	}
	return PaddingConfig{
		Scheme:   scheme,
		BlockLen: d.BlockLen,
		Random:   random,
		TailZero: tailZero,
	}, nil
}

// ErrInvalidConfig matches every validation failure via errors.Is.
var ErrInvalidConfig = errors.New("configuration validation failed")

// validationError is returned when configuration validation fails
type validationError struct {
	message string
	cause   error
}

func newValidationError(message string, cause error) error {
	return &validationError{message: message, cause: cause}
}

func (e *validationError) Error() string {
	if e.cause != nil {
		return ErrInvalidConfig.Error() + ": " + e.message + ": " + e.cause.Error()
	}
	return ErrInvalidConfig.Error() + ": " + e.message
}

func (e *validationError) Unwrap() []error {
	if e.cause == nil {
		return []error{ErrInvalidConfig}
	}
	return []error{ErrInvalidConfig, e.cause}
}
