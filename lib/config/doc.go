// Package config provides configuration management for go-padding.
//
// # Configuration File
//
// Options are read with viper from $HOME/.go-padding/config.yaml, or from the
// file named by CfgFile. When the default file does not exist it is written
// out from Defaults() on first use, so users have a template to edit. Values
// set by flags on that run are not written.
//
//	padding:
//	  scheme: pkcs7      # pkcs7, pkcs5, iso10126, zero
//	  block_len: 16
//	  random: fast       # fast, secure
//	  tail_zero: remove_all  # remove_all, keep_one
//	output:
//	  uppercase: true
//
// # Usage Pattern
//
// Call InitConfig once at startup, then NewConfigFromViper to obtain a
// validated *Config. Raw values are available from CurrentConfig, and
// Resolve validates any ConfigDefaults value directly, which is how command
// line flags bound to viper are checked.
package config
