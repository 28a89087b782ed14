package padding

import (
	"strings"

	"github.com/go-i2p/logger"
	"github.com/samber/oops"
)

// TailZeroMode controls how Unpad treats trailing zero bytes of a
// zero padded buffer.
type TailZeroMode int

const (
	// TailZeroRemoveAll strips every trailing zero byte. This is the default.
	TailZeroRemoveAll TailZeroMode = iota
	// TailZeroKeepOne strips all trailing zero bytes but one. Use it when the
	// original data may itself end in 0x00.
	TailZeroKeepOne
)

// String returns the configuration name of the mode.
func (m TailZeroMode) String() string {
	switch m {
	case TailZeroRemoveAll:
		return "remove_all"
	case TailZeroKeepOne:
		return "keep_one"
	default:
		return "unknown"
	}
}

// ParseTailZeroMode maps a configuration name to a TailZeroMode.
// Dashes and underscores are interchangeable.
func ParseTailZeroMode(name string) (TailZeroMode, error) {
	switch strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_") {
	case "remove_all":
		return TailZeroRemoveAll, nil
	case "keep_one":
		return TailZeroKeepOne, nil
	}
	return TailZeroRemoveAll, oops.
		In("padding").
		With("name", name).
		Wrapf(ErrUnknownTailZeroMode, "parse tail zero mode %q", name)
}

// Unpad removes PKCS#5, PKCS#7, ISO 10126 or zero padding, stripping every
// trailing zero byte of zero padded input.
func Unpad(padded []byte) []byte {
	return UnpadWith(padded, TailZeroRemoveAll)
}

// UnpadWith removes padding without being told which scheme produced it.
//
// A non-zero last byte is read as a PKCS#5/PKCS#7/ISO 10126 length and that
// many bytes are dropped. A zero last byte marks zero padding: the run of
// trailing zeros is removed entirely, or down to one byte with
// TailZeroKeepOne. Zero padding over data that ends in 0x00 is ambiguous by
// construction; mode is the caller's way to resolve it.
//
// nil or empty input, and input shorter than its length byte claims, is
// returned unchanged. Otherwise the result is a new slice.
func UnpadWith(padded []byte, mode TailZeroMode) []byte {
	if len(padded) == 0 {
		return padded
	}

	last := int(padded[len(padded)-1])
	unpaddedLen := len(padded) - last
	if last == 0 {
		i := len(padded) - 1
		for ; i >= 0; i-- {
			if padded[i] != 0 {
				break
			}
		}
		unpaddedLen = i + 1
		if mode == TailZeroKeepOne {
			unpaddedLen = i + 2
		}
	}

	if unpaddedLen < 0 {
		log.WithFields(logger.Fields{
			"at":          "UnpadWith",
			"data_length": len(padded),
			"pad_length":  last,
			"reason":      "pad length exceeds data length",
		}).Warn("unpadding skipped")
		return padded
	}

	unpadded := make([]byte, unpaddedLen)
	copy(unpadded, padded)

	log.WithFields(logger.Fields{
		"at":              "UnpadWith",
		"data_length":     len(padded),
		"unpadded_length": unpaddedLen,
		"zero_padded":     last == 0,
		"tail_zero_mode":  mode.String(),
	}).Debug("padding removed")
	return unpadded
}
