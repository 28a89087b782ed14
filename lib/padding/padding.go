package padding

import (
	"bytes"
	"errors"

	"github.com/go-i2p/logger"
)

var log = logger.GetGoI2PLogger()

var (
	// ErrUnknownScheme is returned when a scheme name cannot be parsed
	ErrUnknownScheme = errors.New("unknown padding scheme")
	// ErrUnknownRandomStrategy is returned when a random strategy name cannot be parsed
	ErrUnknownRandomStrategy = errors.New("unknown random strategy")
	// ErrUnknownTailZeroMode is returned when a tail zero mode name cannot be parsed
	ErrUnknownTailZeroMode = errors.New("unknown tail zero mode")
)

// PKCS5BlockLen is the fixed block length of PKCS#5 padding.
const PKCS5BlockLen = 8

// PadPKCS5 applies PKCS#5 padding, which is PKCS#7 padding over 8 byte blocks.
func PadPKCS5(original []byte) []byte {
	return PadPKCS7(original, PKCS5BlockLen)
}

// PadPKCS7 appends padLen bytes each holding padLen, where padLen brings the
// length up to the next multiple of blockLen (a full block when already
// aligned). The padding byte is padLen truncated to 8 bits.
//
// A nil original is returned as nil and a non-positive blockLen returns
// original itself. Otherwise the result is a new slice.
func PadPKCS7(original []byte, blockLen int) []byte {
	padded, padLen, ok := extend(original, blockLen, "PadPKCS7")
	if !ok {
		return original
	}
	copy(padded[len(original):], bytes.Repeat([]byte{lenByte(padLen)}, padLen))
	return padded
}

// PadZero appends padLen zero bytes, with padLen computed as for PadPKCS7.
// Same nil and blockLen rules as PadPKCS7.
func PadZero(original []byte, blockLen int) []byte {
	padded, _, ok := extend(original, blockLen, "PadZero")
	if !ok {
		return original
	}
	return padded
}

// extend copies original into a zeroed slice of its padded length.
// It reports false when the input takes the no-op path.
func extend(original []byte, blockLen int, at string) ([]byte, int, bool) {
	if original == nil || blockLen <= 0 {
		log.WithFields(logger.Fields{
			"at":        at,
			"nil_input": original == nil,
			"block_len": blockLen,
			"reason":    "nil input or non-positive block length",
		}).Debug("padding skipped")
		return nil, 0, false
	}
	padLen := PadLen(len(original), blockLen)
	padded := make([]byte, len(original)+padLen)
	copy(padded, original)

	log.WithFields(logger.Fields{
		"at":          at,
		"data_length": len(original),
		"block_len":   blockLen,
		"pad_length":  padLen,
	}).Debug("allocated padded buffer")
	return padded, padLen, true
}
