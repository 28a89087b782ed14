package padding

import (
	"github.com/go-i2p/logger"
)

// PadISO10126 applies ISO 10126 padding using the fast random generator.
func PadISO10126(original []byte, blockLen int) []byte {
	return PadISO10126With(original, blockLen, RandomFast)
}

// PadISO10126With applies ISO 10126 padding, drawing the filler bytes from a
// fresh source built for strategy.
func PadISO10126With(original []byte, blockLen int, strategy RandomStrategy) []byte {
	if original == nil || blockLen <= 0 {
		return original
	}
	return PadISO10126From(original, blockLen, SourceFor(strategy))
}

// PadISO10126From appends padLen-1 random bytes read from src followed by a
// single byte holding padLen (truncated to 8 bits). Only that last byte is
// significant when unpadding.
//
// Same nil and blockLen rules as PadPKCS7. A failing src never surfaces as an
// error: the filler is completed from the fast generator instead.
func PadISO10126From(original []byte, blockLen int, src Source) []byte {
	padded, padLen, ok := extend(original, blockLen, "PadISO10126")
	if !ok {
		return original
	}
	filler := padded[len(original) : len(padded)-1]
	fillRandom(filler, src)
	padded[len(padded)-1] = lenByte(padLen)
	return padded
}

func fillRandom(filler []byte, src Source) {
	if len(filler) == 0 {
		return
	}
	if src == nil {
		src = FastSource()
	}
	if err := src.Fill(filler); err != nil {
		log.WithError(err).WithFields(logger.Fields{
			"at":            "PadISO10126",
			"filler_length": len(filler),
			"reason":        "random source failed, using fast source",
		}).Warn("random filler fallback")
		_ = FastSource().Fill(filler)
	}
}
