package padding

import (
	"strings"

	"github.com/samber/oops"
)

// Scheme identifies one of the supported padding algorithms.
type Scheme int

const (
	// SchemePKCS7 appends n bytes of value n.
	SchemePKCS7 Scheme = iota
	// SchemePKCS5 is PKCS#7 with a fixed 8 byte block.
	SchemePKCS5
	// SchemeISO10126 appends random filler ending in the pad length.
	SchemeISO10126
	// SchemeZero appends zero bytes.
	SchemeZero
)

var schemeNames = map[Scheme]string{
	SchemePKCS7:    "pkcs7",
	SchemePKCS5:    "pkcs5",
	SchemeISO10126: "iso10126",
	SchemeZero:     "zero",
}

var schemeAliases = map[string]Scheme{
	"pkcs7":     SchemePKCS7,
	"pkcs#7":    SchemePKCS7,
	"pkcs5":     SchemePKCS5,
	"pkcs#5":    SchemePKCS5,
	"iso10126":  SchemeISO10126,
	"iso-10126": SchemeISO10126,
	"iso_10126": SchemeISO10126,
	"zero":      SchemeZero,
	"zeros":     SchemeZero,
}

// String returns the canonical scheme name, or "unknown".
func (s Scheme) String() string {
	if name, ok := schemeNames[s]; ok {
		return name
	}
	return "unknown"
}

// Schemes lists every supported scheme in declaration order.
func Schemes() []Scheme {
	return []Scheme{SchemePKCS7, SchemePKCS5, SchemeISO10126, SchemeZero}
}

// ParseScheme maps a case-insensitive scheme name such as "pkcs7", "PKCS#5"
// or "iso-10126" to its Scheme.
func ParseScheme(name string) (Scheme, error) {
	if s, ok := schemeAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return s, nil
	}
	return SchemePKCS7, oops.
		In("padding").
		With("name", name).
		Wrapf(ErrUnknownScheme, "parse padding scheme %q", name)
}

// Pad applies scheme to original. blockLen is ignored by SchemePKCS5 and
// strategy is only used by SchemeISO10126. An unknown scheme returns
// original unchanged.
func Pad(scheme Scheme, original []byte, blockLen int, strategy RandomStrategy) []byte {
	switch scheme {
	case SchemePKCS7:
		return PadPKCS7(original, blockLen)
	case SchemePKCS5:
		return PadPKCS5(original)
	case SchemeISO10126:
		return PadISO10126With(original, blockLen, strategy)
	case SchemeZero:
		return PadZero(original, blockLen)
	}
	log.WithField("scheme", int(scheme)).Warn("unknown padding scheme, input left unpadded")
	return original
}
