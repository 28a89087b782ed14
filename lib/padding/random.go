package padding

import (
	mrand "math/rand/v2"
	"strings"

	"github.com/go-i2p/crypto/rand"
	"github.com/go-i2p/logger"
	"github.com/samber/oops"
	"golang.org/x/crypto/chacha20"
)

// RandomStrategy selects the generator used for ISO 10126 filler bytes.
type RandomStrategy int

const (
	// RandomFast uses a non-cryptographic PRNG. This is the default, since
	// the filler bytes carry no meaning.
	RandomFast RandomStrategy = iota
	// RandomSecure draws from the system CSPRNG.
	RandomSecure
)

// String returns the configuration name of the strategy.
func (s RandomStrategy) String() string {
	switch s {
	case RandomFast:
		return "fast"
	case RandomSecure:
		return "secure"
	default:
		return "unknown"
	}
}

// ParseRandomStrategy maps a configuration name to a RandomStrategy.
// "pseudo" is accepted as an alias of "fast".
func ParseRandomStrategy(name string) (RandomStrategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "fast", "pseudo":
		return RandomFast, nil
	case "secure":
		return RandomSecure, nil
	}
	return RandomFast, oops.
		In("padding").
		With("name", name).
		Wrapf(ErrUnknownRandomStrategy, "parse random strategy %q", name)
}

// Source fills p with random bytes.
type Source interface {
	Fill(p []byte) error
}

// SourceFor returns a new Source for the given strategy. Unknown strategies
// fall back to the fast generator.
func SourceFor(strategy RandomStrategy) Source {
	switch strategy {
	case RandomSecure:
		return SecureSource()
	case RandomFast:
		return FastSource()
	}
	log.WithFields(logger.Fields{
		"at":       "SourceFor",
		"strategy": int(strategy),
		"reason":   "unknown random strategy, using fast source",
	}).Warn("unknown random strategy")
	return FastSource()
}

type fastSource struct {
	r *mrand.Rand
}

// FastSource returns a PCG generator seeded for this source only.
func FastSource() Source {
	return &fastSource{r: mrand.New(mrand.NewPCG(mrand.Uint64(), mrand.Uint64()))}
}

func (s *fastSource) Fill(p []byte) error {
	for i := 0; i < len(p); i += 8 {
		v := s.r.Uint64()
		for j := 0; j < 8 && i+j < len(p); j++ {
			p[i+j] = byte(v >> (8 * j))
		}
	}
	return nil
}

type secureSource struct{}

// SecureSource returns a source backed by the system CSPRNG.
func SecureSource() Source {
	return secureSource{}
}

func (secureSource) Fill(p []byte) error {
	if _, err := rand.Read(p); err != nil {
		return oops.In("padding").With("length", len(p)).Wrapf(err, "read secure random bytes")
	}
	return nil
}

type seededSource struct {
	c   *chacha20.Cipher
	err error
}

// SeededSource returns a deterministic ChaCha20 keystream keyed by seed.
// Two sources built from the same seed produce the same byte sequence,
// which makes ISO 10126 output reproducible in test vectors.
func SeededSource(seed [32]byte) Source {
	var nonce [chacha20.NonceSize]byte
	c, err := chacha20.NewUnauthenticatedCipher(seed[:], nonce[:])
	if err != nil {
		return &seededSource{err: oops.In("padding").Wrapf(err, "init seeded source")}
	}
	return &seededSource{c: c}
}

func (s *seededSource) Fill(p []byte) error {
	if s.err != nil {
		return s.err
	}
	clear(p)
	s.c.XORKeyStream(p, p)
	return nil
}
