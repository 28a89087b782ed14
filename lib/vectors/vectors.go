// Package vectors loads and runs hex encoded padding vectors stored as YAML.
package vectors

import (
	"bytes"
	_ "embed"
	"encoding/hex"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/go-i2p/go-padding/lib/padding"
	"github.com/go-i2p/logger"
	"github.com/samber/oops"
	"gopkg.in/yaml.v3"
)

var log = logger.GetGoI2PLogger()

//go:embed data/default.yaml
var defaultSuite []byte

const (
	OpPad   = "pad"
	OpUnpad = "unpad"
)

var (
	// ErrEmptySuite is returned when a vector document holds no vectors
	ErrEmptySuite = errors.New("vector suite is empty")
	// ErrInvalidVector is returned when a vector cannot be evaluated
	ErrInvalidVector = errors.New("invalid vector")
)

// Suite is a named list of vectors as stored in YAML.
type Suite struct {
	Name    string   `yaml:"name"`
	Vectors []Vector `yaml:"vectors"`
}

// Vector describes one pad or unpad check. Byte strings are hex encoded.
//
// A pad vector applies Scheme to Input. For iso10126 without a Seed the
// random filler is not compared; only the length and the final length byte
// are checked. With RoundTrip set the padded output is also unpadded and
// compared to Input. An unpad vector runs Unpad on Input with TailZero.
type Vector struct {
	Name      string `yaml:"name"`
	Op        string `yaml:"op"`
	Scheme    string `yaml:"scheme,omitempty"`
	BlockLen  int    `yaml:"block_len,omitempty"`
	Random    string `yaml:"random,omitempty"`
	TailZero  string `yaml:"tail_zero,omitempty"`
	Seed      string `yaml:"seed,omitempty"`
	Input     string `yaml:"input"`
	NilInput  bool   `yaml:"nil_input,omitempty"`
	Expected  string `yaml:"expected"`
	ExpectNil bool   `yaml:"expect_nil,omitempty"`
	RoundTrip bool   `yaml:"round_trip,omitempty"`
}

// Result is the outcome of running one vector.
type Result struct {
	Name   string
	Passed bool
	Got    string
	Want   string
	Err    error
}

// Load decodes a suite from r. Unknown keys are rejected so typos in a
// vector file do not silently disable checks.
func Load(r io.Reader) (*Suite, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Suite
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, oops.In("vectors").Wrapf(ErrEmptySuite, "decode suite")
		}
		return nil, oops.In("vectors").Wrapf(err, "decode suite")
	}
	if len(s.Vectors) == 0 {
		return nil, oops.In("vectors").With("suite", s.Name).Wrapf(ErrEmptySuite, "decode suite %q", s.Name)
	}

	log.WithFields(logger.Fields{
		"at":      "Load",
		"suite":   s.Name,
		"vectors": len(s.Vectors),
	}).Debug("loaded vector suite")
	return &s, nil
}

// LoadFile reads a suite from a YAML file.
func LoadFile(path string) (*Suite, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, oops.In("vectors").With("file", path).Wrapf(err, "open vector file")
	}
	defer f.Close()
	return Load(f)
}

// Default returns the built-in suite of reference vectors.
func Default() (*Suite, error) {
	return Load(bytes.NewReader(defaultSuite))
}

// Run evaluates every vector in order.
func (s *Suite) Run() []Result {
	results := make([]Result, 0, len(s.Vectors))
	for _, v := range s.Vectors {
		results = append(results, v.Run())
	}
	log.WithFields(logger.Fields{
		"at":     "Suite.Run",
		"suite":  s.Name,
		"total":  len(results),
		"failed": Failed(results),
	}).Debug("vector suite finished")
	return results
}

// Failed counts results that did not pass.
func Failed(results []Result) int {
	n := 0
	for _, r := range results {
		if !r.Passed {
			n++
		}
	}
	return n
}

// Run evaluates the vector.
func (v Vector) Run() Result {
	res := Result{Name: v.Name, Want: v.want()}

	input, err := v.input()
	if err != nil {
		res.Err = err
		return res
	}

	switch strings.ToLower(v.Op) {
	case OpPad:
		err = v.runPad(input, &res)
	case OpUnpad:
		err = v.runUnpad(input, &res)
	default:
		err = oops.In("vectors").With("vector", v.Name).Wrapf(ErrInvalidVector, "unknown op %q", v.Op)
	}
	res.Err = err
	if err != nil {
		res.Passed = false
	}
	return res
}

func (v Vector) runPad(input []byte, res *Result) error {
	scheme, err := padding.ParseScheme(v.Scheme)
	if err != nil {
		return err
	}

	var padded []byte
	if scheme == padding.SchemeISO10126 && v.Seed != "" {
		src, err := seedSource(v.Seed)
		if err != nil {
			return err
		}
		padded = padding.PadISO10126From(input, v.BlockLen, src)
	} else {
		strategy := padding.RandomFast
		if v.Random != "" {
			if strategy, err = padding.ParseRandomStrategy(v.Random); err != nil {
				return err
			}
		}
		padded = padding.Pad(scheme, input, v.BlockLen, strategy)
	}
	res.Got = encode(padded)

	if scheme == padding.SchemeISO10126 && v.Seed == "" && !v.ExpectNil {
		res.Passed = isoShapeMatches(input, padded, v.BlockLen)
	} else {
		res.Passed = v.matches(padded)
	}

	if res.Passed && v.RoundTrip {
		mode, err := v.tailZero()
		if err != nil {
			return err
		}
		if back := padding.UnpadWith(padded, mode); !bytes.Equal(back, input) {
			res.Passed = false
			res.Got = encode(back)
			res.Want = encode(input)
		}
	}
	return nil
}

func (v Vector) runUnpad(input []byte, res *Result) error {
	mode, err := v.tailZero()
	if err != nil {
		return err
	}
	unpadded := padding.UnpadWith(input, mode)
	res.Got = encode(unpadded)
	res.Passed = v.matches(unpadded)
	return nil
}

func (v Vector) matches(got []byte) bool {
	if v.ExpectNil {
		return got == nil
	}
	if got == nil {
		return false
	}
	want, err := hex.DecodeString(v.Expected)
	if err != nil {
		return false
	}
	return bytes.Equal(got, want)
}

// isoShapeMatches checks what ISO 10126 fixes: the original prefix, the
// padded length and the trailing length byte.
func isoShapeMatches(input, padded []byte, blockLen int) bool {
	if input == nil || blockLen <= 0 {
		return bytes.Equal(input, padded) && (input == nil) == (padded == nil)
	}
	if len(padded) != padding.PaddedLen(len(input), blockLen) {
		return false
	}
	padLen := padding.PadLen(len(input), blockLen)
	return bytes.Equal(padded[:len(input)], input) && padded[len(padded)-1] == byte(padLen)
}

func (v Vector) input() ([]byte, error) {
	if v.NilInput {
		return nil, nil
	}
	b, err := hex.DecodeString(v.Input)
	if err != nil {
		return nil, oops.In("vectors").With("vector", v.Name).Wrapf(err, "decode input %q", v.Input)
	}
	if b == nil {
		b = []byte{}
	}
	return b, nil
}

func (v Vector) tailZero() (padding.TailZeroMode, error) {
	if v.TailZero == "" {
		return padding.TailZeroRemoveAll, nil
	}
	return padding.ParseTailZeroMode(v.TailZero)
}

func (v Vector) want() string {
	if v.ExpectNil {
		return "<nil>"
	}
	return strings.ToUpper(v.Expected)
}

func seedSource(seedHex string) (padding.Source, error) {
	raw, err := hex.DecodeString(seedHex)
	if err != nil || len(raw) > 32 {
		return nil, oops.In("vectors").With("seed", seedHex).Wrapf(ErrInvalidVector, "seed must be at most 32 hex encoded bytes")
	}
	var seed [32]byte
	copy(seed[:], raw)
	return padding.SeededSource(seed), nil
}

func encode(b []byte) string {
	if b == nil {
		return "<nil>"
	}
	return strings.ToUpper(hex.EncodeToString(b))
}
