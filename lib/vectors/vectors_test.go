package vectors

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-i2p/go-padding/lib/padding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSuitePasses(t *testing.T) {
	suite, err := Default()
	require.NoError(t, err)
	require.NotEmpty(t, suite.Vectors)
	assert.Equal(t, "reference", suite.Name)

	for _, res := range suite.Run() {
		t.Run(res.Name, func(t *testing.T) {
			require.NoError(t, res.Err)
			assert.True(t, res.Passed, "got %s want %s", res.Got, res.Want)
		})
	}
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	doc := `
name: typo
vectors:
  - name: bad
    op: pad
    schem: pkcs7
`
	_, err := Load(strings.NewReader(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schem")
}

func TestLoadEmpty(t *testing.T) {
	_, err := Load(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrEmptySuite)

	_, err = Load(strings.NewReader("name: nothing\nvectors: []\n"))
	assert.ErrorIs(t, err, ErrEmptySuite)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "suite.yaml")
	doc := "name: file\nvectors:\n  - {name: one, op: pad, scheme: pkcs7, block_len: 1, input: AA, expected: AA01}\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	suite, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, suite.Vectors, 1)

	results := suite.Run()
	assert.Zero(t, Failed(results))
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestVectorFailureReported(t *testing.T) {
	v := Vector{Name: "wrong", Op: OpPad, Scheme: "pkcs7", BlockLen: 4, Input: "AA", Expected: "aa040404"}
	res := v.Run()

	assert.NoError(t, res.Err)
	assert.False(t, res.Passed)
	assert.Equal(t, "AA040404", res.Want)
	assert.Equal(t, "AA030303", res.Got)
}

func TestVectorRoundTripFailure(t *testing.T) {
	// Zero padding cannot restore a trailing zero with remove_all.
	v := Vector{Name: "lossy", Op: OpPad, Scheme: "zero", BlockLen: 4, Input: "AA00", Expected: "AA000000", RoundTrip: true}
	res := v.Run()
	assert.False(t, res.Passed)
	assert.Equal(t, "AA", res.Got)
	assert.Equal(t, "AA00", res.Want)

	v.TailZero = "keep_one"
	assert.True(t, v.Run().Passed)
}

func TestVectorErrors(t *testing.T) {
	testCases := []struct {
		name string
		v    Vector
	}{
		{"bad op", Vector{Op: "encrypt", Input: "AA"}},
		{"bad hex", Vector{Op: OpUnpad, Input: "XYZ"}},
		{"bad scheme", Vector{Op: OpPad, Scheme: "rot13", Input: "AA"}},
		{"bad random", Vector{Op: OpPad, Scheme: "iso10126", BlockLen: 8, Random: "dice", Input: "AA"}},
		{"bad tail zero", Vector{Op: OpUnpad, TailZero: "keep_two", Input: "AA00"}},
		{"bad seed", Vector{Op: OpPad, Scheme: "iso10126", BlockLen: 8, Seed: "zz", Input: "AA"}},
		{"long seed", Vector{Op: OpPad, Scheme: "iso10126", BlockLen: 8, Seed: strings.Repeat("00", 33), Input: "AA"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res := tc.v.Run()
			assert.Error(t, res.Err)
			assert.False(t, res.Passed)
		})
	}
}

func TestISOShapeWithoutSeed(t *testing.T) {
	input := []byte{0xAA}
	padded := padding.PadISO10126(input, 8)
	assert.True(t, isoShapeMatches(input, padded, 8))

	padded[7] = 0x06
	assert.False(t, isoShapeMatches(input, padded, 8))
	assert.False(t, isoShapeMatches(input, padded[:7], 8))
	assert.True(t, isoShapeMatches(nil, nil, 8))
	assert.True(t, isoShapeMatches(input, input, 0))
}

func TestFailed(t *testing.T) {
	results := []Result{{Passed: true}, {Passed: false}, {Passed: false}}
	assert.Equal(t, 2, Failed(results))
	assert.Zero(t, Failed(nil))
}
