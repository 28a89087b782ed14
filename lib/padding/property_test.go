package padding

import (
	mrand "math/rand/v2"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// randomInputs returns deterministic buffers of varied length. When
// noTrailingZero is set the last byte of every non-empty buffer is non-zero.
func randomInputs(r *mrand.Rand, count int, noTrailingZero bool) [][]byte {
	inputs := make([][]byte, 0, count)
	for i := 0; i < count; i++ {
		b := make([]byte, r.IntN(70))
		for j := range b {
			b[j] = byte(r.UintN(256))
		}
		if noTrailingZero && len(b) > 0 && b[len(b)-1] == 0 {
			b[len(b)-1] = 0x5A
		}
		inputs = append(inputs, b)
	}
	return inputs
}

func TestRoundTripProperty(t *testing.T) {
	r := mrand.New(mrand.NewPCG(1, 2))
	blockLens := []int{1, 2, 3, 7, 8, 15, 16, 17, 32, 64, 255}

	padders := map[string]func([]byte, int) []byte{
		"pkcs7":           PadPKCS7,
		"iso10126 fast":   PadISO10126,
		"iso10126 secure": func(b []byte, n int) []byte { return PadISO10126With(b, n, RandomSecure) },
		"zero":            PadZero,
	}

	for name, pad := range padders {
		t.Run(name, func(t *testing.T) {
			for _, b := range randomInputs(r, 50, name == "zero") {
				for _, n := range blockLens {
					padded := pad(b, n)
					require.Zero(t, len(padded)%n, "len %d block %d", len(b), n)

					added := len(padded) - len(b)
					require.GreaterOrEqual(t, added, 1)
					require.LessOrEqual(t, added, n)

					require.Equal(t, b, padded[:len(b)])
					require.Equal(t, b, Unpad(padded), "len %d block %d", len(b), n)
				}
			}
		})
	}

	t.Run("pkcs5", func(t *testing.T) {
		for _, b := range randomInputs(r, 50, false) {
			padded := PadPKCS5(b)
			require.Zero(t, len(padded)%PKCS5BlockLen)
			require.Equal(t, b, Unpad(padded))
		}
	})
}

func TestPaddingIsSafeForConcurrentUse(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(seed uint64) {
			defer wg.Done()
			r := mrand.New(mrand.NewPCG(seed, seed))
			for _, b := range randomInputs(r, 20, true) {
				assert.Equal(t, b, Unpad(PadPKCS7(b, 16)))
				assert.Equal(t, b, Unpad(PadISO10126With(b, 16, RandomSecure)))
				assert.Equal(t, b, Unpad(PadZero(b, 16)))
			}
		}(uint64(i))
	}
	wg.Wait()
}
