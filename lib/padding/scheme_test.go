package padding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScheme(t *testing.T) {
	testCases := []struct {
		name string
		want Scheme
	}{
		{"pkcs7", SchemePKCS7},
		{"PKCS#7", SchemePKCS7},
		{"pkcs5", SchemePKCS5},
		{"PKCS#5", SchemePKCS5},
		{"iso10126", SchemeISO10126},
		{"ISO-10126", SchemeISO10126},
		{"zero", SchemeZero},
		{" Zeros ", SchemeZero},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseScheme(tc.name)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseSchemeUnknown(t *testing.T) {
	_, err := ParseScheme("ansix923")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownScheme)
	assert.Contains(t, err.Error(), "ansix923")
}

func TestSchemeStringRoundTrip(t *testing.T) {
	for _, s := range Schemes() {
		got, err := ParseScheme(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
	assert.Equal(t, "unknown", Scheme(99).String())
}

func TestPadDispatch(t *testing.T) {
	assert.Equal(t, "AA0F0F0F0F0F0F0F0F0F0F0F0F0F0F0F", base16(Pad(SchemePKCS7, original1, 16, RandomFast)))
	assert.Equal(t, "AA07070707070707", base16(Pad(SchemePKCS5, original1, 16, RandomFast)), "pkcs5 ignores block length")
	assert.Equal(t, "AA000000", base16(Pad(SchemeZero, original1, 4, RandomFast)))

	iso := Pad(SchemeISO10126, original1, 4, RandomSecure)
	require.Len(t, iso, 4)
	assert.Equal(t, byte(3), iso[3])

	unknown := Pad(Scheme(99), original1, 4, RandomFast)
	assert.Same(t, &original1[0], &unknown[0])
}
