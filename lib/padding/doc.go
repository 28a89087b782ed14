// Package padding implements reversible block padding for block ciphers such
// as AES and SM4.
//
// # Schemes
//
//   - PKCS#7: N bytes each valued N, N in [1, blockLen]
//   - PKCS#5: PKCS#7 with an 8 byte block
//   - ISO 10126: N-1 random bytes followed by one byte valued N
//   - Zero: N zero bytes
//
// A block aligned input always receives a full extra block of padding.
// Length bytes are stored modulo 256, so block lengths above 255 wrap.
//
// # Unpadding
//
// Unpad reverses all four schemes without being told which one was used.
// A non-zero last byte is taken as the pad length; a zero last byte means
// zero padding, whose trailing zeros are removed according to a
// TailZeroMode. Zero padding is ambiguous when the original data ends in
// 0x00; TailZeroKeepOne keeps one zero byte for that case.
//
// # Degenerate input
//
// Nothing in this package returns an error. A nil buffer stays nil, a
// non-positive block length returns the input slice itself, and an unpad
// whose length byte exceeds the buffer returns the input unchanged.
//
// # Random sources
//
// ISO 10126 filler comes from a Source. RandomFast builds a PCG generator
// per call, RandomSecure reads the system CSPRNG, and SeededSource gives a
// reproducible ChaCha20 keystream for tests and vectors.
//
// All functions are safe for concurrent use.
package padding
