package padding

// PadLen returns the number of bytes a block padding scheme appends to an
// input of inputLen bytes. The result is always in [1, blockLen]: an input
// that is already block aligned gets a full extra block.
// For example, PadLen(10, 8) returns 6 and PadLen(16, 8) returns 8.
//
// A non-positive blockLen means "do not pad" and yields 0.
func PadLen(inputLen, blockLen int) int {
	if blockLen <= 0 {
		return 0
	}
	return blockLen - inputLen%blockLen
}

// PaddedLen returns the total length after padding inputLen bytes to blockLen.
// For example, PaddedLen(10, 8) returns 16, as 16 is the next multiple of 8
// strictly greater than 10.
func PaddedLen(inputLen, blockLen int) int {
	return inputLen + PadLen(inputLen, blockLen)
}

// lenByte is the value written into a length-carrying padding byte.
// Block lengths above 255 wrap, since the pad length must fit one byte.
func lenByte(padLen int) byte {
	return byte(padLen)
}
