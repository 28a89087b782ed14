package padding

import "testing"

func TestPadLen(t *testing.T) {
	tests := []struct {
		input    int
		blockLen int
		expected int
	}{
		{0, 8, 8},
		{1, 8, 7},
		{7, 8, 1},
		{8, 8, 8},
		{10, 8, 6},
		{16, 16, 16},
		{17, 16, 15},
		{5, 1, 1},
		{0, 300, 300},
		{5, 0, 0},
		{5, -4, 0},
	}

	for _, tt := range tests {
		if got := PadLen(tt.input, tt.blockLen); got != tt.expected {
			t.Errorf("PadLen(%d, %d) = %d; want %d", tt.input, tt.blockLen, got, tt.expected)
		}
	}
}

func TestPaddedLen(t *testing.T) {
	tests := []struct {
		input    int
		blockLen int
		expected int
	}{
		{0, 8, 8},
		{10, 8, 16},
		{16, 8, 24},
		{16, 10, 20},
		{5, 0, 5},
		{5, -1, 5},
	}

	for _, tt := range tests {
		if got := PaddedLen(tt.input, tt.blockLen); got != tt.expected {
			t.Errorf("PaddedLen(%d, %d) = %d; want %d", tt.input, tt.blockLen, got, tt.expected)
		}
	}
}

func TestLenByteTruncates(t *testing.T) {
	tests := []struct {
		padLen   int
		expected byte
	}{
		{1, 1},
		{255, 255},
		{256, 0},
		{257, 1},
		{300, 44},
	}

	for _, tt := range tests {
		if got := lenByte(tt.padLen); got != tt.expected {
			t.Errorf("lenByte(%d) = %d; want %d", tt.padLen, got, tt.expected)
		}
	}
}
