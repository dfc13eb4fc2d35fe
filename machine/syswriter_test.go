package machine

import "testing"

func TestEncodeChunk(t *testing.T) {
	tests := []struct {
		in           string
		data0, data1 uint32
		n            int
	}{
		{"", 0x0000_0000, 0x0000_0000, 0},
		{"a", 0x0000_6101, 0x0000_0000, 1},
		{"abc", 0x6362_6103, 0x0000_0000, 3},
		{"abcdefg", 0x6362_6107, 0x6766_6564, 7},
		{"abcdefghij", 0x6362_6107, 0x6766_6564, 7},
	}
	for _, tc := range tests {
		data0, data1, n := encodeChunk([]byte(tc.in))
		if data0 != tc.data0 || data1 != tc.data1 || n != tc.n {
			t.Errorf("%q: %#08x %#08x %d, expected %#08x %#08x %d",
				tc.in, data0, data1, n, tc.data0, tc.data1, tc.n)
		}
	}
}
