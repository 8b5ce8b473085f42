package smallvec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPackGroup(t *testing.T) {
	tests := []struct {
		name  string
		input uint64
		want  uint8
	}{
		{
			name:  "All clear",
			input: 0x0000000000000000,
			want:  0x00,
		},
		{
			name:  "All set",
			input: 0x0101010101010101,
			want:  0xFF,
		},
		{
			name:  "First cell",
			input: 0x0000000000000001,
			want:  0x01,
		},
		{
			name:  "Last cell",
			input: 0x0100000000000000,
			want:  0x80,
		},
		{
			name:  "Alternating",
			input: 0x0001000100010001,
			want:  0x55,
		},
		{
			name:  "Mixed",
			input: 0x0100000001010001,
			want:  0x8D,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := packGroup(tt.input)
			require.Equal(t, tt.want, got, "packGroup(0x%016X) = 0x%02X, want 0x%02X", tt.input, got, tt.want)
			require.Equal(t, tt.input, spreadGroup(tt.want))
		})
	}
}

func TestSpreadGroup_AllBytes(t *testing.T) {
	for b := range 256 {
		group := spreadGroup(uint8(b))
		require.Zero(t, group&^bitsetLSB, "byte 0x%02X", b)
		require.Equal(t, uint8(b), packGroup(group))
	}
}
