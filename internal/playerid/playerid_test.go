package playerid

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	id := New()

	assert.Len(t, id, Length)
	assert.NoError(t, Validate(id))
}

func TestNewUnique(t *testing.T) {
	ids := make(map[string]bool)

	for range 100 {
		id := New()
		require.False(t, ids[id], "duplicate ID generated: %s", id)
		ids[id] = true
	}
}

func TestNewTimeSorted(t *testing.T) {
	var ids []string

	for range 10 {
		ids = append(ids, New())
		time.Sleep(time.Millisecond)
	}

	for i := 1; i < len(ids); i++ {
		assert.Negative(t, strings.Compare(ids[i-1], ids[i]), "IDs not sorted: %s >= %s", ids[i-1], ids[i])
	}
}

func TestGeneratorWithFixedRandomness(t *testing.T) {
	gen := NewGenerator(bytes.NewReader(bytes.Repeat([]byte{0xab}, 1024)))

	seen := make(map[string]bool)
	for range 3 {
		id := gen.New()
		require.NoError(t, Validate(id))
		assert.False(t, seen[id], "duplicate ID generated: %s", id)
		seen[id] = true
	}
}

func TestEncodeBase32(t *testing.T) {
	var zero [16]byte
	assert.Equal(t, strings.Repeat("0", Length), encodeBase32(zero))

	var ones [16]byte
	for i := range ones {
		ones[i] = 0xff
	}
	// 128 set bits followed by two bits of padding
	assert.Equal(t, strings.Repeat("z", Length-1)+"w", encodeBase32(ones))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{
			name:    "valid ID",
			id:      "01h5n0et5q6mt3v7ms1234abcd",
			wantErr: false,
		},
		{
			name:    "too short",
			id:      "01h5n0et5q6mt3v7ms123",
			wantErr: true,
		},
		{
			name:    "too long",
			id:      "01h5n0et5q6mt3v7ms1234abcdef",
			wantErr: true,
		},
		{
			name:    "invalid character",
			id:      "01h5n0et5q6mt3v7ms1234abci",
			wantErr: true,
		},
		{
			name:    "uppercase not allowed",
			id:      "01H5N0ET5Q6MT3V7MS1234ABCD",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.id)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAlphabet(t *testing.T) {
	require.Len(t, alphabet, 32)

	seen := make(map[rune]bool)
	for _, char := range alphabet {
		assert.False(t, seen[char], "duplicate character in alphabet: %c", char)
		seen[char] = true
	}

	for _, char := range "ilou" {
		assert.NotContains(t, alphabet, string(char))
	}
}
