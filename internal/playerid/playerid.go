package playerid

import (
	"crypto/rand"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
)

// Base32 alphabet (Crockford's base32, lowercase)
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// Length of an encoded id
const Length = 26

// Generator hands out player ids. The zero value reads from crypto/rand.
type Generator struct {
	random io.Reader
}

// NewGenerator creates a generator drawing randomness from r, or crypto/rand
// when r is nil
func NewGenerator(r io.Reader) *Generator {
	return &Generator{random: r}
}

// New creates a player id using crypto/rand
func New() string {
	return NewGenerator(nil).New()
}

// New creates a UUIDv7 and encodes it as a 26-character base32 string
func (g *Generator) New() string {
	r := g.random
	if r == nil {
		r = rand.Reader
	}

	id, err := uuid.NewV7FromReader(r)
	if err != nil {
		panic("failed to generate player id: " + err.Error())
	}
	return encodeBase32(id)
}

// encodeBase32 encodes 128 bits as 26 base32 characters, most significant
// bits first, padding the final character with zero bits
func encodeBase32(data [16]byte) string {
	result := make([]byte, Length)

	for i := range Length {
		bitOffset := i * 5
		byteIndex := bitOffset / 8
		bitIndex := bitOffset % 8

		var value uint8
		if bitIndex <= 3 {
			value = (data[byteIndex] >> (3 - bitIndex)) & 0x1f
		} else {
			value = (data[byteIndex] << (bitIndex - 3)) & 0x1f
			if byteIndex+1 < len(data) {
				value |= data[byteIndex+1] >> (11 - bitIndex)
			}
		}

		result[i] = alphabet[value]
	}

	return string(result)
}

// Validate checks that id looks like something New produced
func Validate(id string) error {
	if len(id) != Length {
		return fmt.Errorf("player id must be exactly %d characters, got %d", Length, len(id))
	}

	for i, char := range id {
		if !strings.ContainsRune(alphabet, char) {
			return fmt.Errorf("invalid character %c at position %d", char, i)
		}
	}

	return nil
}
