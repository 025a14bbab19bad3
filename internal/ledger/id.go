package ledger

import (
	"math/big"
	"strings"

	"github.com/google/uuid"
)

// IDLength is the width of every generated id. A 128-bit value needs at most
// 25 base-36 digits.
const IDLength = 25

// NewID returns a random v4 UUID rendered in lowercase base 36 and left
// padded with zeros.
func NewID() string {
	u := uuid.New()
	s := new(big.Int).SetBytes(u[:]).Text(36)
	if len(s) < IDLength {
		s = strings.Repeat("0", IDLength-len(s)) + s
	}
	return s
}
