package utils

import (
	"crypto/rand"
	"math/big"
)

const confirmationAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateConfirmationCode returns an 8 character uppercase
// alphanumeric code. Uniqueness is not checked here; the bookings
// table carries a unique index on confirmation_id as the backstop for
// the one-in-36^8 collision.
func GenerateConfirmationCode() string {
	code := make([]byte, 8)
	max := big.NewInt(int64(len(confirmationAlphabet)))
	for i := range code {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand failing means the platform RNG is broken;
			// fall back to a fixed index rather than panic mid-request.
			code[i] = confirmationAlphabet[0]
			continue
		}
		code[i] = confirmationAlphabet[n.Int64()]
	}
	return string(code)
}
