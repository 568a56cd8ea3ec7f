package random

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"
)

const upperAlphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// OTP returns a 6-character upper-case hex code.
func OTP() (string, error) {
	b := make([]byte, 3)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	return strings.ToUpper(hex.EncodeToString(b)), nil
}

// TransactionID returns 10 random upper-case alphanumerics.
func TransactionID() (string, error) {
	return String(10, upperAlphanumeric)
}

func String(n int, alphabet string) (string, error) {
	if n <= 0 || alphabet == "" {
		return "", fmt.Errorf("invalid length %d or empty alphabet", n)
	}
	max := big.NewInt(int64(len(alphabet)))
	var sb strings.Builder
	sb.Grow(n)
	for i := 0; i < n; i++ {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("pick random index: %w", err)
		}
		sb.WriteByte(alphabet[idx.Int64()])
	}
	return sb.String(), nil
}
