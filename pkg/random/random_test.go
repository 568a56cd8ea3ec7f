package random

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOTP(t *testing.T) {
	re := regexp.MustCompile(`^[0-9A-F]{6}$`)
	for i := 0; i < 50; i++ {
		code, err := OTP()
		require.NoError(t, err)
		assert.Regexp(t, re, code)
	}
}

func TestTransactionID(t *testing.T) {
	re := regexp.MustCompile(`^[A-Z0-9]{10}$`)
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		id, err := TransactionID()
		require.NoError(t, err)
		assert.Regexp(t, re, id)
		seen[id] = struct{}{}
	}
	assert.Greater(t, len(seen), 95)
}

func TestString_InvalidInput(t *testing.T) {
	_, err := String(0, upperAlphanumeric)
	assert.Error(t, err)

	_, err = String(5, "")
	assert.Error(t, err)
}
