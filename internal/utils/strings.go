package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// GenerateOTPCode returns a uniformly random fixed-width 6-digit code.
func GenerateOTPCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", fmt.Errorf("failed to generate OTP code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// MaskName reduces a display name to its first character plus a mask.
// Already-masked names pass through unchanged.
func MaskName(name string) string {
	runes := []rune(name)
	if len(runes) == 0 {
		return name
	}
	masked := string(runes[0]) + "***"
	if name == masked {
		return name
	}
	return masked
}

// MaskPhone keeps the first three and last two digits of a phone number and
// masks the middle. Numbers too short to mask, and already-masked numbers,
// pass through unchanged.
func MaskPhone(phone string) string {
	if len(phone) < 6 {
		return phone
	}
	masked := phone[:3] + "***" + phone[len(phone)-2:]
	if phone == masked {
		return phone
	}
	return masked
}
