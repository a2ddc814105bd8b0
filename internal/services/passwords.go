package services

import (
	"crypto/rand"
	"math/big"
	"unicode"

	"github.com/propease/propease-api/internal/apperrors"
)

const minPasswordLength = 8

// GenerateTempPassword returns a random password of length n (at least 8)
// with at least one digit, one upper case letter and one symbol
func GenerateTempPassword(n int) (string, error) {
	const (
		digits  = "23456789"
		uppers  = "ABCDEFGHJKLMNPQRSTUVWXYZ" // no I or O
		lowers  = "abcdefghijkmnpqrstuvwxyz"
		symbols = "!@#$%&*"
	)
	if n < minPasswordLength {
		n = minPasswordLength
	}

	result := make([]byte, n)
	for i, charset := range []string{digits, uppers, symbols} {
		c, err := pick(charset)
		if err != nil {
			return "", err
		}
		result[i] = c
	}
	all := digits + uppers + lowers + symbols
	for i := 3; i < n; i++ {
		c, err := pick(all)
		if err != nil {
			return "", err
		}
		result[i] = c
	}

	for i := len(result) - 1; i > 0; i-- {
		j, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return "", err
		}
		result[i], result[j.Int64()] = result[j.Int64()], result[i]
	}
	return string(result), nil
}

// ValidatePassword enforces the password policy for staff accounts
func ValidatePassword(password string) error {
	if len(password) < minPasswordLength {
		return apperrors.FieldValidation("password", "Password must be at least 8 characters")
	}
	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasLetter || !hasDigit {
		return apperrors.FieldValidation("password", "Password must contain letters and numbers")
	}
	return nil
}

func pick(charset string) (byte, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
	if err != nil {
		return 0, err
	}
	return charset[n.Int64()], nil
}
