package auth

import (
	"crypto/rand"
	"math/big"
)

const (
	upperChars  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowerChars  = "abcdefghijklmnopqrstuvwxyz"
	digitChars  = "0123456789"
	symbolChars = "@#$%"
	allChars    = lowerChars + upperChars + digitChars + symbolChars
)

// TempPasswordLength is the default length of generated reset passwords.
const TempPasswordLength = 8

// GenerateTempPassword produces a random password of the given length
// (minimum 4) guaranteed to contain at least one uppercase letter, one
// lowercase letter, one digit and one symbol from @#$%. The remaining
// positions are drawn uniformly from the full charset and the result is
// shuffled so the guaranteed characters are not positionally predictable.
//
// Randomness comes from crypto/rand throughout: the output is a one-time
// credential.
func GenerateTempPassword(length int) (string, error) {
	if length < 4 {
		length = 4
	}

	out := make([]byte, 0, length)

	for _, set := range []string{upperChars, lowerChars, digitChars, symbolChars} {
		ch, err := randomByte(set)
		if err != nil {
			return "", err
		}
		out = append(out, ch)
	}

	for len(out) < length {
		ch, err := randomByte(allChars)
		if err != nil {
			return "", err
		}
		out = append(out, ch)
	}

	if err := shuffle(out); err != nil {
		return "", err
	}
	return string(out), nil
}

func randomByte(charset string) (byte, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
	if err != nil {
		return 0, err
	}
	return charset[n.Int64()], nil
}

// shuffle is a Fisher-Yates shuffle driven by crypto/rand.
func shuffle(b []byte) error {
	for i := len(b) - 1; i > 0; i-- {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return err
		}
		j := n.Int64()
		b[i], b[j] = b[j], b[i]
	}
	return nil
}
