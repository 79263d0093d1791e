// Package twofa generates the short-lived numeric codes used by the login
// second factor. Codes are HOTP values over a random secret and counter, so
// each challenge gets an independent six-digit code.
package twofa

import (
	"crypto/rand"
	"encoding/base32"
	"encoding/binary"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/hotp"
)

const secretSize = 20

type Generator struct {
	digits otp.Digits
}

func NewGenerator() *Generator {
	return &Generator{digits: otp.DigitsSix}
}

// NewCode returns a fresh six-digit challenge code
func (g *Generator) NewCode() (string, error) {
	buf := make([]byte, secretSize+8)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}

	secret := base32.StdEncoding.EncodeToString(buf[:secretSize])
	counter := binary.BigEndian.Uint64(buf[secretSize:])

	return g.codeFor(secret, counter)
}

func (g *Generator) codeFor(secret string, counter uint64) (string, error) {
	return hotp.GenerateCodeCustom(secret, counter, hotp.ValidateOpts{
		Digits:    g.digits,
		Algorithm: otp.AlgorithmSHA1,
	})
}
