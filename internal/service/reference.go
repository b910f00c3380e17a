package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

const referenceAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// NewReference generates an external reference of the form
// REF-<6 random chars>-<unix timestamp>.
func NewReference() string {
	b := make([]byte, 6)
	max := big.NewInt(int64(len(referenceAlphabet)))
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails when the OS entropy source is broken
			n = big.NewInt(int64(i))
		}
		b[i] = referenceAlphabet[n.Int64()]
	}
	return fmt.Sprintf("REF-%s-%d", string(b), time.Now().Unix())
}
