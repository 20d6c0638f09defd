package id

import (
	"crypto/rand"
	"encoding/hex"
)

// Generator mints opaque identifiers. The gateway stamps one onto every
// outbound request so platform-side logs can be correlated with a client run.
type Generator interface {
	New() string
}

// RandomHex yields 32 lowercase hex characters per id.
type RandomHex struct{}

func (RandomHex) New() string {
	buf := make([]byte, 16)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}
