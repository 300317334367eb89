package checkout

import "math/rand"

const (
	referencePrefix   = "BK"
	referenceLength   = 9
	referenceAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// GenerateReference produces a display booking reference: "BK" followed by
// nine uppercase alphanumerics. It is a human-shareable identifier, not a
// primary key; collisions are tolerated. The machine stores the result on
// the context exactly once, so repeated reads never regenerate it.
func GenerateReference() string {
	b := make([]byte, referenceLength)
	for i := range b {
		b[i] = referenceAlphabet[rand.Intn(len(referenceAlphabet))]
	}
	return referencePrefix + string(b)
}
