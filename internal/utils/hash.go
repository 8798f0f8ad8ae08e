package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// fingerprintLength is the number of hex characters kept
const fingerprintLength = 12

// Fingerprint returns a short stable digest of source
func Fingerprint(source string) string {
	sum := sha256.Sum256([]byte(source))
	return hex.EncodeToString(sum[:])[:fingerprintLength]
}
