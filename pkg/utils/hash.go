// Package utils holds small helpers shared across packages.
package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// Fingerprint returns a short stable digest of the input. Log lines carry it
// so evaluations of the same resume can be correlated without recording the
// resume text itself.
func Fingerprint(input string) string {
	sum := sha256.Sum256([]byte(input))
	return hex.EncodeToString(sum[:])[:12]
}
