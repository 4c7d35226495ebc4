package observability

import (
	"crypto/sha256"
	"encoding/hex"
)

const promptDigestLen = 8

// PromptDigest returns a short hex prefix of the prompt's SHA-256 hash.
// Log lines carry this digest instead of the prompt itself, so requests can
// be correlated without exposing prompt content.
func PromptDigest(prompt string) string {
	sum := sha256.Sum256([]byte(prompt))
	return hex.EncodeToString(sum[:])[:promptDigestLen]
}
