package domain

import (
	"crypto/sha256"
	"encoding/hex"
)

// ComputeID derives the cache slot identity for an input.
// A file is identified by its absolute path alone; an expression by its sorted
// dependencies followed by its text. The hex digest is truncated to IDDigestLen.
func ComputeID(input Input, sortedDeps []Dependency) string {
	h := sha256.New()
	input.writeFingerprint(h, sortedDeps)

	id := hex.EncodeToString(h.Sum(nil))
	if len(id) > IDDigestLen {
		id = id[:IDDigestLen]
	}
	return id
}
