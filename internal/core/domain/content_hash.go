package domain

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// HashContent returns the hash recorded in metadata for a generated file.
func HashContent(content string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(content))
}
