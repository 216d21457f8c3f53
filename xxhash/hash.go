// Package xxhash fingerprints meeting content with xxHash.
package xxhash

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// ContentHash returns the hex xxHash64 of content. Harvests and storage
// both use it for Meeting.ContentHash so changed pages can be spotted.
func ContentHash(content string) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(content))
}
