// Package cache memoizes extraction results within a process. Results are
// keyed by a digest of the source label and full text, so re-listing the
// same file in a batch run reuses the earlier extraction. Nothing is ever
// persisted to disk.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/termtrack/termtrack/internal/model"
)

// Cache stores extraction results by content key
type Cache interface {
	Get(key string) ([]model.Item, bool)
	Set(key string, items []model.Item, ttl time.Duration)
	Clear()
}

// Key derives the cache key for a (source, text) pair
func Key(source, text string) string {
	hash := sha256.New()
	hash.Write([]byte(source))
	hash.Write([]byte{0})
	hash.Write([]byte(text))
	return "termtrack:v1:" + hex.EncodeToString(hash.Sum(nil))
}
