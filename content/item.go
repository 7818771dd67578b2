// Package content is a small keyed document store with an HTTP front end.
// Served documents carry ETag and Last-Modified so that clients can
// revalidate them with conditional requests.
package content

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Item is a stored document.
type Item struct {
	ContentType string
	// Modified has whole-second precision, like HTTP dates.
	Modified time.Time
	Body     []byte
}

// ETag returns a strong entity tag derived from the body.
func (i Item) ETag() string {
	sum := sha256.Sum256(i.Body)
	return `"` + hex.EncodeToString(sum[:8]) + `"`
}
