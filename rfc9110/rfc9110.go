// Package rfc9110 holds the parts of HTTP Semantics needed to answer
// conditional GET and HEAD requests: field value concatenation,
// HTTP-date parsing and the freshness check behind 304 (Not Modified).
//
// The behavior of this package is kept compatible with existing
// deployments rather than with the letter of the RFC. Where the two
// differ, the function documentation says so.
package rfc9110

// Field names consulted by the conditional request logic.
const (
	IfModifiedSince = "If-Modified-Since"
	IfNoneMatch     = "If-None-Match"
	LastModified    = "Last-Modified"
	ETag            = "ETag"
	ContentType     = "Content-Type"
	ContentLength   = "Content-Length"
)
