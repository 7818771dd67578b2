package rfc9110

import "unicode/utf8"

// §  13.1.  Preconditions
// §
// §     The following request header fields can be used to define
// §     preconditions on request evaluation.
// §
// §  13.1.2.  If-None-Match
// §
// §     The "If-None-Match" header field makes the request method conditional
// §     on a recipient cache or origin server either not having any current
// §     representation of the target resource, when the field value is "*",
// §     or having a selected representation with an entity tag that does not
// §     match any of those listed in the field value.
// §
// §  13.1.3.  If-Modified-Since
// §
// §     The "If-Modified-Since" header field makes a GET or HEAD request
// §     method conditional on the selected representation's modification date
// §     being more recent than the date provided in the field value.

// IsFresh reports whether the client that sent req already holds the
// representation described by res, so that 304 (Not Modified) may be sent.
//
// Both validator classes must agree:
//   - If-Modified-Since must not be older than Last-Modified. A missing or
//     non-UTF-8 If-Modified-Since passes; a missing or unusable
//     Last-Modified fails.
//   - If-None-Match must equal ETag byte for byte. Two empty values match.
//
// A request without either validator is never fresh. An If-Modified-Since
// that is not a valid HTTP-date makes the request not fresh regardless of
// the entity tags.
func IsFresh(req, res Header) bool {
	modifiedSince := ConcatValues(req, IfModifiedSince)
	noneMatch := ConcatValues(req, IfNoneMatch)

	if modifiedSince == "" && noneMatch == "" {
		return false
	}

	var unmodified bool
	if !utf8.ValidString(modifiedSince) || modifiedSince == "" {
		unmodified = true
	} else {
		since, err := HttpDate(modifiedSince)
		if err != nil {
			return false
		}
		unmodified = unmodifiedSince(since.Unix(), res)
	}

	return unmodified && etagMatches(noneMatch, res)
}

func unmodifiedSince(since int64, res Header) bool {
	value := ConcatValues(res, LastModified)
	if !utf8.ValidString(value) {
		return false
	}
	lastModified, err := HttpDate(value)
	if err != nil {
		return false
	}
	return since >= lastModified.Unix()
}

func etagMatches(noneMatch string, res Header) bool {
	return ConcatValues(res, ETag) == noneMatch
}
