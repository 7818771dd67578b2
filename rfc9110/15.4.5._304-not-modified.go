package rfc9110

import (
	"net/http"
)

// §  15.4.5.  304 Not Modified
// §
// §     The 304 (Not Modified) status code indicates that a conditional GET
// §     or HEAD request has been received and would have resulted in a 200
// §     (OK) response if it were not for the fact that the condition
// §     evaluated to false.  In other words, there is no need for the server
// §     to transfer a representation of the target resource because the
// §     request indicates that the client, which made the request
// §     conditional, already has a valid representation.

// Conditional reports whether a request with the given method may be
// answered with 304 (Not Modified).
func Conditional(method string) bool {
	return method == http.MethodGet || method == http.MethodHead
}

// NotModified turns res into a 304 (Not Modified) response.
// Content-Type and Content-Length are removed and the body is dropped.
// All other fields, validators and caching directives included, are kept.
// It directly mutates the response.
func NotModified(res *http.Response) {
	if res.Body != nil {
		res.Body.Close()
	}
	res.StatusCode = http.StatusNotModified
	res.Status = "304 Not Modified"
	res.Header.Del(ContentType)
	res.Header.Del(ContentLength)
	res.ContentLength = 0
	res.Body = http.NoBody
}
