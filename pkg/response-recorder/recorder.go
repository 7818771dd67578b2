package recorder

import (
	"bytes"
	"io"
	"net/http"
	"strconv"
)

// ResponseRecorder is an http.ResponseWriter that holds the response
// of a handler in memory instead of sending it, so that it can be
// inspected and rewritten before it reaches the client.
type ResponseRecorder struct {
	b            *bytes.Buffer
	header       http.Header
	written      http.Header
	status       int
	wroteHeaders bool
}

// Implementation of http.ResponseWriter
func (t *ResponseRecorder) Header() http.Header {
	return t.header
}

// Implementation of http.ResponseWriter
func (t *ResponseRecorder) WriteHeader(statusCode int) {
	// only the first call counts, like with the real thing
	if t.wroteHeaders {
		return
	}
	t.wroteHeaders = true
	t.status = statusCode
	// headers set after this point are not sent
	t.written = t.header.Clone()
}

// Implementation of http.ResponseWriter
func (t *ResponseRecorder) Write(b []byte) (int, error) {
	// write headers if not already written
	if !t.wroteHeaders {
		t.WriteHeader(http.StatusOK)
	}
	return t.b.Write(b)
}

// StatusCode returns the status code of the response.
// A handler that wrote nothing at all has responded with 200.
func (t *ResponseRecorder) StatusCode() int {
	if !t.wroteHeaders {
		return http.StatusOK
	}
	return t.status
}

// Body returns the recorded body.
func (t *ResponseRecorder) Body() []byte {
	return t.b.Bytes()
}

// Result returns the recorded response as a response to r.
func (t *ResponseRecorder) Result(r *http.Request) *http.Response {
	status := t.StatusCode()
	header := t.header
	if t.wroteHeaders {
		header = t.written
	}
	res := &http.Response{
		Status:        strconv.Itoa(status) + " " + http.StatusText(status),
		StatusCode:    status,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        header.Clone(),
		Body:          io.NopCloser(bytes.NewReader(t.b.Bytes())),
		ContentLength: int64(t.b.Len()),
		Request:       r,
	}
	return res
}

// NewResponseRecorder returns a new ResponseRecorder.
func NewResponseRecorder() *ResponseRecorder {
	return &ResponseRecorder{
		b:      &bytes.Buffer{},
		header: http.Header{},
	}
}

// Send writes res to w, replacing any value w already holds for the
// fields res carries. It returns the number of body bytes written.
func Send(w http.ResponseWriter, res *http.Response) (int64, error) {
	copyHeader(w.Header(), res.Header)
	w.WriteHeader(res.StatusCode)
	if res.Body == nil {
		return 0, nil
	}
	defer res.Body.Close()
	return io.Copy(w, res.Body)
}

func copyHeader(dst, src http.Header) {
	for k, vv := range src {
		dst[k] = append(dst[k][:0:0], vv...)
	}
}
