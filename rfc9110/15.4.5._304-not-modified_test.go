package rfc9110

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotModified(t *testing.T) {
	res := &http.Response{
		StatusCode:    http.StatusOK,
		Header:        http.Header{},
		Body:          io.NopCloser(strings.NewReader("hello")),
		ContentLength: 5,
	}
	res.Header.Set("Content-Type", "text/plain")
	res.Header.Set("Content-Length", "5")
	res.Header.Set("ETag", "1234")
	res.Header.Set("Last-Modified", "Sun, 06 Nov 1994 08:49:37 GMT")
	res.Header.Set("Cache-Control", "max-age=60")

	NotModified(res)

	assert.Equal(t, http.StatusNotModified, res.StatusCode)
	assert.Empty(t, res.Header.Values("Content-Type"))
	assert.Empty(t, res.Header.Values("Content-Length"))
	assert.Equal(t, "1234", res.Header.Get("ETag"))
	assert.Equal(t, "Sun, 06 Nov 1994 08:49:37 GMT", res.Header.Get("Last-Modified"))
	assert.Equal(t, "max-age=60", res.Header.Get("Cache-Control"))
	assert.Zero(t, res.ContentLength)
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	assert.Empty(t, body)
}

func TestConditional(t *testing.T) {
	assert.True(t, Conditional(http.MethodGet))
	assert.True(t, Conditional(http.MethodHead))
	assert.False(t, Conditional(http.MethodPost))
	assert.False(t, Conditional(http.MethodPut))
	assert.False(t, Conditional("get"))
}
