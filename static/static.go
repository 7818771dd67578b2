// Package static serves files from a directory with the validators
// needed for conditional requests.
package static

import (
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/always-cache/conditional-get/rfc9110"

	"github.com/rs/zerolog/hlog"
)

const defaultContentType = "text/plain"

// Static is an http.Handler serving the files below a root directory.
// Every file is sent in full, with Content-Type, Content-Length and
// Last-Modified set. Directories and missing files are 404.
type Static struct {
	root string
}

// New returns a handler for the files below root.
func New(root string) *Static {
	return &Static{root: root}
}

// ServeHTTP implements the http.Handler interface.
func (s *Static) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := hlog.FromRequest(r)

	requestPath := strings.TrimPrefix(r.URL.Path, "/")
	if strings.Contains(requestPath, "..") {
		notFound(w)
		return
	}

	path := filepath.Join(s.root, filepath.FromSlash(requestPath))
	file, err := os.Open(path)
	if err != nil {
		notFound(w)
		return
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		logger.Error().Err(err).Str("path", path).Msg("Could not stat file")
		http.Error(w, "Could not read file", http.StatusInternalServerError)
		return
	}
	if info.IsDir() {
		notFound(w)
		return
	}

	w.Header().Set(rfc9110.ContentType, contentType(path))
	w.Header().Set(rfc9110.ContentLength, strconv.FormatInt(info.Size(), 10))
	w.Header().Set(rfc9110.LastModified, rfc9110.ToHttpDate(info.ModTime()))
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	if _, err := io.Copy(w, file); err != nil {
		logger.Error().Err(err).Str("path", path).Msg("Could not write file to client")
	}
}

// contentType guesses the media type from the file extension.
func contentType(path string) string {
	if ct := mime.TypeByExtension(filepath.Ext(path)); ct != "" {
		return ct
	}
	return defaultContentType
}

func notFound(w http.ResponseWriter) {
	w.Header().Set(rfc9110.ContentLength, "0")
	w.Header().Set(rfc9110.ContentType, defaultContentType)
	w.WriteHeader(http.StatusNotFound)
}
