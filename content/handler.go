package content

import (
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/always-cache/conditional-get/rfc9110"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"
)

const (
	maxBodySize        = 10 << 20
	defaultContentType = "application/octet-stream"
)

// Handler exposes a Provider over HTTP.
type Handler struct {
	store Provider
	now   func() time.Time
}

// NewHandler returns a handler for store.
func NewHandler(store Provider) *Handler {
	return &Handler{store: store, now: time.Now}
}

// Routes returns the router serving the store:
//
//	GET /        list of keys, one per line
//	GET /{key}   the document (also HEAD)
//	PUT /{key}   store the request body
//	DELETE /{key}
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.list)
	r.Get("/{key}", h.get)
	r.Head("/{key}", h.get)
	r.Put("/{key}", h.put)
	r.Delete("/{key}", h.delete)
	return r
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	var keys strings.Builder
	if err := h.store.Keys(func(key string) {
		keys.WriteString(key)
		keys.WriteString("\n")
	}); err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("Could not list content")
		http.Error(w, "Could not list content", http.StatusInternalServerError)
		return
	}
	w.Header().Set(rfc9110.ContentType, "text/plain; charset=utf-8")
	io.WriteString(w, keys.String())
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	item, ok, err := h.store.Get(key)
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Str("key", key).Msg("Could not read content")
		http.Error(w, "Could not read content", http.StatusInternalServerError)
		return
	}
	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set(rfc9110.ContentType, item.ContentType)
	w.Header().Set(rfc9110.ContentLength, strconv.Itoa(len(item.Body)))
	w.Header().Set(rfc9110.LastModified, rfc9110.ToHttpDate(item.Modified))
	w.Header().Set(rfc9110.ETag, item.ETag())
	w.WriteHeader(http.StatusOK)
	if r.Method != http.MethodHead {
		w.Write(item.Body)
	}
}

func (h *Handler) put(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err != nil {
		http.Error(w, "Could not read request body", http.StatusRequestEntityTooLarge)
		return
	}
	item := Item{
		ContentType: r.Header.Get(rfc9110.ContentType),
		Modified:    h.now().UTC().Truncate(time.Second),
		Body:        body,
	}
	if item.ContentType == "" {
		item.ContentType = defaultContentType
	}
	if err := h.store.Put(key, item); err != nil {
		hlog.FromRequest(r).Error().Err(err).Str("key", key).Msg("Could not store content")
		http.Error(w, "Could not store content", http.StatusInternalServerError)
		return
	}
	hlog.FromRequest(r).Debug().Str("key", key).Int("size", len(body)).Msg("Stored content")
	w.Header().Set(rfc9110.LastModified, rfc9110.ToHttpDate(item.Modified))
	w.Header().Set(rfc9110.ETag, item.ETag())
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	if err := h.store.Purge(key); err != nil {
		hlog.FromRequest(r).Error().Err(err).Str("key", key).Msg("Could not delete content")
		http.Error(w, "Could not delete content", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
