package conditionalget

import (
	"net/http"

	recorder "github.com/always-cache/conditional-get/pkg/response-recorder"
	responsetransformer "github.com/always-cache/conditional-get/pkg/response-transformer"
	"github.com/always-cache/conditional-get/rfc9110"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
)

type Config struct {
	// Logger to use. A console logger is used if nil.
	Logger *zerolog.Logger
	// Optional header rules, applied to successful responses
	// before they are checked for freshness.
	// Use them e.g. for adding Cache-Control to static content.
	Rules responsetransformer.Rules
}

// ConditionalGet answers conditional GET and HEAD requests with
// 304 (Not Modified) when the client already holds the response
// produced by the wrapped handler.
type ConditionalGet struct {
	log      zerolog.Logger
	pipeline Pipeline
}

// New creates a ConditionalGet instance from config.
func New(config Config) *ConditionalGet {
	// use console logger if not specified in config
	var logger zerolog.Logger
	if config.Logger == nil {
		logger = zerolog.New(zerolog.NewConsoleWriter())
	} else {
		logger = *config.Logger
	}

	c := &ConditionalGet{
		log: logger.With().Str("component", "conditional-get").Logger(),
	}
	if len(config.Rules) > 0 {
		c.pipeline = append(c.pipeline, config.Rules)
	}
	c.pipeline = append(c.pipeline, c)
	return c
}

// Process implements Processor.
// A 200 response to a GET or HEAD request whose validators show the
// client is up to date becomes an empty 304. Every other response is
// returned untouched.
func (c *ConditionalGet) Process(r *http.Request, res *http.Response) *http.Response {
	if !rfc9110.Conditional(r.Method) || res.StatusCode != http.StatusOK {
		return res
	}
	logger := c.getLogger(r)
	if !rfc9110.IsFresh(r.Header, res.Header) {
		logger.Trace().Str("url", r.URL.String()).Msg("Passing response through")
		return res
	}
	logger.Trace().
		Str("url", r.URL.String()).
		Str("etag", rfc9110.ConcatValues(res.Header, rfc9110.ETag)).
		Str("lastModified", rfc9110.ConcatValues(res.Header, rfc9110.LastModified)).
		Msg("Response not modified")
	rfc9110.NotModified(res)
	return res
}

// Middleware wraps next. Responses to GET and HEAD requests are held
// back until they have been through the pipeline; other requests are
// passed straight through.
func (c *ConditionalGet) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rfc9110.Conditional(r.Method) {
			next.ServeHTTP(w, r)
			return
		}
		rec := recorder.NewResponseRecorder()
		next.ServeHTTP(rec, r)
		res := c.pipeline.Process(r, rec.Result(r))
		bytesWritten, err := recorder.Send(w, res)
		if err != nil {
			c.getLogger(r).Error().Err(err).Msg("Could not write response body to client")
			return
		}
		c.getLogger(r).Trace().Msgf("Wrote body (%d bytes)", bytesWritten)
	})
}

// getLogger returns the logger from the request context.
// If no logger is found, the instance logger is used.
func (c *ConditionalGet) getLogger(r *http.Request) *zerolog.Logger {
	logger := hlog.FromRequest(r)
	if logger.GetLevel() == zerolog.Disabled {
		return &c.log
	}
	return logger
}
