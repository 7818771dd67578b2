package responsetransformer

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"
)

const cacheControl = "Cache-Control"

// Rules is an ordered list of header rules. The first matching rule is applied.
type Rules []Rule

// Rule sets response headers for matching requests.
// Empty match fields match everything.
type Rule struct {
	Prefix   string            `yaml:"prefix"`
	Path     string            `yaml:"path"`
	Method   string            `yaml:"method"`
	Default  string            `yaml:"default"`
	Override string            `yaml:"override"`
	Query    map[string]string `yaml:"query"`
	Headers  map[string]string `yaml:"headers"`
}

// Process applies the first rule matching req to res.
// Only successful responses are touched.
func (r Rules) Process(req *http.Request, res *http.Response) *http.Response {
	if res.StatusCode != http.StatusOK {
		return res
	}
	if rule := r.find(req); rule != nil {
		rule.apply(res.Header)
	}
	return res
}

func (r Rules) find(req *http.Request) *Rule {
	log.Trace().Msgf("Finding rule for request %s:%s", req.Method, req.URL.Path)
	for i := range r {
		if r[i].matches(req) {
			return &r[i]
		}
	}
	return nil
}

func (rule Rule) matches(req *http.Request) bool {
	switch {
	case rule.Method == "":
		// without a method, rules cover the safe methods only
		if req.Method != http.MethodGet && req.Method != http.MethodHead {
			return false
		}
	case rule.Method != req.Method:
		return false
	}
	if rule.Path != "" && rule.Path != req.URL.Path {
		return false
	}
	if !strings.HasPrefix(req.URL.Path, rule.Prefix) {
		return false
	}
	return rule.matchesQuery(req)
}

// matchesQuery checks the query constraints. An empty value only
// requires the parameter to be present.
func (rule Rule) matchesQuery(req *http.Request) bool {
	if len(rule.Query) == 0 {
		return true
	}
	qry := req.URL.Query()
	for name, want := range rule.Query {
		if !qry.Has(name) {
			return false
		}
		if want != "" && qry.Get(name) != want {
			return false
		}
	}
	return true
}

func (rule Rule) apply(header http.Header) {
	switch {
	case rule.Override != "":
		log.Trace().Str("value", rule.Override).Msg("Overriding Cache-Control header")
		header.Set(cacheControl, rule.Override)
	case rule.Default != "" && header.Get(cacheControl) == "":
		log.Trace().Str("value", rule.Default).Msg("Applying default Cache-Control header")
		header.Set(cacheControl, rule.Default)
	}
	for name, value := range rule.Headers {
		log.Trace().Msgf("Setting header %s", name)
		header.Set(name, value)
	}
}
