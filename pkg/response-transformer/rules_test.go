package responsetransformer

import (
	"net/http"
	"testing"
)

func TestRuleFinder(t *testing.T) {
	makeReq := func(method, path string) *http.Request {
		req, _ := http.NewRequest(method, path, nil)
		return req
	}

	rules := Rules{
		Rule{Prefix: "/wp-", Override: "no-cache"},
		Rule{Path: "/search", Query: map[string]string{"q": ""}, Override: "max-age=10"},
		Rule{Override: "default"},
	}

	if rule := rules.find(makeReq("GET", "/")); rule == nil || rule.Override != "default" {
		t.Fatal("Incorrect rule")
	}
	if rule := rules.find(makeReq("HEAD", "/")); rule == nil || rule.Override != "default" {
		t.Fatal("Incorrect rule")
	}
	if rule := rules.find(makeReq("GET", "/wp-admin")); rule == nil || rule.Override != "no-cache" {
		t.Fatal("Incorrect rule")
	}
	if rule := rules.find(makeReq("POST", "/wp-admin")); rule != nil {
		t.Fatal("Incorrect rule")
	}
	if rule := rules.find(makeReq("GET", "/search?q=go")); rule == nil || rule.Override != "max-age=10" {
		t.Fatal("Incorrect rule")
	}
	if rule := rules.find(makeReq("GET", "/search")); rule == nil || rule.Override != "default" {
		t.Fatal("Incorrect rule")
	}
}

func TestApply(t *testing.T) {
	res := &http.Response{Header: make(http.Header)}
	ruleDefault := Rule{Default: "default"}
	ruleOverride := Rule{Override: "override", Headers: map[string]string{"X-Rule": "1"}}

	// try to apply default
	ruleDefault.apply(res.Header)
	if cc := res.Header.Get("Cache-Control"); cc != "default" {
		t.Fatalf("Cache-Control header wrong, is '%s'", cc)
	}

	// change cc and check default is not set
	res.Header.Set("Cache-Control", "no-cache")
	ruleDefault.apply(res.Header)
	if cc := res.Header.Get("Cache-Control"); cc != "no-cache" {
		t.Fatalf("Cache-Control header wrong, is '%s'", cc)
	}

	// check that override works
	ruleOverride.apply(res.Header)
	if cc := res.Header.Get("Cache-Control"); cc != "override" {
		t.Fatalf("Cache-Control header wrong, is '%s'", cc)
	}
	if h := res.Header.Get("X-Rule"); h != "1" {
		t.Fatalf("X-Rule header wrong, is '%s'", h)
	}
}

func TestProcessOnlySuccess(t *testing.T) {
	req, _ := http.NewRequest("GET", "/", nil)
	rules := Rules{Rule{Default: "max-age=60"}}

	res := rules.Process(req, &http.Response{StatusCode: http.StatusNotFound, Header: make(http.Header)})
	if cc := res.Header.Get("Cache-Control"); cc != "" {
		t.Fatalf("Cache-Control header set on 404: '%s'", cc)
	}

	res = rules.Process(req, &http.Response{StatusCode: http.StatusOK, Header: make(http.Header)})
	if cc := res.Header.Get("Cache-Control"); cc != "max-age=60" {
		t.Fatalf("Cache-Control header wrong, is '%s'", cc)
	}
}

func TestRuleMethodAndQueryValue(t *testing.T) {
	rules := Rules{
		Rule{Method: "POST", Prefix: "/api/", Headers: map[string]string{"X-Rule": "post"}},
		Rule{Query: map[string]string{"v": "2"}, Headers: map[string]string{"X-Rule": "v2"}},
	}

	req, _ := http.NewRequest("POST", "/api/items", nil)
	if rule := rules.find(req); rule == nil || rule.Headers["X-Rule"] != "post" {
		t.Fatal("Incorrect rule")
	}
	req, _ = http.NewRequest("GET", "/api/items", nil)
	if rule := rules.find(req); rule != nil {
		t.Fatal("Incorrect rule")
	}
	req, _ = http.NewRequest("GET", "/?v=2", nil)
	if rule := rules.find(req); rule == nil || rule.Headers["X-Rule"] != "v2" {
		t.Fatal("Incorrect rule")
	}
	req, _ = http.NewRequest("GET", "/?v=1", nil)
	if rule := rules.find(req); rule != nil {
		t.Fatal("Incorrect rule")
	}
}
