package ratelimit

import (
	"net/http"
	"strings"
)

// unlimited is returned for endpoints that are never throttled.
var unlimited = Rule{}

// Match returns the rule for a request, or nil when the default limit applies.
// Exact paths win over prefix rules; GET /health is never limited.
func Match(method, path string, rules []Rule) *Rule {
	if method == http.MethodGet && path == "/health" {
		r := unlimited
		return &r
	}

	for i := range rules {
		if rules[i].Method == method && rules[i].Path == path {
			return &rules[i]
		}
	}

	for i := range rules {
		rule := &rules[i]
		if rule.Method == method && strings.HasSuffix(rule.Path, "/") && strings.HasPrefix(path, rule.Path) {
			return rule
		}
	}

	return nil
}
