package client

import (
	"net/http"

	"github.com/dmitrijs2005/emergencyhelp/internal/common"
	"github.com/google/uuid"
)

// authTransport is the outgoing-request hook: every request gets the current
// bearer token (when there is one) and a request ID.
type authTransport struct {
	base   http.RoundTripper
	tokens TokenSource
}

func newAuthTransport(base http.RoundTripper, tokens TokenSource) *authTransport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &authTransport{base: base, tokens: tokens}
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	r := req.Clone(req.Context())

	if t.tokens != nil {
		if token := t.tokens.Token(); token != "" {
			r.Header.Set(common.AuthorizationHeaderName, "Bearer "+token)
		}
	}
	if r.Header.Get(common.RequestIDHeaderName) == "" {
		r.Header.Set(common.RequestIDHeaderName, uuid.NewString())
	}

	return t.base.RoundTrip(r)
}
