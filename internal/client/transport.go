package client

import (
	"net/http"
	"strings"

	"github.com/tribeworks/loanflow/internal/session"
)

// protectedPathMarker identifies requests that target protected API endpoints
const protectedPathMarker = "/api/"

// AuthorizeRequest decides whether to attach the bearer token to an outgoing request.
//
// It is a pure function of (request, session): if a usable session is present and the
// request targets a protected endpoint, it returns a clone carrying the
// 'Authorization: Bearer <token>' header; otherwise the request passes through
// unchanged. A malformed session counts as no session, so the request proceeds
// unauthenticated rather than failing.
func AuthorizeRequest(request *http.Request, ses *session.Session) *http.Request {
	if !ses.Valid() {
		return request
	}
	if !strings.Contains(request.URL.Path, protectedPathMarker) {
		return request
	}
	authorized := request.Clone(request.Context())
	authorized.Header.Set("Authorization", "Bearer "+ses.Token)
	return authorized
}

// Transport composes AuthorizeRequest into the outgoing call path of an http.Client
type Transport struct {
	// Base is the underlying round tripper. http.DefaultTransport is used when nil.
	Base http.RoundTripper

	// Sessions provides the session snapshot per request. May be nil.
	Sessions SessionFunc
}

var _ http.RoundTripper = (*Transport)(nil)

// RoundTrip authorizes the request and delegates to the base round tripper
func (transport *Transport) RoundTrip(request *http.Request) (*http.Response, error) {
	base := transport.Base
	if base == nil {
		base = http.DefaultTransport
	}
	var ses *session.Session
	if transport.Sessions != nil {
		ses = transport.Sessions()
	}
	return base.RoundTrip(AuthorizeRequest(request, ses))
}
