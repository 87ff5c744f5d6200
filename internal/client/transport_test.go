package client

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tribeworks/loanflow/internal/session"
)

func TestAuthorizeRequest(t *testing.T) {
	ses := &session.Session{
		Username:  "testuser",
		Token:     "token-123",
		TokenType: "Bearer",
	}

	tests := []struct {
		name       string
		path       string
		ses        *session.Session
		wantHeader string
	}{
		{name: "protected endpoint with session", path: "/api/loans/start", ses: ses, wantHeader: "Bearer token-123"},
		{name: "unprotected endpoint with session", path: "/actuator/health", ses: ses, wantHeader: ""},
		{name: "protected endpoint without session", path: "/api/loans/start", ses: nil, wantHeader: ""},
		{name: "protected endpoint with tokenless session", path: "/api/loans/start", ses: &session.Session{Username: "testuser"}, wantHeader: ""},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodPost, "http://localhost:8080"+test.path, nil)
			authorized := AuthorizeRequest(request, test.ses)
			assert.Equal(t, test.wantHeader, authorized.Header.Get("Authorization"))
		})
	}
}

func TestAuthorizeRequestDoesNotMutateOriginal(t *testing.T) {
	ses := &session.Session{Username: "testuser", Token: "token-123"}
	request := httptest.NewRequest(http.MethodPost, "http://localhost:8080/api/loans/start", nil)

	authorized := AuthorizeRequest(request, ses)
	require.NotSame(t, request, authorized)
	assert.Empty(t, request.Header.Get("Authorization"))
}

func TestTransportUsesSessionSnapshotPerRequest(t *testing.T) {
	var seen []string
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		seen = append(seen, request.Header.Get("Authorization"))
	}))
	defer server.Close()

	var ses *session.Session
	httpClient := &http.Client{
		Transport: &Transport{
			Sessions: func() *session.Session { return ses },
		},
	}

	// Logged out: no header attached
	response, err := httpClient.Get(server.URL + "/api/loans")
	require.NoError(t, err)
	response.Body.Close()

	// Logged in: the new snapshot is picked up without rebuilding the client
	ses = &session.Session{Username: "testuser", Token: "token-123"}
	response, err = httpClient.Get(server.URL + "/api/loans")
	require.NoError(t, err)
	response.Body.Close()

	require.Len(t, seen, 2)
	assert.Equal(t, "", seen[0])
	assert.Equal(t, "Bearer token-123", seen[1])
}
