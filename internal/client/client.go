package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/tribeworks/loanflow/internal/session"
)

// SessionFunc returns the current session snapshot, or nil when logged out
type SessionFunc func() *session.Session

// Client talks to the loan API backend.
// All requests targeting protected endpoints are authorized by the transport
// using the session snapshot provided by the SessionFunc.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a new API client for the given base URL.
// The sessions function may be nil; the client then never authorizes requests.
func New(baseURL string, sessions SessionFunc) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http: &http.Client{
			Transport: &Transport{
				Sessions: sessions,
			},
		},
	}
}

// BaseURL returns the configured API base URL
func (client *Client) BaseURL() string {
	return client.baseURL
}

func (client *Client) do(request *http.Request) (*http.Response, error) {
	return client.http.Do(request)
}

func decodeJSON(response *http.Response, target any) error {
	defer response.Body.Close()
	body, err := io.ReadAll(response.Body)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, target); err != nil {
		return fmt.Errorf("unexpected response body: %w", err)
	}
	return nil
}

func newRequest(ctx context.Context, method, url string, body io.Reader) (*http.Request, error) {
	request, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	return request, nil
}
