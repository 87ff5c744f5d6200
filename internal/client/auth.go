package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/tribeworks/loanflow/internal/session"
)

type loginRequestPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponsePayload struct {
	Token    string `json:"token"`
	Type     string `json:"type"`
	Username string `json:"username"`
}

// Login exchanges the given credentials for a session at the auth API.
// A rejected login yields an *AuthenticationError carrying the server's message;
// the caller's session state is never touched by this method.
func (client *Client) Login(ctx context.Context, username, password string) (*session.Session, error) {
	payload, err := json.Marshal(loginRequestPayload{
		Username: username,
		Password: password,
	})
	if err != nil {
		return nil, err
	}

	request, err := newRequest(ctx, http.MethodPost, client.baseURL+"/api/auth/login", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	response, err := client.do(request)
	if err != nil {
		return nil, err
	}

	if response.StatusCode < 200 || response.StatusCode > 299 {
		defer response.Body.Close()
		message := "Invalid credentials"
		if body, err := io.ReadAll(response.Body); err == nil && len(body) > 0 {
			message = strings.TrimSpace(string(body))
		}
		return nil, &AuthenticationError{Message: message}
	}

	body := new(loginResponsePayload)
	if err := decodeJSON(response, body); err != nil {
		return nil, err
	}
	return &session.Session{
		Username:  body.Username,
		Token:     body.Token,
		TokenType: body.Type,
	}, nil
}
