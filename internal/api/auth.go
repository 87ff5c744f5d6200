package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tribeworks/loanflow/internal/api/schema"
)

var contextValueUsername = "username"

// invalidCredentialsBody is sent verbatim on rejected logins; the browser client
// surfaces it unchanged.
const invalidCredentialsBody = "Invalid credentials"

type loginRequestPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponsePayload struct {
	Token    string `json:"token"`
	Type     string `json:"type"`
	Username string `json:"username"`
}

// EndpointLogin handles the 'POST /api/auth/login' endpoint
func (service *Service) EndpointLogin(writer http.ResponseWriter, request *http.Request) {
	body, err := io.ReadAll(request.Body)
	if err != nil {
		service.writer.WriteInternalError(writer, err)
		return
	}
	payload := new(loginRequestPayload)
	if err := json.Unmarshal(body, payload); err != nil || payload.Username == "" || payload.Password == "" {
		service.rejectLogin(writer)
		return
	}

	// Verify the credentials against the user repository
	usr, err := service.Storage.Users().GetByUsername(request.Context(), payload.Username)
	if err != nil {
		service.writer.WriteInternalError(writer, err)
		return
	}
	if usr == nil || !usr.VerifyPassword(payload.Password) {
		service.rejectLogin(writer)
		return
	}

	// Mint a new session token
	expires := time.Now().Add(service.Config.SessionLifetime).Unix()
	rawToken, err := service.sessionStorage.Create(request.Context(), usr.Username, expires)
	if err != nil {
		service.writer.WriteInternalError(writer, err)
		return
	}

	service.writer.WriteJSON(writer, &loginResponsePayload{
		Token:    rawToken,
		Type:     "Bearer",
		Username: usr.Username,
	})
}

func (service *Service) rejectLogin(writer http.ResponseWriter) {
	writer.Header().Set("Content-Type", "text/plain; charset=utf-8")
	writer.WriteHeader(http.StatusBadRequest)
	writer.Write([]byte(invalidCredentialsBody))
}

// MiddlewareVerifyToken makes sure that the requesting client has provided a valid
// bearer token. Additionally, it injects the session's username into the request context.
func (service *Service) MiddlewareVerifyToken(next http.HandlerFunc) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		// Try to read the 'Authorization' header and verify it is of type 'Bearer'
		header := request.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer") {
			service.writer.WriteErrors(writer, http.StatusUnauthorized, schema.ErrUnauthorized)
			return
		}

		// Try to retrieve the session out of the session storage
		rawToken := strings.TrimSpace(strings.TrimPrefix(header, "Bearer"))
		ses, err := service.sessionStorage.GetByRawToken(request.Context(), rawToken)
		if err != nil {
			service.writer.WriteInternalError(writer, err)
			return
		}
		if ses == nil {
			service.writer.WriteErrors(writer, http.StatusUnauthorized, schema.ErrUnauthorized)
			return
		}

		// Delegate to the next handler
		request = request.WithContext(context.WithValue(request.Context(), contextValueUsername, ses.Username))
		next(writer, request)
	}
}
