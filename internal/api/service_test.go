package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tribeworks/loanflow/internal/config"
	"github.com/tribeworks/loanflow/internal/process"
	"github.com/tribeworks/loanflow/internal/storage/inmem"
	"github.com/tribeworks/loanflow/internal/user"
)

// newTestService spins up the full loan API on an in-memory storage driver seeded
// with the demo accounts
func newTestService(t *testing.T) *httptest.Server {
	t.Helper()

	driver := inmem.New()
	require.NoError(t, driver.Initialize(context.Background()))
	t.Cleanup(driver.Close)

	creates, err := user.DemoAccounts()
	require.NoError(t, err)
	for _, create := range creates {
		_, err := driver.Users().Create(context.Background(), create)
		require.NoError(t, err)
	}

	service := &Service{
		Config: &config.Config{
			APIAllowedOrigin: "*",
			SessionLifetime:  time.Hour,
		},
		Storage: driver,
		Engine:  process.New(),
	}
	handler, err := service.Initialize()
	require.NoError(t, err)
	t.Cleanup(service.Shutdown)

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

func login(t *testing.T, server *httptest.Server, username, password string) *http.Response {
	t.Helper()
	payload, err := json.Marshal(map[string]string{
		"username": username,
		"password": password,
	})
	require.NoError(t, err)
	response, err := http.Post(server.URL+"/api/auth/login", "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	return response
}

func obtainToken(t *testing.T, server *httptest.Server) string {
	t.Helper()
	response := login(t, server, "testuser", "demo123")
	defer response.Body.Close()
	require.Equal(t, http.StatusOK, response.StatusCode)

	body := struct {
		Token string `json:"token"`
	}{}
	require.NoError(t, json.NewDecoder(response.Body).Decode(&body))
	require.NotEmpty(t, body.Token)
	return body.Token
}

func startLoan(t *testing.T, server *httptest.Server, token, query string) *http.Response {
	t.Helper()
	request, err := http.NewRequest(http.MethodPost, server.URL+"/api/loans/start"+query, nil)
	require.NoError(t, err)
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}
	response, err := http.DefaultClient.Do(request)
	require.NoError(t, err)
	return response
}

func TestEndpointLogin(t *testing.T) {
	server := newTestService(t)

	response := login(t, server, "testuser", "demo123")
	defer response.Body.Close()
	require.Equal(t, http.StatusOK, response.StatusCode)

	body := struct {
		Token    string `json:"token"`
		Type     string `json:"type"`
		Username string `json:"username"`
	}{}
	require.NoError(t, json.NewDecoder(response.Body).Decode(&body))
	assert.NotEmpty(t, body.Token)
	assert.Equal(t, "Bearer", body.Type)
	assert.Equal(t, "testuser", body.Username)
}

func TestEndpointLoginRejectsInvalidCredentials(t *testing.T) {
	server := newTestService(t)

	tests := []struct {
		name     string
		username string
		password string
	}{
		{name: "wrong password", username: "testuser", password: "wrong"},
		{name: "unknown user", username: "nosuchuser", password: "demo123"},
		{name: "empty credentials", username: "", password: ""},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			response := login(t, server, test.username, test.password)
			defer response.Body.Close()
			require.Equal(t, http.StatusBadRequest, response.StatusCode)

			body, err := io.ReadAll(response.Body)
			require.NoError(t, err)
			assert.Equal(t, "Invalid credentials", string(body))
		})
	}
}

func TestEndpointStartLoanProcessRequiresToken(t *testing.T) {
	server := newTestService(t)

	response := startLoan(t, server, "", "?creditScore=750")
	defer response.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, response.StatusCode)

	response = startLoan(t, server, "forged-token", "?creditScore=750")
	defer response.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, response.StatusCode)
}

func TestEndpointStartLoanProcess(t *testing.T) {
	server := newTestService(t)
	token := obtainToken(t, server)

	tests := []struct {
		name       string
		query      string
		wantScore  float64
		wantStatus any
	}{
		{name: "auto approval", query: "?creditScore=750", wantScore: 750, wantStatus: "APPROVED"},
		{name: "manual review", query: "?creditScore=650", wantScore: 650, wantStatus: nil},
		{name: "default score", query: "", wantScore: 750, wantStatus: "APPROVED"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			response := startLoan(t, server, token, test.query)
			defer response.Body.Close()
			require.Equal(t, http.StatusOK, response.StatusCode)

			body := struct {
				ProcessInstanceKey int64          `json:"processInstanceKey"`
				BPMNProcessID      string         `json:"bpmnProcessId"`
				Version            int            `json:"version"`
				Variables          map[string]any `json:"variables"`
			}{}
			require.NoError(t, json.NewDecoder(response.Body).Decode(&body))
			assert.NotZero(t, body.ProcessInstanceKey)
			assert.Equal(t, "loanApprovalProcess", body.BPMNProcessID)
			assert.Equal(t, 1, body.Version)
			assert.Equal(t, test.wantScore, body.Variables["creditScore"])
			assert.Equal(t, true, body.Variables["documentsValid"])
			assert.Equal(t, test.wantStatus, body.Variables["approvalStatus"])
		})
	}
}

func TestEndpointStartLoanProcessRejectsOutOfRangeScore(t *testing.T) {
	server := newTestService(t)
	token := obtainToken(t, server)

	for _, query := range []string{"?creditScore=299", "?creditScore=851", "?creditScore=abc"} {
		response := startLoan(t, server, token, query)
		response.Body.Close()
		assert.Equal(t, http.StatusBadRequest, response.StatusCode)
	}
}

func TestEndpointGetLoanApplications(t *testing.T) {
	server := newTestService(t)
	token := obtainToken(t, server)

	for _, query := range []string{"?creditScore=750", "?creditScore=650"} {
		response := startLoan(t, server, token, query)
		response.Body.Close()
		require.Equal(t, http.StatusOK, response.StatusCode)
	}

	request, err := http.NewRequest(http.MethodGet, server.URL+"/api/loans", nil)
	require.NoError(t, err)
	request.Header.Set("Authorization", "Bearer "+token)
	response, err := http.DefaultClient.Do(request)
	require.NoError(t, err)
	defer response.Body.Close()
	require.Equal(t, http.StatusOK, response.StatusCode)

	body := struct {
		Applications []struct {
			Applicant   string `json:"applicant"`
			CreditScore int    `json:"credit_score"`
			Status      string `json:"status"`
		} `json:"applications"`
		Total uint64 `json:"total"`
	}{}
	require.NoError(t, json.NewDecoder(response.Body).Decode(&body))
	require.Len(t, body.Applications, 2)
	assert.Equal(t, uint64(2), body.Total)

	// Newest first
	assert.Equal(t, 650, body.Applications[0].CreditScore)
	assert.Equal(t, "testuser", body.Applications[0].Applicant)
	assert.Equal(t, 750, body.Applications[1].CreditScore)
}

func TestEndpointHealth(t *testing.T) {
	server := newTestService(t)

	response, err := http.Get(server.URL + "/actuator/health")
	require.NoError(t, err)
	defer response.Body.Close()
	require.Equal(t, http.StatusOK, response.StatusCode)

	body := map[string]string{}
	require.NoError(t, json.NewDecoder(response.Body).Decode(&body))
	assert.Equal(t, "UP", body["status"])
}
