package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/tribeworks/loanflow/internal/loan"
)

// StartLoanProcess submits a credit score and starts a new loan approval process
// instance on the backend.
//
// The score is validated locally first; a missing or out-of-range score is rejected
// with a *loan.ValidationError before any network call is made. Transport failures
// yield a *SubmissionError. The call is never retried automatically.
func (client *Client) StartLoanProcess(ctx context.Context, creditScore *int) (*loan.ProcessResult, error) {
	if err := loan.ValidateScore(creditScore); err != nil {
		return nil, err
	}

	target := client.baseURL + "/api/loans/start?" + url.Values{
		"creditScore": []string{strconv.Itoa(*creditScore)},
	}.Encode()
	request, err := newRequest(ctx, http.MethodPost, target, nil)
	if err != nil {
		return nil, err
	}

	response, err := client.do(request)
	if err != nil {
		return nil, &SubmissionError{Err: err}
	}

	switch {
	case response.StatusCode == http.StatusUnauthorized || response.StatusCode == http.StatusForbidden:
		response.Body.Close()
		return nil, ErrNotAuthenticated
	case response.StatusCode < 200 || response.StatusCode > 299:
		response.Body.Close()
		return nil, &SubmissionError{Err: &url.Error{
			Op:  "Post",
			URL: target,
			Err: &statusError{status: response.StatusCode},
		}}
	}

	result := new(loan.ProcessResult)
	if err := decodeJSON(response, result); err != nil {
		return nil, &SubmissionError{Err: err}
	}
	return result, nil
}

type statusError struct {
	status int
}

func (err *statusError) Error() string {
	return "unexpected status code " + strconv.Itoa(err.status)
}
