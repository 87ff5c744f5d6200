package client

import (
	"context"
	"fmt"
	"net/http"
)

type healthResponsePayload struct {
	Status string `json:"status"`
}

// Health probes the backend liveness endpoint and returns an error unless it reports UP
func (client *Client) Health(ctx context.Context) error {
	request, err := newRequest(ctx, http.MethodGet, client.baseURL+"/actuator/health", nil)
	if err != nil {
		return err
	}
	response, err := client.do(request)
	if err != nil {
		return err
	}
	if response.StatusCode != http.StatusOK {
		response.Body.Close()
		return fmt.Errorf("health endpoint returned status code %d", response.StatusCode)
	}

	body := new(healthResponsePayload)
	if err := decodeJSON(response, body); err != nil {
		return err
	}
	if body.Status != "UP" {
		return fmt.Errorf("health endpoint reported status %q", body.Status)
	}
	return nil
}
