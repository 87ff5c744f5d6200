package api

import (
	"net/http"
)

// EndpointHealth handles the 'GET /actuator/health' liveness probe.
// The path and payload mirror the actuator convention the deployment tooling expects.
func (service *Service) EndpointHealth(writer http.ResponseWriter, _ *http.Request) {
	service.writer.WriteJSON(writer, map[string]string{
		"status": "UP",
	})
}
