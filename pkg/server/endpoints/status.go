package endpoints

import (
	"net/http"
	"os"

	"github.com/rustysnake/rustysnake/pkg/server"
)

// StatusResponse is the payload of GET /status.
type StatusResponse struct {
	Status  string `json:"status"`
	Engine  string `json:"engine"`
	Version string `json:"version"`
	Archive string `json:"archive"`
}

// StatusErrorResponse is returned when a health check fails.
type StatusErrorResponse struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

// RegisterStatusEndpoint registers the health endpoint
func RegisterStatusEndpoint(s *server.Server) {
	s.Router.HandleFunc("/status", handleStatus(s)).Methods("GET")
}

func handleStatus(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		version := os.Getenv("RUSTYSNAKE_VERSION")
		if version == "" {
			version = "0.1.0"
		}

		archive := "disabled"
		if s.Health != nil {
			if err := s.Health.CheckConnectivity(); err != nil {
				respondWithJSON(w, http.StatusServiceUnavailable, StatusErrorResponse{
					Status: "error",
					Error:  "archive connectivity check failed",
				})
				return
			}
			archive = "ok"
		}

		respondWithJSON(w, http.StatusOK, StatusResponse{
			Status:  "ok",
			Engine:  s.Engine().Name(),
			Version: version,
			Archive: archive,
		})
	}
}
