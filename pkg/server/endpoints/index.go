package endpoints

import (
	"net/http"
	"os"

	"github.com/rustysnake/rustysnake/pkg/server"
)

// SnakeInfoResponse is the payload of GET /, consumed by the arena to
// register and skin the snake.
type SnakeInfoResponse struct {
	APIVersion string `json:"apiversion"`
	Author     string `json:"author"`
	Color      string `json:"color"`
	Head       string `json:"head"`
	Tail       string `json:"tail"`
	Version    string `json:"version"`
}

// RegisterIndexEndpoint registers the snake info endpoint
func RegisterIndexEndpoint(s *server.Server) {
	s.Router.HandleFunc("/", handleIndex(s)).Methods("GET")
}

func handleIndex(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		version := os.Getenv("RUSTYSNAKE_VERSION")
		if version == "" {
			version = "0.1.0"
		}

		cfg := s.Config()
		respondWithJSON(w, http.StatusOK, SnakeInfoResponse{
			APIVersion: "1",
			Author:     cfg.Author,
			Color:      cfg.Color,
			Head:       cfg.Head,
			Tail:       cfg.Tail,
			Version:    version,
		})
	}
}
