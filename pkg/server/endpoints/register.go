package endpoints

import (
	"github.com/rustysnake/rustysnake/pkg/server"
)

// RegisterAll registers all API endpoints on the server
func RegisterAll(srv *server.Server) {
	RegisterIndexEndpoint(srv)
	RegisterStartEndpoint(srv)
	RegisterMoveEndpoint(srv)
	RegisterEndEndpoint(srv)
	RegisterStatusEndpoint(srv)
}
