package server

import (
	"net"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/rustysnake/rustysnake/pkg/config"
	"github.com/rustysnake/rustysnake/pkg/engine"
	"github.com/rustysnake/rustysnake/pkg/server/store"
)

// Server hosts the Battlesnake webhook API.
type Server struct {
	Games  store.GamesStore
	Health store.HealthStore
	Router *mux.Router
	DB     *gorm.DB

	mu  sync.RWMutex
	cfg *config.Config
	eng engine.Engine
	srv *http.Server
}

// NewServer wires a server. Games, Health and db may be nil when the game
// archive is disabled.
func NewServer(
	eng engine.Engine,
	cfg *config.Config,
	games store.GamesStore,
	health store.HealthStore,
	db *gorm.DB,
	host string,
	port string,
) *Server {

	var trusted []string
	if cfg != nil {
		trusted = cfg.TrustedProxies
	}

	router := mux.NewRouter().UseEncodedPath()
	srv := &http.Server{
		Handler: handlers.LoggingHandler(os.Stdout, proxyAware(trusted, router)),
		Addr:    host + ":" + port,
		// Good practice: enforce timeouts for servers you create!
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	return &Server{
		Games:  games,
		Health: health,
		Router: router,
		DB:     db,
		cfg:    cfg,
		eng:    eng,
		srv:    srv,
	}
}

// proxyAware honors X-Forwarded-* headers only on requests arriving from
// a trusted proxy address.
func proxyAware(trusted []string, next http.Handler) http.Handler {
	if len(trusted) == 0 {
		return next
	}

	set := make(map[string]struct{}, len(trusted))
	for _, ip := range trusted {
		set[ip] = struct{}{}
	}
	forwarded := handlers.ProxyHeaders(next)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		host, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			host = r.RemoteAddr
		}
		if _, ok := set[host]; ok {
			forwarded.ServeHTTP(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Engine returns the active move engine.
func (s *Server) Engine() engine.Engine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.eng
}

// SetEngine swaps the active move engine. Used by config reload.
func (s *Server) SetEngine(eng engine.Engine) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.eng = eng
}

// Config returns the active configuration.
func (s *Server) Config() *config.Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

// SetConfig swaps the active configuration. Used by config reload.
func (s *Server) SetConfig(cfg *config.Config) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg = cfg
}

// Start serves until the listener fails.
func (s *Server) Start() error {
	return s.srv.ListenAndServe()
}
