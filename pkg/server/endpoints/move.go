package endpoints

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/rustysnake/rustysnake/pkg/game"
	"github.com/rustysnake/rustysnake/pkg/gamelog"
	"github.com/rustysnake/rustysnake/pkg/server"
	"github.com/rustysnake/rustysnake/pkg/server/store"
)

// MoveResponse is the payload of POST /move.
type MoveResponse struct {
	Move  string `json:"move"`
	Shout string `json:"shout,omitempty"`
}

// RegisterMoveEndpoint registers the move endpoint
func RegisterMoveEndpoint(s *server.Server) {
	s.Router.HandleFunc("/move", handleMove(s)).Methods("POST")
}

func handleMove(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var state game.GameState
		if err := json.NewDecoder(r.Body).Decode(&state); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid game state")
			return
		}

		eng := s.Engine()
		started := time.Now()
		dir, err := eng.BestMove(&state.Board, state.You.ID)
		latency := time.Since(started).Milliseconds()

		shout := ""
		fallback := false
		if err != nil {
			// A snake that 500s forfeits the turn, so answer something.
			log.Printf("engine failed on game %s turn %d: %v", state.Game.ID, state.Turn, err)
			dir = game.DirectionUp
			shout = "engine failure, moving up"
			fallback = true
		}

		gamelog.DefaultLogger.Log(gamelog.MoveDecisionEvent{
			GameID:    state.Game.ID,
			Turn:      state.Turn,
			Move:      dir.String(),
			Engine:    eng.Name(),
			LatencyMs: latency,
			Fallback:  fallback,
		})

		if s.Games != nil {
			rec := &store.MoveRecord{
				GameID:    state.Game.ID,
				Turn:      state.Turn,
				Move:      dir.String(),
				Shout:     shout,
				LatencyMs: latency,
			}
			if err := s.Games.RecordMove(rec); err != nil {
				log.Printf("failed to archive move: %v", err)
			}
		}

		respondWithJSON(w, http.StatusOK, MoveResponse{Move: dir.String(), Shout: shout})
	}
}
