package endpoints

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/rustysnake/rustysnake/pkg/game"
	"github.com/rustysnake/rustysnake/pkg/gamelog"
	"github.com/rustysnake/rustysnake/pkg/server"
	"github.com/rustysnake/rustysnake/pkg/server/store"
)

// RegisterStartEndpoint registers the game start endpoint
func RegisterStartEndpoint(s *server.Server) {
	s.Router.HandleFunc("/start", handleStart(s)).Methods("POST")
}

func handleStart(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var state game.GameState
		if err := json.NewDecoder(r.Body).Decode(&state); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid game state")
			return
		}

		gamelog.DefaultLogger.Log(gamelog.GameStartedEvent{
			GameID:  state.Game.ID,
			SnakeID: state.You.ID,
			Ruleset: state.Game.Ruleset.Name,
			Width:   state.Board.Width,
			Height:  state.Board.Height,
			Snakes:  len(state.Board.Snakes),
		})

		if s.Games != nil {
			rec := &store.GameRecord{
				GameID:  state.Game.ID,
				SnakeID: state.You.ID,
				Ruleset: state.Game.Ruleset.Name,
				Width:   state.Board.Width,
				Height:  state.Board.Height,
				Engine:  s.Engine().Name(),
			}
			if err := s.Games.StartGame(rec); err != nil {
				// Archival is best effort; never fail the webhook over it.
				log.Printf("failed to archive game start: %v", err)
			}
		}

		respondWithJSON(w, http.StatusOK, map[string]string{})
	}
}
