package endpoints

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/rustysnake/rustysnake/pkg/game"
	"github.com/rustysnake/rustysnake/pkg/gamelog"
	"github.com/rustysnake/rustysnake/pkg/server"
	"github.com/rustysnake/rustysnake/pkg/simulation"
)

// RegisterEndEndpoint registers the game end endpoint
func RegisterEndEndpoint(s *server.Server) {
	s.Router.HandleFunc("/end", handleEnd(s)).Methods("POST")
}

func handleEnd(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var state game.GameState
		if err := json.NewDecoder(r.Body).Decode(&state); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid game state")
			return
		}

		end := simulation.EndStateOf(&state.Board)
		outcome := outcomeFor(end, state.You.ID)

		gamelog.DefaultLogger.Log(gamelog.GameEndedEvent{
			GameID:  state.Game.ID,
			SnakeID: state.You.ID,
			Turn:    state.Turn,
			Outcome: outcome,
			Winner:  end.Winner,
		})

		if s.Games != nil {
			if err := s.Games.FinishGame(state.Game.ID, outcome, end.Winner, state.Turn); err != nil {
				log.Printf("failed to archive game end: %v", err)
			}
		}

		respondWithJSON(w, http.StatusOK, map[string]string{})
	}
}

// outcomeFor classifies the final board from our snake's point of view.
func outcomeFor(end simulation.EndState, snakeID string) string {
	switch end.Outcome {
	case simulation.OutcomeWinner:
		if end.Winner == snakeID {
			return "win"
		}
		return "loss"
	case simulation.OutcomeTie:
		return "tie"
	}
	// The arena can cut a game short; the final board then has several
	// live snakes.
	return "aborted"
}
