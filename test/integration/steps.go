package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/cucumber/godog"

	"github.com/rustysnake/rustysnake/pkg/game"
	"github.com/rustysnake/rustysnake/pkg/server/store"
)

// StepsContext holds state shared between step definitions
type StepsContext struct {
	tc           *TestContext
	response     *http.Response
	responseBody []byte
	gameID       string
}

// NewStepsContext creates a new steps context
func NewStepsContext(tc *TestContext) *StepsContext {
	return &StepsContext{tc: tc}
}

// RegisterSteps registers all step definitions
func (s *StepsContext) RegisterSteps(sc *godog.ScenarioContext) {
	sc.Step(`^a rustysnake server is running$`, s.aServerIsRunning)
	sc.Step(`^the arena starts game "([^"]*)"$`, s.theArenaStartsGame)
	sc.Step(`^the arena requests a move for turn (\d+)$`, s.theArenaRequestsAMove)
	sc.Step(`^the response move should be a valid direction$`, s.theMoveShouldBeValid)
	sc.Step(`^the arena ends game "([^"]*)" as the winner$`, s.theArenaEndsGameAsWinner)
	sc.Step(`^game "([^"]*)" should be archived with outcome "([^"]*)"$`, s.gameShouldBeArchived)
	sc.Step(`^game "([^"]*)" should have (\d+) archived moves$`, s.gameShouldHaveMoves)
	sc.Step(`^the arena checks the server status$`, s.theArenaChecksStatus)
	sc.Step(`^the status should report engine "([^"]*)" and archive "([^"]*)"$`, s.theStatusShouldReport)
}

// testBoard is a small midgame position with two live snakes.
func testBoard() game.Board {
	return game.Board{
		Width:  7,
		Height: 7,
		Food:   []game.Coord{{X: 3, Y: 3}},
		Snakes: []game.Snake{
			{
				ID:     "me",
				Name:   "rustysnake",
				Health: 90,
				Head:   game.Coord{X: 1, Y: 1},
				Body:   []game.Coord{{X: 1, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: 0}},
				Length: 3,
			},
			{
				ID:     "them",
				Name:   "opponent",
				Health: 90,
				Head:   game.Coord{X: 5, Y: 5},
				Body:   []game.Coord{{X: 5, Y: 5}, {X: 5, Y: 4}},
				Length: 2,
			},
		},
	}
}

func (s *StepsContext) state(turn int, board game.Board) game.GameState {
	return game.GameState{
		Game: game.Game{
			ID:      s.gameID,
			Ruleset: game.Ruleset{Name: "standard", Version: "v1"},
			Timeout: 500,
		},
		Turn:  turn,
		Board: board,
		You:   *board.Snake("me"),
	}
}

func (s *StepsContext) post(path string, state game.GameState) error {
	body, err := json.Marshal(state)
	if err != nil {
		return err
	}

	resp, err := s.tc.HTTPClient.Post(s.tc.ServerURL+path, "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	s.response = resp
	s.responseBody, err = io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("POST %s returned %d: %s", path, resp.StatusCode, s.responseBody)
	}
	return nil
}

func (s *StepsContext) aServerIsRunning() error {
	resp, err := s.tc.HTTPClient.Get(s.tc.ServerURL + "/status")
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("status endpoint returned %d", resp.StatusCode)
	}
	return nil
}

func (s *StepsContext) theArenaStartsGame(gameID string) error {
	s.gameID = gameID
	return s.post("/start", s.state(0, testBoard()))
}

func (s *StepsContext) theArenaRequestsAMove(turn int) error {
	return s.post("/move", s.state(turn, testBoard()))
}

func (s *StepsContext) theMoveShouldBeValid() error {
	var move struct {
		Move string `json:"move"`
	}
	if err := json.Unmarshal(s.responseBody, &move); err != nil {
		return fmt.Errorf("bad move response %s: %w", s.responseBody, err)
	}

	if _, err := game.DirectionString(move.Move); err != nil {
		return fmt.Errorf("move %q is not a direction", move.Move)
	}
	return nil
}

func (s *StepsContext) theArenaEndsGameAsWinner(gameID string) error {
	s.gameID = gameID

	// The final board only has our snake left alive.
	board := testBoard()
	board.Snakes = board.Snakes[:1]
	return s.post("/end", s.state(10, board))
}

func (s *StepsContext) gameShouldBeArchived(gameID, outcome string) error {
	var rec store.GameRecord
	if err := s.tc.DB.Where("game_id = ?", gameID).First(&rec).Error; err != nil {
		return fmt.Errorf("game %s not archived: %w", gameID, err)
	}

	if rec.Outcome != outcome {
		return fmt.Errorf("game %s archived with outcome %q, want %q", gameID, rec.Outcome, outcome)
	}
	if rec.EndedAt == nil {
		return fmt.Errorf("game %s has no end timestamp", gameID)
	}
	return nil
}

func (s *StepsContext) gameShouldHaveMoves(gameID string, count int) error {
	var got int64
	if err := s.tc.DB.Model(&store.MoveRecord{}).Where("game_id = ?", gameID).Count(&got).Error; err != nil {
		return err
	}

	if got != int64(count) {
		return fmt.Errorf("game %s has %d archived moves, want %d", gameID, got, count)
	}
	return nil
}

func (s *StepsContext) theArenaChecksStatus() error {
	resp, err := s.tc.HTTPClient.Get(s.tc.ServerURL + "/status")
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	s.response = resp
	s.responseBody, err = io.ReadAll(resp.Body)
	return err
}

func (s *StepsContext) theStatusShouldReport(engineName, archive string) error {
	var status struct {
		Engine  string `json:"engine"`
		Archive string `json:"archive"`
	}
	if err := json.Unmarshal(s.responseBody, &status); err != nil {
		return fmt.Errorf("bad status response %s: %w", s.responseBody, err)
	}

	if status.Engine != engineName {
		return fmt.Errorf("status reports engine %q, want %q", status.Engine, engineName)
	}
	if status.Archive != archive {
		return fmt.Errorf("status reports archive %q, want %q", status.Archive, archive)
	}
	return nil
}
