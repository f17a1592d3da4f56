package gamelog

import (
	"fmt"
	"strconv"
)

// GameStartedEvent records that the arena started a game with us in it.
type GameStartedEvent struct {
	GameID  string
	SnakeID string
	Ruleset string
	Width   int
	Height  int
	Snakes  int
}

func (e GameStartedEvent) MessageID() string { return "start" }

func (e GameStartedEvent) Message() string {
	return fmt.Sprintf("game %s started: %dx%d %s board with %d snakes", e.GameID, e.Width, e.Height, e.Ruleset, e.Snakes)
}

func (e GameStartedEvent) Severity() Severity { return SeverityInfo }

func (e GameStartedEvent) Facility() int { return FacilityDaemon }

func (e GameStartedEvent) StructuredData() map[string]map[string]string {
	return map[string]map[string]string{
		SDIDGame: {
			"id":      e.GameID,
			"snake":   e.SnakeID,
			"ruleset": e.Ruleset,
			"board":   fmt.Sprintf("%dx%d", e.Width, e.Height),
		},
	}
}

// MoveDecisionEvent records one answered /move request.
type MoveDecisionEvent struct {
	GameID    string
	Turn      int
	Move      string
	Engine    string
	LatencyMs int64
	Fallback  bool
}

func (e MoveDecisionEvent) MessageID() string { return "move" }

func (e MoveDecisionEvent) Message() string {
	msg := fmt.Sprintf("game %s turn %d: moving %s (%dms)", e.GameID, e.Turn, e.Move, e.LatencyMs)
	if e.Fallback {
		msg += " [engine failure fallback]"
	}
	return msg
}

func (e MoveDecisionEvent) Severity() Severity {
	if e.Fallback {
		return SeverityWarning
	}
	return SeverityInfo
}

func (e MoveDecisionEvent) Facility() int { return FacilityDaemon }

func (e MoveDecisionEvent) StructuredData() map[string]map[string]string {
	return map[string]map[string]string{
		SDIDGame: {
			"id":   e.GameID,
			"turn": strconv.Itoa(e.Turn),
		},
		SDIDMove: {
			"direction":  e.Move,
			"engine":     e.Engine,
			"latency_ms": strconv.FormatInt(e.LatencyMs, 10),
		},
	}
}

// GameEndedEvent records the final state of a game.
type GameEndedEvent struct {
	GameID  string
	SnakeID string
	Turn    int
	Outcome string
	Winner  string
}

func (e GameEndedEvent) MessageID() string { return "end" }

func (e GameEndedEvent) Message() string {
	switch {
	case e.Winner == e.SnakeID && e.Winner != "":
		return fmt.Sprintf("game %s ended after %d turns: we won", e.GameID, e.Turn)
	case e.Outcome == "tie":
		return fmt.Sprintf("game %s ended after %d turns: tie", e.GameID, e.Turn)
	case e.Winner == "":
		return fmt.Sprintf("game %s ended after %d turns: %s", e.GameID, e.Turn, e.Outcome)
	default:
		return fmt.Sprintf("game %s ended after %d turns: %s won", e.GameID, e.Turn, e.Winner)
	}
}

func (e GameEndedEvent) Severity() Severity { return SeverityNotice }

func (e GameEndedEvent) Facility() int { return FacilityDaemon }

func (e GameEndedEvent) StructuredData() map[string]map[string]string {
	sd := map[string]map[string]string{
		SDIDGame: {
			"id":      e.GameID,
			"snake":   e.SnakeID,
			"turns":   strconv.Itoa(e.Turn),
			"outcome": e.Outcome,
		},
	}
	if e.Winner != "" {
		sd[SDIDGame]["winner"] = e.Winner
	}
	return sd
}
