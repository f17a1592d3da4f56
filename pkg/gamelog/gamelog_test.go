package gamelog

import (
	"bytes"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(buf *bytes.Buffer) *Logger {
	l := NewLogger()
	l.SetWriter(buf)
	return l
}

func TestLogFormat(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(&buf)

	l.Log(MoveDecisionEvent{
		GameID:    "g1",
		Turn:      3,
		Move:      "left",
		Engine:    "mini_max",
		LatencyMs: 12,
	})

	line := buf.String()

	// daemon facility (3), info severity (6): PRI 30.
	assert.True(t, regexp.MustCompile(`^<30>1 \d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{3}Z `).MatchString(line),
		"unexpected header: %s", line)
	assert.Contains(t, line, " move ")
	assert.Contains(t, line, `direction="left"`)
	assert.Contains(t, line, `engine="mini_max"`)
	assert.Contains(t, line, `latency_ms="12"`)
	assert.Contains(t, line, "game g1 turn 3: moving left (12ms)")
	assert.Regexp(t, "\n$", line)
}

func TestFallbackMovesLogAsWarnings(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(&buf)

	l.Log(MoveDecisionEvent{GameID: "g1", Turn: 1, Move: "up", Engine: "mini_max", Fallback: true})

	// daemon facility (3), warning severity (4): PRI 28.
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("<28>1 ")), "got: %s", buf.String())
	assert.Contains(t, buf.String(), "[engine failure fallback]")
}

func TestGameEndedMessages(t *testing.T) {
	tests := []struct {
		name  string
		event GameEndedEvent
		want  string
	}{
		{
			name:  "we won",
			event: GameEndedEvent{GameID: "g", SnakeID: "me", Turn: 30, Outcome: "win", Winner: "me"},
			want:  "game g ended after 30 turns: we won",
		},
		{
			name:  "they won",
			event: GameEndedEvent{GameID: "g", SnakeID: "me", Turn: 30, Outcome: "loss", Winner: "them"},
			want:  "game g ended after 30 turns: them won",
		},
		{
			name:  "tie",
			event: GameEndedEvent{GameID: "g", SnakeID: "me", Turn: 30, Outcome: "tie"},
			want:  "game g ended after 30 turns: tie",
		},
		{
			name:  "aborted",
			event: GameEndedEvent{GameID: "g", SnakeID: "me", Turn: 30, Outcome: "aborted"},
			want:  "game g ended after 30 turns: aborted",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.event.Message())
		})
	}
}

func TestStructuredDataEscaping(t *testing.T) {
	sd := map[string]map[string]string{
		SDIDGame: {"id": `quo"te and bracket]`},
	}

	out := formatStructuredData(sd)

	require.Contains(t, out, SDIDGame)
	assert.Contains(t, out, `id="quo\"te and bracket\]"`)
}

func TestEmptyStructuredDataRendersDash(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(&buf)

	l.Log(emptyEvent{})

	assert.Contains(t, buf.String(), " - empty message")
}

type emptyEvent struct{}

func (emptyEvent) MessageID() string                          { return "noop" }
func (emptyEvent) Message() string                            { return "empty message" }
func (emptyEvent) Severity() Severity                         { return SeverityInfo }
func (emptyEvent) Facility() int                              { return FacilityDaemon }
func (emptyEvent) StructuredData() map[string]map[string]string { return nil }
