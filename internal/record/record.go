package record

import (
	"encoding/json"
	"fmt"
	"os"

	"racingcar/internal/race"
)

const (
	EventRaceStarted   = "RaceStarted"
	EventRoundFinished = "RoundFinished"
	EventRaceFinished  = "RaceFinished"
)

type Event struct {
	Round   int            `json:"round"`
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload,omitempty"`
}

type Result struct {
	Seed    int64           `json:"seed"`
	Rounds  int             `json:"rounds"`
	Cars    []race.Standing `json:"cars"`
	Winners []string        `json:"winners"`
	Events  []Event         `json:"events,omitempty"`
}

// Recorder keeps the event log of one race.
type Recorder struct {
	Seed   int64
	events []Event
	result Result
}

func NewRecorder(seed int64) *Recorder {
	return &Recorder{Seed: seed}
}

func (r *Recorder) Emit(ev Event) {
	r.events = append(r.events, ev)
}

func (r *Recorder) RaceStarted(names []string) {
	r.Emit(Event{Type: EventRaceStarted, Payload: map[string]any{"cars": names}})
}

func (r *Recorder) RoundFinished(round int, standings []race.Standing) {
	r.Emit(Event{Round: round, Type: EventRoundFinished, Payload: map[string]any{"standings": standings}})
}

func (r *Recorder) RaceFinished(rounds int, standings []race.Standing, winners []string) {
	r.Emit(Event{Round: rounds, Type: EventRaceFinished, Payload: map[string]any{"winners": winners}})
	r.result = Result{
		Seed:    r.Seed,
		Rounds:  rounds,
		Cars:    standings,
		Winners: winners,
	}
}

func (r *Recorder) Events() []Event {
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Result returns the final result with the full event log attached.
func (r *Recorder) Result() Result {
	res := r.result
	res.Seed = r.Seed
	res.Events = r.Events()
	return res
}

// Save writes the result as indented JSON to path.
func (r *Recorder) Save(path string) error {
	b, err := MarshalPretty(r.Result())
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	if err := os.WriteFile(path, b, 0644); err != nil {
		return fmt.Errorf("write result %s: %w", path, err)
	}
	return nil
}

func MarshalPretty(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}
