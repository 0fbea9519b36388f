// Package game drives one race from name input to the winner announcement.
package game

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/message"

	"racingcar/internal/carname"
	"racingcar/internal/i18n"
	"racingcar/internal/logging"
	"racingcar/internal/race"
	"racingcar/internal/record"
	"racingcar/internal/util"
)

// MaxRounds is the number of rounds every race runs.
const MaxRounds = 5

var ErrAlreadyStarted = errors.New("game already started")

// InputProvider supplies one line of text in answer to a prompt.
type InputProvider interface {
	Ask(ctx context.Context, prompt string) (string, error)
}

// Sink receives one line of output per call.
type Sink interface {
	Report(msg string)
}

type State int

const (
	Idle State = iota
	CollectingInput
	Racing
	Finished
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case CollectingInput:
		return "collecting_input"
	case Racing:
		return "racing"
	case Finished:
		return "finished"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

type Simulator struct {
	in  InputProvider
	out Sink

	rng      race.Rng
	validate func(string) error
	split    func(string) []string
	rounds   int
	printer  *message.Printer
	recorder *record.Recorder

	state State
	race  *race.Race
}

type Option func(*Simulator)

// WithRng sets the randomness shared by every car of the race.
func WithRng(rng race.Rng) Option {
	return func(s *Simulator) { s.rng = rng }
}

func WithValidator(fn func(string) error) Option {
	return func(s *Simulator) { s.validate = fn }
}

func WithSplitter(fn func(string) []string) Option {
	return func(s *Simulator) { s.split = fn }
}

// WithRounds overrides MaxRounds. Values below 1 are ignored.
func WithRounds(n int) Option {
	return func(s *Simulator) {
		if n > 0 {
			s.rounds = n
		}
	}
}

func WithPrinter(p *message.Printer) Option {
	return func(s *Simulator) { s.printer = p }
}

func WithRecorder(r *record.Recorder) Option {
	return func(s *Simulator) { s.recorder = r }
}

// newSeed seeds the rng when no WithRng option is given.
var newSeed = util.NewSeed

// NewSimulator fails only when no rng was given and no seed can be drawn.
func NewSimulator(in InputProvider, out Sink, opts ...Option) (*Simulator, error) {
	s := &Simulator{
		in:       in,
		out:      out,
		validate: carname.Validate,
		split:    carname.SplitByComma,
		rounds:   MaxRounds,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		seed, err := newSeed()
		if err != nil {
			return nil, fmt.Errorf("seed rng: %w", err)
		}
		s.rng = util.New(seed)
	}
	if s.printer == nil {
		s.printer = message.NewPrinter(i18n.Default())
	}
	return s, nil
}

func (s *Simulator) State() State { return s.state }

// StartGame collects the car names, then runs every round to completion.
// Setup errors leave the simulator idle with no race.
func (s *Simulator) StartGame(ctx context.Context) error {
	if s.state != Idle {
		return ErrAlreadyStarted
	}
	s.state = CollectingInput

	r, err := s.setup(ctx)
	if err != nil {
		s.state = Idle
		logging.Error("race setup failed", err, nil)
		return err
	}
	s.race = r
	s.state = Racing
	s.runRounds()
	s.finish()
	return nil
}

func (s *Simulator) setup(ctx context.Context) (*race.Race, error) {
	raw, err := s.in.Ask(ctx, s.printer.Sprintf(i18n.PromptKey))
	if err != nil {
		return nil, fmt.Errorf("ask car names: %w", err)
	}

	names := s.split(raw)
	for _, name := range names {
		if err := s.validate(name); err != nil {
			return nil, fmt.Errorf("validate car names: %w", err)
		}
	}

	cars := make([]*race.Car, len(names))
	for i, name := range names {
		cars[i] = race.NewCar(name, s.rng)
	}
	r, err := race.New(cars)
	if err != nil {
		return nil, err
	}
	if s.recorder != nil {
		s.recorder.RaceStarted(names)
	}
	logging.Info("race started", logging.Fields{"cars": len(cars), "rounds": s.rounds})
	return r, nil
}

func (s *Simulator) runRounds() {
	for i := 0; i < s.rounds; i++ {
		s.race.RunRound()
		for _, c := range s.race.Cars() {
			s.out.Report(s.printer.Sprintf(i18n.StandingKey, c.Name(), c.Trail()))
		}
		s.out.Report("")
		if s.recorder != nil {
			s.recorder.RoundFinished(s.race.Round(), s.race.Snapshot())
		}
	}
}

func (s *Simulator) finish() {
	s.state = Finished
	names := s.WinningCarNames()
	s.out.Report(s.printer.Sprintf(i18n.WinnerKey, strings.Join(names, carname.Delimiter)))
	if s.recorder != nil {
		s.recorder.RaceFinished(s.race.Round(), s.race.Snapshot(), names)
	}
	logging.Info("race finished", logging.Fields{"winners": names, "max_distance": s.race.MaxDistance()})
}

// WinningCarNames returns the winners in input order, or nil before the
// race has finished.
func (s *Simulator) WinningCarNames() []string {
	if s.state != Finished {
		return nil
	}
	winners := s.race.Winners()
	names := make([]string, len(winners))
	for i, c := range winners {
		names[i] = c.Name()
	}
	return names
}

// Standings returns the current distance of every car, or nil without a race.
func (s *Simulator) Standings() []race.Standing {
	if s.race == nil {
		return nil
	}
	return s.race.Snapshot()
}
