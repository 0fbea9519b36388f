package race

import "strings"

const (
	// DieFaces is the number of equally likely outcomes of one move attempt.
	DieFaces = 10
	// MoveThreshold is the smallest draw that advances a car.
	MoveThreshold = 4
)

// Rng is the randomness a car draws from. *rand.Rand satisfies it.
type Rng interface {
	Intn(n int) int
}

type Car struct {
	name     string
	distance int
	attempts int
	rng      Rng
}

func NewCar(name string, rng Rng) *Car {
	return &Car{name: name, rng: rng}
}

// Move draws once in [0, DieFaces) and advances by one on MoveThreshold or more.
func (c *Car) Move() {
	c.attempts++
	if c.rng.Intn(DieFaces) >= MoveThreshold {
		c.distance++
	}
}

func (c *Car) Name() string  { return c.name }
func (c *Car) Distance() int { return c.distance }
func (c *Car) Attempts() int { return c.attempts }

// Trail renders the distance as a run of dashes.
func (c *Car) Trail() string { return strings.Repeat("-", c.distance) }
