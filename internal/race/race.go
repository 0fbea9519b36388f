// Package race holds the cars of one race and decides who is ahead.
package race

import "errors"

// ErrEmptyRace is returned when a race is built without any car.
var ErrEmptyRace = errors.New("race needs at least one car")

// Standing is a point-in-time view of one car.
type Standing struct {
	Name     string `json:"name"`
	Distance int    `json:"distance"`
}

type Race struct {
	cars  []*Car
	round int
}

// New builds a race over cars in the given order. Duplicate names are kept
// as distinct cars.
func New(cars []*Car) (*Race, error) {
	if len(cars) == 0 {
		return nil, ErrEmptyRace
	}
	own := make([]*Car, len(cars))
	copy(own, cars)
	return &Race{cars: own}, nil
}

// RunRound lets every car attempt one move, in input order.
func (r *Race) RunRound() {
	for _, c := range r.cars {
		c.Move()
	}
	r.round++
}

// Round is the number of completed rounds.
func (r *Race) Round() int { return r.round }

// Cars returns the cars in input order. The slice is a copy.
func (r *Race) Cars() []*Car {
	out := make([]*Car, len(r.cars))
	copy(out, r.cars)
	return out
}

func (r *Race) MaxDistance() int {
	best := r.cars[0].Distance()
	for _, c := range r.cars[1:] {
		if d := c.Distance(); d > best {
			best = d
		}
	}
	return best
}

// Winners returns every car sitting on the max distance, in input order.
func (r *Race) Winners() []*Car {
	best := r.MaxDistance()
	var out []*Car
	for _, c := range r.cars {
		if c.Distance() == best {
			out = append(out, c)
		}
	}
	return out
}

func (r *Race) Snapshot() []Standing {
	out := make([]Standing, 0, len(r.cars))
	for _, c := range r.cars {
		out = append(out, Standing{Name: c.Name(), Distance: c.Distance()})
	}
	return out
}
