package util

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// New returns a deterministic source for the given seed. A zero seed is
// mapped to 1 so that an unset seed still replays.
func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = 1
	}
	src := rand.NewSource(seed)
	return rand.New(src)
}

// NewSeed draws a fresh seed from crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// Sequence replays a fixed list of draws, cycling when exhausted.
// Values are reduced modulo n into [0, n), negatives included.
type Sequence struct {
	Values []int
	next   int
}

// Fixed builds a Sequence over values.
func Fixed(values ...int) *Sequence {
	return &Sequence{Values: values}
}

func (s *Sequence) Intn(n int) int {
	if len(s.Values) == 0 || n <= 0 {
		return 0
	}
	v := s.Values[s.next%len(s.Values)]
	s.next++
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// Draws reports how many values have been handed out.
func (s *Sequence) Draws() int { return s.next }
