package services

import (
	"math/rand/v2"
	"time"
)

type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func NewSystemClock() Clock {
	return systemClock{}
}

// RandomSource supplies uniform integers in [0, n).
type RandomSource interface {
	IntN(n int) int
}

type systemRandom struct{}

func (systemRandom) IntN(n int) int { return rand.IntN(n) }

func NewSystemRandom() RandomSource {
	return systemRandom{}
}
