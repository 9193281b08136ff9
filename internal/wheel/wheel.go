// Package wheel picks the winning prize and plans the spin animation.
package wheel

import (
	"errors"
	"math/rand/v2"
	"time"

	"github.com/naveenspark/lottery-wheel/pkg/domain"
)

// ErrNoPrizes is returned by Pick for an empty wheel.
var ErrNoPrizes = errors.New("wheel: no prizes")

// Spin timing: the highlight starts fast and slows to a stop.
const (
	MinDelay    = 25 * time.Millisecond
	MaxDelay    = 320 * time.Millisecond
	DefaultLaps = 3
)

// Pick returns the index of the winning prize. When any prize has a positive
// weight the draw is weighted and prizes without weight cannot win; otherwise
// every prize is equally likely. A nil rng uses the global source.
func Pick(prizes []domain.Prize, rng *rand.Rand) (int, error) {
	if len(prizes) == 0 {
		return 0, ErrNoPrizes
	}
	nextFloat := rand.Float64
	nextInt := rand.IntN
	if rng != nil {
		nextFloat = rng.Float64
		nextInt = rng.IntN
	}

	var total float64
	for _, p := range prizes {
		if p.Weight > 0 {
			total += p.Weight
		}
	}
	if total == 0 {
		return nextInt(len(prizes)), nil
	}

	r := nextFloat() * total
	last := 0
	for i, p := range prizes {
		if p.Weight <= 0 {
			continue
		}
		last = i
		if r < p.Weight {
			return i, nil
		}
		r -= p.Weight
	}
	// Float rounding can leave r just above zero after the last weight.
	return last, nil
}

// Step is one frame of the spin: the highlighted segment and how long it
// stays lit.
type Step struct {
	Index int
	Delay time.Duration
}

// Schedule returns the frames of a spin over n segments that runs laps full
// turns starting at segment 0 and stops on winner.
func Schedule(n, winner, laps int) []Step {
	if n <= 0 || winner < 0 || winner >= n {
		return nil
	}
	if laps < 0 {
		laps = 0
	}
	total := laps*n + winner + 1
	steps := make([]Step, total)
	for i := range steps {
		progress := 0.0
		if total > 1 {
			progress = float64(i) / float64(total-1)
		}
		delay := MinDelay + time.Duration(float64(MaxDelay-MinDelay)*progress*progress)
		steps[i] = Step{Index: i % n, Delay: delay}
	}
	return steps
}
