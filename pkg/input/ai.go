package input

import (
	"math/rand/v2"
)

// RandomSource draws uniformly distributed values.
type RandomSource interface {
	Uniform(min, max float64) float64
}

// PCGSource is a RandomSource backed by a PCG generator.
type PCGSource struct {
	rng *rand.Rand
}

// NewRandomSource returns a PCGSource seeded with seed. A zero seed picks a
// random one, so two unseeded sources never share a sequence.
func NewRandomSource(seed uint64) *PCGSource {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return &PCGSource{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Uniform returns a value in [min, max].
func (s *PCGSource) Uniform(min, max float64) float64 {
	v := min + s.rng.Float64()*(max-min)
	if v > max {
		return max
	}
	return v
}

// AiProvider redraws an independent random signal on every poll.
type AiProvider struct {
	random RandomSource
	signal SignalPair
}

// NewAiProvider creates a provider drawing from random. A nil source gets
// its own unseeded PCGSource.
func NewAiProvider(random RandomSource) *AiProvider {
	if random == nil {
		random = NewRandomSource(0)
	}
	return &AiProvider{random: random}
}

// Poll draws rotation and thrust from [-1, 1].
func (a *AiProvider) Poll() {
	a.signal = SignalPair{
		Rotation: clampUnit(a.random.Uniform(-1, 1)),
		Thrust:   clampUnit(a.random.Uniform(-1, 1)),
	}
}

// Rotation implements Provider.
func (a *AiProvider) Rotation() float64 {
	return a.signal.Rotation
}

// Thrust implements Provider.
func (a *AiProvider) Thrust() float64 {
	return a.signal.Thrust
}

func clampUnit(v float64) float64 {
	switch {
	case v < -1:
		return -1
	case v > 1:
		return 1
	}
	return v
}
