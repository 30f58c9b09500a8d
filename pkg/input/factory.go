package input

import (
	"fmt"
	"strings"
)

// Kind selects which Provider variant a Factory builds.
type Kind int

const (
	KindAI Kind = iota
	KindController
)

// String returns the configuration name of the kind.
func (k Kind) String() string {
	switch k {
	case KindAI:
		return "ai"
	case KindController:
		return "controller"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	return k == KindAI || k == KindController
}

// ParseKind converts a configuration name to a Kind. Matching ignores case.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ai":
		return KindAI, nil
	case "controller":
		return KindController, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedProviderKind, s)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedProviderKind, int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Factory builds a new, independently owned Provider per call.
type Factory struct {
	axes   AxisReader
	random func() RandomSource
}

// NewFactory creates a factory. Controller providers share axes as their
// read-only source; every AI provider gets a fresh source from random.
// A nil random constructor yields unseeded PCG sources.
func NewFactory(axes AxisReader, random func() RandomSource) *Factory {
	if axes == nil {
		axes = unavailableAxes{}
	}
	if random == nil {
		random = func() RandomSource { return NewRandomSource(0) }
	}
	return &Factory{axes: axes, random: random}
}

// Create returns a provider for kind. Kinds outside the known set fail
// with ErrUnsupportedProviderKind and a nil provider.
func (f *Factory) Create(kind Kind) (Provider, error) {
	switch kind {
	case KindAI:
		return NewAiProvider(f.random()), nil
	case KindController:
		return NewControllerProvider(f.axes), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedProviderKind, kind)
}

// SeededRandom returns a random constructor for NewFactory whose sources are
// seeded deterministically from seed, one distinct stream per call.
// A zero seed yields unseeded sources.
func SeededRandom(seed uint64) func() RandomSource {
	if seed == 0 {
		return nil
	}
	next := seed
	return func() RandomSource {
		s := NewRandomSource(next)
		next++
		return s
	}
}
