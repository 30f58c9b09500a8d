package input

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedAxes reports constant values per axis name.
type fixedAxes map[string]float64

func (f fixedAxes) Axis(name string) (float64, error) {
	v, ok := f[name]
	if !ok {
		return 0, ErrInputUnavailable
	}
	return v, nil
}

// sequenceSource replays a fixed list of draws.
type sequenceSource struct {
	values []float64
	next   int
}

func (s *sequenceSource) Uniform(min, max float64) float64 {
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}

func TestControllerProvider_Poll(t *testing.T) {
	p := NewControllerProvider(fixedAxes{AxisHorizontal: 0.25, AxisVertical: -0.75})

	assert.Zero(t, p.Rotation())
	assert.Zero(t, p.Thrust())

	p.Poll()

	assert.Equal(t, 0.25, p.Rotation())
	assert.Equal(t, -0.75, p.Thrust())
	assert.Equal(t, SignalPair{Rotation: 0.25, Thrust: -0.75}, SignalOf(p))
}

func TestControllerProvider_PassesOutOfRangeValues(t *testing.T) {
	p := NewControllerProvider(fixedAxes{AxisHorizontal: 1.5, AxisVertical: -3})
	p.Poll()

	assert.Equal(t, 1.5, p.Rotation())
	assert.Equal(t, -3.0, p.Thrust())
}

func TestControllerProvider_HoldsLastValueWhenUnavailable(t *testing.T) {
	available := true
	axes := AxisReaderFunc(func(name string) (float64, error) {
		if !available {
			return 0, ErrInputUnavailable
		}
		if name == AxisHorizontal {
			return -1, nil
		}
		return 0.5, nil
	})

	p := NewControllerProvider(axes)
	p.Poll()
	require.Equal(t, -1.0, p.Rotation())
	require.Equal(t, 0.5, p.Thrust())

	available = false
	p.Poll()

	assert.Equal(t, -1.0, p.Rotation())
	assert.Equal(t, 0.5, p.Thrust())
}

func TestControllerProvider_PartialReadKeepsBothAxes(t *testing.T) {
	calls := 0
	axes := AxisReaderFunc(func(name string) (float64, error) {
		calls++
		if calls > 2 && name == AxisVertical {
			return 0, errors.New("vertical axis lost")
		}
		return 0.5, nil
	})

	p := NewControllerProvider(axes)
	p.Poll()
	p.Poll()

	assert.Equal(t, SignalPair{Rotation: 0.5, Thrust: 0.5}, SignalOf(p))
}

func TestControllerProvider_NilReaderStaysAtZero(t *testing.T) {
	p := NewControllerProvider(nil)
	p.Poll()

	assert.Zero(t, p.Rotation())
	assert.Zero(t, p.Thrust())
}

func TestAiProvider_PollWithinUnitRange(t *testing.T) {
	p := NewAiProvider(NewRandomSource(42))

	for i := 0; i < 1000; i++ {
		p.Poll()
		assert.GreaterOrEqual(t, p.Rotation(), -1.0)
		assert.LessOrEqual(t, p.Rotation(), 1.0)
		assert.GreaterOrEqual(t, p.Thrust(), -1.0)
		assert.LessOrEqual(t, p.Thrust(), 1.0)
	}
}

func TestAiProvider_ClampsMisbehavingSource(t *testing.T) {
	p := NewAiProvider(&sequenceSource{values: []float64{-2, 7}})
	p.Poll()

	assert.Equal(t, -1.0, p.Rotation())
	assert.Equal(t, 1.0, p.Thrust())
}

func TestAiProvider_DrawsRotationThenThrust(t *testing.T) {
	src := &sequenceSource{values: []float64{0.1, -0.2, 0.3, -0.4}}
	p := NewAiProvider(src)

	p.Poll()
	assert.Equal(t, SignalPair{Rotation: 0.1, Thrust: -0.2}, SignalOf(p))

	p.Poll()
	assert.Equal(t, SignalPair{Rotation: 0.3, Thrust: -0.4}, SignalOf(p))
}

func TestPCGSource_SameSeedSameSequence(t *testing.T) {
	a := NewRandomSource(7)
	b := NewRandomSource(7)

	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Uniform(-1, 1), b.Uniform(-1, 1))
	}
}

func TestPCGSource_UniformBounds(t *testing.T) {
	s := NewRandomSource(0)
	for i := 0; i < 1000; i++ {
		v := s.Uniform(-1, 1)
		assert.GreaterOrEqual(t, v, -1.0)
		assert.LessOrEqual(t, v, 1.0)
	}
}
