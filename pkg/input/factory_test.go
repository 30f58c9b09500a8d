package input

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactory_Create(t *testing.T) {
	factory := NewFactory(fixedAxes{AxisHorizontal: 1, AxisVertical: 1}, nil)

	tests := []struct {
		name string
		kind Kind
		want any
	}{
		{"ai", KindAI, &AiProvider{}},
		{"controller", KindController, &ControllerProvider{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := factory.Create(tt.kind)
			require.NoError(t, err)
			require.NotNil(t, p)
			assert.IsType(t, tt.want, p)

			// No poll yet.
			assert.Zero(t, p.Rotation())
			assert.Zero(t, p.Thrust())
		})
	}
}

func TestFactory_CreateUnsupportedKind(t *testing.T) {
	factory := NewFactory(nil, nil)

	for _, kind := range []Kind{-1, 2, 99} {
		p, err := factory.Create(kind)
		assert.Nil(t, p)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrUnsupportedProviderKind))
	}
}

func TestFactory_ReturnsIndependentInstances(t *testing.T) {
	factory := NewFactory(fixedAxes{AxisHorizontal: 0.5, AxisVertical: 0.5}, SeededRandom(3))

	for _, kind := range []Kind{KindAI, KindController} {
		a, err := factory.Create(kind)
		require.NoError(t, err)
		b, err := factory.Create(kind)
		require.NoError(t, err)

		assert.NotSame(t, a, b)

		a.Poll()
		assert.Zero(t, b.Rotation(), "polling one provider must not change another")
		assert.Zero(t, b.Thrust())
	}
}

func TestFactory_AiProvidersDoNotShareRandomSource(t *testing.T) {
	var created []*sequenceSource
	factory := NewFactory(nil, func() RandomSource {
		src := &sequenceSource{values: []float64{0.5, 0.5}}
		created = append(created, src)
		return src
	})

	_, err := factory.Create(KindAI)
	require.NoError(t, err)
	_, err = factory.Create(KindAI)
	require.NoError(t, err)

	assert.Len(t, created, 2)
	assert.NotSame(t, created[0], created[1])
}

func TestSeededRandom(t *testing.T) {
	assert.Nil(t, SeededRandom(0))

	first := SeededRandom(11)
	second := SeededRandom(11)
	a, b := first(), second()
	assert.Equal(t, a.Uniform(-1, 1), b.Uniform(-1, 1))

	c := first()
	assert.NotEqual(t, NewRandomSource(11).Uniform(-1, 1), c.Uniform(-1, 1))
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		input   string
		want    Kind
		wantErr bool
	}{
		{"ai", KindAI, false},
		{"AI", KindAI, false},
		{"controller", KindController, false},
		{" Controller ", KindController, false},
		{"network", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseKind(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedProviderKind)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKind_JSON(t *testing.T) {
	type settings struct {
		InputType Kind `json:"inputType"`
	}

	data, err := json.Marshal(settings{InputType: KindController})
	require.NoError(t, err)
	assert.JSONEq(t, `{"inputType":"controller"}`, string(data))

	var s settings
	require.NoError(t, json.Unmarshal([]byte(`{"inputType":"AI"}`), &s))
	assert.Equal(t, KindAI, s.InputType)

	err = json.Unmarshal([]byte(`{"inputType":"remote"}`), &s)
	assert.ErrorIs(t, err, ErrUnsupportedProviderKind)

	_, err = json.Marshal(settings{InputType: Kind(5)})
	assert.Error(t, err)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "ai", KindAI.String())
	assert.Equal(t, "controller", KindController.String())
	assert.Equal(t, "Kind(9)", Kind(9).String())
	assert.False(t, Kind(9).Valid())
}
