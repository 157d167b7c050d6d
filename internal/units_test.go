package internal

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDisplayUnit(t *testing.T) {
	for in, want := range map[string]DisplayUnit{
		"miles":      UnitMiles,
		"mi":         UnitMiles,
		" Miles ":    UnitMiles,
		"kilometers": UnitKilometers,
		"km":         UnitKilometers,
		"kilometres": UnitKilometers,
	} {
		got, err := ParseDisplayUnit(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseDisplayUnit("furlongs")
	var cfgErr *ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "furlongs", cfgErr.Value)
}

func TestUnitConversions(t *testing.T) {
	mi, err := UnitMiles.FromBase(1609.344)
	require.NoError(t, err)
	assert.InDelta(t, 1, mi, 1e-12)

	km, err := UnitKilometers.FromBase(2500)
	require.NoError(t, err)
	assert.InDelta(t, 2.5, km, 1e-12)

	meters, err := UnitMiles.ToBase(2)
	require.NoError(t, err)
	assert.InDelta(t, 3218.688, meters, 1e-9)

	for _, v := range []float64{0, 0.5, 12.25, 4000} {
		for _, u := range []DisplayUnit{UnitMiles, UnitKilometers} {
			base, err := u.ToBase(v)
			require.NoError(t, err)
			back, err := u.FromBase(base)
			require.NoError(t, err)
			assert.InDelta(t, v, back, 1e-9)
		}
	}
}

func TestUnknownUnitFails(t *testing.T) {
	_, err := UnitUnknown.FromBase(10)
	assert.Error(t, err)
	_, err = UnitUnknown.ToBase(10)
	assert.Error(t, err)
	assert.False(t, UnitUnknown.Valid())
}

func TestFormatNumber(t *testing.T) {
	for v, want := range map[float64]string{
		0:        "0",
		4:        "4",
		0.4:      "0.4",
		1.434:    "1.43",
		1234.567: "1,234.57",
	} {
		assert.Equal(t, want, FormatNumber(v))
	}
}

func TestFormatDistance(t *testing.T) {
	assert.Equal(t, "0 mi", FormatDistance(0, UnitMiles))
	assert.Equal(t, "3.5 km", FormatDistance(3.5, UnitKilometers))
}
