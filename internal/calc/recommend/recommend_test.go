package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCTContactTimeForDose(t *testing.T) {
	res, err := CT(CTInput{PH: 7.5, TemperatureC: 15, DoseMgL: 0.5})
	require.NoError(t, err)
	assert.Equal(t, 32.0, res.Lookup.Required)
	assert.Equal(t, 64.0, res.MinContactMin)

	// never below the minimum tank residence
	res, err = CT(CTInput{PH: 7.5, TemperatureC: 20, DoseMgL: 2})
	require.NoError(t, err)
	assert.Equal(t, MinContactMin, res.MinContactMin)
}

func TestCTDoseForContactTime(t *testing.T) {
	res, err := CT(CTInput{PH: 7.5, TemperatureC: 20, ContactMin: 30})
	require.NoError(t, err)
	assert.Equal(t, 0.74, res.MinDoseMgL)

	res, err = CT(CTInput{PH: 9, TemperatureC: 5, ContactMin: 10})
	require.NoError(t, err)
	assert.Equal(t, 11.0, res.MinDoseMgL)
	assert.Contains(t, res.Notes, "máximo práctico")
}

func TestCTNeedsAnInput(t *testing.T) {
	_, err := CT(CTInput{PH: 7.5, TemperatureC: 20})
	assert.Error(t, err)
}
