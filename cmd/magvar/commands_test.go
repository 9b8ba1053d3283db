package main

import (
	"bytes"
	"encoding/json"
	"magvar-service/internal/api/dto"
	"magvar-service/internal/domain"
	"magvar-service/internal/geomag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVariationCommand(t *testing.T) {
	out, err := run(t, "variation", "--lat", "40.015", "--lon", "-105.2705", "--date", "2025-01-01")
	require.NoError(t, err)

	var res dto.VariationResponse
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.InDelta(t, 7.8088, res.Variation, 0.01)
	assert.Equal(t, "WMM2025", res.Model.Name)
}

func TestFieldCommand(t *testing.T) {
	out, err := run(t, "field", "--lat", "80", "--lon", "0", "--alt", "100", "--date", "2027.5")
	require.NoError(t, err)

	var res dto.FieldResponse
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.NotNil(t, res.Declination)
	assert.InDelta(t, 2.1605, *res.Declination, 0.01)
	assert.InDelta(t, 83.2852, res.Inclination, 0.01)
	assert.InDelta(t, 53034.256, res.Total, 1)
}

func TestFieldCommandAtPole(t *testing.T) {
	out, err := run(t, "field", "--lat", "90", "--lon", "0", "--date", "2025")
	require.NoError(t, err)

	var res dto.FieldResponse
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.False(t, res.BearingDefined)
	assert.Nil(t, res.Declination)
}

func TestHeadingCommand(t *testing.T) {
	out, err := run(t, "heading", "--lat", "40.015", "--lon", "-105.2705", "--date", "2025-01-01",
		"--heading", "90", "--direction", "true_to_compass")
	require.NoError(t, err)

	var res dto.HeadingResponse
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.InDelta(t, 90-res.Variation, res.Output, 1e-9)
	assert.Equal(t, "true_to_compass", res.Direction)
}

func TestModelCommand(t *testing.T) {
	out, err := run(t, "model")
	require.NoError(t, err)

	var res dto.ModelInfoResponse
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, geomag.MaxDegree, res.MaxDegree)
	assert.Equal(t, 90, res.CoefficientCount)
	assert.Equal(t, "WMM2025 epoch 2025.0", res.Label)
}

func TestCommandErrors(t *testing.T) {
	_, err := run(t, "variation", "--lat", "40", "--lon", "0", "--date", "someday")
	require.ErrorIs(t, err, errInvalidDate)

	_, err = run(t, "variation", "--lat", "95", "--lon", "0", "--date", "2025")
	require.Error(t, err)

	_, err = run(t, "variation", "--lon", "0")
	require.Error(t, err)

	_, err = run(t, "variation", "--lat", "90", "--lon", "0", "--date", "2025")
	require.ErrorIs(t, err, geomag.ErrNoBearing)

	_, err = run(t, "heading", "--lat", "40", "--lon", "0", "--heading", "10", "--direction", "sideways")
	require.Error(t, err)
}

func TestVariationCommandDegreesMinutes(t *testing.T) {
	out, err := run(t, "variation", "--lat-dm", "40 00.9 N", "--lon-dm", "105 16.23 W", "--date", "2025-01-01")
	require.NoError(t, err)

	var res dto.VariationResponse
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.InDelta(t, 40.015, res.Latitude, 1e-9)
	assert.InDelta(t, -105.2705, res.Longitude, 1e-9)
	assert.Equal(t, "7.81° E", res.VariationText)
	assert.Equal(t, "40° 0.90' N, 105° 16.23' W", res.Position)
}

func TestCompassErrorCommand(t *testing.T) {
	out, err := run(t, "compass-error", "--lat", "40.015", "--lon", "-105.2705", "--date", "2025-01-01",
		"--true-heading", "90", "--compass", "84")
	require.NoError(t, err)

	var res dto.CompassErrorResponse
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.InDelta(t, 84-(90-res.Variation), res.CompassError, 1e-9)
	assert.InDelta(t, 7.8088, res.Variation, 0.01)
}

func TestPositionFlagErrors(t *testing.T) {
	_, err := run(t, "variation", "--lat", "40", "--lat-dm", "40 0 N", "--lon", "0", "--date", "2025")
	require.Error(t, err)

	_, err = run(t, "variation", "--lat-dm", "40 0 E", "--lon", "0", "--date", "2025")
	require.ErrorIs(t, err, domain.ErrInvalidHemisphere)

	_, err = run(t, "variation", "--lat", "40", "--lon-dm", "0 7.8", "--date", "2025")
	require.ErrorIs(t, err, domain.ErrInvalidDM)

	_, err = run(t, "compass-error", "--lat", "40", "--lon", "0", "--true-heading", "90")
	require.Error(t, err)
}
