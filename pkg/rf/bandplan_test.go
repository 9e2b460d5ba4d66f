package rf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBandplanByFrequency(t *testing.T) {
	assert.Equal(t, BandAir, VHF.ByFrequency(127.0).Name)
	assert.Equal(t, Band2m, VHF.ByFrequency(145.5).Name)
	assert.Equal(t, BandMarine, VHF.ByFrequency(156.8).Name)
	assert.Equal(t, BandUnknown, VHF.ByFrequency(50.0).Name)
}

func TestBandplanByName(t *testing.T) {
	band := VHF.ByName(BandAir)
	assert.Equal(t, 118.0, band.LowMHz)
	assert.Equal(t, 127.0, band.CenterMHz)
	assert.Equal(t, 136.0, band.HighMHz)

	assert.Equal(t, BandUnknown, VHF.ByName("70cm").Name)
}

func TestBandOrderingInvariant(t *testing.T) {
	for name, band := range VHF {
		require.NoError(t, band.Validate(), "band %s", name)
		assert.True(t, band.Contains(band.CenterMHz))
	}

	bad := FrequencyBand{Name: "bad", LowMHz: 130, CenterMHz: 127, HighMHz: 136}
	assert.ErrorIs(t, bad.Validate(), ErrInvalidInput)
}

func TestCoaxByName(t *testing.T) {
	coax, err := CoaxByName("RG-8X")
	require.NoError(t, err)
	assert.Equal(t, 6.1, coax.ODMM)

	_, err = CoaxByName("LMR-400")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestTubeGeometryDerived(t *testing.T) {
	geo := DefaultTubeGeometry()
	assert.Equal(t, 27.0, geo.TubeIDMM())
	assert.Equal(t, 215.0, geo.SectionBodyLengthMM())
}
