// Package rf holds the dimension arithmetic for coaxial-sleeve (flowerpot)
// antennas: wavelength-fraction cut lengths, the VHF band plan, and the coax
// catalog. Everything in this package is pure; all lengths are millimeters.
package rf

import (
	"errors"
	"fmt"
)

// SpeedOfLightMMPerSec is c expressed in mm/s so that frequencies in Hz
// yield wavelengths in mm directly.
const SpeedOfLightMMPerSec = 299792458000.0

// ErrInvalidInput is returned for any out-of-range calculator parameter.
// Wrapped errors name the offending parameter.
var ErrInvalidInput = errors.New("invalid input")

// ElementName identifies an antenna element.
type ElementName string

const (
	ElementSleeve   ElementName = "sleeve"
	ElementRadiator ElementName = "radiator"
)

// ElementSpec describes one element as a fraction of the operating wavelength.
type ElementSpec struct {
	Name               ElementName `json:"name"`
	WavelengthFraction float64     `json:"wavelength_fraction"`
	VelocityFactor     float64     `json:"velocity_factor"`
	TrimMargin         float64     `json:"trim_margin"`
}

// Validate checks the spec's numeric constraints.
func (s ElementSpec) Validate() error {
	if s.WavelengthFraction <= 0 {
		return fmt.Errorf("%w: wavelength fraction must be positive, got %g", ErrInvalidInput, s.WavelengthFraction)
	}
	if s.VelocityFactor <= 0 {
		return fmt.Errorf("%w: velocity factor must be positive, got %g", ErrInvalidInput, s.VelocityFactor)
	}
	if s.TrimMargin < 0 || s.TrimMargin >= 1 {
		return fmt.Errorf("%w: trim margin must be in [0, 1), got %g", ErrInvalidInput, s.TrimMargin)
	}
	return nil
}

// ElementLengths holds the computed lengths for one element. NominalMM is the
// electrical target length; CutMM carries the trim margin, so the builder cuts
// long and trims down to resonance.
type ElementLengths struct {
	Element   ElementSpec `json:"element"`
	NominalMM float64     `json:"nominal_mm"`
	CutMM     float64     `json:"cut_mm"`
}

// WavelengthMM returns the free-space wavelength in mm for a frequency in MHz.
func WavelengthMM(freqMHz float64) (float64, error) {
	if freqMHz <= 0 {
		return 0, fmt.Errorf("%w: frequency must be positive, got %g MHz", ErrInvalidInput, freqMHz)
	}
	return SpeedOfLightMMPerSec / (freqMHz * 1e6), nil
}

// CutLengths computes nominal and cut lengths for each element at the given
// frequency. nominal = λ × fraction × vf, cut = nominal × (1 + margin).
// NominalMM < CutMM whenever the margin is positive.
func CutLengths(freqMHz float64, specs []ElementSpec) ([]ElementLengths, error) {
	wavelength, err := WavelengthMM(freqMHz)
	if err != nil {
		return nil, err
	}

	lengths := make([]ElementLengths, 0, len(specs))
	for _, spec := range specs {
		if err := spec.Validate(); err != nil {
			return nil, fmt.Errorf("element %q: %w", spec.Name, err)
		}
		nominal := wavelength * spec.WavelengthFraction * spec.VelocityFactor
		lengths = append(lengths, ElementLengths{
			Element:   spec,
			NominalMM: nominal,
			CutMM:     nominal * (1 + spec.TrimMargin),
		})
	}
	return lengths, nil
}

// DefaultTrimMargin is the over-length allowance trimmed away during tuning.
const DefaultTrimMargin = 0.02

// DefaultElements returns the standard flowerpot element set: a quarter-wave
// sleeve (bare copper in air, vf 1.0) and a half-wave radiator (insulated
// wire, vf 0.95), both cut 2% long.
func DefaultElements() []ElementSpec {
	return []ElementSpec{
		{Name: ElementSleeve, WavelengthFraction: 0.25, VelocityFactor: 1.0, TrimMargin: DefaultTrimMargin},
		{Name: ElementRadiator, WavelengthFraction: 0.5, VelocityFactor: 0.95, TrimMargin: DefaultTrimMargin},
	}
}
