package rf

import "fmt"

// BandName is the name of a frequency band.
type BandName string

// VHF bands this planner knows about.
const (
	BandUnknown BandName = "unknown"
	BandAir     BandName = "airband"
	Band2m      BandName = "2m"
	BandMarine  BandName = "marine"
)

// FrequencyBand represents a frequency band in MHz.
// Invariant: 0 < LowMHz < CenterMHz < HighMHz.
type FrequencyBand struct {
	Name      BandName `json:"name"`
	LowMHz    float64  `json:"low_mhz"`
	CenterMHz float64  `json:"center_mhz"`
	HighMHz   float64  `json:"high_mhz"`
}

// Contains indicates if the band contains the given frequency.
func (b FrequencyBand) Contains(freqMHz float64) bool {
	return freqMHz >= b.LowMHz && freqMHz <= b.HighMHz
}

// Validate checks the band ordering invariant.
func (b FrequencyBand) Validate() error {
	if b.LowMHz <= 0 || b.LowMHz >= b.CenterMHz || b.CenterMHz >= b.HighMHz {
		return fmt.Errorf("%w: band %q requires 0 < low < center < high, got %g/%g/%g",
			ErrInvalidInput, b.Name, b.LowMHz, b.CenterMHz, b.HighMHz)
	}
	return nil
}

// UnknownBand is the unknown band that contains no frequency.
var UnknownBand = FrequencyBand{Name: BandUnknown}

// Bandplan maps band names to bands.
type Bandplan map[BandName]FrequencyBand

// ByName returns the named band, or UnknownBand.
func (p Bandplan) ByName(name BandName) FrequencyBand {
	if b, ok := p[name]; ok {
		return b
	}
	return UnknownBand
}

// ByFrequency returns the band containing the given frequency, or UnknownBand.
func (p Bandplan) ByFrequency(freqMHz float64) FrequencyBand {
	for _, b := range p {
		if b.Contains(freqMHz) {
			return b
		}
	}
	return UnknownBand
}

// VHF is the band plan covering the designs this tool targets. Airband is the
// reference design (118-136 MHz AM aircraft band centered at 127).
var VHF = Bandplan{
	BandAir: {
		Name:      BandAir,
		LowMHz:    118.0,
		CenterMHz: 127.0,
		HighMHz:   136.0,
	},
	Band2m: {
		Name:      Band2m,
		LowMHz:    144.0,
		CenterMHz: 146.0,
		HighMHz:   148.0,
	},
	BandMarine: {
		Name:      BandMarine,
		LowMHz:    156.0,
		CenterMHz: 157.1,
		HighMHz:   162.025,
	},
}
