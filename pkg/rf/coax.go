package rf

import "fmt"

// CoaxType describes a coax the feedline channel must accommodate.
// VelocityFactor is the feedline's, not the radiating element's; the sleeve
// itself sits in air.
type CoaxType struct {
	Name           string  `json:"name"`
	ODMM           float64 `json:"od_mm"`
	VelocityFactor float64 `json:"velocity_factor"`
}

// Coax catalog. ODs match the ones the printed channel is sized for.
var (
	CoaxRG58 = CoaxType{Name: "RG-58", ODMM: 5.0, VelocityFactor: 0.66}
	CoaxRG8X = CoaxType{Name: "RG-8X", ODMM: 6.1, VelocityFactor: 0.78}
	CoaxRG6  = CoaxType{Name: "RG-6", ODMM: 6.8, VelocityFactor: 0.85}
)

// CoaxTypes lists the supported coax types, heaviest loss first.
func CoaxTypes() []CoaxType {
	return []CoaxType{CoaxRG58, CoaxRG8X, CoaxRG6}
}

// CoaxByName looks up a coax type by its catalog name.
func CoaxByName(name string) (CoaxType, error) {
	for _, c := range CoaxTypes() {
		if c.Name == name {
			return c, nil
		}
	}
	return CoaxType{}, fmt.Errorf("%w: unknown coax type %q", ErrInvalidInput, name)
}
