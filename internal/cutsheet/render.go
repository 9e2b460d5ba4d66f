// Package cutsheet renders printable cut sheets for stored designs: the
// element cut table, the section split, and the tuning notes a builder needs
// at the workbench.
package cutsheet

import (
	"fmt"
	"strings"

	"github.com/kd9vfw/flowerpot/pkg/models"
	"github.com/kd9vfw/flowerpot/pkg/rf"
)

// ContentType is the MIME type cut sheets are stored under.
const ContentType = "text/plain"

const mmPerInch = 25.4

// Render produces the plain-text cut sheet for a design.
func Render(design *models.Design) string {
	var b strings.Builder
	rule := strings.Repeat("=", 70)

	fmt.Fprintln(&b, rule)
	fmt.Fprintf(&b, "FLOWERPOT ANTENNA CUT SHEET - %s\n", design.Label)
	fmt.Fprintln(&b, rule)
	fmt.Fprintf(&b, "Band:             %s\n", design.Band)
	fmt.Fprintf(&b, "Frequency:        %.3f MHz\n", design.FreqMHz)
	if wl, err := rf.WavelengthMM(design.FreqMHz); err == nil {
		fmt.Fprintf(&b, "Wavelength:       %.1fmm\n", wl)
	}
	fmt.Fprintf(&b, "Coax:             %s (%.1fmm OD, vf %.2f)\n",
		design.Coax.Name, design.Coax.ODMM, design.Coax.VelocityFactor)
	fmt.Fprintln(&b, strings.Repeat("-", 70))

	for _, el := range design.Elements {
		fmt.Fprintf(&b, "%-18s cut %.1fmm (%.1f\"), trim to %.1fmm (%.1f\")\n",
			label(el.Element),
			el.CutMM, el.CutMM/mmPerInch,
			el.NominalMM, el.NominalMM/mmPerInch)
	}
	fmt.Fprintln(&b, strings.Repeat("-", 70))

	fmt.Fprintf(&b, "Total length:     %.1fmm (%.1f\")\n",
		design.Sections.TotalLengthMM, design.Sections.TotalLengthMM/mmPerInch)
	fmt.Fprintf(&b, "Tube OD/ID:       %.0f/%.0fmm, %.1fmm wall\n",
		design.Geometry.TubeODMM, design.Geometry.TubeIDMM(), design.Geometry.WallMM)
	fmt.Fprintf(&b, "Sleeve channel:   %.0fmm ID\n", design.Geometry.SleeveChannelIDMM)
	fmt.Fprintf(&b, "Sections:         %d total at %.0fmm body, %d sleeve\n",
		design.Sections.NumSections, design.Sections.SectionBodyMM, design.Sections.SleeveSections)
	fmt.Fprintf(&b, "Feedpoint:        top of section %d\n", design.Sections.FeedpointSection)
	fmt.Fprintln(&b, rule)

	fmt.Fprintln(&b, "TUNING: cut every element at its CUT length. Assemble, sweep SWR")
	fmt.Fprintln(&b, "across the band, and trim the radiator in 5mm steps toward the")
	fmt.Fprintln(&b, "trim-to length until the SWR dip lands on the target frequency.")
	fmt.Fprintln(&b, "Never trim below the trim-to length; extend instead if you overshoot.")
	fmt.Fprintln(&b, rule)

	return b.String()
}

func label(spec rf.ElementSpec) string {
	switch spec.Name {
	case rf.ElementSleeve:
		return fmt.Sprintf("Sleeve (%gλ):", spec.WavelengthFraction)
	case rf.ElementRadiator:
		return fmt.Sprintf("Radiator (%gλ):", spec.WavelengthFraction)
	default:
		return string(spec.Name) + ":"
	}
}
