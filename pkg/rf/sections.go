package rf

import (
	"fmt"
	"math"
)

// SectionPlan describes how the antenna splits into printable tube sections.
// The sleeve sections carry the copper foil channel; the feedpoint sits at the
// top of the last sleeve section.
type SectionPlan struct {
	SectionBodyMM    float64 `json:"section_body_mm"`
	TotalLengthMM    float64 `json:"total_length_mm"`
	NumSections      int     `json:"num_sections"`
	SleeveSections   int     `json:"sleeve_sections"`
	FeedpointSection int     `json:"feedpoint_section"`
}

// PlanSections computes the section split for the given element cut lengths.
// Total mast length is the sum of all element cut lengths (the radiator stacks
// on top of the sleeve).
func PlanSections(geo TubeGeometry, lengths []ElementLengths) (SectionPlan, error) {
	body := geo.SectionBodyLengthMM()
	if body <= 0 {
		return SectionPlan{}, fmt.Errorf("%w: max print height %gmm leaves no usable section length after %gmm joint",
			ErrInvalidInput, geo.MaxPrintHeightMM, geo.JointLengthMM)
	}

	var total, sleeve float64
	for _, l := range lengths {
		total += l.CutMM
		if l.Element.Name == ElementSleeve {
			sleeve += l.CutMM
		}
	}
	if total <= 0 {
		return SectionPlan{}, fmt.Errorf("%w: no element lengths to plan", ErrInvalidInput)
	}

	plan := SectionPlan{
		SectionBodyMM:  body,
		TotalLengthMM:  total,
		NumSections:    int(math.Ceil(total / body)),
		SleeveSections: int(math.Ceil(sleeve / body)),
	}
	plan.FeedpointSection = plan.SleeveSections
	return plan, nil
}

// ValidateGeometry applies the printed-part fit checks: the male joint plug
// must keep a usable wall, the sleeve channel must fit inside the tube bore,
// and the coax must pass through the sleeve channel with room for the foil.
func ValidateGeometry(geo TubeGeometry, coax CoaxType) error {
	innerR := geo.TubeIDMM() / 2
	maleOuterR := innerR - geo.JointClearanceMM
	maleInnerR := innerR - geo.WallMM

	if maleInnerR >= maleOuterR-0.5 {
		return fmt.Errorf("%w: male plug wall too thin (%.2fmm outer vs %.2fmm inner radius)",
			ErrInvalidInput, maleOuterR, maleInnerR)
	}
	if geo.SleeveChannelIDMM >= geo.TubeIDMM()-2 {
		return fmt.Errorf("%w: sleeve channel ID %gmm too large for tube ID %gmm",
			ErrInvalidInput, geo.SleeveChannelIDMM, geo.TubeIDMM())
	}
	if coax.ODMM >= geo.SleeveChannelIDMM-4 {
		return fmt.Errorf("%w: coax %s OD %gmm too large for %gmm sleeve channel",
			ErrInvalidInput, coax.Name, coax.ODMM, geo.SleeveChannelIDMM)
	}
	return nil
}
