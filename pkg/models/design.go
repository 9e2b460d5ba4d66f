package models

import (
	"time"

	"github.com/kd9vfw/flowerpot/pkg/rf"
)

// Design represents a stored antenna design: the operating point, the element
// specs used, and everything derived from them. Computed values are immutable
// once stored; re-planning creates a new design.
type Design struct {
	ID            string              `json:"id"`
	Label         string              `json:"label"`
	Band          rf.BandName         `json:"band"`
	FreqMHz       float64             `json:"freq_mhz"`
	Coax          rf.CoaxType         `json:"coax"`
	Geometry      rf.TubeGeometry     `json:"geometry"`
	Elements      []rf.ElementLengths `json:"elements"`
	Sections      rf.SectionPlan      `json:"sections"`
	CutSheetS3Key *string             `json:"cut_sheet_s3_key,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}
