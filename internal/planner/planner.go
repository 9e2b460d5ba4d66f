// Package planner turns a requested operating point into a complete antenna
// design: validated geometry, element cut lengths, and a printable section
// split.
package planner

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kd9vfw/flowerpot/pkg/models"
	"github.com/kd9vfw/flowerpot/pkg/rf"
)

// PlanRequest carries the inputs for a design. Either Band or FreqMHz must be
// set; an explicit frequency wins over the band center.
type PlanRequest struct {
	Label      string
	Band       string
	FreqMHz    float64
	Coax       string
	TrimMargin *float64
	Geometry   *rf.TubeGeometry
}

// PlannerService computes designs from plan requests
type PlannerService interface {
	PlanDesign(req PlanRequest) (*models.Design, error)
}

// Defaults carries per-deployment fallbacks applied when a request leaves the
// corresponding field unset.
type Defaults struct {
	TrimMargin       float64
	MaxPrintHeightMM float64
	Coax             string
}

type plannerService struct {
	bands    rf.Bandplan
	defaults *Defaults
}

// NewPlannerService creates a planner over the given band plan
func NewPlannerService(bands rf.Bandplan) PlannerService {
	return &plannerService{bands: bands}
}

// NewPlannerServiceWithDefaults creates a planner whose request fallbacks come
// from deployment configuration instead of the built-in constants.
func NewPlannerServiceWithDefaults(bands rf.Bandplan, defaults Defaults) PlannerService {
	return &plannerService{bands: bands, defaults: &defaults}
}

// PlanDesign validates the request, resolves the operating point, and computes
// lengths and the section plan. The result is ready to persist; nothing is
// stored here.
func (s *plannerService) PlanDesign(req PlanRequest) (*models.Design, error) {
	freq, band, err := s.resolveFrequency(req)
	if err != nil {
		return nil, err
	}

	coaxName := req.Coax
	if coaxName == "" && s.defaults != nil {
		coaxName = s.defaults.Coax
	}
	coax := rf.CoaxRG8X
	if coaxName != "" {
		coax, err = rf.CoaxByName(coaxName)
		if err != nil {
			return nil, err
		}
	}

	geometry := rf.DefaultTubeGeometry()
	if req.Geometry != nil {
		geometry = *req.Geometry
	} else if s.defaults != nil && s.defaults.MaxPrintHeightMM > 0 {
		geometry.MaxPrintHeightMM = s.defaults.MaxPrintHeightMM
	}
	if err := rf.ValidateGeometry(geometry, coax); err != nil {
		return nil, err
	}

	elements := rf.DefaultElements()
	margin := req.TrimMargin
	if margin == nil && s.defaults != nil {
		margin = &s.defaults.TrimMargin
	}
	if margin != nil {
		for i := range elements {
			elements[i].TrimMargin = *margin
		}
	}

	lengths, err := rf.CutLengths(freq, elements)
	if err != nil {
		return nil, err
	}

	sections, err := rf.PlanSections(geometry, lengths)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	return &models.Design{
		ID:        uuid.New().String(),
		Label:     req.Label,
		Band:      band,
		FreqMHz:   freq,
		Coax:      coax,
		Geometry:  geometry,
		Elements:  lengths,
		Sections:  sections,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func (s *plannerService) resolveFrequency(req PlanRequest) (float64, rf.BandName, error) {
	if req.FreqMHz > 0 {
		return req.FreqMHz, s.bands.ByFrequency(req.FreqMHz).Name, nil
	}
	if req.FreqMHz < 0 {
		return 0, rf.BandUnknown, fmt.Errorf("%w: frequency must be positive, got %g MHz", rf.ErrInvalidInput, req.FreqMHz)
	}
	if req.Band == "" {
		return 0, rf.BandUnknown, fmt.Errorf("%w: either band or frequency is required", rf.ErrInvalidInput)
	}

	band := s.bands.ByName(rf.BandName(req.Band))
	if band.Name == rf.BandUnknown {
		return 0, rf.BandUnknown, fmt.Errorf("%w: unknown band %q", rf.ErrInvalidInput, req.Band)
	}
	return band.CenterMHz, band.Name, nil
}
