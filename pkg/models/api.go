package models

import (
	"time"

	"github.com/kd9vfw/flowerpot/pkg/rf"
)

// HealthResponse represents the health check response
type HealthResponse struct {
	Body struct {
		Status  string    `json:"status" example:"healthy" doc:"Service health status"`
		Version string    `json:"version" example:"1.0.0" doc:"API version"`
		Time    time.Time `json:"time" doc:"Current server time"`
	}
}

// CalculateRequest asks for cut lengths at a frequency without persisting
// anything. Elements defaults to the standard sleeve + radiator pair.
type CalculateRequest struct {
	Body struct {
		FreqMHz    float64          `json:"freq_mhz" required:"true" doc:"Target center frequency in MHz"`
		TrimMargin *float64         `json:"trim_margin,omitempty" minimum:"0" maximum:"0.99" doc:"Trim margin override, fraction of nominal length"`
		Elements   []rf.ElementSpec `json:"elements,omitempty" doc:"Element specs; defaults to quarter-wave sleeve and half-wave radiator"`
	}
}

// CalculateResponseBody is the body of the calculate response
type CalculateResponseBody struct {
	FreqMHz      float64             `json:"freq_mhz" doc:"Frequency the lengths were computed for"`
	WavelengthMM float64             `json:"wavelength_mm" doc:"Free-space wavelength in mm"`
	Band         rf.BandName         `json:"band" doc:"Band containing the frequency, if known"`
	Elements     []rf.ElementLengths `json:"elements" doc:"Nominal and cut length per element, in mm"`
}

// CalculateResponse represents the computed lengths
type CalculateResponse struct {
	Body CalculateResponseBody
}

// ListBandsResponse lists the supported bands
type ListBandsResponse struct {
	Body struct {
		Bands []rf.FrequencyBand `json:"bands" doc:"Supported VHF bands"`
	}
}

// ListCoaxResponse lists the supported coax types
type ListCoaxResponse struct {
	Body struct {
		Coax []rf.CoaxType `json:"coax" doc:"Supported coax types"`
	}
}

// CreateDesignRequest represents a request to plan and store a design.
// Either Band or FreqMHz must be set; FreqMHz wins when both are present.
type CreateDesignRequest struct {
	Body struct {
		Label      string   `json:"label" minLength:"1" maxLength:"100" required:"true" doc:"Human-readable design label"`
		Band       string   `json:"band,omitempty" doc:"Band name to center the design on (e.g. 'airband')"`
		FreqMHz    float64  `json:"freq_mhz,omitempty" doc:"Explicit target frequency in MHz"`
		Coax       string   `json:"coax,omitempty" doc:"Coax type name; defaults to RG-8X"`
		TrimMargin *float64 `json:"trim_margin,omitempty" minimum:"0" maximum:"0.99" doc:"Trim margin override"`
	}
}

// DesignResponse wraps a single stored design
type DesignResponse struct {
	Body *Design `json:"-"`
}

// GetDesignRequest represents a request to fetch a design
type GetDesignRequest struct {
	ID string `path:"id" doc:"Design ID"`
}

// ListDesignsResponse lists stored designs, newest first
type ListDesignsResponse struct {
	Body struct {
		Designs []*Design `json:"designs" doc:"Stored designs, newest first"`
	}
}

// DeleteDesignRequest represents a request to delete a design
type DeleteDesignRequest struct {
	ID string `path:"id" doc:"Design ID"`
}

// DeleteDesignResponse confirms a deletion
type DeleteDesignResponse struct {
	Body struct {
		Message string `json:"message" doc:"Confirmation message"`
	}
}

// ExportCutSheetRequest represents a request to export a design's cut sheet
type ExportCutSheetRequest struct {
	ID string `path:"id" doc:"Design ID"`
}

// ExportCutSheetResponseBody is the body of the cut sheet export response
type ExportCutSheetResponseBody struct {
	Key       string `json:"key" doc:"Object key the cut sheet was stored under"`
	URL       string `json:"url" doc:"Pre-signed download URL for the cut sheet"`
	ExpiresIn int    `json:"expires_in" doc:"URL expiration time in seconds"`
}

// ExportCutSheetResponse represents the cut sheet export result
type ExportCutSheetResponse struct {
	Body ExportCutSheetResponseBody
}
