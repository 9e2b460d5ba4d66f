package handlers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/kd9vfw/flowerpot/internal/cutsheet"
	"github.com/kd9vfw/flowerpot/internal/planner"
	"github.com/kd9vfw/flowerpot/internal/repository"
	"github.com/kd9vfw/flowerpot/internal/storage"
	"github.com/kd9vfw/flowerpot/pkg/models"
	"github.com/kd9vfw/flowerpot/pkg/rf"
)

// DesignHandler handles design-related HTTP requests
type DesignHandler struct {
	repo       repository.DesignRepository
	s3Service  storage.S3Service
	plannerSvc planner.PlannerService
}

// NewDesignHandler creates a new design handler
func NewDesignHandler(repo repository.DesignRepository, s3Service storage.S3Service, plannerSvc planner.PlannerService) *DesignHandler {
	return &DesignHandler{
		repo:       repo,
		s3Service:  s3Service,
		plannerSvc: plannerSvc,
	}
}

// Calculate computes cut lengths without persisting anything
func (h *DesignHandler) Calculate(ctx context.Context, req *models.CalculateRequest) (*models.CalculateResponse, error) {
	elements := req.Body.Elements
	if len(elements) == 0 {
		elements = rf.DefaultElements()
	}
	if req.Body.TrimMargin != nil {
		for i := range elements {
			elements[i].TrimMargin = *req.Body.TrimMargin
		}
	}

	lengths, err := rf.CutLengths(req.Body.FreqMHz, elements)
	if err != nil {
		return nil, huma.Error400BadRequest(err.Error(), err)
	}

	// Frequency validity is established above
	wavelength, _ := rf.WavelengthMM(req.Body.FreqMHz)

	return &models.CalculateResponse{
		Body: models.CalculateResponseBody{
			FreqMHz:      req.Body.FreqMHz,
			WavelengthMM: wavelength,
			Band:         rf.VHF.ByFrequency(req.Body.FreqMHz).Name,
			Elements:     lengths,
		},
	}, nil
}

// ListBands returns the supported band plan
func (h *DesignHandler) ListBands(ctx context.Context, _ *struct{}) (*models.ListBandsResponse, error) {
	resp := &models.ListBandsResponse{}
	for _, name := range []rf.BandName{rf.BandAir, rf.Band2m, rf.BandMarine} {
		resp.Body.Bands = append(resp.Body.Bands, rf.VHF.ByName(name))
	}
	return resp, nil
}

// ListCoax returns the supported coax catalog
func (h *DesignHandler) ListCoax(ctx context.Context, _ *struct{}) (*models.ListCoaxResponse, error) {
	resp := &models.ListCoaxResponse{}
	resp.Body.Coax = rf.CoaxTypes()
	return resp, nil
}

// CreateDesign plans a design and stores it
func (h *DesignHandler) CreateDesign(ctx context.Context, req *models.CreateDesignRequest) (*models.DesignResponse, error) {
	log.Info().Str("label", req.Body.Label).Str("band", req.Body.Band).
		Float64("freqMHz", req.Body.FreqMHz).Msg("Creating design")

	design, err := h.plannerSvc.PlanDesign(planner.PlanRequest{
		Label:      req.Body.Label,
		Band:       req.Body.Band,
		FreqMHz:    req.Body.FreqMHz,
		Coax:       req.Body.Coax,
		TrimMargin: req.Body.TrimMargin,
	})
	if err != nil {
		if errors.Is(err, rf.ErrInvalidInput) {
			return nil, huma.Error400BadRequest(err.Error(), err)
		}
		return nil, huma.Error500InternalServerError("Failed to plan design", err)
	}

	if err := h.repo.Create(ctx, design); err != nil {
		return nil, huma.Error500InternalServerError("Failed to store design", err)
	}

	log.Info().Str("designID", design.ID).Float64("freqMHz", design.FreqMHz).
		Int("sections", design.Sections.NumSections).Msg("Design created")
	return &models.DesignResponse{Body: design}, nil
}

// GetDesign returns a stored design
func (h *DesignHandler) GetDesign(ctx context.Context, req *models.GetDesignRequest) (*models.DesignResponse, error) {
	designID, err := uuid.Parse(req.ID)
	if err != nil {
		return nil, huma.Error400BadRequest("Invalid design ID", err)
	}

	design, err := h.repo.GetByID(ctx, designID)
	if err != nil {
		return nil, huma.Error404NotFound("Design not found", err)
	}

	return &models.DesignResponse{Body: design}, nil
}

// ListDesigns returns stored designs, newest first
func (h *DesignHandler) ListDesigns(ctx context.Context, _ *struct{}) (*models.ListDesignsResponse, error) {
	designs, err := h.repo.List(ctx, 50)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to list designs", err)
	}

	resp := &models.ListDesignsResponse{}
	resp.Body.Designs = designs
	return resp, nil
}

// DeleteDesign removes a stored design
func (h *DesignHandler) DeleteDesign(ctx context.Context, req *models.DeleteDesignRequest) (*models.DeleteDesignResponse, error) {
	designID, err := uuid.Parse(req.ID)
	if err != nil {
		return nil, huma.Error400BadRequest("Invalid design ID", err)
	}

	if err := h.repo.Delete(ctx, designID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, huma.Error404NotFound("Design not found", err)
		}
		return nil, huma.Error500InternalServerError("Failed to delete design", err)
	}

	resp := &models.DeleteDesignResponse{}
	resp.Body.Message = "Design deleted"
	return resp, nil
}

// ExportCutSheet renders a design's cut sheet, uploads it, and returns a
// pre-signed download URL
func (h *DesignHandler) ExportCutSheet(ctx context.Context, req *models.ExportCutSheetRequest) (*models.ExportCutSheetResponse, error) {
	designID, err := uuid.Parse(req.ID)
	if err != nil {
		return nil, huma.Error400BadRequest("Invalid design ID", err)
	}

	design, err := h.repo.GetByID(ctx, designID)
	if err != nil {
		return nil, huma.Error404NotFound("Design not found", err)
	}

	sheet := cutsheet.Render(design)
	key := fmt.Sprintf("cutsheets/%s.txt", design.ID)

	if err := h.s3Service.Upload(ctx, key, cutsheet.ContentType, []byte(sheet)); err != nil {
		return nil, huma.Error500InternalServerError("Failed to upload cut sheet", err)
	}

	url, err := h.s3Service.GenerateDownloadURL(ctx, key)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to generate download URL", err)
	}

	if err := h.repo.SetCutSheetKey(ctx, designID, key); err != nil {
		return nil, huma.Error500InternalServerError("Failed to record cut sheet key", err)
	}

	log.Info().Str("designID", design.ID).Str("key", key).Msg("Cut sheet exported")
	return &models.ExportCutSheetResponse{
		Body: models.ExportCutSheetResponseBody{
			Key:       key,
			URL:       url,
			ExpiresIn: int(h.s3Service.DownloadURLExpiry() / time.Second),
		},
	}, nil
}
