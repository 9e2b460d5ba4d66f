package api

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/kd9vfw/flowerpot/internal/api/handlers"
	"github.com/kd9vfw/flowerpot/internal/planner"
	"github.com/kd9vfw/flowerpot/internal/repository"
	"github.com/kd9vfw/flowerpot/internal/storage"
)

// RegisterRoutes sets up all API routes
func RegisterRoutes(api huma.API, designRepo repository.DesignRepository, s3Service storage.S3Service, plannerSvc planner.PlannerService) {
	// Initialize handlers
	designHandler := handlers.NewDesignHandler(designRepo, s3Service, plannerSvc)

	huma.Register(api, huma.Operation{
		OperationID: "calculate",
		Method:      http.MethodPost,
		Path:        "/api/calculate",
		Summary:     "Calculate cut lengths",
		Description: "Computes nominal and cut lengths for a frequency without storing anything",
		Tags:        []string{"Calculator"},
	}, designHandler.Calculate)

	huma.Register(api, huma.Operation{
		OperationID: "listBands",
		Method:      http.MethodGet,
		Path:        "/api/bands",
		Summary:     "List supported bands",
		Description: "Returns the VHF band plan this planner targets",
		Tags:        []string{"Calculator"},
	}, designHandler.ListBands)

	huma.Register(api, huma.Operation{
		OperationID: "listCoax",
		Method:      http.MethodGet,
		Path:        "/api/coax",
		Summary:     "List supported coax types",
		Description: "Returns the coax catalog with outer diameters and velocity factors",
		Tags:        []string{"Calculator"},
	}, designHandler.ListCoax)

	huma.Register(api, huma.Operation{
		OperationID: "createDesign",
		Method:      http.MethodPost,
		Path:        "/api/designs",
		Summary:     "Create a design",
		Description: "Plans a complete antenna design and stores it",
		Tags:        []string{"Designs"},
	}, designHandler.CreateDesign)

	huma.Register(api, huma.Operation{
		OperationID: "getDesign",
		Method:      http.MethodGet,
		Path:        "/api/designs/{id}",
		Summary:     "Get a design",
		Description: "Returns a stored design with its computed lengths and section plan",
		Tags:        []string{"Designs"},
	}, designHandler.GetDesign)

	huma.Register(api, huma.Operation{
		OperationID: "listDesigns",
		Method:      http.MethodGet,
		Path:        "/api/designs",
		Summary:     "List designs",
		Description: "Returns stored designs, newest first",
		Tags:        []string{"Designs"},
	}, designHandler.ListDesigns)

	huma.Register(api, huma.Operation{
		OperationID: "deleteDesign",
		Method:      http.MethodDelete,
		Path:        "/api/designs/{id}",
		Summary:     "Delete a design",
		Description: "Removes a stored design",
		Tags:        []string{"Designs"},
	}, designHandler.DeleteDesign)

	huma.Register(api, huma.Operation{
		OperationID: "exportCutSheet",
		Method:      http.MethodPost,
		Path:        "/api/designs/{id}/cutsheet",
		Summary:     "Export a cut sheet",
		Description: "Renders the design's cut sheet, stores it, and returns a pre-signed download URL",
		Tags:        []string{"Designs"},
	}, designHandler.ExportCutSheet)
}
