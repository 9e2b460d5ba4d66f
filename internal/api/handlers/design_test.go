package handlers

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/kd9vfw/flowerpot/internal/planner"
	"github.com/kd9vfw/flowerpot/internal/repository"
	"github.com/kd9vfw/flowerpot/pkg/models"
	"github.com/kd9vfw/flowerpot/pkg/rf"
)

// MockDesignRepository implements repository.DesignRepository for testing
type MockDesignRepository struct {
	mock.Mock
}

func (m *MockDesignRepository) Create(ctx context.Context, design *models.Design) error {
	args := m.Called(ctx, design)
	return args.Error(0)
}

func (m *MockDesignRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Design, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Design), args.Error(1)
}

func (m *MockDesignRepository) List(ctx context.Context, limit int) ([]*models.Design, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Design), args.Error(1)
}

func (m *MockDesignRepository) SetCutSheetKey(ctx context.Context, id uuid.UUID, key string) error {
	args := m.Called(ctx, id, key)
	return args.Error(0)
}

func (m *MockDesignRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockS3Service implements storage.S3Service for testing
type MockS3Service struct {
	mock.Mock
}

func (m *MockS3Service) Upload(ctx context.Context, key string, contentType string, body []byte) error {
	args := m.Called(ctx, key, contentType, body)
	return args.Error(0)
}

func (m *MockS3Service) GenerateDownloadURL(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockS3Service) DownloadFile(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockS3Service) DeleteFile(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockS3Service) DownloadURLExpiry() time.Duration {
	args := m.Called()
	return args.Get(0).(time.Duration)
}

func newTestHandler(repo *MockDesignRepository, s3 *MockS3Service) *DesignHandler {
	return NewDesignHandler(repo, s3, planner.NewPlannerService(rf.VHF))
}

func storedDesign(t *testing.T, id uuid.UUID) *models.Design {
	t.Helper()
	design, err := planner.NewPlannerService(rf.VHF).PlanDesign(planner.PlanRequest{
		Label: "stored", Band: "airband",
	})
	require.NoError(t, err)
	design.ID = id.String()
	return design
}

func TestCalculate(t *testing.T) {
	handler := newTestHandler(&MockDesignRepository{}, &MockS3Service{})

	req := &models.CalculateRequest{}
	req.Body.FreqMHz = 127.0

	resp, err := handler.Calculate(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, rf.BandAir, resp.Body.Band)
	assert.InDelta(t, 2360.57, resp.Body.WavelengthMM, 0.01)
	require.Len(t, resp.Body.Elements, 2)
	assert.InDelta(t, 601.9, resp.Body.Elements[0].CutMM, 0.1)
	assert.InDelta(t, 1143.7, resp.Body.Elements[1].CutMM, 0.1)
}

func TestCalculateTrimMarginOverride(t *testing.T) {
	handler := newTestHandler(&MockDesignRepository{}, &MockS3Service{})

	margin := 0.0
	req := &models.CalculateRequest{}
	req.Body.FreqMHz = 146.0
	req.Body.TrimMargin = &margin

	resp, err := handler.Calculate(context.Background(), req)
	require.NoError(t, err)
	for _, el := range resp.Body.Elements {
		assert.Equal(t, el.NominalMM, el.CutMM)
	}
}

func TestCalculateRejectsInvalidFrequency(t *testing.T) {
	handler := newTestHandler(&MockDesignRepository{}, &MockS3Service{})

	for _, freq := range []float64{0, -127.0} {
		req := &models.CalculateRequest{}
		req.Body.FreqMHz = freq

		_, err := handler.Calculate(context.Background(), req)
		assert.Error(t, err)
	}
}

func TestCreateDesign(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(*models.CreateDesignRequest)
		mockSetup func(*MockDesignRepository)
		wantError bool
	}{
		{
			name: "valid band design",
			setup: func(req *models.CreateDesignRequest) {
				req.Body.Label = "airband mast"
				req.Body.Band = "airband"
			},
			mockSetup: func(repo *MockDesignRepository) {
				repo.On("Create", mock.Anything, mock.AnythingOfType("*models.Design")).Return(nil)
			},
		},
		{
			name: "unknown band",
			setup: func(req *models.CreateDesignRequest) {
				req.Body.Label = "nope"
				req.Body.Band = "70cm"
			},
			mockSetup: func(repo *MockDesignRepository) {},
			wantError: true,
		},
		{
			name: "store failure",
			setup: func(req *models.CreateDesignRequest) {
				req.Body.Label = "airband mast"
				req.Body.FreqMHz = 127.0
			},
			mockSetup: func(repo *MockDesignRepository) {
				repo.On("Create", mock.Anything, mock.Anything).Return(assert.AnError)
			},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := &MockDesignRepository{}
			tt.mockSetup(mockRepo)
			handler := newTestHandler(mockRepo, &MockS3Service{})

			req := &models.CreateDesignRequest{}
			tt.setup(req)

			resp, err := handler.CreateDesign(context.Background(), req)
			if tt.wantError {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.NotEmpty(t, resp.Body.ID)
				assert.Equal(t, 127.0, resp.Body.FreqMHz)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestGetDesign(t *testing.T) {
	id := uuid.New()
	mockRepo := &MockDesignRepository{}
	mockRepo.On("GetByID", mock.Anything, id).Return(storedDesign(t, id), nil)
	handler := newTestHandler(mockRepo, &MockS3Service{})

	resp, err := handler.GetDesign(context.Background(), &models.GetDesignRequest{ID: id.String()})
	require.NoError(t, err)
	assert.Equal(t, id.String(), resp.Body.ID)

	_, err = handler.GetDesign(context.Background(), &models.GetDesignRequest{ID: "not-a-uuid"})
	assert.Error(t, err)
}

func TestDeleteDesignNotFound(t *testing.T) {
	id := uuid.New()
	mockRepo := &MockDesignRepository{}
	mockRepo.On("Delete", mock.Anything, id).Return(repository.ErrNotFound)
	handler := newTestHandler(mockRepo, &MockS3Service{})

	_, err := handler.DeleteDesign(context.Background(), &models.DeleteDesignRequest{ID: id.String()})
	assert.Error(t, err)
}

func TestExportCutSheet(t *testing.T) {
	id := uuid.New()
	key := "cutsheets/" + id.String() + ".txt"

	mockRepo := &MockDesignRepository{}
	mockRepo.On("GetByID", mock.Anything, id).Return(storedDesign(t, id), nil)
	mockRepo.On("SetCutSheetKey", mock.Anything, id, key).Return(nil)

	mockS3 := &MockS3Service{}
	mockS3.On("Upload", mock.Anything, key, "text/plain", mock.Anything).Return(nil)
	mockS3.On("GenerateDownloadURL", mock.Anything, key).Return("https://example.com/"+key, nil)
	mockS3.On("DownloadURLExpiry").Return(24 * time.Hour)

	handler := newTestHandler(mockRepo, mockS3)

	resp, err := handler.ExportCutSheet(context.Background(), &models.ExportCutSheetRequest{ID: id.String()})
	require.NoError(t, err)

	assert.Equal(t, key, resp.Body.Key)
	assert.Equal(t, "https://example.com/"+key, resp.Body.URL)
	assert.Equal(t, 86400, resp.Body.ExpiresIn)

	mockRepo.AssertExpectations(t)
	mockS3.AssertExpectations(t)
}

func TestExportCutSheetUploadFailure(t *testing.T) {
	id := uuid.New()

	mockRepo := &MockDesignRepository{}
	mockRepo.On("GetByID", mock.Anything, id).Return(storedDesign(t, id), nil)

	mockS3 := &MockS3Service{}
	mockS3.On("Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(assert.AnError)

	handler := newTestHandler(mockRepo, mockS3)

	_, err := handler.ExportCutSheet(context.Background(), &models.ExportCutSheetRequest{ID: id.String()})
	assert.Error(t, err)
}

func TestListBandsAndCoax(t *testing.T) {
	handler := newTestHandler(&MockDesignRepository{}, &MockS3Service{})

	bands, err := handler.ListBands(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, bands.Body.Bands, 3)

	coax, err := handler.ListCoax(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, coax.Body.Coax, 3)
}
