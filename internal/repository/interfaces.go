package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/kd9vfw/flowerpot/pkg/models"
)

// ErrNotFound is returned when a design does not exist.
var ErrNotFound = errors.New("design not found")

// DesignRepository defines the interface for design persistence
type DesignRepository interface {
	Create(ctx context.Context, design *models.Design) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Design, error)
	List(ctx context.Context, limit int) ([]*models.Design, error)
	SetCutSheetKey(ctx context.Context, id uuid.UUID, key string) error
	Delete(ctx context.Context, id uuid.UUID) error
}
