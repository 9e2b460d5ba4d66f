package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/kd9vfw/flowerpot/internal/repository"
	"github.com/kd9vfw/flowerpot/pkg/models"
	"github.com/kd9vfw/flowerpot/pkg/rf"
)

// PostgresDesignRepository implements DesignRepository for PostgreSQL
type PostgresDesignRepository struct {
	db *sql.DB
}

// NewPostgresDesignRepository creates a new PostgreSQL design repository
func NewPostgresDesignRepository(db *sql.DB) repository.DesignRepository {
	return &PostgresDesignRepository{db: db}
}

// Create inserts a new design record
func (r *PostgresDesignRepository) Create(ctx context.Context, design *models.Design) error {
	coax, err := json.Marshal(design.Coax)
	if err != nil {
		return fmt.Errorf("failed to marshal coax: %w", err)
	}
	geometry, err := json.Marshal(design.Geometry)
	if err != nil {
		return fmt.Errorf("failed to marshal geometry: %w", err)
	}
	elements, err := json.Marshal(design.Elements)
	if err != nil {
		return fmt.Errorf("failed to marshal elements: %w", err)
	}
	sections, err := json.Marshal(design.Sections)
	if err != nil {
		return fmt.Errorf("failed to marshal sections: %w", err)
	}

	query := `
		INSERT INTO designs (id, label, band, freq_mhz, coax, geometry, elements, sections, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err = r.db.ExecContext(ctx, query,
		design.ID,
		design.Label,
		string(design.Band),
		design.FreqMHz,
		string(coax),
		string(geometry),
		string(elements),
		string(sections),
		design.CreatedAt,
		design.UpdatedAt)

	return err
}

// GetByID retrieves a design by ID
func (r *PostgresDesignRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Design, error) {
	query := `
		SELECT id, label, band, freq_mhz, coax, geometry, elements, sections, cut_sheet_s3_key, created_at, updated_at
		FROM designs
		WHERE id = $1`

	design, err := scanDesign(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	return design, err
}

// List retrieves stored designs, newest first
func (r *PostgresDesignRepository) List(ctx context.Context, limit int) ([]*models.Design, error) {
	query := `
		SELECT id, label, band, freq_mhz, coax, geometry, elements, sections, cut_sheet_s3_key, created_at, updated_at
		FROM designs
		ORDER BY created_at DESC
		LIMIT $1`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var designs []*models.Design
	for rows.Next() {
		design, err := scanDesign(rows)
		if err != nil {
			return nil, err
		}
		designs = append(designs, design)
	}

	return designs, rows.Err()
}

// SetCutSheetKey records the object key of an exported cut sheet
func (r *PostgresDesignRepository) SetCutSheetKey(ctx context.Context, id uuid.UUID, key string) error {
	query := `
		UPDATE designs
		SET cut_sheet_s3_key = $1, updated_at = NOW()
		WHERE id = $2`

	result, err := r.db.ExecContext(ctx, query, key, id)
	if err != nil {
		return err
	}
	return requireRowAffected(result)
}

// Delete removes a design
func (r *PostgresDesignRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM designs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRowAffected(result)
}

// scanner covers both *sql.Row and *sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanDesign(row scanner) (*models.Design, error) {
	var design models.Design
	var band string
	var coaxStr, geometryStr, elementsStr, sectionsStr string
	var cutSheetKey sql.NullString

	err := row.Scan(
		&design.ID,
		&design.Label,
		&band,
		&design.FreqMHz,
		&coaxStr,
		&geometryStr,
		&elementsStr,
		&sectionsStr,
		&cutSheetKey,
		&design.CreatedAt,
		&design.UpdatedAt)

	if err != nil {
		return nil, err
	}

	design.Band = rf.BandName(band)
	if err := json.Unmarshal([]byte(coaxStr), &design.Coax); err != nil {
		return nil, fmt.Errorf("failed to unmarshal coax: %w", err)
	}
	if err := json.Unmarshal([]byte(geometryStr), &design.Geometry); err != nil {
		return nil, fmt.Errorf("failed to unmarshal geometry: %w", err)
	}
	if err := json.Unmarshal([]byte(elementsStr), &design.Elements); err != nil {
		return nil, fmt.Errorf("failed to unmarshal elements: %w", err)
	}
	if err := json.Unmarshal([]byte(sectionsStr), &design.Sections); err != nil {
		return nil, fmt.Errorf("failed to unmarshal sections: %w", err)
	}
	if cutSheetKey.Valid {
		design.CutSheetS3Key = &cutSheetKey.String
	}

	return &design, nil
}

func requireRowAffected(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}
