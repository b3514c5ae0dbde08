package transaction

import (
	"context"

	"github.com/garagehub/garage-api/internal/models"
)

// Repository is the store surface the aggregator needs. Soft-deleted
// transactions are invisible to every method here.
type Repository interface {
	// -------- Line-item lookups --------
	GetServicesByIDs(
		ctx context.Context,
		ids []uint,
	) ([]models.Service, error)

	GetSparepartsByIDs(
		ctx context.Context,
		ids []uint,
	) ([]models.Sparepart, error)

	// -------- Transaction --------
	Create(
		ctx context.Context,
		tx *models.Transaction,
	) error

	GetByID(
		ctx context.Context,
		id uint,
	) (*models.Transaction, error)

	List(
		ctx context.Context,
	) ([]models.Transaction, error)

	Save(
		ctx context.Context,
		tx *models.Transaction,
	) error

	SoftDelete(
		ctx context.Context,
		tx *models.Transaction,
	) error

	// -------- Associations (full replacement) --------
	ReplaceServices(
		ctx context.Context,
		tx *models.Transaction,
		services []models.Service,
	) error

	ReplaceSpareparts(
		ctx context.Context,
		tx *models.Transaction,
		spareparts []models.Sparepart,
	) error
}
