package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/garagehub/garage-api/internal/models"
)

type TransactionGormRepository struct {
	db *gorm.DB
}

func NewTransactionGormRepository(db *gorm.DB) *TransactionGormRepository {
	return &TransactionGormRepository{db: db}
}

// --------------------------------------------------
// Line items
// --------------------------------------------------

func (r *TransactionGormRepository) GetServicesByIDs(
	ctx context.Context,
	ids []uint,
) ([]models.Service, error) {

	if len(ids) == 0 {
		return nil, nil
	}
	var services []models.Service
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *TransactionGormRepository) GetSparepartsByIDs(
	ctx context.Context,
	ids []uint,
) ([]models.Sparepart, error) {

	if len(ids) == 0 {
		return nil, nil
	}
	var spareparts []models.Sparepart
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&spareparts).Error; err != nil {
		return nil, err
	}
	return spareparts, nil
}

// --------------------------------------------------
// Transaction
// --------------------------------------------------

func (r *TransactionGormRepository) Create(
	ctx context.Context,
	tx *models.Transaction,
) error {
	// Associations are attached explicitly afterwards.
	return r.db.WithContext(ctx).
		Omit("Services", "Spareparts").
		Create(tx).Error
}

func (r *TransactionGormRepository) GetByID(
	ctx context.Context,
	id uint,
) (*models.Transaction, error) {

	var tx models.Transaction
	if err := r.db.WithContext(ctx).
		Preload("Services").
		Preload("Spareparts").
		Preload("Technician").
		First(&tx, id).Error; err != nil {
		return nil, err
	}
	return &tx, nil
}

func (r *TransactionGormRepository) List(
	ctx context.Context,
) ([]models.Transaction, error) {

	var txs []models.Transaction
	if err := r.db.WithContext(ctx).
		Preload("Services").
		Preload("Spareparts").
		Preload("Technician").
		Order("id ASC").
		Find(&txs).Error; err != nil {
		return nil, err
	}
	return txs, nil
}

func (r *TransactionGormRepository) Save(
	ctx context.Context,
	tx *models.Transaction,
) error {
	return r.db.WithContext(ctx).
		Omit("Services", "Spareparts").
		Save(tx).Error
}

func (r *TransactionGormRepository) SoftDelete(
	ctx context.Context,
	tx *models.Transaction,
) error {
	// gorm.DeletedAt makes this a soft delete.
	return r.db.WithContext(ctx).Delete(tx).Error
}

// --------------------------------------------------
// Associations
// --------------------------------------------------

func (r *TransactionGormRepository) ReplaceServices(
	ctx context.Context,
	tx *models.Transaction,
	services []models.Service,
) error {
	assoc := r.db.WithContext(ctx).Model(tx).Association("Services")
	if len(services) == 0 {
		return assoc.Clear()
	}
	return assoc.Replace(&services)
}

func (r *TransactionGormRepository) ReplaceSpareparts(
	ctx context.Context,
	tx *models.Transaction,
	spareparts []models.Sparepart,
) error {
	assoc := r.db.WithContext(ctx).Model(tx).Association("Spareparts")
	if len(spareparts) == 0 {
		return assoc.Clear()
	}
	return assoc.Replace(&spareparts)
}
