package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/garagehub/garage-api/internal/models"
)

// RoleGormRepository backs the role catalog.
type RoleGormRepository struct {
	db *gorm.DB
}

func NewRoleGormRepository(db *gorm.DB) *RoleGormRepository {
	return &RoleGormRepository{db: db}
}

func (r *RoleGormRepository) ListRoleNames(ctx context.Context) ([]string, error) {
	var names []string
	if err := r.db.WithContext(ctx).
		Model(&models.Role{}).
		Order("id ASC").
		Pluck("name", &names).Error; err != nil {
		return nil, err
	}
	return names, nil
}
