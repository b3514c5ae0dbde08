package user

import (
	"context"

	"github.com/garagehub/garage-api/internal/models"
)

// Repository is the store surface registration needs.
type Repository interface {
	EmailTaken(
		ctx context.Context,
		email string,
	) (bool, error)

	Create(
		ctx context.Context,
		user *models.User,
	) error
}
