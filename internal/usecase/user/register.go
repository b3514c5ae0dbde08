package user

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	domain "github.com/garagehub/garage-api/internal/domain/user"
	"github.com/garagehub/garage-api/internal/httperr"
	"github.com/garagehub/garage-api/internal/models"
)

type RegisterUserInput struct {
	FullName string
	Email    string
	Password string
	PhotoURL string
	Phone    string
}

type RegisterUser struct {
	repo domain.Repository
}

func NewRegisterUser(repo domain.Repository) *RegisterUser {
	return &RegisterUser{repo: repo}
}

// Execute creates an account for an unclaimed email. New accounts start
// without a role; an Admin assigns one later.
func (uc *RegisterUser) Execute(
	ctx context.Context,
	in RegisterUserInput,
) (*models.User, error) {

	email := strings.ToLower(strings.TrimSpace(in.Email))

	taken, err := uc.repo.EmailTaken(ctx, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, httperr.ErrConflict("User with this email already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		FullName:     in.FullName,
		Email:        email,
		PasswordHash: string(hashed),
		PhotoURL:     in.PhotoURL,
		Phone:        in.Phone,
	}

	if err := uc.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}
