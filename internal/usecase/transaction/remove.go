package transaction

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/garagehub/garage-api/internal/audit"
	domain "github.com/garagehub/garage-api/internal/domain/transaction"
	"github.com/garagehub/garage-api/internal/httperr"
)

type RemoveTransaction struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewRemoveTransaction(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *RemoveTransaction {
	return &RemoveTransaction{
		repo:  repo,
		audit: audit,
	}
}

// Execute soft-deletes: the row keeps its data for audit but disappears
// from every normal read.
func (uc *RemoveTransaction) Execute(
	ctx context.Context,
	id uint,
	requesterID uint,
) error {

	tx, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httperr.ErrNotFound("Transaction not found")
		}
		return err
	}

	if err := uc.repo.SoftDelete(ctx, tx); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &requesterID,
		Action:   "transaction_deleted",
		Entity:   "transaction",
		EntityID: &tx.ID,
	})

	return nil
}
