package transaction

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/garagehub/garage-api/internal/audit"
	domain "github.com/garagehub/garage-api/internal/domain/transaction"
	"github.com/garagehub/garage-api/internal/httperr"
	"github.com/garagehub/garage-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

// Pointer fields distinguish "absent" from "explicitly empty": a nil id set
// leaves that side untouched, an empty one clears the association and zeroes
// its subtotal.
type UpdateTransactionInput struct {
	ID          uint
	RequesterID uint

	Status       *string
	ServiceIDs   *[]uint
	SparepartIDs *[]uint
}

// ======================================================
// USE CASE
// ======================================================

type UpdateTransaction struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateTransaction(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateTransaction {
	return &UpdateTransaction{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *UpdateTransaction) Execute(
	ctx context.Context,
	in UpdateTransactionInput,
) (*models.Transaction, error) {

	tx, err := uc.repo.GetByID(ctx, in.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("Transaction not found")
		}
		return nil, err
	}

	// Only the technician that opened the transaction may change it.
	if tx.TechnicianID != in.RequesterID {
		return nil, httperr.ErrForbidden("Access denied: You can only update your own transactions.")
	}

	if in.ServiceIDs != nil {
		services, err := uc.repo.GetServicesByIDs(ctx, *in.ServiceIDs)
		if err != nil {
			return nil, err
		}
		if err := uc.repo.ReplaceServices(ctx, tx, services); err != nil {
			return nil, err
		}
		tx.ServiceTotal = domain.ServiceTotal(services)
	}

	if in.SparepartIDs != nil {
		spareparts, err := uc.repo.GetSparepartsByIDs(ctx, *in.SparepartIDs)
		if err != nil {
			return nil, err
		}
		if err := uc.repo.ReplaceSpareparts(ctx, tx, spareparts); err != nil {
			return nil, err
		}
		tx.SparepartsTotal = domain.SparepartTotal(spareparts)
	}

	if in.Status != nil {
		tx.Status = *in.Status
	}

	domain.Reconcile(tx)

	if err := uc.repo.Save(ctx, tx); err != nil {
		return nil, err
	}

	updated, err := uc.repo.GetByID(ctx, tx.ID)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.RequesterID,
		Action:   "transaction_updated",
		Entity:   "transaction",
		EntityID: &updated.ID,
		Metadata: map[string]any{"grandTotal": updated.GrandTotal},
	})

	return updated, nil
}
