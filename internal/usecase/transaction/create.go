package transaction

import (
	"context"

	"github.com/google/uuid"

	"github.com/garagehub/garage-api/internal/audit"
	domain "github.com/garagehub/garage-api/internal/domain/transaction"
	"github.com/garagehub/garage-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateTransactionInput struct {
	CustomerID   uint
	TechnicianID uint

	Status string

	ServiceIDs   []uint
	SparepartIDs []uint
}

// ======================================================
// USE CASE
// ======================================================

type CreateTransaction struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateTransaction(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateTransaction {
	return &CreateTransaction{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute persists the header first and attaches line items afterwards;
// when spareparts are supplied the recomputed totals are written a second
// time. Whatever path is taken, the returned transaction satisfies
// grandTotal == serviceTotal + sparepartsTotal.
func (uc *CreateTransaction) Execute(
	ctx context.Context,
	in CreateTransactionInput,
) (*models.Transaction, error) {

	var services []models.Service
	serviceTotal := 0
	if len(in.ServiceIDs) > 0 {
		fetched, err := uc.repo.GetServicesByIDs(ctx, in.ServiceIDs)
		if err != nil {
			return nil, err
		}
		services = fetched
		serviceTotal = domain.ServiceTotal(fetched)
	}

	tx := &models.Transaction{
		BookingID:       uuid.NewString(),
		CustomerID:      in.CustomerID,
		TechnicianID:    in.TechnicianID,
		Status:          domain.StatusOrDefault(in.Status),
		ServiceTotal:    serviceTotal,
		SparepartsTotal: 0,
		GrandTotal:      serviceTotal,
	}

	if err := uc.repo.Create(ctx, tx); err != nil {
		return nil, err
	}

	if len(services) > 0 {
		if err := uc.repo.ReplaceServices(ctx, tx, services); err != nil {
			return nil, err
		}
	}

	if len(in.SparepartIDs) > 0 {
		spareparts, err := uc.repo.GetSparepartsByIDs(ctx, in.SparepartIDs)
		if err != nil {
			return nil, err
		}
		if err := uc.repo.ReplaceSpareparts(ctx, tx, spareparts); err != nil {
			return nil, err
		}

		tx.SparepartsTotal = domain.SparepartTotal(spareparts)
		domain.Reconcile(tx)

		if err := uc.repo.Save(ctx, tx); err != nil {
			return nil, err
		}
	}

	created, err := uc.repo.GetByID(ctx, tx.ID)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.TechnicianID,
		Action:   "transaction_created",
		Entity:   "transaction",
		EntityID: &created.ID,
		Metadata: map[string]any{"bookingId": created.BookingID, "grandTotal": created.GrandTotal},
	})

	return created, nil
}
