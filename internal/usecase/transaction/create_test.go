package transaction

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTransaction_EmptyItemSets(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateTransaction(repo, testDispatcher())

	tx, err := uc.Execute(context.Background(), CreateTransactionInput{
		CustomerID:   10,
		TechnicianID: 2,
	})
	require.NoError(t, err)

	assert.Equal(t, 0, tx.ServiceTotal)
	assert.Equal(t, 0, tx.SparepartsTotal)
	assert.Equal(t, 0, tx.GrandTotal)
	assert.Equal(t, "Pending", tx.Status)
	assert.NotEmpty(t, tx.BookingID)
	assert.Equal(t, uint(2), tx.TechnicianID)
}

func TestCreateTransaction_ServicesOnly(t *testing.T) {
	repo := newFakeRepo()
	repo.addService(1, 100)
	repo.addService(2, 50)
	uc := NewCreateTransaction(repo, testDispatcher())

	tx, err := uc.Execute(context.Background(), CreateTransactionInput{
		CustomerID:   10,
		TechnicianID: 2,
		ServiceIDs:   []uint{1, 2},
	})
	require.NoError(t, err)

	assert.Equal(t, 150, tx.ServiceTotal)
	assert.Equal(t, 0, tx.SparepartsTotal)
	assert.Equal(t, 150, tx.GrandTotal)
	assert.Len(t, tx.Services, 2)
	assert.Empty(t, tx.Spareparts)
}

func TestCreateTransaction_ServicesAndSpareparts(t *testing.T) {
	repo := newFakeRepo()
	repo.addService(1, 100)
	repo.addService(2, 50)
	repo.addSparepart(1, 30)
	uc := NewCreateTransaction(repo, testDispatcher())

	tx, err := uc.Execute(context.Background(), CreateTransactionInput{
		CustomerID:   10,
		TechnicianID: 2,
		ServiceIDs:   []uint{1, 2},
		SparepartIDs: []uint{1},
	})
	require.NoError(t, err)

	assert.Equal(t, 150, tx.ServiceTotal)
	assert.Equal(t, 30, tx.SparepartsTotal)
	assert.Equal(t, 180, tx.GrandTotal)
	assert.Equal(t, tx.ServiceTotal+tx.SparepartsTotal, tx.GrandTotal)
	assert.Len(t, tx.Services, 2)
	assert.Len(t, tx.Spareparts, 1)
}

func TestCreateTransaction_UnknownIDsSumToFetchedRowsOnly(t *testing.T) {
	repo := newFakeRepo()
	repo.addService(1, 100)
	uc := NewCreateTransaction(repo, testDispatcher())

	tx, err := uc.Execute(context.Background(), CreateTransactionInput{
		CustomerID:   10,
		TechnicianID: 2,
		ServiceIDs:   []uint{1, 99},
	})
	require.NoError(t, err)

	assert.Equal(t, 100, tx.ServiceTotal)
	assert.Equal(t, 100, tx.GrandTotal)
	assert.Len(t, tx.Services, 1)
}

func TestCreateTransaction_StatusPassedThrough(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateTransaction(repo, testDispatcher())

	tx, err := uc.Execute(context.Background(), CreateTransactionInput{
		CustomerID:   10,
		TechnicianID: 2,
		Status:       "In Progress",
	})
	require.NoError(t, err)
	assert.Equal(t, "In Progress", tx.Status)
}

func TestCreateTransaction_BookingIDsAreUnique(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateTransaction(repo, testDispatcher())

	first, err := uc.Execute(context.Background(), CreateTransactionInput{CustomerID: 1, TechnicianID: 2})
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), CreateTransactionInput{CustomerID: 1, TechnicianID: 2})
	require.NoError(t, err)

	assert.NotEqual(t, first.BookingID, second.BookingID)
}
