package transaction

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/garagehub/garage-api/internal/models"
)

func TestServiceTotal(t *testing.T) {
	assert.Equal(t, 0, ServiceTotal(nil))
	assert.Equal(t, 0, ServiceTotal([]models.Service{}))

	services := []models.Service{
		{ID: 1, Price: 100},
		{ID: 2, Price: 50},
	}
	assert.Equal(t, 150, ServiceTotal(services))

	reversed := []models.Service{services[1], services[0]}
	assert.Equal(t, 150, ServiceTotal(reversed))
}

func TestSparepartTotal(t *testing.T) {
	assert.Equal(t, 0, SparepartTotal(nil))

	spareparts := []models.Sparepart{
		{ID: 1, Price: 30},
		{ID: 2, Price: 70},
	}
	assert.Equal(t, 100, SparepartTotal(spareparts))
}

func TestReconcile(t *testing.T) {
	tx := &models.Transaction{ServiceTotal: 150, SparepartsTotal: 30, GrandTotal: 0}
	Reconcile(tx)
	assert.Equal(t, 180, tx.GrandTotal)

	tx.SparepartsTotal = 0
	Reconcile(tx)
	assert.Equal(t, 150, tx.GrandTotal)
}

func TestStatusOrDefault(t *testing.T) {
	assert.Equal(t, "Pending", StatusOrDefault(""))
	assert.Equal(t, "Completed", StatusOrDefault("Completed"))
	// Open set: unrecognized values pass through untouched.
	assert.Equal(t, "Waiting For Parts", StatusOrDefault("Waiting For Parts"))
}
