package transaction

import "github.com/garagehub/garage-api/internal/models"

// ===============================
// Monetary totals
// ===============================

// All prices are non-negative integers in a single currency unit. An empty
// item set sums to zero.

func ServiceTotal(services []models.Service) int {
	total := 0
	for _, s := range services {
		total += s.Price
	}
	return total
}

func SparepartTotal(spareparts []models.Sparepart) int {
	total := 0
	for _, p := range spareparts {
		total += p.Price
	}
	return total
}

// Reconcile restores the grand-total invariant after any subtotal change.
func Reconcile(tx *models.Transaction) {
	tx.GrandTotal = tx.ServiceTotal + tx.SparepartsTotal
}
