package transaction

import (
	"context"

	"gorm.io/gorm"

	"github.com/garagehub/garage-api/internal/audit"
	"github.com/garagehub/garage-api/internal/models"
)

// fakeRepo is an in-memory stand-in for the GORM repository. Soft-deleted
// rows stay in the map but disappear from reads, mirroring gorm.DeletedAt.
type fakeRepo struct {
	services   map[uint]models.Service
	spareparts map[uint]models.Sparepart
	stored     map[uint]*models.Transaction
	deleted    map[uint]bool
	nextID     uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		services:   make(map[uint]models.Service),
		spareparts: make(map[uint]models.Sparepart),
		stored:     make(map[uint]*models.Transaction),
		deleted:    make(map[uint]bool),
	}
}

func (r *fakeRepo) addService(id uint, price int) {
	r.services[id] = models.Service{ID: id, Price: price}
}

func (r *fakeRepo) addSparepart(id uint, price int) {
	r.spareparts[id] = models.Sparepart{ID: id, Price: price}
}

func (r *fakeRepo) GetServicesByIDs(_ context.Context, ids []uint) ([]models.Service, error) {
	var out []models.Service
	for _, id := range ids {
		if s, ok := r.services[id]; ok {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeRepo) GetSparepartsByIDs(_ context.Context, ids []uint) ([]models.Sparepart, error) {
	var out []models.Sparepart
	for _, id := range ids {
		if p, ok := r.spareparts[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeRepo) Create(_ context.Context, tx *models.Transaction) error {
	r.nextID++
	tx.ID = r.nextID
	clone := *tx
	r.stored[tx.ID] = &clone
	return nil
}

func (r *fakeRepo) GetByID(_ context.Context, id uint) (*models.Transaction, error) {
	tx, ok := r.stored[id]
	if !ok || r.deleted[id] {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *tx
	return &clone, nil
}

func (r *fakeRepo) List(_ context.Context) ([]models.Transaction, error) {
	var out []models.Transaction
	for id, tx := range r.stored {
		if !r.deleted[id] {
			out = append(out, *tx)
		}
	}
	return out, nil
}

func (r *fakeRepo) Save(_ context.Context, tx *models.Transaction) error {
	stored, ok := r.stored[tx.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	stored.Status = tx.Status
	stored.ServiceTotal = tx.ServiceTotal
	stored.SparepartsTotal = tx.SparepartsTotal
	stored.GrandTotal = tx.GrandTotal
	return nil
}

func (r *fakeRepo) SoftDelete(_ context.Context, tx *models.Transaction) error {
	r.deleted[tx.ID] = true
	return nil
}

func (r *fakeRepo) ReplaceServices(_ context.Context, tx *models.Transaction, services []models.Service) error {
	stored, ok := r.stored[tx.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	stored.Services = services
	return nil
}

func (r *fakeRepo) ReplaceSpareparts(_ context.Context, tx *models.Transaction, spareparts []models.Sparepart) error {
	stored, ok := r.stored[tx.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	stored.Spareparts = spareparts
	return nil
}

// unavailableRepo simulates a store outage: every read fails with the
// wrapped error instead of gorm.ErrRecordNotFound.
type unavailableRepo struct {
	*fakeRepo
	readErr error
}

func (r *unavailableRepo) GetByID(context.Context, uint) (*models.Transaction, error) {
	return nil, r.readErr
}

// ---- audit ----

type noopSink struct{}

func (noopSink) Log(*uint, *uint, string, string, *uint, any) error {
	return nil
}

func testDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(noopSink{})
}
