package authz

import (
	"context"
	"errors"
	"sync"
)

// ErrCatalogNotReady is returned when the role set is consulted before a
// successful Load. Startup must load the catalog before the server accepts
// traffic, so seeing this at request time is a wiring bug.
var ErrCatalogNotReady = errors.New("role catalog not loaded")

type RoleLister interface {
	ListRoleNames(ctx context.Context) ([]string, error)
}

// Catalog is the process-wide cache of role names. It is loaded once during
// startup and can be refreshed explicitly; callers never observe a
// partially-populated set.
type Catalog struct {
	lister RoleLister

	mu     sync.RWMutex
	names  []string
	loaded bool
}

func NewCatalog(lister RoleLister) *Catalog {
	return &Catalog{lister: lister}
}

// Load fetches the role set and swaps it in atomically. On failure the
// previous set, if any, stays in place.
func (c *Catalog) Load(ctx context.Context) error {
	names, err := c.lister.ListRoleNames(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.names = names
	c.loaded = true
	c.mu.Unlock()
	return nil
}

// Refresh is Load under a name that reads better at call sites that rerun
// it after the initial startup load.
func (c *Catalog) Refresh(ctx context.Context) error {
	return c.Load(ctx)
}

func (c *Catalog) Ready() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loaded
}

// Names returns a copy of the cached role set.
func (c *Catalog) Names() ([]string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.loaded {
		return nil, ErrCatalogNotReady
	}
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out, nil
}
