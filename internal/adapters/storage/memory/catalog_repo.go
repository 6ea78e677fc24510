package memory

import (
	"context"
	"sync"

	"salvamed/internal/domain/catalog"
)

// catalogRepo sirve el catálogo compilado desde memoria. El catálogo es
// read-only: el RWMutex existe solo por prolijidad si algún día se recarga.
type catalogRepo struct {
	mu   sync.RWMutex
	ref  catalog.Reference
	byID map[string]catalog.Drug
}

// NewCatalogRepo valida y sirve una referencia ya armada (ver catalog.Default).
func NewCatalogRepo(ref catalog.Reference) catalog.Repository {
	byID := make(map[string]catalog.Drug, len(ref.Drugs))
	for _, d := range ref.Drugs {
		byID[d.ID] = d
	}
	return &catalogRepo{ref: ref, byID: byID}
}

func (r *catalogRepo) ListCategories(ctx context.Context) ([]catalog.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]catalog.Category, len(r.ref.Categories))
	copy(out, r.ref.Categories)
	return out, nil
}

func (r *catalogRepo) ListDrugs(ctx context.Context) ([]catalog.Drug, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]catalog.Drug, len(r.ref.Drugs))
	copy(out, r.ref.Drugs)
	return out, nil
}

func (r *catalogRepo) GetDrugByID(ctx context.Context, id string) (catalog.Drug, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.byID[id]
	if !ok {
		return catalog.Drug{}, catalog.ErrNotFound
	}
	return d, nil
}
