package subscribers

import (
	"context"
	"encoding/json"
	"errors"

	pkgerrors "github.com/famoussince/storefront/pkg/errors"
	"github.com/famoussince/storefront/pkg/kvstore"
	"github.com/famoussince/storefront/pkg/logger"
)

// StorageKey is the fixed key the subscriber list lives under.
const StorageKey = "fs_emails"

// Repository reads and writes the whole subscriber list.
type Repository struct {
	store  kvstore.Store
	logger *logger.Logger
}

func NewRepository(store kvstore.Store, logg *logger.Logger) *Repository {
	if logg == nil {
		logg = logger.Nop()
	}
	return &Repository{store: store, logger: logg}
}

// Load returns the list stored for scope, or an empty list when nothing
// readable is stored.
func (r *Repository) Load(ctx context.Context, scope string) (List, error) {
	raw, err := r.store.Get(ctx, scope, StorageKey)
	if errors.Is(err, kvstore.ErrNotFound) {
		return List{}, nil
	}
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load subscribers")
	}

	var entries []string
	if err := json.Unmarshal(raw, &entries); err != nil {
		r.logger.Warn(r.logger.WithField(ctx, "scope", scope), "discarding unreadable subscriber list")
		return List{}, nil
	}
	list := make(List, 0, len(entries))
	for _, e := range entries {
		if e = Normalize(e); e != "" && !list.Contains(e) {
			list = append(list, e)
		}
	}
	return list, nil
}

// Save overwrites the stored list for scope.
func (r *Repository) Save(ctx context.Context, scope string, l List) error {
	if l == nil {
		l = List{}
	}
	payload, err := json.Marshal(l)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode subscribers")
	}
	if err := r.store.Set(ctx, scope, StorageKey, payload); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save subscribers")
	}
	return nil
}
