package cart

import (
	"context"
	"encoding/json"
	"errors"

	pkgerrors "github.com/famoussince/storefront/pkg/errors"
	"github.com/famoussince/storefront/pkg/kvstore"
	"github.com/famoussince/storefront/pkg/logger"
)

// StorageKey is the fixed key the cart snapshot lives under.
const StorageKey = "fs_cart"

// Repository reads and writes whole cart snapshots.
type Repository struct {
	store  kvstore.Store
	logger *logger.Logger
}

// NewRepository binds the cart repository to a key-value store.
func NewRepository(store kvstore.Store, logg *logger.Logger) *Repository {
	if logg == nil {
		logg = logger.Nop()
	}
	return &Repository{store: store, logger: logg}
}

// Load returns the cart stored for scope. A missing, unparseable or
// wrongly shaped snapshot loads as an empty cart; only store failures are
// reported.
func (r *Repository) Load(ctx context.Context, scope string) (Ledger, error) {
	raw, err := r.store.Get(ctx, scope, StorageKey)
	if errors.Is(err, kvstore.ErrNotFound) {
		return Ledger{}, nil
	}
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart")
	}

	ledger, ok := decodeLedger(raw)
	if !ok {
		logCtx := r.logger.WithField(ctx, "scope", scope)
		r.logger.Warn(logCtx, "discarding unreadable cart snapshot")
		return Ledger{}, nil
	}
	return ledger, nil
}

// Save overwrites the snapshot for scope with l.
func (r *Repository) Save(ctx context.Context, scope string, l Ledger) error {
	if l == nil {
		l = Ledger{}
	}
	payload, err := json.Marshal(l)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode cart")
	}
	if err := r.store.Set(ctx, scope, StorageKey, payload); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save cart")
	}
	return nil
}

func decodeLedger(raw []byte) (Ledger, bool) {
	var lines []LineItem
	if err := json.Unmarshal(raw, &lines); err != nil {
		return nil, false
	}
	out := make(Ledger, 0, len(lines))
	for _, li := range lines {
		if li.ProductID == "" {
			continue
		}
		out = append(out, li)
	}
	return out, true
}
