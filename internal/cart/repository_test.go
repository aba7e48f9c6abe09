package cart

import (
	"context"
	"errors"
	"testing"

	pkgerrors "github.com/famoussince/storefront/pkg/errors"
	"github.com/famoussince/storefront/pkg/kvstore"
	"github.com/famoussince/storefront/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepositoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemory()
	repo := NewRepository(store, logger.Nop())

	empty, err := repo.Load(ctx, "session:a")
	require.NoError(t, err)
	assert.Empty(t, empty)

	l := Ledger{
		{ProductID: "tee", Title: "Day One Tee", UnitPrice: 20, Size: "M", Quantity: 2, ImageURL: "/tee.jpg", CheckoutURL: "https://pay/tee"},
	}
	require.NoError(t, repo.Save(ctx, "session:a", l))

	got, err := repo.Load(ctx, "session:a")
	require.NoError(t, err)
	assert.Equal(t, l, got)

	raw, err := store.Get(ctx, "session:a", StorageKey)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"product_id":"tee","title":"Day One Tee","unit_price":20,"size":"M","quantity":2,"image_url":"/tee.jpg","checkout_url":"https://pay/tee"}]`, string(raw))

	other, err := repo.Load(ctx, "session:b")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestRepositoryCorruptSnapshotLoadsEmpty(t *testing.T) {
	ctx := context.Background()
	for name, blob := range map[string]string{
		"invalid json":  `{not json`,
		"object":        `{"product_id":"tee"}`,
		"array of nums": `[1,2,3]`,
		"string":        `"fs_cart"`,
		"null":          `null`,
	} {
		store := kvstore.NewMemory()
		require.NoError(t, store.Set(ctx, "s", StorageKey, []byte(blob)))

		got, err := NewRepository(store, nil).Load(ctx, "s")
		require.NoError(t, err, name)
		assert.NotNil(t, got, name)
		assert.Empty(t, got, name)
	}
}

func TestRepositoryDropsLinesWithoutProduct(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemory()
	require.NoError(t, store.Set(ctx, "s", StorageKey, []byte(`[{"title":"ghost"},{"product_id":"tee","quantity":-2,"unit_price":5}]`)))

	got, err := NewRepository(store, nil).Load(ctx, "s")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].Quantity)
	assert.Equal(t, 5.0, got[0].UnitPrice)
}

func TestRepositoryStoreFailure(t *testing.T) {
	repo := NewRepository(failingStore{}, nil)

	_, err := repo.Load(context.Background(), "s")
	require.Error(t, err)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeDependency))

	err = repo.Save(context.Background(), "s", nil)
	require.Error(t, err)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeDependency))
}

type failingStore struct{}

func (failingStore) Get(context.Context, string, string) ([]byte, error) {
	return nil, errors.New("connection refused")
}

func (failingStore) Set(context.Context, string, string, []byte) error {
	return errors.New("connection refused")
}

func (failingStore) Ping(context.Context) error { return errors.New("connection refused") }

func (failingStore) Close() error { return nil }
