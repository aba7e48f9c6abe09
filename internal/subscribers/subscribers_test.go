package subscribers

import (
	"context"
	"testing"

	pkgerrors "github.com/famoussince/storefront/pkg/errors"
	"github.com/famoussince/storefront/pkg/kvstore"
	"github.com/famoussince/storefront/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	valid := []string{"a@b.co", "first.last@famous.since", "x+y@sub.domain.io"}
	for _, email := range valid {
		if err := Validate(email); err != nil {
			t.Fatalf("expected %q to be valid: %v", email, err)
		}
	}

	invalid := []string{"", "plain", "a@b", "@b.co", "a@.co", "a b@c.co", "a@b@c.co", "a@b.", "a@b c.co"}
	for _, email := range invalid {
		err := Validate(email)
		if err == nil {
			t.Fatalf("expected %q to be invalid", email)
		}
		if !pkgerrors.IsCode(err, pkgerrors.CodeValidation) {
			t.Fatalf("expected validation code for %q, got %v", email, err)
		}
		if pkgerrors.As(err).Message() != MsgInvalid {
			t.Fatalf("unexpected message %q", pkgerrors.As(err).Message())
		}
	}
}

func TestSubscribeNormalizesAndRejectsDuplicates(t *testing.T) {
	list, email, err := Subscribe(nil, "  X@Y.Co ")
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	if email != "x@y.co" || len(list) != 1 || list[0] != "x@y.co" {
		t.Fatalf("unexpected list %v (email %q)", list, email)
	}

	again, _, err := Subscribe(list, "x@y.co")
	if err == nil {
		t.Fatal("expected duplicate error")
	}
	if !pkgerrors.IsCode(err, pkgerrors.CodeConflict) {
		t.Fatalf("expected conflict code, got %v", err)
	}
	if pkgerrors.As(err).Message() != MsgDuplicate {
		t.Fatalf("unexpected message %q", pkgerrors.As(err).Message())
	}
	if len(again) != 1 {
		t.Fatalf("duplicate must not grow the list: %v", again)
	}

	_, _, err = Subscribe(list, "not-an-email")
	if !pkgerrors.IsCode(err, pkgerrors.CodeValidation) {
		t.Fatalf("expected validation code, got %v", err)
	}
}

func TestSubscribeDoesNotMutateInput(t *testing.T) {
	base := make(List, 1, 4)
	base[0] = "a@b.co"
	next, _, err := Subscribe(base, "c@d.co")
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	next[0] = "changed@x.io"
	if base[0] != "a@b.co" {
		t.Fatal("input list shares storage with the result")
	}
}

func TestRepository(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemory()
	repo := NewRepository(store, logger.Nop())

	list, err := repo.Load(ctx, "site")
	require.NoError(t, err)
	assert.Empty(t, list)

	require.NoError(t, repo.Save(ctx, "site", List{"a@b.co", "c@d.co"}))
	raw, err := store.Get(ctx, "site", StorageKey)
	require.NoError(t, err)
	assert.JSONEq(t, `["a@b.co","c@d.co"]`, string(raw))

	list, err = repo.Load(ctx, "site")
	require.NoError(t, err)
	assert.Equal(t, List{"a@b.co", "c@d.co"}, list)
}

func TestRepositoryToleratesBadSnapshots(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemory()
	repo := NewRepository(store, nil)

	require.NoError(t, store.Set(ctx, "site", StorageKey, []byte(`{"oops":true}`)))
	list, err := repo.Load(ctx, "site")
	require.NoError(t, err)
	assert.Empty(t, list)

	require.NoError(t, store.Set(ctx, "site", StorageKey, []byte(`[" A@B.co ","a@b.co",""]`)))
	list, err = repo.Load(ctx, "site")
	require.NoError(t, err)
	assert.Equal(t, List{"a@b.co"}, list)
}
