package kvstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/famoussince/storefront/pkg/db"
	"github.com/famoussince/storefront/pkg/db/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SQL stores snapshots in the kv_entries table through gorm. Works on
// Postgres and SQLite.
type SQL struct {
	client *db.Client
	now    func() time.Time
}

func NewSQL(client *db.Client) *SQL {
	return &SQL{client: client, now: time.Now}
}

func (s *SQL) Get(ctx context.Context, scope, key string) ([]byte, error) {
	var entry models.KVEntry
	err := s.client.DB().WithContext(ctx).
		Where("scope = ? AND entry_key = ?", scope, key).
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load %s/%s: %w", scope, key, err)
	}
	return []byte(entry.Value), nil
}

func (s *SQL) Set(ctx context.Context, scope, key string, value []byte) error {
	entry := models.KVEntry{
		Scope:     scope,
		Key:       key,
		Value:     string(value),
		UpdatedAt: s.now().UTC(),
	}
	err := s.client.DB().WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "scope"}, {Name: "entry_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&entry).Error
	if err != nil {
		return fmt.Errorf("upsert %s/%s: %w", scope, key, err)
	}
	return nil
}

func (s *SQL) Ping(ctx context.Context) error { return s.client.Ping(ctx) }

func (s *SQL) Close() error { return s.client.Close() }
