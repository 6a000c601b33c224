package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Singleton settings document keys.
const (
	SettingsLanding  = "landing"
	SettingsSEO      = "seo"
	SettingsCalendar = "calendar"
)

// SettingsRepository stores singleton configuration documents identified by
// a fixed key. Saves merge into the existing document.
type SettingsRepository interface {
	Get(ctx context.Context, key string, dest any) error
	Merge(ctx context.Context, key string, doc any) error
}

type settingsRepository struct {
	pool *pgxpool.Pool
}

// NewSettingsRepository returns a document-store backed implementation.
func NewSettingsRepository(pool *pgxpool.Pool) SettingsRepository {
	return &settingsRepository{pool: pool}
}

func (r *settingsRepository) Get(ctx context.Context, key string, dest any) error {
	return getDoc(ctx, r.pool, collectionSettings, key, dest)
}

func (r *settingsRepository) Merge(ctx context.Context, key string, doc any) error {
	return mergeDoc(ctx, r.pool, collectionSettings, key, doc)
}
