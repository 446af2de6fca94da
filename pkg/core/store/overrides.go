package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"bess_quoting/pkg/core/baseline"
	"bess_quoting/pkg/core/catalog"
)

// OverrideStore reads admin-edited industry overrides. A missing row
// is a normal state (template coefficients apply) and returns nil, nil.
type OverrideStore struct {
	pool *pgxpool.Pool
}

// NewOverrideStore wraps a pool. A nil pool is allowed and makes every
// lookup report absence, which keeps the no-database development setup
// on template defaults.
func NewOverrideStore(pool *pgxpool.Pool) *OverrideStore {
	return &OverrideStore{pool: pool}
}

// Get fetches the override for an industry. The key is normalized
// through the catalog first so aliases hit the same row as the
// canonical ID. Context deadlines bound the read; callers fall back to
// template defaults on any error.
func (s *OverrideStore) Get(ctx context.Context, industryKey string) (*baseline.ConfigOverride, error) {
	if s.pool == nil {
		return nil, nil
	}
	tmpl, ok := catalog.Lookup(industryKey)
	if !ok {
		return nil, fmt.Errorf("override lookup: unknown industry %q", industryKey)
	}

	var o baseline.ConfigOverride
	o.IndustryID = tmpl.ID
	err := s.pool.QueryRow(ctx,
		`SELECT typical_load_kw, preferred_duration_hours
		   FROM industry_overrides
		  WHERE industry_id = $1`,
		tmpl.ID,
	).Scan(&o.TypicalLoadKW, &o.PreferredDurationHrs)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("override lookup for %s: %w", tmpl.ID, err)
	}
	return &o, nil
}
