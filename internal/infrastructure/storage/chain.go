package storage

import (
	"context"
	"errors"

	"github.com/nickmafra/sym-balls/internal/domain"
	"github.com/nickmafra/sym-balls/internal/ports"
)

// Chain reads through several stores in order and writes to the first one.
// Earlier stores shadow later ones on ID collisions.
type Chain struct {
	stores []ports.LevelStore
}

func NewChain(stores ...ports.LevelStore) *Chain { return &Chain{stores: stores} }

func (c *Chain) Save(ctx context.Context, l *domain.Level) error {
	if len(c.stores) == 0 {
		return ErrReadOnly
	}
	return c.stores[0].Save(ctx, l)
}

func (c *Chain) Load(ctx context.Context, id string) (*domain.Level, error) {
	for _, s := range c.stores {
		l, err := s.Load(ctx, id)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		return l, err
	}
	return nil, ErrNotFound
}

func (c *Chain) List(ctx context.Context) ([]domain.LevelMeta, error) {
	seen := make(map[string]bool)
	var out []domain.LevelMeta
	for _, s := range c.stores {
		metas, err := s.List(ctx)
		if err != nil {
			return nil, err
		}
		for _, m := range metas {
			if seen[m.ID] {
				continue
			}
			seen[m.ID] = true
			out = append(out, m)
		}
	}
	return out, nil
}
