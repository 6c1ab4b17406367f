package lesson

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/MikeMC777/lessons-booking/internal/apperr"
	"github.com/MikeMC777/lessons-booking/internal/store"
)

// Catalog owns lesson records.
type Catalog struct {
	repo Repository
	log  *zap.Logger
	now  func() time.Time
}

// NewCatalog fails with apperr.ErrStoreUnavailable when no repository is
// given, so a missing store is caught at startup instead of per request.
func NewCatalog(repo Repository, log *zap.Logger) (*Catalog, error) {
	if repo == nil {
		return nil, fmt.Errorf("lesson catalog: %w", apperr.ErrStoreUnavailable)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Catalog{repo: repo, log: log, now: time.Now}, nil
}

func (c *Catalog) List(ctx context.Context) ([]Lesson, error) {
	lessons, err := c.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	c.log.Debug("lessons fetched", zap.Int("count", len(lessons)))
	return lessons, nil
}

// Create stores the lesson exactly as given; price and spaces are not range
// checked.
func (c *Catalog) Create(ctx context.Context, title string, price decimal.Decimal, spaces int) (*Lesson, error) {
	l := &Lesson{
		Title:     title,
		Price:     price,
		Spaces:    spaces,
		CreatedAt: c.now().UTC().Truncate(time.Millisecond),
	}
	if err := c.repo.Create(ctx, l); err != nil {
		return nil, err
	}
	c.log.Info("lesson created", zap.String("id", l.ID.Hex()), zap.String("title", l.Title))
	return l, nil
}

func (c *Catalog) Delete(ctx context.Context, rawID string) error {
	id, err := store.ParseID(rawID)
	if err != nil {
		return err
	}
	ok, err := c.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		c.log.Warn("no lesson to delete", zap.String("id", rawID))
		return fmt.Errorf("lesson %s: %w", rawID, apperr.ErrNotFound)
	}
	c.log.Info("lesson deleted", zap.String("id", rawID))
	return nil
}

// UpdateSpaces sets spaces only and returns the raw mutation result.
func (c *Catalog) UpdateSpaces(ctx context.Context, rawID string, spaces int) (*store.MutationResult, error) {
	id, err := store.ParseID(rawID)
	if err != nil {
		return nil, err
	}
	res, err := c.repo.UpdateSpaces(ctx, id, spaces)
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		c.log.Warn("no lesson to update", zap.String("id", rawID))
		return nil, fmt.Errorf("lesson %s: %w", rawID, apperr.ErrNotFound)
	}
	c.log.Info("lesson spaces updated", zap.String("id", rawID), zap.Int("spaces", spaces))
	return res, nil
}
