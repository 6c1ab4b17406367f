// Package order implements the order ledger: orders that reference lessons by
// id, validated against the lesson catalog at write time.
package order

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/MikeMC777/lessons-booking/internal/apperr"
	"github.com/MikeMC777/lessons-booking/internal/store"
)

// LessonLookup is the read-only view of the lesson catalog the ledger needs.
type LessonLookup interface {
	CountExisting(ctx context.Context, ids []primitive.ObjectID) (int64, error)
}

// Publisher receives the order View after each successful write.
type Publisher interface {
	PublishJSON(ctx context.Context, key string, v any) error
}

const (
	EventCreated = "order.created"
	EventUpdated = "order.updated"
)

type Ledger struct {
	repo    Repository
	lessons LessonLookup
	tx      store.TxRunner
	pub     Publisher
	log     *zap.Logger
	now     func() time.Time
}

// NewLedger wires the ledger. tx, pub and log are optional; without tx the
// existence check and the write are two independent store calls.
func NewLedger(repo Repository, lessons LessonLookup, tx store.TxRunner, pub Publisher, log *zap.Logger) (*Ledger, error) {
	if repo == nil || lessons == nil {
		return nil, fmt.Errorf("order ledger: %w", apperr.ErrStoreUnavailable)
	}
	if tx == nil {
		tx = store.NoTx{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Ledger{repo: repo, lessons: lessons, tx: tx, pub: pub, log: log, now: time.Now}, nil
}

func (l *Ledger) List(ctx context.Context) ([]Order, error) {
	orders, err := l.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	l.log.Debug("orders fetched", zap.Int("count", len(orders)))
	return orders, nil
}

// Create persists the order even when some referenced lessons do not exist:
// the lookup only probes, a shortfall is logged and the order is kept.
func (l *Ledger) Create(ctx context.Context, name, phone string, lessonIDs []string) (*Order, error) {
	ids, err := parseLessonIDs(lessonIDs)
	if err != nil {
		return nil, err
	}
	o := &Order{
		Name:      name,
		Phone:     phone,
		LessonIDs: ids,
		CreatedAt: l.now().UTC().Truncate(time.Millisecond),
	}

	err = l.tx.RunInTx(ctx, func(ctx context.Context) error {
		found, err := l.lessons.CountExisting(ctx, ids)
		if err != nil {
			return err
		}
		if want := int64(len(store.Distinct(ids))); found < want {
			l.log.Warn("order references missing lessons",
				zap.Int64("found", found), zap.Int64("requested", want))
		}
		return l.repo.Create(ctx, o)
	})
	if err != nil {
		return nil, err
	}

	l.log.Info("order created", zap.String("id", o.ID.Hex()), zap.Int("lessons", len(ids)))
	l.publish(ctx, EventCreated, o)
	return o, nil
}

// Update requires every distinct referenced lesson to exist; otherwise it
// fails with apperr.ErrInvalidReference and the order is left as it was.
func (l *Ledger) Update(ctx context.Context, orderID, name, phone string, lessonIDs []string) (*Order, error) {
	ids, err := parseLessonIDs(lessonIDs)
	if err != nil {
		return nil, err
	}
	id, err := store.ParseID(orderID)
	if err != nil {
		return nil, err
	}
	updatedAt := l.now().UTC().Truncate(time.Millisecond)
	o := &Order{ID: id, Name: name, Phone: phone, LessonIDs: ids, UpdatedAt: &updatedAt}

	err = l.tx.RunInTx(ctx, func(ctx context.Context) error {
		found, err := l.lessons.CountExisting(ctx, ids)
		if err != nil {
			return err
		}
		if want := int64(len(store.Distinct(ids))); found < want {
			return fmt.Errorf("%d of %d lessons exist: %w", found, want, apperr.ErrInvalidReference)
		}
		ok, err := l.repo.Update(ctx, o)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("order %s: %w", orderID, apperr.ErrNotFound)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	l.log.Info("order updated", zap.String("id", orderID))
	l.publish(ctx, EventUpdated, o)
	return o, nil
}

func parseLessonIDs(raw []string) ([]primitive.ObjectID, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("lesson ids are required: %w", apperr.ErrInvalidInput)
	}
	return store.ParseIDs(raw)
}

func (l *Ledger) publish(ctx context.Context, key string, o *Order) {
	if l.pub == nil {
		return
	}
	if err := l.pub.PublishJSON(ctx, key, o.View()); err != nil {
		l.log.Warn("publish order event", zap.String("key", key), zap.Error(err))
	}
}
