package lesson

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/MikeMC777/lessons-booking/internal/store"
)

type PGRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPGRepo(db *pgxpool.Pool, timeout time.Duration) *PGRepo {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &PGRepo{db: db, timeout: timeout}
}

func (r *PGRepo) List(ctx context.Context) ([]Lesson, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := store.Conn(ctx, r.db).Query(ctx, `
		SELECT id, title, price::text, spaces, created_at
		FROM lessons
		ORDER BY created_at, id
	`)
	if err != nil {
		return nil, fmt.Errorf("list lessons: %w", store.Classify(err))
	}
	defer rows.Close()

	out := make([]Lesson, 0)
	for rows.Next() {
		var (
			l         Lesson
			id, price string
		)
		if err := rows.Scan(&id, &l.Title, &price, &l.Spaces, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan lesson: %w", err)
		}
		if l.ID, err = primitive.ObjectIDFromHex(id); err != nil {
			return nil, fmt.Errorf("lesson id %q: %w", id, err)
		}
		if l.Price, err = decimal.NewFromString(price); err != nil {
			return nil, fmt.Errorf("lesson %s price: %w", id, err)
		}
		out = append(out, l)
	}
	return out, store.Classify(rows.Err())
}

func (r *PGRepo) Create(ctx context.Context, l *Lesson) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	id := store.NewID()
	_, err := store.Conn(ctx, r.db).Exec(ctx, `
		INSERT INTO lessons (id, title, price, spaces, created_at)
		VALUES ($1,$2,$3,$4,$5)
	`, id.Hex(), l.Title, l.Price.String(), l.Spaces, l.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert lesson: %w", store.Classify(err))
	}
	l.ID = id
	return nil
}

func (r *PGRepo) UpdateSpaces(ctx context.Context, id primitive.ObjectID, spaces int) (*store.MutationResult, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	tag, err := store.Conn(ctx, r.db).Exec(ctx, `UPDATE lessons SET spaces = $2 WHERE id = $1`, id.Hex(), spaces)
	if err != nil {
		return nil, fmt.Errorf("update lesson spaces: %w", store.Classify(err))
	}
	n := tag.RowsAffected()
	return &store.MutationResult{Acknowledged: true, MatchedCount: n, ModifiedCount: n}, nil
}

func (r *PGRepo) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	tag, err := store.Conn(ctx, r.db).Exec(ctx, `DELETE FROM lessons WHERE id=$1`, id.Hex())
	if err != nil {
		return false, fmt.Errorf("delete lesson: %w", store.Classify(err))
	}
	return tag.RowsAffected() > 0, nil
}

// CountExisting share-locks the matched rows, so inside a transaction a
// concurrent delete waits until the order write commits.
func (r *PGRepo) CountExisting(ctx context.Context, ids []primitive.ObjectID) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var n int64
	err := store.Conn(ctx, r.db).QueryRow(ctx, `
		SELECT count(*) FROM (
			SELECT 1 FROM lessons WHERE id = ANY($1) FOR SHARE
		) AS found
	`, store.Hexes(ids)).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count lessons: %w", store.Classify(err))
	}
	return n, nil
}
