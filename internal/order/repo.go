package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/MikeMC777/lessons-booking/internal/store"
)

const defaultTimeout = 5 * time.Second

type Repository interface {
	List(ctx context.Context) ([]Order, error)
	Create(ctx context.Context, o *Order) error
	// Update overwrites name, phone, lessonIds and updatedAt of o.ID and
	// reports whether an order matched.
	Update(ctx context.Context, o *Order) (bool, error)
}

type MongoRepo struct {
	coll    *mongo.Collection
	timeout time.Duration
	log     *zap.Logger
}

func NewMongoRepo(db *mongo.Database, timeout time.Duration, log *zap.Logger) *MongoRepo {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &MongoRepo{coll: db.Collection(store.OrdersCollection), timeout: timeout, log: log}
}

// orderDoc reads lessonIds as stored either as ObjectIDs or as hex strings.
type orderDoc struct {
	ID        primitive.ObjectID `bson:"_id"`
	Name      string             `bson:"name"`
	Phone     string             `bson:"phone"`
	LessonIDs []bson.RawValue    `bson:"lessonIds"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt *time.Time         `bson:"updatedAt,omitempty"`
}

func (d orderDoc) toOrder() (Order, error) {
	o := Order{ID: d.ID, Name: d.Name, Phone: d.Phone, CreatedAt: d.CreatedAt, UpdatedAt: d.UpdatedAt}
	o.LessonIDs = make([]primitive.ObjectID, 0, len(d.LessonIDs))
	for _, rv := range d.LessonIDs {
		switch rv.Type {
		case bson.TypeObjectID:
			o.LessonIDs = append(o.LessonIDs, rv.ObjectID())
		case bson.TypeString:
			id, err := primitive.ObjectIDFromHex(rv.StringValue())
			if err != nil {
				return Order{}, fmt.Errorf("order %s: %w: %q", o.ID.Hex(), errBadStoredID, rv.StringValue())
			}
			o.LessonIDs = append(o.LessonIDs, id)
		default:
			return Order{}, fmt.Errorf("order %s: %w: type %s", o.ID.Hex(), errBadStoredID, rv.Type)
		}
	}
	return o, nil
}

func (r *MongoRepo) List(ctx context.Context) ([]Order, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("find orders: %w", store.Classify(err))
	}
	defer cur.Close(ctx)

	out := make([]Order, 0)
	for cur.Next(ctx) {
		var d orderDoc
		if err := cur.Decode(&d); err != nil {
			r.log.Warn("skipping undecodable order", zap.Any("id", cur.Current.Lookup("_id")), zap.Error(err))
			continue
		}
		o, err := d.toOrder()
		if err != nil {
			r.log.Warn("skipping unreadable order", zap.Error(err))
			continue
		}
		out = append(out, o)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("decode orders: %w", store.Classify(err))
	}
	return out, nil
}

func (r *MongoRepo) Create(ctx context.Context, o *Order) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	o.ID = primitive.NilObjectID
	res, err := r.coll.InsertOne(ctx, o)
	if err != nil {
		return fmt.Errorf("insert order: %w", store.Classify(err))
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return fmt.Errorf("insert order: unexpected id type %T", res.InsertedID)
	}
	o.ID = id
	return nil
}

func (r *MongoRepo) Update(ctx context.Context, o *Order) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": o.ID},
		bson.M{"$set": bson.M{
			"name":      o.Name,
			"phone":     o.Phone,
			"lessonIds": o.LessonIDs,
			"updatedAt": o.UpdatedAt,
		}},
	)
	if err != nil {
		return false, fmt.Errorf("update order: %w", store.Classify(err))
	}
	return res.MatchedCount > 0, nil
}

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

func (r *PGRepo) List(ctx context.Context) ([]Order, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := store.Conn(ctx, r.db).Query(ctx, `
		SELECT id, name, phone, lesson_ids, created_at, updated_at
		FROM orders
		ORDER BY created_at, id
	`)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", store.Classify(err))
	}
	defer rows.Close()

	out := make([]Order, 0)
	for rows.Next() {
		var (
			o         Order
			id        string
			lessonIDs []string
		)
		if err := rows.Scan(&id, &o.Name, &o.Phone, &lessonIDs, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		if o.ID, err = primitive.ObjectIDFromHex(id); err != nil {
			return nil, fmt.Errorf("order id %q: %w", id, err)
		}
		if o.LessonIDs, err = hexesToIDs(lessonIDs); err != nil {
			return nil, fmt.Errorf("order %s: %w", id, err)
		}
		out = append(out, o)
	}
	return out, store.Classify(rows.Err())
}

func (r *PGRepo) Create(ctx context.Context, o *Order) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	id := store.NewID()
	_, err := store.Conn(ctx, r.db).Exec(ctx, `
		INSERT INTO orders (id, name, phone, lesson_ids, created_at)
		VALUES ($1,$2,$3,$4,$5)
	`, id.Hex(), o.Name, o.Phone, store.Hexes(o.LessonIDs), o.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert order: %w", store.Classify(err))
	}
	o.ID = id
	return nil
}

func (r *PGRepo) Update(ctx context.Context, o *Order) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	tag, err := store.Conn(ctx, r.db).Exec(ctx, `
		UPDATE orders
		SET name = $2, phone = $3, lesson_ids = $4, updated_at = $5
		WHERE id = $1
	`, o.ID.Hex(), o.Name, o.Phone, store.Hexes(o.LessonIDs), o.UpdatedAt)
	if err != nil {
		return false, fmt.Errorf("update order: %w", store.Classify(err))
	}
	return tag.RowsAffected() > 0, nil
}

var errBadStoredID = errors.New("stored lesson id is not an object id")

func hexesToIDs(in []string) ([]primitive.ObjectID, error) {
	out := make([]primitive.ObjectID, 0, len(in))
	for _, s := range in {
		id, err := primitive.ObjectIDFromHex(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", errBadStoredID, s)
		}
		out = append(out, id)
	}
	return out, nil
}
