// Package lesson provides the lesson catalog and its MongoDB and PostgreSQL
// repositories.
package lesson

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/MikeMC777/lessons-booking/internal/store"
)

const defaultTimeout = 5 * time.Second

type Repository interface {
	List(ctx context.Context) ([]Lesson, error)
	Create(ctx context.Context, l *Lesson) error
	UpdateSpaces(ctx context.Context, id primitive.ObjectID, spaces int) (*store.MutationResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
	// CountExisting counts lessons whose id is in ids. Duplicates in ids
	// count once.
	CountExisting(ctx context.Context, ids []primitive.ObjectID) (int64, error)
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
	return &MongoRepo{coll: db.Collection(store.LessonsCollection), timeout: timeout, log: log}
}

// lessonDoc is the stored shape. Price and spaces are read leniently so
// documents written with plain numbers or numeric strings still decode.
type lessonDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Title     string             `bson:"title"`
	Price     bson.RawValue      `bson:"price"`
	Spaces    bson.RawValue      `bson:"spaces"`
	CreatedAt time.Time          `bson:"createdAt"`
}

func (d lessonDoc) toLesson() (Lesson, error) {
	price, err := priceFromRaw(d.Price)
	if err != nil {
		return Lesson{}, fmt.Errorf("lesson %s: %w", d.ID.Hex(), err)
	}
	spaces, err := spacesFromRaw(d.Spaces)
	if err != nil {
		return Lesson{}, fmt.Errorf("lesson %s: %w", d.ID.Hex(), err)
	}
	return Lesson{ID: d.ID, Title: d.Title, Price: price, Spaces: spaces, CreatedAt: d.CreatedAt}, nil
}

func priceFromRaw(rv bson.RawValue) (decimal.Decimal, error) {
	switch rv.Type {
	case bson.TypeDecimal128:
		return decimal.NewFromString(rv.Decimal128().String())
	case bson.TypeDouble:
		return decimal.NewFromFloat(rv.Double()), nil
	case bson.TypeInt32:
		return decimal.NewFromInt32(rv.Int32()), nil
	case bson.TypeInt64:
		return decimal.NewFromInt(rv.Int64()), nil
	case bson.TypeString:
		return decimal.NewFromString(strings.TrimSpace(rv.StringValue()))
	case 0, bson.TypeNull, bson.TypeUndefined:
		return decimal.Zero, nil
	default:
		return decimal.Zero, fmt.Errorf("unsupported price type %s", rv.Type)
	}
}

func spacesFromRaw(rv bson.RawValue) (int, error) {
	switch rv.Type {
	case bson.TypeInt32:
		return int(rv.Int32()), nil
	case bson.TypeInt64:
		return int(rv.Int64()), nil
	case bson.TypeDouble, bson.TypeDecimal128, bson.TypeString:
		d, err := priceFromRaw(rv)
		if err != nil {
			return 0, fmt.Errorf("spaces: %w", err)
		}
		if !d.IsInteger() {
			return 0, fmt.Errorf("spaces %s is not a whole number", d)
		}
		return int(d.IntPart()), nil
	case 0, bson.TypeNull, bson.TypeUndefined:
		return 0, nil
	default:
		return 0, fmt.Errorf("unsupported spaces type %s", rv.Type)
	}
}

func (r *MongoRepo) List(ctx context.Context) ([]Lesson, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("find lessons: %w", store.Classify(err))
	}
	defer cur.Close(ctx)

	out := make([]Lesson, 0)
	for cur.Next(ctx) {
		var d lessonDoc
		if err := cur.Decode(&d); err != nil {
			r.log.Warn("skipping undecodable lesson", zap.Any("id", cur.Current.Lookup("_id")), zap.Error(err))
			continue
		}
		l, err := d.toLesson()
		if err != nil {
			r.log.Warn("skipping unreadable lesson", zap.Error(err))
			continue
		}
		out = append(out, l)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("decode lessons: %w", store.Classify(err))
	}
	return out, nil
}

func (r *MongoRepo) Create(ctx context.Context, l *Lesson) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	price, err := primitive.ParseDecimal128(l.Price.String())
	if err != nil {
		return fmt.Errorf("encode price: %w", err)
	}
	res, err := r.coll.InsertOne(ctx, bson.D{
		{Key: "title", Value: l.Title},
		{Key: "price", Value: price},
		{Key: "spaces", Value: l.Spaces},
		{Key: "createdAt", Value: l.CreatedAt},
	})
	if err != nil {
		return fmt.Errorf("insert lesson: %w", store.Classify(err))
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return fmt.Errorf("insert lesson: unexpected id type %T", res.InsertedID)
	}
	l.ID = id
	return nil
}

func (r *MongoRepo) UpdateSpaces(ctx context.Context, id primitive.ObjectID, spaces int) (*store.MutationResult, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"spaces": spaces}},
	)
	if err != nil {
		return nil, fmt.Errorf("update lesson spaces: %w", store.Classify(err))
	}
	return &store.MutationResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
		UpsertedID:    res.UpsertedID,
	}, nil
}

func (r *MongoRepo) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, fmt.Errorf("delete lesson: %w", store.Classify(err))
	}
	return res.DeletedCount > 0, nil
}

func (r *MongoRepo) CountExisting(ctx context.Context, ids []primitive.ObjectID) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return 0, fmt.Errorf("count lessons: %w", store.Classify(err))
	}
	return n, nil
}
