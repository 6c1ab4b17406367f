package lesson

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestMongoRepo(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ns := "lessons.lessons"

	mt.Run("create assigns id", func(mt *mtest.T) {
		repo := NewMongoRepo(mt.DB, time.Second, nil)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		l := &Lesson{Title: "Math", Price: decimal.NewFromInt(10), Spaces: 5, CreatedAt: time.Now().UTC()}
		if err := repo.Create(context.Background(), l); err != nil {
			mt.Fatalf("Create() error = %v", err)
		}
		if l.ID.IsZero() {
			mt.Fatal("Create() did not assign an id")
		}
	})

	mt.Run("list decodes decimal and plain prices", func(mt *mtest.T) {
		repo := NewMongoRepo(mt.DB, time.Second, nil)
		created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
		price, _ := primitive.ParseDecimal128("10.50")
		a, b := primitive.NewObjectID(), primitive.NewObjectID()

		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{
				{Key: "_id", Value: a},
				{Key: "title", Value: "Math"},
				{Key: "price", Value: price},
				{Key: "spaces", Value: int32(5)},
				{Key: "createdAt", Value: primitive.NewDateTimeFromTime(created)},
			},
			bson.D{
				{Key: "_id", Value: b},
				{Key: "title", Value: "Art"},
				{Key: "price", Value: 12.5},
				{Key: "spaces", Value: int32(0)},
				{Key: "createdAt", Value: primitive.NewDateTimeFromTime(created)},
			},
		))

		got, err := repo.List(context.Background())
		if err != nil {
			mt.Fatalf("List() error = %v", err)
		}
		if len(got) != 2 || got[0].ID != a || got[1].ID != b {
			mt.Fatalf("List() = %+v", got)
		}
		if !got[0].Price.Equal(decimal.RequireFromString("10.5")) || !got[1].Price.Equal(decimal.RequireFromString("12.5")) {
			mt.Fatalf("prices = %s, %s", got[0].Price, got[1].Price)
		}
		if got[0].Spaces != 5 || !got[0].CreatedAt.Equal(created) {
			mt.Fatalf("lesson = %+v", got[0])
		}
	})

	mt.Run("list reads string values and skips foreign documents", func(mt *mtest.T) {
		core, logs := observer.New(zapcore.WarnLevel)
		repo := NewMongoRepo(mt.DB, time.Second, zap.New(core))
		a, bad := primitive.NewObjectID(), primitive.NewObjectID()

		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{
				{Key: "_id", Value: a},
				{Key: "title", Value: "Math"},
				{Key: "price", Value: "9.99"},
				{Key: "spaces", Value: "4"},
			},
			bson.D{
				{Key: "_id", Value: bad},
				{Key: "title", Value: "Broken"},
				{Key: "price", Value: bson.D{{Key: "amount", Value: 1}}},
			},
		))

		got, err := repo.List(context.Background())
		if err != nil {
			mt.Fatalf("List() error = %v", err)
		}
		if len(got) != 1 || got[0].ID != a || got[0].Spaces != 4 || !got[0].Price.Equal(decimal.RequireFromString("9.99")) {
			mt.Fatalf("List() = %+v", got)
		}
		if logs.FilterMessage("skipping unreadable lesson").Len() != 1 {
			mt.Fatalf("skip not logged: %v", logs.All())
		}
	})

	mt.Run("list empty is not nil", func(mt *mtest.T) {
		repo := NewMongoRepo(mt.DB, time.Second, nil)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		got, err := repo.List(context.Background())
		if err != nil || got == nil || len(got) != 0 {
			mt.Fatalf("List() = %v, %v", got, err)
		}
	})

	mt.Run("update spaces returns raw counts", func(mt *mtest.T) {
		repo := NewMongoRepo(mt.DB, time.Second, nil)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: int32(1)},
			bson.E{Key: "nModified", Value: int32(1)},
		))

		res, err := repo.UpdateSpaces(context.Background(), primitive.NewObjectID(), 3)
		if err != nil {
			mt.Fatalf("UpdateSpaces() error = %v", err)
		}
		if !res.Acknowledged || res.MatchedCount != 1 || res.ModifiedCount != 1 {
			mt.Fatalf("result = %+v", res)
		}
	})

	mt.Run("delete reports misses", func(mt *mtest.T) {
		repo := NewMongoRepo(mt.DB, time.Second, nil)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: int32(0)}))

		ok, err := repo.Delete(context.Background(), primitive.NewObjectID())
		if err != nil || ok {
			mt.Fatalf("Delete() = %v, %v", ok, err)
		}
	})

	mt.Run("count existing", func(mt *mtest.T) {
		repo := NewMongoRepo(mt.DB, time.Second, nil)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{{Key: "n", Value: int32(2)}},
		))

		n, err := repo.CountExisting(context.Background(), []primitive.ObjectID{primitive.NewObjectID(), primitive.NewObjectID()})
		if err != nil || n != 2 {
			mt.Fatalf("CountExisting() = %d, %v", n, err)
		}
	})
}
