package store_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/MikeMC777/lessons-booking/internal/lesson"
	"github.com/MikeMC777/lessons-booking/internal/store"
)

// MONGO_REPLSET_URI must point at a replica set; transactions are not
// available on a standalone mongod.
func TestMongoTx_RollsBackOnError(t *testing.T) {
	uri := os.Getenv("MONGO_REPLSET_URI")
	if uri == "" {
		t.Skip("MONGO_REPLSET_URI not set")
	}
	ctx := context.Background()
	client, err := store.ConnectMongo(ctx, uri, 5*time.Second)
	if err != nil {
		t.Fatalf("ConnectMongo() error = %v", err)
	}
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })

	db := client.Database("lessons_booking_test")
	// collections must exist before a transaction writes to them
	_ = db.CreateCollection(ctx, store.LessonsCollection)
	repo := lesson.NewMongoRepo(db, 5*time.Second, nil)
	tx := store.MongoTx{Client: client}
	boom := errors.New("boom")

	var rolledBack primitive.ObjectID
	err = tx.RunInTx(ctx, func(ctx context.Context) error {
		l := &lesson.Lesson{Title: "Rolled back", Price: decimal.NewFromInt(1), CreatedAt: time.Now().UTC()}
		if err := repo.Create(ctx, l); err != nil {
			return err
		}
		rolledBack = l.ID
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("RunInTx() error = %v, want boom", err)
	}
	if n, err := repo.CountExisting(ctx, []primitive.ObjectID{rolledBack}); err != nil || n != 0 {
		t.Fatalf("rolled back lesson visible: n=%d err=%v", n, err)
	}

	var committed primitive.ObjectID
	err = tx.RunInTx(ctx, func(ctx context.Context) error {
		l := &lesson.Lesson{Title: "Committed", Price: decimal.NewFromInt(1), CreatedAt: time.Now().UTC()}
		if err := repo.Create(ctx, l); err != nil {
			return err
		}
		committed = l.ID
		return nil
	})
	if err != nil {
		t.Fatalf("RunInTx() error = %v", err)
	}
	t.Cleanup(func() { _, _ = repo.Delete(context.Background(), committed) })
	if n, err := repo.CountExisting(ctx, []primitive.ObjectID{committed}); err != nil || n != 1 {
		t.Fatalf("committed lesson: n=%d err=%v", n, err)
	}
}
