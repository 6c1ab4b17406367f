package lesson

import (
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Lesson struct {
	ID        primitive.ObjectID `json:"_id"`
	Title     string             `json:"title"`
	Price     decimal.Decimal    `json:"price"`
	Spaces    int                `json:"spaces"`
	CreatedAt time.Time          `json:"createdAt"`
}
