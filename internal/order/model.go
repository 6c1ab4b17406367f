package order

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order references lessons by id; it never embeds or owns them.
type Order struct {
	ID        primitive.ObjectID   `json:"_id"                 bson:"_id,omitempty"`
	Name      string               `json:"name"                bson:"name"`
	Phone     string               `json:"phone"               bson:"phone"`
	LessonIDs []primitive.ObjectID `json:"lessonIds"           bson:"lessonIds"`
	CreatedAt time.Time            `json:"createdAt"           bson:"createdAt"`
	UpdatedAt *time.Time           `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// View is the order echoed back by create and update.
// swagger:model OrderView
type View struct {
	OrderID   primitive.ObjectID   `json:"orderId"             swaggertype:"string" example:"6650c0f2a1b2c3d4e5f60718"`
	Name      string               `json:"name"`
	Phone     string               `json:"phone"`
	LessonIDs []primitive.ObjectID `json:"lessonIds"           swaggertype:"array,string"`
	CreatedAt *time.Time           `json:"createdAt,omitempty"`
	UpdatedAt *time.Time           `json:"updatedAt,omitempty"`
}

func (o *Order) View() View {
	v := View{OrderID: o.ID, Name: o.Name, Phone: o.Phone, LessonIDs: o.LessonIDs, UpdatedAt: o.UpdatedAt}
	if !o.CreatedAt.IsZero() {
		created := o.CreatedAt
		v.CreatedAt = &created
	}
	return v
}

// Response wraps a View with a confirmation message.
// swagger:model OrderResponse
type Response struct {
	Message string `json:"message" example:"Order created successfully"`
	Order   View   `json:"order"`
}

// HTTPError represents a standard error in JSON.
// swagger:model
type HTTPError struct {
	// Error message
	// example: Order not found
	Error string `json:"error"`
}
