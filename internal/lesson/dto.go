package lesson

import (
	"github.com/shopspring/decimal"

	"github.com/MikeMC777/lessons-booking/internal/jsonx"
)

// CreateLessonRequest payload of creation. Absent fields are stored empty;
// numbers may arrive as strings.
// swagger:model CreateLessonRequest
type CreateLessonRequest struct {
	Title  jsonx.Text      `json:"title"  example:"Math" swaggertype:"string"`
	Price  decimal.Decimal `json:"price"  example:"10"   swaggertype:"number"`
	Spaces jsonx.Int       `json:"spaces" example:"5"    swaggertype:"integer"`
}

// UpdateSpacesRequest payload of PUT /lessons/{id}.
// swagger:model UpdateSpacesRequest
type UpdateSpacesRequest struct {
	Spaces jsonx.Int `json:"spaces" example:"4" swaggertype:"integer"`
}
