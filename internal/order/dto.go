package order

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/MikeMC777/lessons-booking/internal/apperr"
	"github.com/MikeMC777/lessons-booking/internal/jsonx"
)

// CreateOrderRequest payload of creation. name and phone take any scalar.
// swagger:model CreateOrderRequest
type CreateOrderRequest struct {
	Name      jsonx.Text      `json:"name"      example:"A" swaggertype:"string"`
	Phone     jsonx.Text      `json:"phone"     example:"1" swaggertype:"string"`
	LessonIDs json.RawMessage `json:"lessonIds" swaggertype:"array,string"`
}

// UpdateOrderRequest payload of full replacement.
// swagger:model UpdateOrderRequest
type UpdateOrderRequest struct {
	Name      jsonx.Text      `json:"name"      example:"A" swaggertype:"string"`
	Phone     jsonx.Text      `json:"phone"     example:"1" swaggertype:"string"`
	LessonIDs json.RawMessage `json:"lessonIds" swaggertype:"array,string"`
}

// DecodeLessonIDs accepts only a non-empty JSON array of strings. Anything
// else, missing and null included, is apperr.ErrInvalidInput.
func DecodeLessonIDs(raw json.RawMessage) ([]string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '[' {
		return nil, fmt.Errorf("lessonIds must be an array: %w", apperr.ErrInvalidInput)
	}
	var ids []string
	if err := json.Unmarshal(raw, &ids); err != nil {
		return nil, fmt.Errorf("lessonIds must hold strings: %w", apperr.ErrInvalidInput)
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("lessonIds must not be empty: %w", apperr.ErrInvalidInput)
	}
	return ids, nil
}
