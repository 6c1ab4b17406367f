// Package docs holds the OpenAPI document served under /swagger. It is kept
// by hand in the layout swag init produces; update it with the handler
// annotations in cmd/lessons-api.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/lessons": {
            "get": {
                "produces": ["application/json", "text/plain"],
                "tags": ["lessons"],
                "summary": "List lessons",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/lesson.Lesson"}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "string"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json", "text/plain"],
                "tags": ["lessons"],
                "summary": "Create lesson",
                "parameters": [
                    {"description": "Lesson", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/lesson.CreateLessonRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/lesson.Lesson"}},
                    "400": {"description": "Bad Request", "schema": {"type": "string"}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "string"}}
                }
            }
        },
        "/lessons/{id}": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json", "text/plain"],
                "tags": ["lessons"],
                "summary": "Update lesson spaces",
                "parameters": [
                    {"type": "string", "description": "Lesson ID", "name": "id", "in": "path", "required": true},
                    {"description": "Spaces", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/lesson.UpdateSpacesRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/store.MutationResult"}},
                    "400": {"description": "Bad Request", "schema": {"type": "string"}},
                    "404": {"description": "Not Found", "schema": {"type": "string"}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "string"}}
                }
            },
            "delete": {
                "produces": ["text/plain"],
                "tags": ["lessons"],
                "summary": "Delete lesson",
                "parameters": [
                    {"type": "string", "description": "Lesson ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "string"}},
                    "400": {"description": "Bad Request", "schema": {"type": "string"}},
                    "404": {"description": "Not Found", "schema": {"type": "string"}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "string"}}
                }
            }
        },
        "/orders": {
            "get": {
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "List orders",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/order.Order"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/order.HTTPError"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Create order",
                "parameters": [
                    {"description": "Order", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/order.CreateOrderRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/order.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/order.HTTPError"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/order.HTTPError"}}
                }
            }
        },
        "/orders/{orderId}": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Update order",
                "parameters": [
                    {"type": "string", "description": "Order ID", "name": "orderId", "in": "path", "required": true},
                    {"description": "Order", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/order.UpdateOrderRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/order.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/order.HTTPError"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/order.HTTPError"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/order.HTTPError"}}
                }
            }
        }
    },
    "definitions": {
        "lesson.CreateLessonRequest": {
            "type": "object",
            "properties": {
                "price": {"type": "number", "example": 10},
                "spaces": {"type": "integer", "example": 5},
                "title": {"type": "string", "example": "Math"}
            }
        },
        "lesson.Lesson": {
            "type": "object",
            "properties": {
                "_id": {"type": "string"},
                "createdAt": {"type": "string"},
                "price": {"type": "number"},
                "spaces": {"type": "integer"},
                "title": {"type": "string"}
            }
        },
        "lesson.UpdateSpacesRequest": {
            "type": "object",
            "properties": {
                "spaces": {"type": "integer", "example": 4}
            }
        },
        "order.CreateOrderRequest": {
            "type": "object",
            "properties": {
                "lessonIds": {"type": "array", "items": {"type": "string"}},
                "name": {"type": "string", "example": "A"},
                "phone": {"type": "string", "example": "1"}
            }
        },
        "order.UpdateOrderRequest": {
            "type": "object",
            "properties": {
                "lessonIds": {"type": "array", "items": {"type": "string"}},
                "name": {"type": "string", "example": "A"},
                "phone": {"type": "string", "example": "1"}
            }
        },
        "order.HTTPError": {
            "type": "object",
            "properties": {
                "error": {"description": "Error message", "type": "string", "example": "Order not found"}
            }
        },
        "order.Order": {
            "type": "object",
            "properties": {
                "_id": {"type": "string"},
                "createdAt": {"type": "string"},
                "lessonIds": {"type": "array", "items": {"type": "string"}},
                "name": {"type": "string"},
                "phone": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "order.View": {
            "type": "object",
            "properties": {
                "createdAt": {"type": "string"},
                "lessonIds": {"type": "array", "items": {"type": "string"}},
                "name": {"type": "string"},
                "orderId": {"type": "string", "example": "6650c0f2a1b2c3d4e5f60718"},
                "phone": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "order.Response": {
            "type": "object",
            "properties": {
                "message": {"type": "string", "example": "Order created successfully"},
                "order": {"$ref": "#/definitions/order.View"}
            }
        },
        "store.MutationResult": {
            "type": "object",
            "properties": {
                "acknowledged": {"type": "boolean"},
                "matchedCount": {"type": "integer"},
                "modifiedCount": {"type": "integer"},
                "upsertedCount": {"type": "integer"},
                "upsertedId": {}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Lessons booking API",
	Description:      "Lessons catalog and orders that reserve them.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
