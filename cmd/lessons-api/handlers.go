package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/MikeMC777/lessons-booking/internal/apperr"
	"github.com/MikeMC777/lessons-booking/internal/config"
	"github.com/MikeMC777/lessons-booking/internal/httpx"
	"github.com/MikeMC777/lessons-booking/internal/lesson"
	"github.com/MikeMC777/lessons-booking/internal/order"
)

const (
	msgStoreUnavailable = "Database connection is not available"
	msgLessonIDs        = "Lesson IDs are required and must be a non-empty array"
)

func newRouter(cat *lesson.Catalog, led *order.Ledger, log *zap.Logger, cfg config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), httpx.RequestID(), httpx.Logger(log), httpx.CORS(cfg.CORSOrigin))

	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.GET("/images/*filepath", httpx.StaticFiles(cfg.ImagesDir))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	lessons := r.Group("/lessons")
	lessons.GET("", listLessonsHandler(cat, log))
	lessons.POST("", createLessonHandler(cat, log))
	lessons.PUT("/:id", updateLessonSpacesHandler(cat, log))
	lessons.DELETE("/:id", deleteLessonHandler(cat, log))

	orders := r.Group("/orders")
	orders.GET("", listOrdersHandler(led, log))
	orders.POST("", createOrderHandler(led, log))
	orders.PUT("/:orderId", updateOrderHandler(led, log))
	return r
}

// Lesson routes answer errors in plain text.
func lessonError(c *gin.Context, log *zap.Logger, err error, fallback string) {
	status := httpx.StatusOf(err)
	msg := fallback
	switch {
	case errors.Is(err, apperr.ErrStoreUnavailable):
		msg = msgStoreUnavailable
	case errors.Is(err, apperr.ErrNotFound):
		msg = "Lesson not found"
	case errors.Is(err, apperr.ErrInvalidIdentifier):
		msg = "Invalid lesson id"
	}
	if status >= http.StatusInternalServerError {
		log.Error(fallback, zap.Error(err))
	}
	c.String(status, msg)
}

// Order routes answer errors as {"error": "..."}.
func orderError(c *gin.Context, log *zap.Logger, err error, fallback string) {
	status := httpx.StatusOf(err)
	msg := fallback
	switch {
	case errors.Is(err, apperr.ErrStoreUnavailable):
		msg = msgStoreUnavailable
	case errors.Is(err, apperr.ErrInvalidInput):
		msg = msgLessonIDs
	case errors.Is(err, apperr.ErrInvalidIdentifier):
		msg = "Invalid identifier"
	case errors.Is(err, apperr.ErrInvalidReference):
		msg = "One or more lesson IDs are invalid"
	case errors.Is(err, apperr.ErrNotFound):
		msg = "Order not found"
	}
	if status >= http.StatusInternalServerError {
		log.Error(fallback, zap.Error(err))
	}
	c.JSON(status, order.HTTPError{Error: msg})
}

// listLessonsHandler godoc
// @Summary  List lessons
// @Tags     lessons
// @Produce  json
// @Success  200 {array}  lesson.Lesson
// @Failure  500 {string} string
// @Router   /lessons [get]
func listLessonsHandler(cat *lesson.Catalog, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := cat.List(c.Request.Context())
		if err != nil {
			lessonError(c, log, err, "Error fetching lessons")
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// createLessonHandler godoc
// @Summary  Create lesson
// @Tags     lessons
// @Accept   json
// @Produce  json
// @Param    body body     lesson.CreateLessonRequest true "Lesson"
// @Success  201  {object} lesson.Lesson
// @Failure  400  {string} string
// @Failure  500  {string} string
// @Router   /lessons [post]
func createLessonHandler(cat *lesson.Catalog, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req lesson.CreateLessonRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.String(http.StatusBadRequest, "Invalid lesson payload")
			return
		}
		l, err := cat.Create(c.Request.Context(), string(req.Title), req.Price, int(req.Spaces))
		if err != nil {
			lessonError(c, log, err, "Error creating lesson")
			return
		}
		c.JSON(http.StatusCreated, l)
	}
}

// updateLessonSpacesHandler godoc
// @Summary  Update lesson spaces
// @Tags     lessons
// @Accept   json
// @Produce  json
// @Param    id   path     string                     true "Lesson ID"
// @Param    body body     lesson.UpdateSpacesRequest true "Spaces"
// @Success  200  {object} store.MutationResult
// @Failure  400  {string} string
// @Failure  404  {string} string
// @Failure  500  {string} string
// @Router   /lessons/{id} [put]
func updateLessonSpacesHandler(cat *lesson.Catalog, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req lesson.UpdateSpacesRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.String(http.StatusBadRequest, "Invalid spaces payload")
			return
		}
		res, err := cat.UpdateSpaces(c.Request.Context(), c.Param("id"), int(req.Spaces))
		if err != nil {
			lessonError(c, log, err, "Error updating lesson spaces")
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

// deleteLessonHandler godoc
// @Summary  Delete lesson
// @Tags     lessons
// @Produce  plain
// @Param    id  path     string true "Lesson ID"
// @Success  200 {string} string
// @Failure  400 {string} string
// @Failure  404 {string} string
// @Failure  500 {string} string
// @Router   /lessons/{id} [delete]
func deleteLessonHandler(cat *lesson.Catalog, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := cat.Delete(c.Request.Context(), c.Param("id")); err != nil {
			lessonError(c, log, err, "Error deleting lesson")
			return
		}
		c.String(http.StatusOK, "Lesson deleted successfully")
	}
}

// listOrdersHandler godoc
// @Summary  List orders
// @Tags     orders
// @Produce  json
// @Success  200 {array}  order.Order
// @Failure  500 {object} order.HTTPError
// @Router   /orders [get]
func listOrdersHandler(led *order.Ledger, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := led.List(c.Request.Context())
		if err != nil {
			orderError(c, log, err, "Error fetching orders")
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// createOrderHandler godoc
// @Summary  Create order
// @Tags     orders
// @Accept   json
// @Produce  json
// @Param    body body     order.CreateOrderRequest true "Order"
// @Success  201  {object} order.Response
// @Failure  400  {object} order.HTTPError
// @Failure  500  {object} order.HTTPError
// @Router   /orders [post]
func createOrderHandler(led *order.Ledger, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req order.CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, order.HTTPError{Error: "Invalid request body"})
			return
		}
		ids, err := order.DecodeLessonIDs(req.LessonIDs)
		if err != nil {
			orderError(c, log, err, msgLessonIDs)
			return
		}
		o, err := led.Create(c.Request.Context(), string(req.Name), string(req.Phone), ids)
		if err != nil {
			orderError(c, log, err, "Error creating order")
			return
		}
		c.JSON(http.StatusCreated, order.Response{Message: "Order created successfully", Order: o.View()})
	}
}

// updateOrderHandler godoc
// @Summary  Update order
// @Tags     orders
// @Accept   json
// @Produce  json
// @Param    orderId path     string                   true "Order ID"
// @Param    body    body     order.UpdateOrderRequest true "Order"
// @Success  200     {object} order.Response
// @Failure  400     {object} order.HTTPError
// @Failure  404     {object} order.HTTPError
// @Failure  500     {object} order.HTTPError
// @Router   /orders/{orderId} [put]
func updateOrderHandler(led *order.Ledger, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req order.UpdateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, order.HTTPError{Error: "Invalid request body"})
			return
		}
		ids, err := order.DecodeLessonIDs(req.LessonIDs)
		if err != nil {
			orderError(c, log, err, msgLessonIDs)
			return
		}
		o, err := led.Update(c.Request.Context(), c.Param("orderId"), string(req.Name), string(req.Phone), ids)
		if err != nil {
			orderError(c, log, err, "Error updating order")
			return
		}
		c.JSON(http.StatusOK, order.Response{Message: "Order updated successfully", Order: o.View()})
	}
}
