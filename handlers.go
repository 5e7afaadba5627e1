package main

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// BridgeUseCaseInterface defines the interface for the use case
type BridgeUseCaseInterface interface {
	GetStock(ctx context.Context, productID string) (*StockResult, error)
	CreateOrder(ctx context.Context, req CreateOrderRequest) (*Order, error)
}

// BridgeHandler contains the HTTP handlers
type BridgeHandler struct {
	useCase BridgeUseCaseInterface
	tracer  trace.Tracer
}

// NewBridgeHandler creates a new BridgeHandler instance
func NewBridgeHandler(useCase BridgeUseCaseInterface, tracer trace.Tracer) *BridgeHandler {
	return &BridgeHandler{
		useCase: useCase,
		tracer:  tracer,
	}
}

// GetStock answers GET /api/stock. The productId query parameter is
// required; without it no upstream call is made.
func (h *BridgeHandler) GetStock(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "get_stock")
	defer span.End()

	productID := c.Query("productId")
	if productID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "productId is required"})
		return
	}

	span.SetAttributes(attribute.String("product_id", productID))

	stock, err := h.useCase.GetStock(ctx, productID)
	if err != nil {
		h.respondError(c, span, err)
		return
	}

	c.JSON(http.StatusOK, stock)
}

// CreateOrder answers POST /api/create-order. Missing productId or a
// non-positive quantity fail binding and never reach upstream.
func (h *BridgeHandler) CreateOrder(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "create_order")
	defer span.End()

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		span.RecordError(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	span.SetAttributes(
		attribute.String("product_id", req.ProductID),
		attribute.Int("quantity", req.Quantity),
	)

	order, err := h.useCase.CreateOrder(ctx, req)
	if err != nil {
		h.respondError(c, span, err)
		return
	}

	span.SetAttributes(attribute.String("order_id", order.ID))

	c.JSON(http.StatusOK, OrderResult{Success: true, Order: order})
}

// HealthCheck verifies the service is up
func (h *BridgeHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "wechat-shopify-server",
	})
}

// respondError converts a use-case failure into an HTTP response.
// Everything unclassified becomes a generic 500; the detail is logged
// here and never sent to the caller.
func (h *BridgeHandler) respondError(c *gin.Context, span trace.Span, err error) {
	span.RecordError(err)

	var notFound *NotFoundError
	var userErrs *UserErrorsError

	switch {
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFound.Error()})
	case errors.As(err, &userErrs):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Order rejected by Shopify", "details": userErrs.Errors})
	default:
		span.SetStatus(codes.Error, "upstream failure")
		log.Printf("❌ Upstream failure: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
	}
}
