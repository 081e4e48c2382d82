// File: controllers/order.controller.go
package controllers

import (
	"context"
	"net/http"
	"regexp"
	"time"

	"basketly-backend/apperr"
	"basketly-backend/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateOrder menangani pembuatan order lewat API.
func (ctrl *Controller) CreateOrder(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var input models.OrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if len(input.Items) == 0 {
		ctrl.respondError(c, apperr.Validation("No items provided"))
		return
	}
	for _, item := range input.Items {
		if item.Quantity < 1 {
			ctrl.respondError(c, apperr.Validation("Item quantity must be at least 1"))
			return
		}
	}

	status := input.Status
	if status == "" {
		status = models.OrderStatusPending
	}
	if !models.ValidOrderStatus(status) {
		ctrl.respondError(c, apperr.Validation("Invalid order status: "+input.Status))
		return
	}

	order := models.Order{
		CustomerName:  input.CustomerName,
		CustomerEmail: input.CustomerEmail,
		Items:         input.Items,
		TotalAmount:   input.TotalAmount,
		Status:        status,
		CreatedAt:     time.Now(),
	}

	collection := ctrl.DB.Collection("orders")
	result, err := collection.InsertOne(ctx, order)
	if err != nil {
		ctrl.respondError(c, apperr.Service("Failed to create order", err))
		return
	}

	order.ID = result.InsertedID.(primitive.ObjectID)
	c.JSON(http.StatusCreated, gin.H{"message": "Order Created", "order": order})
}

// GetOrders menangani listing order, terbaru lebih dulu. Filter opsional:
// status (sama persis) dan customer (substring nama, case-insensitive).
func (ctrl *Controller) GetOrders(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{}
	if status := c.Query("status"); status != "" {
		if !models.ValidOrderStatus(status) {
			ctrl.respondError(c, apperr.Validation("Invalid order status: "+status))
			return
		}
		filter["status"] = status
	}
	if customer := c.Query("customer"); customer != "" {
		filter["customerName"] = bson.M{"$regex": regexp.QuoteMeta(customer), "$options": "i"}
	}

	collection := ctrl.DB.Collection("orders")
	cursor, err := collection.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}))
	if err != nil {
		ctrl.respondError(c, apperr.Service("Failed to fetch orders", err))
		return
	}
	defer cursor.Close(ctx)

	orders := make([]models.Order, 0)
	if err = cursor.All(ctx, &orders); err != nil {
		ctrl.respondError(c, apperr.Service("Failed to parse orders", err))
		return
	}

	c.JSON(http.StatusOK, orders)
}

// UpdateOrderStatus menangani perpindahan status order oleh admin.
func (ctrl *Controller) UpdateOrderStatus(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		ctrl.respondError(c, apperr.Validation("Invalid order ID"))
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		ctrl.respondError(c, apperr.Validation("status is required"))
		return
	}
	if !models.ValidOrderStatus(req.Status) {
		ctrl.respondError(c, apperr.Validation("Invalid order status: "+req.Status))
		return
	}

	var order models.Order
	collection := ctrl.DB.Collection("orders")
	err = collection.FindOneAndUpdate(ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": bson.M{"status": req.Status}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&order)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			ctrl.respondError(c, apperr.NotFound("Order not found"))
			return
		}
		ctrl.respondError(c, apperr.Service("Failed to update order status", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order status updated", "order": order})
}
