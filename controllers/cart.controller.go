// File: controllers/cart.controller.go
package controllers

import (
	"context"
	"net/http"
	"time"

	"basketly-backend/apperr"
	"basketly-backend/cart"
	"basketly-backend/middleware"
	"basketly-backend/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// cartSession menentukan kunci sesi keranjang: id user yang login,
// header X-Cart-Session untuk pengunjung, atau sesi baru yang
// dikembalikan lewat header yang sama.
func (ctrl *Controller) cartSession(c *gin.Context) string {
	if userID := c.GetString(middleware.ContextUserID); userID != "" {
		return userID
	}
	if sessionID := c.GetHeader("X-Cart-Session"); sessionID != "" {
		return sessionID
	}
	sessionID := cart.NewSessionID()
	c.Header("X-Cart-Session", sessionID)
	return sessionID
}

func cartView(c *cart.Cart) gin.H {
	return gin.H{
		"items":    c.Items,
		"subtotal": c.Subtotal(),
		"tax":      c.Tax(),
		"total":    c.Total(),
	}
}

// GetCart menangani pembacaan keranjang beserta nilai turunannya.
func (ctrl *Controller) GetCart(c *gin.Context) {
	sessionCart, err := ctrl.Carts.Get(ctrl.cartSession(c))
	if err != nil {
		ctrl.respondError(c, apperr.Service("Failed to load cart", err))
		return
	}
	c.JSON(http.StatusOK, cartView(sessionCart))
}

// AddCartItem menangani penambahan produk ke keranjang. Snapshot produk
// diambil dari katalog saat itu juga.
func (ctrl *Controller) AddCartItem(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var req struct {
		ProductID string `json:"productId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		ctrl.respondError(c, apperr.Validation("productId is required"))
		return
	}

	objectID, err := primitive.ObjectIDFromHex(req.ProductID)
	if err != nil {
		ctrl.respondError(c, apperr.Validation("Invalid product ID"))
		return
	}

	var product models.Product
	collection := ctrl.DB.Collection("products")
	if err := collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&product); err != nil {
		if err == mongo.ErrNoDocuments {
			ctrl.respondError(c, apperr.NotFound("Product not found"))
			return
		}
		ctrl.respondError(c, apperr.Service("Failed to fetch product", err))
		return
	}

	sessionCart, err := ctrl.Carts.AddItem(ctrl.cartSession(c), cart.Item{
		ProductID:     product.ID.Hex(),
		Name:          product.Name,
		Price:         product.Price,
		DiscountPrice: product.DiscountPrice,
		Image:         product.Image,
	})
	if err != nil {
		ctrl.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, cartView(sessionCart))
}

// UpdateCartItem menangani penggantian jumlah sebuah entri keranjang.
// Jumlah non-angka gagal binding; jumlah di bawah 1 ditolak tanpa
// mengubah keranjang.
func (ctrl *Controller) UpdateCartItem(c *gin.Context) {
	var req struct {
		Quantity *int `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		ctrl.respondError(c, apperr.Validation("quantity must be a valid integer"))
		return
	}

	sessionCart, err := ctrl.Carts.SetQuantity(ctrl.cartSession(c), c.Param("id"), *req.Quantity)
	if err != nil {
		ctrl.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, cartView(sessionCart))
}

// RemoveCartItem menangani penghapusan entri keranjang.
func (ctrl *Controller) RemoveCartItem(c *gin.Context) {
	sessionCart, err := ctrl.Carts.RemoveItem(ctrl.cartSession(c), c.Param("id"))
	if err != nil {
		ctrl.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cartView(sessionCart))
}

// Checkout membangun order dari keranjang, mempersistnya lewat store
// order yang sama dengan POST /orders, lalu mengosongkan keranjang.
func (ctrl *Controller) Checkout(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var req struct {
		CustomerName  string `json:"customerName" binding:"required"`
		CustomerEmail string `json:"customerEmail" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		ctrl.respondError(c, apperr.Validation("customerName and customerEmail are required"))
		return
	}

	sessionID := ctrl.cartSession(c)

	order, err := ctrl.Carts.Checkout(sessionID, req.CustomerName, req.CustomerEmail)
	if err != nil {
		ctrl.respondError(c, err)
		return
	}

	collection := ctrl.DB.Collection("orders")
	result, err := collection.InsertOne(ctx, order)
	if err != nil {
		ctrl.respondError(c, apperr.Service("Failed to create order", err))
		return
	}
	order.ID = result.InsertedID.(primitive.ObjectID)

	// Keranjang baru dikosongkan setelah order tersimpan.
	if err := ctrl.Carts.Clear(sessionID); err != nil {
		ctrl.respondError(c, apperr.Service("Failed to clear cart", err))
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Order Created", "order": order})
}
