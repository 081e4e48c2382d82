// File: controllers/stats.controller.go
package controllers

import (
	"context"
	"net/http"
	"time"

	"basketly-backend/apperr"
	"basketly-backend/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// HealthCheck memeriksa status koneksi database.
func (ctrl *Controller) HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := ctrl.DB.Client().Ping(ctx, nil)
	dbStatus := "connected"
	if err != nil {
		dbStatus = "disconnected"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"database":  dbStatus,
		"timestamp": time.Now().Unix(),
	})
}

// CountCustomers mengembalikan jumlah akun customer. Dokumen lama yang
// masih memakai role "user" ikut dihitung.
func (ctrl *Controller) CountCustomers(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	collection := ctrl.DB.Collection("users")
	count, err := collection.CountDocuments(ctx, bson.M{
		"role": bson.M{"$in": []string{models.RoleCustomer, models.RoleLegacyUser}},
	})
	if err != nil {
		ctrl.respondError(c, apperr.Service("Failed to fetch customer count", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}

// CountProducts mengembalikan jumlah seluruh produk.
func (ctrl *Controller) CountProducts(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	collection := ctrl.DB.Collection("products")
	count, err := collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		ctrl.respondError(c, apperr.Service("Failed to fetch product count", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}
