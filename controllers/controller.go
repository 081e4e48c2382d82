// File: controllers/controller.go
package controllers

import (
	"basketly-backend/apperr"
	"basketly-backend/cart"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Controller menampung dependensi yang akan digunakan oleh semua handler.
// Pastikan field diawali huruf besar agar bisa diakses dari package lain.
type Controller struct {
	DB              *mongo.Database
	Cld             *cloudinary.Cloudinary
	Carts           *cart.Manager
	PasetoSecretKey []byte
	Log             *zap.Logger
}

// respondError menerjemahkan error aplikasi menjadi balasan JSON dengan
// status yang sesuai. Penyebab internal dicatat, tidak dibocorkan ke klien.
func (ctrl *Controller) respondError(c *gin.Context, err error) {
	appErr := apperr.From(err)
	if appErr.Kind == apperr.KindService {
		ctrl.Log.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
	}
	c.JSON(appErr.Status(), gin.H{"error": appErr.Message})
}
