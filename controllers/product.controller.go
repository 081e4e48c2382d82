// File: controllers/product.controller.go
package controllers

import (
	"context"
	"net/http"
	"time"

	"basketly-backend/apperr"
	"basketly-backend/catalog"
	"basketly-backend/models"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ListProducts menangani listing produk dengan filter, sort, dan paginasi.
func (ctrl *Controller) ListProducts(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	query, err := catalog.ParseListQuery(c.Request.URL.Query())
	if err != nil {
		ctrl.respondError(c, err)
		return
	}

	collection := ctrl.DB.Collection("products")

	total, err := collection.CountDocuments(ctx, query.Filter())
	if err != nil {
		ctrl.respondError(c, apperr.Service("Failed to count products", err))
		return
	}

	cursor, err := collection.Find(ctx, query.Filter(), query.FindOptions())
	if err != nil {
		ctrl.respondError(c, apperr.Service("Failed to fetch products", err))
		return
	}
	defer cursor.Close(ctx)

	products := make([]models.Product, 0)
	if err = cursor.All(ctx, &products); err != nil {
		ctrl.respondError(c, apperr.Service("Failed to parse products", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"products":   products,
		"totalPages": catalog.TotalPages(total, query.Limit),
	})
}

// GetProduct menangani pengambilan satu produk berdasarkan ID.
func (ctrl *Controller) GetProduct(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		ctrl.respondError(c, apperr.Validation("Invalid product ID"))
		return
	}

	var product models.Product
	collection := ctrl.DB.Collection("products")
	err = collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&product)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			ctrl.respondError(c, apperr.NotFound("Product not found"))
			return
		}
		ctrl.respondError(c, apperr.Service("Failed to fetch product", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"product": product})
}

// GetCategories menangani pengambilan daftar kategori unik.
func (ctrl *Controller) GetCategories(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	collection := ctrl.DB.Collection("products")
	values, err := collection.Distinct(ctx, "category", bson.M{})
	if err != nil {
		ctrl.respondError(c, apperr.Service("Failed to fetch categories", err))
		return
	}

	categories := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok && s != "" {
			categories = append(categories, s)
		}
	}

	c.JSON(http.StatusOK, categories)
}

// CreateProduct menangani pembuatan produk baru. Discount dan flag stock
// selalu diturunkan dari payload, tidak pernah diterima apa adanya.
func (ctrl *Controller) CreateProduct(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var input models.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := catalog.ValidateCreate(&input); err != nil {
		ctrl.respondError(c, err)
		return
	}

	product := models.Product{
		Name:        *input.Name,
		Description: *input.Description,
		Price:       *input.Price,
		Category:    *input.Category,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if input.Image != nil {
		product.Image = *input.Image
	}
	if input.DiscountPrice != nil {
		product.DiscountPrice = *input.DiscountPrice
	}
	if input.Rating != nil {
		product.Rating = *input.Rating
	}
	if input.Count != nil {
		product.Count = *input.Count
	}

	if input.ImageBase64 != "" && ctrl.Cld != nil {
		uploadResult, err := ctrl.Cld.Upload.Upload(
			ctx,
			input.ImageBase64,
			uploader.UploadParams{Folder: "basketly/products"},
		)
		if err != nil {
			ctrl.respondError(c, apperr.Service("Failed to upload image", err))
			return
		}
		product.Image = uploadResult.SecureURL
	}

	product.Discount = catalog.ComputeDiscount(product.Price, product.DiscountPrice)
	product.Stock = catalog.InStock(product.Count)

	collection := ctrl.DB.Collection("products")
	result, err := collection.InsertOne(ctx, product)
	if err != nil {
		ctrl.respondError(c, apperr.Service("Failed to create product", err))
		return
	}

	product.ID = result.InsertedID.(primitive.ObjectID)
	c.JSON(http.StatusCreated, gin.H{"message": "Product created", "product": product})
}

// UpdateProduct menangani pembaruan parsial produk. Dokumen hasil selalu
// dihitung ulang discount dan flag stock-nya.
func (ctrl *Controller) UpdateProduct(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		ctrl.respondError(c, apperr.Validation("Invalid product ID"))
		return
	}

	var input models.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := catalog.ValidateUpdate(&input); err != nil {
		ctrl.respondError(c, err)
		return
	}

	collection := ctrl.DB.Collection("products")

	var product models.Product
	if err := collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&product); err != nil {
		if err == mongo.ErrNoDocuments {
			ctrl.respondError(c, apperr.NotFound("Product not found"))
			return
		}
		ctrl.respondError(c, apperr.Service("Failed to fetch product", err))
		return
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.DiscountPrice != nil {
		product.DiscountPrice = *input.DiscountPrice
	}
	if input.Image != nil {
		product.Image = *input.Image
	}
	if input.Rating != nil {
		product.Rating = *input.Rating
	}
	if input.Count != nil {
		product.Count = *input.Count
	}

	if input.ImageBase64 != "" && ctrl.Cld != nil {
		uploadResult, err := ctrl.Cld.Upload.Upload(
			ctx,
			input.ImageBase64,
			uploader.UploadParams{Folder: "basketly/products"},
		)
		if err != nil {
			ctrl.respondError(c, apperr.Service("Failed to upload image", err))
			return
		}
		product.Image = uploadResult.SecureURL
	}

	product.Discount = catalog.ComputeDiscount(product.Price, product.DiscountPrice)
	product.Stock = catalog.InStock(product.Count)
	product.UpdatedAt = time.Now()

	if _, err := collection.ReplaceOne(ctx, bson.M{"_id": objectID}, product); err != nil {
		ctrl.respondError(c, apperr.Service("Failed to update product", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product updated successfully", "product": product})
}

// DeleteProduct menangani penghapusan produk.
func (ctrl *Controller) DeleteProduct(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		ctrl.respondError(c, apperr.Validation("Invalid product ID"))
		return
	}

	collection := ctrl.DB.Collection("products")
	result, err := collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		ctrl.respondError(c, apperr.Service("Failed to delete product", err))
		return
	}

	if result.DeletedCount == 0 {
		ctrl.respondError(c, apperr.NotFound("Product not found"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}
