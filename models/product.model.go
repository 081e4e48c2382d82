package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product mendefinisikan struktur untuk produk.
type Product struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name          string             `json:"name" bson:"name"`
	Description   string             `json:"description" bson:"description"`
	Price         float64            `json:"price" bson:"price"`
	DiscountPrice float64            `json:"discountPrice,omitempty" bson:"discountPrice,omitempty"`
	Discount      int                `json:"discount" bson:"discount"`
	Image         string             `json:"image" bson:"image"`
	Rating        float64            `json:"rating" bson:"rating"`
	Count         int                `json:"count" bson:"count"`
	Stock         bool               `json:"stock" bson:"stock"`
	Category      string             `json:"category" bson:"category"`
	CreatedAt     time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at" bson:"updated_at"`
	ImageBase64   string             `json:"image_base64,omitempty" bson:"-"`
}

// ProductInput mendefinisikan payload create/update produk.
// Pointer fields membedakan "tidak dikirim" dari nilai nol pada update parsial.
type ProductInput struct {
	Name          *string  `json:"name"`
	Description   *string  `json:"description"`
	Price         *float64 `json:"price"`
	DiscountPrice *float64 `json:"discountPrice"`
	Image         *string  `json:"image"`
	Rating        *float64 `json:"rating"`
	Count         *int     `json:"count"`
	Category      *string  `json:"category"`
	ImageBase64   string   `json:"image_base64"`
}
