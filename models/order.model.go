package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Status order yang dikenal aplikasi.
const (
	OrderStatusPending    = "Pending"
	OrderStatusInProgress = "In Progress"
	OrderStatusComplete   = "Complete"
)

// ValidOrderStatus melaporkan apakah status termasuk nilai yang diizinkan.
func ValidOrderStatus(status string) bool {
	switch status {
	case OrderStatusPending, OrderStatusInProgress, OrderStatusComplete:
		return true
	}
	return false
}

// OrderItem adalah satu baris produk di dalam order.
type OrderItem struct {
	ProductID primitive.ObjectID `json:"productId" bson:"productId"`
	Name      string             `json:"name" bson:"name"`
	UnitPrice float64            `json:"unitPrice" bson:"unitPrice"`
	Quantity  int                `json:"quantity" bson:"quantity"`
}

// Order mendefinisikan struktur untuk order yang sudah dipersist.
type Order struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	CustomerName  string             `json:"customerName" bson:"customerName"`
	CustomerEmail string             `json:"customerEmail" bson:"customerEmail"`
	Items         []OrderItem        `json:"items" bson:"items"`
	TotalAmount   float64            `json:"totalAmount" bson:"totalAmount"`
	Status        string             `json:"status" bson:"status"`
	CreatedAt     time.Time          `json:"created_at" bson:"created_at"`
}

// OrderInput mendefinisikan payload pembuatan order lewat API.
type OrderInput struct {
	CustomerName  string      `json:"customerName" binding:"required"`
	CustomerEmail string      `json:"customerEmail" binding:"required,email"`
	Items         []OrderItem `json:"items"`
	TotalAmount   float64     `json:"totalAmount"`
	Status        string      `json:"status"`
}
