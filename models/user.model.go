package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role pengguna yang dikenal aplikasi.
const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"

	// RoleLegacyUser adalah ejaan lama "customer" dari backend sebelumnya.
	RoleLegacyUser = "user"
)

// User mendefinisikan struktur untuk akun pengguna (admin maupun customer).
type User struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	FirstName string             `json:"firstName" bson:"firstName"`
	LastName  string             `json:"lastName" bson:"lastName"`
	Email     string             `json:"email" bson:"email"`
	Password  string             `json:"password,omitempty" bson:"password"`
	Role      string             `json:"role" bson:"role"`
	IsBlocked bool               `json:"isBlocked" bson:"isBlocked"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
}

// RegisterRequest mendefinisikan struktur untuk permintaan registrasi.
type RegisterRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	Role      string `json:"role"`
}

// LoginRequest mendefinisikan struktur untuk permintaan login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// StatusRequest mendefinisikan payload blokir/buka blokir akun.
type StatusRequest struct {
	IsBlocked *bool `json:"isBlocked" binding:"required"`
}

// CanonicalRole menormalkan ejaan role lama ke ejaan kanonis.
func CanonicalRole(role string) string {
	switch role {
	case RoleAdmin:
		return RoleAdmin
	case RoleLegacyUser, RoleCustomer, "":
		return RoleCustomer
	default:
		return role
	}
}
