package controllers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"basketly-backend/apperr"
	"basketly-backend/middleware"
	"basketly-backend/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"
)

// userProjection menyembunyikan hash password dari semua pembacaan akun.
var userProjection = bson.M{"password": 0}

// Register menangani registrasi akun baru.
func (ctrl *Controller) Register(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
		return
	}

	role := models.CanonicalRole(req.Role)
	if role != models.RoleAdmin && role != models.RoleCustomer {
		ctrl.respondError(c, apperr.Validation("Invalid role: "+req.Role))
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	collection := ctrl.DB.Collection("users")

	var existing models.User
	if err := collection.FindOne(ctx, bson.M{"email": email}).Decode(&existing); err == nil {
		ctrl.respondError(c, apperr.Conflict("Email already exists"))
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		ctrl.respondError(c, apperr.Service("Failed to hash password", err))
		return
	}

	user := models.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     email,
		Password:  string(hashedPassword),
		Role:      role,
		IsBlocked: false,
		CreatedAt: time.Now(),
	}

	if _, err := collection.InsertOne(ctx, user); err != nil {
		ctrl.respondError(c, apperr.Service("Failed to register user", err))
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully"})
}

// Login menangani proses login dan menerbitkan bearer token.
func (ctrl *Controller) Login(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	collection := ctrl.DB.Collection("users")
	if err := collection.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		// Email tidak dikenal dan password salah memakai pesan yang sama.
		ctrl.respondError(c, apperr.Validation("Invalid credentials"))
		return
	}

	if user.IsBlocked {
		ctrl.respondError(c, apperr.Forbidden("Access denied: account is blocked"))
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		ctrl.respondError(c, apperr.Auth("Invalid credentials"))
		return
	}

	token, err := middleware.IssueToken(ctrl.PasetoSecretKey, user.ID.Hex(), models.CanonicalRole(user.Role))
	if err != nil {
		ctrl.respondError(c, apperr.Service("Failed to generate token", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"role":    models.CanonicalRole(user.Role),
		"userId":  user.ID.Hex(),
		"token":   token,
	})
}

// GetUsers menangani pengambilan semua akun tanpa field password.
func (ctrl *Controller) GetUsers(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	collection := ctrl.DB.Collection("users")
	cursor, err := collection.Find(ctx, bson.M{}, options.Find().SetProjection(userProjection))
	if err != nil {
		ctrl.respondError(c, apperr.Service("Failed to fetch users", err))
		return
	}
	defer cursor.Close(ctx)

	users := make([]models.User, 0)
	if err = cursor.All(ctx, &users); err != nil {
		ctrl.respondError(c, apperr.Service("Failed to parse users", err))
		return
	}

	c.JSON(http.StatusOK, users)
}

// GetUser menangani pengambilan satu akun berdasarkan ID.
func (ctrl *Controller) GetUser(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		ctrl.respondError(c, apperr.Validation("Invalid user ID"))
		return
	}

	var user models.User
	collection := ctrl.DB.Collection("users")
	err = collection.FindOne(ctx, bson.M{"_id": objectID},
		options.FindOne().SetProjection(userProjection)).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			ctrl.respondError(c, apperr.NotFound("User not found"))
			return
		}
		ctrl.respondError(c, apperr.Service("Failed to fetch user", err))
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateUserStatus menangani blokir/buka blokir akun. Operasi ini
// idempoten: menyetel nilai yang sama tidak mengubah apa pun.
func (ctrl *Controller) UpdateUserStatus(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		ctrl.respondError(c, apperr.Validation("Invalid user ID"))
		return
	}

	var req models.StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ctrl.respondError(c, apperr.Validation("isBlocked is required"))
		return
	}

	var user models.User
	collection := ctrl.DB.Collection("users")
	err = collection.FindOneAndUpdate(ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": bson.M{"isBlocked": *req.IsBlocked}},
		options.FindOneAndUpdate().SetReturnDocument(options.After).SetProjection(userProjection),
	).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			ctrl.respondError(c, apperr.NotFound("User not found"))
			return
		}
		ctrl.respondError(c, apperr.Service("Failed to update user status", err))
		return
	}

	message := "User unblocked successfully"
	if *req.IsBlocked {
		message = "User blocked successfully"
	}
	c.JSON(http.StatusOK, gin.H{"message": message, "user": user})
}

// DeleteUser menangani penghapusan akun.
func (ctrl *Controller) DeleteUser(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		ctrl.respondError(c, apperr.Validation("Invalid user ID"))
		return
	}

	collection := ctrl.DB.Collection("users")
	result, err := collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		ctrl.respondError(c, apperr.Service("Failed to delete user", err))
		return
	}

	if result.DeletedCount == 0 {
		ctrl.respondError(c, apperr.NotFound("User not found"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}

// ImpersonateUser mengembalikan snapshot akun untuk fitur "view as".
// Tidak ada token baru yang diterbitkan di sini.
func (ctrl *Controller) ImpersonateUser(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		ctrl.respondError(c, apperr.Validation("Invalid user ID"))
		return
	}

	var user models.User
	collection := ctrl.DB.Collection("users")
	err = collection.FindOne(ctx, bson.M{"_id": objectID},
		options.FindOne().SetProjection(userProjection)).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			ctrl.respondError(c, apperr.NotFound("User not found"))
			return
		}
		ctrl.respondError(c, apperr.Service("Failed to impersonate user", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":          "Switched session to " + user.Email,
		"impersonatedUser": user,
	})
}
