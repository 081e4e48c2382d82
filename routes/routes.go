package routes

import (
	"net/http"

	"basketly-backend/controllers"
	"basketly-backend/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Setup mengonfigurasi dan mengembalikan Gin engine.
func Setup(ctrl *controllers.Controller, env string) *gin.Engine {
	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	config := cors.DefaultConfig()
	config.AllowOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000", "http://localhost:5173"}
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Cart-Session"}
	config.ExposeHeaders = []string{"X-Cart-Session"}
	r.Use(cors.New(config))

	authRequired := middleware.Authenticate(ctrl.PasetoSecretKey)
	adminOnly := middleware.AdminOnly()

	api := r.Group("/api")
	{
		// Rute utilitas
		api.GET("/health", ctrl.HealthCheck)

		// Rute akun
		accounts := api.Group("/accounts")
		{
			accounts.POST("/register", ctrl.Register)
			accounts.POST("/login", ctrl.Login)

			accounts.GET("", authRequired, adminOnly, ctrl.GetUsers)
			accounts.GET("/:id", authRequired, adminOnly, ctrl.GetUser)
			accounts.PUT("/:id/status", authRequired, adminOnly, ctrl.UpdateUserStatus)
			accounts.DELETE("/:id", authRequired, adminOnly, ctrl.DeleteUser)
			accounts.GET("/impersonate/:id", authRequired, adminOnly, ctrl.ImpersonateUser)
		}

		// Rute katalog: listing terbuka, mutasi khusus admin
		catalog := api.Group("/catalog")
		{
			catalog.GET("/products", ctrl.ListProducts)
			catalog.GET("/products/:id", ctrl.GetProduct)
			catalog.GET("/categories", ctrl.GetCategories)

			catalog.POST("/products", authRequired, adminOnly, ctrl.CreateProduct)
			catalog.PUT("/products/:id", authRequired, adminOnly, ctrl.UpdateProduct)
			catalog.DELETE("/products/:id", authRequired, adminOnly, ctrl.DeleteProduct)
		}

		// Rute keranjang: sesi login maupun pengunjung
		cartGroup := api.Group("/cart", middleware.AuthenticateOptional(ctrl.PasetoSecretKey))
		{
			cartGroup.GET("", ctrl.GetCart)
			cartGroup.POST("/items", ctrl.AddCartItem)
			cartGroup.PUT("/items/:id", ctrl.UpdateCartItem)
			cartGroup.DELETE("/items/:id", ctrl.RemoveCartItem)
			cartGroup.POST("/checkout", ctrl.Checkout)
		}

		// Rute order
		orders := api.Group("/orders")
		{
			orders.POST("", ctrl.CreateOrder)
			orders.GET("", authRequired, adminOnly, ctrl.GetOrders)
			orders.PUT("/:id/status", authRequired, adminOnly, ctrl.UpdateOrderStatus)
		}

		// Rute statistik dashboard
		stats := api.Group("/stats", authRequired, adminOnly)
		{
			stats.GET("/customers", ctrl.CountCustomers)
			stats.GET("/products", ctrl.CountProducts)
		}
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Endpoint not found"})
	})
	return r
}
