package main

import (
	"fmt"
	"log"

	"basketly-backend/cart"
	"basketly-backend/config"
	"basketly-backend/controllers"
	"basketly-backend/logger"
	"basketly-backend/routes"

	"github.com/cloudinary/cloudinary-go/v2"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()
	zlog := logger.Get()
	defer zlog.Sync()

	client, err := config.ConnectDB(cfg.MongoURI, cfg.MongoMode)
	if err != nil {
		log.Fatal(err)
	}
	db := client.Database(cfg.DatabaseName)

	var cld *cloudinary.Cloudinary
	if cfg.CloudinaryURL != "" {
		cld, err = cloudinary.NewFromURL(cfg.CloudinaryURL)
		if err != nil {
			log.Fatal("Failed to initialize Cloudinary: ", err)
		}
	} else {
		zlog.Warn("CLOUDINARY_URL not set, image upload disabled")
	}

	ctrl := &controllers.Controller{
		DB:              db,
		Cld:             cld,
		Carts:           cart.NewManager(cart.NewMemoryStorage()),
		PasetoSecretKey: cfg.PasetoSecretKey,
		Log:             zlog,
	}

	r := routes.Setup(ctrl, cfg.Env)

	zlog.Info("starting server",
		zap.String("port", cfg.Port),
		zap.String("env", cfg.Env),
		zap.String("mongo_mode", cfg.MongoMode),
	)
	fmt.Println("🚀 Server running on http://localhost:" + cfg.Port)

	log.Fatal(r.Run(":" + cfg.Port))
}
