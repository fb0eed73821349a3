// @title Blogbase API
// @version 1.0
// @description REST API for a blogging app: auth, posts, comments, likes.
// @host localhost:8000
// @BasePath /

package main

import (
	"context"
	"log"
	"time"

	_ "blogbase/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/swagger"

	"blogbase/bootstrap"
	"blogbase/cache"
	"blogbase/config"
	"blogbase/database"
	"blogbase/internal/apperr"
	"blogbase/internal/middleware"
	"blogbase/internal/repository"
	"blogbase/internal/routes"
	"blogbase/internal/services"
)

func main() {
	cfg := config.LoadConfig()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	client := database.ConnectMongo(cfg.MongoURI)
	defer client.Disconnect(context.Background())

	db := client.Database(cfg.MongoDB)
	log.Println("connected to MongoDB:", cfg.MongoDB)

	// Unique email and unique (author, title) back the Conflict errors.
	if err := bootstrap.EnsureIndexes(db); err != nil {
		log.Fatalf("ensure indexes failed: %v", err)
	}

	users := repository.NewUserRepository(db)
	posts := repository.NewPostRepository(db)
	auth := &services.AuthService{Users: users, Secret: cfg.JWTSecret, TTL: cfg.TokenTTL}
	likeCache := cache.New(cfg.RedisAddr, 30*time.Second)
	if likeCache == nil {
		log.Println("REDIS_ADDR not set, like-count cache disabled")
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: apperr.Handler,
	})
	app.Use(logger.New())

	app.Get("/docs/*", swagger.HandlerDefault)
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.SendString("ok") })

	// Public auth routes first; everything below requires a session cookie.
	routes.SetupAuth(app, auth, users)

	app.Use(middleware.RequireSession(auth, users))

	routes.SetupRoutesPost(app, posts, users)
	routes.CommentRoutes(app, posts)
	routes.LikeRoutes(app, posts, likeCache)
	routes.TagRoutes(app, posts)

	log.Fatal(app.Listen(":" + cfg.Port))
}
