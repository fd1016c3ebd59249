// cmd/server/main.go
package main

import (
	"context"
	"database/sql"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/egokay/storefront.git/internal/adapters/httpapi"
	"github.com/egokay/storefront.git/internal/adapters/rabbitmq"
	"github.com/egokay/storefront.git/internal/adapters/redis"
	"github.com/egokay/storefront.git/internal/adapters/repository"
	"github.com/egokay/storefront.git/internal/adapters/strapi"
	"github.com/egokay/storefront.git/internal/application"
	"github.com/egokay/storefront.git/internal/config"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load env variables", err)
	}
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	db, err := sql.Open("postgres", cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		log.Fatalf("failed to ping DB: %v", err)
	}
	if err := repository.InitSchema(context.Background(), db); err != nil {
		log.Fatalf("failed to init DB: %v", err)
	}
	journal := repository.NewPostgresJournal(db)

	// Sessions outlive catalog cache entries, so each concern gets its own
	// TTL over the same redis.
	sessionCache := redis.NewCache(redis.Config{
		Addr:     cfg.RedisAddr,
		Username: cfg.RedisUsername,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
		TTL:      24 * time.Hour,
	})
	if err := sessionCache.Ping(context.Background()); err != nil {
		log.Fatalf("failed to connect to Redis: %v", err)
	}
	catalogCache := redis.NewCache(redis.Config{
		Addr:     cfg.RedisAddr,
		Username: cfg.RedisUsername,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
		TTL:      5 * time.Minute,
	})

	pool, err := rabbitmq.NewChannelPool(cfg.RabbitMQURL, cfg.RabbitMQQueue, cfg.ChannelPoolSize)
	if err != nil {
		log.Fatalf("failed to create RabbitMQ channel pool: %v", err)
	}
	defer pool.Close()
	publisher := rabbitmq.NewPublisher(pool, cfg.RabbitMQQueue)

	client := strapi.NewClient(cfg.StoreURL, 15*time.Second)
	repo := strapi.NewRepository(client)
	authPort := strapi.NewAuth(client)

	notices := application.NewNoticeCenter(application.SystemClock, 3*time.Second)
	sessions := application.NewSessionService(authPort, sessionCache)
	catalog := application.NewCatalogService(repo, catalogCache, notices)
	cart := application.NewCartService(repo, notices)
	checkout := application.NewCheckoutService(repo, journal, publisher, notices, application.SystemClock)
	favorites := application.NewFavoritesService(repo, notices)
	account := application.NewAccountService(repo)

	server := httpapi.NewServer(httpapi.Services{
		Sessions:  sessions,
		Catalog:   catalog,
		Cart:      cart,
		Checkout:  checkout,
		Favorites: favorites,
		Account:   account,
		Notices:   notices,
		Journal:   journal,
	})

	log.Printf("storefront listening on :%s", cfg.Port)
	if err := server.Router().Run(":" + cfg.Port); err != nil {
		log.Fatalf("failed to serve: %v", err)
	}
}
