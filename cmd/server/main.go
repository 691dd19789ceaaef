package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/shivamkr082003/Brainly/internal/auth"
	"github.com/shivamkr082003/Brainly/internal/config"
	"github.com/shivamkr082003/Brainly/internal/content"
	"github.com/shivamkr082003/Brainly/internal/middleware"
	"github.com/shivamkr082003/Brainly/internal/share"
	"github.com/shivamkr082003/Brainly/internal/store"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}
	secret := []byte(cfg.JWTSecret)

	// ── MongoDB ──────────────────────────────────────────────
	mongoClient, err := store.Connect(ctx, cfg.MongoURI)
	if err != nil {
		log.WithError(err).Fatal("mongo connect")
	}
	defer mongoClient.Disconnect(ctx)
	db := mongoClient.Database(cfg.MongoDB)
	if err := store.EnsureIndexes(ctx, db); err != nil {
		log.WithError(err).Fatal("mongo indexes")
	}

	users := store.NewUserStore(db)
	contents := store.NewContentStore(db)
	links := store.NewLinkStore(db)

	// ── Redis (optional, rate limiting only) ─────────────────
	rdb, err := connectRedis(ctx, cfg)
	if err != nil {
		log.WithError(err).Warn("redis unavailable, rate limiting disabled")
	}
	if rdb != nil {
		defer rdb.Close()
	}

	// ── Handlers ─────────────────────────────────────────────
	authHandler := auth.NewHandler(users, secret, log)
	contentHandler := content.NewHandler(contents, users, log)
	shareHandler := share.NewHandler(links, contents, users, log)

	// ── Router ───────────────────────────────────────────────
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message":"Brainly API is running"}`))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimit(rdb, 20, time.Minute))
			r.Post("/signup", authHandler.Signup)
			r.Post("/signin", authHandler.Signin)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth(secret))
			r.Post("/content", contentHandler.Create)
			r.Get("/content", contentHandler.List)
			r.Delete("/content", contentHandler.Delete)
			r.Post("/brain/share", shareHandler.Share)
		})

		r.Get("/brain/{shareLink}", shareHandler.Resolve)
	})

	// ── Server ───────────────────────────────────────────────
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		log.Infof("Brainly API listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down...")
	shutCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	srv.Shutdown(shutCtx)
}

// connectRedis returns nil without error when no address is configured;
// rate limiting is simply disabled in that case.
func connectRedis(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	if cfg.RedisAddr == "" {
		return nil, nil
	}
	return store.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword)
}
