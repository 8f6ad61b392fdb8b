package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/amrenderatomar-prog/Task-Management-API/internal/handlers"
	"github.com/amrenderatomar-prog/Task-Management-API/internal/middlewares"
	"github.com/amrenderatomar-prog/Task-Management-API/internal/repository"
	"github.com/amrenderatomar-prog/Task-Management-API/internal/service"
	"github.com/amrenderatomar-prog/Task-Management-API/pkg/auth"
	"github.com/amrenderatomar-prog/Task-Management-API/pkg/config"
	"github.com/amrenderatomar-prog/Task-Management-API/pkg/db"
	"github.com/amrenderatomar-prog/Task-Management-API/pkg/obs"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	gdb := db.Open(cfg.PGDSN)

	userRepo := repository.NewUserRepo(gdb)
	taskRepo := repository.NewTaskRepo(gdb)
	tokenRepo := repository.NewRefreshTokenRepo(gdb)
	// users first, the task and token tables reference it
	for _, m := range []interface{ Migrate() error }{userRepo, taskRepo, tokenRepo} {
		if err := m.Migrate(); err != nil {
			log.Fatal(err)
		}
	}

	tokens := auth.NewTokenService(
		cfg.AccessTokenSecret,
		cfg.RefreshTokenSecret,
		time.Duration(cfg.AccessExpireMin)*time.Minute,
		time.Duration(cfg.RefreshExpireHr)*time.Hour,
	)

	authSvc := service.NewAuthSvc(userRepo, tokenRepo, tokens)
	taskSvc := service.NewTaskSvc(taskRepo)
	adminSvc := service.NewAdminSvc(userRepo)

	r := gin.Default()
	r.Use(cors.Default())
	r.Use(middlewares.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))

	if cfg.OtelEnabled {
		shutdown := obs.InitTracer("task-api")
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdown(ctx); err != nil {
				log.Printf("tracer shutdown: %v", err)
			}
		}()
		r.Use(otelgin.Middleware("task-api"))
	}

	handlers.SetupRoutes(r, tokens, userRepo, authSvc, taskSvc, adminSvc)

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: r}

	go func() {
		log.Printf("task-api on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("server shutdown: %v", err)
	}
}
