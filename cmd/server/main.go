package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"truck-load-planner/internal/config"
	"truck-load-planner/internal/metrics"
	"truck-load-planner/internal/modules/docs"
	"truck-load-planner/internal/modules/health"
	"truck-load-planner/internal/modules/optimizer"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// main is the application composition root. It wires the optimizer module
// behind the Echo router and starts the HTTP server.
func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	metrics.RegisterDefault()

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.Logger())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{cfg.ClientOrigin},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
	}))
	e.Use(metrics.Middleware())

	health.NewHandler(config.AppName, config.AppVersion).RegisterRoutes(e)
	docs.NewHandler().RegisterRoutes(e)
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	api := e.Group("/api/v1")
	optimizer.NewHandler(optimizer.NewService(), cfg.MaxOrdersPerRequest).RegisterRoutes(api)

	go func() {
		if err := e.Start(":" + cfg.ServerPort); err != nil && err != http.ErrServerClosed {
			e.Logger.Fatal("server error: ", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		e.Logger.Fatal(err)
	}
}
