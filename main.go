package main

import (
	"fmt"
	"log/slog"
	"os"

	"backend/configs"
	"backend/middlewares"
	"backend/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(log)

	// DB
	if err := configs.ConnectionDB(cfg); err != nil {
		log.Error("database connection failed", slog.Any("error", err))
		os.Exit(1)
	}
	db := configs.DB()

	// migrate + demo data
	if err := configs.SetupDatabase(); err != nil {
		log.Error("migration failed", slog.Any("error", err))
		os.Exit(1)
	}
	if err := configs.SeedDemo(db); err != nil {
		log.Error("seed failed", slog.Any("error", err))
		os.Exit(1)
	}

	// HTTP
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestLogger(log))
	r.Use(middlewares.CORSMiddleware(cfg.CORSOrigin))

	routes.RegisterRoutes(r, db, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Info("server listening", slog.String("addr", addr))
	if err := r.Run(addr); err != nil {
		log.Error("server stopped", slog.Any("error", err))
		os.Exit(1)
	}
}
