package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/medremind/reminder-engine/internal/config"
	"github.com/medremind/reminder-engine/internal/infra/repository"
	"github.com/medremind/reminder-engine/loadtest/internal/stub"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	port := os.Getenv("STUB_PORT")
	if port == "" {
		port = "8090"
	}

	redisCfg, err := config.LoadRedisConfig()
	if err != nil {
		slog.Error("failed to load redis configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     redisCfg.Addr,
		Password: redisCfg.Password,
		DB:       redisCfg.DB,
	})
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		slog.Error("failed to connect redis", slog.String("error", err.Error()))
		os.Exit(1)
	}

	medRepo := repository.NewMedicationRepository(redisClient)
	handler := stub.NewHandler(stub.NewSinkStorage(), medRepo)

	r := gin.Default()
	r.POST("/notify", handler.HandleNotify)
	r.GET("/notifications", handler.HandleNotifications)
	r.POST("/seed", handler.HandleSeed)
	r.POST("/reset", handler.HandleReset)

	slog.Info("stub sink listening", slog.String("port", port))
	if err := r.Run(":" + port); err != nil {
		slog.Error("stub sink exited", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
