package main

import (
	"context"
	"time"

	"github.com/no0bAuntor/online-voting-system/config"
	"github.com/no0bAuntor/online-voting-system/internal/api"
	"github.com/no0bAuntor/online-voting-system/internal/repository"
	"github.com/no0bAuntor/online-voting-system/internal/service"
	"github.com/no0bAuntor/online-voting-system/pkg/consul"
	"github.com/no0bAuntor/online-voting-system/pkg/zap"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

func main() {

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	log := zap.NewLogger(cfg.App.Mode)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Errorf("Failed to disconnect from MongoDB: %v", err)
		}
	}()

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Fatalf("Failed to ping MongoDB: %v", err)
	}
	log.Info("MongoDB connected")

	db := client.Database(cfg.Mongo.Database)

	userRepository := repository.NewUserRepository(db.Collection("users"))
	candidateRepository := repository.NewCandidateRepository(db.Collection("candidates"))
	settingRepository := repository.NewSettingRepository(db.Collection("settings"))
	symbolRepository := repository.NewSymbolRepository(db.Collection("symbols"))

	authService := service.NewAuthService(userRepository, cfg)
	ballotService := service.NewBallotService(userRepository, candidateRepository, settingRepository, log)
	electionService := service.NewElectionService(userRepository, candidateRepository, settingRepository, log)
	candidateService := service.NewCandidateService(candidateRepository, userRepository)
	symbolService := service.NewSymbolService(symbolRepository)

	gin.SetMode(cfg.App.Mode)
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Cors.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.Static("/uploads", cfg.Upload.Dir)

	api.RegisterAuthRouters(r, authService)
	api.RegisterVoteRouters(r, ballotService, electionService, candidateService, cfg)
	api.RegisterResultRouters(r, candidateService)
	api.RegisterSymbolRouters(r, symbolService, cfg)

	if cfg.Consul.Enabled {
		consulClient := consul.NewConsulConn(log, cfg)
		consulClient.Connect()
		defer consulClient.Deregister()
	}

	log.Infof("Server running on port %s", cfg.App.API.Rest.Port)
	if err := r.Run(":" + cfg.App.API.Rest.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
