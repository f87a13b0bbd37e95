package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/BloggingApp/miiverse-service/internal/config"
	"github.com/BloggingApp/miiverse-service/internal/handler"
	"github.com/BloggingApp/miiverse-service/internal/repository"
	"github.com/BloggingApp/miiverse-service/internal/repository/postgres"
	"github.com/BloggingApp/miiverse-service/internal/server"
	"github.com/BloggingApp/miiverse-service/internal/service"
	"github.com/BloggingApp/miiverse-service/internal/xmlresponse"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	if err := loadEnv(); err != nil {
		logger.Sugar().Panicf("failed to load environment variables: %s", err.Error())
	}

	if err := initConfig(); err != nil {
		logger.Sugar().Panicf("failed to initialize yaml config: %s", err.Error())
	}

	dbConfig := config.DBConfig{
		Username: os.Getenv("POSTGRES_USER"),
		Password: os.Getenv("POSTGRES_PASSWORD"),
		Host:     os.Getenv("POSTGRES_HOST"),
		Port:     os.Getenv("POSTGRES_PORT"),
		DBName:   os.Getenv("POSTGRES_DATABASE"),
		SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
	}
	db, err := postgres.DB(ctx, dbConfig)
	if err != nil {
		logger.Sugar().Panicf("failed to connect to postgres: %s", err.Error())
	}
	defer db.Close()
	if err := db.Ping(ctx); err != nil {
		logger.Sugar().Panicf("failed to ping postgres: %s", err.Error())
	}
	logger.Info("Successfully connected to PostgreSQL")

	redisOptions := &redis.Options{
		Addr: os.Getenv("REDIS_ADDR"),
	}
	rdb := redis.NewClient(redisOptions)
	pong, err := rdb.Ping(ctx).Result()
	if err != nil {
		logger.Sugar().Panicf("failed to ping redis: %s", err.Error())
	}
	logger.Sugar().Infof("Successfully connected to Redis: %s", pong)

	repos := repository.New(db, rdb)
	generator := xmlresponse.New(xmlresponse.Config{
		CDNOrigin:      viper.GetString("cdn.origin"),
		TopicPostLimit: viper.GetInt("topics.limit"),
	})
	cacheConfig := config.CacheConfig{
		EndpointTTL: viper.GetDuration("cache.ttl.endpoint"),
		PostsTTL:    viper.GetDuration("cache.ttl.posts"),
	}
	services := service.New(logger, repos, generator, cacheConfig)
	handlers := handler.New(services, logger, handler.Config{
		ClientOrigin: viper.GetString("client.origin"),
		AccessSecret: []byte(os.Getenv("ACCESS_SECRET")),
	})

	srv := server.New()
	serverConfig := config.ServerConfig{
		Port:           viper.GetString("app.port"),
		Handler:        handlers.InitRoutes(),
		MaxHeaderBytes: 1 << 20,
		ReadTimeout:    time.Second * 10,
		WriteTimeout:   time.Second * 10,
	}
	go func(cfg config.ServerConfig) {
		if err := srv.Run(cfg); err != nil {
			logger.Sugar().Panicf("failed to run http server: %s", err.Error())
		}
	}(serverConfig)

	logger.Info("Server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	logger.Info("Server shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, time.Second*5)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Errorf("failed to shutdown http server: %s", err.Error())
	}
	if err := rdb.Close(); err != nil {
		logger.Sugar().Errorf("failed to close redis client: %s", err.Error())
	}
}

func loadEnv() error {
	return godotenv.Load()
}

func initConfig() error {
	viper.AddConfigPath(".")
	viper.SetConfigType("yaml")
	viper.SetConfigName("app")
	viper.SetDefault("topics.limit", xmlresponse.DefaultTopicPostLimit)
	viper.SetDefault("cache.ttl.endpoint", time.Minute)
	viper.SetDefault("cache.ttl.posts", time.Second*30)
	return viper.ReadInConfig()
}
