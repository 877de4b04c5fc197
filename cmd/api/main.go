package main

import (
	"log"
	"movie_catalog/api"
	"movie_catalog/configs"
	"movie_catalog/db/mongodb"
	"movie_catalog/db/redis"
	"movie_catalog/internal/handler"
	"movie_catalog/internal/repository"
	"movie_catalog/internal/service"
	"time"

	"github.com/getsentry/sentry-go"
)

// @title						Movie Catalog
// @version					1.0
// @description				Movie catalog service backed by the tmdb feed.
// @contact.name				API Support
// @host						localhost:3000
// @BasePath					/
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
// @description				Type "Bearer" followed by a space and JWT token.
// @Accept						json
// @Produce					json
func main() {
	configs.LoadEnvVariables()

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              configs.GetConfigs().SentryDns,
		Release:          configs.GetConfigs().SentryRelease,
		TracesSampleRate: 1,
		EnableTracing:    true,
		AttachStacktrace: true,
	})
	if err != nil {
		log.Fatalf("sentry.Init: %s", err)
	}
	// Flush buffered events before the program terminates.
	defer sentry.Flush(2 * time.Second)

	redisClient := redis.NewClient()

	mongoDB, err := mongodb.NewDatabase()
	if err != nil {
		log.Fatalf("could not initialize mongodb database connection: %s", err)
	}
	defer mongoDB.Close()

	movieRepo := repository.NewMovieRepository(mongoDB.GetDB())
	userRepo := repository.NewUserRepository(mongoDB.GetDB())

	cacheTtl := time.Duration(configs.GetConfigs().MovieCacheTtlSec) * time.Second
	movieCache := service.NewMovieCache(redisClient, cacheTtl)
	tmdbClient := service.NewTmdbClient(configs.GetConfigs().TmdbBaseUrl, configs.GetConfigs().TmdbApiKey)

	movieSvc := service.NewMovieService(movieRepo, movieCache)
	syncSvc := service.NewSyncService(movieRepo, tmdbClient)
	userSvc := service.NewUserService(userRepo, movieSvc)

	movieHandler := handler.NewMovieHandler(movieSvc)
	syncHandler := handler.NewSyncHandler(syncSvc)
	userHandler := handler.NewUserHandler(userSvc)

	api.InitRouter(movieHandler, syncHandler, userHandler)
	if err := api.Start("0.0.0.0:" + configs.GetConfigs().Port); err != nil {
		log.Fatalf("could not start server: %s", err)
	}
}
