package api

import (
	"context"
	"errors"
	"fmt"
	"movie_catalog/api/middleware"
	"movie_catalog/configs"
	_ "movie_catalog/docs"
	"movie_catalog/internal/handler"
	"movie_catalog/pkg/response"
	"slices"
	"strings"
	"time"

	"github.com/gofiber/contrib/fibersentry"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
)

var router *fiber.App

func InitRouter(movieHandler *handler.MovieHandler, syncHandler *handler.SyncHandler, userHandler *handler.UserHandler) {
	var defaultErrorHandler = func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		var e *fiber.Error
		if errors.As(err, &e) {
			code = e.Code
		}

		c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)

		if !strings.Contains(err.Error(), "/favicon.ico") && code >= 500 {
			fmt.Println(err.Error())
		}

		return response.ResponseError(c, "Internal Error", code)
	}

	router = fiber.New(fiber.Config{
		UnescapePath: true,
		ErrorHandler: defaultErrorHandler,
	})

	router.Use(helmet.New())
	router.Use(cors.New(cors.Config{
		AllowOriginsFunc: func(origin string) bool {
			return middleware.LocalhostRegex.MatchString(origin) ||
				slices.Index(configs.GetConfigs().CorsAllowedOrigins, origin) != -1
		},
		AllowCredentials: true,
	}))
	router.Use(timeoutMiddleware(time.Second * 10))
	router.Use(recover.New())
	router.Use(compress.New())

	router.Use(fibersentry.New(fibersentry.Config{
		Repanic:         true,
		WaitForDelivery: false,
	}))

	userRoutes := router.Group("v1/users")
	{
		userRoutes.Post("/register", userHandler.Register)
		userRoutes.Post("/login", userHandler.Login)
		userRoutes.Get("/profile", middleware.AuthMiddleware, userHandler.GetProfile)
		userRoutes.Put("/:movieId/watch-list", middleware.AuthMiddleware, userHandler.AddToWatchList)
	}

	tmdbRoutes := router.Group("v1/tmdb")
	{
		tmdbRoutes.Post("/movies", movieHandler.CreateMovie)
		tmdbRoutes.Get("/movies", middleware.AuthMiddleware, movieHandler.ListMovies)
		tmdbRoutes.Get("/movies/:id", middleware.AuthMiddleware, movieHandler.GetMovie)
		tmdbRoutes.Patch("/movies/:id", middleware.AuthMiddleware, movieHandler.UpdateMovie)
		tmdbRoutes.Delete("/movies/:id", middleware.AuthMiddleware, movieHandler.DeleteMovie)
		tmdbRoutes.Patch("/movies/:id/rate", middleware.AuthMiddleware, movieHandler.RateMovie)
		tmdbRoutes.Put("/sync", middleware.AuthMiddleware, syncHandler.SyncMovies)
		tmdbRoutes.Get("/genres", middleware.AuthMiddleware, syncHandler.FetchGenres)
	}

	router.Get("/", HealthCheck)
	router.Get("/metrics", monitor.New())

	router.Get("/swagger/*", swagger.HandlerDefault)
}

func Start(addr string) error {
	return router.Listen(addr)
}

func timeoutMiddleware(timeout time.Duration) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), timeout)

		defer func() {
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				c.SendStatus(fiber.StatusGatewayTimeout)
			}
			cancel()
		}()

		return c.Next()
	}
}

// HealthCheck godoc
//
//	@Summary		Show the status of server.
//	@Description	get the status of server.
//	@Tags			System
//	@Success		200	{object}	map[string]interface{}
//	@Router			/ [get]
func HealthCheck(c *fiber.Ctx) error {
	res := map[string]interface{}{
		"data": "Server is up and running",
	}

	if err := c.JSON(res); err != nil {
		return err
	}

	return nil
}
