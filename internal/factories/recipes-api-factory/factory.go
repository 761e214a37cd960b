package recipes_api_factory

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	healthController "github.com/gmaschi/go-recipes-api/internal/controllers/health"
	ingredientController "github.com/gmaschi/go-recipes-api/internal/controllers/ingredient"
	authMiddleware "github.com/gmaschi/go-recipes-api/internal/controllers/middlewares/auth"
	loggingMiddleware "github.com/gmaschi/go-recipes-api/internal/controllers/middlewares/logging"
	metricsMiddleware "github.com/gmaschi/go-recipes-api/internal/controllers/middlewares/metrics"
	rateLimitMiddleware "github.com/gmaschi/go-recipes-api/internal/controllers/middlewares/ratelimit"
	recipeController "github.com/gmaschi/go-recipes-api/internal/controllers/recipe"
	tagController "github.com/gmaschi/go-recipes-api/internal/controllers/tag"
	userController "github.com/gmaschi/go-recipes-api/internal/controllers/user"
	db "github.com/gmaschi/go-recipes-api/internal/services/datastore/postgresql/recipes/sqlc"
	"github.com/gmaschi/go-recipes-api/internal/services/imagestore"
	"github.com/gmaschi/go-recipes-api/pkg/auth/tokenAuth"
	jwtToken "github.com/gmaschi/go-recipes-api/pkg/auth/tokenAuth/jwt"
	pasetoToken "github.com/gmaschi/go-recipes-api/pkg/auth/tokenAuth/paseto"
	"github.com/gmaschi/go-recipes-api/pkg/config/env"
	"github.com/rs/cors"
	"golang.org/x/sync/errgroup"
)

type (
	Factory struct {
		config         env.Config
		store          db.Store
		images         imagestore.Storer
		recipesHandler recipesHandler
		TokenAuth      tokenAuth.Maker
		Router         *gin.Engine
	}

	recipesHandler struct {
		healthController     *healthController.Controller
		userController       *userController.Controller
		recipeController     *recipeController.Controller
		tagController        *tagController.Controller
		ingredientController *ingredientController.Controller
	}
)

// New wires the controllers, middlewares and routes of the API
func New(config env.Config, store db.Store) (*Factory, error) {
	tokenMaker, err := newTokenMaker(config)
	if err != nil {
		return nil, fmt.Errorf("cannot create token maker: %w", err)
	}

	images, err := imagestore.New(context.Background(), config.Media, config.S3)
	if err != nil {
		return nil, fmt.Errorf("cannot create image store: %w", err)
	}

	factory := &Factory{
		config:    config,
		store:     store,
		images:    images,
		TokenAuth: tokenMaker,
		recipesHandler: recipesHandler{
			healthController:     healthController.New(),
			userController:       userController.New(store, tokenMaker, config.TokenDuration),
			recipeController:     recipeController.New(store, images, config.Media.MaxUploadSize),
			tagController:        tagController.New(store),
			ingredientController: ingredientController.New(store),
		},
	}

	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(
		loggingMiddleware.RequestID(),
		loggingMiddleware.Logger(slog.Default()),
		metricsMiddleware.Metrics(),
		gin.CustomRecovery(recoverPanic),
	)

	factory.setupRoutes(router)

	factory.Router = router
	return factory, nil
}

func newTokenMaker(config env.Config) (tokenAuth.Maker, error) {
	switch config.TokenType {
	case env.TokenTypeJWT:
		return jwtToken.NewJWTMaker(config.TokenSymmetricKey)
	case env.TokenTypePaseto, "":
		return pasetoToken.NewPasetoMaker(config.TokenSymmetricKey)
	default:
		return nil, fmt.Errorf("unsupported token type %q", config.TokenType)
	}
}

func (f *Factory) setupRoutes(router *gin.Engine) {
	auth := authMiddleware.AuthMiddleware(f.TokenAuth)

	router.GET("/health", f.recipesHandler.healthController.Check)
	router.GET("/metrics", metricsMiddleware.Handler())

	if local, ok := f.images.(*imagestore.LocalFileStorer); ok {
		router.Static(local.URLPrefix(), local.BasePath())
	}

	users := router.Group("/user")
	{
		users.POST("/create", f.recipesHandler.userController.Create)

		tokenHandlers := []gin.HandlerFunc{f.recipesHandler.userController.Token}
		if f.config.RateLimit.Rate > 0 {
			limiter := rateLimitMiddleware.NewRateLimiter(f.config.RateLimit.Rate, f.config.RateLimit.Burst)
			tokenHandlers = append([]gin.HandlerFunc{limiter.Limit()}, tokenHandlers...)
		}
		users.POST("/token", tokenHandlers...)

		me := users.Group("/me", auth)
		me.GET("", f.recipesHandler.userController.Me)
		me.PATCH("", f.recipesHandler.userController.UpdateMe)
		me.PUT("", f.recipesHandler.userController.ReplaceMe)
	}

	recipe := router.Group("/recipe", auth)
	{
		recipe.GET("/recipes", f.recipesHandler.recipeController.List)
		recipe.POST("/recipes", f.recipesHandler.recipeController.Create)
		recipe.GET("/recipes/:id", f.recipesHandler.recipeController.Recipe)
		recipe.PATCH("/recipes/:id", f.recipesHandler.recipeController.Update)
		recipe.PUT("/recipes/:id", f.recipesHandler.recipeController.Replace)
		recipe.DELETE("/recipes/:id", f.recipesHandler.recipeController.Delete)
		recipe.POST("/recipes/:id/upload-image", f.recipesHandler.recipeController.UploadImage)

		recipe.GET("/tags", f.recipesHandler.tagController.List)
		recipe.POST("/tags", f.recipesHandler.tagController.Create)
		recipe.GET("/tags/:id", f.recipesHandler.tagController.Tag)
		recipe.PATCH("/tags/:id", f.recipesHandler.tagController.Update)
		recipe.PUT("/tags/:id", f.recipesHandler.tagController.Replace)
		recipe.DELETE("/tags/:id", f.recipesHandler.tagController.Delete)

		recipe.GET("/ingredients", f.recipesHandler.ingredientController.List)
		recipe.POST("/ingredients", f.recipesHandler.ingredientController.Create)
		recipe.GET("/ingredients/:id", f.recipesHandler.ingredientController.Ingredient)
		recipe.PATCH("/ingredients/:id", f.recipesHandler.ingredientController.Update)
		recipe.PUT("/ingredients/:id", f.recipesHandler.ingredientController.Replace)
		recipe.DELETE("/ingredients/:id", f.recipesHandler.ingredientController.Delete)
	}
}

func recoverPanic(ctx *gin.Context, recovered any) {
	slog.ErrorContext(ctx, "panic recovered",
		slog.Any("error", recovered),
		slog.String("requestID", ctx.GetString(loggingMiddleware.RequestIDKey)),
		slog.String("path", ctx.Request.URL.Path),
		slog.String("method", ctx.Request.Method),
	)
	ctx.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

// Handler is the router wrapped with the configured CORS policy
func (f *Factory) Handler() http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins:   f.config.CORS.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type", loggingMiddleware.RequestIDHeaderKey},
		ExposedHeaders:   []string{loggingMiddleware.RequestIDHeaderKey},
		AllowCredentials: false,
	}).Handler(f.Router)
}

// Start serves HTTP on address until ctx is cancelled, then shuts down gracefully
func (f *Factory) Start(ctx context.Context, address string) error {
	server := &http.Server{
		Addr:              address,
		Handler:           f.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("server listening", slog.String("address", address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), f.config.ShutdownTimeout)
		defer cancel()

		slog.Info("shutting down server")
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
