package routes

import (
	"context"
	"errors"
	"log"
	"net/http"

	_ "fenceworks/docs"
	"fenceworks/internal/adapter/http/handlers"
	"fenceworks/internal/adapter/http/middleware"
	"fenceworks/internal/adapter/persistence/repository"
	"fenceworks/internal/domain/entities"
	"fenceworks/internal/infrastructure/config"
	"fenceworks/internal/infrastructure/database"
	"fenceworks/internal/infrastructure/events"
	"fenceworks/internal/infrastructure/identity"
	"fenceworks/internal/infrastructure/reports"
	"fenceworks/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers bundles every HTTP handler the router mounts.
type Handlers struct {
	Quotes   *handlers.QuoteHandler
	Estimate *handlers.EstimateHandler
	Products *handlers.ProductHandler
	Projects *handlers.ProjectHandler
	Auth     *handlers.AuthHandler
	Accounts *handlers.AccountHandler
	Reports  *handlers.ReportHandler
}

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	h, auth := buildHandlers(cfg)
	seedAdmin(context.Background(), cfg, auth)
	router := NewRouter(cfg, auth, h)

	log.Printf("[http][routes] listening port=%s env=%s", cfg.Port, cfg.Env)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

// adminCreator is the slice of the auth use case the admin seed needs.
type adminCreator interface {
	CreateUser(ctx context.Context, cmd usecase.SignUpCommand) (entities.UserProfile, error)
}

// seedAdmin creates the configured Admin account. An existing account with
// that email is left as it is.
func seedAdmin(ctx context.Context, cfg *config.Config, auth adminCreator) bool {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return false
	}
	_, err := auth.CreateUser(ctx, usecase.SignUpCommand{
		Email:    cfg.AdminEmail,
		Password: cfg.AdminPassword,
		Name:     "Administrator",
		Role:     string(entities.RoleAdmin),
	})
	var authErr *usecase.AuthError
	switch {
	case err == nil:
		log.Printf("[http][routes] admin account seeded email=%s", cfg.AdminEmail)
		return true
	case errors.As(err, &authErr) && authErr.Code == usecase.AuthEmailAlreadyInUse:
		return false
	default:
		log.Printf("[http][routes] admin seed failed email=%s err=%v", cfg.AdminEmail, err)
		return false
	}
}

func buildHandlers(cfg *config.Config) (Handlers, *usecase.AuthUseCase) {
	ddb := database.ConnectDynamoDB(cfg.Store)

	quoteRepo := repository.NewQuoteDynamoRepository(ddb)
	productRepo := repository.NewProductDynamoRepository(ddb)
	projectRepo := repository.NewProjectDynamoRepository(ddb)
	userRepo := repository.NewUserDynamoRepository(ddb)
	settingsRepo := repository.NewSettingsDynamoRepository(ddb)
	credentialRepo := repository.NewCredentialDynamoRepository(ddb)

	hub := events.NewHub()
	provider := identity.NewCredentialProvider(credentialRepo)
	issuer := identity.NewJWTIssuer(cfg.JWTSecret, cfg.SessionTTL)

	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, productRepo, hub)
	productUseCase := usecase.NewProductUseCase(productRepo, hub)
	projectUseCase := usecase.NewProjectUseCase(projectRepo, quoteRepo, hub)
	authUseCase := usecase.NewAuthUseCase(provider, userRepo, issuer)
	userUseCase := usecase.NewUserUseCase(userRepo)
	settingsUseCase := usecase.NewSettingsUseCase(settingsRepo)
	reportUseCase := usecase.NewReportUseCase(quoteRepo, projectRepo, productRepo, reports.NewXLSXExporter())

	return Handlers{
		Quotes:   handlers.NewQuoteHandler(quoteUseCase),
		Estimate: handlers.NewEstimateHandler(productUseCase),
		Products: handlers.NewProductHandler(productUseCase),
		Projects: handlers.NewProjectHandler(projectUseCase),
		Auth:     handlers.NewAuthHandler(authUseCase),
		Accounts: handlers.NewAccountHandler(userUseCase, settingsUseCase),
		Reports:  handlers.NewReportHandler(reportUseCase),
	}, authUseCase
}

// NewRouter mounts every route on a fresh engine.
func NewRouter(cfg *config.Config, sessions middleware.SessionParser, h Handlers) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, cfg, sessions)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPublicRoutes(v1, h)
	addCustomerRoutes(v1, h)
	addAdminRoutes(v1, h)
	return router
}

func setMiddlewares(router *gin.Engine, cfg *config.Config, sessions middleware.SessionParser) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	router.Use(middleware.Sessions(cfg.SessionSecret, cfg.SessionTTL, !cfg.IsDev()))
	router.Use(middleware.Authenticate(sessions))
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}
