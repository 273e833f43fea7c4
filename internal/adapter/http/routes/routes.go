package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	_ "temporada_ferias/docs" // swagger spec
	"temporada_ferias/internal/adapter/http/handlers"
	"temporada_ferias/internal/adapter/http/middleware"
	"temporada_ferias/internal/adapter/persistence/repository"
	"temporada_ferias/internal/config"
	"temporada_ferias/internal/domain/pix"
	"temporada_ferias/internal/infrastructure/auth"
	"temporada_ferias/internal/infrastructure/cache"
	"temporada_ferias/internal/infrastructure/database"
	"temporada_ferias/internal/infrastructure/logger"
	"temporada_ferias/internal/infrastructure/notification"
	"temporada_ferias/internal/infrastructure/sheets"
	"temporada_ferias/internal/usecase"
	"temporada_ferias/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
	"go.uber.org/zap"
)

// Dependencies is everything the router needs, already built.
type Dependencies struct {
	Logger         *zap.Logger
	Registrations  *handlers.RegistrationHandler
	Ledger         *handlers.LedgerHandler
	Questions      *handlers.QuestionHandler
	Activity       *handlers.ActivityHandler
	Auth           *handlers.AuthHandler
	Tokens         middleware.TokenParser
	Limiter        *limiter.Limiter
	AllowedOrigins []string
	TrustedProxies []string
}

// Run wires the stores, integrations and use cases from cfg and serves until
// the server fails.
func Run(ctx context.Context, cfg config.Config, log *zap.Logger) error {
	deps, err := Build(ctx, cfg, log)
	if err != nil {
		return err
	}
	router := NewRouter(deps)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	log.Info("[http] listening", zap.String("addr", srv.Addr), zap.String("storage", cfg.StorageDriver))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to startup the application: %w", err)
	}
	return nil
}

// Build creates the dependency graph. Email, spreadsheet and redis are
// optional: when one is not configured the service runs without it.
func Build(ctx context.Context, cfg config.Config, log *zap.Logger) (Dependencies, error) {
	registrationRepo, questionRepo, err := buildStores(ctx, cfg)
	if err != nil {
		return Dependencies{}, err
	}

	var notifier interfaces.INotifier
	mailer, err := notification.NewResendMailer(notification.Options{
		APIKey:   cfg.ResendAPIKey,
		BaseURL:  cfg.ResendBaseURL,
		From:     cfg.EmailFrom,
		MockMode: cfg.EmailMock,
	})
	if err != nil {
		log.Warn("[notification] email disabled", zap.Error(err))
	} else {
		notifier = mailer
	}

	var sheet interfaces.IRegistrationSheet
	sheetClient, err := sheets.NewClient(sheets.Options{
		ServiceAccountEmail: cfg.SheetsServiceAccountEmail,
		PrivateKeyPEM:       cfg.SheetsPrivateKey,
		SpreadsheetID:       cfg.SheetsDocumentID,
		TabName:             cfg.SheetsTabName,
		BaseURL:             cfg.SheetsBaseURL,
		TokenURL:            cfg.SheetsTokenURL,
	})
	if err != nil {
		log.Warn("[sheets] spreadsheet mirror disabled", zap.Error(err))
	} else {
		sheet = sheetClient
	}

	tokens, err := auth.NewTokenManager(cfg.TokenSecret, cfg.TokenTTL)
	if err != nil {
		return Dependencies{}, err
	}
	if len(cfg.AdminAccounts) == 0 {
		log.Warn("[auth] no admin accounts configured, admin area is unreachable")
	}

	rateLimiter, err := buildLimiter(ctx, cfg, log)
	if err != nil {
		return Dependencies{}, err
	}

	merchant := pix.Merchant{Key: cfg.PixKey, Name: cfg.MerchantName, City: cfg.MerchantCity}
	registrationUseCase := usecase.NewRegistrationUseCase(registrationRepo, notifier, sheet, merchant)
	ledgerUseCase := usecase.NewPaymentLedgerUseCase(registrationRepo, notifier, sheet)
	questionUseCase := usecase.NewQuestionUseCase(questionRepo, notifier)
	activityUseCase := usecase.NewActivityUseCase(registrationRepo, questionRepo)
	authUseCase := usecase.NewAuthUseCase(cfg.AdminAccounts, tokens)

	return Dependencies{
		Logger:         log,
		Registrations:  handlers.NewRegistrationHandler(registrationUseCase),
		Ledger:         handlers.NewLedgerHandler(ledgerUseCase),
		Questions:      handlers.NewQuestionHandler(questionUseCase),
		Activity:       handlers.NewActivityHandler(activityUseCase),
		Auth:           handlers.NewAuthHandler(authUseCase),
		Tokens:         tokens,
		Limiter:        rateLimiter,
		AllowedOrigins: cfg.AllowedOrigins,
		TrustedProxies: cfg.TrustedProxies,
	}, nil
}

func buildStores(ctx context.Context, cfg config.Config) (interfaces.IRegistrationRepository, interfaces.IQuestionRepository, error) {
	switch cfg.StorageDriver {
	case "", "dynamodb":
		ddb, err := database.NewDynamoDBClient(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewRegistrationDynamoRepository(ddb, cfg.RegistrationsTable),
			repository.NewQuestionDynamoRepository(ddb, cfg.QuestionsTable), nil
	case "postgres", "sqlite":
		db, err := database.OpenSQL(cfg.StorageDriver, cfg.DatabaseDSN)
		if err != nil {
			return nil, nil, err
		}
		if err := repository.AutoMigrate(db); err != nil {
			return nil, nil, fmt.Errorf("migrate %s: %w", cfg.StorageDriver, err)
		}
		return repository.NewRegistrationGormRepository(db), repository.NewQuestionGormRepository(db), nil
	default:
		return nil, nil, fmt.Errorf("unknown STORAGE_DRIVER %q", cfg.StorageDriver)
	}
}

func buildLimiter(ctx context.Context, cfg config.Config, log *zap.Logger) (*limiter.Limiter, error) {
	if cfg.RedisAddr == "" {
		return middleware.NewLimiter(cfg.RateLimit, nil)
	}
	client, err := cache.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		log.Warn("[cache][redis] unavailable, rate limiting in memory", zap.Error(err))
		return middleware.NewLimiter(cfg.RateLimit, nil)
	}
	return middleware.NewLimiter(cfg.RateLimit, client)
}

// NewRouter builds the gin engine with the public and admin route groups.
func NewRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	// ClientIP feeds the rate limiter, so forwarded headers are only honoured
	// from configured proxies.
	if err := router.SetTrustedProxies(deps.TrustedProxies); err != nil {
		deps.Logger.Warn("[http][router] invalid trusted proxies, using peer address", zap.Strings("trusted_proxies", deps.TrustedProxies), zap.Error(err))
		_ = router.SetTrustedProxies(nil)
	}
	router.Use(logger.GinLogger(deps.Logger))
	router.Use(logger.GinRecovery(deps.Logger))
	router.Use(middleware.CORS(deps.AllowedOrigins))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPublicRoutes(v1, deps)
	addAdminRoutes(v1, deps)
	return router
}
