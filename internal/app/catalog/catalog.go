// Package catalog собирает приложение каталога: хранилище, кеш, шину событий,
// websocket-хаб, сервисы и HTTP-сервер с graceful shutdown.
package catalog

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/streadway/amqp"

	"github.com/magabrotheeeer/business-catalog/internal/cache"
	"github.com/magabrotheeeer/business-catalog/internal/config"
	"github.com/magabrotheeeer/business-catalog/internal/lib/cookies"
	"github.com/magabrotheeeer/business-catalog/internal/lib/jwt"
	"github.com/magabrotheeeer/business-catalog/internal/lib/sl"
	"github.com/magabrotheeeer/business-catalog/internal/media"
	"github.com/magabrotheeeer/business-catalog/internal/migrations"
	"github.com/magabrotheeeer/business-catalog/internal/rabbitmq"
	authservice "github.com/magabrotheeeer/business-catalog/internal/services/auth"
	businessservice "github.com/magabrotheeeer/business-catalog/internal/services/business"
	categoryservice "github.com/magabrotheeeer/business-catalog/internal/services/category"
	contactservice "github.com/magabrotheeeer/business-catalog/internal/services/contact"
	productservice "github.com/magabrotheeeer/business-catalog/internal/services/product"
	"github.com/magabrotheeeer/business-catalog/internal/storage/repository"
	"github.com/magabrotheeeer/business-catalog/internal/ws"
)

// App хранит собранные зависимости приложения каталога.
type App struct {
	server     *http.Server
	logger     *slog.Logger
	db         *repository.Storage
	cache      *cache.Cache
	hub        *ws.Hub
	rabbitConn *amqp.Connection
}

// New инициализирует зависимости приложения: базу данных с миграциями, redis,
// rabbitmq (опционально), websocket-хаб, сервисы и маршруты HTTP-сервера.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	// Шина событий опциональна: без rabbit_url сервис работает,
	// события просто не публикуются.
	var rabbitConn *amqp.Connection
	var publisher *rabbitmq.Publisher
	if cfg.RabbitURL != "" {
		rabbitConn, err = rabbitmq.Connect(cfg.RabbitURL, 5, 2*time.Second)
		if err != nil {
			return nil, err
		}
		ch, err := rabbitmq.SetupChannel(rabbitConn)
		if err != nil {
			return nil, err
		}
		publisher = rabbitmq.NewPublisher(ch)
	} else {
		logger.Warn("rabbit_url is empty, event publishing is disabled")
	}

	hub := ws.NewHub(logger)

	jwtMaker := jwt.NewMaker(cfg.JWTSecretKey, cfg.AccessTTL, cfg.RefreshTTL)
	cookieOpts := cookies.Options{
		AccessTTL:  cfg.AccessTTL,
		RefreshTTL: cfg.RefreshTTL,
		Secure:     cfg.IsProd(),
	}

	// Типизированный nil в интерфейсе прошел бы проверку publisher != nil
	// внутри сервисов, поэтому интерфейс заполняется только при живом publisher.
	var eventPublisher businessservice.EventPublisher
	if publisher != nil {
		eventPublisher = publisher
	}

	authService := authservice.NewAuthService(db, jwtMaker, hub, eventPublisher, logger)
	businessService := businessservice.NewBusinessService(db, cacheRedis, hub, eventPublisher, logger)
	productService := productservice.NewProductService(db, cacheRedis, hub, eventPublisher, logger)
	categoryService := categoryservice.NewCategoryService(db, cacheRedis, logger)
	contactService := contactservice.NewContactService(db, logger)
	mediaClient := media.NewClient(cfg.Media.APIURL, cfg.Media.APIKey, cfg.Media.APISecret)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, &Services{
		Auth:       authService,
		Business:   businessService,
		Product:    productService,
		Category:   categoryService,
		Contact:    contactService,
		Media:      mediaClient,
		Hub:        hub,
		DB:         db,
		CookieOpts: cookieOpts,
		Secure:     cfg.IsProd(),
	})

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server:     srv,
		logger:     logger,
		db:         db,
		cache:      cacheRedis,
		hub:        hub,
		rabbitConn: rabbitConn,
	}, nil
}

// Run запускает websocket-хаб и HTTP-сервер и блокируется до остановки
// сервера либо отмены контекста.
func (a *App) Run(ctx context.Context) error {
	go a.hub.Run(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		if cerr := a.db.DB.Close(); cerr != nil {
			a.logger.Error("failed to close database", sl.Err(cerr))
		}
		if a.rabbitConn != nil {
			if cerr := a.rabbitConn.Close(); cerr != nil {
				a.logger.Error("failed to close rabbitmq connection", sl.Err(cerr))
			}
		}
		return err
	}
}
