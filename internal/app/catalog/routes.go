package catalog

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/business-catalog/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/business-catalog/internal/http/handlers/auth/logout"
	"github.com/magabrotheeeer/business-catalog/internal/http/handlers/auth/refresh"
	"github.com/magabrotheeeer/business-catalog/internal/http/handlers/auth/register"
	"github.com/magabrotheeeer/business-catalog/internal/http/handlers/auth/verify"
	businesscreate "github.com/magabrotheeeer/business-catalog/internal/http/handlers/business/create"
	businesslist "github.com/magabrotheeeer/business-catalog/internal/http/handlers/business/list"
	businessread "github.com/magabrotheeeer/business-catalog/internal/http/handlers/business/read"
	businessremove "github.com/magabrotheeeer/business-catalog/internal/http/handlers/business/remove"
	businessupdate "github.com/magabrotheeeer/business-catalog/internal/http/handlers/business/update"
	categorycreate "github.com/magabrotheeeer/business-catalog/internal/http/handlers/category/create"
	categorylist "github.com/magabrotheeeer/business-catalog/internal/http/handlers/category/list"
	categoryremove "github.com/magabrotheeeer/business-catalog/internal/http/handlers/category/remove"
	contactcreate "github.com/magabrotheeeer/business-catalog/internal/http/handlers/contact/create"
	contactread "github.com/magabrotheeeer/business-catalog/internal/http/handlers/contact/read"
	contactupdate "github.com/magabrotheeeer/business-catalog/internal/http/handlers/contact/update"
	"github.com/magabrotheeeer/business-catalog/internal/http/handlers/health"
	mediaupload "github.com/magabrotheeeer/business-catalog/internal/http/handlers/media/upload"
	productcreate "github.com/magabrotheeeer/business-catalog/internal/http/handlers/product/create"
	productlist "github.com/magabrotheeeer/business-catalog/internal/http/handlers/product/list"
	productread "github.com/magabrotheeeer/business-catalog/internal/http/handlers/product/read"
	productremove "github.com/magabrotheeeer/business-catalog/internal/http/handlers/product/remove"
	productupdate "github.com/magabrotheeeer/business-catalog/internal/http/handlers/product/update"
	"github.com/magabrotheeeer/business-catalog/internal/http/middlewarectx"
	"github.com/magabrotheeeer/business-catalog/internal/lib/cookies"
	"github.com/magabrotheeeer/business-catalog/internal/media"
	"github.com/magabrotheeeer/business-catalog/internal/models"
	authservice "github.com/magabrotheeeer/business-catalog/internal/services/auth"
	businessservice "github.com/magabrotheeeer/business-catalog/internal/services/business"
	categoryservice "github.com/magabrotheeeer/business-catalog/internal/services/category"
	contactservice "github.com/magabrotheeeer/business-catalog/internal/services/contact"
	productservice "github.com/magabrotheeeer/business-catalog/internal/services/product"
	"github.com/magabrotheeeer/business-catalog/internal/storage/repository"
	"github.com/magabrotheeeer/business-catalog/internal/ws"
)

// Services собирает зависимости, необходимые для регистрации маршрутов.
type Services struct {
	Auth       *authservice.AuthService
	Business   *businessservice.BusinessService
	Product    *productservice.ProductService
	Category   *categoryservice.CategoryService
	Contact    *contactservice.ContactService
	Media      *media.Client
	Hub        *ws.Hub
	DB         *repository.Storage
	CookieOpts cookies.Options
	Secure     bool
}

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, s *Services) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
		middlewarectx.MetricsMiddleware,
	)

	r.Route("/api/v1", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/auth/register", register.New(logger, s.Auth, s.CookieOpts).ServeHTTP)
		r.Post("/auth/login", login.New(logger, s.Auth, s.CookieOpts).ServeHTTP)
		r.Post("/auth/logout", logout.New(logger, s.Secure).ServeHTTP)
		r.Post("/auth/refresh", refresh.New(logger, s.Auth, s.CookieOpts).ServeHTTP)

		r.Get("/business", businesslist.New(logger, s.Business).ServeHTTP)
		r.Get("/business/{id}", businessread.New(logger, s.Business).ServeHTTP)
		r.Get("/products", productlist.New(logger, s.Product).ServeHTTP)
		r.Get("/products/{id}", productread.New(logger, s.Product).ServeHTTP)
		r.Get("/categories", categorylist.New(logger, s.Category).ServeHTTP)
		r.Get("/contacts/business/{businessID}", contactread.New(logger, s.Contact).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.AuthMiddleware(s.Auth, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger, 10, 20))

			r.Get("/auth/verify", verify.New(logger).ServeHTTP)

			r.Post("/business", businesscreate.New(logger, s.Business).ServeHTTP)
			r.Put("/business/{id}", businessupdate.New(logger, s.Business).ServeHTTP)
			r.Delete("/business/{id}", businessremove.New(logger, s.Business).ServeHTTP)

			r.Post("/products", productcreate.New(logger, s.Product).ServeHTTP)
			r.Put("/products/{id}", productupdate.New(logger, s.Product).ServeHTTP)
			r.Delete("/products/{id}", productremove.New(logger, s.Product).ServeHTTP)

			r.Post("/contacts", contactcreate.New(logger, s.Contact).ServeHTTP)
			r.Put("/contacts", contactupdate.New(logger, s.Contact).ServeHTTP)

			r.Post("/media/upload", mediaupload.New(logger, s.Media).ServeHTTP)

			// Управление категориями доступно только администраторам
			r.Group(func(r chi.Router) {
				r.Use(middlewarectx.RequireRoles(logger, models.RoleAdmin, models.RoleSuperuser))
				r.Post("/categories", categorycreate.New(logger, s.Category).ServeHTTP)
				r.Delete("/categories/{id}", categoryremove.New(logger, s.Category).ServeHTTP)
			})
		})
	})

	r.Get("/ws", ws.ServeWS(s.Hub, logger))
	r.Get("/health", health.New(s.DB.DB).ServeHTTP)
	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
