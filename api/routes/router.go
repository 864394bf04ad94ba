package routes

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/carnamarket/backend/api/controllers"
	"github.com/carnamarket/backend/api/middleware"
	"github.com/carnamarket/backend/api/responses"
	authsvc "github.com/carnamarket/backend/internal/auth"
	"github.com/carnamarket/backend/internal/categories"
	"github.com/carnamarket/backend/internal/groups"
	messagesvc "github.com/carnamarket/backend/internal/messages"
	ordersvc "github.com/carnamarket/backend/internal/orders"
	productsvc "github.com/carnamarket/backend/internal/products"
	"github.com/carnamarket/backend/pkg/config"
	pkgerrors "github.com/carnamarket/backend/pkg/errors"
	"github.com/carnamarket/backend/pkg/logger"
	"github.com/carnamarket/backend/pkg/metrics"
	"github.com/carnamarket/backend/pkg/redis"
)

// Dependencies bundles everything the router needs.
type Dependencies struct {
	Config *config.Config
	Logger *logger.Logger

	Redis       *redis.Client
	HTTPMetrics *metrics.HTTPMetrics
	MetricsReg  *prometheus.Registry

	AuthService     authsvc.Service
	RegisterService authsvc.RegisterService
	ProductService  productsvc.Service
	OrderService    ordersvc.Service
	MessageService  messagesvc.Service
	GroupsRepo      *groups.Repository
	CategoriesRepo  *categories.Repository
}

// NewRouter assembles the full HTTP surface.
func NewRouter(deps Dependencies) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.SecureHeaders(),
		chimiddleware.Compress(5),
	)
	if deps.Redis != nil {
		r.Use(middleware.RateLimit(cfg.RateLimit, deps.Redis, logg))
	}
	r.Use(
		middleware.CORS(cfg.CORS),
		middleware.Metrics(deps.HTTPMetrics),
	)

	requireAuth := middleware.Auth(cfg.JWT, logg)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", controllers.Health())

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", controllers.Register(deps.RegisterService, logg))
			r.Post("/login", controllers.Login(deps.AuthService, logg))
			r.With(requireAuth).Get("/me", controllers.Me(deps.AuthService, logg))
		})

		r.Route("/carnival-groups", func(r chi.Router) {
			r.Get("/", controllers.ListCarnivalGroups(deps.GroupsRepo, logg))
			r.Get("/{id}", controllers.GetCarnivalGroup(deps.GroupsRepo, logg))
		})

		r.Get("/categories", controllers.ListCategories(deps.CategoriesRepo, logg))

		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ListProducts(deps.ProductService, logg))
			r.Get("/{id}", controllers.GetProduct(deps.ProductService, logg))
			r.With(requireAuth).Post("/", controllers.CreateProduct(deps.ProductService, logg))
		})

		r.Route("/orders", func(r chi.Router) {
			r.Use(requireAuth)
			r.Post("/", controllers.CreateOrder(deps.OrderService, logg))
			r.Get("/", controllers.ListOrders(deps.OrderService, logg))
			r.Get("/{id}", controllers.GetOrder(deps.OrderService, logg))
		})

		r.Route("/messages", func(r chi.Router) {
			r.Use(requireAuth)
			r.Post("/", controllers.SendMessage(deps.MessageService, logg))
			r.Get("/unread-count", controllers.UnreadCount(deps.MessageService, logg))
			r.Get("/{userId}", controllers.GetConversation(deps.MessageService, logg))
		})
	})

	if deps.MetricsReg != nil {
		r.Method("GET", "/metrics", promhttp.HandlerFor(deps.MetricsReg, promhttp.HandlerOpts{}))
	}

	if dir := cfg.Uploads.Dir; dir != "" {
		abs, err := filepath.Abs(dir)
		if err == nil {
			if _, statErr := os.Stat(abs); statErr == nil {
				r.Handle(cfg.Uploads.Path+"/*", http.StripPrefix(cfg.Uploads.Path+"/", http.FileServer(http.Dir(abs))))
			}
		}
	}

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		responses.WriteError(req.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "Route not found"))
	})

	return r
}
