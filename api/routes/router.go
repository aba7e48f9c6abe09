package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/famoussince/storefront/api/controllers"
	"github.com/famoussince/storefront/api/middleware"
	"github.com/famoussince/storefront/internal/storefront"
	"github.com/famoussince/storefront/pkg/config"
	"github.com/famoussince/storefront/pkg/logger"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	store controllers.Pinger,
	gatherer prometheus.Gatherer,
	svc storefront.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, store))
	})

	if gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.CORS(cfg.App.CORSOrigins, cfg.Session.Header))

		r.Get("/products", controllers.ProductList(svc, logg))
		r.Get("/products/{productId}", controllers.ProductDetail(svc, logg))
		r.Get("/hero", controllers.Hero(svc, logg))
		r.Get("/notices", controllers.Notices(svc, logg))
		r.Post("/subscribers", controllers.Subscribe(svc, logg))

		r.Route("/cart", func(r chi.Router) {
			r.Use(middleware.Session(cfg.Session, logg))
			r.Get("/", controllers.CartFetch(svc, logg))
			r.Post("/items", controllers.CartAddItem(svc, logg))
			r.Put("/items/{index}", controllers.CartSetQuantity(svc, logg))
			r.Patch("/items/{index}", controllers.CartAdjustQuantity(svc, logg))
			r.Delete("/items/{index}", controllers.CartRemoveItem(svc, logg))
			r.Post("/checkout", controllers.CartCheckout(svc, logg))
		})
	})

	return r
}
