package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bokpharm/bokpharm-backend/api/controllers"
	"github.com/bokpharm/bokpharm-backend/api/middleware"
	"github.com/bokpharm/bokpharm-backend/internal/catalog"
	"github.com/bokpharm/bokpharm-backend/internal/inventory"
	"github.com/bokpharm/bokpharm-backend/internal/onboarding"
	"github.com/bokpharm/bokpharm-backend/internal/pharmacies"
	"github.com/bokpharm/bokpharm-backend/internal/users"
	"github.com/bokpharm/bokpharm-backend/pkg/config"
	"github.com/bokpharm/bokpharm-backend/pkg/db"
	"github.com/bokpharm/bokpharm-backend/pkg/enums"
	"github.com/bokpharm/bokpharm-backend/pkg/logger"
	"github.com/bokpharm/bokpharm-backend/pkg/metrics"
	"github.com/bokpharm/bokpharm-backend/pkg/redis"
)

// Deps bundles everything the router wires into handlers.
type Deps struct {
	Config      *config.Config
	Logger      *logger.Logger
	DB          db.Pinger
	Redis       *redis.Client
	Registry    *prometheus.Registry
	HTTPMetrics *metrics.HTTPMetrics
	Users       users.Service
	Onboarding  onboarding.Service
	Pharmacies  pharmacies.Service
	Catalog     catalog.Service
	Inventory   inventory.Service
}

func NewRouter(d Deps) http.Handler {
	cfg := d.Config
	logg := d.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(d.HTTPMetrics),
		middleware.CORS(cfg.CORS),
	)

	var cachePinger redis.Pinger
	if d.Redis != nil {
		cachePinger = d.Redis
	}
	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, d.DB, cachePinger))
	})

	if d.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(d.Registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api", func(r chi.Router) {
		// Catalog and pharmacy reads are public: the storefront renders
		// them before login.
		r.Get("/medications", controllers.MedicationList(d.Catalog, logg))
		r.Get("/medications/{medicationId}", controllers.MedicationDetail(d.Catalog, logg))
		r.Get("/pharmacies", controllers.PharmacyList(d.Pharmacies, logg))
		r.Get("/pharmacies/{pharmacyId}", controllers.PharmacyDetail(d.Pharmacies, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.Identity, logg))
			if d.Redis != nil {
				r.Use(middleware.WriteRateLimit(cfg.RateLimit, d.Redis, logg))
				r.Use(middleware.Idempotency(d.Redis, logg))
			}

			r.Route("/auth", func(r chi.Router) {
				r.Get("/user", controllers.AuthUser(d.Users, logg))
				r.Post("/setup-pharmacy", controllers.AuthSetupPharmacy(d.Onboarding, logg))
				r.Post("/assign-pharmacy", controllers.AuthAssignPharmacy(d.Onboarding, logg))
			})

			r.Post("/medications", controllers.MedicationCreate(d.Catalog, logg))
			r.Post("/pharmacies", controllers.PharmacyCreate(d.Pharmacies, logg))

			r.Route("/inventory", func(r chi.Router) {
				r.Get("/", controllers.InventoryList(d.Inventory, d.Onboarding, logg))
				r.Post("/", controllers.InventoryCreate(d.Inventory, d.Onboarding, logg))
				r.Delete("/{itemId}", controllers.InventoryDelete(d.Inventory, d.Onboarding, logg))
			})
		})
	})

	r.Route("/api/admin", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.Identity, logg))
		r.Use(middleware.RequireRole(string(enums.UserRoleAdmin), logg))
		r.Get("/pharmacies", controllers.AdminPharmacyList(d.Pharmacies, logg))
	})

	return r
}
