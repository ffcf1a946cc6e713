package router

import (
	"context"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"

	"github.com/Alijeyrad/dental_backend/config"
	"github.com/Alijeyrad/dental_backend/internal/api/http/handler"
	"github.com/Alijeyrad/dental_backend/internal/repo"
	"github.com/Alijeyrad/dental_backend/internal/service/appointment"
	"github.com/Alijeyrad/dental_backend/internal/service/catalog"
	"github.com/Alijeyrad/dental_backend/internal/service/client"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

const readinessTimeout = 2 * time.Second

type Params struct {
	fx.In

	Cfg            *config.Config
	Store          repo.Store
	AppointmentSvc appointment.Service
	ClientSvc      client.Service
	CatalogSvc     catalog.Service
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

// Register mounts every route at the root, where the web client expects
// them.
func (r *Router) Register(app *fiber.App) {
	r.registerSystemRoutes(app)

	appointmentH := handler.NewAppointmentHandler(r.p.AppointmentSvc)
	clientH := handler.NewClientHandler(r.p.ClientSvc)
	serviceH := handler.NewServiceHandler(r.p.CatalogSvc)

	r.registerAppointmentRoutes(app, appointmentH)
	r.registerClientRoutes(app, clientH)
	r.registerServiceRoutes(app, serviceH)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New(healthcheck.Config{
		Probe: func(c fiber.Ctx) bool {
			ctx, cancel := context.WithTimeout(c.Context(), readinessTimeout)
			defer cancel()
			if err := r.p.Store.Ping(ctx); err != nil {
				slog.WarnContext(ctx, "readiness probe failed", "error", err)
				return false
			}
			return true
		},
	}))
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}
