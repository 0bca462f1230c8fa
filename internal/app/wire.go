//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	"foxboard/internal/gateway/analytics"
	"foxboard/internal/gateway/identity"
	"foxboard/internal/handlers/rest/companies_get"
	"foxboard/internal/handlers/rest/company_metrics_get"
	"foxboard/internal/handlers/rest/dashboard_metrics_get"
	"foxboard/internal/handlers/rest/database_delete"
	"foxboard/internal/handlers/rest/driver_stats_get"
	"foxboard/internal/handlers/rest/drivers_get"
	"foxboard/internal/handlers/rest/locations_get"
	"foxboard/internal/handlers/rest/records_get"
	"foxboard/internal/handlers/rest/status_get"
	"foxboard/internal/handlers/rest/temporal_get"
	"foxboard/internal/handlers/rest/upload_post"
	"foxboard/internal/handlers/tasks/status_poll"
	"foxboard/internal/pkg/config"
	"foxboard/internal/pkg/tokenstore"
	dashboardService "foxboard/internal/service/dashboard"
	ingestService "foxboard/internal/service/ingest"
	"foxboard/internal/service/query"
	"foxboard/internal/service/session"
	"foxboard/pkg/background"
	"foxboard/pkg/logger"

	"github.com/google/wire"
)

type (
	PollInterval time.Duration
)

type Application struct {
	ServiceDashboard  ServiceDashboard
	ServiceIngest     ServiceIngest
	Sessions          *session.Manager
	BackgroundWorkers *background.Worker
}

type ServiceDashboard interface {
	status_get.Service
	records_get.Service
	dashboard_metrics_get.Service
	companies_get.Service
	drivers_get.Service
	locations_get.Service
	temporal_get.Service
	company_metrics_get.Service
	driver_stats_get.Service
}

type ServiceIngest interface {
	upload_post.Service
	database_delete.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	tokens *tokenstore.Store,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideAnalyticsGateway,
		provideQueryStore,
		provideIdentityClient,
		provideSessionManager,
		provideDashboard,
		provideIngest,
		providePollInterval,

		provideStatusPollTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceDashboard), new(*dashboardService.Dashboard)),
		wire.Bind(new(ServiceIngest), new(*ingestService.Ingest)),

		wire.Bind(new(dashboardService.Gateway), new(*analytics.Gateway)),
		wire.Bind(new(dashboardService.Cache), new(*query.Store)),
		wire.Bind(new(ingestService.Gateway), new(*analytics.Gateway)),
		wire.Bind(new(ingestService.Invalidator), new(*query.Store)),

		wire.Bind(new(session.Identity), new(*identity.Client)),
		wire.Bind(new(session.TokenStore), new(*tokenstore.Store)),

		wire.Bind(new(status_poll.Service), new(*dashboardService.Dashboard)),
	)
	return &Application{}, nil
}

func provideAnalyticsGateway(log logger.Logger, cfg *config.Config) *analytics.Gateway {
	return analytics.New(log, analytics.Config{
		BaseURL: cfg.Analytics.BaseURL,
		Timeout: cfg.Analytics.Timeout,
	})
}

func provideQueryStore(log logger.Logger) *query.Store {
	return query.New(log)
}

func provideIdentityClient(log logger.Logger, cfg *config.Config) *identity.Client {
	return identity.New(log, identity.Config{
		BaseURL:    cfg.Identity.BaseURL,
		AnonKey:    cfg.Identity.AnonKey,
		ServiceKey: cfg.Identity.ServiceKey,
		Timeout:    cfg.Identity.Timeout,
	})
}

func provideSessionManager(
	log logger.Logger,
	idp session.Identity,
	tokens session.TokenStore,
	cfg *config.Config,
) *session.Manager {
	return session.New(log, idp, tokens, session.Config{
		InitTimeout:    cfg.Session.InitTimeout,
		InitAttempts:   cfg.Session.InitAttempts,
		InitDelay:      cfg.Session.InitDelay,
		ProfileTimeout: cfg.Session.ProfileTimeout,
		TriggerWait:    cfg.Session.TriggerWait,
	})
}

func provideDashboard(
	gateway dashboardService.Gateway,
	cache dashboardService.Cache,
) *dashboardService.Dashboard {
	return dashboardService.New(gateway, cache)
}

func provideIngest(
	log logger.Logger,
	gateway ingestService.Gateway,
	cache ingestService.Invalidator,
	cfg *config.Config,
) *ingestService.Ingest {
	return ingestService.New(log, gateway, cache, ingestService.Config{
		StatusDelay:     cfg.Ingest.StatusDelay,
		DependentsDelay: cfg.Ingest.DependentsDelay,
	})
}

func providePollInterval(cfg *config.Config) PollInterval {
	return PollInterval(cfg.Tasks.StatusPollInterval)
}

func provideStatusPollTask(
	log logger.Logger,
	dashboard status_poll.Service,
	interval PollInterval,
) *status_poll.StatusPoll {
	return status_poll.NewStatusPoll(log, dashboard, time.Duration(interval))
}

func provideTaskList(
	statusPollTask *status_poll.StatusPoll,
) []background.Task {
	return []background.Task{
		statusPollTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
