package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/loyaltycart/internal/app"
	"github.com/polkiloo/loyaltycart/internal/cache"
	"github.com/polkiloo/loyaltycart/internal/config"
	"github.com/polkiloo/loyaltycart/internal/logger"
	"github.com/polkiloo/loyaltycart/internal/server/http/handlers"
	"github.com/polkiloo/loyaltycart/internal/server/http/router"
	"github.com/polkiloo/loyaltycart/internal/storage/postgres"
	"github.com/polkiloo/loyaltycart/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		postgres.Module,
		cache.Module,
		usecase.Module,
		fx.Provide(func(c *cache.TierCache) usecase.TierSource { return c }),
		fx.Provide(func(s *postgres.Storage) app.HealthChecker { return s }),
		fx.Provide(func(f *app.LoyaltyFacade) handlers.LoyaltyFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
