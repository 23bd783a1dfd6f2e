package di

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"go.uber.org/fx"

	"github.com/polkiloo/loyaltycart/internal/app"
	"github.com/polkiloo/loyaltycart/internal/config"
	"github.com/polkiloo/loyaltycart/internal/domain/repository"
	"github.com/polkiloo/loyaltycart/internal/storage/postgres"
	"github.com/polkiloo/loyaltycart/internal/test"
)

func TestModuleComposesGraphWithReplacements(t *testing.T) {
	cfg := &config.Config{
		RunAddress:          ":0",
		DatabaseURI:         "postgres://stub",
		TierRefreshInterval: time.Millisecond,
		ShutdownTimeout:     time.Millisecond,
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	customerRepo := test.NewCustomerRepositoryStub()
	productRepo := &test.ProductRepositoryStub{}
	tierRepo := &test.TierRepositoryStub{}
	operationRepo := test.NewOperationRepositoryStub(customerRepo)

	var facade *app.LoyaltyFacade
	fxApp := fx.New(
		fx.NopLogger,
		fx.Supply(context.Background()),
		Module(
			fx.Replace(cfg),
			fx.Replace(logger),
			fx.Replace(&postgres.Storage{}),
			fx.Replace(repository.CustomerRepository(customerRepo)),
			fx.Replace(repository.ProductRepository(productRepo)),
			fx.Replace(repository.TierRepository(tierRepo)),
			fx.Replace(repository.OperationRepository(operationRepo)),
		),
		fx.Populate(&facade),
	)

	if err := fxApp.Err(); err != nil {
		t.Fatalf("fx app returned error: %v", err)
	}
	t.Cleanup(func() { _ = fxApp.Stop(context.Background()) })
	if facade == nil {
		t.Fatal("expected loyalty facade instance")
	}
}
