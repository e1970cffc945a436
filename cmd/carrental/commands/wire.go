package commands

import (
	"context"
	"fmt"
	"log/slog"

	appcommands "carrental/internal/app/commands"
	"carrental/internal/app/dto"
	rentalapp "carrental/internal/app/handlers/rental"
	"carrental/internal/app/middleware"
	"carrental/internal/app/policies"
	"carrental/internal/app/queries"
	"carrental/internal/app/services/rental"
	domaincars "carrental/internal/domain/cars"
	"carrental/internal/infra/config"
	"carrental/internal/infra/db/mongo"
	"carrental/internal/infra/locale"
	"carrental/internal/infra/storage/memory"
	"carrental/internal/infra/taxconfig"
)

type application struct {
	commands appcommands.Bus
	queries  queries.Bus
	taxes    *domaincars.TaxTable
	closers  []func(context.Context) error
}

func (a *application) Close(ctx context.Context) error {
	var first error
	for _, c := range a.closers {
		if err := c(ctx); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func buildApplication(ctx context.Context, cfg config.Config, logger *slog.Logger) (*application, error) {
	app := &application{}

	taxes, err := taxconfig.Load(cfg.TaxTablePath)
	if err != nil {
		return nil, err
	}
	app.taxes = taxes

	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	format, err := locale.New(cfg.Locale, loc)
	if err != nil {
		return nil, err
	}

	useMongo := cfg.CarsSource == config.CarsSourceMongo
	data, err := memory.LoadDataset(ctx, cfg.DataDir, useMongo)
	if err != nil {
		return nil, fmt.Errorf("load reference data from %s: %w", cfg.DataDir, err)
	}

	var cars policies.CarRepository = data.Cars
	if useMongo {
		client, err := mongo.New(ctx, cfg.MongoURI, cfg.MongoDB, cfg.MongoTimeout)
		if err != nil {
			return nil, fmt.Errorf("connect mongo: %w", err)
		}
		app.closers = append(app.closers, client.Close)
		cars = mongo.NewCarRepository(client.DB)
	}
	logger.Debug("reference data loaded",
		"cars_source", cfg.CarsSource,
		"categories", data.Categories.Len(),
		"customers", data.Customers.Len(),
		"tax_rules", len(taxes.Rules()),
	)

	service := &rental.Service{
		Cars:   cars,
		Taxes:  taxes,
		Format: format,
		Logger: logger.With("component", "rental"),
	}

	commandBus := appcommands.NewInMemoryBus()
	appcommands.RegisterHandler[rentalapp.RentCarCommand, dto.Transaction](commandBus, &rentalapp.RentCarHandler{
		Service:    service,
		Customers:  data.Customers,
		Categories: data.Categories,
	})

	queryBus := queries.NewInMemoryBus()
	queries.RegisterHandler[rentalapp.QuotePriceQuery, dto.Quote](queryBus, &rentalapp.QuotePriceHandler{
		Service:    service,
		Customers:  data.Customers,
		Categories: data.Categories,
	})
	queries.RegisterHandler[rentalapp.PickCarQuery, dto.Car](queryBus, &rentalapp.PickCarHandler{
		Service:    service,
		Categories: data.Categories,
	})

	validator := middleware.NewStructValidator()
	app.commands = middleware.ChainCommands(commandBus,
		middleware.Logging(logger),
		middleware.Validation(validator),
	)
	app.queries = middleware.ChainQueries(queryBus,
		middleware.QueryLogging(logger),
		middleware.QueryValidation(validator),
	)
	return app, nil
}
