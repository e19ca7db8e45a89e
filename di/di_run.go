package di

import (
	"fmt"

	"go.uber.org/dig"

	"financetracker/config"
	"financetracker/domain"
	"financetracker/facade"
	"financetracker/logx"
	"financetracker/menu"
	"financetracker/repo"
	"financetracker/service"

	"github.com/shopspring/decimal"
)

// App: состояние одной сессии: репозитории живут ровно столько же, сколько
// собранный вокруг них App.
type App struct {
	Menu   menu.Menu
	Deps   *menu.Deps
	Logger *logx.Logger
	Timing bool
}

func Build(cfg *config.Config, logger *logx.Logger) (*App, error) {
	c := dig.New()

	providers := []struct {
		fn   any
		opts []dig.ProvideOption
	}{
		{fn: func() *config.Config { return cfg }},
		{fn: func() *logx.Logger { return logger }},
		{fn: func() domain.Factory { return domain.Factory{} }},

		{fn: repo.NewMemAccountRepo, opts: []dig.ProvideOption{dig.As(new(facade.AccountRepo))}},
		{fn: repo.NewMemCategoryRepo, opts: []dig.ProvideOption{dig.As(new(facade.CategoryRepo))}},
		{fn: repo.NewMemOperationRepo, opts: []dig.ProvideOption{
			dig.As(new(facade.OperationRepo), new(service.OperationSource)),
		}},

		{fn: service.NewAnalyticsService},

		{fn: facade.NewAccountFacade},
		{fn: facade.NewCategoryFacade},
		{fn: facade.NewOperationFacade},
		{fn: facade.NewAnalyticsFacade},

		{fn: func(cfg *config.Config) (menu.Menu, error) { return menu.Load(cfg.MenuPath) }},
	}
	for _, p := range providers {
		if err := c.Provide(p.fn, p.opts...); err != nil {
			return nil, fmt.Errorf("provide: %w", err)
		}
	}

	var app *App
	err := c.Invoke(func(
		cfg *config.Config,
		m menu.Menu,
		acc *facade.AccountFacade,
		cat *facade.CategoryFacade,
		op *facade.OperationFacade,
		ana *facade.AnalyticsFacade,
	) error {
		if err := ensureDefaultAccount(acc, cfg.DefaultAccount, logger); err != nil {
			return err
		}
		app = &App{
			Menu: m,
			Deps: &menu.Deps{
				Acc:        acc,
				Cat:        cat,
				Op:         op,
				Ana:        ana,
				ExportPath: cfg.ExportPath,
			},
			Logger: logger,
			Timing: cfg.CommandTiming,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return app, nil
}

func ensureDefaultAccount(acc *facade.AccountFacade, name string, logger *logx.Logger) error {
	if name == "" {
		return nil
	}
	a, err := acc.Create(name, decimal.Zero)
	if err != nil {
		return fmt.Errorf("default account: %w", err)
	}
	logger.WithComponent(logx.ComponentDI).Info("default account created", logx.FieldEntityID, a.ID)
	return nil
}
