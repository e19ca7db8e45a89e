package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"financetracker/config"
	"financetracker/di"
	"financetracker/logx"
	"financetracker/menu"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "ERROR:", err)
		os.Exit(1)
	}

	logger := logx.New(logx.Config{
		Level:     logx.ParseLevel(cfg.LogLevel),
		Format:    cfg.LogFormat,
		Component: logx.ComponentApp,
		Output:    os.Stderr,
	})
	logx.SetDefault(logger)

	app, err := di.Build(cfg, logger)
	if err != nil {
		logger.Error("build app", logx.FieldError, err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Println("Добро пожаловать в модуль 'Учет финансов'!")
	sh := menu.NewShell(os.Stdin, os.Stdout, app.Deps, app.Logger, app.Timing)
	if err := sh.Run(ctx, app.Menu); err != nil && ctx.Err() == nil {
		logger.Error("shell stopped", logx.FieldError, err)
		os.Exit(1)
	}
}
