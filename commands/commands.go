package commands

import (
	"context"
	"time"

	"financetracker/domain"
	"financetracker/facade"
	"financetracker/logx"

	"github.com/shopspring/decimal"
)

// Time выполняет fn один раз и возвращает время выполнения.
func Time[T any](fn func() (T, error)) (T, time.Duration, error) {
	start := time.Now()
	v, err := fn()
	return v, time.Since(start), err
}

type Command interface {
	Name() string
	Execute(ctx context.Context) error
}

type FuncCommand struct {
	name string
	fn   func(ctx context.Context) error
}

func NewFuncCommand(name string, fn func(ctx context.Context) error) FuncCommand {
	return FuncCommand{name: name, fn: fn}
}

func (c FuncCommand) Name() string                      { return c.name }
func (c FuncCommand) Execute(ctx context.Context) error { return c.fn(ctx) }

// CreateAccountCommand после успешного Execute хранит счёт в Created.
type CreateAccountCommand struct {
	Accounts *facade.AccountFacade
	Title    string
	Balance  decimal.Decimal
	Created  *domain.BankAccount
}

func (c *CreateAccountCommand) Name() string { return "create_account" }

func (c *CreateAccountCommand) Execute(context.Context) error {
	acc, err := c.Accounts.Create(c.Title, c.Balance)
	if err != nil {
		return err
	}
	c.Created = acc
	return nil
}

// TimedCommand логирует статус и длительность каждого запуска inner.
type TimedCommand struct {
	inner Command
	log   *logx.Logger
}

func NewTimed(inner Command, log *logx.Logger) *TimedCommand {
	if log == nil {
		log = logx.Discard()
	}
	return &TimedCommand{inner: inner, log: log.WithComponent(logx.ComponentCommands)}
}

func (t *TimedCommand) Name() string { return t.inner.Name() }

func (t *TimedCommand) Execute(ctx context.Context) error {
	_, dur, err := Time(func() (struct{}, error) {
		return struct{}{}, t.inner.Execute(ctx)
	})

	status := "OK"
	if err != nil {
		status = "ERR"
	}
	t.log.InfoContext(ctx, "command finished",
		logx.FieldCommand, t.inner.Name(),
		logx.FieldStatus, status,
		logx.FieldDuration, dur,
	)
	return err
}
