package commands

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"financetracker/domain"
	"financetracker/facade"
	"financetracker/logx"
	"financetracker/repo"

	"github.com/shopspring/decimal"
)

func TestTimeReturnsValueAndError(t *testing.T) {
	v, dur, err := Time(func() (int, error) { return 42, nil })
	if v != 42 || err != nil || dur < 0 {
		t.Fatalf("v=%d dur=%v err=%v", v, dur, err)
	}
	boom := errors.New("boom")
	s, _, err := Time(func() (string, error) { return "partial", boom })
	if s != "partial" || !errors.Is(err, boom) {
		t.Fatalf("s=%q err=%v", s, err)
	}
}

func TestTimedCommandLogsAndPropagates(t *testing.T) {
	var buf bytes.Buffer
	log := logx.New(logx.Config{Format: "json", Component: logx.ComponentApp, Output: &buf})

	boom := errors.New("boom")
	cmd := NewTimed(NewFuncCommand("explode", func(context.Context) error { return boom }), log)
	if cmd.Name() != "explode" {
		t.Fatalf("name got=%q", cmd.Name())
	}
	if err := cmd.Execute(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	out := buf.String()
	for _, want := range []string{`"command":"explode"`, `"status":"ERR"`, `"component":"commands"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("log lacks %s: %s", want, out)
		}
	}

	buf.Reset()
	ok := NewTimed(NewFuncCommand("noop", func(context.Context) error { return nil }), log)
	if err := ok.Execute(context.Background()); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if !strings.Contains(buf.String(), `"status":"OK"`) {
		t.Fatalf("log lacks OK status: %s", buf.String())
	}
}

func TestTimedCommandWithoutLogger(t *testing.T) {
	cmd := NewTimed(NewFuncCommand("noop", func(context.Context) error { return nil }), nil)
	if err := cmd.Execute(context.Background()); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestCreateAccountCommand(t *testing.T) {
	accounts := facade.NewAccountFacade(domain.Factory{}, repo.NewMemAccountRepo())

	cmd := &CreateAccountCommand{Accounts: accounts, Title: "Wallet", Balance: decimal.NewFromInt(10)}
	if err := cmd.Execute(context.Background()); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if cmd.Created == nil || cmd.Created.Name != "Wallet" {
		t.Fatalf("unexpected created account %+v", cmd.Created)
	}
	if _, ok := accounts.GetByID(cmd.Created.ID); !ok {
		t.Fatalf("account was not stored")
	}

	bad := &CreateAccountCommand{Accounts: accounts, Title: ""}
	if err := bad.Execute(context.Background()); !domain.IsValidation(err) || bad.Created != nil {
		t.Fatalf("expected validation error, got %v (created=%+v)", err, bad.Created)
	}
	if len(accounts.GetAll()) != 1 {
		t.Fatalf("expected one account, got %d", len(accounts.GetAll()))
	}
}
