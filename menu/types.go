package menu

import (
	"bufio"
	"io"

	"financetracker/facade"
	"financetracker/logx"
)

type Item struct {
	Key   string `json:"key"`   // строковый ключ действия
	Field string `json:"field"` // текст для вывода
}

type Menu struct {
	Items []Item
}

type Deps struct {
	Acc *facade.AccountFacade
	Cat *facade.CategoryFacade
	Op  *facade.OperationFacade
	Ana *facade.AnalyticsFacade

	ExportPath string
}

// Shell: одна интерактивная сессия поверх in/out.
type Shell struct {
	in     *bufio.Reader
	out    io.Writer
	d      *Deps
	log    *logx.Logger
	timing bool
}

func NewShell(in io.Reader, out io.Writer, d *Deps, log *logx.Logger, timing bool) *Shell {
	if log == nil {
		log = logx.Discard()
	}
	return &Shell{
		in:     bufio.NewReader(in),
		out:    out,
		d:      d,
		log:    log.WithComponent(logx.ComponentMenu),
		timing: timing,
	}
}
