package menu

import (
	"context"

	"financetracker/commands"
)

// Command строит команду для пункта меню; при включённом замере времени
// оборачивает её в TimedCommand.
func (s *Shell) Command(it Item) commands.Command {
	key := it.Key
	var cmd commands.Command = commands.NewFuncCommand(key, func(ctx context.Context) error {
		return s.Execute(ctx, key)
	})
	if s.timing {
		cmd = commands.NewTimed(cmd, s.log)
	}
	return cmd
}
