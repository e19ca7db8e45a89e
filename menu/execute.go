package menu

import (
	"context"
	"fmt"
)

type action func(ctx context.Context, s *Shell) error

var actions = map[string]action{
	"create_account":    actionCreateAccount,
	"list_accounts":     actionListAccounts,
	"rename_account":    actionRenameAccount,
	"delete_account":    actionDeleteAccount,
	"create_category":   actionCreateCategory,
	"list_categories":   actionListCategories,
	"rename_category":   actionRenameCategory,
	"delete_category":   actionDeleteCategory,
	"add_operation":     actionAddOperation,
	"list_operations":   actionListOperations,
	"delete_operation":  actionDeleteOperation,
	"group_by_category": actionGroupByCategory,
	"balance_delta":     actionBalanceDelta,
	"breakdown":         actionBreakdown,
	"summary":           actionSummary,
	"export_records":    actionExportRecords,
	"export_ops":        actionExportOps,
	"import_ops":        actionImportOps,
}

func (s *Shell) Execute(ctx context.Context, key string) error {
	act, ok := actions[key]
	if !ok {
		fmt.Fprintln(s.out, "Неизвестная команда:", key)
		return nil
	}
	return act(ctx, s)
}
