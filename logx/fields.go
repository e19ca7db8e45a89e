package logx

// Общие имена полей для структурных логов
const (
	FieldComponent = "component"
	FieldCommand   = "command"
	FieldStatus    = "status"
	FieldDuration  = "duration"
	FieldError     = "error"
	FieldOperation = "operation"
	FieldEntityID  = "id"
	FieldPath      = "path"
	FieldFormat    = "format"
	FieldCount     = "count"
)

const (
	ComponentApp      = "app"
	ComponentMenu     = "menu"
	ComponentCommands = "commands"
	ComponentFiles    = "files"
	ComponentDI       = "di"
)

const (
	OpCreate = "create"
	OpDelete = "delete"
	OpRename = "rename"
	OpExport = "export"
	OpImport = "import"
)
