package log

// Common field names for structured logging
const (
	FieldComponent   = "component"
	FieldError       = "error"
	FieldOperation   = "operation"
	FieldDate        = "date"
	FieldCategory    = "category"
	FieldAmountCents = "amount_cents"
	FieldCount       = "count"
	FieldPath        = "path"
)

// Components defines standard component names
const (
	ComponentApp    = "app"
	ComponentLedger = "ledger"
	ComponentExport = "export"
	ComponentCLI    = "cli"
)

// Operations defines standard operation names
const (
	OpAppend = "append"
	OpExport = "export"
)
