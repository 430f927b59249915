package logging

// Field names shared by every component so that log lines can be filtered
// on the same keys regardless of where they were emitted.
const (
	FieldFile      = "file_path"
	FieldKey       = "item_key"
	FieldItem      = "item_name"
	FieldOperation = "operation"
	FieldFormat    = "format"
	FieldCount     = "count"
	FieldSkipped   = "skipped"
	FieldEndpoint  = "endpoint"
	FieldStatus    = "status"
	FieldError     = "error"
	FieldDuration  = "duration_ms"
)
