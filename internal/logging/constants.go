package logging

// Standardized field names for structured logging.
// These constants ensure consistency across the application's log output,
// making logs easier to parse, filter, and analyze.
const (
	FieldFile     = "file_path"
	FieldStage    = "stage"
	FieldCategory = "category"
	FieldReason   = "reason"
	FieldCount    = "count"
	FieldMethod   = "processing_method"
	FieldIndex    = "index"
	FieldDuration = "duration_ms"
)
