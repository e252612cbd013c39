package logging

// Standardized field names for structured logging.
const (
	FieldFile      = "file_path"
	FieldSource    = "source"
	FieldCategory  = "category"
	FieldField     = "field"
	FieldFilters   = "filters"
	FieldKeyword   = "keyword"
	FieldOperation = "operation"
	FieldError     = "error"
	FieldCount     = "count"
	FieldMatches   = "matches"
	FieldDelimiter = "delimiter"
	FieldEncoding  = "encoding"
	FieldOutput    = "output_file"
)
