package logging

// Standardized field names for structured logging.
const (
	FieldFile        = "file_path"
	FieldComponent   = "component"
	FieldOperation   = "operation"
	FieldError       = "error"
	FieldCount       = "count"
	FieldDelimiter   = "delimiter"
	FieldInputFile   = "input_file"
	FieldOutputFile  = "output_file"
	FieldDescription = "description"
	FieldKeyPhrase   = "key_phrase"
	FieldBusiness    = "business_type"
	FieldRetailer    = "retailer"
	FieldThreshold   = "threshold"
	FieldGroups      = "groups"
)
