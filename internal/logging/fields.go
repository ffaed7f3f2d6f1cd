package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError = "error"
	FieldPath  = "path"
	FieldBytes = "bytes"

	// Document fields.
	FieldTagCount = "tags"
	FieldMaxDepth = "max_depth"
	FieldChildren = "children"
	FieldOffset   = "offset"

	// Configuration fields.
	FieldColor        = "color"
	FieldPollInterval = "poll_interval_ms"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
