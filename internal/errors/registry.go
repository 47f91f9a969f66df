package errors

// template defines a registered error code.
type template struct {
	Category   Category
	Message    string
	Suggestion string
}

// registry maps error codes to their templates. Codes are stable; new
// codes are appended, never reused.
var registry = map[string]template{
	// Config errors (L1xx)

	"L101": {
		Category:   CategoryConfig,
		Message:    "config file is not valid JSON",
		Suggestion: "Check liftlog.json for syntax errors.",
	},
	"L102": {
		Category:   CategoryConfig,
		Message:    "config file could not be read",
		Suggestion: "Check the path and file permissions.",
	},
	"L103": {
		Category:   CategoryConfig,
		Message:    "invalid environment override",
		Suggestion: "LIFTLOG_* variables must match the type of the field they override.",
	},
	"L104": {
		Category:   CategoryConfig,
		Message:    "invalid listen address",
		Suggestion: "Use host:port form, e.g. \":8080\" or \"127.0.0.1:9000\".",
	},

	// Storage errors (L2xx)

	"L201": {
		Category:   CategoryStorage,
		Message:    "record store could not be opened",
		Suggestion: "Check that the database path is writable and not held by another process.",
	},

	// Backup errors (L3xx)

	"L301": {
		Category:   CategoryBackup,
		Message:    "backup is not configured",
		Suggestion: "Set backup.bucket in liftlog.json or LIFTLOG_BACKUP_BUCKET.",
	},
	"L302": {
		Category: CategoryBackup,
		Message:  "snapshot upload failed",
	},

	// CLI errors (L4xx)

	"L401": {
		Category:   CategoryCLI,
		Message:    "export destination could not be written",
		Suggestion: "Check the output path and free disk space.",
	},
}
