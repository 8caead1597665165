// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// DefinedFieldsCount represents the total cardinality of the application configuration schema.
const DefinedFieldsCount = 11

// Stack Sizing - these keys govern the capacity of the working stack.
const (
	StackCapacity = "stack.capacity"
)

// Session Persistence - these keys configure whether the stack survives between invocations.
const (
	SessionEnabled = "session.enabled"
)

// Line Recall - these keys configure the history of evaluated lines and their suggestions.
const (
	RecallEnabled = "recall.enabled"
)

// Read-Eval-Print Loop - these keys define the interactive prompt.
const (
	ReplPrompt    = "repl.prompt"
	ReplShowStack = "repl.show_stack"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the non-interactive application behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
