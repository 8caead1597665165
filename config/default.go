package config

import "github.com/xpslvs/stackr/key"

// Default maps every configuration key to its field.
var Default = make(map[string]Field)

// EnvExposed lists the keys bound to environment variables.
var EnvExposed []string

func register(k string, v any, desc string) {
	if _, exists := Default[k]; exists {
		panic("duplicate config key: " + k)
	}
	Default[k] = Field{Key: k, Value: v, Description: desc}
	EnvExposed = append(EnvExposed, k)
}

func init() {
	register(key.StackCapacity, 64, "Capacity of the working stack.\nPushing beyond it fails with a stack overflow")
	register(key.SessionEnabled, true, "Persist the stack between invocations")
	register(key.RecallEnabled, true, "Remember evaluated lines and suggest them for completion")
	register(key.ReplPrompt, "ok> ", "Prompt string of the interactive loop")
	register(key.ReplShowStack, true, "Print the stack after every evaluated line")
	register(key.IconsVariant, "plain", "Icons variant.\nAvailable options are: emoji, kaomoji, plain, squares, nerd (nerd-font required)")
	register(key.LogsWrite, false, "Write logs")
	register(key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace")
	register(key.LogsJson, false, "Use json format for logs")
	register(key.CliColored, true, "Enable colored CLI output")
	register(key.CliVersionCheck, true, "Check if the new version is available on the help screen")
}
