// Package where implements a cross-platform resolver for application-specific filesystem paths.
package where

import (
	"os"
	"path/filepath"

	"github.com/samber/lo"
	"github.com/xpslvs/stackr/constant"
	"github.com/xpslvs/stackr/filesystem"
)

// EnvConfigPath is the environment variable identifier used to override the default configuration directory.
const EnvConfigPath = "STACKR_CONFIG_PATH"

// ensureDir guarantees the existence of a directory at the specified path, creating it if necessary.
func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config resolves the absolute path to the primary application configuration directory.
// Direct override: The path resolution can be explicitly specified via the STACKR_CONFIG_PATH environment variable.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.Stackr))
}

// Cache resolves the absolute path to the application's persistent cache directory.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(".", "cache")
	}
	return ensureDir(filepath.Join(base, constant.Stackr))
}

// Logs resolves the absolute path to the directory used for application diagnostic logs.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// Scripts resolves the absolute path to the directory containing user Lua scripts.
func Scripts() string {
	return ensureDir(filepath.Join(Config(), "scripts"))
}

// Session resolves the absolute path to the persisted stack snapshot.
func Session() string {
	return filepath.Join(Cache(), "session.json")
}

// Recall resolves the absolute path to the registry of previously evaluated lines.
func Recall() string {
	return filepath.Join(Cache(), "recall.json")
}

// ReplHistory resolves the absolute path to the line editor history file.
func ReplHistory() string {
	return filepath.Join(Config(), "repl.history")
}

// Version resolves the absolute path to the cached latest release identifier.
func Version() string {
	return filepath.Join(Cache(), "version.json")
}
