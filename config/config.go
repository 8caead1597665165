// Package config registers the configuration keys of stackr and loads them through viper.
//
// Values are resolved from flags, STACKR_ environment variables, the stackr.toml file
// in the config directory and finally the registered defaults.
package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
	"github.com/xpslvs/stackr/constant"
	"github.com/xpslvs/stackr/filesystem"
	"github.com/xpslvs/stackr/where"
)

// EnvKeyReplacer maps configuration keys to environment variable names.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Setup binds defaults and environment variables and reads the config file, if present.
func Setup() error {
	viper.SetConfigName(constant.Stackr)
	viper.SetConfigType("toml")
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.Stackr)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, env := range EnvExposed {
		viper.MustBindEnv(env)
	}

	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	err := viper.ReadInConfig()
	if errors.As(err, &viper.ConfigFileNotFoundError{}) {
		return nil
	}
	return err
}
