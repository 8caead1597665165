package config

import (
	"fmt"
	"strconv"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/xpslvs/stackr/icon"
	"github.com/xpslvs/stackr/key"
	"github.com/xpslvs/stackr/word"
)

// validators reject values that have the right type but cannot be used.
var validators = map[string]func(v any) error{
	key.StackCapacity: func(v any) error {
		return word.CheckCapacity(v.(int))
	},
	key.IconsVariant: func(v any) error {
		if !lo.Contains(icon.AvailableVariants(), v.(string)) {
			return fmt.Errorf("unknown icons variant %s", v)
		}
		return nil
	},
	key.LogsLevel: func(v any) error {
		_, err := logrus.ParseLevel(v.(string))
		return err
	},
}

// Parse converts the raw command line value of a key to the type of its default.
func Parse(k string, raw []string) (any, error) {
	field, ok := Default[k]
	if !ok {
		return nil, fmt.Errorf("unknown key %s", k)
	}

	if len(raw) == 0 {
		return nil, fmt.Errorf("no value for %s", k)
	}

	var v any
	switch field.Value.(type) {
	case string:
		v = raw[0]
	case int:
		parsed, err := strconv.Atoi(raw[0])
		if err != nil {
			return nil, fmt.Errorf("invalid integer value: %s", raw[0])
		}
		v = parsed
	case bool:
		parsed, err := strconv.ParseBool(raw[0])
		if err != nil {
			return nil, fmt.Errorf("invalid boolean value: %s", raw[0])
		}
		v = parsed
	case []string:
		v = raw
	default:
		return nil, fmt.Errorf("unsupported type %s", field.Type())
	}

	if validate, ok := validators[k]; ok {
		if err := validate(v); err != nil {
			return nil, err
		}
	}

	return v, nil
}
