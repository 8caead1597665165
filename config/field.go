package config

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/xpslvs/stackr/color"
	"github.com/xpslvs/stackr/constant"
	"github.com/xpslvs/stackr/style"
)

// Field is a documented configuration key with its default value.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Env returns the environment variable overriding the field, e.g. STACKR_STACK_CAPACITY.
func (f *Field) Env() string {
	return strings.ToUpper(constant.Stackr + "_" + EnvKeyReplacer.Replace(f.Key))
}

// Type names the type of the default value.
func (f *Field) Type() string {
	switch f.Value.(type) {
	case string:
		return "string"
	case int:
		return "int"
	case bool:
		return "bool"
	case []string:
		return "[]string"
	default:
		return fmt.Sprintf("%T", f.Value)
	}
}

// Current returns the effective value after flags, environment and the config file.
func (f *Field) Current() any {
	return viper.Get(f.Key)
}

// Pretty renders the field for terminal output.
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

// MarshalJSON includes the current value next to the default.
func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string `json:"key"`
		Value       any    `json:"value"`
		Default     any    `json:"default"`
		Description string `json:"description"`
		Type        string `json:"type"`
		Env         string `json:"env"`
	}{
		Key:         f.Key,
		Value:       f.Current(),
		Default:     f.Value,
		Description: f.Description,
		Type:        f.Type(),
		Env:         f.Env(),
	})
}

func highlight(v any) string {
	switch value := v.(type) {
	case bool:
		b := strconv.FormatBool(value)
		if value {
			return style.Fg(color.Green)(b)
		}
		return style.Fg(color.Red)(b)
	case string:
		return style.Fg(color.Yellow)(strconv.Quote(value))
	default:
		return fmt.Sprint(value)
	}
}

var prettyTemplate = lo.Must(template.New("pretty").Funcs(template.FuncMap{
	"faint":  style.Faint,
	"purple": style.Fg(color.Purple),
	"blue":   style.Fg(color.Blue),
	"hl":     highlight,
}).Parse(`{{ faint .Description }}
{{ blue "Key:" }}     {{ purple .Key }}
{{ blue "Env:" }}     {{ .Env }}
{{ blue "Value:" }}   {{ hl .Current }}
{{ blue "Default:" }} {{ hl .Value }}
{{ blue "Type:" }}    {{ .Type }}`))
