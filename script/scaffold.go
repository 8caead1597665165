package script

import (
	"io"
	"strings"
	"text/template"

	"github.com/samber/lo"
	"github.com/xpslvs/stackr/constant"
	"github.com/xpslvs/stackr/util"
)

var scaffoldTemplate = lo.Must(template.New("script").Funcs(template.FuncMap{
	"repeat": strings.Repeat,
	"plus":   func(a, b int) int { return a + b },
	"max":    util.Max[int],
}).Parse(constant.ScriptTemplate))

// Scaffold writes a commented starter script to w.
func Scaffold(w io.Writer, name, author string) error {
	return scaffoldTemplate.Execute(w, struct {
		Name   string
		Author string
		Global string
	}{
		Name:   name,
		Author: author,
		Global: constant.ScriptStackGlobal,
	})
}
