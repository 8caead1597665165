// Package main is the entry point for stackr.
package main

import (
	"github.com/samber/lo"
	"github.com/xpslvs/stackr/cmd"
	"github.com/xpslvs/stackr/config"
	"github.com/xpslvs/stackr/log"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())
	cmd.Execute()
}
