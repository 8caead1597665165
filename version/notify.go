package version

import (
	"fmt"

	"github.com/spf13/viper"
	"github.com/xpslvs/stackr/color"
	"github.com/xpslvs/stackr/constant"
	"github.com/xpslvs/stackr/icon"
	"github.com/xpslvs/stackr/key"
	"github.com/xpslvs/stackr/style"
	"github.com/xpslvs/stackr/util"
)

// Notify prints a notice when a newer release than the running one is published.
func Notify() {
	if !viper.GetBool(key.CliVersionCheck) {
		return
	}

	erase := util.PrintErasable(fmt.Sprintf("%s Checking if new version is available...", icon.Get(icon.Progress)))
	version, err := Latest()
	erase()
	if err != nil {
		return
	}

	if comp, err := Compare(version, constant.Version); err != nil || comp <= 0 {
		return
	}

	fmt.Printf(`
%s New version is available %s %s
%s

`,
		style.Fg(color.Green)("▇▇▇"),
		style.Bold(version),
		style.Faint(fmt.Sprintf("(You're on %s)", constant.Version)),
		style.Faint("https://github.com/xpslvs/stackr/releases/tag/v"+version),
	)
}
