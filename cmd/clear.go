package cmd

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/xpslvs/stackr/filesystem"
	"github.com/xpslvs/stackr/icon"
	"github.com/xpslvs/stackr/util"
	"github.com/xpslvs/stackr/where"
)

// clearTarget defines a filesystem resource eligible for cleanup.
type clearTarget struct {
	name     string
	argLong  string
	argShort mo.Option[string]
	location func() string
}

var clearTargets = []clearTarget{
	{"saved session", "session", mo.Some("s"), where.Session},
	{"recalled lines", "recall", mo.Some("r"), where.Recall},
	{"logs", "logs", mo.Some("l"), where.Logs},
	{"cache directory", "cache", mo.Some("c"), where.Cache},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, target := range clearTargets {
		help := fmt.Sprintf("clear %s", target.name)
		if target.argShort.IsPresent() {
			clearCmd.Flags().BoolP(target.argLong, target.argShort.MustGet(), false, help)
		} else {
			clearCmd.Flags().Bool(target.argLong, false, help)
		}
	}

	clearCmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
}

// clearCmd removes persisted application state.
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear the saved session, recalled lines, logs or cache",
	Run: func(cmd *cobra.Command, args []string) {
		selected := lo.Filter(clearTargets, func(target clearTarget, _ int) bool {
			return lo.Must(cmd.Flags().GetBool(target.argLong))
		})

		if len(selected) == 0 {
			handleErr(cmd.Help())
			return
		}

		if !lo.Must(cmd.Flags().GetBool("yes")) {
			names := lo.Map(selected, func(target clearTarget, _ int) string {
				return target.name
			})

			confirm := survey.Confirm{
				Message: fmt.Sprintf("Clear %s?", util.Quantify(len(names), "target", "targets")),
				Help:    fmt.Sprint(names),
				Default: false,
			}
			var response bool
			handleErr(survey.AskOne(&confirm, &response))

			if !response {
				return
			}
		}

		for _, target := range selected {
			e := util.PrintErasable(fmt.Sprintf("%s Clearing %s...", icon.Get(icon.Progress), target.name))
			exists, err := filesystem.API().Exists(target.location())
			if err == nil && exists {
				err = util.Delete(target.location())
			}
			e()
			handleErr(err)
			fmt.Printf("%s %s cleared\n", icon.Get(icon.Success), util.Capitalize(target.name))
		}
	},
}
