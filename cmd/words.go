package cmd

import (
	"os"

	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wrap"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/xpslvs/stackr/color"
	"github.com/xpslvs/stackr/icon"
	"github.com/xpslvs/stackr/style"
	"github.com/xpslvs/stackr/util"
	"github.com/xpslvs/stackr/word"
)

const descriptionIndent = 4

func init() {
	rootCmd.AddCommand(wordsCmd)

	wordsCmd.Flags().BoolP("raw", "r", false, "Print only the word names")
	wordsCmd.SetOut(os.Stdout)
}

// wordsCmd lists the builtin vocabulary.
var wordsCmd = &cobra.Command{
	Use:   "words [query]",
	Short: "List the builtin words with their stack effects",
	Long:  "List the builtin words. A query fuzzy matches against names and descriptions.",
	Args:  cobra.MaximumNArgs(1),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return word.NewDictionary().Names(), cobra.ShellCompDirectiveNoFileComp
	},
	Run: func(cmd *cobra.Command, args []string) {
		var query string
		if len(args) > 0 {
			query = args[0]
		}

		words := word.NewDictionary().Filter(query)

		if lo.Must(cmd.Flags().GetBool("raw")) {
			for _, w := range words {
				cmd.Println(w.Name)
			}
			return
		}

		width, _, err := util.TerminalSize()
		if err != nil || width <= descriptionIndent {
			width = 80
		}

		var (
			name   = style.New().Bold(true).Foreground(color.Purple).Render
			effect = style.Fg(color.Yellow)
		)

		for i, w := range words {
			cmd.Printf("%s %s %s\n", icon.Get(icon.Word), name(w.Name), effect(w.Effect))
			cmd.Println(style.Faint(indent.String(wrap.String(w.Description, width-descriptionIndent), descriptionIndent)))

			if i < len(words)-1 {
				cmd.Println()
			}
		}
	},
}
