// Package cmd implements the command-line interface for stackr.
package cmd

import (
	"fmt"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/xpslvs/stackr/color"
	"github.com/xpslvs/stackr/constant"
	"github.com/xpslvs/stackr/icon"
	"github.com/xpslvs/stackr/key"
	"github.com/xpslvs/stackr/log"
	"github.com/xpslvs/stackr/repl"
	"github.com/xpslvs/stackr/session"
	"github.com/xpslvs/stackr/style"
	"github.com/xpslvs/stackr/version"
	"github.com/xpslvs/stackr/word"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	addCapacityFlag(rootCmd)

	rootCmd.Flags().BoolP("session", "s", true, "Resume the stack of the previous session and save it on every line")
	lo.Must0(viper.BindPFlag(key.SessionEnabled, rootCmd.Flags().Lookup("session")))

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})
}

// rootCmd starts the interactive loop.
var rootCmd = &cobra.Command{
	Use:   constant.Stackr,
	Short: constant.Tagline,
	Long: constant.Logo + "\n" +
		style.New().Italic(true).Foreground(color.HiPurple).Render("    - "+constant.Tagline),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		capacity := capacityFlag(cmd)

		options := &repl.Options{
			Capacity: capacity,
			Session:  viper.GetBool(key.SessionEnabled),
			Resize:   cmd.Flags().Changed("capacity"),
		}

		handleErr(repl.Run(options))
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func addCapacityFlag(cmd *cobra.Command) {
	cmd.Flags().IntP("capacity", "c", 0, "Capacity of the working stack (default from "+key.StackCapacity+")")
}

// capacityFlag returns the --capacity flag when set, the configured capacity otherwise.
func capacityFlag(cmd *cobra.Command) int {
	capacity, err := readCapacity(cmd)
	handleErr(err)
	return capacity
}

func readCapacity(cmd *cobra.Command) (int, error) {
	capacity := viper.GetInt(key.StackCapacity)
	if cmd.Flags().Changed("capacity") {
		capacity = lo.Must(cmd.Flags().GetInt("capacity"))
	}

	return capacity, word.CheckCapacity(capacity)
}

// resumeSession restores the saved stack. An explicit --capacity resizes it.
func resumeSession(cmd *cobra.Command, capacity int) *word.Stack {
	s, err := session.Resume(capacity, cmd.Flags().Changed("capacity"))
	handleErr(err)
	return s
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", style.Error(icon.Get(icon.Fail)), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
