package cmd

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/xpslvs/stackr/color"
	"github.com/xpslvs/stackr/constant"
	"github.com/xpslvs/stackr/filesystem"
	"github.com/xpslvs/stackr/icon"
	"github.com/xpslvs/stackr/open"
	"github.com/xpslvs/stackr/script"
	"github.com/xpslvs/stackr/style"
	"github.com/xpslvs/stackr/util"
	"github.com/xpslvs/stackr/where"
)

// scriptNames lists the stems of the Lua scripts in the scripts directory.
func scriptNames() []string {
	entries, err := filesystem.API().ReadDir(where.Scripts())
	if err != nil {
		return nil
	}

	return lo.FilterMap(entries, func(item os.FileInfo, _ int) (string, bool) {
		name := item.Name()
		if item.IsDir() || !strings.HasSuffix(name, constant.ScriptExtension) {
			return "", false
		}

		return util.FileStem(name), true
	})
}

func completionScriptNames(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return scriptNames(), cobra.ShellCompDirectiveNoFileComp
}

func init() {
	rootCmd.AddCommand(scriptsCmd)
}

// scriptsCmd provides a parent command for managing user Lua scripts.
var scriptsCmd = &cobra.Command{
	Use:   "scripts",
	Short: "Manage Lua scripts in the scripts directory",
}

func init() {
	scriptsCmd.AddCommand(scriptsListCmd)

	scriptsListCmd.Flags().BoolP("raw", "r", false, "Suppress the header in the output")
	scriptsListCmd.SetOut(os.Stdout)
}

// scriptsListCmd displays the installed scripts.
var scriptsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Display all scripts in the scripts directory",
	Run: func(cmd *cobra.Command, args []string) {
		names := scriptNames()

		if lo.Must(cmd.Flags().GetBool("raw")) {
			for _, name := range names {
				cmd.Println(name)
			}
			return
		}

		header := style.New().Foreground(color.HiBlue).Bold(true).Render
		cmd.Println(header(util.Capitalize(util.Quantify(len(names), "script", "scripts")) + ":"))
		for _, name := range names {
			cmd.Printf("%s %s\n", icon.Get(icon.Lua), name)
		}
	},
}

func init() {
	scriptsCmd.AddCommand(scriptsNewCmd)

	scriptsNewCmd.Flags().StringP("name", "n", "", "The name of the new script")
	scriptsNewCmd.Flags().BoolP("force", "f", false, "Overwrite an existing script with the same name")
	scriptsNewCmd.Flags().BoolP("edit", "e", false, "Open the new script in the editor")
	lo.Must0(scriptsNewCmd.MarkFlagRequired("name"))
}

// scriptsNewCmd scaffolds a starter Lua script.
var scriptsNewCmd = &cobra.Command{
	Use:   "new",
	Short: "Scaffold a new Lua script using a predefined template",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.SetOut(os.Stdout)

		author := "Anonymous"
		if usr, err := user.Current(); err == nil {
			author = usr.Username
		}

		name := lo.Must(cmd.Flags().GetString("name"))
		filename := util.SanitizeFilename(name)
		if filename == "" {
			handleErr(fmt.Errorf("invalid script name: %q", name))
		}

		target := filepath.Join(where.Scripts(), filename+constant.ScriptExtension)
		exists, err := filesystem.API().Exists(target)
		handleErr(err)
		if exists && !lo.Must(cmd.Flags().GetBool("force")) {
			handleErr(fmt.Errorf("script %s already exists, use --force to overwrite it", filename))
		}

		f, err := filesystem.API().Create(target)
		handleErr(err)
		defer util.Ignore(f.Close)

		handleErr(script.Scaffold(f, name, author))
		cmd.Println(target)

		if lo.Must(cmd.Flags().GetBool("edit")) {
			handleErr(f.Close())
			handleErr(open.Edit(target))
		}
	},
}

func init() {
	scriptsCmd.AddCommand(scriptsEditCmd)
}

// scriptsEditCmd opens a script in $VISUAL or $EDITOR.
var scriptsEditCmd = &cobra.Command{
	Use:               "edit [name]",
	Short:             "Open a script in the editor",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionScriptNames,
	Run: func(cmd *cobra.Command, args []string) {
		path := filepath.Join(where.Scripts(), args[0]+constant.ScriptExtension)
		exists, err := filesystem.API().Exists(path)
		handleErr(err)
		if !exists {
			handleErr(fmt.Errorf("script not found: %s", args[0]))
		}

		handleErr(open.Edit(path))
		script.Forget(path)
	},
}

func init() {
	scriptsCmd.AddCommand(scriptsRemoveCmd)

	scriptsRemoveCmd.Flags().StringArrayP("name", "n", []string{}, "Specify the name of the script(s) to remove")
	lo.Must0(scriptsRemoveCmd.MarkFlagRequired("name"))
	lo.Must0(scriptsRemoveCmd.RegisterFlagCompletionFunc("name", completionScriptNames))
}

// scriptsRemoveCmd deletes scripts from the scripts directory.
var scriptsRemoveCmd = &cobra.Command{
	Use:     "remove",
	Short:   "Permanently remove the specified scripts",
	Aliases: []string{"rm"},
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range lo.Must(cmd.Flags().GetStringArray("name")) {
			path := filepath.Join(where.Scripts(), name+constant.ScriptExtension)
			handleErr(filesystem.API().Remove(path))
			script.Forget(path)
			fmt.Printf("%s successfully removed %s\n", icon.Get(icon.Success), style.Fg(color.Yellow)(name))
		}
	},
}
