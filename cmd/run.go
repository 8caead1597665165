package cmd

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/xpslvs/stackr/constant"
	"github.com/xpslvs/stackr/filesystem"
	"github.com/xpslvs/stackr/interp"
	"github.com/xpslvs/stackr/script"
	"github.com/xpslvs/stackr/session"
	"github.com/xpslvs/stackr/stack"
	"github.com/xpslvs/stackr/util"
	"github.com/xpslvs/stackr/where"
	"github.com/xpslvs/stackr/word"
)

func init() {
	rootCmd.AddCommand(runCmd)
	addCapacityFlag(runCmd)
	runCmd.Flags().BoolP("session", "s", false, "Run on the saved session stack and save the result")
	runCmd.Flags().BoolP("quiet", "q", false, "Do not print the resulting stack")
	runCmd.SetOut(os.Stdout)
}

// runCmd executes a Lua script or a file of words.
var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Execute a Lua script or a file of words",
	Long: `Execute a file against the working stack.

Files ending in .lua run in a Lua 5.1 virtual machine with the stack bound to the global "stack" table.
Any other file is evaluated line by line.
A bare name is looked up in the scripts directory.`,
	Args:    cobra.ExactArgs(1),
	Example: "  stackr run ./fib.lua\n  stackr run fib",
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return scriptNames(), cobra.ShellCompDirectiveDefault
	},
	Run: func(cmd *cobra.Command, args []string) {
		path, err := resolveScript(args[0])
		handleErr(err)

		capacity := capacityFlag(cmd)

		useSession := lo.Must(cmd.Flags().GetBool("session"))
		s := stack.New[float64](capacity)
		if useSession {
			s = resumeSession(cmd, capacity)
		}

		if filepath.Ext(path) == constant.ScriptExtension {
			err = script.Run(path, s, word.NewDictionary())
		} else {
			err = runWords(path, interp.New(&interp.Options{
				Out:   cmd.OutOrStdout(),
				Stack: mo.Some(s),
			}))
		}

		if useSession {
			handleErr(session.Save(s))
		}
		handleErr(err)

		if !lo.Must(cmd.Flags().GetBool("quiet")) {
			cmd.Println(interp.Format(s))
		}
	},
}

// resolveScript returns path when it exists, otherwise the matching script in the scripts directory.
func resolveScript(name string) (string, error) {
	if exists, err := filesystem.API().Exists(name); err != nil {
		return "", err
	} else if exists {
		return name, nil
	}

	if filepath.Base(name) == name {
		candidate := filepath.Join(where.Scripts(), name)
		if filepath.Ext(name) == "" {
			candidate += constant.ScriptExtension
		}

		if lo.Must(filesystem.API().Exists(candidate)) {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("script not found: %s", name)
}

// runWords evaluates the file at path line by line.
func runWords(path string, in *interp.Interpreter) error {
	f, err := filesystem.API().Open(path)
	if err != nil {
		return err
	}
	defer util.Ignore(f.Close)

	scanner := bufio.NewScanner(f)
	for n := 1; scanner.Scan(); n++ {
		if err := in.Eval(scanner.Text()); err != nil {
			return fmt.Errorf("%s:%d: %w", path, n, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return err
	}

	if in.Compiling() {
		return fmt.Errorf("%s: unterminated definition", path)
	}
	return nil
}
