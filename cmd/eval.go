package cmd

import (
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/xpslvs/stackr/filesystem"
	"github.com/xpslvs/stackr/inline"
	"github.com/xpslvs/stackr/recall"
	"github.com/xpslvs/stackr/session"
	"github.com/xpslvs/stackr/util"
	"github.com/xpslvs/stackr/word"
	"golang.org/x/term"
)

func init() {
	rootCmd.AddCommand(evalCmd)

	addCapacityFlag(evalCmd)
	evalCmd.Flags().BoolP("json", "j", false, "Format the command output as a JSON object")
	evalCmd.Flags().StringP("output", "o", "", "Specify a file path to write the command output")
	evalCmd.Flags().BoolP("session", "s", false, "Evaluate on the saved session stack and save the result")
}

// evalCmd evaluates words given as arguments or on standard input.
var evalCmd = &cobra.Command{
	Use:   "eval [words...]",
	Short: "Evaluate words non-interactively and print the resulting stack",
	Long: `Evaluate a program in non-interactive inline mode.

Words are taken from the arguments, or from standard input when no arguments are given.
The resulting stack is printed as <size/capacity> followed by its elements, bottom first.
Put -- before programs starting with a negative number.`,
	Example: "  stackr eval 1 2 + 3 '*'\n  stackr eval -- -5 abs\n  echo '10 20 swap' | stackr eval --json",
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return recall.SuggestMany(strings.Join(append(args, toComplete), " ")), cobra.ShellCompDirectiveNoFileComp
	},
	Run: func(cmd *cobra.Command, args []string) {
		program := strings.Join(args, " ")
		if len(args) == 0 && !term.IsTerminal(int(os.Stdin.Fd())) {
			data, err := io.ReadAll(os.Stdin)
			handleErr(err)
			program = string(data)
		}

		capacity := capacityFlag(cmd)

		var writer io.Writer = os.Stdout
		if output := lo.Must(cmd.Flags().GetString("output")); output != "" {
			f, err := filesystem.API().Create(output)
			handleErr(err)
			defer util.Ignore(f.Close)
			writer = f
		}

		useSession := lo.Must(cmd.Flags().GetBool("session"))
		resumed := mo.None[*word.Stack]()
		if useSession {
			resumed = mo.Some(resumeSession(cmd, capacity))
		}

		s, err := inline.Run(&inline.Options{
			Out:      writer,
			Program:  program,
			Capacity: capacity,
			Json:     lo.Must(cmd.Flags().GetBool("json")),
			Stack:    resumed,
		})

		if useSession {
			handleErr(session.Save(s))
		}
		handleErr(err)

		handleErr(recall.Remember(program, 1))
	},
}

func init() {
	evalCmd.AddCommand(evalSchemaCmd)
}

// evalSchemaCmd generates the JSON schema of the structured eval output.
var evalSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate the JSON schema for structured eval output",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		schema := reflector.Reflect(&inline.Output{})

		handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(schema))
	},
}
