// Package inline provides the application's non-interactive, programmable evaluation mode.
package inline

import (
	"fmt"
	"io"
	"os"

	"github.com/samber/mo"
	"github.com/xpslvs/stackr/interp"
	"github.com/xpslvs/stackr/log"
	"github.com/xpslvs/stackr/word"
)

// Options configures a single inline evaluation.
type Options struct {
	Out      io.Writer
	Program  string
	Capacity int
	Json     bool
	Stack    mo.Option[*word.Stack]
}

// Run evaluates the program and writes the resulting stack to the configured output.
// In JSON mode evaluation errors are also reported inside the document, which is written either way.
func Run(options *Options) (*word.Stack, error) {
	if options.Out == nil {
		options.Out = os.Stdout
	}

	in := interp.New(&interp.Options{
		Out:      options.Out,
		Capacity: options.Capacity,
		Stack:    options.Stack,
	})

	evalErr := in.Eval(options.Program)
	if evalErr != nil {
		log.Error(evalErr)
	}

	if options.Json {
		if err := writeJson(options.Out, options.Program, in.Stack(), evalErr); err != nil {
			return in.Stack(), err
		}
		return in.Stack(), evalErr
	}

	if evalErr != nil {
		return in.Stack(), evalErr
	}

	_, err := fmt.Fprintln(options.Out, interp.Format(in.Stack()))
	return in.Stack(), err
}
