// Package repl implements the interactive read-eval-print loop.
package repl

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"github.com/xpslvs/stackr/constant"
	"github.com/xpslvs/stackr/icon"
	"github.com/xpslvs/stackr/interp"
	"github.com/xpslvs/stackr/key"
	"github.com/xpslvs/stackr/log"
	"github.com/xpslvs/stackr/recall"
	"github.com/xpslvs/stackr/session"
	"github.com/xpslvs/stackr/style"
	"github.com/xpslvs/stackr/util"
	"github.com/xpslvs/stackr/where"
)

// Commands understood by the loop itself. They must appear alone on a line.
const (
	cmdBye  = "bye"
	cmdPage = "page"
)

const continuePrompt = "... "

// Options configures an interactive session.
type Options struct {
	// Capacity of a fresh stack. Ignored when a saved session is restored.
	Capacity int
	// Session restores the stack on start and saves it after every line.
	Session bool
	// Resize reallocates a restored stack to Capacity.
	Resize bool
}

// Repl evaluates lines and reports the results to out.
type Repl struct {
	in      *interp.Interpreter
	out     io.Writer
	session bool
}

// New prepares a loop writing to out. The saved session is restored when enabled.
func New(options *Options, out io.Writer) (*Repl, error) {
	interpOptions := &interp.Options{Out: out, Capacity: options.Capacity}

	if options.Session {
		s, err := session.Resume(options.Capacity, options.Resize)
		if err != nil {
			return nil, err
		}
		interpOptions.Stack = mo.Some(s)
	}

	return &Repl{
		in:      interp.New(interpOptions),
		out:     out,
		session: options.Session,
	}, nil
}

// Interpreter exposes the underlying interpreter.
func (r *Repl) Interpreter() *interp.Interpreter {
	return r.in
}

// Prompt returns the prompt for the next line.
func (r *Repl) Prompt() string {
	if r.in.Compiling() {
		return continuePrompt
	}
	return viper.GetString(key.ReplPrompt)
}

// Handle evaluates a single line. It reports whether the loop should stop.
func (r *Repl) Handle(line string) (quit bool) {
	line = strings.TrimSpace(line)

	switch strings.ToLower(line) {
	case "":
		return false
	case cmdBye:
		return true
	case cmdPage:
		util.ClearScreen()
		return false
	}

	evalErr := r.in.Eval(line)
	r.save()

	if evalErr != nil {
		log.Error(evalErr)
		r.in.Reset()
		fmt.Fprintf(r.out, "%s %s\n", style.Error(icon.Get(icon.Fail)), evalErr)
		return false
	}

	if err := recall.Remember(line, 1); err != nil {
		log.Warn(err)
	}

	switch {
	case r.in.Compiling():
	case viper.GetBool(key.ReplShowStack):
		fmt.Fprintln(r.out, style.Faint(interp.Format(r.in.Stack())))
	default:
		fmt.Fprintln(r.out, style.Faint("ok"))
	}

	return false
}

// save persists the stack when sessions are enabled.
// Tokens applied before a failing one are kept, so this runs after errors too.
func (r *Repl) save() {
	if !r.session {
		return
	}
	if err := session.Save(r.in.Stack()); err != nil {
		log.Warn(err)
	}
}

// Run reads lines from the terminal until "bye", EOF or an interrupt on an empty line.
func Run(options *Options) error {
	r, err := New(options, os.Stdout)
	if err != nil {
		return err
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:            r.Prompt(),
		HistoryFile:       where.ReplHistory(),
		AutoComplete:      &completer{dict: r.in.Dictionary()},
		InterruptPrompt:   "^C",
		EOFPrompt:         cmdBye,
		HistorySearchFold: true,
	})
	if err != nil {
		return err
	}
	defer util.Ignore(rl.Close)

	fmt.Fprintf(
		r.out,
		"%s %s %s\n",
		icon.Get(icon.Stack),
		style.Bold(constant.Stackr+" "+constant.Version),
		style.Faint(fmt.Sprintf("%s, type bye to exit", interp.Format(r.in.Stack()))),
	)

	log.Info("repl started")
	for {
		rl.SetPrompt(r.Prompt())

		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if len(line) == 0 {
				break
			}
			continue
		} else if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return err
		}

		if r.Handle(line) {
			break
		}
	}

	log.Info("repl stopped")
	return nil
}
