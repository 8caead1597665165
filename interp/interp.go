// Package interp evaluates lines of whitespace-separated words against a bounded stack.
package interp

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/samber/mo"
	"github.com/xpslvs/stackr/log"
	"github.com/xpslvs/stackr/stack"
	"github.com/xpslvs/stackr/word"
)

// Interpreter directives handled outside the dictionary.
const (
	tokPrint      = "."
	tokPrintStack = ".s"
	tokDefine     = ":"
	tokEnd        = ";"
	tokForget     = "forget"
	tokComment    = "("
	tokLineRest   = "\\"
)

var (
	// ErrMissingName is returned when ":" or "forget" is not followed by a name.
	ErrMissingName = errors.New("missing name")

	// ErrUnexpectedEnd is returned when ";" appears outside a definition.
	ErrUnexpectedEnd = errors.New("unexpected ;")

	// ErrReserved is returned when a definition would shadow a number or an interpreter directive.
	ErrReserved = errors.New("reserved name")
)

// UnknownWordError reports a token that is neither a number nor a defined word.
type UnknownWordError struct {
	Name       string
	Suggestion mo.Option[string]
}

func (e *UnknownWordError) Error() string {
	if s, ok := e.Suggestion.Get(); ok {
		return fmt.Sprintf("unknown word %s, did you mean %s?", e.Name, s)
	}
	return "unknown word " + e.Name
}

// Options configures a new Interpreter.
type Options struct {
	// Out receives the output of "." and ".s". Defaults to io.Discard.
	Out io.Writer
	// Capacity sizes a fresh stack when Stack is absent.
	Capacity int
	// Stack resumes evaluation on an existing stack.
	Stack mo.Option[*word.Stack]
	// Dictionary overrides the builtin vocabulary.
	Dictionary *word.Dictionary
}

// definition accumulates the body of a word while ":" is open.
type definition struct {
	name string
	body []word.Func
	src  []string
}

// Interpreter owns a stack and the dictionary used to manipulate it.
type Interpreter struct {
	out   io.Writer
	stack *word.Stack
	dict  *word.Dictionary

	compiling *definition
}

// New builds an interpreter from options.
func New(options *Options) *Interpreter {
	in := &Interpreter{
		out:   options.Out,
		stack: options.Stack.OrElse(nil),
		dict:  options.Dictionary,
	}
	if in.out == nil {
		in.out = io.Discard
	}
	if in.stack == nil {
		in.stack = stack.New[float64](options.Capacity)
	}
	if in.dict == nil {
		in.dict = word.NewDictionary()
	}
	return in
}

// Stack returns the stack the interpreter operates on.
func (in *Interpreter) Stack() *word.Stack {
	return in.stack
}

// Dictionary returns the vocabulary in use.
func (in *Interpreter) Dictionary() *word.Dictionary {
	return in.dict
}

// Reallocate resizes the working stack, truncating from the top when shrinking.
func (in *Interpreter) Reallocate(capacity int) {
	in.stack.Reallocate(capacity)
}

// Compiling reports whether a ":" definition is still open.
func (in *Interpreter) Compiling() bool {
	return in.compiling != nil
}

// Reset abandons an open definition.
func (in *Interpreter) Reset() {
	in.compiling = nil
}

// Eval evaluates every token of line in order.
// It stops at the first failing token; tokens before it stay applied.
// A definition opened with ":" may continue over later calls.
func (in *Interpreter) Eval(line string) error {
	tokens := strings.Fields(line)

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]

		switch {
		case tok == tokLineRest:
			return nil
		case tok == tokComment:
			for i < len(tokens) && !strings.HasSuffix(tokens[i], ")") {
				i++
			}
			continue
		case in.compiling != nil:
			if err := in.compile(tok); err != nil {
				in.compiling = nil
				return fmt.Errorf("%s: %w", tok, err)
			}
			continue
		case tok == tokDefine || tok == tokForget:
			if i+1 >= len(tokens) {
				return fmt.Errorf("%s: %w", tok, ErrMissingName)
			}
			i++
			if err := in.directive(tok, tokens[i]); err != nil {
				return fmt.Errorf("%s %s: %w", tok, tokens[i], err)
			}
			continue
		}

		if err := in.exec(tok); err != nil {
			return fmt.Errorf("%s: %w", tok, err)
		}
	}

	return nil
}

func (in *Interpreter) directive(tok, name string) error {
	if tok == tokForget {
		if !in.dict.Forget(name) {
			return &UnknownWordError{Name: name, Suggestion: mo.None[string]()}
		}
		return nil
	}

	if _, err := parseNumber(name); err == nil || isDirective(name) {
		return ErrReserved
	}
	in.compiling = &definition{name: name}
	return nil
}

func (in *Interpreter) exec(tok string) error {
	log.Fields(map[string]any{"token": tok, "depth": in.stack.Len()}, "eval")

	switch tok {
	case tokPrint:
		x, err := in.stack.Pop()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(in.out, formatNumber(x))
		return err
	case tokPrintStack:
		_, err := fmt.Fprintln(in.out, Format(in.stack))
		return err
	case tokEnd:
		return ErrUnexpectedEnd
	}

	if x, err := parseNumber(tok); err == nil {
		return in.stack.Push(x)
	}

	w, ok := in.dict.Lookup(tok).Get()
	if !ok {
		return &UnknownWordError{Name: tok, Suggestion: in.dict.Suggest(tok)}
	}
	return w.Fn(in.stack)
}

// compile appends tok to the open definition, or closes it on ";".
func (in *Interpreter) compile(tok string) error {
	def := in.compiling

	if tok == tokEnd {
		in.dict.Define(&word.Word{
			Name:        def.name,
			Effect:      "( user )",
			Description: strings.Join(def.src, " "),
			User:        true,
			Fn:          sequence(def.body),
		})
		in.compiling = nil
		return nil
	}

	if isDirective(tok) {
		return ErrReserved
	}

	if x, err := parseNumber(tok); err == nil {
		def.body = append(def.body, func(s *word.Stack) error { return s.Push(x) })
	} else {
		w, ok := in.dict.Lookup(tok).Get()
		if !ok {
			return &UnknownWordError{Name: tok, Suggestion: in.dict.Suggest(tok)}
		}
		def.body = append(def.body, w.Fn)
	}
	def.src = append(def.src, tok)
	return nil
}

// sequence composes body into one word that applies to a copy of the stack
// and commits only when every step succeeds.
func sequence(body []word.Func) word.Func {
	return func(s *word.Stack) error {
		scratch := s.Copy()
		for _, fn := range body {
			if err := fn(scratch); err != nil {
				return err
			}
		}
		s.Assign(scratch)
		return nil
	}
}

func isDirective(tok string) bool {
	switch tok {
	case tokPrint, tokPrintStack, tokDefine, tokEnd, tokForget, tokComment, tokLineRest:
		return true
	}
	return false
}

func parseNumber(tok string) (float64, error) {
	return strconv.ParseFloat(tok, 64)
}

func formatNumber(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}

// Format renders a stack as "<size/capacity>" followed by its elements, bottom first.
func Format(s *word.Stack) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<%d/%d>", s.Len(), s.Cap())
	for _, x := range s.Items() {
		b.WriteByte(' ')
		b.WriteString(formatNumber(x))
	}
	return b.String()
}
