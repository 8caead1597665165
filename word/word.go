// Package word binds names to operations on a float64 stack, forming the vocabulary of the interpreter.
package word

import (
	"errors"
	"sort"
	"strings"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/xpslvs/stackr/stack"
)

// ErrDivisionByZero is returned by division words when the divisor is zero.
var ErrDivisionByZero = errors.New("division by zero")

// Stack is the element stack every word operates on.
type Stack = stack.Stack[float64]

// Func is the behaviour of a word. A failing Func must leave the stack unchanged.
type Func func(s *Stack) error

// Word is a named stack operation.
type Word struct {
	// Name is the identifier used to invoke the word.
	Name string
	// Effect is the stack effect in Forth notation, e.g. "( a b -- b a )".
	Effect string
	// Description is a one-line explanation shown by the words listing.
	Description string
	// User marks words defined at runtime rather than built in.
	User bool

	Fn Func
}

// Dictionary is a case-insensitive registry of words.
// Redefining a name shadows the previous definition until the new one is forgotten.
type Dictionary struct {
	words map[string][]*Word
}

// NewDictionary returns a dictionary holding the builtin vocabulary.
func NewDictionary() *Dictionary {
	d := &Dictionary{words: make(map[string][]*Word)}
	for _, w := range Builtins() {
		d.Define(w)
	}
	return d
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Define registers w on top of any existing word with the same name.
func (d *Dictionary) Define(w *Word) {
	name := normalize(w.Name)
	d.words[name] = append(d.words[name], w)
}

// Forget removes the latest user-defined word under name, uncovering the one it shadowed.
// Builtins cannot be forgotten.
func (d *Dictionary) Forget(name string) bool {
	name = normalize(name)
	defs := d.words[name]
	if len(defs) == 0 || !defs[len(defs)-1].User {
		return false
	}

	if len(defs) == 1 {
		delete(d.words, name)
	} else {
		d.words[name] = defs[:len(defs)-1]
	}
	return true
}

// Lookup returns the latest word registered under name.
func (d *Dictionary) Lookup(name string) mo.Option[*Word] {
	defs, ok := d.words[normalize(name)]
	if !ok {
		return mo.None[*Word]()
	}
	return mo.Some(defs[len(defs)-1])
}

// Names returns every registered name in lexical order.
func (d *Dictionary) Names() []string {
	names := lo.Keys(d.words)
	sort.Strings(names)
	return names
}

// Words returns every registered word ordered by name.
func (d *Dictionary) Words() []*Word {
	return lo.Map(d.Names(), func(name string, _ int) *Word {
		return d.Lookup(name).MustGet()
	})
}

// Suggest returns the registered name closest to name by edit distance.
func (d *Dictionary) Suggest(name string) mo.Option[string] {
	if len(d.words) == 0 {
		return mo.None[string]()
	}
	name = normalize(name)
	closest := lo.MinBy(d.Names(), func(a string, b string) bool {
		return levenshtein.Distance(name, a) < levenshtein.Distance(name, b)
	})
	if levenshtein.Distance(name, closest) > max(2, len(name)/2) {
		return mo.None[string]()
	}
	return mo.Some(closest)
}

// Filter returns the words whose name or description fuzzily matches query.
func (d *Dictionary) Filter(query string) []*Word {
	query = normalize(query)
	if query == "" {
		return d.Words()
	}
	return lo.Filter(d.Words(), func(w *Word, _ int) bool {
		return fuzzy.MatchFold(query, w.Name) || fuzzy.MatchFold(query, w.Description)
	})
}
