package repl

import (
	"strings"

	"github.com/samber/lo"
	"github.com/xpslvs/stackr/recall"
	"github.com/xpslvs/stackr/word"
)

// completer completes the word under the cursor from the dictionary.
// A line without a matching word falls back to remembered lines.
type completer struct {
	dict *word.Dictionary
}

func (c *completer) Do(line []rune, pos int) (newLine [][]rune, length int) {
	head := string(line[:pos])
	partial := head[strings.LastIndexAny(head, " \t")+1:]

	if partial != "" {
		lower := strings.ToLower(partial)
		newLine = lo.FilterMap(c.dict.Names(), func(name string, _ int) ([]rune, bool) {
			if !strings.HasPrefix(name, lower) {
				return nil, false
			}
			return []rune(name[len(lower):] + " "), true
		})
		if len(newLine) > 0 {
			return newLine, len([]rune(partial))
		}
	}

	if strings.TrimSpace(head) == "" {
		return nil, 0
	}

	prefix := strings.ToLower(head)
	newLine = lo.FilterMap(recall.SuggestMany(head), func(s string, _ int) ([]rune, bool) {
		if !strings.HasPrefix(s, prefix) || s == prefix {
			return nil, false
		}
		return []rune(s[len(prefix):]), true
	})
	return newLine, len([]rune(head))
}
