// Package recall remembers evaluated lines and suggests them back, ranked by how often they were used.
package recall

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"github.com/xpslvs/stackr/filesystem"
	"github.com/xpslvs/stackr/key"
	"github.com/xpslvs/stackr/where"
	"golang.org/x/exp/slices"
)

type lineRecord struct {
	Rank int    `json:"rank"`
	Line string `json:"line"`
}

var cacher = filesystem.NewCache[map[string]*lineRecord](where.Recall(), 0)

var suggestionCache = make(map[string][]*lineRecord)

// Remember records an evaluated line or increments its rank.
func Remember(line string, weight int) error {
	if !viper.GetBool(key.RecallEnabled) {
		return nil
	}

	line = sanitize(line)
	if line == "" {
		return nil
	}

	cached, expired, err := cacher.Get()
	if expired || err != nil || cached == nil {
		cached = make(map[string]*lineRecord)
	}

	if record, ok := cached[line]; ok {
		record.Rank += weight
	} else {
		cached[line] = &lineRecord{Rank: weight, Line: line}
	}

	clear(suggestionCache)
	return cacher.Set(cached)
}

// Suggest returns the highest ranked line matching the partial input.
func Suggest(partial string) mo.Option[string] {
	suggestions := SuggestMany(partial)
	if len(suggestions) == 0 {
		return mo.None[string]()
	}
	return mo.Some(suggestions[0])
}

// SuggestMany returns every remembered line matching the partial input, most used first.
func SuggestMany(partial string) []string {
	if !viper.GetBool(key.RecallEnabled) {
		return []string{}
	}

	partial = sanitize(partial)
	var records []*lineRecord

	if prev, ok := suggestionCache[partial]; ok {
		records = prev
	} else {
		cached, expired, err := cacher.Get()
		if err != nil || expired || cached == nil {
			return []string{}
		}

		for _, record := range cached {
			if fuzzy.Match(partial, record.Line) {
				records = append(records, record)
			}
		}

		slices.SortFunc(records, func(a, b *lineRecord) int {
			if a.Rank != b.Rank {
				return b.Rank - a.Rank
			}
			return strings.Compare(a.Line, b.Line)
		})

		suggestionCache[partial] = records
	}

	return lo.Map(records, func(r *lineRecord, _ int) string {
		return r.Line
	})
}

// Forget drops every remembered line.
func Forget() error {
	clear(suggestionCache)
	return cacher.Set(map[string]*lineRecord{})
}

// sanitize collapses whitespace so equivalent lines share a record.
func sanitize(line string) string {
	return strings.Join(strings.Fields(strings.ToLower(line)), " ")
}
