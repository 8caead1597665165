// Package session persists the working stack between invocations.
package session

import (
	"github.com/samber/mo"
	"github.com/xpslvs/stackr/filesystem"
	"github.com/xpslvs/stackr/stack"
	"github.com/xpslvs/stackr/where"
	"github.com/xpslvs/stackr/word"
)

// Snapshot is the persisted form of a stack.
type Snapshot struct {
	// Capacity of the stack when it was saved.
	Capacity int `json:"capacity"`
	// Items are the live elements, bottom first.
	Items []float64 `json:"items"`
}

// cacher provides a disk-backed slot for the last saved snapshot.
var cacher = filesystem.NewCache[*Snapshot](where.Session(), 0)

// Save persists the capacity and contents of s.
func Save(s *word.Stack) error {
	return cacher.Set(&Snapshot{
		Capacity: s.Cap(),
		Items:    s.Items(),
	})
}

// Load returns the last saved snapshot, if any.
func Load() (mo.Option[Snapshot], error) {
	cached, expired, err := cacher.Get()
	if err != nil {
		return mo.None[Snapshot](), err
	}
	if expired || cached == nil {
		return mo.None[Snapshot](), nil
	}
	return mo.Some(*cached), nil
}

// Restore rebuilds the saved stack, or returns an empty stack of the given capacity when nothing was saved.
func Restore(capacity int) (*word.Stack, error) {
	snapshot, err := Load()
	if err != nil {
		return nil, err
	}

	saved, ok := snapshot.Get()
	if !ok {
		return stack.New[float64](capacity), nil
	}
	return stack.FromSlice(saved.Capacity, saved.Items)
}

// Resume restores the saved stack and, when resize is set, reallocates it to capacity.
func Resume(capacity int, resize bool) (*word.Stack, error) {
	s, err := Restore(capacity)
	if err != nil {
		return nil, err
	}
	if resize {
		s.Reallocate(capacity)
	}
	return s, nil
}

// Remove forgets the saved snapshot.
func Remove() error {
	return cacher.Set(nil)
}
