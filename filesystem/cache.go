package filesystem

import (
	"io"
	"os"
	"time"

	"github.com/metafates/gache"
)

// NewCache returns a JSON cache stored at path on the active backend.
// A zero lifetime never expires.
func NewCache[T any](path string, lifetime time.Duration) *gache.Cache[T] {
	return gache.New[T](&gache.Options{
		Path:       path,
		Lifetime:   lifetime,
		FileSystem: cacheFs{},
	})
}

// cacheFs resolves API() on every call, so caches created at init follow SetMemMapFs.
type cacheFs struct{}

var _ gache.FileSystem = cacheFs{}

func (cacheFs) OpenFile(name string, flag int, perm os.FileMode) (io.ReadWriteCloser, error) {
	return API().OpenFile(name, flag, perm)
}

func (cacheFs) MkdirAll(path string, perm os.FileMode) error {
	return API().MkdirAll(path, perm)
}
