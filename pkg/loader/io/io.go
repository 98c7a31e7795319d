package io

import (
	"context"
	"io/fs"
	"os"
	"sync"

	"github.com/lobbynetz/backend/pkg/loader"

	"golang.org/x/sync/singleflight"
)

// IODatasetLoader loads dataset files from the local filesystem, or from an
// fs.FS such as an embedded directory, with caching.
type IODatasetLoader struct {
	fsys fs.FS

	cache   map[string][]byte
	cacheMu sync.RWMutex
	group   singleflight.Group
}

// NewIODatasetLoader creates a loader that reads from the local filesystem.
func NewIODatasetLoader() *IODatasetLoader {
	return &IODatasetLoader{
		cache: make(map[string][]byte),
	}
}

// NewFSDatasetLoader creates a loader that reads paths relative to fsys.
func NewFSDatasetLoader(fsys fs.FS) *IODatasetLoader {
	return &IODatasetLoader{
		fsys:  fsys,
		cache: make(map[string][]byte),
	}
}

// GetFileBytes reads the file content. Results are cached per path.
func (l *IODatasetLoader) GetFileBytes(ctx context.Context, file loader.DatasetFile) ([]byte, error) {
	key := loader.CacheKey(file)

	l.cacheMu.RLock()
	if cached, ok := l.cache[key]; ok {
		l.cacheMu.RUnlock()
		return cached, nil
	}
	l.cacheMu.RUnlock()

	result, err, _ := l.group.Do(key, func() (any, error) {
		l.cacheMu.RLock()
		if cached, ok := l.cache[key]; ok {
			l.cacheMu.RUnlock()
			return cached, nil
		}
		l.cacheMu.RUnlock()

		if err := ctx.Err(); err != nil {
			return nil, err
		}

		result, err := l.read(file.Path)
		if err != nil {
			return nil, err
		}

		l.cacheMu.Lock()
		l.cache[key] = result
		l.cacheMu.Unlock()

		return result, nil
	})
	if err != nil {
		return nil, err
	}

	return result.([]byte), nil
}

func (l *IODatasetLoader) read(filePath string) ([]byte, error) {
	if l.fsys != nil {
		return fs.ReadFile(l.fsys, filePath)
	}
	return os.ReadFile(filePath)
}
