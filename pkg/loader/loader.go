package loader

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/lobbynetz/backend/pkg/common"
)

type DatasetFormat string

const (
	DatasetFormatJSON DatasetFormat = "json"
	DatasetFormatYAML DatasetFormat = "yaml"
)

// DatasetFile describes a network document and where to read it from.
// The content is retrieved via the associated DatasetLoader.
type DatasetFile struct {
	Path   string
	Format DatasetFormat
	Loader DatasetLoader
}

// NewDatasetFile creates a DatasetFile whose format is inferred from the
// path extension: .yaml and .yml are YAML, everything else is JSON.
func NewDatasetFile(filePath string, l DatasetLoader) DatasetFile {
	return DatasetFile{
		Path:   filePath,
		Format: FormatFromPath(filePath),
		Loader: l,
	}
}

// FormatFromPath infers the dataset format from a file name.
func FormatFromPath(filePath string) DatasetFormat {
	switch strings.ToLower(path.Ext(filePath)) {
	case ".yaml", ".yml":
		return DatasetFormatYAML
	default:
		return DatasetFormatJSON
	}
}

// GetBytes retrieves the raw content of the file using its Loader.
func (f DatasetFile) GetBytes(ctx context.Context) ([]byte, error) {
	if f.Loader == nil {
		return nil, fmt.Errorf("no loader configured for %s", f.Path)
	}
	return f.Loader.GetFileBytes(ctx, f)
}

// DatasetLoader defines the interface for loading the contents of a
// DatasetFile. Implementations may read from disk, an embedded file system
// or object storage.
type DatasetLoader interface {
	GetFileBytes(ctx context.Context, file DatasetFile) ([]byte, error)
}

// Load reads and decodes a network document.
//
// Example:
//
//	file := loader.NewDatasetFile("data/sample-data.json", io.NewIODatasetLoader())
//	network, err := loader.Load(ctx, file)
//	if err != nil {
//		log.Fatal(err)
//	}
func Load(ctx context.Context, file DatasetFile) (common.Network, error) {
	content, err := file.GetBytes(ctx)
	if err != nil {
		return common.Network{}, fmt.Errorf("failed to read dataset %s: %w", file.Path, err)
	}

	network, err := Decode(content, file.Format)
	if err != nil {
		return common.Network{}, fmt.Errorf("failed to decode dataset %s: %w", file.Path, err)
	}
	return network, nil
}

// CacheKey identifies a dataset file in loader caches.
func CacheKey(file DatasetFile) string {
	return string(file.Format) + ":" + file.Path
}
