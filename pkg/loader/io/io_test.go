package io

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/lobbynetz/backend/data"
	"github.com/lobbynetz/backend/pkg/graph"
	"github.com/lobbynetz/backend/pkg/loader"
)

func TestFSDatasetLoader_EmbeddedSample(t *testing.T) {
	file := loader.NewDatasetFile(data.SampleFile, NewFSDatasetLoader(data.FS))

	network, err := loader.Load(context.Background(), file)
	if err != nil {
		t.Fatalf("failed to load embedded sample: %v", err)
	}
	if len(network.Nodes) == 0 || len(network.Links) == 0 {
		t.Fatalf("expected a populated sample, got %d nodes and %d links", len(network.Nodes), len(network.Links))
	}

	g := graph.New(network)
	for _, l := range network.Links {
		if !g.HasNode(l.Source) || !g.HasNode(l.Target) {
			t.Fatalf("sample link %s-%s references an unknown node", l.Source, l.Target)
		}
	}
}

func TestFSDatasetLoader_Caches(t *testing.T) {
	fsys := fstest.MapFS{
		"network.json": {Data: []byte(`{"nodes":[],"links":[]}`)},
	}
	l := NewFSDatasetLoader(fsys)
	file := loader.NewDatasetFile("network.json", l)

	first, err := l.GetFileBytes(context.Background(), file)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	fsys["network.json"] = &fstest.MapFile{Data: []byte(`changed`)}
	second, err := l.GetFileBytes(context.Background(), file)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(first) != string(second) {
		t.Fatalf("expected cached content, got %q", second)
	}
}

func TestIODatasetLoader_LocalFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "network.yaml")
	content := "nodes:\n  - id: A\n    type: company\n    name: A\nlinks: []\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	network, err := loader.Load(context.Background(), loader.NewDatasetFile(path, NewIODatasetLoader()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(network.Nodes) != 1 || network.Nodes[0].ID != "A" {
		t.Fatalf("unexpected network %+v", network)
	}
}

func TestIODatasetLoader_Missing(t *testing.T) {
	l := NewIODatasetLoader()
	_, err := l.GetFileBytes(context.Background(), loader.NewDatasetFile(filepath.Join(t.TempDir(), "missing.json"), l))
	if !os.IsNotExist(err) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}
