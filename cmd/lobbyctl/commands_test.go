package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lobbynetz/backend/pkg/common"
	"github.com/lobbynetz/backend/pkg/graph"
)

const fixture = `{
  "nodes": [
    {"id": "A", "type": "politician", "name": "Politiker X", "party": "Beispielpartei", "score": 70},
    {"id": "B", "type": "company", "name": "Firma B", "industry": "Energiewirtschaft", "score": 40},
    {"id": "C", "type": "ministry", "name": "Ministerium C"}
  ],
  "links": [
    {"source": "A", "target": "B", "type": "employment", "since": "2020"}
  ]
}`

func writeFixture(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "network.json")
	require.NoError(t, os.WriteFile(path, []byte(fixture), 0o600))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func nodeIDs(t *testing.T, out string) []string {
	t.Helper()

	var nodes []common.Node
	require.NoError(t, json.Unmarshal([]byte(out), &nodes), out)
	ids := []string{}
	for _, n := range nodes {
		ids = append(ids, n.ID)
	}
	return ids
}

func TestNodeCommand(t *testing.T) {
	data := writeFixture(t)

	out, err := run(t, "--data", data, "node", "A")
	require.NoError(t, err)
	assert.Contains(t, out, "Politiker X")
	assert.Contains(t, out, "1 connections")
	assert.Contains(t, out, "employment")

	out, err = run(t, "--data", data, "--json", "node", "C")
	require.NoError(t, err)
	assert.Contains(t, out, `"connections": []`)

	_, err = run(t, "--data", data, "node", "Z")
	assert.ErrorIs(t, err, graph.ErrNotFound)
}

func TestTypeCommand(t *testing.T) {
	data := writeFixture(t)

	out, err := run(t, "--data", data, "--json", "type", "company")
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, nodeIDs(t, out))

	out, err = run(t, "--data", data, "--json", "type", "lobbyist")
	require.NoError(t, err)
	assert.Equal(t, "[]\n", out)
}

func TestSearchCommand(t *testing.T) {
	data := writeFixture(t)

	out, err := run(t, "--data", data, "--json", "search", "politik")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, nodeIDs(t, out))

	_, err = run(t, "--data", data, "search", "")
	assert.ErrorIs(t, err, graph.ErrEmptyQuery)

	_, err = run(t, "--data", data, "search")
	assert.Error(t, err)
}

func TestPathCommand(t *testing.T) {
	data := writeFixture(t)

	out, err := run(t, "--data", data, "path", "A", "B")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "A -> B\n"), out)

	out, err = run(t, "--data", data, "--json", "path", "B", "A")
	require.NoError(t, err)
	var res struct {
		Path []string `json:"path"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, []string{"B", "A"}, res.Path)

	_, err = run(t, "--data", data, "path", "A", "C")
	assert.ErrorIs(t, err, graph.ErrNoPath)
}

func TestFilterCommand(t *testing.T) {
	data := writeFixture(t)

	out, err := run(t, "--data", data, "--json", "filter", "2019")
	require.NoError(t, err)
	assert.JSONEq(t, `{"nodes":[],"links":[]}`, out)

	out, err = run(t, "--data", data, "filter", "2020")
	require.NoError(t, err)
	assert.Contains(t, out, "2 nodes, 1 links")

	_, err = run(t, "--data", data, "filter", "next")
	assert.Error(t, err)
}

func TestStatsCommand(t *testing.T) {
	data := writeFixture(t)

	out, err := run(t, "--data", data, "--json", "stats")
	require.NoError(t, err)
	var stats graph.Stats
	require.NoError(t, json.Unmarshal([]byte(out), &stats))
	assert.Equal(t, 3, stats.Nodes)
	assert.Equal(t, 2, stats.Components)

	out, err = run(t, "--data", data, "--json", "stats", "--year", "2019")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &stats))
	assert.Equal(t, 0, stats.Nodes)

	out, err = run(t, "--data", data, "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "components: 2")
}

func TestScoresCommand(t *testing.T) {
	data := writeFixture(t)

	out, err := run(t, "--data", data, "--json", "scores")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "A"}, nodeIDs(t, out))

	out, err = run(t, "--data", data, "--json", "scores", "--min", "50")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, nodeIDs(t, out))

	_, err = run(t, "--data", data, "scores", "--min", "80", "--max", "10")
	assert.ErrorIs(t, err, graph.ErrInvalidRange)
}

func TestEmbeddedSample(t *testing.T) {
	out, err := run(t, "--json", "type", "politician")
	require.NoError(t, err)
	assert.Len(t, nodeIDs(t, out), 5)

	_, err = run(t, "--data", filepath.Join(t.TempDir(), "missing.json"), "stats")
	assert.Error(t, err)
}
