package main

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/lobbynetz/backend/pkg/common"
	"github.com/lobbynetz/backend/pkg/graph"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printNodes(w io.Writer, asJSON bool, nodes []common.Node) error {
	if asJSON {
		return writeJSON(w, nodes)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTYPE\tNAME\tDETAIL")
	for _, n := range nodes {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", n.ID, n.Type, n.Name, detail(n))
	}
	return tw.Flush()
}

func detail(n common.Node) string {
	var parts []string
	if n.Party != "" {
		parts = append(parts, n.Party)
	}
	if n.Industry != "" {
		parts = append(parts, n.Industry)
	}
	if n.Score != nil {
		parts = append(parts, fmt.Sprintf("score %g", *n.Score))
	}
	return strings.Join(parts, ", ")
}

func printLinks(w io.Writer, links []common.Link) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SOURCE\tTYPE\tTARGET\tACTIVE")
	for _, l := range links {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", l.Source, l.Type, l.Target, active(l))
	}
	return tw.Flush()
}

func active(l common.Link) string {
	if l.Since == "" && l.Until == "" {
		return ""
	}
	return fmt.Sprintf("%s..%s", l.Since, l.Until)
}

func printNode(w io.Writer, asJSON bool, node common.Node, connections []common.Link) error {
	if asJSON {
		return writeJSON(w, map[string]any{
			"node":        node,
			"connections": connections,
		})
	}

	if err := printNodes(w, false, []common.Node{node}); err != nil {
		return err
	}
	fmt.Fprintf(w, "\n%d connections\n", len(connections))
	if len(connections) == 0 {
		return nil
	}
	return printLinks(w, connections)
}

func printPath(w io.Writer, asJSON bool, path []string, details graph.PathDetails) error {
	if asJSON {
		return writeJSON(w, map[string]any{
			"path":        path,
			"pathDetails": details,
		})
	}

	fmt.Fprintln(w, strings.Join(path, " -> "))
	if len(details.Links) == 0 {
		return nil
	}
	return printLinks(w, details.Links)
}

func printNetwork(w io.Writer, asJSON bool, network common.Network) error {
	if asJSON {
		return writeJSON(w, network)
	}

	fmt.Fprintf(w, "%d nodes, %d links\n\n", len(network.Nodes), len(network.Links))
	if err := printNodes(w, false, network.Nodes); err != nil {
		return err
	}
	fmt.Fprintln(w)
	return printLinks(w, network.Links)
}

func printStats(w io.Writer, asJSON bool, stats graph.Stats) error {
	if asJSON {
		return writeJSON(w, stats)
	}

	fmt.Fprintf(w, "nodes: %d\nlinks: %d\ncomponents: %d\nisolated: %d\n",
		stats.Nodes, stats.Links, stats.Components, stats.Isolated)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "\nNODE TYPE\tCOUNT")
	for _, t := range slices.Sorted(maps.Keys(stats.NodesByType)) {
		fmt.Fprintf(tw, "%s\t%d\n", t, stats.NodesByType[t])
	}
	fmt.Fprintln(tw, "\nLINK TYPE\tCOUNT")
	for _, t := range slices.Sorted(maps.Keys(stats.LinksByType)) {
		fmt.Fprintf(tw, "%s\t%d\n", t, stats.LinksByType[t])
	}
	fmt.Fprintln(tw, "\nMOST CONNECTED\tDEGREE")
	for _, d := range stats.TopConnected {
		fmt.Fprintf(tw, "%s (%s)\t%d\n", d.Name, d.ID, d.Degree)
	}
	return tw.Flush()
}
