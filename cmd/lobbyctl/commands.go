package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/lobbynetz/backend/data"
	"github.com/lobbynetz/backend/pkg/graph"
	"github.com/lobbynetz/backend/pkg/loader"
	lio "github.com/lobbynetz/backend/pkg/loader/io"
	"github.com/lobbynetz/backend/pkg/logger"
	"github.com/lobbynetz/backend/pkg/logger/console"

	"github.com/spf13/cobra"
)

type options struct {
	dataPath string
	json     bool
	debug    bool

	year     int
	minScore float64
	maxScore float64
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "lobbyctl",
		Short: "Query a lobby network dataset from the command line",
		Long: `lobbyctl answers the same questions as the HTTP API against a local
dataset file, or the embedded sample when --data is not given.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.Init(console.NewConsoleLogger(console.ConsoleLoggerParams{
				Debug:  opts.debug,
				Output: cmd.ErrOrStderr(),
			}))
		},
	}
	rootCmd.PersistentFlags().StringVar(&opts.dataPath, "data", "", "dataset file (.json, .yaml); embedded sample when empty")
	rootCmd.PersistentFlags().BoolVar(&opts.json, "json", false, "print results as JSON")
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging")

	nodeCmd := &cobra.Command{
		Use:   "node ID",
		Short: "Show a node and its connections",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := opts.load(cmd.Context())
			if err != nil {
				return err
			}
			node, err := g.FindNode(args[0])
			if err != nil {
				return fmt.Errorf("node %q: %w", args[0], err)
			}
			connections, err := g.ConnectionsOf(args[0])
			if err != nil {
				return err
			}
			return printNode(cmd.OutOrStdout(), opts.json, node, connections)
		},
	}

	typeCmd := &cobra.Command{
		Use:   "type TYPE",
		Short: "List the nodes of a type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := opts.load(cmd.Context())
			if err != nil {
				return err
			}
			return printNodes(cmd.OutOrStdout(), opts.json, g.FindByType(args[0]))
		},
	}

	searchCmd := &cobra.Command{
		Use:   "search TERM",
		Short: "Find nodes by name, party or industry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := opts.load(cmd.Context())
			if err != nil {
				return err
			}
			res, err := g.Search(args[0])
			if err != nil {
				return err
			}
			return printNodes(cmd.OutOrStdout(), opts.json, res)
		},
	}

	pathCmd := &cobra.Command{
		Use:   "path SOURCE TARGET",
		Short: "Find the shortest connection between two nodes",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := opts.load(cmd.Context())
			if err != nil {
				return err
			}
			path, err := g.ShortestPath(args[0], args[1])
			if err != nil {
				return fmt.Errorf("%s to %s: %w", args[0], args[1], err)
			}
			return printPath(cmd.OutOrStdout(), opts.json, path, g.ResolvePath(path))
		},
	}

	filterCmd := &cobra.Command{
		Use:   "filter YEAR",
		Short: "Show the part of the network active in a year",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := parseYear(args[0])
			if err != nil {
				return err
			}
			g, err := opts.load(cmd.Context())
			if err != nil {
				return err
			}
			return printNetwork(cmd.OutOrStdout(), opts.json, g.InYear(year).Network())
		},
	}

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Summarize the network",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := opts.load(cmd.Context())
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("year") {
				if opts.year < 0 || opts.year > 9999 {
					return fmt.Errorf("year %d out of range", opts.year)
				}
				g = g.InYear(opts.year)
			}
			return printStats(cmd.OutOrStdout(), opts.json, g.Stats())
		},
	}
	statsCmd.Flags().IntVar(&opts.year, "year", 0, "only count links active in this year")

	scoresCmd := &cobra.Command{
		Use:   "scores",
		Short: "List nodes with a score in a range, lowest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := opts.load(cmd.Context())
			if err != nil {
				return err
			}
			res, err := g.ScoreRange(opts.minScore, opts.maxScore)
			if err != nil {
				return err
			}
			return printNodes(cmd.OutOrStdout(), opts.json, res)
		},
	}
	scoresCmd.Flags().Float64Var(&opts.minScore, "min", 0, "lowest score")
	scoresCmd.Flags().Float64Var(&opts.maxScore, "max", 100, "highest score")

	rootCmd.AddCommand(nodeCmd, typeCmd, searchCmd, pathCmd, filterCmd, statsCmd, scoresCmd)
	return rootCmd
}

func (o *options) load(ctx context.Context) (*graph.Graph, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	file := loader.NewDatasetFile(data.SampleFile, lio.NewFSDatasetLoader(data.FS))
	if o.dataPath != "" {
		file = loader.NewDatasetFile(o.dataPath, lio.NewIODatasetLoader())
	}

	network, err := loader.Load(ctx, file)
	if err != nil {
		return nil, err
	}
	logger.Debug("Dataset loaded", "path", file.Path, "nodes", len(network.Nodes), "links", len(network.Links))
	return graph.New(network), nil
}

func parseYear(value string) (int, error) {
	year, err := strconv.Atoi(value)
	if err != nil || year < 0 || year > 9999 {
		return 0, fmt.Errorf("invalid year %q", value)
	}
	return year, nil
}
