package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	good = color.New(color.FgGreen)
	bad  = color.New(color.FgRed)
)

var configPath string

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "arrowpad",
		Short:         "Draw node and arrow diagrams in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			closeLog, err := setupLogging()
			if err != nil {
				bad.Fprintf(os.Stderr, "arrowpad: %v\n", err)
				return err
			}
			defer closeLog()

			p := tea.NewProgram(
				newModel(resolveConfig()),
				tea.WithAltScreen(),
				tea.WithMouseCellMotion(),
			)
			if _, err := p.Run(); err != nil {
				bad.Fprintf(os.Stderr, "arrowpad: %v\n", err)
				return err
			}
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/"+configFileName+")")
	cmd.AddCommand(exportCmd())
	return cmd
}

func exportCmd() *cobra.Command {
	var (
		output    string
		nodes     []string
		edges     []string
		highlight int
		noLabels  bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render a diagram described by flags to PNG",
		Example: "  arrowpad export -o pair.png --node 0,0 --node 100,0 --edge 0:1 --edge 1:0\n" +
			"  arrowpad export -o loop.png --node 50,80 --edge 0:0",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := resolveConfig()
			g, err := buildGraph(nodes, edges, cfg)
			if err != nil {
				bad.Fprintf(os.Stderr, "  %v\n", err)
				return err
			}

			r := NewRenderer()
			cfg.Apply(r)
			if err := ExportPNG(output, g, r, highlight, cfg.ShowLabels && !noLabels); err != nil {
				bad.Fprintf(os.Stderr, "  Export failed: %v\n", err)
				return err
			}
			good.Printf("  Saved %s (%d nodes)\n", output, g.Len())
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "arrowpad.png", "PNG file to write")
	cmd.Flags().StringArrayVar(&nodes, "node", nil, "node center as x,y (IDs are assigned from 0 in flag order)")
	cmd.Flags().StringArrayVar(&edges, "edge", nil, "connection as from:to")
	cmd.Flags().IntVar(&highlight, "highlight", NoNode, "node ID to draw as selected")
	cmd.Flags().BoolVar(&noLabels, "no-labels", false, "omit node ID labels")
	return cmd
}

func resolveConfig() *Config {
	if configPath == "" {
		return loadConfig()
	}
	cfg, err := loadConfigFile(configPath)
	if err != nil {
		bad.Fprintf(os.Stderr, "  %v, using defaults\n", err)
		return defaultConfig()
	}
	return cfg
}

// setupLogging sends log output to a file when ARROWPAD_DEBUG is set and
// discards it otherwise; the terminal belongs to the UI.
func setupLogging() (func(), error) {
	path := os.Getenv("ARROWPAD_DEBUG")
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	if path == "1" || strings.EqualFold(path, "true") {
		path = "arrowpad-debug.log"
	}
	f, err := tea.LogToFile(path, "arrowpad")
	if err != nil {
		return nil, fmt.Errorf("open debug log: %w", err)
	}
	log.SetFlags(log.LstdFlags | log.Lshortfile | log.Lmicroseconds)
	return func() { f.Close() }, nil
}

func buildGraph(nodes, edges []string, cfg *Config) (*Graph, error) {
	g := NewGraph()
	for _, spec := range nodes {
		p, err := parsePoint(spec)
		if err != nil {
			return nil, err
		}
		g.AddNode(p, cfg.NodeRadius, cfg.nodeColor())
	}
	for _, spec := range edges {
		from, to, err := parseEdge(spec)
		if err != nil {
			return nil, err
		}
		if _, ok := g.Node(to); !ok {
			return nil, fmt.Errorf("edge %q: target %d: %w", spec, to, ErrNotFound)
		}
		if err := g.AddConnection(from, to); err != nil {
			return nil, fmt.Errorf("edge %q: %w", spec, err)
		}
	}
	return g, nil
}

func parsePoint(s string) (Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Point{}, fmt.Errorf("invalid node %q: want x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return Point{}, fmt.Errorf("invalid node %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return Point{}, fmt.Errorf("invalid node %q: %w", s, err)
	}
	return Point{x, y}, nil
}

func parseEdge(s string) (from, to int, err error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid edge %q: want from:to", s)
	}
	if from, err = strconv.Atoi(strings.TrimSpace(parts[0])); err != nil {
		return 0, 0, fmt.Errorf("invalid edge %q: %w", s, err)
	}
	if to, err = strconv.Atoi(strings.TrimSpace(parts[1])); err != nil {
		return 0, 0, fmt.Errorf("invalid edge %q: %w", s, err)
	}
	return from, to, nil
}
