package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/bitraster/internal/analysis"
	"github.com/san-kum/bitraster/internal/config"
	"github.com/san-kum/bitraster/internal/stream"
	"github.com/san-kum/bitraster/internal/tui"
	"github.com/san-kum/bitraster/internal/viewport"
)

var (
	widthBits  int
	offset     int64
	delayMS    int
	reverse    bool
	configFile string
	// analyze flags
	buckets     int
	graphHeight int
	asCSV       bool
	asJSON      bool
)

// main registers the bitraster commands: the root opens the viewer on a
// file (or streams stdin when no path is given), with subcommands for
// explicit stream mode, automaton mode, and density analysis.
func main() {
	rootCmd := &cobra.Command{
		Use:   "bitraster [path]",
		Short: "inspect binary files bit-by-bit as a sextant raster",
		Long: `bitraster renders binary data as a dense black/white raster using
Unicode sextant glyphs, packing 6 bits into every terminal cell. With a
path it opens a scrollable viewer over the file; without one it streams
stdin one rendered line per tick.

Viewer keys: h/j/k/l or arrows scroll, PgUp/PgDn page, Home/End jump,
i shows offsets, r runs Conway's Game of Life over the visible bits,
q or Esc quits.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return runStream(cmd)
			}
			return runView(cmd, args[0], false)
		},
	}
	rootCmd.PersistentFlags().IntVarP(&widthBits, "width", "w", 0, "row width in bits, multiple of 8 (0 = fit terminal)")
	rootCmd.PersistentFlags().Int64VarP(&offset, "offset", "o", 0, "initial byte offset into the file")
	rootCmd.PersistentFlags().IntVarP(&delayMS, "delay", "d", config.DefaultDelayMS, "delay between automatic updates (ms)")
	rootCmd.PersistentFlags().BoolVarP(&reverse, "reverse", "r", false, "read bits least-significant first")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")

	streamCmd := &cobra.Command{
		Use:   "stream",
		Short: "render stdin one glyph line per tick",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStream(cmd)
		},
	}

	lifeCmd := &cobra.Command{
		Use:   "life [path]",
		Short: "open the viewer with the automaton already running",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(cmd, args[0], true)
		},
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [path]",
		Short: "plot the set-bit density profile of a file",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeFile,
	}
	analyzeCmd.Flags().IntVar(&buckets, "buckets", 64, "number of density samples")
	analyzeCmd.Flags().IntVar(&graphHeight, "height", 10, "plot height in rows")
	analyzeCmd.Flags().BoolVar(&asCSV, "csv", false, "write samples as CSV instead of plotting")
	analyzeCmd.Flags().BoolVar(&asJSON, "json", false, "write samples as JSON instead of plotting")

	rootCmd.AddCommand(streamCmd, lifeCmd, analyzeCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadSettings merges the config file (if any) with CLI flags; flags the
// user explicitly set win.
func loadSettings(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if cmd.Flags().Changed("width") {
		cfg.WidthBits = widthBits
	}
	if cmd.Flags().Changed("offset") {
		cfg.Offset = offset
	}
	if cmd.Flags().Changed("delay") {
		cfg.DelayMS = delayMS
	}
	if cmd.Flags().Changed("reverse") {
		if reverse {
			cfg.BitOrder = "lsb"
		} else {
			cfg.BitOrder = "msb"
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runView(cmd *cobra.Command, path string, startLife bool) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	order, err := cfg.Order()
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	src, err := viewport.NewFileSource(f)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}

	vp := viewport.New(src, viewport.Options{
		WidthBits: cfg.WidthBits,
		Offset:    cfg.Offset,
		Order:     order,
	})
	if startLife {
		vp.ToggleLife()
	}

	return tui.Run(vp, time.Duration(cfg.DelayMS)*time.Millisecond)
}

func runStream(cmd *cobra.Command) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	order, err := cfg.Order()
	if err != nil {
		return err
	}

	s := &stream.Streamer{
		In:        os.Stdin,
		Out:       os.Stdout,
		WidthBits: cfg.WidthBits,
		Order:     order,
		Delay:     time.Duration(cfg.DelayMS) * time.Millisecond,
	}
	return s.Run()
}

func analyzeFile(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	samples := analysis.Density(data, buckets)
	if len(samples) == 0 {
		return fmt.Errorf("no data to analyze")
	}

	switch {
	case asCSV:
		w := csv.NewWriter(os.Stdout)
		defer w.Flush()
		if err := w.Write([]string{"bucket", "density"}); err != nil {
			return err
		}
		for i, d := range samples {
			row := []string{strconv.Itoa(i), strconv.FormatFloat(d, 'f', 6, 64)}
			if err := w.Write(row); err != nil {
				return err
			}
		}
		return nil

	case asJSON:
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Path    string    `json:"path"`
			Bytes   int       `json:"bytes"`
			SetBits int       `json:"set_bits"`
			Density []float64 `json:"density"`
		}{args[0], len(data), analysis.PopCount(data), samples})
	}

	fmt.Printf("%s: %d bytes, %d set bits\n\n", args[0], len(data), analysis.PopCount(data))
	graph := asciigraph.Plot(samples,
		asciigraph.Height(graphHeight),
		asciigraph.Width(80),
		asciigraph.Caption("set-bit density"),
	)
	fmt.Println(graph)
	return nil
}
