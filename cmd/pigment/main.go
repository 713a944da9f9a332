// Package main is the entry point for the pigment CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/darkawower/pigment/internal/config"
	"github.com/darkawower/pigment/internal/extractor"
	"github.com/darkawower/pigment/internal/palette"
	"github.com/darkawower/pigment/internal/source"
	"github.com/darkawower/pigment/internal/theme"
	"github.com/darkawower/pigment/internal/ui"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile string
	verbose bool
	quiet   bool
	noColor bool

	// Global output
	out *ui.Output
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "pigment",
		Short: "Extract color palettes from images",
		Long: `Pigment extracts the dominant colors of an image by clustering
its pixels in RGB space. It reports every color with its share of the
image population and can order, deduplicate, and format the result.`,
	}

	// Persistent flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/.config/pigment/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-error output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	// Add commands
	rootCmd.AddCommand(
		newExtractCmd(),
		newDominantCmd(),
		newInitCmd(),
		newVersionCmd(),
	)

	// Handle signals
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// initOutput initializes the output.
func initOutput() {
	out = ui.DefaultOutput()
	out.SetVerbose(verbose)
	out.SetQuiet(quiet)
	if noColor {
		out.SetNoColor(true)
	}
}

// loadConfig loads the config and applies flag overrides from cmd.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("sort") {
		v, _ := flags.GetString("sort")
		cfg.Output.Sort = config.SortMode(v)
	}
	if flags.Changed("format") {
		v, _ := flags.GetString("format")
		cfg.Output.Format = config.OutputFormat(v)
	}
	if flags.Changed("dedup") {
		cfg.Output.DedupThreshold, _ = flags.GetFloat64("dedup")
	}
	if flags.Changed("seed") {
		cfg.Clustering.Seed, _ = flags.GetInt64("seed")
	}
	if flags.Changed("max-iterations") {
		cfg.Clustering.MaxIterations, _ = flags.GetInt("max-iterations")
	}
	if flags.Changed("convergence") {
		cfg.Clustering.Convergence, _ = flags.GetFloat64("convergence")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// runExtraction loads the image behind ref and extracts a count-color palette.
func runExtraction(ctx context.Context, cfg *config.Config, ref string, count int) (palette.Palette, error) {
	img, err := source.Load(ctx, ref)
	if err != nil {
		return palette.Palette{}, err
	}

	ext := extractor.New(
		extractor.WithMaxIterations(cfg.Clustering.MaxIterations),
		extractor.WithConvergence(cfg.Clustering.Convergence),
		extractor.WithSeed(cfg.Clustering.Seed),
		extractor.WithVerbose(verbose),
	)

	return ext.FromImage(img, count)
}

// newExtractCmd creates the extract command.
func newExtractCmd() *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "extract <path|url>",
		Short: "Extract a color palette from an image",
		Long: `Extracts the dominant colors of an image file or URL using k-means
clustering and prints them with their share of the pixel population.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			initOutput()

			cfg, err := loadConfig(cmd)
			if err != nil {
				out.ErrorWithHint(err.Error(), "Run 'pigment init --force' to restore a default configuration")
				return err
			}

			if count < 1 {
				out.Error("Number of colors must be at least 1, got %d", count)
				return fmt.Errorf("invalid color count: %d", count)
			}

			spinner := ui.NewSpinner(out, "Extracting palette...")
			spinner.Start()
			pal, err := runExtraction(cmd.Context(), cfg, args[0], count)
			spinner.Stop()

			if err != nil {
				out.Error("Failed to extract palette: %v", err)
				return err
			}

			entries := prepareEntries(pal.Entries, cfg.Output.Sort, cfg.Output.DedupThreshold)

			out.Print("")
			printEntries(entries, cfg.Output.Format)
			out.Print("")
			out.Field("Theme", theme.Classify(pal).String())
			out.Debug("palette lightness: %.1f", theme.Lightness(pal))

			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "colors", "n", 5, "number of colors to extract")
	cmd.Flags().String("sort", "", "order entries (none|luminance|share)")
	cmd.Flags().String("format", "", "output format (swatch|hex|rgb)")
	cmd.Flags().Float64("dedup", 0, "drop colors closer than this distance to an earlier one")
	cmd.Flags().Int64("seed", 0, "clustering random seed")
	cmd.Flags().Int("max-iterations", 0, "maximum clustering iterations")
	cmd.Flags().Float64("convergence", 0, "total centroid movement below which clustering stops")

	return cmd
}

// newDominantCmd creates the dominant command.
func newDominantCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dominant <path|url>",
		Short: "Show the single dominant color of an image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			initOutput()

			cfg, err := loadConfig(cmd)
			if err != nil {
				out.ErrorWithHint(err.Error(), "Run 'pigment init --force' to restore a default configuration")
				return err
			}

			pal, err := runExtraction(cmd.Context(), cfg, args[0], 1)
			if err != nil {
				out.Error("Failed to extract dominant color: %v", err)
				return err
			}
			if pal.Len() == 0 {
				out.Error("No dominant color extracted")
				return fmt.Errorf("empty palette")
			}

			c := pal.Entries[0].Color
			out.Print("")
			out.Swatch(c.R, c.G, c.B, c.Hex(), pal.Entries[0].Percentage)
			out.Field("Hex", c.Hex())
			out.Field("RGB", c.RGBString())

			return nil
		},
	}

	cmd.Flags().Int64("seed", 0, "clustering random seed")
	cmd.Flags().Int("max-iterations", 0, "maximum clustering iterations")
	cmd.Flags().Float64("convergence", 0, "total centroid movement below which clustering stops")

	return cmd
}

// newInitCmd creates the init command.
func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize pigment configuration",
		Long:  "Creates the default configuration file.",
		RunE: func(cmd *cobra.Command, args []string) error {
			initOutput()

			configPath := filepath.Join(config.DefaultConfigDir(), "config.toml")

			if _, err := os.Stat(configPath); err == nil && !force {
				out.Warning("Configuration already exists at %s", configPath)
				out.Info("Use --force to overwrite")
				return nil
			}

			cfg := config.DefaultConfig()
			if err := cfg.Save(configPath); err != nil {
				out.Error("Failed to write config: %v", err)
				return err
			}

			out.Success("Pigment initialized")
			out.Field("Config", configPath)

			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration")

	return cmd
}

// newVersionCmd creates the version command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			initOutput()
			out.Print("pigment version 0.1.0")
		},
	}
}
