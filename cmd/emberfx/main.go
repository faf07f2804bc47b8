package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/emberfx/internal/config"
	"github.com/san-kum/emberfx/internal/driver"
	"github.com/san-kum/emberfx/internal/emitter"
	"github.com/san-kum/emberfx/internal/export"
	"github.com/san-kum/emberfx/internal/metrics"
	"github.com/san-kum/emberfx/internal/storage"
	"github.com/san-kum/emberfx/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	dt         float64
	duration   float64
	seed       int64
	rate       float64
	capacity   int
	burst      int
	runs       int
	configFile string
	svgOut     string
	svgAt      float64
	svgStyle   string
	theme      string
)

// main registers commands and flags, launching the interactive preset
// picker when no subcommand is given.
func main() {
	rootCmd := &cobra.Command{
		Use:   "emberfx",
		Short: "3d particle emission engine",
		RunE: func(cmd *cobra.Command, args []string) error {
			return viz.RunInteractive()
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".emberfx", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [preset]",
		Short: "run an emitter headless and store the result",
		Args:  cobra.ExactArgs(1),
		RunE:  runHeadless,
	}
	runCmd.Flags().Float64Var(&dt, "dt", 0, "frame step in ms (0 = preset value)")
	runCmd.Flags().Float64Var(&duration, "time", 0, "run duration in ms (0 = preset value)")
	runCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = preset value)")
	runCmd.Flags().Float64Var(&rate, "rate", -1, "emission rate per second (-1 = preset value)")
	runCmd.Flags().IntVar(&capacity, "capacity", 0, "pool capacity (0 = preset value)")
	runCmd.Flags().IntVar(&burst, "burst", 0, "particles to emit on the first frame")
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml), overrides the preset")

	liveCmd := &cobra.Command{
		Use:   "live [preset]",
		Short: "run an emitter with live visualization",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	liveCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml), overrides the preset")
	liveCmd.Flags().StringVar(&theme, "theme", "", "color theme")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot stored run counters",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run frames to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run frames to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [preset]",
		Short: "render a preset to an SVG snapshot",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVarP(&svgOut, "out", "o", "snapshot.svg", "output file")
	exportSVGCmd.Flags().Float64Var(&svgAt, "at", 1000, "time in ms at which to take the snapshot")
	exportSVGCmd.Flags().StringVar(&svgStyle, "style", "scatter", "render style: scatter (X/Y plot) or canvas (projected braille view)")

	benchCmd := &cobra.Command{
		Use:   "bench [preset]",
		Short: "benchmark emitter throughput",
		Args:  cobra.ExactArgs(1),
		RunE:  benchPreset,
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep [preset]",
		Short: "run a preset across consecutive seeds and compare metrics",
		Args:  cobra.ExactArgs(1),
		RunE:  sweepSeeds,
	}
	sweepCmd.Flags().IntVar(&runs, "runs", 8, "number of seeds to sweep")
	sweepCmd.Flags().Int64Var(&seed, "seed", 1, "first seed")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tRATE\tCAPACITY\tDOMAIN\tAGE")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%.0f/s\t%d\t%s\t%.0f-%.0fms\n",
					p.Name, p.Rate, p.Capacity, p.Domain, p.Age.Min, p.Age.Max)
			}
			return w.Flush()
		},
	}

	validateCmd := &cobra.Command{
		Use:   "validate [file]",
		Short: "validate a config file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(args[0])
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			fmt.Printf("%s: ok\n", args[0])
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, liveCmd, listCmd, plotCmd, exportCmd, exportCSVCmd, exportJSONCmd, exportSVGCmd, benchCmd, sweepCmd, presetsCmd, validateCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveConfig loads the preset, applies an optional config file, then
// CLI flag overrides.
func resolveConfig(cmd *cobra.Command, preset string) (*config.Config, error) {
	cfg := config.GetPreset(preset)
	if cfg == nil {
		return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
	}
	resolved := *cfg

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		resolved = *loaded
	}

	if cmd.Flags().Changed("dt") && dt > 0 {
		resolved.Dt = dt
	}
	if cmd.Flags().Changed("time") && duration > 0 {
		resolved.Duration = duration
	}
	if cmd.Flags().Changed("seed") {
		resolved.Seed = seed
	}
	if cmd.Flags().Changed("rate") && rate >= 0 {
		resolved.Rate = rate
	}
	if cmd.Flags().Changed("capacity") && capacity > 0 {
		resolved.Capacity = capacity
	}

	if err := resolved.Validate(); err != nil {
		return nil, err
	}
	return &resolved, nil
}

func buildEmitter(cfg *config.Config) (*emitter.Emitter, error) {
	ec, err := cfg.ToEmitter()
	if err != nil {
		return nil, err
	}
	return emitter.New(ec)
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args[0])
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	em, err := buildEmitter(cfg)
	if err != nil {
		return err
	}

	d := driver.New(em)
	d.SetCaptureViews(false)
	d.AddMetric(metrics.NewPeakPopulation())
	d.AddMetric(metrics.NewMeanPopulation())
	d.AddMetric(metrics.NewSpawned())
	d.AddMetric(metrics.NewExpired())
	d.AddMetric(metrics.NewSaturation(cfg.Capacity))

	// Burst-only configurations (rate 0) get an initial burst so a plain
	// run still produces particles.
	b := burst
	if b == 0 && cfg.Rate == 0 {
		b = cfg.Capacity
	}

	fmt.Printf("running %s...\n", cfg.Name)
	start := time.Now()

	result, err := d.Run(context.Background(), driver.Config{Dt: cfg.Dt, Duration: cfg.Duration, Burst: b})
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	runID, err := st.Save(cfg.Name, cfg.Dt, cfg.Duration, cfg.Seed, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("frames: %d\n", len(result.Frames))
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.3f\n", name, val)
	}

	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args[0])
	if err != nil {
		return err
	}
	if theme != "" {
		viz.SetTheme(theme)
	}

	em, err := buildEmitter(cfg)
	if err != nil {
		return err
	}
	if cfg.Rate == 0 {
		em.Emit(cfg.Capacity)
	}

	m := viz.NewModel(em, cfg.Dt, cfg.Name)
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPRESET\tTIME\tDURATION\tDT\tSEED")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.0fms\t%.2fms\t%d\n",
			run.ID,
			run.Preset,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Duration,
			run.Dt,
			run.Seed,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	frames, err := st.LoadFrames(runID)
	if err != nil {
		return err
	}

	if len(frames) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("preset: %s\n", meta.Preset)
	fmt.Printf("frames: %d\n\n", len(frames))

	series := []struct {
		name string
		get  func(driver.Frame) float64
	}{
		{"live population", func(f driver.Frame) float64 { return float64(f.Live) }},
		{"total spawned", func(f driver.Frame) float64 { return float64(f.Spawned) }},
		{"total expired", func(f driver.Frame) float64 { return float64(f.Expired) }},
	}

	for _, s := range series {
		data := make([]float64, len(frames))
		for i, f := range frames {
			data[i] = s.get(f)
		}
		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(s.name),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	frames, err := st.LoadFrames(args[0])
	if err != nil {
		return err
	}

	if len(frames) == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"time", "live", "spawned", "expired"}); err != nil {
		return err
	}
	for _, f := range frames {
		row := []string{
			strconv.FormatFloat(f.Time, 'f', 3, 64),
			strconv.Itoa(f.Live),
			strconv.Itoa(f.Spawned),
			strconv.Itoa(f.Expired),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	frames, err := st.LoadFrames(args[0])
	if err != nil {
		return err
	}

	result := &driver.Result{Frames: frames, Metrics: meta.Metrics}
	return storage.ExportJSONStdout(meta.Preset, meta.Dt, meta.Duration, result)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	cfg := config.GetPreset(args[0])
	if cfg == nil {
		return fmt.Errorf("unknown preset: %s (available: %v)", args[0], config.ListPresets())
	}

	em, err := buildEmitter(cfg)
	if err != nil {
		return err
	}

	d := driver.New(em)
	b := 0
	if cfg.Rate == 0 {
		b = cfg.Capacity
	}
	result, err := d.Run(context.Background(), driver.Config{Dt: cfg.Dt, Duration: svgAt, Burst: b})
	if err != nil {
		return err
	}
	if len(result.Frames) == 0 {
		return fmt.Errorf("no frames rendered")
	}

	views := result.Frames[len(result.Frames)-1].Views
	if len(views) == 0 {
		return fmt.Errorf("no live particles at %.0fms", svgAt)
	}

	var svg string
	switch svgStyle {
	case "scatter":
		svg = export.ScatterSVG(views, 800, 600, "#ff6b35")
	case "canvas":
		canvas := viz.NewCanvas(100, 40)
		cam := viz.NewCamera()
		viz.RenderAxes(canvas, cam, 5)
		viz.RenderParticles(canvas, views, cam)
		svg = export.CanvasToSVG(canvas, 4, "#ff6b35")
	default:
		return fmt.Errorf("unknown style %q (want scatter or canvas)", svgStyle)
	}
	if err := os.WriteFile(svgOut, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%d particles)\n", svgOut, len(views))
	return nil
}

func sweepSeeds(cmd *cobra.Command, args []string) error {
	cfg := config.GetPreset(args[0])
	if cfg == nil {
		return fmt.Errorf("unknown preset: %s (available: %v)", args[0], config.ListPresets())
	}

	ec, err := cfg.ToEmitter()
	if err != nil {
		return err
	}

	mk := func() []driver.Metric {
		return []driver.Metric{
			metrics.NewPeakPopulation(),
			metrics.NewMeanPopulation(),
			metrics.NewSpawned(),
		}
	}

	ens := driver.NewEnsemble(ec, mk, runs, seed)
	results, err := ens.Run(context.Background(), driver.Config{Dt: cfg.Dt, Duration: cfg.Duration})
	if err != nil {
		return err
	}

	fmt.Printf("sweep %s: %d seeds from %d\n\n", cfg.Name, runs, seed)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SEED\tPEAK\tMEAN\tSPAWNED")
	for i, r := range results {
		fmt.Fprintf(w, "%d\t%.0f\t%.1f\t%.0f\n",
			seed+int64(i),
			r.Metrics["peak_population"],
			r.Metrics["mean_population"],
			r.Metrics["total_spawned"],
		)
	}
	return w.Flush()
}

func benchPreset(cmd *cobra.Command, args []string) error {
	cfg := config.GetPreset(args[0])
	if cfg == nil {
		return fmt.Errorf("unknown preset: %s (available: %v)", args[0], config.ListPresets())
	}

	durations := []float64{1000, 5000, 10000}
	dts := []float64{1, 1000.0 / 60, 100}

	fmt.Printf("benchmarking %s\n\n", cfg.Name)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DURATION\tDT\tFRAMES\tTIME\tFRAMES/SEC")

	for _, dur := range durations {
		for _, step := range dts {
			em, err := buildEmitter(cfg)
			if err != nil {
				return err
			}
			d := driver.New(em)
			d.SetCaptureViews(false)

			start := time.Now()
			result, err := d.Run(context.Background(), driver.Config{Dt: step, Duration: dur})
			if err != nil {
				return err
			}
			elapsed := time.Since(start)

			frames := len(result.Frames)
			framesPerSec := float64(frames) / elapsed.Seconds()

			fmt.Fprintf(w, "%.0fms\t%.2fms\t%d\t%v\t%.0f\n",
				dur, step, frames, elapsed, framesPerSec)
		}
	}

	return w.Flush()
}
