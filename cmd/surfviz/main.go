package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/surfviz/internal/config"
	"github.com/san-kum/surfviz/internal/export"
	"github.com/san-kum/surfviz/internal/formula"
	"github.com/san-kum/surfviz/internal/grid"
	"github.com/san-kum/surfviz/internal/pipeline"
	"github.com/san-kum/surfviz/internal/storage"
	"github.com/san-kum/surfviz/internal/tui"
	"github.com/san-kum/surfviz/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	formulaSrc string
	gridSize   int
	samples    int
	timeFactor float64
	zoom       float64
	rotX       float64
	rotY       float64
	rotZ       float64
	configFile string
	preset     string
	// render output
	svgPath   string
	svgScale  float64
	outWidth  int
	outHeight int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "surfviz",
		Short: "interactive 3d surface explorer",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run(buildParams(cmd))
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".surfviz", "data directory")
	rootCmd.PersistentFlags().StringVar(&formulaSrc, "formula", formula.Default, "surface formula z = f(X, Y, time_factor)")
	rootCmd.PersistentFlags().IntVar(&gridSize, "grid", config.DefaultGridSize, "grid size (2-100)")
	rootCmd.PersistentFlags().IntVar(&samples, "samples", 100, "spline samples per curve")
	rootCmd.PersistentFlags().Float64Var(&timeFactor, "time", 0, "time factor")
	rootCmd.PersistentFlags().Float64Var(&zoom, "zoom", config.DefaultZoom, "camera zoom (1-10)")
	rootCmd.PersistentFlags().Float64Var(&rotX, "rot-x", 0, "camera x rotation (degrees)")
	rootCmd.PersistentFlags().Float64Var(&rotY, "rot-y", 0, "camera y rotation (degrees)")
	rootCmd.PersistentFlags().Float64Var(&rotZ, "rot-z", 0, "camera z rotation (degrees)")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")

	evalCmd := &cobra.Command{
		Use:   "eval",
		Short: "evaluate the surface once and save the run",
		RunE:  evalSurface,
	}

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "render one frame to stdout or an svg file",
		RunE:  renderFrame,
	}
	renderCmd.Flags().StringVar(&svgPath, "svg", "", "write svg to file instead of stdout")
	renderCmd.Flags().Float64Var(&svgScale, "scale", 4.0, "svg dot scale")
	renderCmd.Flags().IntVar(&outWidth, "width", 60, "canvas width (cells)")
	renderCmd.Flags().IntVar(&outHeight, "height", 24, "canvas height (cells)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot height profiles of a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run data to CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return storage.New(dataDir).ExportCSV(args[0], os.Stdout)
		},
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return storage.New(dataDir).ExportJSON(args[0], os.Stdout)
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := config.ListPresets()
			sort.Strings(names)
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tGRID\tFORMULA")
			for _, name := range names {
				cfg := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%dx%d\t%s\n", name, cfg.GridSize, cfg.GridSize, cfg.Formula)
			}
			return w.Flush()
		},
	}

	rootCmd.AddCommand(evalCmd, renderCmd, listCmd, plotCmd, exportCSVCmd, exportJSONCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildParams resolves the effective parameters: config file first,
// then preset, then explicit flags on top.
func buildParams(cmd *cobra.Command) pipeline.Params {
	cfg := config.DefaultConfig()

	if configFile != "" {
		if loaded, err := config.Load(configFile); err == nil {
			cfg = loaded
		} else {
			fmt.Fprintf(os.Stderr, "config: %v (using defaults)\n", err)
		}
	}
	if preset != "" {
		if p := config.GetPreset(preset); p != nil {
			cfg = p
		} else {
			names := config.ListPresets()
			sort.Strings(names)
			fmt.Fprintf(os.Stderr, "unknown preset %q (available: %v)\n", preset, names)
		}
	}

	if cmd.Flags().Changed("formula") {
		cfg.Formula = formulaSrc
	}
	if cmd.Flags().Changed("grid") {
		cfg.GridSize = gridSize
	}
	if cmd.Flags().Changed("samples") {
		cfg.Samples = samples
	}
	if cmd.Flags().Changed("zoom") {
		cfg.Camera.Zoom = zoom
	}
	if cmd.Flags().Changed("rot-x") {
		cfg.Camera.RotX = rotX
	}
	if cmd.Flags().Changed("rot-y") {
		cfg.Camera.RotY = rotY
	}
	if cmd.Flags().Changed("rot-z") {
		cfg.Camera.RotZ = rotZ
	}
	cfg.Normalize()

	return pipeline.Params{
		Formula:    cfg.Formula,
		GridSize:   cfg.GridSize,
		Samples:    cfg.Samples,
		TimeFactor: timeFactor,
		Camera:     cfg.ToCamera(),
	}
}

func evalSurface(cmd *cobra.Command, args []string) error {
	p := buildParams(cmd)

	f, err := formula.Compile(p.Formula)
	if err != nil {
		return err
	}
	field, err := grid.Evaluate(f, p.GridSize, p.TimeFactor)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(p.Formula, field)
	if err != nil {
		return err
	}

	lo, hi := field.MinMax()
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("grid: %dx%d\n", field.N, field.N)
	fmt.Printf("height range: [%.4f, %.4f]\n", lo, hi)
	return nil
}

func renderFrame(cmd *cobra.Command, args []string) error {
	p := buildParams(cmd)

	frame, err := pipeline.Render(p)
	if err != nil {
		return err
	}

	canvas := viz.NewCanvas(outWidth, outHeight)
	viz.NewRenderer(canvas).Render(frame.Scene, frame.Camera)

	if svgPath != "" {
		svg := export.CanvasToSVG(canvas, svgScale)
		if err := os.WriteFile(svgPath, []byte(svg), 0644); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", svgPath)
		return nil
	}

	fmt.Println(canvas.String())
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
	fmt.Fprintln(w, "ID\tTIME\tGRID\tT\tRANGE\tFORMULA")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%dx%d\t%.1f\t[%.2f, %.2f]\t%s\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.GridSize, run.GridSize,
			run.TimeFactor,
			run.MinHeight, run.MaxHeight,
			run.Formula,
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
	field, err := st.LoadField(runID)
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("formula: %s\n", meta.Formula)
	fmt.Printf("grid: %dx%d\n\n", meta.GridSize, meta.GridSize)

	maxRows := 4
	step := field.N / maxRows
	if step < 1 {
		step = 1
	}
	for i := 0; i < field.N; i += step {
		data := make([]float64, field.N)
		for j := 0; j < field.N; j++ {
			data[j] = field.Z.At(i, j)
		}
		graph := asciigraph.Plot(data,
			asciigraph.Height(8),
			asciigraph.Width(70),
			asciigraph.Caption(fmt.Sprintf("z along row %d (y = %.2f)", i, field.Y.At(i, 0))),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	return nil
}
