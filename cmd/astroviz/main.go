package main

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/log"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/astroviz/internal/config"
	"github.com/san-kum/astroviz/internal/render"
	"github.com/san-kum/astroviz/internal/storage"
	"github.com/san-kum/astroviz/internal/units"
	"github.com/san-kum/astroviz/internal/viz"
)

var (
	dataDir string
	verbose bool

	// scale flags
	system     string
	lengthIn   string
	massIn     string
	timeIn     string
	densityIn  string
	velocityIn string
	mu         float64
	preset     string
	configFile string
	asJSON     bool
	save       bool

	// display flags
	colormap  string
	vminIn    string
	vmaxIn    string
	titles    []string
	renderOut string

	// profile flags
	panelIdx   int
	rowIdx     int
	colIdx     int
	profileOut string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "astroviz",
		Short: "code-unit scaling and field display for simulation analysis",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".astroviz", "data directory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	scaleCmd := &cobra.Command{
		Use:   "scale",
		Short: "derive a code-unit scaling from three base scales",
		RunE:  runScale,
	}
	scaleCmd.Flags().StringVar(&system, "system", config.DefaultSystem, "unit system (cgs, mks, si)")
	scaleCmd.Flags().StringVar(&lengthIn, "length", "", "length scale (number or pc)")
	scaleCmd.Flags().StringVar(&massIn, "mass", "", "mass scale (number, Solar or m_Sun)")
	scaleCmd.Flags().StringVar(&timeIn, "time", "", "time scale (number, yr, kyr or Myr)")
	scaleCmd.Flags().StringVar(&densityIn, "density", "", "density scale (number)")
	scaleCmd.Flags().StringVar(&velocityIn, "velocity", "", "velocity scale (number or kms)")
	scaleCmd.Flags().Float64Var(&mu, "mu", config.DefaultMu, "mean molecular weight")
	scaleCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	scaleCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	scaleCmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")
	scaleCmd.Flags().BoolVar(&save, "save", false, "save the result to the data directory")

	tablesCmd := &cobra.Command{
		Use:   "tables [system]",
		Short: "print a physical constants table",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runTables,
	}

	renderCmd := &cobra.Command{
		Use:   "render [input]",
		Short: "render a field or stack to a PNG montage",
		Args:  cobra.ExactArgs(1),
		RunE:  runRender,
	}
	renderCmd.Flags().StringVar(&colormap, "cmap", config.DefaultColormap, "colormap")
	renderCmd.Flags().StringVar(&vminIn, "vmin", "", "lower bound of the value range")
	renderCmd.Flags().StringVar(&vmaxIn, "vmax", "", "upper bound of the value range")
	renderCmd.Flags().StringArrayVar(&titles, "title", nil, "panel title (repeat for per-panel titles)")
	renderCmd.Flags().StringVarP(&renderOut, "output", "o", "out.png", "output file")

	profileCmd := &cobra.Command{
		Use:   "profile [input]",
		Short: "plot a 1D slice through a field",
		Args:  cobra.ExactArgs(1),
		RunE:  runProfile,
	}
	profileCmd.Flags().IntVar(&panelIdx, "panel", 0, "panel index for stacks")
	profileCmd.Flags().IntVar(&rowIdx, "row", -1, "profile along x at this height")
	profileCmd.Flags().IntVar(&colIdx, "col", -1, "profile along y at this position")
	profileCmd.Flags().StringVarP(&profileOut, "output", "o", "", "write a PNG chart instead of a terminal plot")

	viewCmd := &cobra.Command{
		Use:   "view [input]",
		Short: "browse a field or stack interactively",
		Args:  cobra.ExactArgs(1),
		RunE:  runView,
	}
	viewCmd.Flags().StringVar(&colormap, "cmap", config.DefaultColormap, "colormap")
	viewCmd.Flags().StringArrayVar(&titles, "title", nil, "panel title (repeat for per-panel titles)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved scalings",
		RunE:  listScalings,
	}

	exportCmd := &cobra.Command{
		Use:   "export [id]",
		Short: "export a saved scaling as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportScaling,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list scaling presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Printf("  %-12s %s  l=%s m=%s t=%s D=%s v=%s\n", name, p.System,
					orDash(p.Scales.Length), orDash(p.Scales.Mass), orDash(p.Scales.Time),
					orDash(p.Scales.Density), orDash(p.Scales.Velocity))
			}
			return nil
		},
	}

	rootCmd.AddCommand(scaleCmd, tablesCmd, renderCmd, profileCmd, viewCmd, listCmd, exportCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newLogger builds the CLI logger; --verbose lowers the level to debug.
func newLogger() *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func runScale(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	cfg := config.DefaultConfig()
	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	// CLI flags override preset and config values.
	if !cmd.Flags().Changed("system") && cfg.System != "" {
		system = cfg.System
	}
	if !cmd.Flags().Changed("mu") && cfg.Mu != 0 {
		mu = cfg.Mu
	}
	if !cmd.Flags().Changed("length") {
		lengthIn = cfg.Scales.Length
	}
	if !cmd.Flags().Changed("mass") {
		massIn = cfg.Scales.Mass
	}
	if !cmd.Flags().Changed("time") {
		timeIn = cfg.Scales.Time
	}
	if !cmd.Flags().Changed("density") {
		densityIn = cfg.Scales.Density
	}
	if !cmd.Flags().Changed("velocity") {
		velocityIn = cfg.Scales.Velocity
	}

	s, err := units.DeriveSystem(system, units.Params{
		Length:   units.ParseQuantity(lengthIn),
		Mass:     units.ParseQuantity(massIn),
		Time:     units.ParseQuantity(timeIn),
		Density:  units.ParseQuantity(densityIn),
		Velocity: units.ParseQuantity(velocityIn),
		Mu:       mu,
		Logger:   logger,
	})
	if err != nil {
		return err
	}

	if save {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		id, err := st.SaveScaling(s)
		if err != nil {
			return err
		}
		logger.Info("scaling saved", "id", id)
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(storage.NewRecord(s))
	}

	printScaling(s)
	return nil
}

func printScaling(s *units.Scaling) {
	fmt.Printf("system: %s\nmu: %g\n\n", s.System.Name, s.Mu)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SCALE\tVALUE")
	fmt.Fprintf(w, "length\t%.6e\n", s.Length)
	fmt.Fprintf(w, "mass\t%.6e\n", s.Mass)
	fmt.Fprintf(w, "time\t%.6e\n", s.Time)
	fmt.Fprintf(w, "density\t%.6e\n", s.Density)
	fmt.Fprintf(w, "velocity\t%.6e\n", s.Velocity)
	fmt.Fprintf(w, "pressure\t%.6e\n", s.Pressure)
	fmt.Fprintf(w, "energy\t%.6e\n", s.Energy)
	fmt.Fprintf(w, "energy density\t%.6e\n", s.EnergyDensity)
	fmt.Fprintf(w, "temperature\t%.6e\n", s.Temperature)
	fmt.Fprintln(w, "\t")
	fmt.Fprintln(w, "CONSTANT\tCODE UNITS")
	fmt.Fprintf(w, "G\t%.6e\n", s.G)
	fmt.Fprintf(w, "Stefan\t%.6e\n", s.Stefan)
	fmt.Fprintf(w, "h_P\t%.6e\n", s.Planck)
	fmt.Fprintf(w, "k_B\t%.6e\n", s.Boltzmann)
	fmt.Fprintf(w, "c\t%.6e\n", s.LightSpeed)
	fmt.Fprintf(w, "m_u\t%.6e\n", s.AtomicMass)
	w.Flush()
}

func runTables(cmd *cobra.Command, args []string) error {
	names := units.Names()
	if len(args) == 1 {
		names = []string{args[0]}
	}

	for _, name := range names {
		t, err := units.Table(name)
		if err != nil {
			return err
		}

		fmt.Printf("%s\n", t.Name)
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  m_Earth\t%.6e\n", t.MEarth)
		fmt.Fprintf(w, "  m_Sun\t%.6e\n", t.MSun)
		fmt.Fprintf(w, "  r_Earth\t%.6e\n", t.REarth)
		fmt.Fprintf(w, "  G\t%.6e\n", t.G)
		fmt.Fprintf(w, "  yr\t%.6e\n", t.Year)
		fmt.Fprintf(w, "  au\t%.6e\n", t.AU)
		fmt.Fprintf(w, "  m_u\t%.6e\n", t.AtomicMass)
		fmt.Fprintf(w, "  k_B\t%.6e\n", t.Boltzmann)
		fmt.Fprintf(w, "  h_P\t%.6e\n", t.Planck)
		fmt.Fprintf(w, "  e\t%.6e\n", t.Charge)
		fmt.Fprintf(w, "  c\t%.6e\n", t.LightSpeed)
		fmt.Fprintf(w, "  Stefan\t%.6e\n", t.Stefan)
		fmt.Fprintf(w, "  pc\t%.6e\n", t.Parsec)
		fmt.Fprintf(w, "  kms\t%.6e\n", t.KmPerSec)
		w.Flush()
		fmt.Println()
	}
	return nil
}

func parseBound(s string) (float64, error) {
	if s == "" {
		return math.NaN(), nil
	}
	return strconv.ParseFloat(s, 64)
}

func displayOptions() (render.Options, error) {
	opts := render.DefaultOptions()
	opts.Colormap = colormap

	var err error
	if opts.VMin, err = parseBound(vminIn); err != nil {
		return opts, fmt.Errorf("invalid vmin: %w", err)
	}
	if opts.VMax, err = parseBound(vmaxIn); err != nil {
		return opts, fmt.Errorf("invalid vmax: %w", err)
	}
	return opts, nil
}

func runRender(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	stack, err := storage.LoadFields(args[0])
	if err != nil {
		return err
	}
	logger.Debug("loaded fields", "panels", len(stack), "nx", stack[0].Nx, "ny", stack[0].Ny)

	opts, err := displayOptions()
	if err != nil {
		return err
	}

	img, err := render.Montage(stack, titles, opts)
	if err != nil {
		return err
	}

	if err := storage.SavePNG(renderOut, img); err != nil {
		return err
	}
	logger.Info("montage written", "path", renderOut, "panels", len(stack))
	return nil
}

func runProfile(cmd *cobra.Command, args []string) error {
	stack, err := storage.LoadFields(args[0])
	if err != nil {
		return err
	}
	if panelIdx < 0 || panelIdx >= len(stack) {
		return fmt.Errorf("panel %d out of range (stack has %d)", panelIdx, len(stack))
	}
	f := stack[panelIdx]

	axis, index := render.AxisX, rowIdx
	switch {
	case rowIdx >= 0 && colIdx >= 0:
		return fmt.Errorf("use either --row or --col, not both")
	case colIdx >= 0:
		axis, index = render.AxisY, colIdx
	case rowIdx < 0:
		index = 0
	}

	title := strings.TrimSuffix(args[0], ".json")
	title = strings.TrimSuffix(title, ".csv")
	if len(titles) > 0 {
		title = titles[0]
	}

	if profileOut != "" {
		file, err := os.Create(profileOut)
		if err != nil {
			return err
		}
		defer file.Close()
		return render.ProfileChart(file, f, axis, index, title)
	}

	values, err := render.Profile(f, axis, index)
	if err != nil {
		return err
	}
	graph := asciigraph.Plot(values,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("%s (%s profile at %d)", title, axis, index)),
	)
	fmt.Println(graph)
	return nil
}

func runView(cmd *cobra.Command, args []string) error {
	stack, err := storage.LoadFields(args[0])
	if err != nil {
		return err
	}
	return viz.Run(stack, titles, colormap)
}

func listScalings(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	recs, err := st.List()
	if err != nil {
		return err
	}

	if len(recs) == 0 {
		fmt.Println("no scalings found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSYSTEM\tTIME\tLENGTH\tMASS\tVELOCITY")
	for _, rec := range recs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.4e\t%.4e\t%.4e\n",
			rec.ID,
			rec.System,
			rec.Timestamp.Format("2006-01-02 15:04:05"),
			rec.Length,
			rec.Mass,
			rec.Velocity,
		)
	}
	return w.Flush()
}

func exportScaling(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	rec, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(rec)
}
