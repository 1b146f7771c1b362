package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/venturesim/internal/config"
	"github.com/san-kum/venturesim/internal/sim"
	"github.com/san-kum/venturesim/internal/stats"
	"github.com/san-kum/venturesim/internal/storage"
	"github.com/san-kum/venturesim/internal/viz"
)

var (
	dataDir        string
	ambition       float64
	skill          float64
	selfRegulation float64
	dynamism       float64
	horizon        int
	numRuns        int
	seed           int64
	coefs          []string
	configFile     string
	preset         string
	frameRate      int
)

var headingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)

func main() {
	rootCmd := &cobra.Command{
		Use:   "venturesim",
		Short: "entrepreneurial well-being simulation lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".venturesim", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run one simulation",
		RunE:  runSimulation,
	}
	addProfileFlags(runCmd)
	runCmd.Flags().Int64Var(&seed, "seed", 0, "base seed (0 draws a fresh one)")

	campaignCmd := &cobra.Command{
		Use:   "campaign",
		Short: "run many independent simulations and summarize outcomes",
		RunE:  runCampaign,
	}
	addProfileFlags(campaignCmd)
	campaignCmd.Flags().IntVar(&numRuns, "runs", config.DefaultRuns, "number of runs")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored trajectory",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export a stored run as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export a stored trajectory as CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSVRun,
	}

	watchCmd := &cobra.Command{
		Use:   "watch [run_id]",
		Short: "replay a stored trajectory period by period",
		Args:  cobra.ExactArgs(1),
		RunE:  watchRun,
	}
	watchCmd.Flags().IntVar(&frameRate, "fps", 10, "replay frame rate")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list founder scenario presets",
		RunE:  listPresets,
	}

	rootCmd.AddCommand(runCmd, campaignCmd, listCmd, plotCmd, exportCmd, exportCSVCmd, watchCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addProfileFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&ambition, "ambition", config.DefaultAmbition, "ambition [0,1]")
	cmd.Flags().Float64Var(&skill, "skill", config.DefaultSkill, "skill [0,1]")
	cmd.Flags().Float64Var(&selfRegulation, "self-regulation", config.DefaultSelfRegulation, "self-regulation [0,1]")
	cmd.Flags().Float64Var(&dynamism, "dynamism", config.DefaultDynamism, "environmental dynamism [0,1]")
	cmd.Flags().IntVar(&horizon, "horizon", config.DefaultHorizon, "number of periods")
	cmd.Flags().StringArrayVar(&coefs, "coef", nil, "coefficient override, e.g. --coef var3=0.8")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset scenario")
}

// buildConfig resolves preset, config file, and CLI flags, in that
// precedence order (flags win).
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		*cfg = *p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("ambition") {
		cfg.Ambition = ambition
	}
	if cmd.Flags().Changed("skill") {
		cfg.Skill = skill
	}
	if cmd.Flags().Changed("self-regulation") {
		cfg.SelfRegulation = selfRegulation
	}
	if cmd.Flags().Changed("dynamism") {
		cfg.Dynamism = dynamism
	}
	if cmd.Flags().Changed("horizon") {
		cfg.Horizon = horizon
	}
	if cmd.Flags().Changed("runs") {
		cfg.Runs = numRuns
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}

	if len(coefs) > 0 {
		if cfg.Coefficients == nil {
			cfg.Coefficients = make(map[string]float64)
		}
		for _, kv := range coefs {
			key, val, ok := strings.Cut(kv, "=")
			if !ok {
				return nil, fmt.Errorf("invalid coefficient override %q, want name=value", kv)
			}
			f, err := strconv.ParseFloat(val, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid coefficient value in %q: %w", kv, err)
			}
			cfg.Coefficients[key] = f
		}
	}

	return cfg, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	runSeed := cfg.Seed
	if runSeed == 0 {
		runSeed = sim.RandomSeed()
	}

	start := time.Now()
	trajectory, err := sim.Simulate(cfg.Parameters(), cfg.Horizon, runSeed)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(cfg.Parameters(), cfg.Horizon, runSeed, trajectory)
	if err != nil {
		return err
	}

	last := trajectory[len(trajectory)-1]

	fmt.Println(headingStyle.Render("simulation complete"))
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("seed: %d\n", runSeed)
	fmt.Printf("periods: %d (%d sampled), %v\n", cfg.Horizon, len(trajectory), elapsed)
	fmt.Println()
	fmt.Printf("  final performance: %10.3f\n", last.Performance)
	fmt.Printf("  final wellbeing:   %10.3f\n", last.Wellbeing)
	fmt.Printf("  final effort:      %10.3f\n", last.CumulativeEffort)

	return nil
}

func runCampaign(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	// Campaign mode always uses independent randomness per run; a fixed
	// seed only applies to single runs.
	campaign := sim.NewCampaign(cfg.Parameters(), cfg.Runs, cfg.Horizon)

	start := time.Now()
	summaries, err := campaign.Run(context.Background())
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	report := stats.Summarize(summaries)

	fmt.Println(headingStyle.Render(fmt.Sprintf("campaign: %d runs x %d periods (%v)", report.Runs, cfg.Horizon, elapsed)))
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "OUTCOME\tMEAN\tSTD\tMIN\tMEDIAN\tMAX")
	printDescription(w, "performance", report.Performance)
	printDescription(w, "wellbeing", report.Wellbeing)
	printDescription(w, "effort", report.Effort)
	return w.Flush()
}

func printDescription(w *tabwriter.Writer, name string, d stats.Description) {
	fmt.Fprintf(w, "%s\t%.3f\t%.3f\t%.3f\t%.3f\t%.3f\n",
		name, d.Mean, d.Std, d.Min, d.Median, d.Max)
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

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tSEED\tHORIZON\tAMB\tSKILL\tSELFREG\tDYN\tPERF\tWELLBEING")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%.2f\t%.2f\t%.2f\t%.2f\t%.3f\t%.3f\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Seed,
			run.Horizon,
			run.Ambition,
			run.Skill,
			run.SelfRegulation,
			run.Dynamism,
			run.FinalPerformance,
			run.FinalWellbeing,
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	points, err := st.LoadTrajectory(args[0])
	if err != nil {
		return err
	}
	if len(points) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("samples: %d\n\n", len(points))

	series := []struct {
		caption string
		pick    func(sim.Point) float64
	}{
		{"motivation", func(p sim.Point) float64 { return p.Motivation }},
		{"strain", func(p sim.Point) float64 { return p.Strain }},
		{"performance", func(p sim.Point) float64 { return p.Performance }},
		{"wellbeing", func(p sim.Point) float64 { return p.Wellbeing }},
		{"effort (per period)", func(p sim.Point) float64 { return p.Effort }},
	}

	for _, s := range series {
		data := make([]float64, len(points))
		for i, p := range points {
			data[i] = s.pick(p)
		}
		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(s.caption),
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
	points, err := st.LoadTrajectory(args[0])
	if err != nil {
		return err
	}
	return storage.ExportJSON(os.Stdout, *meta, points)
}

func exportCSVRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	points, err := st.LoadTrajectory(args[0])
	if err != nil {
		return err
	}
	if len(points) == 0 {
		return fmt.Errorf("no data to export")
	}
	return storage.ExportCSV(os.Stdout, points)
}

func watchRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	points, err := st.LoadTrajectory(args[0])
	if err != nil {
		return err
	}
	if len(points) == 0 {
		return fmt.Errorf("no data to replay")
	}

	m := viz.NewModel(meta, points, frameRate)
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	names := config.ListPresets()
	sort.Strings(names)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tAMB\tSKILL\tSELFREG\tDYN\tHORIZON\tRUNS")
	for _, name := range names {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%.2f\t%.2f\t%.2f\t%.2f\t%d\t%d\n",
			name, p.Ambition, p.Skill, p.SelfRegulation, p.Dynamism, p.Horizon, p.Runs)
	}
	return w.Flush()
}
