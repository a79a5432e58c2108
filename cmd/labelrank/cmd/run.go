package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/labelrank/labelrank"
	"github.com/katalvlaran/labelrank/mtx"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run LabelRank over a Matrix-Market graph file",
	RunE:  runRun,
}

func init() {
	flags := runCmd.Flags()
	flags.String("file", "", "path to a Matrix-Market coordinate graph file (required)")
	flags.Int("repeat", labelrank.DefaultOptions().Repeat, "number of timed runs; the printed result is from the last")
	flags.Int("max-iterations", labelrank.DefaultOptions().MaxIterations, "mixing iterations after initialization")
	flags.Float64("inflation", labelrank.DefaultOptions().Inflation, "inflation exponent")
	flags.Float64("conditional-update", labelrank.DefaultOptions().ConditionalUpdate, "stability threshold q in [0,1]")
	flags.String("schedule", "sequential", "sequential, static, dynamic, or guided")
	flags.Int("workers", labelrank.DefaultOptions().Workers, "worker goroutines for a parallel schedule")
	flags.Int("chunk-size", labelrank.DefaultOptions().ChunkSize, "vertices per chunk for a parallel schedule")
	flags.Float64("self-loop-weight", 1.0, "weight applied to the self-loop added to every vertex")
}

func runRun(cmd *cobra.Command, _ []string) error {
	v := newViper()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("cmd: %w", err)
	}

	cfg, err := loadConfig(v)
	if err != nil {
		return err
	}

	schedule, err := parseSchedule(cfg.Schedule)
	if err != nil {
		return err
	}

	f, err := os.Open(cfg.File)
	if err != nil {
		return fmt.Errorf("cmd: %w", err)
	}
	defer f.Close()

	g, err := mtx.Load(f, cfg.SelfLoopWeight)
	if err != nil {
		return fmt.Errorf("cmd: %w", err)
	}

	opts := labelrank.DefaultOptions()
	opts.Repeat = cfg.Repeat
	opts.MaxIterations = cfg.MaxIterations
	opts.Inflation = cfg.Inflation
	opts.ConditionalUpdate = cfg.ConditionalUpdate
	opts.Schedule = schedule
	opts.Workers = cfg.Workers
	opts.ChunkSize = cfg.ChunkSize

	res, err := labelrank.Run(cmd.Context(), g, opts)
	if err != nil {
		return fmt.Errorf("cmd: %w", err)
	}

	q := labelrank.Modularity(g, res.Membership, 1.0)
	fmt.Fprintf(cmd.OutOrStdout(), "[%09.3fms; %01.6f modularity] labelrank {schedule: %s}\n", res.TimeMS, q, schedule)
	for u, label := range res.Membership {
		fmt.Fprintf(cmd.OutOrStdout(), "%d -> %d\n", u, label)
	}

	return nil
}

func parseSchedule(s string) (labelrank.Schedule, error) {
	switch s {
	case "sequential", "":
		return labelrank.ScheduleSequential, nil
	case "static":
		return labelrank.ScheduleStatic, nil
	case "dynamic":
		return labelrank.ScheduleDynamic, nil
	case "guided":
		return labelrank.ScheduleGuided, nil
	default:
		return 0, fmt.Errorf("cmd: unknown schedule %q", s)
	}
}

